package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"byp-site/cmd/api/clients/listclient"
	"byp-site/cmd/api/dto"
	"byp-site/cmd/api/services"
)

// SubscribeHandler godoc
// @Summary      뉴스레터 구독
// @Description  이메일 주소를 구독 리스트에 추가합니다. 이미 구독 중이면 성공으로 처리합니다.
// @Tags         subscribe
// @Accept       json
// @Param        body  body  dto.SubscribeRequestDTO  true  "구독 요청"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      429  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Failure      503  {object}  dto.ErrorResponseDTO
// @Router       /api/subscribe [post]
func SubscribeHandler(svc *services.SubscribeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SubscribeRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_email"})
			return
		}

		err := svc.Subscribe(c.Request.Context(), req.Email)
		switch {
		case err == nil:
			c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "subscribed"})
		case errors.Is(err, services.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_email"})
		case errors.Is(err, listclient.ErrNotConfigured):
			c.JSON(http.StatusServiceUnavailable, dto.ErrorResponseDTO{Error: "subscription_unavailable"})
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "failed_to_subscribe"})
		}
	}
}
