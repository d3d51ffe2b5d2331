package auth

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"byp-site/cmd/api/dto"
	"byp-site/internal/logger"
)

var (
	ErrMissingHeader = errors.New("missing_authorization_header")
	ErrInvalidFormat = errors.New("invalid_authorization_header")
	ErrEmptyToken    = errors.New("empty_token")
	ErrInvalidToken  = errors.New("invalid_token")
)

// ExtractBearerToken 은 Authorization 헤더에서 Bearer 토큰을 꺼낸다.
func ExtractBearerToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", ErrMissingHeader
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", ErrInvalidFormat
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}

// AbortWithUnauthorized 는 401 과 {error} 바디로 요청을 끝낸다.
func AbortWithUnauthorized(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponseDTO{Error: err.Error()})
}

// RequireAdminToken 은 캐시 비우기 같은 운영용 라우트를 고정 토큰으로 보호한다.
// token 이 비어 있으면 보호하지 않는다(로컬 개발용).
func RequireAdminToken(token string) gin.HandlerFunc {
	if token == "" {
		logger.WarnWithFields("admin token not configured, admin routes are open", nil)
		return func(c *gin.Context) { c.Next() }
	}
	expected := []byte(token)

	return func(c *gin.Context) {
		got, err := ExtractBearerToken(c)
		if err != nil {
			AbortWithUnauthorized(c, err)
			return
		}
		if subtle.ConstantTimeCompare([]byte(got), expected) != 1 {
			AbortWithUnauthorized(c, ErrInvalidToken)
			return
		}
		c.Next()
	}
}
