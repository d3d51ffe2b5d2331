package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"byp-site/cmd/api/dto"
	"byp-site/cmd/api/services"
)

// HomeViewHandler godoc
// @Summary      홈 화면 데이터
// @Description  최신 글과 카테고리 목록을 캐시 상태와 함께 반환합니다.
// @Tags         view
// @Param        force  query  bool  false  "캐시 무시"
// @Produce      json
// @Success      200  {object}  dto.HomeViewDTO
// @Router       /view/home [get]
func HomeViewHandler(svc *services.ViewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.Home(c.Request.Context(), forceParam(c)))
	}
}

// ArticleViewHandler godoc
// @Summary      글 화면 데이터
// @Tags         view
// @Param        slug   path   string  true   "글 slug"
// @Param        force  query  bool    false  "캐시 무시"
// @Produce      json
// @Success      200  {object}  dto.ArticleViewDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /view/article/{slug} [get]
func ArticleViewHandler(svc *services.ViewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := svc.Article(c.Request.Context(), c.Param("slug"), forceParam(c))
		if err != nil {
			respondLookupError(c, err, "post_not_found")
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// AuthorViewHandler godoc
// @Summary      작성자 화면 데이터
// @Tags         view
// @Param        username  path   string  true   "작성자 username"
// @Param        force     query  bool    false  "캐시 무시"
// @Produce      json
// @Success      200  {object}  dto.AuthorViewDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /view/author/{username} [get]
func AuthorViewHandler(svc *services.ViewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := svc.Author(c.Request.Context(), c.Param("username"), forceParam(c))
		if err != nil {
			respondLookupError(c, err, "author_not_found")
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// CategoryViewHandler godoc
// @Summary      카테고리 화면 데이터
// @Description  이름을 slug 로 바꿔 카테고리를 찾고, 없으면 빈 목록을 반환합니다.
// @Tags         view
// @Param        name   path   string  true   "카테고리 이름 또는 slug"
// @Param        force  query  bool    false  "캐시 무시"
// @Produce      json
// @Success      200  {object}  dto.TermViewDTO
// @Router       /view/category/{name} [get]
func CategoryViewHandler(svc *services.ViewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.Category(c.Request.Context(), c.Param("name"), forceParam(c)))
	}
}

// TagViewHandler godoc
// @Summary      태그 화면 데이터
// @Tags         view
// @Param        name   path   string  true   "태그 이름 또는 slug"
// @Param        force  query  bool    false  "캐시 무시"
// @Produce      json
// @Success      200  {object}  dto.TermViewDTO
// @Router       /view/tag/{name} [get]
func TagViewHandler(svc *services.ViewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.Tag(c.Request.Context(), c.Param("name"), forceParam(c)))
	}
}

// SearchViewHandler godoc
// @Summary      검색 화면 데이터
// @Description  tag 가 있으면 태그 이름으로, 없으면 q 검색어로 조회합니다.
// @Tags         view
// @Param        q      query  string  false  "검색어"
// @Param        tag    query  string  false  "태그 이름 또는 slug"
// @Param        page   query  int     false  "페이지 (1부터)"
// @Param        force  query  bool    false  "캐시 무시"
// @Produce      json
// @Success      200  {object}  dto.TermViewDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /view/search [get]
func SearchViewHandler(svc *services.ViewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := strings.TrimSpace(c.Query("q"))
		tag := strings.TrimSpace(c.Query("tag"))
		if q == "" && tag == "" {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "missing_query"})
			return
		}
		page, _ := pagination(c)
		c.JSON(http.StatusOK, svc.Search(c.Request.Context(), q, tag, page, forceParam(c)))
	}
}

// MagazineViewHandler godoc
// @Summary      매거진 화면 데이터
// @Description  이슈 목록, 매거진 태그, 섹션의 다른 글을 함께 반환합니다.
// @Tags         view
// @Param        force  query  bool  false  "캐시 무시"
// @Produce      json
// @Success      200  {object}  dto.MagazineViewDTO
// @Router       /view/magazine [get]
func MagazineViewHandler(svc *services.ViewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.Magazine(c.Request.Context(), forceParam(c)))
	}
}

// ClearCacheHandler godoc
// @Summary      캐시 비우기
// @Description  family 가 없으면 전체, 파티션 family 에서 key 가 없으면 해당 family 전체를 비웁니다.
// @Tags         view
// @Param        family  query  string  false  "posts | category_posts | tag_posts | author_posts | all"
// @Param        key     query  string  false  "파티션 키 (id, 이름 또는 username)"
// @Produce      json
// @Security     AdminToken
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /view/cache [delete]
func ClearCacheHandler(svc *services.ViewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := svc.ClearCache(c.Request.Context(), c.Query("family"), c.Query("key"))
		if errors.Is(err, services.ErrUnknownFamily) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "unknown_cache_family"})
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "cache_cleared"})
	}
}
