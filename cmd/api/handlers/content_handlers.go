package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"byp-site/cmd/api/dto"
	"byp-site/cmd/api/services"
	_ "byp-site/models"
)

// respondLookupError 는 단건 조회 에러를 404 / 500 으로 나눈다.
func respondLookupError(c *gin.Context, err error, notFound string) {
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: notFound})
		return
	}
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "internal_error"})
}

// ListPostsHandler godoc
// @Summary      글 목록 조회
// @Description  콘텐츠 API 의 글 목록을 필터/페이지 단위로 조회합니다. 원격 실패 시 빈 목록을 반환합니다.
// @Tags         posts
// @Param        page        query  int     false  "페이지 (1부터)"
// @Param        per_page    query  int     false  "페이지 크기 (<=100)"
// @Param        categories  query  string  false  "카테고리 id 목록 (콤마 구분)"
// @Param        tags        query  string  false  "태그 id 목록 (콤마 구분)"
// @Param        author      query  int     false  "작성자 id"
// @Param        search      query  string  false  "검색어"
// @Param        slug        query  string  false  "글 slug"
// @Produce      json
// @Success      200  {object}  dto.PaginationPostDTO
// @Router       /api/posts [get]
func ListPostsHandler(svc *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in services.ListPostsInput
		in.Page, in.PerPage = pagination(c)
		in.Categories = queryIntList(c, "categories")
		in.Tags = queryIntList(c, "tags")
		in.Author = queryInt(c, "author", 0)
		in.Search = c.Query("search")
		in.Slug = c.Query("slug")

		c.JSON(http.StatusOK, svc.ListPosts(c.Request.Context(), in))
	}
}

// ListTaggedPostsHandler godoc
// @Summary      태그별 글 목록
// @Description  tag_id 또는 tag(이름) 하나로 거른 글 목록입니다. 이름은 slug 로 바꿔 찾고, 없으면 빈 목록입니다.
// @Tags         posts
// @Param        tag_id    query  int     false  "태그 id"
// @Param        tag       query  string  false  "태그 이름 또는 slug"
// @Param        per_page  query  int     false  "페이지 크기 (<=100)"
// @Produce      json
// @Success      200  {array}   dto.PostDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /api/posts/tagged [get]
func ListTaggedPostsHandler(svc *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tagID := 0
		if raw := strings.TrimSpace(c.Query("tag_id")); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_tag_id"})
				return
			}
			tagID = n
		}
		tagName := strings.TrimSpace(c.Query("tag"))
		if tagID == 0 && tagName == "" {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "missing_tag"})
			return
		}
		_, perPage := pagination(c)

		posts, err := svc.PostsTagged(c.Request.Context(), tagID, tagName, perPage)
		if err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "failed_to_load_posts"})
			return
		}
		c.JSON(http.StatusOK, posts)
	}
}

// GetPostHandler godoc
// @Summary      글 단건 조회
// @Description  숫자 id 로 글 하나를 조회합니다. 본문은 정화 + 링크 재작성됩니다.
// @Tags         posts
// @Param        id   path   int  true  "글 id"
// @Produce      json
// @Success      200  {object}  dto.PostDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /api/posts/{id} [get]
func GetPostHandler(svc *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_post_id"})
			return
		}
		post, err := svc.GetPost(c.Request.Context(), id)
		if err != nil {
			respondLookupError(c, err, "post_not_found")
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

// GetPostBySlugHandler godoc
// @Summary      slug 로 글 조회
// @Tags         posts
// @Param        slug  path  string  true  "글 slug"
// @Produce      json
// @Success      200  {object}  dto.PostDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /api/posts/slug/{slug} [get]
func GetPostBySlugHandler(svc *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		post, err := svc.GetPostBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			respondLookupError(c, err, "post_not_found")
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

// ListTagsHandler godoc
// @Summary      태그 목록
// @Tags         taxonomy
// @Produce      json
// @Success      200  {array}  models.Term
// @Router       /api/tags [get]
func ListTagsHandler(svc *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.ListTags(c.Request.Context()))
	}
}

// ListCategoriesHandler godoc
// @Summary      카테고리 목록
// @Tags         taxonomy
// @Produce      json
// @Success      200  {array}  models.Term
// @Router       /api/categories [get]
func ListCategoriesHandler(svc *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.ListCategories(c.Request.Context()))
	}
}

// ListAuthorsHandler godoc
// @Summary      작성자 목록 / username 조회
// @Description  username 이 없으면 전체 작성자 목록(권한 호출), 있으면 해당 작성자 하나를 반환합니다.
// @Tags         authors
// @Param        username  query  string  false  "작성자 username"
// @Produce      json
// @Success      200  {array}   models.Author
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /api/authors [get]
func ListAuthorsHandler(svc *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := strings.TrimSpace(c.Query("username"))
		if username == "" {
			c.JSON(http.StatusOK, svc.ListAuthors(c.Request.Context()))
			return
		}
		author, err := svc.AuthorByUsername(c.Request.Context(), username)
		if err != nil {
			respondLookupError(c, err, "author_not_found")
			return
		}
		c.JSON(http.StatusOK, author)
	}
}

// ListAuthorPostsHandler godoc
// @Summary      작성자별 글 목록
// @Description  username 으로 작성자를 찾은 뒤 그 작성자 id 와 정확히 일치하는 글만 반환합니다.
// @Tags         authors
// @Param        username  path   string  true   "작성자 username"
// @Param        page      query  int     false  "페이지 (1부터)"
// @Param        per_page  query  int     false  "페이지 크기 (<=100)"
// @Produce      json
// @Success      200  {array}  dto.PostDTO
// @Router       /api/authors/{username}/posts [get]
func ListAuthorPostsHandler(svc *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, perPage := pagination(c)
		c.JSON(http.StatusOK, svc.PostsByAuthor(c.Request.Context(), c.Param("username"), page, perPage))
	}
}

// GetPageHandler godoc
// @Summary      고정 페이지 조회
// @Tags         pages
// @Param        slug  path  string  true  "페이지 slug"
// @Produce      json
// @Success      200  {object}  dto.PageDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /api/pages/{slug} [get]
func GetPageHandler(svc *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := svc.GetPage(c.Request.Context(), c.Param("slug"))
		if err != nil {
			respondLookupError(c, err, "page_not_found")
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// ListMagazineIssuesHandler godoc
// @Summary      매거진 이슈 목록
// @Description  이슈마다 대표 이미지와 연결 글(이미지/작성자)을 보강해서 반환합니다. 응답은 캐시되지 않습니다.
// @Tags         magazine
// @Param        page      query  int  false  "페이지 (1부터)"
// @Param        per_page  query  int  false  "페이지 크기 (<=100)"
// @Produce      json
// @Success      200  {array}  models.MagazineIssue
// @Router       /api/magazine/issues [get]
func ListMagazineIssuesHandler(svc *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, perPage := pagination(c)
		c.JSON(http.StatusOK, svc.MagazineIssues(c.Request.Context(), page, perPage))
	}
}

// GetLatestIssueHandler godoc
// @Summary      최신 매거진 이슈
// @Tags         magazine
// @Produce      json
// @Success      200  {object}  models.MagazineIssue
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /api/magazine/issues/latest [get]
func GetLatestIssueHandler(svc *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		issue, err := svc.LatestIssue(c.Request.Context())
		if err != nil {
			respondLookupError(c, err, "issue_not_found")
			return
		}
		c.JSON(http.StatusOK, issue)
	}
}

// ListMagazineTagsHandler godoc
// @Summary      매거진 태그 목록
// @Tags         magazine
// @Produce      json
// @Success      200  {array}  models.Term
// @Router       /api/magazine/tags [get]
func ListMagazineTagsHandler(svc *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.MagazineTags(c.Request.Context()))
	}
}
