package contentclient

import (
	"context"
	"encoding/json"
	"net/url"
	"path"
	"strconv"
	"strings"

	"byp-site/models"
)

// PostQuery 는 posts 목록 조회 파라미터다.
// JSON 직렬화 결과가 스토어의 캐시 키가 되므로 필드 순서를 바꾸지 않는다.
type PostQuery struct {
	Page       int    `json:"page,omitempty"`
	PerPage    int    `json:"per_page,omitempty"`
	Categories []int  `json:"categories,omitempty"`
	Tags       []int  `json:"tags,omitempty"`
	Author     int    `json:"author,omitempty"`
	AuthorName string `json:"author_name,omitempty"`
	Search     string `json:"search,omitempty"`
	Slug       string `json:"slug,omitempty"`
	Exclude    []int  `json:"exclude,omitempty"`
	Embed      bool   `json:"embed,omitempty"`
}

// CacheKey 는 쿼리를 직렬화한 문자열이다. 같은 쿼리는 항상 같은 키를 만든다.
func (q PostQuery) CacheKey() string {
	b, err := json.Marshal(q)
	if err != nil {
		return ""
	}
	return string(b)
}

// Values 는 콘텐츠 API 쿼리스트링으로 변환한다. 0/빈 값은 생략한다.
func (q PostQuery) Values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PerPage > 0 {
		v.Set("per_page", strconv.Itoa(min(q.PerPage, maxPerPage)))
	}
	if len(q.Categories) > 0 {
		v.Set("categories", joinInts(q.Categories))
	}
	if len(q.Tags) > 0 {
		v.Set("tags", joinInts(q.Tags))
	}
	if q.Author > 0 {
		v.Set("author", strconv.Itoa(q.Author))
	}
	if q.AuthorName != "" {
		v.Set("author_name", q.AuthorName)
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Slug != "" {
		v.Set("slug", q.Slug)
	}
	if len(q.Exclude) > 0 {
		v.Set("exclude", joinInts(q.Exclude))
	}
	if q.Embed {
		v.Set("_embed", "1")
	}
	return v
}

func joinInts(ids []int) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.Itoa(id))
	}
	return strings.Join(parts, ",")
}

// PostPage 는 목록과 함께 X-WP-Total / X-WP-TotalPages 헤더 값을 담는다.
type PostPage struct {
	Items      []models.Post
	Total      int64
	TotalPages int
}

func (c *Client) ListPostsPage(ctx context.Context, q PostQuery) (PostPage, error) {
	var items []models.Post
	header, err := c.getJSON(ctx, "ListPosts", wpPrefix+"/posts", q.Values(), false, &items)
	if err != nil {
		return PostPage{}, err
	}

	page := PostPage{Items: items}
	if items == nil {
		page.Items = []models.Post{}
	}
	if n, err := strconv.ParseInt(header.Get("X-WP-Total"), 10, 64); err == nil {
		page.Total = n
	} else {
		page.Total = int64(len(page.Items))
	}
	if n, err := strconv.Atoi(header.Get("X-WP-TotalPages")); err == nil {
		page.TotalPages = n
	}
	return page, nil
}

func (c *Client) ListPosts(ctx context.Context, q PostQuery) ([]models.Post, error) {
	page, err := c.ListPostsPage(ctx, q)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// GetPost는 단일 포스트를 조회한다.
// 존재하지 않으면 ErrNotFound 를 반환한다.
func (c *Client) GetPost(ctx context.Context, id int) (models.Post, error) {
	relPath := path.Join(wpPrefix, "posts", strconv.Itoa(id))
	var out models.Post
	if _, err := c.getJSON(ctx, "GetPost", relPath, url.Values{"_embed": {"1"}}, false, &out); err != nil {
		return models.Post{}, err
	}
	return out, nil
}

// GetPostBySlug 는 slug 로 글 하나를 찾는다. 결과가 비어 있으면 ErrNotFound 다.
func (c *Client) GetPostBySlug(ctx context.Context, slug string) (models.Post, error) {
	items, err := c.ListPosts(ctx, PostQuery{Slug: slug, Embed: true})
	if err != nil {
		return models.Post{}, err
	}
	if len(items) == 0 {
		return models.Post{}, ErrNotFound
	}
	return items[0], nil
}

// PostsByTagIDs 는 주어진 태그 id 중 하나라도 붙은 글을 조회한다.
func (c *Client) PostsByTagIDs(ctx context.Context, ids []int, perPage int) ([]models.Post, error) {
	return c.ListPosts(ctx, PostQuery{Tags: ids, PerPage: perPage, Embed: true})
}
