package contentclient

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strconv"
	"strings"

	"byp-site/models"
)

// ListAuthors 는 전체 작성자 목록이다. context=edit 조회라 basic auth 자격 증명이 필요하다.
func (c *Client) ListAuthors(ctx context.Context) ([]models.Author, error) {
	q := url.Values{}
	q.Set("context", "edit")
	q.Set("per_page", strconv.Itoa(maxPerPage))

	var items []models.Author
	if _, err := c.getJSON(ctx, "ListAuthors", wpPrefix+"/users", q, true, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Author{}
	}
	return items, nil
}

// GetAuthor 는 숫자 id 로 작성자를 조회한다. 없으면 ErrNotFound 다.
func (c *Client) GetAuthor(ctx context.Context, id int) (models.Author, error) {
	if id <= 0 {
		return models.Author{}, ErrNotFound
	}
	relPath := path.Join(wpPrefix, "users", strconv.Itoa(id))
	var out models.Author
	if _, err := c.getJSON(ctx, "GetAuthor", relPath, nil, false, &out); err != nil {
		return models.Author{}, err
	}
	return out, nil
}

// AuthorByUsername 은 전용 조회 엔드포인트 한 번으로 작성자를 찾는다.
// 응답 형태가 느슨하므로 map 으로 받아 필드별로 옮기고, 없는 문자열 필드는 "" 로 둔다.
// 숫자 id 가 없으면 매칭되지 않은 것으로 보고 ErrNotFound 를 반환한다.
// 경로 구분자나 "." / ".." 를 담은 username 은 다른 엔드포인트로 풀리므로 요청하지 않고 ErrNotFound 다.
func (c *Client) AuthorByUsername(ctx context.Context, username string) (models.Author, error) {
	if !validPathSegment(username) {
		return models.Author{}, ErrNotFound
	}
	// BaseClient 가 URL.Path 로 조립하므로 나머지 문자는 URL 직렬화 때 이스케이프된다.
	relPath := path.Join(bypPrefix, "author", username)

	var raw map[string]any
	if _, err := c.getJSON(ctx, "AuthorByUsername", relPath, nil, false, &raw); err != nil {
		return models.Author{}, err
	}

	author := mapAuthorFromLookup(raw)
	if author.ID <= 0 {
		return models.Author{}, ErrNotFound
	}
	if author.Slug == "" {
		author.Slug = username
	}
	return author, nil
}

func validPathSegment(seg string) bool {
	if seg == "" || seg == "." || seg == ".." {
		return false
	}
	return !strings.ContainsAny(seg, "/\\?#")
}

func mapAuthorFromLookup(raw map[string]any) models.Author {
	return models.Author{
		ID:          intField(raw, "id", "ID"),
		Name:        stringField(raw, "name", "display_name"),
		Slug:        stringField(raw, "username", "slug", "user_nicename"),
		Description: stringField(raw, "description", "bio"),
		Link:        stringField(raw, "link", "url"),
		AvatarURLs:  stringMapField(raw, "avatar_urls"),
		SocialLinks: stringMapField(raw, "social_links", "social"),
	}
}

func stringField(raw map[string]any, keys ...string) string {
	for _, k := range keys {
		switch v := raw[k].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

func intField(raw map[string]any, keys ...string) int {
	for _, k := range keys {
		switch v := raw[k].(type) {
		case float64:
			return int(v)
		case string:
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
	}
	return 0
}

// stringMapField 는 {"96": "https://..."} 형태의 객체를 map[string]string 으로 옮긴다.
// 값이 문자열이 아니면 fmt 로 문자열화한다.
func stringMapField(raw map[string]any, keys ...string) map[string]string {
	for _, k := range keys {
		obj, ok := raw[k].(map[string]any)
		if !ok || len(obj) == 0 {
			continue
		}
		out := make(map[string]string, len(obj))
		for key, val := range obj {
			switch v := val.(type) {
			case string:
				if v != "" {
					out[key] = v
				}
			case nil:
			default:
				out[key] = fmt.Sprint(v)
			}
		}
		return out
	}
	return nil
}

// PostsByAuthor 는 두 단계로 작성자의 글을 찾는다.
// username 으로 작성자(숫자 id)를 확정한 뒤 author_name 필터로 글을 받고,
// 원격 필터가 이름 충돌로 과하게 매칭하는 경우를 막기 위해 숫자 id 가 정확히 같은 글만 남긴다.
func (c *Client) PostsByAuthor(ctx context.Context, username string, q PostQuery) ([]models.Post, error) {
	author, err := c.AuthorByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	q.AuthorName = username
	q.Embed = true
	items, err := c.ListPosts(ctx, q)
	if err != nil {
		return nil, err
	}

	out := make([]models.Post, 0, len(items))
	for _, p := range items {
		if p.AuthorID() == author.ID {
			out = append(out, p)
		}
	}
	return out, nil
}
