package contentclient

import (
	"context"
	"net/url"
	"path"
	"strconv"

	"byp-site/models"
)

// GetPageBySlug 는 고정 페이지(about, donate ...)를 slug 로 찾는다. 없으면 ErrNotFound 다.
func (c *Client) GetPageBySlug(ctx context.Context, slug string) (models.Page, error) {
	var items []models.Page
	if _, err := c.getJSON(ctx, "GetPageBySlug", wpPrefix+"/pages", url.Values{"slug": {slug}}, false, &items); err != nil {
		return models.Page{}, err
	}
	if len(items) == 0 {
		return models.Page{}, ErrNotFound
	}
	return items[0], nil
}

// MediaURL 은 미디어 id 를 원본 이미지 URL(source_url)로 바꾼다.
func (c *Client) MediaURL(ctx context.Context, id int) (string, error) {
	if id <= 0 {
		return "", ErrNotFound
	}
	var out struct {
		SourceURL string `json:"source_url"`
	}
	relPath := path.Join(wpPrefix, "media", strconv.Itoa(id))
	if _, err := c.getJSON(ctx, "MediaURL", relPath, nil, false, &out); err != nil {
		return "", err
	}
	if out.SourceURL == "" {
		return "", ErrNotFound
	}
	return out.SourceURL, nil
}
