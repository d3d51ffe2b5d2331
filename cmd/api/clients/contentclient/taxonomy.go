package contentclient

import (
	"context"
	"net/url"
	"strconv"

	"byp-site/models"
)

func (c *Client) listTerms(ctx context.Context, op, resource, taxonomy string, q url.Values) ([]models.Term, error) {
	if q == nil {
		q = url.Values{}
	}
	if q.Get("per_page") == "" {
		q.Set("per_page", strconv.Itoa(maxPerPage))
	}

	var items []models.Term
	if _, err := c.getJSON(ctx, op, wpPrefix+"/"+resource, q, false, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Term{}
	}
	for i := range items {
		if items[i].Taxonomy == "" {
			items[i].Taxonomy = taxonomy
		}
	}
	return items, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]models.Term, error) {
	return c.listTerms(ctx, "ListCategories", "categories", models.TaxonomyCategory, nil)
}

func (c *Client) ListTags(ctx context.Context) ([]models.Term, error) {
	return c.listTerms(ctx, "ListTags", "tags", models.TaxonomyTag, nil)
}

// ListMagazineTags 는 매거진 전용 taxonomy(magazine_tag) 목록이다.
func (c *Client) ListMagazineTags(ctx context.Context) ([]models.Term, error) {
	return c.listTerms(ctx, "ListMagazineTags", "magazine_tag", models.TaxonomyMagazine, nil)
}

// CategoryBySlug 는 slug 가 일치하는 카테고리를 찾는다. 일치하는 항목이 없으면 nil, nil 이다.
func (c *Client) CategoryBySlug(ctx context.Context, slug string) (*models.Term, error) {
	return c.termBySlug(ctx, "CategoryBySlug", "categories", models.TaxonomyCategory, slug)
}

// TagBySlug 는 slug 가 일치하는 태그를 찾는다. 일치하는 항목이 없으면 nil, nil 이다.
func (c *Client) TagBySlug(ctx context.Context, slug string) (*models.Term, error) {
	return c.termBySlug(ctx, "TagBySlug", "tags", models.TaxonomyTag, slug)
}

func (c *Client) termBySlug(ctx context.Context, op, resource, taxonomy, slug string) (*models.Term, error) {
	if slug == "" {
		return nil, nil
	}
	items, err := c.listTerms(ctx, op, resource, taxonomy, url.Values{"slug": {slug}})
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].Slug == slug {
			return &items[i], nil
		}
	}
	return nil, nil
}
