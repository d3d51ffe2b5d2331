package contentclient

import (
	"bytes"
	"context"
	"encoding/json"

	"golang.org/x/sync/errgroup"

	"byp-site/internal/logger"
	"byp-site/models"
)

// issueItem 은 magazine 커스텀 포스트 타입의 원격 응답 형태다.
// associated_posts 는 최상위 필드 또는 ACF 필드(acf.associated_posts)로 내려온다.
type issueItem struct {
	ID              int              `json:"id"`
	Date            models.Time      `json:"date"`
	Slug            string           `json:"slug"`
	Title           models.Rendered  `json:"title"`
	Content         models.Rendered  `json:"content"`
	FeaturedMedia   int              `json:"featured_media"`
	MagazineTags    []int            `json:"magazine_tag"`
	AssociatedPosts []associatedItem `json:"associated_posts"`
	ACF             json.RawMessage  `json:"acf"`
}

// associatedItem 은 숫자 id 하나이거나 WP_Post 형태의 객체다.
type associatedItem struct {
	ID          int         `json:"ID"`
	PostTitle   string      `json:"post_title"`
	PostName    string      `json:"post_name"`
	PostExcerpt string      `json:"post_excerpt"`
	PostDate    models.Time `json:"post_date"`
}

func (a *associatedItem) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] != '{' {
		var id json.Number
		if err := json.Unmarshal(b, &id); err != nil {
			return err
		}
		n, err := id.Int64()
		if err != nil {
			return err
		}
		*a = associatedItem{ID: int(n)}
		return nil
	}
	type plain associatedItem
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*a = associatedItem(p)
	return nil
}

// associated 는 최상위 필드가 비어 있으면 ACF 필드에서 associated_posts 를 꺼낸다.
// ACF 는 값이 없으면 false 나 [] 를 내려주므로 형태가 맞지 않으면 조용히 무시한다.
func (it issueItem) associated() []associatedItem {
	if len(it.AssociatedPosts) > 0 {
		return it.AssociatedPosts
	}
	if len(it.ACF) == 0 || it.ACF[0] != '{' {
		return nil
	}
	var acf struct {
		AssociatedPosts json.RawMessage `json:"associated_posts"`
	}
	if err := json.Unmarshal(it.ACF, &acf); err != nil {
		return nil
	}
	if len(acf.AssociatedPosts) == 0 || acf.AssociatedPosts[0] != '[' {
		return nil
	}
	var items []associatedItem
	if err := json.Unmarshal(acf.AssociatedPosts, &items); err != nil {
		return nil
	}
	return items
}

// ListMagazineIssues 는 이슈 목록을 받아 이미지와 연관 글을 보강한다.
// 에러는 기본 목록 호출이 실패했을 때만 반환한다. 보강 실패는 항목 단위로 격리된다.
func (c *Client) ListMagazineIssues(ctx context.Context, q PostQuery) ([]models.MagazineIssue, error) {
	var items []issueItem
	if _, err := c.getJSON(ctx, "ListMagazineIssues", wpPrefix+"/magazine", q.Values(), false, &items); err != nil {
		return nil, err
	}

	issues := make([]models.MagazineIssue, len(items))
	for i, it := range items {
		issues[i] = mapIssue(it)
	}
	c.enrichIssues(ctx, issues)
	return issues, nil
}

func mapIssue(it issueItem) models.MagazineIssue {
	assoc := it.associated()
	posts := make([]models.AssociatedPost, len(assoc))
	for i, a := range assoc {
		posts[i] = models.AssociatedPost{
			ID:      a.ID,
			Title:   a.PostTitle,
			Slug:    a.PostName,
			Excerpt: a.PostExcerpt,
			Date:    a.PostDate,
		}
	}
	return models.MagazineIssue{
		ID:              it.ID,
		Date:            it.Date,
		Slug:            it.Slug,
		Title:           it.Title,
		Content:         it.Content,
		FeaturedMedia:   it.FeaturedMedia,
		MagazineTags:    it.MagazineTags,
		AssociatedPosts: posts,
	}
}

// enrichIssues 는 이슈 대표 이미지와 연관 글(전체 글 -> 작성자)을 동시에 조회한다.
// 모든 고루틴이 nil 을 반환하므로 한 항목의 실패가 다른 항목을 취소하지 않는다.
// 결과는 인덱스로 미리 잡아둔 자리에만 쓰므로 잠금이 필요 없다.
func (c *Client) enrichIssues(ctx context.Context, issues []models.MagazineIssue) {
	g := new(errgroup.Group)
	g.SetLimit(c.concurrency)

	for i := range issues {
		issue := &issues[i]
		if issue.FeaturedMedia > 0 {
			g.Go(func() error {
				src, err := c.MediaURL(ctx, issue.FeaturedMedia)
				if err != nil {
					logger.WarnWithFields("magazine issue image lookup failed", logger.Fields{
						"issue_id": issue.ID,
						"media_id": issue.FeaturedMedia,
						"error":    err.Error(),
					})
					return nil
				}
				issue.FeaturedImage = &src
				return nil
			})
		}

		for j := range issue.AssociatedPosts {
			ap := &issue.AssociatedPosts[j]
			g.Go(func() error {
				c.enrichAssociated(ctx, issue.ID, ap)
				return nil
			})
		}
	}

	_ = g.Wait()
}

// enrichAssociated 는 연관 글 하나를 보강한다. 어느 단계든 실패하면 image/author 를 모두 nil 로 둔다.
func (c *Client) enrichAssociated(ctx context.Context, issueID int, ap *models.AssociatedPost) {
	degrade := func(step string, err error) {
		ap.Image = nil
		ap.Author = nil
		logger.WarnWithFields("magazine associated post enrichment failed", logger.Fields{
			"issue_id": issueID,
			"post_id":  ap.ID,
			"step":     step,
			"error":    err.Error(),
		})
	}

	post, err := c.GetPost(ctx, ap.ID)
	if err != nil {
		degrade("post", err)
		return
	}
	author, err := c.GetAuthor(ctx, post.AuthorID())
	if err != nil {
		degrade("author", err)
		return
	}

	if ap.Title == "" {
		ap.Title = post.Title.Rendered
	}
	if ap.Slug == "" {
		ap.Slug = post.Slug
	}
	if ap.Excerpt == "" {
		ap.Excerpt = post.Excerpt.Rendered
	}
	if ap.Date.IsZero() {
		ap.Date = post.Date
	}
	if img := post.ImageURL(); img != "" {
		ap.Image = &img
	}
	ap.Author = &author
}
