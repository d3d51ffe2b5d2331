package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"byp-site/cmd/api/clients/contentclient"
	"byp-site/cmd/api/clients/listclient"
	"byp-site/cmd/api/httpclient"
	"byp-site/cmd/api/sanitize"
	"byp-site/cmd/api/store"
	"byp-site/config"
	"byp-site/models"
)

func TestCacheState(t *testing.T) {
	fetched := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	ok := cacheState(store.Entry[models.Post]{State: store.Ready, FetchedAt: fetched}, nil)
	assert.Equal(t, "ready", ok.State)
	require.NotNil(t, ok.FetchedAt)
	assert.Equal(t, fetched, *ok.FetchedAt)
	assert.Empty(t, ok.Error)

	failed := cacheState(store.Entry[models.Post]{State: store.Failed, Err: "status=500"}, errors.New("ignored"))
	assert.Equal(t, "failed", failed.State)
	assert.Equal(t, "status=500", failed.Error)
	assert.Nil(t, failed.FetchedAt)

	cancelled := cacheState(store.Entry[models.Post]{State: store.NotFetched}, context.Canceled)
	assert.Equal(t, "failed", cancelled.State)
	assert.Equal(t, context.Canceled.Error(), cancelled.Error)
}

func TestStaleData(t *testing.T) {
	e := store.Entry[models.Post]{Data: []models.Post{{ID: 1}}, Key: "k1"}
	fresh := []models.Post{{ID: 2}}

	assert.Equal(t, fresh, staleData(e, fresh, nil, "k1"))
	assert.Equal(t, e.Data, staleData(e, nil, errors.New("x"), "k1"))
	assert.Nil(t, staleData(e, nil, errors.New("x"), "k2"))
}

func TestMapPost(t *testing.T) {
	cleaner := sanitize.NewCleaner("wp.blackyouthproject.com", nil)
	p := models.Post{
		ID:               9,
		Slug:             "a-post",
		Title:            models.Rendered{Rendered: "Caf&#233; &amp; Bar"},
		Excerpt:          models.Rendered{Rendered: "<p>Intro</p>"},
		Content:          models.Rendered{Rendered: `<p><a href="https://wp.blackyouthproject.com/category/politics">x</a></p>`},
		Author:           models.AuthorRef{ID: 4},
		FeaturedImageURL: "https://img/1.jpg",
	}

	list := mapPost(cleaner, p, false)
	assert.Equal(t, "Café & Bar", list.Title)
	assert.Equal(t, "Intro", list.Excerpt)
	assert.Empty(t, list.Content)
	assert.Equal(t, 4, list.AuthorID)
	assert.Equal(t, "https://img/1.jpg", list.ImageURL)

	full := mapPost(cleaner, p, true)
	assert.Contains(t, full.Content, `href="/search?tag=politics"`)
}

func TestCleanIssueDoesNotMutateInput(t *testing.T) {
	cleaner := sanitize.NewCleaner("", nil)
	issue := models.MagazineIssue{
		ID:              1,
		AssociatedPosts: []models.AssociatedPost{{ID: 2, Title: "<b>Bold</b>"}},
	}
	out := cleanIssue(cleaner, issue)
	assert.Equal(t, "Bold", out.AssociatedPosts[0].Title)
	assert.Equal(t, "<b>Bold</b>", issue.AssociatedPosts[0].Title)
}

func TestSubscribeRejectsInvalidEmail(t *testing.T) {
	svc := NewSubscribeService(listclient.NewWithBase(httpclient.NewBaseClient(""), "", ""))

	assert.ErrorIs(t, svc.Subscribe(context.Background(), "nope"), ErrInvalidEmail)
	assert.ErrorIs(t, svc.Subscribe(context.Background(), "Name <a@b.com>"), ErrInvalidEmail)
	assert.ErrorIs(t, svc.Subscribe(context.Background(), "a@b.com"), listclient.ErrNotConfigured)
}

// magazineSource 는 매거진 뷰가 쓰는 호출만 응답한다. failCategory 가 켜지면 카테고리 조회가 실패한다.
type magazineSource struct {
	failCategory atomic.Bool
}

func (m *magazineSource) ListPosts(ctx context.Context, q contentclient.PostQuery) ([]models.Post, error) {
	return []models.Post{{ID: 11, Slug: "from-category"}}, nil
}

func (m *magazineSource) PostsByTagIDs(ctx context.Context, ids []int, perPage int) ([]models.Post, error) {
	return nil, nil
}

func (m *magazineSource) PostsByAuthor(ctx context.Context, username string, q contentclient.PostQuery) ([]models.Post, error) {
	return nil, nil
}

func (m *magazineSource) CategoryBySlug(ctx context.Context, slug string) (*models.Term, error) {
	if m.failCategory.Load() {
		return nil, errors.New("status=502")
	}
	return &models.Term{ID: 8, Slug: slug}, nil
}

func (m *magazineSource) TagBySlug(ctx context.Context, slug string) (*models.Term, error) {
	return nil, nil
}

func (m *magazineSource) ListCategories(ctx context.Context) ([]models.Term, error) { return nil, nil }
func (m *magazineSource) ListTags(ctx context.Context) ([]models.Term, error)       { return nil, nil }
func (m *magazineSource) ListAuthors(ctx context.Context) ([]models.Author, error)  { return nil, nil }

func (m *magazineSource) ListMagazineIssues(ctx context.Context, q contentclient.PostQuery) ([]models.MagazineIssue, error) {
	return []models.MagazineIssue{{ID: 1}}, nil
}

func (m *magazineSource) ListMagazineTags(ctx context.Context) ([]models.Term, error) {
	return []models.Term{{ID: 2, Name: "Issue 1"}}, nil
}

func TestMagazineSectionCarriesCacheState(t *testing.T) {
	src := &magazineSource{}
	st, err := store.New(src, store.Options{})
	require.NoError(t, err)
	svc := NewViewService(st, nil, sanitize.NewCleaner("", nil), config.MagazineConfig{
		SectionTags:      []string{"ble"},
		FallbackCategory: "Magazine",
		PerPage:          4,
	})
	ctx := context.Background()

	view := svc.Magazine(ctx, false)
	assert.Equal(t, "ready", view.MoreFromSection.State)
	require.Len(t, view.MoreFromSection.Data, 1)
	assert.Equal(t, "from-category", view.MoreFromSection.Data[0].Slug)

	src.failCategory.Store(true)
	view = svc.Magazine(ctx, true)
	assert.Equal(t, "failed", view.MoreFromSection.State)
	assert.Equal(t, "status=502", view.MoreFromSection.Error)
	// 실패해도 같은 키로 받아둔 이전 글은 그대로 보여준다.
	require.Len(t, view.MoreFromSection.Data, 1)
	assert.Equal(t, "from-category", view.MoreFromSection.Data[0].Slug)
	assert.Equal(t, "ready", view.Issues.State)
}
