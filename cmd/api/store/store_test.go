package store

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"byp-site/cmd/api/clients/contentclient"
	"byp-site/models"
)

type fakeSource struct {
	listPosts     func(ctx context.Context, q contentclient.PostQuery) ([]models.Post, error)
	postsByTagIDs func(ctx context.Context, ids []int, perPage int) ([]models.Post, error)
	categoryBy    func(ctx context.Context, slug string) (*models.Term, error)
	tagBy         func(ctx context.Context, slug string) (*models.Term, error)
	categories    func(ctx context.Context) ([]models.Term, error)

	listPostsCalls  atomic.Int32
	categoriesCalls atomic.Int32
}

func (f *fakeSource) ListPosts(ctx context.Context, q contentclient.PostQuery) ([]models.Post, error) {
	f.listPostsCalls.Add(1)
	if f.listPosts == nil {
		return []models.Post{{ID: 1}}, nil
	}
	return f.listPosts(ctx, q)
}

func (f *fakeSource) PostsByTagIDs(ctx context.Context, ids []int, perPage int) ([]models.Post, error) {
	if f.postsByTagIDs == nil {
		return nil, nil
	}
	return f.postsByTagIDs(ctx, ids, perPage)
}

func (f *fakeSource) PostsByAuthor(ctx context.Context, username string, q contentclient.PostQuery) ([]models.Post, error) {
	return []models.Post{{ID: 7}}, nil
}

func (f *fakeSource) CategoryBySlug(ctx context.Context, slug string) (*models.Term, error) {
	if f.categoryBy == nil {
		return nil, nil
	}
	return f.categoryBy(ctx, slug)
}

func (f *fakeSource) TagBySlug(ctx context.Context, slug string) (*models.Term, error) {
	if f.tagBy == nil {
		return nil, nil
	}
	return f.tagBy(ctx, slug)
}

func (f *fakeSource) ListCategories(ctx context.Context) ([]models.Term, error) {
	f.categoriesCalls.Add(1)
	if f.categories == nil {
		return []models.Term{{ID: 1, Name: "News", Slug: "news"}}, nil
	}
	return f.categories(ctx)
}

func (f *fakeSource) ListTags(ctx context.Context) ([]models.Term, error) {
	return []models.Term{{ID: 2, Name: "Culture", Slug: "culture"}}, nil
}

func (f *fakeSource) ListAuthors(ctx context.Context) ([]models.Author, error) {
	return []models.Author{{ID: 3, Name: "Ada"}}, nil
}

func (f *fakeSource) ListMagazineIssues(ctx context.Context, q contentclient.PostQuery) ([]models.MagazineIssue, error) {
	return []models.MagazineIssue{{ID: 9}}, nil
}

func (f *fakeSource) ListMagazineTags(ctx context.Context) ([]models.Term, error) {
	return []models.Term{{ID: 4, Name: "Issue 1"}}, nil
}

// clock 은 테스트에서 시간을 수동으로 움직인다.
type clock struct {
	mu  sync.Mutex
	now time.Time
}

func newClock() *clock {
	return &clock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestStore(t *testing.T, src Source, clk *clock) *Store {
	t.Helper()
	opts := Options{}
	if clk != nil {
		opts.Now = clk.Now
	}
	s, err := New(src, opts)
	require.NoError(t, err)
	return s
}

func postAt(id int, day int) models.Post {
	return models.Post{ID: id, Date: models.Time{Time: time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC)}}
}

func TestNew_RequiresSource(t *testing.T) {
	_, err := New(nil, Options{})
	assert.Error(t, err)
}

func TestFetchCategories_FreshCacheSkipsNetwork(t *testing.T) {
	src := &fakeSource{}
	clk := newClock()
	s := newTestStore(t, src, clk)
	ctx := context.Background()

	first, err := s.FetchCategories(ctx, false)
	require.NoError(t, err)
	require.Len(t, first, 1)

	clk.Advance(4 * time.Minute)
	second, err := s.FetchCategories(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.EqualValues(t, 1, src.categoriesCalls.Load())

	e := s.Categories()
	assert.Equal(t, Ready, e.State)
	assert.Equal(t, clk.Now().Add(-4*time.Minute), e.FetchedAt)
}

func TestFetchCategories_ForceAlwaysFetches(t *testing.T) {
	src := &fakeSource{}
	s := newTestStore(t, src, newClock())
	ctx := context.Background()

	_, err := s.FetchCategories(ctx, false)
	require.NoError(t, err)
	_, err = s.FetchCategories(ctx, true)
	require.NoError(t, err)
	assert.EqualValues(t, 2, src.categoriesCalls.Load())
}

func TestFetchCategories_ExpiresAfterWindow(t *testing.T) {
	src := &fakeSource{}
	clk := newClock()
	s := newTestStore(t, src, clk)
	ctx := context.Background()

	_, err := s.FetchCategories(ctx, false)
	require.NoError(t, err)

	clk.Advance(FreshnessWindow + time.Second)
	_, err = s.FetchCategories(ctx, false)
	require.NoError(t, err)
	assert.EqualValues(t, 2, src.categoriesCalls.Load())
}

func TestFetchCategories_EmptyResultIsNeverFresh(t *testing.T) {
	src := &fakeSource{categories: func(ctx context.Context) ([]models.Term, error) {
		return nil, nil
	}}
	s := newTestStore(t, src, newClock())
	ctx := context.Background()

	got, err := s.FetchCategories(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)

	_, err = s.FetchCategories(ctx, false)
	require.NoError(t, err)
	assert.EqualValues(t, 2, src.categoriesCalls.Load())
}

func TestFetchPosts_QueryChangeRefetches(t *testing.T) {
	src := &fakeSource{}
	s := newTestStore(t, src, newClock())
	ctx := context.Background()

	_, err := s.FetchPosts(ctx, contentclient.PostQuery{Page: 1}, false)
	require.NoError(t, err)
	_, err = s.FetchPosts(ctx, contentclient.PostQuery{Page: 1}, false)
	require.NoError(t, err)
	assert.EqualValues(t, 1, src.listPostsCalls.Load())

	_, err = s.FetchPosts(ctx, contentclient.PostQuery{Page: 2}, false)
	require.NoError(t, err)
	assert.EqualValues(t, 2, src.listPostsCalls.Load())
	assert.Equal(t, contentclient.PostQuery{Page: 2}.CacheKey(), s.Posts().Key)
}

func TestFetchPosts_FailureKeepsPreviousData(t *testing.T) {
	var fail atomic.Bool
	src := &fakeSource{listPosts: func(ctx context.Context, q contentclient.PostQuery) ([]models.Post, error) {
		if fail.Load() {
			return nil, errors.New("content-api list_posts: status=500 body=boom")
		}
		return []models.Post{{ID: 10}, {ID: 11}}, nil
	}}
	s := newTestStore(t, src, newClock())
	ctx := context.Background()

	_, err := s.FetchPosts(ctx, contentclient.PostQuery{}, false)
	require.NoError(t, err)

	fail.Store(true)
	_, err = s.FetchPosts(ctx, contentclient.PostQuery{}, true)
	require.Error(t, err)

	e := s.Posts()
	assert.Equal(t, Failed, e.State)
	assert.Contains(t, e.Err, "status=500")
	require.Len(t, e.Data, 2)
	assert.True(t, e.HasData())
}

func TestFetchPosts_ConcurrentCallsShareOneRequest(t *testing.T) {
	release := make(chan struct{})
	src := &fakeSource{listPosts: func(ctx context.Context, q contentclient.PostQuery) ([]models.Post, error) {
		<-release
		return []models.Post{{ID: 1}}, nil
	}}
	s := newTestStore(t, src, newClock())
	ctx := context.Background()

	const callers = 5
	var wg sync.WaitGroup
	results := make([][]models.Post, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = s.FetchPosts(ctx, contentclient.PostQuery{Page: 1}, false)
		}(i)
	}

	require.Eventually(t, func() bool {
		return s.Posts().State == Loading
	}, time.Second, 5*time.Millisecond)
	// 나머지 호출자가 flight 에 합류할 시간을 준다.
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Len(t, results[i], 1)
	}
	assert.EqualValues(t, 1, src.listPostsCalls.Load())
	assert.Equal(t, Ready, s.Posts().State)
}

func TestFetchPosts_StaleResponseIsDropped(t *testing.T) {
	slow := make(chan struct{})
	src := &fakeSource{listPosts: func(ctx context.Context, q contentclient.PostQuery) ([]models.Post, error) {
		if q.Page == 1 {
			<-slow
			return []models.Post{{ID: 100}}, nil
		}
		return []models.Post{{ID: 200}}, nil
	}}
	s := newTestStore(t, src, newClock())
	ctx := context.Background()

	done := make(chan []models.Post, 1)
	go func() {
		got, _ := s.FetchPosts(ctx, contentclient.PostQuery{Page: 1}, false)
		done <- got
	}()
	require.Eventually(t, func() bool {
		return s.Posts().State == Loading
	}, time.Second, 5*time.Millisecond)

	newer, err := s.FetchPosts(ctx, contentclient.PostQuery{Page: 2}, false)
	require.NoError(t, err)
	require.Equal(t, 200, newer[0].ID)

	close(slow)
	older := <-done
	// 늦게 도착한 응답은 호출자에게는 돌아가지만 엔트리를 덮어쓰지 않는다.
	require.Len(t, older, 1)
	assert.Equal(t, 100, older[0].ID)

	e := s.Posts()
	assert.Equal(t, Ready, e.State)
	require.Len(t, e.Data, 1)
	assert.Equal(t, 200, e.Data[0].ID)
	assert.Equal(t, contentclient.PostQuery{Page: 2}.CacheKey(), e.Key)
}

func TestFetchPosts_CancelledCallerRevertsState(t *testing.T) {
	src := &fakeSource{listPosts: func(ctx context.Context, q contentclient.PostQuery) ([]models.Post, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}}
	s := newTestStore(t, src, newClock())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := s.FetchPosts(ctx, contentclient.PostQuery{}, false)
		errCh <- err
	}()
	require.Eventually(t, func() bool {
		return s.Posts().State == Loading
	}, time.Second, 5*time.Millisecond)
	cancel()

	assert.ErrorIs(t, <-errCh, context.Canceled)
	require.Eventually(t, func() bool {
		return s.Posts().State == NotFetched
	}, time.Second, 5*time.Millisecond)
	assert.Empty(t, s.Posts().Err)
}

// flightWaiters 는 진행 중인 모든 flight 의 대기자 수 합이다.
func flightWaiters(s *Store) int {
	s.flightMu.Lock()
	defer s.flightMu.Unlock()
	n := 0
	for _, f := range s.flights {
		n += f.waiters
	}
	return n
}

func TestFetchPosts_CancelledLeaderDoesNotFailOtherWaiters(t *testing.T) {
	release := make(chan struct{})
	src := &fakeSource{listPosts: func(ctx context.Context, q contentclient.PostQuery) ([]models.Post, error) {
		select {
		case <-release:
			return []models.Post{{ID: 1}}, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}}
	s := newTestStore(t, src, newClock())

	leaderCtx, cancel := context.WithCancel(context.Background())
	leaderErr := make(chan error, 1)
	go func() {
		_, err := s.FetchPosts(leaderCtx, contentclient.PostQuery{Page: 1}, false)
		leaderErr <- err
	}()
	require.Eventually(t, func() bool {
		return s.Posts().State == Loading
	}, time.Second, 5*time.Millisecond)

	type result struct {
		posts []models.Post
		err   error
	}
	follower := make(chan result, 1)
	go func() {
		posts, err := s.FetchPosts(context.Background(), contentclient.PostQuery{Page: 1}, false)
		follower <- result{posts, err}
	}()
	require.Eventually(t, func() bool {
		return flightWaiters(s) == 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-leaderErr, context.Canceled)
	assert.Equal(t, 1, flightWaiters(s))

	close(release)
	got := <-follower
	require.NoError(t, got.err)
	require.Len(t, got.posts, 1)
	assert.EqualValues(t, 1, src.listPostsCalls.Load())
	assert.Equal(t, Ready, s.Posts().State)
	assert.Zero(t, flightWaiters(s))
}

func TestFetchPosts_CallerAfterAbandonedFlightStartsFresh(t *testing.T) {
	var calls atomic.Int32
	src := &fakeSource{listPosts: func(ctx context.Context, q contentclient.PostQuery) ([]models.Post, error) {
		if calls.Add(1) == 1 {
			<-ctx.Done()
			return nil, ctx.Err()
		}
		return []models.Post{{ID: 2}}, nil
	}}
	s := newTestStore(t, src, newClock())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := s.FetchPosts(ctx, contentclient.PostQuery{}, false)
		errCh <- err
	}()
	require.Eventually(t, func() bool {
		return s.Posts().State == Loading
	}, time.Second, 5*time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-errCh, context.Canceled)

	// 버려진 요청이 아직 끝나지 않았어도 새 호출자는 취소된 요청에 합류하지 않는다.
	got, err := s.FetchPosts(context.Background(), contentclient.PostQuery{}, false)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)
	require.Eventually(t, func() bool {
		return s.Posts().State == Ready
	}, time.Second, 5*time.Millisecond)
}

func TestFetchPostsByCategoryName_NoMatchIsEmpty(t *testing.T) {
	src := &fakeSource{}
	s := newTestStore(t, src, newClock())

	got, err := s.FetchPostsByCategoryName(context.Background(), "Does Not Exist", contentclient.PostQuery{}, false)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.EqualValues(t, 0, src.listPostsCalls.Load())
	assert.Equal(t, Ready, s.CategoryPosts(NameKey("Does Not Exist")).State)
}

func TestFetchPostsByCategoryName_ResolvesSlug(t *testing.T) {
	var gotSlug string
	var gotQuery contentclient.PostQuery
	src := &fakeSource{
		categoryBy: func(ctx context.Context, slug string) (*models.Term, error) {
			gotSlug = slug
			return &models.Term{ID: 42, Slug: slug}, nil
		},
		listPosts: func(ctx context.Context, q contentclient.PostQuery) ([]models.Post, error) {
			gotQuery = q
			return []models.Post{{ID: 5}}, nil
		},
	}
	s := newTestStore(t, src, newClock())

	got, err := s.FetchPostsByCategoryName(context.Background(), "Black Life Everywhere", contentclient.PostQuery{PerPage: 6}, false)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "black-life-everywhere", gotSlug)
	assert.Equal(t, []int{42}, gotQuery.Categories)
	assert.True(t, gotQuery.Embed)
	assert.Equal(t, 6, gotQuery.PerPage)
}

func TestPartitions_AreIndependent(t *testing.T) {
	src := &fakeSource{listPosts: func(ctx context.Context, q contentclient.PostQuery) ([]models.Post, error) {
		return []models.Post{{ID: q.Tags[0]}}, nil
	}}
	s := newTestStore(t, src, newClock())
	ctx := context.Background()

	_, err := s.FetchPostsByTag(ctx, 1, contentclient.PostQuery{}, false)
	require.NoError(t, err)
	_, err = s.FetchPostsByTag(ctx, 2, contentclient.PostQuery{}, false)
	require.NoError(t, err)

	assert.Equal(t, 1, s.TagPosts(IDKey(1)).Data[0].ID)
	assert.Equal(t, 2, s.TagPosts(IDKey(2)).Data[0].ID)

	s.ClearTagPosts("1")
	assert.Equal(t, NotFetched, s.TagPosts(IDKey(1)).State)
	assert.Equal(t, Ready, s.TagPosts(IDKey(2)).State)

	s.ClearAllTagPosts()
	assert.Equal(t, NotFetched, s.TagPosts(IDKey(2)).State)
}

func TestFetchPostsByAuthor_CachesPerUsername(t *testing.T) {
	s := newTestStore(t, &fakeSource{}, newClock())

	got, err := s.FetchPostsByAuthor(context.Background(), "ada", contentclient.PostQuery{}, false)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, Ready, s.AuthorPosts("ada").State)
	assert.Equal(t, NotFetched, s.AuthorPosts("bob").State)

	s.ClearAuthorPosts("ada")
	assert.Equal(t, NotFetched, s.AuthorPosts("ada").State)
}

func TestMoreFromSection_MergesCandidates(t *testing.T) {
	src := &fakeSource{
		tagBy: func(ctx context.Context, slug string) (*models.Term, error) {
			if slug == "black-life-everywhere" {
				return &models.Term{ID: 77, Slug: slug}, nil
			}
			return nil, nil
		},
		postsByTagIDs: func(ctx context.Context, ids []int, perPage int) ([]models.Post, error) {
			assert.Equal(t, []int{77}, ids)
			assert.Equal(t, 4, perPage)
			return []models.Post{postAt(1, 3), postAt(2, 9), postAt(1, 3), postAt(3, 5)}, nil
		},
	}
	s := newTestStore(t, src, newClock())

	got, err := s.MoreFromSection(context.Background(), []string{"ble", "black-life-everywhere"}, "Black Life Everywhere", 2, false)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].ID)
	assert.Equal(t, 3, got[1].ID)
	assert.Equal(t, Ready, s.Section().State)
	assert.EqualValues(t, 0, src.listPostsCalls.Load())
}

func TestMoreFromSection_FallsBackToCategory(t *testing.T) {
	src := &fakeSource{
		tagBy: func(ctx context.Context, slug string) (*models.Term, error) {
			return nil, errors.New("boom")
		},
		categoryBy: func(ctx context.Context, slug string) (*models.Term, error) {
			assert.Equal(t, "black-life-everywhere", slug)
			return &models.Term{ID: 12}, nil
		},
		listPosts: func(ctx context.Context, q contentclient.PostQuery) ([]models.Post, error) {
			assert.Equal(t, []int{12}, q.Categories)
			return []models.Post{{ID: 50}}, nil
		},
	}
	s := newTestStore(t, src, newClock())

	got, err := s.MoreFromSection(context.Background(), []string{"ble"}, "Black Life Everywhere", 6, false)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 50, got[0].ID)
}

func TestMergePosts(t *testing.T) {
	batches := [][]models.Post{
		{postAt(1, 1), postAt(2, 2)},
		{postAt(2, 2), postAt(3, 3)},
	}
	got := mergePosts(batches, 10)
	require.Len(t, got, 3)
	assert.Equal(t, []int{3, 2, 1}, []int{got[0].ID, got[1].ID, got[2].ID})

	assert.Len(t, mergePosts(batches, 1), 1)
	assert.Empty(t, mergePosts(nil, 3))
}

func TestClearAll_BlocksInFlightRefill(t *testing.T) {
	release := make(chan struct{})
	src := &fakeSource{listPosts: func(ctx context.Context, q contentclient.PostQuery) ([]models.Post, error) {
		<-release
		return []models.Post{{ID: 1}}, nil
	}}
	s := newTestStore(t, src, newClock())

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = s.FetchPosts(context.Background(), contentclient.PostQuery{}, false)
	}()
	require.Eventually(t, func() bool {
		return s.Posts().State == Loading
	}, time.Second, 5*time.Millisecond)

	s.ClearAll(context.Background())
	close(release)
	<-done

	assert.Equal(t, NotFetched, s.Posts().State)
	assert.Empty(t, s.Posts().Data)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "not_fetched", NotFetched.String())
	assert.Equal(t, "loading", Loading.String())
	assert.Equal(t, "ready", Ready.String())
	assert.Equal(t, "failed", Failed.String())
}
