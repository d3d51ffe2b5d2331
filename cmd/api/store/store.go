package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"byp-site/cmd/api/clients/contentclient"
	"byp-site/cmd/api/metrics"
	"byp-site/internal/logger"
	"byp-site/models"
)

// FreshnessWindow 는 캐시 엔트리를 네트워크 없이 그대로 쓰는 최대 경과 시간이다.
const FreshnessWindow = 5 * time.Minute

const defaultPartitionSize = 256

// Source 는 스토어가 데이터를 받아오는 원격 콘텐츠 API 다. contentclient.Client 가 구현한다.
type Source interface {
	ListPosts(ctx context.Context, q contentclient.PostQuery) ([]models.Post, error)
	PostsByTagIDs(ctx context.Context, ids []int, perPage int) ([]models.Post, error)
	PostsByAuthor(ctx context.Context, username string, q contentclient.PostQuery) ([]models.Post, error)
	CategoryBySlug(ctx context.Context, slug string) (*models.Term, error)
	TagBySlug(ctx context.Context, slug string) (*models.Term, error)
	ListCategories(ctx context.Context) ([]models.Term, error)
	ListTags(ctx context.Context) ([]models.Term, error)
	ListAuthors(ctx context.Context) ([]models.Author, error)
	ListMagazineIssues(ctx context.Context, q contentclient.PostQuery) ([]models.MagazineIssue, error)
	ListMagazineTags(ctx context.Context) ([]models.Term, error)
}

// Options 는 Store 생성 옵션이다.
type Options struct {
	// Storage 가 nil 이면 스냅샷을 저장하지 않는다.
	Storage      Storage
	SnapshotName string
	// PartitionSize 는 카테고리/태그/작성자별 파티션을 각각 몇 개까지 들고 있을지 정한다.
	PartitionSize int
	// Now 는 테스트에서 시계를 바꾸기 위한 훅이다.
	Now func() time.Time
}

// Store 는 "이 쿼리에 대해 충분히 최신인 데이터가 있는가, 아니면 가져와야 하는가"를 결정하는 단일 지점이다.
// 애플리케이션 루트에서 한 번 만들어 필요한 곳에 참조로 넘긴다.
type Store struct {
	source       Source
	storage      Storage
	snapshotName string
	now          func() time.Time

	group    singleflight.Group
	flightMu sync.Mutex
	flights  map[string]*flight

	mu             sync.Mutex
	posts          slot[models.Post]
	categories     slot[models.Term]
	tags           slot[models.Term]
	authors        slot[models.Author]
	magazineIssues slot[models.MagazineIssue]
	magazineTags   slot[models.Term]
	section        slot[models.Post]

	categoryPosts *lru.Cache[string, *slot[models.Post]]
	tagPosts      *lru.Cache[string, *slot[models.Post]]
	authorPosts   *lru.Cache[string, *slot[models.Post]]
}

func New(source Source, opts Options) (*Store, error) {
	if source == nil {
		return nil, errors.New("store: source is required")
	}
	size := opts.PartitionSize
	if size <= 0 {
		size = defaultPartitionSize
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	name := opts.SnapshotName
	if name == "" {
		name = "byp-store"
	}

	s := &Store{
		source:       source,
		storage:      opts.Storage,
		snapshotName: name,
		now:          now,
		flights:      make(map[string]*flight),
	}

	var err error
	if s.categoryPosts, err = lru.New[string, *slot[models.Post]](size); err != nil {
		return nil, fmt.Errorf("store: category partitions: %w", err)
	}
	if s.tagPosts, err = lru.New[string, *slot[models.Post]](size); err != nil {
		return nil, fmt.Errorf("store: tag partitions: %w", err)
	}
	if s.authorPosts, err = lru.New[string, *slot[models.Post]](size); err != nil {
		return nil, fmt.Errorf("store: author partitions: %w", err)
	}
	return s, nil
}

// request 는 load 한 번의 입력이다.
type request[T any] struct {
	family string
	// key 는 엔트리에 저장되는 쿼리 직렬화 값이다. 파라미터가 없는 컬렉션은 "".
	key string
	// flight 는 진행 중 요청 레지스트리의 키다. 같은 flight 키의 동시 요청은 네트워크 호출 하나를 공유한다.
	flight  string
	force   bool
	persist bool
	fetch   func(ctx context.Context) ([]T, error)
}

type flightResult[T any] struct {
	data []T
}

// load 는 모든 fetch action 이 공유하는 흐름이다.
//
//  1. force 가 아니고 엔트리가 최신이면(비어있지 않음, 키 일치, 5분 이내) 네트워크 없이 반환한다.
//  2. 아니면 flight 키로 진행 중인 요청에 합류하거나 새 요청을 시작한다.
//  3. 요청을 시작한 쪽은 Loading 으로 표시하고, 응답이 오면 순번을 확인한 뒤
//     성공이면 데이터를 교체하고 실패면 Failed 로 표시한다(이전 데이터는 유지).
//
// 원격 호출은 flight 가 공유하는 ctx 로 실행된다. 대기 중인 호출자는 자신의 ctx 가
// 끝나면 기다리기를 멈추고, 마지막 호출자가 떠났을 때만 원격 호출이 취소된다.
func load[T any](ctx context.Context, s *Store, sl *slot[T], req request[T]) ([]T, error) {
	s.mu.Lock()
	if !req.force && sl.entry.fresh(s.now(), req.key, FreshnessWindow) {
		data := sl.entry.Data
		s.mu.Unlock()
		metrics.RecordCacheLookup(req.family, "hit")
		return data, nil
	}
	s.mu.Unlock()

	flightKey := req.family + "|" + req.flight
	f := s.joinFlight(ctx, flightKey)
	defer s.leaveFlight(flightKey, f)

	ch := s.group.DoChan(flightKey, func() (any, error) {
		return runFetch(f.ctx, s, sl, req)
	})

	select {
	case res := <-ch:
		if res.Shared {
			metrics.RecordCacheLookup(req.family, "shared")
		} else {
			metrics.RecordCacheLookup(req.family, "miss")
		}
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(flightResult[T]).data, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// runFetch 는 flight 의 ctx 로 원격 호출을 수행하고 결과를 엔트리에 반영한다.
func runFetch[T any](ctx context.Context, s *Store, sl *slot[T], req request[T]) (any, error) {
	s.mu.Lock()
	sl.seq++
	seq := sl.seq
	prevState := sl.entry.State
	sl.entry.State = Loading
	s.mu.Unlock()

	data, err := req.fetch(ctx)

	s.mu.Lock()
	if sl.seq != seq {
		// 더 새로운 요청이 같은 슬롯에서 시작됐다. 이 응답으로 엔트리를 덮어쓰지 않는다.
		s.mu.Unlock()
		metrics.RecordCacheLookup(req.family, "stale_drop")
		if err != nil {
			return nil, err
		}
		return flightResult[T]{data: data}, nil
	}

	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) && errors.Is(err, context.Canceled) {
			// 기다리는 호출자가 모두 떠나 취소된 요청은 원격 실패가 아니므로 이전 상태로 되돌린다.
			sl.entry.State = prevState
			if prevState == Loading {
				sl.entry.State = restingState(sl.entry)
			}
			s.mu.Unlock()
			return nil, err
		}
		sl.entry.State = Failed
		sl.entry.Err = errorMessage(err, "Failed to fetch "+req.family)
		s.mu.Unlock()

		metrics.RecordCacheError(req.family)
		logger.WarnWithFields("store fetch failed", logger.Fields{
			"family": req.family,
			"key":    req.key,
			"error":  err.Error(),
		})
		return nil, err
	}

	if data == nil {
		data = []T{}
	}
	sl.entry = Entry[T]{
		State:     Ready,
		Data:      data,
		FetchedAt: s.now(),
		Key:       req.key,
	}
	s.mu.Unlock()

	if req.persist {
		s.persist(ctx)
	}
	return flightResult[T]{data: data}, nil
}

func restingState[T any](e Entry[T]) State {
	switch {
	case e.Err != "":
		return Failed
	case !e.FetchedAt.IsZero():
		return Ready
	default:
		return NotFetched
	}
}

// errorMessage 는 화면에 보여줄 에러 문자열이다. 에러 메시지가 비어 있으면 fallback 을 쓴다.
func errorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}

// entryOf 는 잠금을 잡고 엔트리 복사본을 돌려준다.
func entryOf[T any](s *Store, sl *slot[T]) Entry[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sl.snapshot()
}
