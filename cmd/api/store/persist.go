package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"byp-site/cmd/api/metrics"
	"byp-site/internal/logger"
	"byp-site/models"
)

const (
	snapshotVersion = 1
	persistTimeout  = 5 * time.Second
)

// ErrNoSnapshot 은 저장된 스냅샷이 없을 때 Storage.Load 가 반환한다.
var ErrNoSnapshot = errors.New("store: no snapshot")

// Storage 는 스냅샷 하나를 이름으로 저장하는 영속 계층이다.
// 동시에 여러 인스턴스가 쓰면 마지막 쓰기가 이긴다.
type Storage interface {
	Load(ctx context.Context, name string) ([]byte, error)
	Save(ctx context.Context, name string, data []byte) error
	// Clear 는 이 저장소가 관리하는 모든 항목을 지운다.
	Clear(ctx context.Context) error
	Name() string
}

type snapshotEntry[T any] struct {
	Data      []T       `json:"data"`
	FetchedAt time.Time `json:"fetched_at"`
	Key       string    `json:"key,omitempty"`
}

// Snapshot 은 저장되는 스토어 부분집합이다. 카테고리/태그/작성자 파티션은 포함하지 않는다.
type Snapshot struct {
	Version        int                                 `json:"version"`
	SavedAt        time.Time                           `json:"saved_at"`
	Posts          snapshotEntry[models.Post]          `json:"posts"`
	Categories     snapshotEntry[models.Term]          `json:"categories"`
	Tags           snapshotEntry[models.Term]          `json:"tags"`
	Authors        snapshotEntry[models.Author]        `json:"authors"`
	MagazineIssues snapshotEntry[models.MagazineIssue] `json:"magazine_issues"`
	MagazineTags   snapshotEntry[models.Term]          `json:"magazine_tags"`
}

func toSnapshotEntry[T any](e Entry[T]) snapshotEntry[T] {
	return snapshotEntry[T]{Data: e.Data, FetchedAt: e.FetchedAt, Key: e.Key}
}

// hydrate 는 비어 있는 엔트리만 스냅샷으로 채운다. 이미 받아온 데이터가 있으면 덮어쓰지 않는다.
func hydrate[T any](sl *slot[T], se snapshotEntry[T]) {
	if len(se.Data) == 0 || sl.entry.State != NotFetched {
		return
	}
	sl.entry = Entry[T]{
		State:     Ready,
		Data:      se.Data,
		FetchedAt: se.FetchedAt,
		Key:       se.Key,
	}
}

func (s *Store) buildSnapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Version:        snapshotVersion,
		SavedAt:        s.now(),
		Posts:          toSnapshotEntry(s.posts.entry),
		Categories:     toSnapshotEntry(s.categories.entry),
		Tags:           toSnapshotEntry(s.tags.entry),
		Authors:        toSnapshotEntry(s.authors.entry),
		MagazineIssues: toSnapshotEntry(s.magazineIssues.entry),
		MagazineTags:   toSnapshotEntry(s.magazineTags.entry),
	}
}

// persist 는 스냅샷을 저장한다. 실패하면 저장소를 비우고 한 번 더 시도한 뒤, 그래도 실패하면 로그만 남긴다.
// 요청 ctx 가 취소되어도 저장은 끝까지 하도록 취소를 끊고 별도 타임아웃을 건다.
func (s *Store) persist(ctx context.Context) {
	if s.storage == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
	defer cancel()

	data, err := json.Marshal(s.buildSnapshot())
	if err != nil {
		logger.ErrorWithFields("store snapshot encode failed", logger.Fields{"error": err.Error()})
		return
	}

	backend := s.storage.Name()
	err = s.storage.Save(ctx, s.snapshotName, data)
	if err == nil {
		metrics.RecordSnapshotWrite(backend, "ok")
		return
	}

	logger.WarnWithFields("store snapshot write failed, clearing storage and retrying", logger.Fields{
		"backend": backend,
		"error":   err.Error(),
	})
	if cerr := s.storage.Clear(ctx); cerr != nil {
		logger.WarnWithFields("store snapshot clear failed", logger.Fields{
			"backend": backend,
			"error":   cerr.Error(),
		})
	}
	if err := s.storage.Save(ctx, s.snapshotName, data); err != nil {
		metrics.RecordSnapshotWrite(backend, "failed")
		logger.ErrorWithFields("store snapshot write retry failed, giving up", logger.Fields{
			"backend": backend,
			"error":   err.Error(),
		})
		return
	}
	metrics.RecordSnapshotWrite(backend, "retried")
}

// Restore 는 시작 시 저장된 스냅샷으로 엔트리를 채운다.
// 스냅샷이 없으면 아무 일도 하지 않는다. 복원된 엔트리의 신선도는 저장된 fetched_at 으로 판단한다.
func (s *Store) Restore(ctx context.Context) error {
	if s.storage == nil {
		return nil
	}
	data, err := s.storage.Load(ctx, s.snapshotName)
	if errors.Is(err, ErrNoSnapshot) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("store restore: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("store restore: decode: %w", err)
	}
	if snap.Version != snapshotVersion {
		logger.WarnWithFields("store snapshot version mismatch, ignoring", logger.Fields{
			"version": snap.Version,
		})
		return nil
	}

	s.mu.Lock()
	hydrate(&s.posts, snap.Posts)
	hydrate(&s.categories, snap.Categories)
	hydrate(&s.tags, snap.Tags)
	hydrate(&s.authors, snap.Authors)
	hydrate(&s.magazineIssues, snap.MagazineIssues)
	hydrate(&s.magazineTags, snap.MagazineTags)
	s.mu.Unlock()

	logger.InfoWithFields("store snapshot restored", logger.Fields{
		"backend":  s.storage.Name(),
		"saved_at": snap.SavedAt.Format(time.RFC3339),
		"posts":    len(snap.Posts.Data),
	})
	return nil
}
