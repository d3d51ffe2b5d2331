package store

import "time"

// State 는 캐시 엔트리의 상태다.
type State int

const (
	NotFetched State = iota
	Loading
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "not_fetched"
	}
}

// Entry 는 리소스 컬렉션 하나의 캐시 상태다.
// Loading 과 Failed 상태에서도 Data 에는 직전에 성공한 데이터가 남아 있다.
// Key 는 파라미터가 있는 컬렉션에서 Data 를 받아온 쿼리의 직렬화 값이다.
type Entry[T any] struct {
	State     State
	Data      []T
	FetchedAt time.Time
	Err       string
	Key       string
}

// fresh 는 네트워크 없이 캐시로 응답해도 되는지 판단한다.
func (e Entry[T]) fresh(now time.Time, key string, window time.Duration) bool {
	if len(e.Data) == 0 || e.FetchedAt.IsZero() {
		return false
	}
	if e.Key != key {
		return false
	}
	return now.Sub(e.FetchedAt) <= window
}

// HasData 는 화면에 보여줄 데이터(최신이든 오래됐든)가 있는지 알려준다.
func (e Entry[T]) HasData() bool {
	return len(e.Data) > 0
}

// slot 은 엔트리와 요청 순번을 묶는다.
// seq 는 fetch 가 시작될 때마다 증가하고, 응답이 도착했을 때 seq 가 바뀌어 있으면
// 더 새로운 요청이 있었다는 뜻이므로 그 응답은 버린다.
type slot[T any] struct {
	entry Entry[T]
	seq   uint64
}

// snapshot 은 잠금 안에서 호출해야 한다. Data 슬라이스는 교체만 되고 수정되지 않으므로 얕은 복사로 충분하다.
func (s *slot[T]) snapshot() Entry[T] {
	return s.entry
}
