package store

import (
	"context"
	"time"
)

// FlightTimeout 는 공유 요청 하나가 원격 API 를 기다리는 최대 시간이다.
const FlightTimeout = 30 * time.Second

// flight 는 같은 flight 키를 기다리는 호출자들이 공유하는 ctx 다.
// 요청은 어느 한 호출자의 ctx 가 아니라 이 ctx 로 실행되고,
// 기다리는 호출자가 하나도 남지 않을 때만 취소된다.
type flight struct {
	ctx     context.Context
	cancel  context.CancelFunc
	waiters int
}

func (s *Store) joinFlight(ctx context.Context, key string) *flight {
	s.flightMu.Lock()
	defer s.flightMu.Unlock()

	f, ok := s.flights[key]
	if !ok {
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), FlightTimeout)
		f = &flight{ctx: fctx, cancel: cancel}
		s.flights[key] = f
	}
	f.waiters++
	return f
}

// leaveFlight 는 호출자 하나를 뺀다. 마지막 호출자가 떠나면 요청을 취소하고
// singleflight 에서도 잊어서 다음 호출자가 취소된 요청에 합류하지 않게 한다.
func (s *Store) leaveFlight(key string, f *flight) {
	s.flightMu.Lock()
	defer s.flightMu.Unlock()

	f.waiters--
	if f.waiters > 0 {
		return
	}
	f.cancel()
	if s.flights[key] == f {
		delete(s.flights, key)
		s.group.Forget(key)
	}
}
