package store

import (
	"context"
	"fmt"
	"strings"

	"byp-site/config"
	"byp-site/db"
)

// OpenStorage 는 설정(store.persistence)에 맞는 스냅샷 저장소를 연다.
// "none" 이면 nil 을 돌려주며 스토어는 메모리에만 유지된다.
// 반환된 close 함수는 항상 호출해도 안전하다.
func OpenStorage(ctx context.Context, cfg config.StoreConfig) (Storage, func(context.Context), error) {
	noop := func(context.Context) {}

	switch strings.ToLower(cfg.Persistence) {
	case "", "none":
		return nil, noop, nil
	case "file":
		fs, err := NewFileStorage(cfg.FileDir)
		if err != nil {
			return nil, noop, fmt.Errorf("file storage: %w", err)
		}
		return fs, noop, nil
	case "redis":
		if cfg.RedisURL == "" {
			return nil, noop, fmt.Errorf("redis storage: redis_url is empty")
		}
		rs, err := NewRedisStorageWithURL(cfg.RedisURL)
		if err != nil {
			return nil, noop, fmt.Errorf("redis storage: %w", err)
		}
		if err := rs.Ping(ctx); err != nil {
			_ = rs.Close()
			return nil, noop, fmt.Errorf("redis storage: %w", err)
		}
		return rs, func(context.Context) { _ = rs.Close() }, nil
	case "mongo":
		if err := db.Init(ctx, cfg); err != nil {
			return nil, noop, fmt.Errorf("mongo storage: %w", err)
		}
		ms := NewMongoStorage(db.Database().Collection(db.SnapshotCollection))
		return ms, func(ctx context.Context) { _ = db.Close(ctx) }, nil
	default:
		return nil, noop, fmt.Errorf("unknown store persistence %q", cfg.Persistence)
	}
}
