package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"byp-site/cmd/api/clients/contentclient"
	"byp-site/config"
)

// memStorage 는 Save 실패를 주입할 수 있는 메모리 저장소다.
type memStorage struct {
	data       map[string][]byte
	failSaves  atomic.Int32
	saveCalls  atomic.Int32
	clearCalls atomic.Int32
}

func newMemStorage() *memStorage {
	return &memStorage{data: map[string][]byte{}}
}

func (m *memStorage) Name() string { return "mem" }

func (m *memStorage) Load(ctx context.Context, name string) ([]byte, error) {
	b, ok := m.data[name]
	if !ok {
		return nil, ErrNoSnapshot
	}
	return b, nil
}

func (m *memStorage) Save(ctx context.Context, name string, data []byte) error {
	m.saveCalls.Add(1)
	if m.failSaves.Load() > 0 {
		m.failSaves.Add(-1)
		return errors.New("quota exceeded")
	}
	m.data[name] = data
	return nil
}

func (m *memStorage) Clear(ctx context.Context) error {
	m.clearCalls.Add(1)
	m.data = map[string][]byte{}
	return nil
}

func TestPersist_SavesAfterSuccessfulFetch(t *testing.T) {
	mem := newMemStorage()
	s, err := New(&fakeSource{}, Options{Storage: mem, SnapshotName: "test"})
	require.NoError(t, err)

	_, err = s.FetchCategories(context.Background(), false)
	require.NoError(t, err)

	assert.EqualValues(t, 1, mem.saveCalls.Load())
	assert.Contains(t, string(mem.data["test"]), `"News"`)
}

func TestPersist_PartitionsAreNotSaved(t *testing.T) {
	mem := newMemStorage()
	s, err := New(&fakeSource{}, Options{Storage: mem})
	require.NoError(t, err)

	_, err = s.FetchPostsByTag(context.Background(), 3, contentclient.PostQuery{}, false)
	require.NoError(t, err)
	assert.EqualValues(t, 0, mem.saveCalls.Load())
}

func TestPersist_ClearsAndRetriesOnce(t *testing.T) {
	mem := newMemStorage()
	mem.data["other"] = []byte("stale")
	mem.failSaves.Store(1)

	s, err := New(&fakeSource{}, Options{Storage: mem, SnapshotName: "test"})
	require.NoError(t, err)

	_, err = s.FetchTags(context.Background(), false)
	require.NoError(t, err)

	assert.EqualValues(t, 2, mem.saveCalls.Load())
	assert.EqualValues(t, 1, mem.clearCalls.Load())
	assert.NotContains(t, mem.data, "other")
	assert.Contains(t, mem.data, "test")
}

func TestPersist_GivesUpAfterRetry(t *testing.T) {
	mem := newMemStorage()
	mem.failSaves.Store(5)

	s, err := New(&fakeSource{}, Options{Storage: mem})
	require.NoError(t, err)

	got, err := s.FetchTags(context.Background(), false)
	require.NoError(t, err, "persistence failures must not fail the fetch")
	assert.Len(t, got, 1)
	assert.EqualValues(t, 2, mem.saveCalls.Load())
	assert.Equal(t, Ready, s.Tags().State)
}

func TestRestore_HydratesEmptyEntries(t *testing.T) {
	mem := newMemStorage()
	clk := newClock()

	first, err := New(&fakeSource{}, Options{Storage: mem, Now: clk.Now})
	require.NoError(t, err)
	_, err = first.FetchAuthors(context.Background(), false)
	require.NoError(t, err)

	src := &fakeSource{}
	second, err := New(src, Options{Storage: mem, Now: clk.Now})
	require.NoError(t, err)
	require.NoError(t, second.Restore(context.Background()))

	e := second.Authors()
	assert.Equal(t, Ready, e.State)
	require.Len(t, e.Data, 1)
	assert.Equal(t, "Ada", e.Data[0].Name)

	// 복원된 categories 는 비어 있으므로 여전히 네트워크를 탄다.
	_, err = second.FetchCategories(context.Background(), false)
	require.NoError(t, err)
	assert.EqualValues(t, 1, src.categoriesCalls.Load())
}

func TestRestore_NoSnapshotIsNoop(t *testing.T) {
	s, err := New(&fakeSource{}, Options{Storage: newMemStorage()})
	require.NoError(t, err)
	assert.NoError(t, s.Restore(context.Background()))
	assert.Equal(t, NotFetched, s.Posts().State)
}

func TestRestore_CorruptSnapshot(t *testing.T) {
	mem := newMemStorage()
	mem.data["byp-store"] = []byte("{not json")
	s, err := New(&fakeSource{}, Options{Storage: mem})
	require.NoError(t, err)
	assert.Error(t, s.Restore(context.Background()))
}

func TestFileStorage_RoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "snapshots")
	fs, err := NewFileStorage(dir)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = fs.Load(ctx, "snap")
	assert.ErrorIs(t, err, ErrNoSnapshot)

	require.NoError(t, fs.Save(ctx, "snap", []byte(`{"version":1}`)))
	got, err := fs.Load(ctx, "snap")
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":1}`, string(got))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("x"), 0o644))
	require.NoError(t, fs.Clear(ctx))
	_, err = fs.Load(ctx, "snap")
	assert.ErrorIs(t, err, ErrNoSnapshot)
	_, err = os.Stat(filepath.Join(dir, "keep.txt"))
	assert.NoError(t, err)
}

func TestRedisStorage_RoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	rs := NewRedisStorage(client)
	t.Cleanup(func() { _ = rs.Close() })
	ctx := context.Background()

	require.NoError(t, rs.Ping(ctx))

	_, err := rs.Load(ctx, "snap")
	assert.ErrorIs(t, err, ErrNoSnapshot)

	require.NoError(t, rs.Save(ctx, "snap", []byte("payload")))
	assert.True(t, mr.Exists("byp:store:snap"))

	got, err := rs.Load(ctx, "snap")
	require.NoError(t, err)
	assert.Equal(t, "payload", string(got))

	require.NoError(t, mr.Set("unrelated", "v"))
	require.NoError(t, rs.Clear(ctx))
	assert.False(t, mr.Exists("byp:store:snap"))
	assert.True(t, mr.Exists("unrelated"))
}

func TestStoreWithRedis_RestoreAcrossInstances(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	rs, err := NewRedisStorageWithURL("redis://" + mr.Addr() + "/0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = rs.Close() })

	first, err := New(&fakeSource{}, Options{Storage: rs})
	require.NoError(t, err)
	_, err = first.FetchMagazineTags(ctx, false)
	require.NoError(t, err)

	second, err := New(&fakeSource{}, Options{Storage: rs})
	require.NoError(t, err)
	require.NoError(t, second.Restore(ctx))
	assert.Equal(t, Ready, second.MagazineTags().State)

	second.ClearAll(ctx)
	assert.Equal(t, NotFetched, second.MagazineTags().State)
	assert.Empty(t, mr.Keys())
}

func TestMongoStorage_RoundTrip(t *testing.T) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	storage, closeFn, err := OpenStorage(ctx, config.StoreConfig{
		Persistence: "mongo",
		MongoURI:    uri,
		MongoDBName: "byp_test",
	})
	require.NoError(t, err)
	t.Cleanup(func() { closeFn(context.Background()) })

	require.NoError(t, storage.Save(ctx, "snap", []byte("payload")))
	got, err := storage.Load(ctx, "snap")
	require.NoError(t, err)
	assert.Equal(t, "payload", string(got))

	require.NoError(t, storage.Clear(ctx))
	_, err = storage.Load(ctx, "snap")
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestOpenStorage(t *testing.T) {
	ctx := context.Background()

	st, closeFn, err := OpenStorage(ctx, config.StoreConfig{Persistence: "none"})
	require.NoError(t, err)
	assert.Nil(t, st)
	closeFn(ctx)

	st, _, err = OpenStorage(ctx, config.StoreConfig{Persistence: "file", FileDir: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, "file", st.Name())

	mr := miniredis.RunT(t)
	st, closeFn, err = OpenStorage(ctx, config.StoreConfig{Persistence: "redis", RedisURL: "redis://" + mr.Addr()})
	require.NoError(t, err)
	assert.Equal(t, "redis", st.Name())
	closeFn(ctx)

	_, _, err = OpenStorage(ctx, config.StoreConfig{Persistence: "redis"})
	assert.Error(t, err)

	_, _, err = OpenStorage(ctx, config.StoreConfig{Persistence: "s3"})
	assert.Error(t, err)
}
