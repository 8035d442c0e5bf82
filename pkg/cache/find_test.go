package cache

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

// memoryCache is a JSON-encoding in-memory Cacher. Tests that leave
// background cache writes running use a no-op logger.
type memoryCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	getErr  error
	deleted []string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string][]byte)}
}

func (m *memoryCache) Get(_ context.Context, key string, dest any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return m.getErr
	}
	raw, ok := m.data[key]
	if !ok {
		return ErrMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = raw
	return nil
}

func (m *memoryCache) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
		m.deleted = append(m.deleted, k)
	}
	return nil
}

func (m *memoryCache) Close() error { return nil }

func (m *memoryCache) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok
}

func (m *memoryCache) holds(key string, total int64) bool {
	var p payload
	if err := m.Get(context.Background(), key, &p); err != nil {
		return false
	}
	return p.Total == total
}

type payload struct {
	Total int64 `json:"total"`
}

// gatedSource holds its first read open until release is closed, after the
// value has already been read.
type gatedSource struct {
	total   atomic.Int64
	reads   atomic.Int32
	read    chan struct{}
	release chan struct{}
}

func newGatedSource() *gatedSource {
	return &gatedSource{read: make(chan struct{}), release: make(chan struct{})}
}

func (s *gatedSource) fetch(ctx context.Context) (payload, error) {
	v := s.total.Load()
	if s.reads.Add(1) == 1 {
		close(s.read)
		<-s.release
	}
	return payload{Total: v}, nil
}

func waitClosed(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(3 * time.Second):
		t.Fatal("fetch never started")
	}
}

func TestLoad_MissFetchesAndPopulates(t *testing.T) {
	mc := newMemoryCache()
	rt := NewReadThrough(mc, time.Minute, zap.NewNop())

	var calls atomic.Int32
	got, err := Load(context.Background(), rt, "analytics", func(ctx context.Context) (payload, error) {
		calls.Add(1)
		return payload{Total: 3}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, payload{Total: 3}, got)
	assert.Equal(t, int32(1), calls.Load())
	assert.Eventually(t, func() bool { return mc.has("analytics") }, time.Second, 10*time.Millisecond)
}

func TestLoad_HitServesCachedValue(t *testing.T) {
	mc := newMemoryCache()
	require.NoError(t, mc.Set(context.Background(), "analytics", payload{Total: 7}, time.Minute))
	rt := NewReadThrough(mc, time.Minute, zap.NewNop())

	got, err := Load(context.Background(), rt, "analytics", func(ctx context.Context) (payload, error) {
		return payload{Total: 8}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, payload{Total: 7}, got)
}

func TestLoad_FetchErrorIsReturned(t *testing.T) {
	fetchErr := errors.New("storage failure")
	rt := NewReadThrough(Nop{}, time.Minute, nil)

	_, err := Load(context.Background(), rt, "feedback", func(ctx context.Context) ([]payload, error) {
		return nil, fetchErr
	})

	assert.ErrorIs(t, err, fetchErr)
}

func TestLoad_CacheErrorTreatedAsMiss(t *testing.T) {
	mc := newMemoryCache()
	mc.getErr = errors.New("connection refused")
	rt := NewReadThrough(mc, time.Minute, zap.NewNop())

	got, err := Load(context.Background(), rt, "analytics", func(ctx context.Context) (payload, error) {
		return payload{Total: 1}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Total)
}

func TestReadThrough_Invalidate(t *testing.T) {
	mc := newMemoryCache()
	require.NoError(t, mc.Set(context.Background(), "a", payload{}, time.Minute))
	rt := NewReadThrough(mc, time.Minute, zaptest.NewLogger(t))

	rt.Invalidate(context.Background(), "a", "b")

	assert.False(t, mc.has("a"))
	assert.Equal(t, []string{"a", "b"}, mc.deleted)
}

func TestNewReadThrough_Defaults(t *testing.T) {
	rt := NewReadThrough(nil, 0, nil)

	assert.Equal(t, defaultTTL, rt.TTL())
	assert.IsType(t, Nop{}, rt.cache)
}

func TestAddTTLJitter(t *testing.T) {
	t.Run("long ttl stays within 15s", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			got := addTTLJitter(10 * time.Minute)
			assert.GreaterOrEqual(t, got, 10*time.Minute-15*time.Second)
			assert.Less(t, got, 10*time.Minute+15*time.Second)
		}
	})

	t.Run("short ttl stays positive", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			assert.Greater(t, addTTLJitter(2*time.Second), time.Duration(0))
		}
	})

	t.Run("non-positive ttl unchanged", func(t *testing.T) {
		assert.Equal(t, time.Duration(0), addTTLJitter(0))
	})
}

func TestLoad_NopCallsFetchEveryTime(t *testing.T) {
	rt := NewReadThrough(Nop{}, time.Minute, nil)

	var calls atomic.Int32
	for i := 0; i < 3; i++ {
		_, err := Load(context.Background(), rt, "feedback", func(ctx context.Context) (payload, error) {
			calls.Add(1)
			return payload{}, nil
		})
		require.NoError(t, err)
	}
	assert.Equal(t, int32(3), calls.Load())
}

func TestLoad_RefreshStartedBeforeInvalidateIsDiscarded(t *testing.T) {
	ctx := context.Background()
	mc := newMemoryCache()
	require.NoError(t, mc.Set(ctx, "analytics", payload{Total: 0}, time.Minute))
	rt := NewReadThrough(mc, time.Minute, zap.NewNop())
	src := newGatedSource()

	got, err := Load(ctx, rt, "analytics", src.fetch)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Total)

	// the refresh-ahead has read total=0; a write lands before it finishes
	waitClosed(t, src.read)
	src.total.Store(1)
	rt.Invalidate(ctx, "analytics")
	close(src.release)

	assert.Never(t, func() bool { return mc.holds("analytics", 0) }, 200*time.Millisecond, 10*time.Millisecond)

	got, err = Load(ctx, rt, "analytics", src.fetch)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Total)
}

func TestLoad_MissStartedBeforeInvalidateIsNotCached(t *testing.T) {
	ctx := context.Background()
	mc := newMemoryCache()
	rt := NewReadThrough(mc, time.Minute, zap.NewNop())
	src := newGatedSource()

	first := make(chan payload, 1)
	go func() {
		p, _ := Load(ctx, rt, "analytics", src.fetch)
		first <- p
	}()

	waitClosed(t, src.read)
	src.total.Store(1)
	rt.Invalidate(ctx, "analytics")

	// issued after the write, so it must not share the earlier fetch
	got, err := Load(ctx, rt, "analytics", src.fetch)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Total)
	assert.Equal(t, int32(2), src.reads.Load())

	close(src.release)
	select {
	case p := <-first:
		assert.Equal(t, int64(0), p.Total)
	case <-time.After(3 * time.Second):
		t.Fatal("first load never returned")
	}

	assert.Eventually(t, func() bool { return mc.holds("analytics", 1) }, time.Second, 10*time.Millisecond)
	assert.Never(t, func() bool { return mc.holds("analytics", 0) }, 200*time.Millisecond, 10*time.Millisecond)
}

func TestReadThrough_InvalidateBumpsGeneration(t *testing.T) {
	rt := NewReadThrough(newMemoryCache(), time.Minute, zap.NewNop())

	assert.Equal(t, uint64(0), rt.generation("a"))
	rt.Invalidate(context.Background(), "a", "b")
	rt.Invalidate(context.Background(), "a")

	assert.Equal(t, uint64(2), rt.generation("a"))
	assert.Equal(t, uint64(1), rt.generation("b"))
}

func TestNewReadThrough_PointerNopDisablesCaching(t *testing.T) {
	rt := NewReadThrough(&Nop{}, time.Minute, nil)
	assert.False(t, rt.enabled)

	var calls atomic.Int32
	for i := 0; i < 2; i++ {
		_, err := Load(context.Background(), rt, "analytics", func(ctx context.Context) (payload, error) {
			calls.Add(1)
			return payload{}, nil
		})
		require.NoError(t, err)
	}
	assert.Equal(t, int32(2), calls.Load())
}
