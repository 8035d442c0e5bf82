package cache

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type FetchFunc[T any] func(ctx context.Context) (T, error)

const (
	defaultTTL          = 30 * time.Second
	defaultFetchTimeout = 15 * time.Second
	defaultSetTimeout   = 5 * time.Second
)

// ReadThrough fronts a Cacher with singleflight de-duplication and
// refresh-ahead on hits.
//
// Every key carries a generation that Invalidate bumps. A fetch only writes
// its result back while the generation it started under is still current,
// so a read racing a write can never re-cache the pre-write value.
type ReadThrough struct {
	cache   Cacher
	enabled bool
	sf      singleflight.Group
	ttl     time.Duration
	logger  *zap.Logger

	genMu sync.Mutex
	gens  map[string]uint64
}

func isNop(c Cacher) bool {
	switch c.(type) {
	case Nop, *Nop:
		return true
	}
	return false
}

// NewReadThrough wraps c. With a nil or Nop cache every Load calls the fetch
// function directly.
func NewReadThrough(c Cacher, ttl time.Duration, logger *zap.Logger) *ReadThrough {
	if c == nil {
		c = Nop{}
	}
	nop := isNop(c)
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReadThrough{
		cache:   c,
		enabled: !nop,
		ttl:     ttl,
		logger:  logger.Named("read-through"),
		gens:    make(map[string]uint64),
	}
}

func (rt *ReadThrough) generation(key string) uint64 {
	rt.genMu.Lock()
	defer rt.genMu.Unlock()
	return rt.gens[key]
}

// flightKey scopes singleflight calls to one generation so a Load issued
// after Invalidate never joins a fetch that started before it.
func flightKey(key string, gen uint64) string {
	return fmt.Sprintf("%s#%d", key, gen)
}

// TTL returns the base expiry applied to cached values.
func (rt *ReadThrough) TTL() time.Duration {
	return rt.ttl
}

// Invalidate drops keys so the next read goes to the source. Failures are
// logged; the stale entry then lives until its TTL.
func (rt *ReadThrough) Invalidate(ctx context.Context, keys ...string) {
	if !rt.enabled {
		return
	}
	rt.genMu.Lock()
	for _, k := range keys {
		rt.gens[k]++
	}
	rt.genMu.Unlock()

	if err := rt.cache.Delete(ctx, keys...); err != nil {
		rt.logger.Warn("cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
		return
	}
	rt.logger.Debug("cache invalidated", zap.Strings("keys", keys))
}

// addTTLJitter adds up to ±15s random jitter to TTL to avoid mass expiration.
// Short TTLs get proportionally smaller jitter so they never drop to zero.
func addTTLJitter(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return ttl
	}
	spread := 30 * time.Second
	if ttl < time.Minute {
		spread = ttl / 2
	}
	if spread <= 0 {
		return ttl
	}
	return ttl + time.Duration(rand.Int63n(int64(spread))) - spread/2
}

// store writes value fetched under gen. It skips the write when key was
// invalidated meanwhile, and removes it again when an Invalidate landed
// while the Set was in flight.
func (rt *ReadThrough) store(key string, value any, gen uint64) {
	if rt.generation(key) != gen {
		rt.logger.Debug("discarding value fetched before invalidation", zap.String("key", key))
		return
	}

	setCtx, cancel := context.WithTimeout(context.Background(), defaultSetTimeout)
	defer cancel()

	ttl := addTTLJitter(rt.ttl)
	if err := rt.cache.Set(setCtx, key, value, ttl); err != nil {
		rt.logger.Warn("failed to update cache", zap.String("key", key), zap.Error(err))
		return
	}

	if rt.generation(key) != gen {
		if err := rt.cache.Delete(setCtx, key); err != nil {
			rt.logger.Warn("failed to drop value invalidated during write", zap.String("key", key), zap.Error(err))
		}
		return
	}
	rt.logger.Debug("cache populated", zap.String("key", key), zap.Duration("ttl", ttl))
}

func triggerBackgroundRefresh[T any](rt *ReadThrough, key string, fn FetchFunc[T]) {
	gen := rt.generation(key)
	go func() {
		time.Sleep(time.Duration(rand.Intn(1000)) * time.Millisecond)

		_, _, _ = rt.sf.Do(flightKey(key, gen)+":refresh", func() (any, error) {
			ctx, cancel := context.WithTimeout(context.Background(), defaultFetchTimeout)
			defer cancel()

			value, err := fn(ctx)
			if err != nil {
				rt.logger.Warn("background refresh failed", zap.String("key", key), zap.Error(err))
				return nil, err
			}
			rt.store(key, value, gen)
			return value, nil
		})
	}()
}

// Load returns the cached value for key, or calls fn and caches its result.
// Concurrent misses for the same key share one call to fn. Cache errors are
// treated as misses; errors from fn are returned unchanged.
func Load[T any](ctx context.Context, rt *ReadThrough, key string, fn FetchFunc[T]) (T, error) {
	var zero T
	if !rt.enabled {
		return fn(ctx)
	}

	var cached T
	err := rt.cache.Get(ctx, key, &cached)
	switch {
	case err == nil:
		rt.logger.Debug("cache hit", zap.String("key", key))
		triggerBackgroundRefresh(rt, key, fn)
		return cached, nil

	case errors.Is(err, ErrMiss):
		rt.logger.Debug("cache miss", zap.String("key", key))

	default:
		rt.logger.Warn("cache get error (treating as miss)", zap.String("key", key), zap.Error(err))
	}

	gen := rt.generation(key)
	v, err, shared := rt.sf.Do(flightKey(key, gen), func() (any, error) {
		value, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		go rt.store(key, value, gen)
		return value, nil
	})
	if err != nil {
		return zero, err
	}

	value, ok := v.(T)
	if !ok {
		rt.logger.Error("singleflight type mismatch", zap.String("key", key))
		return zero, fmt.Errorf("type mismatch for key %q", key)
	}

	if shared {
		rt.logger.Debug("singleflight shared result", zap.String("key", key))
	}

	return value, nil
}
