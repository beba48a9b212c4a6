package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTTL = 5 * time.Minute

// PageCache stores rendered listing pages in Redis. Every key embeds a
// per-path version counter; Invalidate bumps the counter so all entries for
// that path become unreachable at once and age out via TTL.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(addr string) *PageCache {
	return &PageCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    defaultTTL,
	}
}

// NewWithClient wraps an existing client. The caller retains ownership.
func NewWithClient(client *redis.Client) *PageCache {
	return &PageCache{client: client, ttl: defaultTTL}
}

// Get is best effort: any Redis error reads as a miss.
func (p *PageCache) Get(ctx context.Context, path, key string) ([]byte, bool) {
	b, err := p.client.Get(ctx, pageKey(path, p.version(ctx, path), key)).Bytes()
	if err != nil {
		return nil, false
	}
	return b, true
}

func (p *PageCache) Set(ctx context.Context, path, key string, body []byte) {
	_ = p.client.Set(ctx, pageKey(path, p.version(ctx, path), key), body, p.ttl).Err()
}

// Invalidate marks every cached page under path stale.
func (p *PageCache) Invalidate(ctx context.Context, path string) error {
	return p.client.Incr(ctx, versionKey(path)).Err()
}

func (p *PageCache) Close() error {
	return p.client.Close()
}

// A missing or unreadable version counter reads as 0, matching the state
// before the first invalidation.
func (p *PageCache) version(ctx context.Context, path string) int64 {
	v, err := p.client.Get(ctx, versionKey(path)).Int64()
	if err != nil {
		return 0
	}
	return v
}

func versionKey(path string) string {
	return "page-ver:" + path
}

func pageKey(path string, version int64, key string) string {
	return fmt.Sprintf("page:%s:v%d:%s", path, version, key)
}
