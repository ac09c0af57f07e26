package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	likeCountPrefix = "like:count"
	likeCountTTL    = 10 * time.Minute
)

// LikeCacheRepository caches the like aggregate per (target, entity). The
// database is the source of truth; every cache write is best-effort and the
// TTL bounds staleness.
type LikeCacheRepository struct{}

func NewLikeCacheRepository() *LikeCacheRepository {
	return &LikeCacheRepository{}
}

func (r *LikeCacheRepository) SetCount(ctx context.Context, target string, entityID uint64, count int64) error {
	key := fmt.Sprintf("%s:%s:%d", likeCountPrefix, target, entityID)
	return Client.Set(ctx, key, count, likeCountTTL).Err()
}

// GetCount returns (count, true) on a cache hit.
func (r *LikeCacheRepository) GetCount(ctx context.Context, target string, entityID uint64) (int64, bool, error) {
	key := fmt.Sprintf("%s:%s:%d", likeCountPrefix, target, entityID)
	val, err := Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return n, true, nil
}
