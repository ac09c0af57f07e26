package service

import (
	"context"
	"errors"

	"condo-portal/internal/pkg"
	"condo-portal/internal/repository/postgres"
	"condo-portal/internal/repository/redis"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LikeTarget aliases the storage-level target so handlers never reach into
// the repository package.
type LikeTarget = postgres.LikeTarget

const (
	LikeNotices LikeTarget = postgres.LikeTargetNotice
	LikeWorries LikeTarget = postgres.LikeTargetWorry
)

// LikeService flips the per-(entity,user) like row and reports the new
// aggregate. The count is always re-queried after the mutation rather than
// maintained incrementally, so it reflects committed state even under
// concurrent toggles by other users.
type LikeService struct {
	repo  *postgres.LikeRepository
	cache *redis.LikeCacheRepository
	log   *zap.Logger
}

func NewLikeService(db *gorm.DB, log *zap.Logger) *LikeService {
	return &LikeService{
		repo:  &postgres.LikeRepository{DB: db},
		cache: redis.NewLikeCacheRepository(),
		log:   log,
	}
}

// Toggle flips the caller's like on an entity and returns the new state plus
// the re-queried count. A duplicate insert from a same-user race (double
// click) hits the unique key and is treated as "already liked", not a
// failure.
func (s *LikeService) Toggle(ctx context.Context, callerID uint64, target LikeTarget, entityID uint64) (bool, int64, error) {
	if callerID == 0 {
		return false, 0, pkg.TagUnauthorized
	}
	if entityID == 0 {
		return false, 0, pkg.TagUnknown
	}

	exists, err := s.repo.Exists(ctx, target, entityID, callerID)
	if err != nil {
		return false, 0, err
	}

	var liked bool
	if exists {
		if _, err := s.repo.Remove(ctx, target, entityID, callerID); err != nil {
			return false, 0, err
		}
		liked = false
	} else {
		err := s.repo.Insert(ctx, target, entityID, callerID)
		if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, 0, err
		}
		liked = true
	}

	count, err := s.repo.Count(ctx, target, entityID)
	if err != nil {
		return false, 0, err
	}
	if err := s.cache.SetCount(ctx, string(target), entityID, count); err != nil {
		s.log.Warn("like count cache write failed",
			zap.String("target", string(target)),
			zap.Uint64("entity_id", entityID),
			zap.Error(err))
	}
	return liked, count, nil
}

// Count is a cache-aside read of the aggregate.
func (s *LikeService) Count(ctx context.Context, target LikeTarget, entityID uint64) (int64, error) {
	if v, ok, err := s.cache.GetCount(ctx, string(target), entityID); err == nil && ok {
		return v, nil
	}
	v, err := s.repo.Count(ctx, target, entityID)
	if err != nil {
		return 0, err
	}
	if err := s.cache.SetCount(ctx, string(target), entityID, v); err != nil {
		s.log.Warn("like count cache write failed",
			zap.String("target", string(target)),
			zap.Uint64("entity_id", entityID),
			zap.Error(err))
	}
	return v, nil
}
