package postgres

import (
	"context"

	"condo-portal/internal/model"

	"gorm.io/gorm"
)

// LikeTarget selects which like table a toggle operates on. Notices and
// worries draw ids from independent sequences, so each entity keeps its own
// table and the two aggregates can never read each other's rows.
type LikeTarget string

const (
	LikeTargetNotice LikeTarget = "notice"
	LikeTargetWorry  LikeTarget = "worry"
)

func (t LikeTarget) table() (any, string) {
	if t == LikeTargetWorry {
		return &model.WorryLike{}, "worry_id"
	}
	return &model.NoticeLike{}, "notice_id"
}

func (t LikeTarget) row(entityID, userID uint64) any {
	if t == LikeTargetWorry {
		return &model.WorryLike{WorryID: entityID, UserID: userID}
	}
	return &model.NoticeLike{NoticeID: entityID, UserID: userID}
}

type LikeRepository struct {
	DB *gorm.DB
}

func (r *LikeRepository) Exists(ctx context.Context, target LikeTarget, entityID, userID uint64) (bool, error) {
	m, col := target.table()
	var n int64
	err := r.DB.WithContext(ctx).
		Model(m).
		Where(col+" = ? AND user_id = ?", entityID, userID).
		Count(&n).Error
	return n > 0, err
}

// Insert adds the like row. A duplicate surfaces as gorm.ErrDuplicatedKey;
// the caller decides whether that is a no-op.
func (r *LikeRepository) Insert(ctx context.Context, target LikeTarget, entityID, userID uint64) error {
	return r.DB.WithContext(ctx).Create(target.row(entityID, userID)).Error
}

func (r *LikeRepository) Remove(ctx context.Context, target LikeTarget, entityID, userID uint64) (int64, error) {
	m, col := target.table()
	tx := r.DB.WithContext(ctx).
		Where(col+" = ? AND user_id = ?", entityID, userID).
		Delete(m)
	return tx.RowsAffected, tx.Error
}

// Count re-queries the committed aggregate; the toggle never keeps a counter.
func (r *LikeRepository) Count(ctx context.Context, target LikeTarget, entityID uint64) (int64, error) {
	m, col := target.table()
	var n int64
	err := r.DB.WithContext(ctx).
		Model(m).
		Where(col+" = ?", entityID).
		Count(&n).Error
	return n, err
}
