package postgres

import (
	"condo-portal/internal/model"

	"gorm.io/gorm"
)

type WorryRepository struct {
	DB *gorm.DB
}

// WorryRow is a worry plus its derived like aggregate.
type WorryRow struct {
	model.Worry
	LikesCount int64 `json:"likes_count"`
}

func (r *WorryRepository) Create(w *model.Worry) error {
	return r.DB.Create(w).Error
}

func (r *WorryRepository) Delete(id, communityID uint64) (int64, error) {
	tx := r.DB.Where("id = ? AND community_id = ?", id, communityID).
		Delete(&model.Worry{})
	return tx.RowsAffected, tx.Error
}

// DeleteByAuthor removes every worry a user created inside one community.
// Used by resident removal before the profile row itself is deleted.
func (r *WorryRepository) DeleteByAuthor(authorID, communityID uint64) error {
	return r.DB.Where("author_id = ? AND community_id = ?", authorID, communityID).
		Delete(&model.Worry{}).Error
}

func (r *WorryRepository) CountByAuthor(authorID, communityID uint64) (int64, error) {
	var n int64
	err := r.DB.Model(&model.Worry{}).
		Where("author_id = ? AND community_id = ?", authorID, communityID).
		Count(&n).Error
	return n, err
}

// List pages the community's worries with like counts from the worry-like
// table.
func (r *WorryRepository) List(communityID uint64, offset, limit int, newestFirst bool) ([]WorryRow, int64, error) {
	q := r.DB.Model(&model.Worry{}).Where("community_id = ?", communityID)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	order := "created_at DESC, id DESC"
	if !newestFirst {
		order = "created_at ASC, id ASC"
	}
	var rows []WorryRow
	err := q.
		Select("worries.*, (SELECT COUNT(*) FROM likesworry l WHERE l.worry_id = worries.id) AS likes_count").
		Order(order).Offset(offset).Limit(limit).Find(&rows).Error
	return rows, total, err
}
