package postgres

import (
	"context"

	"condo-portal/internal/model"

	"gorm.io/gorm"
)

type MeetingRepository struct {
	DB *gorm.DB
}

func (r *MeetingRepository) Create(m *model.Meeting) error {
	return r.DB.Create(m).Error
}

func (r *MeetingRepository) Update(id, communityID uint64, fields map[string]any) (int64, error) {
	tx := r.DB.Model(&model.Meeting{}).
		Where("id = ? AND community_id = ?", id, communityID).
		Updates(fields)
	return tx.RowsAffected, tx.Error
}

func (r *MeetingRepository) Delete(id, communityID uint64) (int64, error) {
	tx := r.DB.Where("id = ? AND community_id = ?", id, communityID).
		Delete(&model.Meeting{})
	return tx.RowsAffected, tx.Error
}

// List pages the community's meetings by scheduled start, soonest first.
func (r *MeetingRepository) List(communityID uint64, offset, limit int) ([]model.Meeting, int64, error) {
	q := r.DB.Model(&model.Meeting{}).Where("community_id = ?", communityID)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var list []model.Meeting
	err := q.Order("starts_at ASC, id ASC").Offset(offset).Limit(limit).Find(&list).Error
	return list, total, err
}

// ListAll fetches every meeting across communities. Maintenance use only.
func (r *MeetingRepository) ListAll(ctx context.Context) ([]model.Meeting, error) {
	var list []model.Meeting
	err := r.DB.WithContext(ctx).Find(&list).Error
	return list, err
}

// DeleteByID removes a meeting without a tenant filter. Maintenance use only.
func (r *MeetingRepository) DeleteByID(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Delete(&model.Meeting{}, id).Error
}
