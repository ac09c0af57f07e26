package postgres

import (
	"condo-portal/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint64) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

// ListByCommunity pages the community's profiles, optionally filtered by
// status, newest signups first or oldest first.
func (r *UserRepository) ListByCommunity(communityID uint64, status string, offset, limit int, newestFirst bool) ([]model.User, int64, error) {
	q := r.DB.Model(&model.User{}).Where("community_id = ?", communityID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	order := "created_at DESC, id DESC"
	if !newestFirst {
		order = "created_at ASC, id ASC"
	}
	var list []model.User
	err := q.Order(order).Offset(offset).Limit(limit).Find(&list).Error
	return list, total, err
}

// UpdateStatus flips a profile's status, filtered by id and community so the
// write can never land in another tenant. Returns rows affected.
func (r *UserRepository) UpdateStatus(id, communityID uint64, status string) (int64, error) {
	tx := r.DB.Model(&model.User{}).
		Where("id = ? AND community_id = ?", id, communityID).
		Update("status", status)
	return tx.RowsAffected, tx.Error
}

// DeleteInCommunity removes a profile row under the same compound filter.
func (r *UserRepository) DeleteInCommunity(id, communityID uint64) (int64, error) {
	tx := r.DB.Where("id = ? AND community_id = ?", id, communityID).
		Delete(&model.User{})
	return tx.RowsAffected, tx.Error
}
