package postgres

import (
	"condo-portal/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommunityRepository struct {
	DB *gorm.DB
}

// FindOrCreateByAddressRef returns the community for an external address
// reference, creating it on first registration. The insert is idempotent on
// address_ref; a concurrent first registration resolves to the same row.
func (r *CommunityRepository) FindOrCreateByAddressRef(c *model.Community) (*model.Community, error) {
	if err := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "address_ref"}},
		DoNothing: true,
	}).Create(c).Error; err != nil {
		return nil, err
	}
	return r.FindByAddressRef(c.AddressRef)
}

func (r *CommunityRepository) FindByAddressRef(ref string) (*model.Community, error) {
	var community model.Community
	err := r.DB.Where("address_ref = ?", ref).First(&community).Error
	return &community, err
}

func (r *CommunityRepository) FindByID(id uint64) (*model.Community, error) {
	var community model.Community
	err := r.DB.First(&community, id).Error
	return &community, err
}
