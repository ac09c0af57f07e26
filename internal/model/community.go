package model

import "time"

type Community struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:128;not null" json:"name"`
	AddressRef  string    `gorm:"uniqueIndex;size:64;not null" json:"address_ref"` // external address reference, one community per ref
	AddressLine string    `gorm:"size:255" json:"address_line"`
	City        string    `gorm:"size:64" json:"city"`
	PostalCode  string    `gorm:"size:16" json:"postal_code"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Community) TableName() string { return "communities" }
