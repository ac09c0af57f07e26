package model

import "time"

const (
	RoleResident = "resident"
	RoleAdmin    = "admin"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// User is both the login account and the community profile. CommunityID is
// assigned at registration but only counts for authorization once the profile
// has been approved; it is never reassigned afterwards.
type User struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:128;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Name         string    `gorm:"size:64;not null" json:"name"`
	Flat         string    `gorm:"size:32" json:"flat"`
	Role         string    `gorm:"size:16;not null;default:'resident'" json:"role"`
	Status       string    `gorm:"size:16;not null;default:'pending'" json:"status"`
	CommunityID  *uint64   `gorm:"index" json:"community_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }
