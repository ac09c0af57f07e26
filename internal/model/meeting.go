package model

import "time"

type Meeting struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	CommunityID uint64    `gorm:"not null;index:idx_meeting_comm_start,priority:1" json:"community_id"`
	AuthorID    uint64    `gorm:"not null;index" json:"author_id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	StartsAt    time.Time `gorm:"not null;index:idx_meeting_comm_start,priority:2" json:"starts_at"`
	Duration    string    `gorm:"size:16;not null" json:"duration"` // label from a fixed set, e.g. "1 hour"
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Meeting) TableName() string { return "meetings" }
