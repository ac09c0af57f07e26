package model

import "time"

const (
	CategoryGeneral     = "General"
	CategoryMaintenance = "Maintenance"
	CategorySafety      = "Safety"
)

type Notice struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	CommunityID uint64    `gorm:"not null;index:idx_notice_comm_time,priority:1" json:"community_id"`
	AuthorID    uint64    `gorm:"not null;index" json:"author_id"`
	Title       string    `gorm:"size:120;not null" json:"title"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Category    string    `gorm:"size:16;not null" json:"category"`
	CreatedAt   time.Time `gorm:"index:idx_notice_comm_time,priority:2,sort:desc" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Notice) TableName() string { return "notices" }
