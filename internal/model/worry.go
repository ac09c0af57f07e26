package model

import "time"

type Worry struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	CommunityID uint64    `gorm:"not null;index:idx_worry_comm_time,priority:1" json:"community_id"`
	AuthorID    uint64    `gorm:"not null;index" json:"author_id"`
	Title       string    `gorm:"size:120;not null" json:"title"`
	Content     string    `gorm:"size:1200" json:"content"`
	CreatedAt   time.Time `gorm:"index:idx_worry_comm_time,priority:2,sort:desc" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Worry) TableName() string { return "worries" }
