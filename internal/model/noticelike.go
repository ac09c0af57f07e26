package model

import "time"

// NoticeLike is the per-(notice,user) existence row behind the like toggle;
// the row existing means "liked". Uniqueness over (notice_id, user_id) is
// what makes a double-toggle race collapse into a no-op.
type NoticeLike struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	NoticeID  uint64    `gorm:"not null;index;uniqueIndex:uk_notice_user" json:"notice_id"`
	UserID    uint64    `gorm:"not null;index;uniqueIndex:uk_notice_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (NoticeLike) TableName() string { return "likesnotice" }
