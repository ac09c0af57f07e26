package model

import "time"

// WorryLike mirrors NoticeLike for worries. Worry ids and notice ids come
// from independent sequences, so each entity keeps its own like table.
type WorryLike struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	WorryID   uint64    `gorm:"not null;index;uniqueIndex:uk_worry_user" json:"worry_id"`
	UserID    uint64    `gorm:"not null;index;uniqueIndex:uk_worry_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (WorryLike) TableName() string { return "likesworry" }
