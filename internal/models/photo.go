package models

import (
	"time"
)

// Comment lives inside its photo's comments column, not in its own table.
// Appends go through PhotoRepository.AppendComment so two writers can never
// drop each other's comment.
type Comment struct {
	ID       string    `json:"_id"`
	UserID   uint      `json:"user_id"`
	Comment  string    `json:"comment"`
	DateTime time.Time `json:"date_time"`
}

type Photo struct {
	ID        uint      `json:"_id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	FileName  string    `json:"file_name" gorm:"uniqueIndex;not null"`
	DateTime  time.Time `json:"date_time"`
	Comments  []Comment `json:"comments" gorm:"type:jsonb;serializer:json"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// CommentView is a comment with its author reference resolved. User is null
// when the author record could not be found.
type CommentView struct {
	ID       string          `json:"_id"`
	Comment  string          `json:"comment"`
	DateTime time.Time       `json:"date_time"`
	User     *UserProjection `json:"user"`
}

type PhotoView struct {
	ID       uint          `json:"_id"`
	UserID   uint          `json:"user_id"`
	FileName string        `json:"file_name"`
	DateTime time.Time     `json:"date_time"`
	Comments []CommentView `json:"comments"`
}
