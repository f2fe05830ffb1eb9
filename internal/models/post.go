package models

import (
	"time"

	"gorm.io/gorm"
)

// Post is a blog entry. LikeCount and CommentCount are persisted denormalized
// counters: LikeCount is mutated only by the like ledger in the post
// repository, CommentCount only when a comment is created. After every
// operation LikeCount equals the number of active Like rows for the post.
type Post struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Subject      string         `gorm:"not null" json:"subject"`
	Content      string         `gorm:"type:text;not null" json:"content"`
	AuthorID     uint           `gorm:"not null;index" json:"author_id"`
	Author       User           `gorm:"foreignKey:AuthorID" json:"author"`
	LikeCount    int            `gorm:"not null;default:0" json:"like_count"`
	CommentCount int            `gorm:"not null;default:0" json:"comment_count"`
	Liked        bool           `gorm:"-" json:"liked"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
