package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment is a reply to a post. AuthorName is a snapshot of the author's name
// taken when the comment is created and is never re-synced afterwards;
// comment ownership checks compare against this snapshot.
type Comment struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	PostID     uint           `gorm:"not null;index" json:"post_id"`
	AuthorID   uint           `gorm:"not null" json:"author_id"`
	AuthorName string         `gorm:"not null" json:"author_name"`
	Content    string         `gorm:"type:text;not null" json:"content"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
