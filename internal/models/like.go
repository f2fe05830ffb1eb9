package models

import "time"

// Like records one user's endorsement of one post. The (UserID, PostID) pair
// is unique; the composite index is what makes the ledger's conditional
// insert race-free. Likes are hard-deleted on unlike so the index always
// reflects the set of active likes.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_likes_user_post" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_likes_user_post" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}
