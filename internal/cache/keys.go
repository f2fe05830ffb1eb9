package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	PostKeyPrefix  = "post:%d"
	FrontPageKey   = "posts:front"
	UserKeyPrefix  = "user:%d"
	CommentsPrefix = "post:%d:comments"
)

const (
	PostTTL      = 30 * time.Minute
	FrontPageTTL = 1 * time.Minute
	UserTTL      = 5 * time.Minute
	CommentsTTL  = 5 * time.Minute
)

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func CommentsKey(postID uint) string {
	return fmt.Sprintf(CommentsPrefix, postID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidatePost drops the cached post along with the front page listing,
// which embeds denormalized counters for every post it shows.
func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
	Invalidate(ctx, FrontPageKey)
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateComments(ctx context.Context, postID uint) {
	Invalidate(ctx, CommentsKey(postID))
}
