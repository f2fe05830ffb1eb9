// Package authz holds the ownership capability predicates gating mutations.
// They are pure functions over the resolved identity and the resource; all
// callers check before writing, never after.
package authz

import "github.com/shubh305/udacity-multi-user-blog-project/internal/models"

// CanMutatePost reports whether user may edit or delete post. Only the
// author, identified by numeric id, may mutate a post.
func CanMutatePost(user *models.User, post *models.Post) bool {
	return user != nil && user.ID == post.AuthorID
}

// CanMutateComment reports whether user may edit or delete comment.
// Ownership is compared against the denormalized AuthorName snapshot, not
// the numeric id. Names are immutable after registration, so the two agree;
// the name comparison is kept because it is what the stored snapshot
// supports.
func CanMutateComment(user *models.User, comment *models.Comment) bool {
	return user != nil && user.Name == comment.AuthorName
}

// CanLike reports whether user may like (or unlike) post. Authors may not
// like their own posts.
func CanLike(user *models.User, post *models.Post) bool {
	return user != nil && user.ID != post.AuthorID
}
