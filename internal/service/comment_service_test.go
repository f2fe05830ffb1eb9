package service

import (
	"context"
	"testing"

	"github.com/shubh305/udacity-multi-user-blog-project/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func commentBy(author *models.User, postID uint) *models.Comment {
	return &models.Comment{ID: 5, PostID: postID, AuthorID: author.ID, AuthorName: author.Name, Content: "original"}
}

func TestCommentService_CreateComment(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("anonymous is rejected", func(t *testing.T) {
		svc := NewCommentService(noopCommentRepo(), noopPostRepo())
		_, err := svc.CreateComment(ctx, CreateCommentInput{PostID: 10, Content: "hi"})
		assertUnauthorizedError(t, err, "You must be signed in to comment.")
	})

	t.Run("empty content", func(t *testing.T) {
		svc := NewCommentService(noopCommentRepo(), noopPostRepo())
		_, err := svc.CreateComment(ctx, CreateCommentInput{Actor: bob, PostID: 10})
		assertValidationError(t, err, "Error : Please fill up the fields.")
	})

	t.Run("missing post propagates", func(t *testing.T) {
		postRepo := noopPostRepo()
		postRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) {
			return nil, models.NewNotFoundError("ERROR: Post not found")
		}
		svc := NewCommentService(noopCommentRepo(), postRepo)
		_, err := svc.CreateComment(ctx, CreateCommentInput{Actor: bob, PostID: 99, Content: "hi"})
		assertAppErrorCode(t, err, "NOT_FOUND", "ERROR: Post not found")
	})

	t.Run("snapshots the author name", func(t *testing.T) {
		var created *models.Comment
		commentRepo := noopCommentRepo()
		commentRepo.createFn = func(_ context.Context, c *models.Comment) error {
			c.ID = 5
			created = c
			return nil
		}
		svc := NewCommentService(commentRepo, noopPostRepo())

		comment, err := svc.CreateComment(ctx, CreateCommentInput{Actor: bob, PostID: 10, Content: "hi"})
		require.NoError(t, err)
		assert.Equal(t, uint(5), comment.ID)
		assert.Equal(t, "bob", created.AuthorName)
		assert.Equal(t, bob.ID, created.AuthorID)
	})
}

func TestCommentService_UpdateComment(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	newSvc := func() (*CommentService, *commentRepoStub) {
		commentRepo := noopCommentRepo()
		commentRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Comment, error) {
			return commentBy(alice, 10), nil
		}
		return NewCommentService(commentRepo, noopPostRepo()), commentRepo
	}

	t.Run("non-owner is rejected", func(t *testing.T) {
		svc, _ := newSvc()
		_, err := svc.UpdateComment(ctx, UpdateCommentInput{Actor: bob, PostID: 10, CommentID: 5, Content: "new"})
		assertUnauthorizedError(t, err, "You cannot edit other users' comments'")
	})

	t.Run("empty content", func(t *testing.T) {
		svc, _ := newSvc()
		_, err := svc.UpdateComment(ctx, UpdateCommentInput{Actor: alice, PostID: 10, CommentID: 5})
		assertValidationError(t, err, "Error: Please fill up all the fields.")
	})

	t.Run("empty content wins over ownership", func(t *testing.T) {
		svc, _ := newSvc()
		_, err := svc.UpdateComment(ctx, UpdateCommentInput{Actor: bob, PostID: 10, CommentID: 5})
		assertValidationError(t, err, "Error: Please fill up all the fields.")
	})

	t.Run("wrong post id is not found", func(t *testing.T) {
		svc, _ := newSvc()
		_, err := svc.UpdateComment(ctx, UpdateCommentInput{Actor: alice, PostID: 11, CommentID: 5, Content: "new"})
		assertAppErrorCode(t, err, "NOT_FOUND", "ERROR: Comment not found")
	})

	t.Run("owner succeeds", func(t *testing.T) {
		svc, _ := newSvc()
		comment, err := svc.UpdateComment(ctx, UpdateCommentInput{Actor: alice, PostID: 10, CommentID: 5, Content: "new"})
		require.NoError(t, err)
		assert.Equal(t, "new", comment.Content)
	})
}

func TestCommentService_DeleteComment(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	commentRepo := noopCommentRepo()
	commentRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Comment, error) {
		return commentBy(alice, 10), nil
	}
	deleted := false
	commentRepo.deleteFn = func(_ context.Context, _ uint) error {
		deleted = true
		return nil
	}
	svc := NewCommentService(commentRepo, noopPostRepo())

	err := svc.DeleteComment(ctx, DeleteCommentInput{Actor: bob, PostID: 10, CommentID: 5})
	assertUnauthorizedError(t, err, "You cannot edit other users' comments'")
	assert.False(t, deleted)

	require.NoError(t, svc.DeleteComment(ctx, DeleteCommentInput{Actor: alice, PostID: 10, CommentID: 5}))
	assert.True(t, deleted)
}
