package repository

import (
	"context"
	"testing"

	"github.com/shubh305/udacity-multi-user-blog-project/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func commentCountOf(t *testing.T, db *gorm.DB, postID uint) int {
	t.Helper()
	var post models.Post
	require.NoError(t, db.First(&post, postID).Error)
	return post.CommentCount
}

func TestCommentRepository_Create_BumpsCounter(t *testing.T) {
	db := openTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()
	_, commenter, post := seedUserAndPost(t, db)

	for i := 1; i <= 2; i++ {
		comment := &models.Comment{
			PostID:     post.ID,
			AuthorID:   commenter.ID,
			AuthorName: commenter.Name,
			Content:    "nice post",
		}
		require.NoError(t, repo.Create(ctx, comment))
		assert.NotZero(t, comment.ID)
		assert.Equal(t, i, commentCountOf(t, db, post.ID))
	}
}

func TestCommentRepository_Delete_KeepsCounter(t *testing.T) {
	db := openTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()
	_, commenter, post := seedUserAndPost(t, db)

	comment := &models.Comment{PostID: post.ID, AuthorID: commenter.ID, AuthorName: commenter.Name, Content: "hi"}
	require.NoError(t, repo.Create(ctx, comment))
	require.Equal(t, 1, commentCountOf(t, db, post.ID))

	require.NoError(t, repo.Delete(ctx, comment.ID))

	// The counter tracks comments accumulated, not comments surviving.
	assert.Equal(t, 1, commentCountOf(t, db, post.ID))

	_, err := repo.GetByID(ctx, comment.ID)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "ERROR: Comment not found", appErr.Message)
}

func TestCommentRepository_ListByPost(t *testing.T) {
	db := openTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()
	_, commenter, post := seedUserAndPost(t, db)

	for _, content := range []string{"first", "second"} {
		require.NoError(t, repo.Create(ctx, &models.Comment{
			PostID: post.ID, AuthorID: commenter.ID, AuthorName: commenter.Name, Content: content,
		}))
	}

	comments, err := repo.ListByPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "bob", comments[0].AuthorName)
}
