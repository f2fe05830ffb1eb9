package service

import (
	"context"

	"github.com/shubh305/udacity-multi-user-blog-project/internal/authz"
	"github.com/shubh305/udacity-multi-user-blog-project/internal/models"
	"github.com/shubh305/udacity-multi-user-blog-project/internal/repository"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

type CreateCommentInput struct {
	Actor   *models.User
	PostID  uint
	Content string
}

type UpdateCommentInput struct {
	Actor     *models.User
	PostID    uint
	CommentID uint
	Content   string
}

type DeleteCommentInput struct {
	Actor     *models.User
	PostID    uint
	CommentID uint
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, postRepo: postRepo}
}

func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(ctx, postID)
}

// CreateComment stores the comment with the author's name snapshotted at
// creation time; the snapshot is what later ownership checks compare against.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if in.Actor == nil {
		return nil, models.NewUnauthorizedError("You must be signed in to comment.")
	}
	if in.Content == "" {
		return nil, models.NewValidationError("Error : Please fill up the fields.")
	}
	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:     in.PostID,
		AuthorID:   in.Actor.ID,
		AuthorName: in.Actor.Name,
		Content:    in.Content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	comment, err := s.getPostComment(ctx, in.PostID, in.CommentID)
	if err != nil {
		return nil, err
	}

	// The empty-fields complaint takes precedence over the ownership denial.
	if in.Content == "" {
		return nil, models.NewValidationError("Error: Please fill up all the fields.")
	}
	if !authz.CanMutateComment(in.Actor, comment) {
		return nil, models.NewUnauthorizedError("You cannot edit other users' comments'")
	}

	comment.Content = in.Content
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, in DeleteCommentInput) error {
	comment, err := s.getPostComment(ctx, in.PostID, in.CommentID)
	if err != nil {
		return err
	}

	if !authz.CanMutateComment(in.Actor, comment) {
		return models.NewUnauthorizedError("You cannot edit other users' comments'")
	}

	return s.commentRepo.Delete(ctx, comment.ID)
}

// getPostComment loads the comment and verifies it belongs to the post named
// in the URL.
func (s *CommentService) getPostComment(ctx context.Context, postID, commentID uint) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.PostID != postID {
		return nil, models.NewNotFoundError("ERROR: Comment not found")
	}
	return comment, nil
}
