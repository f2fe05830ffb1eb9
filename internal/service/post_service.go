package service

import (
	"context"
	"log/slog"

	"github.com/shubh305/udacity-multi-user-blog-project/internal/authz"
	"github.com/shubh305/udacity-multi-user-blog-project/internal/middleware"
	"github.com/shubh305/udacity-multi-user-blog-project/internal/models"
	"github.com/shubh305/udacity-multi-user-blog-project/internal/observability"
	"github.com/shubh305/udacity-multi-user-blog-project/internal/repository"
)

type PostService struct {
	postRepo repository.PostRepository
}

type CreatePostInput struct {
	Actor   *models.User
	Subject string
	Content string
}

type ListPostsInput struct {
	Limit  int
	Offset int
	Sort   string
	// Actor, when present, is used to mark which posts they already liked.
	Actor *models.User
}

type UpdatePostInput struct {
	Actor   *models.User
	PostID  uint
	Subject string
	Content string
}

type DeletePostInput struct {
	Actor  *models.User
	PostID uint
}

type LikeInput struct {
	Actor  *models.User
	PostID uint
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.Actor == nil {
		return nil, models.NewUnauthorizedError("You must be signed in to create a post.")
	}
	if in.Subject == "" || in.Content == "" {
		return nil, models.NewValidationError("Please fill up the fields.")
	}

	post := &models.Post{
		Subject:  in.Subject,
		Content:  in.Content,
		AuthorID: in.Actor.ID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	observability.PostsCreated.Inc()
	return post, nil
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

func (s *PostService) ListPosts(ctx context.Context, in ListPostsInput) ([]*models.Post, error) {
	if in.Limit <= 0 {
		in.Limit = 10
	}
	if in.Limit > 100 {
		in.Limit = 100
	}

	posts, err := s.postRepo.List(ctx, in.Limit, in.Offset, in.Sort)
	if err != nil {
		return nil, err
	}

	if in.Actor != nil && len(posts) > 0 {
		postIDs := make([]uint, len(posts))
		for i, p := range posts {
			postIDs[i] = p.ID
		}
		likedIDs, err := s.postRepo.GetLikedPostIDs(ctx, in.Actor.ID, postIDs)
		if err != nil {
			// Best-effort decoration: the listing still renders, but the
			// degradation should be visible in the logs.
			middleware.Logger.WarnContext(ctx, "failed to mark liked posts",
				slog.Any("user_id", in.Actor.ID),
				slog.String("error", err.Error()),
			)
		} else {
			likedMap := make(map[uint]bool, len(likedIDs))
			for _, id := range likedIDs {
				likedMap[id] = true
			}
			for _, p := range posts {
				p.Liked = likedMap[p.ID]
			}
		}
	}

	return posts, nil
}

func (s *PostService) GetUserPosts(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return s.postRepo.ListByAuthor(ctx, userID, limit, offset)
}

func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	if !authz.CanMutatePost(in.Actor, post) {
		return nil, models.NewUnauthorizedError("You cannot edit this post.")
	}
	if in.Subject == "" || in.Content == "" {
		return nil, models.NewValidationError("Error: Please include subject and content")
	}

	post.Subject = in.Subject
	post.Content = in.Content
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) error {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return err
	}

	if !authz.CanMutatePost(in.Actor, post) {
		return models.NewUnauthorizedError("You don't have permission to delete this post")
	}

	return s.postRepo.Delete(ctx, in.PostID)
}

// LikePost records the actor's like. A duplicate like is a silent no-op, so
// retries and double-clicks cannot double count.
func (s *PostService) LikePost(ctx context.Context, in LikeInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	if !authz.CanLike(in.Actor, post) {
		if in.Actor == nil {
			return nil, models.NewUnauthorizedError("You must be signed in to like a post.")
		}
		return nil, models.NewUnauthorizedError("ERROR: You can not like your own post.")
	}

	if _, err := s.postRepo.Like(ctx, in.Actor.ID, in.PostID); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, in.PostID)
}

// UnlikePost removes the actor's like. Unliking a post the actor never liked
// is a silent no-op.
func (s *PostService) UnlikePost(ctx context.Context, in LikeInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	if !authz.CanLike(in.Actor, post) {
		if in.Actor == nil {
			return nil, models.NewUnauthorizedError("You must be signed in to like a post.")
		}
		return nil, models.NewUnauthorizedError("You cannot dislike your own post")
	}

	if _, err := s.postRepo.Unlike(ctx, in.Actor.ID, in.PostID); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, in.PostID)
}
