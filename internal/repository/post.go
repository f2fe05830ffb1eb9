package repository

import (
	"context"
	"errors"

	"github.com/shubh305/udacity-multi-user-blog-project/internal/cache"
	"github.com/shubh305/udacity-multi-user-blog-project/internal/models"
	"github.com/shubh305/udacity-multi-user-blog-project/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostRepository defines the interface for post data operations. Like and
// Unlike are the only writers of Post.LikeCount; both run the ledger insert
// or delete and the counter adjustment in one transaction.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context, limit, offset int, sort string) ([]*models.Post, error)
	ListByAuthor(ctx context.Context, authorID uint, limit, offset int) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
	IsLiked(ctx context.Context, userID, postID uint) (bool, error)
	GetLikedPostIDs(ctx context.Context, userID uint, postIDs []uint) ([]uint, error)
	Like(ctx context.Context, userID, postID uint) (bool, error)
	Unlike(ctx context.Context, userID, postID uint) (bool, error)
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.Invalidate(ctx, cache.FrontPageKey)
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	key := cache.PostKey(id)

	err := cache.Aside(ctx, key, &post, cache.PostTTL, func() error {
		if err := r.db.WithContext(ctx).Preload("Author").First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("ERROR: Post not found")
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context, limit, offset int, sort string) ([]*models.Post, error) {
	var posts []*models.Post

	query := func() error {
		return applySort(r.db.WithContext(ctx).Preload("Author"), sort).
			Limit(limit).
			Offset(offset).
			Find(&posts).Error
	}

	var err error
	if offset == 0 && (sort == "" || sort == "new") {
		// Only the default first page is hot enough to be worth caching.
		err = cache.Aside(ctx, cache.FrontPageKey, &posts, cache.FrontPageTTL, query)
	} else {
		err = query()
	}
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// applySort appends the ORDER BY clause for the requested sort type.
func applySort(db *gorm.DB, sort string) *gorm.DB {
	switch sort {
	case "top":
		return db.Order("like_count DESC, created_at DESC")
	default: // "new" and anything unrecognized
		return db.Order("created_at DESC")
	}
}

func (r *postRepository) ListByAuthor(ctx context.Context, authorID uint, limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// Update persists an edit. Only the author-mutable columns are written: the
// denormalized counters are owned by the ledger and comment creation, and a
// full-row save would write back whatever stale values the caller's struct
// carries.
func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	err := r.db.WithContext(ctx).Model(post).
		Select("subject", "content").
		Updates(models.Post{Subject: post.Subject, Content: post.Content}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, post.ID)
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Post{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, id)
	return nil
}

func (r *postRepository) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *postRepository) GetLikedPostIDs(ctx context.Context, userID uint, postIDs []uint) ([]uint, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}
	var likedPostIDs []uint
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &likedPostIDs).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return likedPostIDs, nil
}

// Like records a (userID, postID) pair in the ledger and bumps the post's
// counter, both inside one transaction. The insert uses ON CONFLICT DO
// NOTHING against the unique (user_id, post_id) index, so a concurrent or
// repeated like affects zero rows and the counter is left alone. Returns
// whether this call applied the like.
func (r *postRepository) Like(ctx context.Context, userID, postID uint) (bool, error) {
	ctx, span := observability.TraceRepositoryMethod(ctx, "Like", "likes")
	defer span.End()

	applied := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.Like{UserID: userID, PostID: postID})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Pair already in the ledger.
			return nil
		}
		applied = true
		return tx.Model(&models.Post{}).
			Where("id = ?", postID).
			UpdateColumn("like_count", gorm.Expr("like_count + ?", 1)).Error
	})
	if err != nil {
		span.RecordError(err)
		return false, models.NewInternalError(err)
	}
	if applied {
		observability.LikesApplied.Inc()
		cache.InvalidatePost(ctx, postID)
	}
	return applied, nil
}

// Unlike removes the ledger row (a hard delete, the ledger has no soft
// delete) and decrements the counter only when a row was actually removed.
// The CASE guard keeps the counter from going below zero even if it has
// drifted. Returns whether this call removed a like.
func (r *postRepository) Unlike(ctx context.Context, userID, postID uint) (bool, error) {
	ctx, span := observability.TraceRepositoryMethod(ctx, "Unlike", "likes")
	defer span.End()

	removed := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND post_id = ?", userID, postID).
			Delete(&models.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		removed = true
		return tx.Model(&models.Post{}).
			Where("id = ?", postID).
			UpdateColumn("like_count", gorm.Expr(
				"CASE WHEN like_count > 0 THEN like_count - 1 ELSE 0 END",
			)).Error
	})
	if err != nil {
		span.RecordError(err)
		return false, models.NewInternalError(err)
	}
	if removed {
		observability.LikesRemoved.Inc()
		cache.InvalidatePost(ctx, postID)
	}
	return removed, nil
}
