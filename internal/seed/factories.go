// Package seed provides helpers to create demo data for development and
// testing.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shubh305/udacity-multi-user-blog-project/internal/auth"
	"github.com/shubh305/udacity-multi-user-blog-project/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser persists a user with a valid password record. Every seeded
// account uses the password "demo123" so developers can log in as any of
// them.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	name := fmt.Sprintf("%s_%s", gofakeit.Username(), uuid.NewString()[:8])
	if len(name) > 20 {
		name = name[:20]
	}
	user := &models.User{
		Name:           name,
		PasswordRecord: auth.MakePasswordRecord(name, "demo123"),
		Email:          gofakeit.Email(),
	}
	for _, override := range overrides {
		override(user)
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePost persists a post by the given author with a created_at spread
// over the past maxDays days.
func (f *Factory) CreatePost(author *models.User, maxDays int, overrides ...func(*models.Post)) (*models.Post, error) {
	if maxDays <= 0 {
		maxDays = 90
	}
	post := &models.Post{
		Subject:   gofakeit.Sentence(5),
		Content:   gofakeit.Paragraph(1, 3, 5, "\n"),
		AuthorID:  author.ID,
		CreatedAt: time.Now().Add(-time.Duration(f.rand.Intn(maxDays*24)) * time.Hour),
	}
	for _, override := range overrides {
		override(post)
	}
	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment persists a comment and bumps the post counter the same way
// the application does.
func (f *Factory) CreateComment(author *models.User, post *models.Post) (*models.Comment, error) {
	comment := &models.Comment{
		PostID:     post.ID,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Content:    gofakeit.Sentence(f.rand.Intn(12) + 3),
	}
	err := f.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return tx.Model(&models.Post{}).
			Where("id = ?", post.ID).
			UpdateColumn("comment_count", gorm.Expr("comment_count + 1")).Error
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}
