package seed

import (
	"context"
	"log"
	"math/rand"

	"github.com/shubh305/udacity-multi-user-blog-project/internal/models"
	"github.com/shubh305/udacity-multi-user-blog-project/internal/repository"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// Seed populates the database with demo data. Likes are routed through the
// repository ledger, never written directly, so seeded like counts always
// match the ledger rows.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding database with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway")
		}
	}

	factory := NewFactory(db)
	postRepo := repository.NewPostRepository(db)
	ctx := context.Background()

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			return err
		}
		users = append(users, user)
	}

	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		author := users[rand.Intn(len(users))]
		post, err := factory.CreatePost(author, 90)
		if err != nil {
			return err
		}
		posts = append(posts, post)
	}

	for _, post := range posts {
		for _, user := range users {
			if user.ID == post.AuthorID {
				continue
			}
			if rand.Intn(100) < 30 {
				if _, err := postRepo.Like(ctx, user.ID, post.ID); err != nil {
					return err
				}
			}
			if rand.Intn(100) < 10 {
				if _, err := factory.CreateComment(user, post); err != nil {
					return err
				}
			}
		}
	}

	log.Printf("Seeding complete: %d users, %d posts", len(users), len(posts))
	return nil
}

func clearData(db *gorm.DB) error {
	// Order matters: children before parents.
	for _, model := range []interface{}{
		&models.Like{}, &models.Comment{}, &models.Post{}, &models.User{},
	} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Unscoped().Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}
