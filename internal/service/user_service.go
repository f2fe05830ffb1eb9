// Package service implements the application's business logic on top of the
// repository layer. Services validate input, enforce ownership rules and
// return models.AppError values for the handlers to translate.
package service

import (
	"context"

	"github.com/shubh305/udacity-multi-user-blog-project/internal/auth"
	"github.com/shubh305/udacity-multi-user-blog-project/internal/models"
	"github.com/shubh305/udacity-multi-user-blog-project/internal/observability"
	"github.com/shubh305/udacity-multi-user-blog-project/internal/repository"
	"github.com/shubh305/udacity-multi-user-blog-project/internal/validation"
)

type UserService struct {
	userRepo repository.UserRepository
}

type SignupInput struct {
	Username string
	Password string
	Verify   string
	Email    string
}

type LoginInput struct {
	Username string
	Password string
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Signup validates the registration fields, reports the first failure, and
// creates the account with a freshly salted password record. The caller is
// expected to establish a session for the returned user right away.
func (s *UserService) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	if !validation.ValidUsername(in.Username) {
		return nil, models.NewValidationError("Error : Invalid username")
	}
	if !validation.ValidPassword(in.Password) {
		return nil, models.NewValidationError("Error : Invalid password")
	}
	if in.Password != in.Verify {
		return nil, models.NewValidationError("Error : Your passwords didn't match")
	}
	if !validation.ValidEmail(in.Email) {
		return nil, models.NewValidationError("Error : That's not a valid email")
	}

	existing, err := s.userRepo.GetByName(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewValidationError("That user already exists.")
	}

	user := &models.User{
		Name:           in.Username,
		PasswordRecord: auth.MakePasswordRecord(in.Username, in.Password),
		Email:          in.Email,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	observability.SignupsTotal.Inc()
	return user, nil
}

// Login verifies the credentials against the stored password record. An
// unknown name and a wrong password produce the same error, so the response
// leaks nothing about which accounts exist.
func (s *UserService) Login(ctx context.Context, in LoginInput) (*models.User, error) {
	user, err := s.userRepo.GetByName(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !auth.VerifyPassword(in.Username, in.Password, user.PasswordRecord) {
		observability.LoginAttempts.WithLabelValues("failure").Inc()
		return nil, models.NewUnauthorizedError("Invalid Username or Password")
	}

	observability.LoginAttempts.WithLabelValues("success").Inc()
	return user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}
