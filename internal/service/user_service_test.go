package service

import (
	"context"
	"strings"
	"testing"

	"github.com/shubh305/udacity-multi-user-blog-project/internal/auth"
	"github.com/shubh305/udacity-multi-user-blog-project/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Signup_Validation(t *testing.T) {
	t.Parallel()

	svc := NewUserService(noopUserRepo())
	ctx := context.Background()

	tests := []struct {
		name    string
		in      SignupInput
		message string
	}{
		{
			name:    "invalid username",
			in:      SignupInput{Username: "a!", Password: "secret1", Verify: "secret1"},
			message: "Error : Invalid username",
		},
		{
			name:    "invalid password",
			in:      SignupInput{Username: "alice", Password: "x", Verify: "x"},
			message: "Error : Invalid password",
		},
		{
			name:    "passwords do not match",
			in:      SignupInput{Username: "alice", Password: "secret1", Verify: "secret2"},
			message: "Error : Your passwords didn't match",
		},
		{
			name:    "invalid email",
			in:      SignupInput{Username: "alice", Password: "secret1", Verify: "secret1", Email: "not-an-email"},
			message: "Error : That's not a valid email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Signup(ctx, tt.in)
			assertValidationError(t, err, tt.message)
		})
	}
}

func TestUserService_Signup_FirstFailureWins(t *testing.T) {
	t.Parallel()

	svc := NewUserService(noopUserRepo())

	// Everything is wrong; the username error is the one reported.
	_, err := svc.Signup(context.Background(), SignupInput{
		Username: "!", Password: "x", Verify: "y", Email: "nope",
	})
	assertValidationError(t, err, "Error : Invalid username")
}

func TestUserService_Signup_DuplicateName(t *testing.T) {
	t.Parallel()

	repo := noopUserRepo()
	repo.getByNameFn = func(_ context.Context, name string) (*models.User, error) {
		return &models.User{ID: 1, Name: name}, nil
	}
	svc := NewUserService(repo)

	_, err := svc.Signup(context.Background(), SignupInput{
		Username: "alice", Password: "secret1", Verify: "secret1",
	})
	assertValidationError(t, err, "That user already exists.")
}

func TestUserService_Signup_Success(t *testing.T) {
	t.Parallel()

	var created *models.User
	repo := noopUserRepo()
	repo.createFn = func(_ context.Context, u *models.User) error {
		u.ID = 7
		created = u
		return nil
	}
	svc := NewUserService(repo)

	user, err := svc.Signup(context.Background(), SignupInput{
		Username: "alice", Password: "secret1", Verify: "secret1", Email: "alice@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(7), user.ID)
	assert.Equal(t, "alice", created.Name)

	// The stored record is a salted hash, never the raw password.
	assert.NotContains(t, created.PasswordRecord, "secret1")
	assert.True(t, strings.Contains(created.PasswordRecord, ","))
	assert.True(t, auth.VerifyPassword("alice", "secret1", created.PasswordRecord))
}

func TestUserService_Login(t *testing.T) {
	t.Parallel()

	record := auth.MakePasswordRecord("alice", "secret1")
	repo := noopUserRepo()
	repo.getByNameFn = func(_ context.Context, name string) (*models.User, error) {
		if name == "alice" {
			return &models.User{ID: 1, Name: "alice", PasswordRecord: record}, nil
		}
		return nil, nil
	}
	svc := NewUserService(repo)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		user, err := svc.Login(ctx, LoginInput{Username: "alice", Password: "secret1"})
		require.NoError(t, err)
		assert.Equal(t, uint(1), user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginInput{Username: "alice", Password: "wrong"})
		assertUnauthorizedError(t, err, "Invalid Username or Password")
	})

	t.Run("unknown user gets the same error", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginInput{Username: "nobody", Password: "secret1"})
		assertUnauthorizedError(t, err, "Invalid Username or Password")
	})
}
