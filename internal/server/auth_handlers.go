package server

import (
	"errors"

	"github.com/shubh305/udacity-multi-user-blog-project/internal/models"
	"github.com/shubh305/udacity-multi-user-blog-project/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Signup handles POST /api/auth/signup. A successful registration
// establishes a session immediately; there is no separate first login.
// The signup_disabled flag is an operational kill switch.
func (s *Server) Signup(c *fiber.Ctx) error {
	if s.featureFlags.Enabled("signup_disabled", 0) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Signups are temporarily disabled",
		})
	}

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Verify   string `json:"verify"`
		Email    string `json:"email"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.Signup(c.Context(), service.SignupInput{
		Username: req.Username,
		Password: req.Password,
		Verify:   req.Verify,
		Email:    req.Email,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	s.establishSession(c, user.ID)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user": user,
	})
}

// Login handles POST /api/auth/login
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.Login(c.Context(), service.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == "UNAUTHORIZED" {
			return models.RespondWithError(c, fiber.StatusUnauthorized, appErr)
		}
		return respondServiceError(c, err)
	}

	s.establishSession(c, user.ID)
	return c.JSON(fiber.Map{
		"user": user,
	})
}

// Logout handles POST /api/auth/logout. Logout is client-side only: the
// cookie is cleared, outstanding copies of the token are not revoked.
func (s *Server) Logout(c *fiber.Ctx) error {
	s.clearSession(c)
	return c.JSON(fiber.Map{
		"message": "Logged out",
	})
}

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"user": s.currentUser(c),
	})
}
