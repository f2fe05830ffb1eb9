package server

import (
	"context"
	"strconv"
	"time"

	"github.com/shubh305/udacity-multi-user-blog-project/internal/middleware"
	"github.com/shubh305/udacity-multi-user-blog-project/internal/models"
	"github.com/shubh305/udacity-multi-user-blog-project/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// sessionCookie is the cookie carrying the signed session token. The token
// payload is the user's numeric id in decimal; see auth.TokenCodec.
const sessionCookie = "user_id"

// ResolveSession turns the session cookie into an authenticated identity for
// the duration of the request. It runs on every request and never fails one:
// a missing cookie, a tampered token, an unparseable payload, or a vanished
// account all downgrade to anonymous. The user row is loaded fresh from the
// store on each request; tokens are deliberately not memoized, so deleting
// an account ends its sessions on the next request.
func (s *Server) ResolveSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(sessionCookie)
		if token == "" {
			observability.SessionsResolved.WithLabelValues("absent").Inc()
			return c.Next()
		}

		value, ok := s.tokens.Decode(token)
		if !ok {
			observability.SessionsResolved.WithLabelValues("invalid").Inc()
			return c.Next()
		}

		id, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			observability.SessionsResolved.WithLabelValues("invalid").Inc()
			return c.Next()
		}

		user, err := s.userRepo.GetByID(c.Context(), uint(id))
		if err != nil {
			observability.SessionsResolved.WithLabelValues("invalid").Inc()
			return c.Next()
		}

		observability.SessionsResolved.WithLabelValues("valid").Inc()
		c.Locals("userID", user.ID)
		c.Locals("currentUser", user)
		// Sync to UserContext for logging and downstream services
		ctx := context.WithValue(c.UserContext(), middleware.UserIDKey, user.ID)
		c.SetUserContext(ctx)

		return c.Next()
	}
}

// LoginRequired rejects anonymous requests with 401. Must be placed after
// ResolveSession.
func (s *Server) LoginRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if s.currentUser(c) == nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Authorization required"))
		}
		return c.Next()
	}
}

// currentUser returns the identity resolved for this request, or nil for
// anonymous.
func (s *Server) currentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("currentUser").(*models.User)
	return user
}

// establishSession writes the signed session cookie for the given user,
// path-scoped to the whole site.
func (s *Server) establishSession(c *fiber.Ctx, userID uint) {
	value := strconv.FormatUint(uint64(userID), 10)
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    s.tokens.Encode(value),
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// clearSession overwrites the session cookie with an empty value. There is
// no server-side revocation list: a logged-out token that the client kept a
// copy of remains valid until the signing secret rotates.
func (s *Server) clearSession(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Unix(0, 0),
	})
}
