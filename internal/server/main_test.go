package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shubh305/udacity-multi-user-blog-project/internal/auth"
	"github.com/shubh305/udacity-multi-user-blog-project/internal/config"
	"github.com/shubh305/udacity-multi-user-blog-project/internal/database"
	"github.com/shubh305/udacity-multi-user-blog-project/internal/featureflags"
	"github.com/shubh305/udacity-multi-user-blog-project/internal/repository"
	"github.com/shubh305/udacity-multi-user-blog-project/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:          "8080",
		SessionSecret: "test-session-secret-0123456789abcdef",
		Env:           "test",
	}
}

// newTestApp wires a full Fiber app against an in-memory SQLite database.
// The Prometheus middleware is left out so repeated app construction does not
// trip duplicate registrations on the default registry.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	return newTestAppWithFlags(t, "")
}

func newTestAppWithFlags(t *testing.T, flags string) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:server_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.PersistentModels()...))

	cfg := testConfig()
	cfg.FeatureFlags = flags
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	s := &Server{
		config:         cfg,
		db:             db,
		tokens:         auth.NewTokenCodec(cfg.SessionSecret),
		userRepo:       userRepo,
		postRepo:       postRepo,
		commentRepo:    commentRepo,
		featureFlags:   featureflags.NewManager(cfg.FeatureFlags),
		userService:    service.NewUserService(userRepo),
		postService:    service.NewPostService(postRepo),
		commentService: service.NewCommentService(commentRepo, postRepo),
	}

	app := fiber.New()
	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	return app, db
}

// jsonRequest builds a request with an optional JSON body and an optional
// session cookie value.
func jsonRequest(method, target string, body any, session string) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookie, Value: session})
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, out), "body: %s", data)
}

// sessionFrom extracts the session cookie value set by the response, or ""
// when none was set.
func sessionFrom(resp *http.Response) string {
	for _, c := range resp.Cookies() {
		if c.Name == sessionCookie {
			return c.Value
		}
	}
	return ""
}

// registerUser signs up a user through the API and returns their session
// cookie value.
func registerUser(t *testing.T, app *fiber.App, name string) string {
	t.Helper()

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/auth/signup", fiber.Map{
		"username": name,
		"password": "secret1",
		"verify":   "secret1",
	}, ""))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	session := sessionFrom(resp)
	require.NotEmpty(t, session)
	_ = resp.Body.Close()
	return session
}

// createPost publishes a post through the API and returns its id.
func createPost(t *testing.T, app *fiber.App, session, subject, content string) uint {
	t.Helper()

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/posts/", fiber.Map{
		"subject": subject,
		"content": content,
	}, session))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Post struct {
			ID uint `json:"id"`
		} `json:"post"`
	}
	decodeBody(t, resp, &body)
	require.NotZero(t, body.Post.ID)
	return body.Post.ID
}
