package middlewares

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"blightwatch-be/limiter"
	"blightwatch-be/session"
	"blightwatch-be/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testSecret = "test-secret"

func authRouter() *gin.Engine {
	r := gin.New()
	admin := r.Group("/admin", AuthMiddleware(testSecret, zap.NewNop()), RequireRole("admin"))
	admin.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(UserIDKey)})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	r := authRouter()
	adminToken, err := utils.GenerateToken(testSecret, "u-1", "admin", time.Hour)
	require.NoError(t, err)
	citizenToken, err := utils.GenerateToken(testSecret, "u-2", "citizen", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		setup  func(*http.Request)
		status int
	}{
		{"no token", func(*http.Request) {}, http.StatusUnauthorized},
		{"garbage token", func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") }, http.StatusUnauthorized},
		{"bearer admin", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+adminToken) }, http.StatusOK},
		{"cookie admin", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: AuthCookie, Value: adminToken}) }, http.StatusOK},
		{"wrong role", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+citizenToken) }, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/me", nil)
			tt.setup(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func sessionRouter(store session.Store) *gin.Engine {
	r := gin.New()
	r.Use(Session(store, utils.CookieOptions{Domain: "localhost"}, time.Hour, zap.NewNop()))
	r.POST("/visit/:id", func(c *gin.Context) {
		CurrentSession(c).Visit(c.Param("id"))
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestSessionCreatesAndPersists(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	r := sessionRouter(store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/visit/M-M-1", nil))
	id := w.Header().Get(SessionHeader)
	require.NotEmpty(t, id)

	var cookie *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == SessionCookie {
			cookie = ck
		}
	}
	require.NotNil(t, cookie)
	assert.Equal(t, id, cookie.Value)
	assert.True(t, cookie.HttpOnly)

	// Cookie and header both resume the same session.
	req := httptest.NewRequest(http.MethodPost, "/visit/M-M-2", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, id, w.Header().Get(SessionHeader))

	req = httptest.NewRequest(http.MethodPost, "/visit/M-M-1", nil)
	req.Header.Set(SessionHeader, id)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	sess, err := store.Load(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, []string{"M-M-1", "M-M-2"}, sess.Visited)
}

func TestSessionReplacesUnknownID(t *testing.T) {
	r := sessionRouter(session.NewMemoryStore(time.Hour))

	req := httptest.NewRequest(http.MethodPost, "/visit/M-M-1", nil)
	req.Header.Set(SessionHeader, "expired")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.NotEqual(t, "expired", w.Header().Get(SessionHeader))
	assert.NotEmpty(t, w.Header().Get(SessionHeader))
}

func TestSessionSkipsUntouchedAnonymousSessions(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	r := sessionRouter(store)
	r.GET("/look", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/look", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get(SessionHeader))
	}
	assert.Equal(t, 0, store.Len())

	// A stored session is saved again even when unchanged, refreshing its TTL.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/visit/M-M-1", nil))
	id := w.Header().Get(SessionHeader)
	require.Equal(t, 1, store.Len())

	req := httptest.NewRequest(http.MethodGet, "/look", nil)
	req.Header.Set(SessionHeader, id)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, id, w.Header().Get(SessionHeader))
	assert.Equal(t, 1, store.Len())
}

type failingCounter struct{}

func (failingCounter) Hit(context.Context, string, time.Duration) (int64, time.Duration, error) {
	return 0, 0, errors.New("connection refused")
}

func (failingCounter) Reset(context.Context, string) error { return nil }

func limitedRouter(counter limiter.Counter, limit int) *gin.Engine {
	r := gin.New()
	r.Use(Session(session.NewMemoryStore(time.Hour), utils.CookieOptions{}, time.Hour, zap.NewNop()))
	r.POST("/verify", func(c *gin.Context) {
		sess := CurrentSession(c)
		sess.Authenticated = true
		sess.Email = c.Query("email")
		c.Status(http.StatusOK)
	})
	r.POST("/cases", RateLimiter(counter, "case_submit", limit, time.Hour, zap.NewNop()), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	return r
}

type caller struct {
	addr    string
	session string
}

func (cl caller) do(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	req.RemoteAddr = cl.addr
	if cl.session != "" {
		req.Header.Set(SessionHeader, cl.session)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiterSessionlessCallersShareIPBudget(t *testing.T) {
	r := limitedRouter(limiter.NewMemory(), 2)
	anon := caller{addr: "203.0.113.7:4000"}

	assert.Equal(t, http.StatusCreated, anon.do(r, "/cases").Code)
	assert.Equal(t, http.StatusCreated, anon.do(r, "/cases").Code)

	// Dropping the session header does not reset the budget.
	blocked := anon.do(r, "/cases")
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.Contains(t, blocked.Body.String(), "retry_after")

	// Another address has its own budget.
	other := caller{addr: "198.51.100.2:4000"}
	assert.Equal(t, http.StatusCreated, other.do(r, "/cases").Code)
}

func TestRateLimiterKeysVerifiedCitizensByEmail(t *testing.T) {
	r := limitedRouter(limiter.NewMemory(), 2)

	first := caller{addr: "203.0.113.7:4000"}
	w := first.do(r, "/verify?email=resident@example.com")
	require.Equal(t, http.StatusOK, w.Code)
	first.session = w.Header().Get(SessionHeader)

	second := caller{addr: "198.51.100.2:4000"}
	w = second.do(r, "/verify?email=resident@example.com")
	require.Equal(t, http.StatusOK, w.Code)
	second.session = w.Header().Get(SessionHeader)
	require.NotEqual(t, first.session, second.session)

	// Two sessions on two addresses share one budget through the email.
	assert.Equal(t, http.StatusCreated, first.do(r, "/cases").Code)
	assert.Equal(t, http.StatusCreated, second.do(r, "/cases").Code)
	assert.Equal(t, http.StatusTooManyRequests, first.do(r, "/cases").Code)

	// The address budget is separate from the email budget.
	assert.Equal(t, http.StatusCreated, caller{addr: "203.0.113.7:4000"}.do(r, "/cases").Code)
}

func TestRateLimiterCounterFailure(t *testing.T) {
	r := limitedRouter(failingCounter{}, 2)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/cases", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRequireJSON(t *testing.T) {
	r := gin.New()
	r.Use(RequireJSON())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	tests := []struct {
		name        string
		method      string
		contentType string
		status      int
	}{
		{"get needs nothing", http.MethodGet, "", http.StatusOK},
		{"json post", http.MethodPost, "application/json", http.StatusOK},
		{"json post with charset", http.MethodPost, "application/json; charset=utf-8", http.StatusOK},
		{"form post", http.MethodPost, "application/x-www-form-urlencoded", http.StatusUnsupportedMediaType},
		{"plain text post", http.MethodPost, "text/plain", http.StatusUnsupportedMediaType},
		{"no content type", http.MethodPost, "", http.StatusUnsupportedMediaType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/x", strings.NewReader(`{}`))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}
