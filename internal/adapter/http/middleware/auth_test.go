package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"delivery_hub/internal/infrastructure/auth"

	"github.com/gin-gonic/gin"
)

func newProtectedRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/v1/me", RequireSession(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"session_id": c.GetString(SessionIDKey)})
	})
	return r
}

func TestRequireSession(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		r := newProtectedRouter("secret")

		req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("malformed header", func(t *testing.T) {
		r := newProtectedRouter("secret")

		req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		r := newProtectedRouter("secret")

		token, err := auth.GenerateSessionToken("other", "sess-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid token passes through", func(t *testing.T) {
		r := newProtectedRouter("secret")

		token, err := auth.GenerateSessionToken("secret", "sess-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := w.Body.String(); body != `{"session_id":"sess-1"}` {
			t.Fatalf("unexpected body: %s", body)
		}
	})
}
