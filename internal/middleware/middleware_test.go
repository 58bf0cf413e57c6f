package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"aufburger/internal/auth"
	"aufburger/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func newIssuer(t *testing.T) *auth.TokenIssuer {
	t.Helper()
	issuer, err := auth.NewTokenIssuer("test-secret-key-for-testing-only", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return issuer
}

func protectedRouter(t *testing.T, roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(AuthMiddleware(newIssuer(t), logger.NewNop()))
	if len(roles) > 0 {
		router.Use(RequireRole(roles...))
	}
	router.GET("/test", func(c *gin.Context) {
		staffID, _ := c.Get("staffID")
		c.JSON(http.StatusOK, gin.H{"staffID": staffID})
	})
	return router
}

// TestAuthMiddleware_MissingAuthHeader tests the middleware with missing Authorization header
func TestAuthMiddleware_MissingAuthHeader(t *testing.T) {
	router := protectedRouter(t)

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

// TestAuthMiddleware_InvalidAuthFormat tests the middleware with invalid Bearer format
func TestAuthMiddleware_InvalidAuthFormat(t *testing.T) {
	router := protectedRouter(t)

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "InvalidFormat")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	router := protectedRouter(t)

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer invalid_token_xyz")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestAuthMiddleware_ValidAdminToken(t *testing.T) {
	router := protectedRouter(t, auth.RoleAdmin)

	token, err := newIssuer(t).Generate("staff-1", "admin@aufburger.com", auth.RoleAdmin)
	if err != nil {
		t.Fatalf("failed to generate test token: %v", err)
	}

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestRequireRole_Forbidden(t *testing.T) {
	router := protectedRouter(t, auth.RoleAdmin)

	token, err := newIssuer(t).Generate("staff-2", "cook@aufburger.com", "KITCHEN")
	if err != nil {
		t.Fatalf("failed to generate test token: %v", err)
	}

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected status %d, got %d", http.StatusForbidden, w.Code)
	}
}

func sessionRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CartSession(3600))
	router.GET("/cart", func(c *gin.Context) {
		c.String(http.StatusOK, SessionID(c))
	})
	return router
}

func TestCartSession_IssuesNewID(t *testing.T) {
	w := httptest.NewRecorder()
	sessionRouter().ServeHTTP(w, httptest.NewRequest("GET", "/cart", nil))

	id := w.Body.String()
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected a uuid session, got %q", id)
	}
	if w.Header().Get(SessionHeader) != id {
		t.Errorf("expected header to echo %q", id)
	}
	if len(w.Result().Cookies()) == 0 || w.Result().Cookies()[0].Value != id {
		t.Errorf("expected %s cookie to be set", SessionCookie)
	}
}

func TestCartSession_PrefersHeaderThenCookie(t *testing.T) {
	router := sessionRouter()
	fromHeader := uuid.NewString()
	fromCookie := uuid.NewString()

	req := httptest.NewRequest("GET", "/cart", nil)
	req.Header.Set(SessionHeader, fromHeader)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: fromCookie})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Body.String() != fromHeader {
		t.Errorf("expected header session %q, got %q", fromHeader, w.Body.String())
	}

	req = httptest.NewRequest("GET", "/cart", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: fromCookie})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Body.String() != fromCookie {
		t.Errorf("expected cookie session %q, got %q", fromCookie, w.Body.String())
	}
}

func TestCartSession_ReplacesGarbage(t *testing.T) {
	req := httptest.NewRequest("GET", "/cart", nil)
	req.Header.Set(SessionHeader, "../../etc/passwd")
	w := httptest.NewRecorder()
	sessionRouter().ServeHTTP(w, req)

	if w.Body.String() == "../../etc/passwd" {
		t.Fatalf("expected invalid session to be replaced")
	}
}
