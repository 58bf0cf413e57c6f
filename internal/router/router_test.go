package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"aufburger/internal/auth"
	"aufburger/internal/cart"
	"aufburger/internal/checkout"
	"aufburger/internal/logger"
	"aufburger/internal/menu"
	"aufburger/internal/middleware"
	"aufburger/internal/receipt"
	"aufburger/internal/restaurant"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNop()

	tokens, err := auth.NewTokenIssuer("test-secret-key-for-testing-only", time.Hour)
	require.NoError(t, err)

	authService := auth.NewService(auth.NewInMemoryStaffRepository(), tokens, log)
	require.NoError(t, authService.EnsureAdmin(context.Background(), "admin@aufburger.com", "Password@123"))

	menuService := menu.NewService(menu.NewInMemoryRepository(menu.DefaultProducts()), nil, log)
	profile := restaurant.DefaultProfile()
	slot := cart.NewMemorySlot()

	return NewRouter(Deps{
		Log:         log,
		CORSOrigins: []string{"http://localhost:3000"},
		CartTTL:     time.Hour,
		Tokens:      tokens,
		Auth:        authService,
		Menu:        menuService,
		Checkout:    checkout.NewService(menuService, receipt.NewRandomGenerator(1), profile.ReceiptHeader(), log),
		Carts:       cart.NewStore(slot, cart.NamespaceCart, log),
		Orders:      cart.NewStore(slot, cart.NamespaceOrder, log),
		Profile:     profile,
	})
}

func send(r *gin.Engine, method, url, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, url, nil)
	} else {
		req = httptest.NewRequest(method, url, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	r := setupTestRouter(t)

	w := send(r, http.MethodGet, "/health", "", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	r := setupTestRouter(t)

	w := send(r, http.MethodGet, "/admin/stats", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminEditsAreVisibleOnMenu(t *testing.T) {
	r := setupTestRouter(t)

	w := send(r, http.MethodPost, "/auth/login", `{"email":"admin@aufburger.com","password":"Password@123"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var login map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	bearer := map[string]string{"Authorization": "Bearer " + login["token"]}

	w = send(r, http.MethodPost, "/admin/products",
		`{"name":"Truffle Melt","price":"22.50","category":"Gourmet"}`, bearer)
	require.Equal(t, http.StatusCreated, w.Code)

	w = send(r, http.MethodGet, "/menu?category=Gourmet", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listing struct {
		Items []menu.Product `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	require.Len(t, listing.Items, 1)
	assert.Equal(t, 7, listing.Items[0].ID)
}

func TestCartSessionRoundTrip(t *testing.T) {
	r := setupTestRouter(t)

	w := send(r, http.MethodPost, "/order/items", `{"product_id":1}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	session := w.Header().Get(middleware.SessionHeader)
	require.NotEmpty(t, session)

	w = send(r, http.MethodGet, "/order", "", map[string]string{middleware.SessionHeader: session})
	require.Equal(t, http.StatusOK, w.Code)

	var order struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, 1, order.Count)

	// a different session sees nothing
	w = send(r, http.MethodGet, "/order", "", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, 0, order.Count)
}

func TestInfo(t *testing.T) {
	r := setupTestRouter(t)

	w := send(r, http.MethodGet, "/info", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Auf Burger")
}
