package menu

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMenuTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	service := newTestService(nil)
	handler := NewHandler(service)
	admin := NewAdminHandler(service)

	r.GET("/menu", handler.List)
	r.GET("/products/:id", handler.Get)
	r.POST("/admin/products", admin.Create)
	r.DELETE("/admin/products/:id", admin.Delete)
	r.GET("/admin/stats", admin.Stats)

	return r
}

func TestMenuList_FiltersByQuery(t *testing.T) {
	r := setupMenuTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/menu?search=spicy&category=All&price=all", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []Product `json:"items"`
		Count int       `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "Spicy Fire Burger", resp.Items[0].Name)
}

func TestMenuList_RejectsUnknownFilters(t *testing.T) {
	r := setupMenuTestRouter()

	for _, url := range []string{"/menu?price=cheap", "/menu?category=Sushi"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, url)
	}
}

func TestProductDetail_NotFoundPointsBackToMenu(t *testing.T) {
	r := setupMenuTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products/404", nil))

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "/menu", resp["back"])
}

func TestProductDetail_IncludesOptions(t *testing.T) {
	r := setupMenuTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products/3", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Product Product           `json:"product"`
		Sizes   []json.RawMessage `json:"sizes"`
		Extras  []json.RawMessage `json:"extras"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Product.Spicy)
	assert.Len(t, resp.Sizes, 3)
	assert.Len(t, resp.Extras, 6)
}

func TestProductDetail_BadID(t *testing.T) {
	r := setupMenuTestRouter()

	for _, url := range []string{"/products/abc", "/products/0", "/products/-4"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
		require.Equal(t, http.StatusNotFound, w.Code, url)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "/menu", resp["back"], url)
	}
}

func TestAdminCreateThenStats(t *testing.T) {
	r := setupMenuTestRouter()

	body, _ := json.Marshal(map[string]any{
		"name":     "Mushroom Swiss",
		"price":    14.49,
		"category": "Gourmet",
	})
	req := httptest.NewRequest(http.MethodPost, "/admin/products", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/stats", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		TotalItems int `json:"total_items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 7, stats.TotalItems)
}

func TestAdminCreate_MissingCategory(t *testing.T) {
	r := setupMenuTestRouter()

	body, _ := json.Marshal(map[string]any{"name": "Nameless", "price": "9.99"})
	req := httptest.NewRequest(http.MethodPost, "/admin/products", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminDelete(t *testing.T) {
	r := setupMenuTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/admin/products/1", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/admin/products/1", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func uploadRequest(t *testing.T, url, filename string) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, url, body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestAdminUploadImage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	images := &fakeImageStore{}
	r := gin.New()
	r.POST("/admin/products/:id/image", NewAdminHandler(newTestService(images)).UploadImage)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, "/admin/products/2/image", "smoke.webp"))
	require.Equal(t, http.StatusOK, w.Code)

	var p Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	require.Len(t, images.keys, 1)
	assert.Equal(t, "https://cdn.example.com/"+images.keys[0], p.Image)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, "/admin/products/2/image", "notes.txt"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminUploadImage_StoreDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/admin/products/:id/image", NewAdminHandler(newTestService(nil)).UploadImage)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, "/admin/products/2/image", "smoke.png"))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
