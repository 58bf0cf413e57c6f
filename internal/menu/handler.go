package menu

import (
	"errors"
	"net/http"
	"strconv"

	"aufburger/internal/pricing"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

type AdminHandler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func NewAdminHandler(service *Service) *AdminHandler {
	return &AdminHandler{service: service}
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "back": "/menu"})
	case errors.Is(err, ErrNameRequired),
		errors.Is(err, ErrPriceRequired),
		errors.Is(err, ErrNegativePrice),
		errors.Is(err, ErrInvalidCategory),
		errors.Is(err, ErrRatingOutOfRange),
		errors.Is(err, ErrImageExtension),
		errors.Is(err, ErrUnknownPriceRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ErrImageStoreDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// ParseProductID reads a product id path parameter. An id that cannot
// name a product is answered as not found.
func ParseProductID(c *gin.Context, param string) (int, bool) {
	id, err := strconv.Atoi(c.Param(param))
	if err != nil || id <= 0 {
		writeError(c, ErrProductNotFound)
		return 0, false
	}
	return id, true
}

// --------------------------------------------------
// GET /menu?search=&category=&price=
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	price, err := ParsePriceRange(c.Query("price"))
	if err != nil {
		writeError(c, err)
		return
	}

	category := c.DefaultQuery("category", "All")
	if category != "All" && !Category(category).Valid() {
		writeError(c, ErrInvalidCategory)
		return
	}

	f := Filter{
		Search:   c.Query("search"),
		Category: category,
		Price:    price,
	}

	products, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":        products,
		"count":        len(products),
		"categories":   append([]Category{"All"}, Categories...),
		"price_ranges": PriceRanges,
	})
}

// --------------------------------------------------
// GET /products/:id
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	id, ok := ParseProductID(c, "id")
	if !ok {
		return
	}

	product, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product": product,
		"sizes":   pricing.Sizes(),
		"extras":  pricing.Extras(),
	})
}

// --------------------------------------------------
// ADMIN
// --------------------------------------------------

func (h *AdminHandler) List(c *gin.Context) {
	products, err := h.service.List(c.Request.Context(), Filter{})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *AdminHandler) Create(c *gin.Context) {
	var in ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	product, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

func (h *AdminHandler) Update(c *gin.Context) {
	id, ok := ParseProductID(c, "id")
	if !ok {
		return
	}

	var in ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	product, err := h.service.Update(c.Request.Context(), id, in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *AdminHandler) Delete(c *gin.Context) {
	id, ok := ParseProductID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// POST /admin/products/:id/image (multipart field "image")
func (h *AdminHandler) UploadImage(c *gin.Context) {
	id, ok := ParseProductID(c, "id")
	if !ok {
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable image"})
		return
	}
	defer file.Close()

	product, err := h.service.UploadImage(
		c.Request.Context(),
		id,
		file,
		header.Filename,
		header.Header.Get("Content-Type"),
	)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}
