package checkout

import (
	"errors"
	"net/http"
	"strconv"

	"aufburger/internal/cart"
	"aufburger/internal/customizer"
	"aufburger/internal/menu"
	"aufburger/internal/middleware"
	"aufburger/internal/pricing"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
	carts   *cart.Store
	orders  *cart.Store
}

// NewHandler serves the customized cart from carts and the quick order
// flow from orders. The two never share lines.
func NewHandler(service *Service, carts, orders *cart.Store) *Handler {
	return &Handler{service: service, carts: carts, orders: orders}
}

type cartResponse struct {
	Items      []cart.LineItem `json:"items"`
	Count      int             `json:"count"`
	Subtotal   string          `json:"subtotal"`
	Tax        string          `json:"tax"`
	GrandTotal string          `json:"grand_total"`
}

func toCartResponse(c *cart.Cart) cartResponse {
	t := c.Totals()
	return cartResponse{
		Items:      c.Items,
		Count:      c.ItemCount(),
		Subtotal:   pricing.Money(t.Subtotal),
		Tax:        pricing.Money(t.Tax),
		GrandTotal: pricing.Money(t.GrandTotal),
	}
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, menu.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "back": "/menu"})
	case errors.Is(err, cart.ErrLineNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, pricing.ErrUnknownSize),
		errors.Is(err, pricing.ErrUnknownExtra),
		errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, ErrCustomerNameRequired),
		errors.Is(err, ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func parseIndex(c *gin.Context) (int, bool) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil || idx < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid line index"})
		return 0, false
	}
	return idx, true
}

// --------------------------------------------------
// POST /products/:id/quote
// --------------------------------------------------
func (h *Handler) Quote(c *gin.Context) {
	id, ok := menu.ParseProductID(c, "id")
	if !ok {
		return
	}

	var sel customizer.Selection
	if err := c.ShouldBindJSON(&sel); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	cz, err := h.service.Customize(c.Request.Context(), id, sel)
	if err != nil {
		writeError(c, err)
		return
	}

	q := cz.Quote()
	c.JSON(http.StatusOK, gin.H{
		"product_id":     id,
		"size":           cz.Size(),
		"extras":         cz.Extras(),
		"quantity":       cz.Quantity(),
		"can_decrement":  cz.CanDecrement(),
		"base_price":     pricing.Money(q.BasePrice),
		"size_surcharge": pricing.Money(q.SizeSurcharge),
		"extras_total":   pricing.Money(q.ExtrasTotal),
		"unit_price":     pricing.Money(q.UnitPrice),
		"total":          pricing.Money(q.Total),
	})
}

// --------------------------------------------------
// Customized cart
// --------------------------------------------------

// GET /cart
func (h *Handler) GetCart(c *gin.Context) {
	ct, err := h.carts.Load(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(ct))
}

type addItemRequest struct {
	ProductID int      `json:"product_id" binding:"required"`
	Size      string   `json:"size"`
	Extras    []string `json:"extras"`
	Quantity  int      `json:"quantity"`
}

// POST /cart/items
func (h *Handler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id is required"})
		return
	}

	// omitted quantity means 1
	if req.Quantity < 0 {
		writeError(c, cart.ErrInvalidQuantity)
		return
	}

	ct, err := h.service.AddCustomized(
		c.Request.Context(),
		h.carts,
		middleware.SessionID(c),
		req.ProductID,
		customizer.Selection{Size: req.Size, Extras: req.Extras, Quantity: req.Quantity},
	)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toCartResponse(ct))
}

type updateQuantityRequest struct {
	Quantity *int `json:"quantity"`
}

// PATCH /cart/items/:index
func (h *Handler) UpdateQuantity(c *gin.Context) {
	idx, ok := parseIndex(c)
	if !ok {
		return
	}

	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Quantity == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity is required"})
		return
	}

	ct, err := h.carts.UpdateQuantity(c.Request.Context(), middleware.SessionID(c), idx, *req.Quantity)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(ct))
}

// DELETE /cart/items/:index
func (h *Handler) RemoveItem(c *gin.Context) {
	idx, ok := parseIndex(c)
	if !ok {
		return
	}

	ct, err := h.carts.Remove(c.Request.Context(), middleware.SessionID(c), idx)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(ct))
}

// DELETE /cart
func (h *Handler) ClearCart(c *gin.Context) {
	h.clear(c, h.carts)
}

// POST /cart/checkout
func (h *Handler) CheckoutCart(c *gin.Context) {
	h.checkout(c, h.carts)
}

// --------------------------------------------------
// Simple order
// --------------------------------------------------

// GET /order
func (h *Handler) GetOrder(c *gin.Context) {
	ct, err := h.orders.Load(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(ct))
}

type addOrderItemRequest struct {
	ProductID int `json:"product_id" binding:"required"`
}

// POST /order/items
func (h *Handler) AddOrderItem(c *gin.Context) {
	var req addOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id is required"})
		return
	}

	ct, err := h.service.AddSimple(c.Request.Context(), h.orders, middleware.SessionID(c), req.ProductID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(ct))
}

// POST /order/items/:product_id/decrement
func (h *Handler) DecrementOrderItem(c *gin.Context) {
	id, ok := menu.ParseProductID(c, "product_id")
	if !ok {
		return
	}

	ct, err := h.orders.DecrementProduct(c.Request.Context(), middleware.SessionID(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(ct))
}

// DELETE /order
func (h *Handler) ClearOrder(c *gin.Context) {
	h.clear(c, h.orders)
}

// POST /order/checkout
func (h *Handler) CheckoutOrder(c *gin.Context) {
	h.checkout(c, h.orders)
}

// --------------------------------------------------

func (h *Handler) clear(c *gin.Context, store *cart.Store) {
	if err := store.Clear(c.Request.Context(), middleware.SessionID(c)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) checkout(c *gin.Context, store *cart.Store) {
	var info CustomerInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	r, err := h.service.Checkout(c.Request.Context(), store, middleware.SessionID(c), info)
	if err != nil {
		writeError(c, err)
		return
	}

	text, err := r.Text()
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"receipt": r,
		"text":    text,
	})
}
