package router

import (
	"net/http"
	"time"

	"aufburger/internal/auth"
	"aufburger/internal/cart"
	"aufburger/internal/checkout"
	"aufburger/internal/logger"
	"aufburger/internal/menu"
	"aufburger/internal/middleware"
	"aufburger/internal/restaurant"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Deps is everything the HTTP surface needs. cmd/api builds it.
type Deps struct {
	Log         logrus.FieldLogger
	CORSOrigins []string
	CartTTL     time.Duration

	Tokens   middleware.TokenValidator
	Auth     *auth.Service
	Menu     *menu.Service
	Checkout *checkout.Service
	Carts    *cart.Store
	Orders   *cart.Store
	Profile  restaurant.Profile
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logger.GinMiddleware(d.Log))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     d.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.SessionHeader},
		ExposeHeaders:    []string{middleware.SessionHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── HANDLERS ─────────────────────────
	menuHandler := menu.NewHandler(d.Menu)
	adminMenuHandler := menu.NewAdminHandler(d.Menu)
	checkoutHandler := checkout.NewHandler(d.Checkout, d.Carts, d.Orders)
	authHandler := auth.NewHandler(d.Auth)
	infoHandler := restaurant.NewHandler(d.Profile)

	// ───────────────────────── PUBLIC ─────────────────────────
	r.GET("/menu", menuHandler.List)
	r.GET("/products/:id", menuHandler.Get)
	r.POST("/products/:id/quote", checkoutHandler.Quote)
	r.GET("/info", infoHandler.Info)
	r.POST("/auth/login", authHandler.Login)

	// ───────────────────────── CART ─────────────────────────
	session := middleware.CartSession(int(d.CartTTL / time.Second))

	carts := r.Group("/cart", session)
	{
		carts.GET("", checkoutHandler.GetCart)
		carts.DELETE("", checkoutHandler.ClearCart)
		carts.POST("/items", checkoutHandler.AddItem)
		carts.PATCH("/items/:index", checkoutHandler.UpdateQuantity)
		carts.DELETE("/items/:index", checkoutHandler.RemoveItem)
		carts.POST("/checkout", checkoutHandler.CheckoutCart)
	}

	// ───────────────────────── SIMPLE ORDER ─────────────────────────
	orders := r.Group("/order", session)
	{
		orders.GET("", checkoutHandler.GetOrder)
		orders.DELETE("", checkoutHandler.ClearOrder)
		orders.POST("/items", checkoutHandler.AddOrderItem)
		orders.POST("/items/:product_id/decrement", checkoutHandler.DecrementOrderItem)
		orders.POST("/checkout", checkoutHandler.CheckoutOrder)
	}

	// ───────────────────────── ADMIN ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(d.Tokens, d.Log),
		middleware.RequireRole(auth.RoleAdmin),
	)
	{
		admin.GET("/products", adminMenuHandler.List)
		admin.POST("/products", adminMenuHandler.Create)
		admin.PUT("/products/:id", adminMenuHandler.Update)
		admin.DELETE("/products/:id", adminMenuHandler.Delete)
		admin.POST("/products/:id/image", adminMenuHandler.UploadImage)
		admin.GET("/stats", adminMenuHandler.Stats)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}
