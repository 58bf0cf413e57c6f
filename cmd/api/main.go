package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aufburger/internal/auth"
	"aufburger/internal/cart"
	"aufburger/internal/checkout"
	"aufburger/internal/config"
	"aufburger/internal/db"
	"aufburger/internal/logger"
	"aufburger/internal/menu"
	"aufburger/internal/receipt"
	"aufburger/internal/restaurant"
	"aufburger/internal/router"
	"aufburger/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

func main() {
	// ───────────────────────── ENV ─────────────────────────
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("invalid config: %v", err)
	}

	log := logger.New(cfg.LogLevel, cfg.Env)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	// ───────────────────────── DB ─────────────────────────
	var pgDB *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		pgDB, err = db.ConnectPostgres(ctx, cfg.DatabaseURL, log)
		if err != nil {
			log.WithError(err).Fatal("postgres init failed")
		}
		defer pgDB.Close()
	} else {
		log.Warn("DATABASE_URL not set, catalog and staff accounts are in memory")
	}

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rdb, err = db.ConnectRedis(ctx, cfg.RedisURL, log)
		if err != nil {
			log.WithError(err).Fatal("redis init failed")
		}
		defer rdb.Close()
	} else {
		log.Warn("REDIS_URL not set, carts are in memory")
	}

	// ───────────────────────── STORAGE ─────────────────────────
	var images menu.ImageStore
	if cfg.R2.Enabled() {
		r2Client, err := storage.NewR2Client(ctx, storage.Options{
			Endpoint:      cfg.R2.Endpoint,
			AccessKey:     cfg.R2.AccessKey,
			SecretKey:     cfg.R2.SecretKey,
			Bucket:        cfg.R2.Bucket,
			PublicBaseURL: cfg.R2.PublicBaseURL,
		})
		if err != nil {
			log.WithError(err).Fatal("r2 init failed")
		}
		images = r2Client
	} else {
		log.Warn("R2 not configured, image uploads disabled")
	}

	// ───────────────────────── CORE REPOS ─────────────────────────
	var (
		menuRepo  menu.Repository
		staffRepo auth.StaffRepository
	)
	if pgDB != nil {
		pgMenu := menu.NewPostgresRepository(pgDB)
		n, err := pgMenu.Seed(ctx, menu.DefaultProducts())
		if err != nil {
			log.WithError(err).Fatal("catalog seed failed")
		}
		if n > 0 {
			log.WithField("products", n).Info("seeded empty catalog")
		}
		menuRepo = pgMenu
		staffRepo = auth.NewPostgresStaffRepository(pgDB)
	} else {
		menuRepo = menu.NewInMemoryRepository(menu.DefaultProducts())
		staffRepo = auth.NewInMemoryStaffRepository()
	}

	var slot cart.Slot
	if rdb != nil {
		slot = cart.NewRedisSlot(rdb, cart.WithTTL(cfg.CartTTL))
	} else {
		slot = cart.NewMemorySlot()
	}

	var numbers receipt.Generator
	if cfg.OrderNumberMode == config.OrderNumberSequence {
		numbers = receipt.NewSequenceGenerator(rdb, "")
	} else {
		numbers = receipt.NewRandomGenerator(0)
	}

	// ───────────────────────── SERVICES ─────────────────────────
	tokens, err := auth.NewTokenIssuer(cfg.JWTSecret, auth.DefaultTokenTTL)
	if err != nil {
		log.WithError(err).Fatal("token issuer init failed")
	}

	authService := auth.NewService(staffRepo, tokens, log)
	if err := authService.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.WithError(err).Fatal("admin bootstrap failed")
	}

	menuService := menu.NewService(menuRepo, images, log)
	profile := restaurant.DefaultProfile()
	checkoutService := checkout.NewService(menuService, numbers, profile.ReceiptHeader(), log)

	r := router.NewRouter(router.Deps{
		Log:         log,
		CORSOrigins: cfg.CORSOrigins,
		CartTTL:     cfg.CartTTL,
		Tokens:      tokens,
		Auth:        authService,
		Menu:        menuService,
		Checkout:    checkoutService,
		Carts:       cart.NewStore(slot, cart.NamespaceCart, log),
		Orders:      cart.NewStore(slot, cart.NamespaceOrder, log),
		Profile:     profile,
	})

	// ───────────────────────── START ─────────────────────────
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("api starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server forced to shutdown")
	}

	log.Info("server exited properly")
}
