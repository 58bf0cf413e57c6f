package main

import (
	"context"
	"flag"
	"time"

	"aufburger/internal/config"
	"aufburger/internal/db"
	"aufburger/internal/logger"
	"aufburger/internal/menu"

	"github.com/sirupsen/logrus"
)

// catalog-seed creates the schema and loads the default menu into an
// empty products table. It exits without touching a populated table.
func main() {
	timeout := flag.Duration("timeout", 30*time.Second, "overall deadline")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}

	log := logger.New(cfg.LogLevel, cfg.Env)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	pgDB, err := db.ConnectPostgres(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.WithError(err).Fatal("postgres init failed")
	}
	defer pgDB.Close()

	n, err := menu.NewPostgresRepository(pgDB).Seed(ctx, menu.DefaultProducts())
	if err != nil {
		log.WithError(err).Fatal("seed failed")
	}

	if n == 0 {
		log.Info("products table already populated, nothing to do")
		return
	}
	log.WithField("products", n).Info("catalog seeded")
}
