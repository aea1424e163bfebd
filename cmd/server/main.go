package main // Entry point package

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/toolshedapp/toolshed/internal/config"
	"github.com/toolshedapp/toolshed/internal/handler"
	"github.com/toolshedapp/toolshed/internal/notify"
	"github.com/toolshedapp/toolshed/internal/router"
	"github.com/toolshedapp/toolshed/internal/storage"
	"github.com/toolshedapp/toolshed/internal/store"
)

func main() {
	cfg := config.Load()
	config.InitLogger(cfg.Env, cfg.LogFile)
	defer func() { _ = zap.L().Sync() }()

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		zap.S().Fatalw("create data dir failed", "dir", cfg.DataDir, "error", err)
	}

	// Durable state lives in one bbolt file; all stores write through a
	// shared async writer so mutations never block on disk.
	kv, err := storage.OpenBolt(filepath.Join(cfg.DataDir, "state.db"))
	if err != nil {
		zap.S().Fatalw("open state db failed", "error", err)
	}
	writer := storage.NewWriter(kv)

	node, err := snowflake.NewNode(cfg.NodeID)
	if err != nil {
		zap.S().Fatalw("snowflake node init failed", "node_id", cfg.NodeID, "error", err)
	}

	notifier := store.NewNotifier()
	catalog := store.NewCatalog(kv, writer, notifier, node)
	cart := store.NewCart(kv, writer, notifier)
	bookings := store.NewBookings(kv, writer, notifier, node)

	if err := notify.StartBookingAudit(notifier, cfg.DataDir); err != nil {
		zap.S().Warnw("booking audit disabled", "error", err)
	}

	e := echo.New()
	e.HideBanner = true
	router.RegisterRoutes(e,
		handler.NewAuthHandler(cfg.DevicePassHash, cfg.JWTSecret, cfg.AccessTTLMin),
		handler.NewCatalogHandler(catalog),
		handler.NewCartHandler(cart, catalog),
		handler.NewBookingHandler(bookings, cart, catalog),
		cfg.JWTSecret,
	)

	addr := ":" + cfg.Port
	zap.S().Infof("listening on %s (env=%s)", addr, cfg.Env)

	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			zap.S().Fatalw("server stopped", "error", err)
		}
	}()

	// Drain pending writes before exiting so the last mutations reach disk.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		zap.S().Warnw("server shutdown failed", "error", err)
	}
	writer.Close()
	if err := kv.Close(); err != nil {
		zap.S().Warnw("close state db failed", "error", err)
	}
}
