package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/NguyenMaiPhuong311/ISD-Final/config"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/api/handler"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/api/router"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/repository"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/service"
	"github.com/NguyenMaiPhuong311/ISD-Final/pkg/database"
	"github.com/NguyenMaiPhuong311/ISD-Final/pkg/identity"
	"github.com/NguyenMaiPhuong311/ISD-Final/pkg/jwt"
	applogger "github.com/NguyenMaiPhuong311/ISD-Final/pkg/logger"
	"github.com/NguyenMaiPhuong311/ISD-Final/pkg/media"
	"github.com/NguyenMaiPhuong311/ISD-Final/pkg/redis"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	// 2. Structured logging
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. Database
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("database connect failed", zap.Error(err))
	}
	logger.Info("database connected")

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("get sql.DB failed", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("migrations failed", zap.Error(err))
	}

	// 4. Redis is optional: boot continues without token revocation and
	// rate limiting when it is unreachable.
	rdb, err := redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("redis connect failed, revocation and rate limiting disabled", zap.Error(err))
		rdb = nil
	}

	// 5. Token verification and identity provider
	jwtMgr := jwt.NewManager(&cfg.Auth)
	idp := identity.NewClient(&cfg.Identity)

	// 6. Media uploads are optional in the same way as Redis.
	var uploader media.Uploader
	if up, err := media.NewCloudinaryUploader(&cfg.Media); err != nil {
		logger.Warn("media uploader unavailable, file uploads disabled", zap.Error(err))
	} else {
		uploader = up
	}

	// 7. Repository, Service, Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, idp, rdb, logger)
	h := handler.NewHandler(svc, uploader, cfg.Listing.PageSize)

	// 8. Router
	engine := router.Setup(cfg, h, jwtMgr, rdb, logger)

	// 9. HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutdown signal received", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	if closeDB, _ := db.DB(); closeDB != nil {
		closeDB.Close()
	}
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("server stopped")
}
