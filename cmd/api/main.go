package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"byp-site/cmd/api/clients/contentclient"
	"byp-site/cmd/api/clients/listclient"
	"byp-site/cmd/api/router"
	"byp-site/cmd/api/store"
	"byp-site/config"
	_ "byp-site/docs" // swag will generate this package
	"byp-site/internal/logger"
)

// @title           BYP Site API
// @version         1.0
// @description     Content proxy and cached view API for the Black Youth Project site
// @BasePath        /
// @securityDefinitions.apikey  AdminToken
// @in                          header
// @name                        Authorization
// @description                 "Bearer <CACHE_ADMIN_TOKEN>"
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.InitFromEnv("LOG_LEVEL", cfg.Logging.Level)

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storage, closeStorage, err := store.OpenStorage(ctx, cfg.Store)
	if err != nil {
		logger.ErrorWithFields("snapshot storage unavailable, running in memory only", logger.Fields{
			"persistence": cfg.Store.Persistence,
			"error":       err.Error(),
		})
		storage = nil
	}
	defer closeStorage(context.Background())

	contentClient := contentclient.New(cfg.ContentAPI)
	st, err := store.New(contentClient, store.Options{
		Storage:       storage,
		SnapshotName:  cfg.Store.SnapshotName,
		PartitionSize: cfg.Store.PartitionSize,
	})
	if err != nil {
		logger.ErrorWithFields("store init failed", logger.Fields{"error": err.Error()})
		os.Exit(1)
	}
	if err := st.Restore(ctx); err != nil {
		logger.WarnWithFields("store restore failed, starting empty", logger.Fields{"error": err.Error()})
	}

	engine := router.New(router.Deps{
		Config:  cfg,
		Content: contentClient,
		List:    listclient.New(cfg.Subscribe),
		Store:   st,
	})

	handler := router.WithCORS(engine, cfg.Server.AllowedOrigins)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.InfoWithFields("byp-site api listening", logger.Fields{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorWithFields("http server failed", logger.Fields{"error": err.Error()})
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorWithFields("http server shutdown failed", logger.Fields{"error": err.Error()})
	}
	logger.InfoWithFields("byp-site api stopped", nil)
}
