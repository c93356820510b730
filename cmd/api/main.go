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
	"github.com/sirupsen/logrus"

	"starwars/internal/api"
	"starwars/internal/config"
	"starwars/internal/database"
	"starwars/internal/pkg/logger"
	"starwars/internal/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log := logger.Default()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("config")
	}
	if err := logger.Init(cfg.LogLevel); err != nil {
		log.WithError(err).Fatal("logger")
	}
	if cfg.IsRelease() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("DB connection failed")
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.WithError(err).Warn("close database")
		}
	}()

	if err := database.Migrate(db); err != nil {
		log.WithError(err).Fatal("AutoMigrate failed")
	}
	if err := store.EnsureIndexes(context.Background(), db, cfg.Store); err != nil {
		log.WithError(err).Fatal("unique favorite indexes")
	}

	reg := store.NewRegistry(db, cfg.Store)
	router := api.NewRouter(reg, cfg.CORSAllowedOrigins)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.WithFields(logrus.Fields{
			"addr":          srv.Addr,
			"env":           cfg.AppEnv,
			"delete_policy": cfg.Store.DeletePolicy,
		}).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}
