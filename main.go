package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sportsclub-app/config"
	"sportsclub-app/database"
	routes "sportsclub-app/internal/app/http"
	"sportsclub-app/internal/logging"
	"sportsclub-app/internal/mailer"
	"sportsclub-app/internal/services"
	"sportsclub-app/internal/store"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	db, err := database.Open(cfg.DBURL)
	if err != nil {
		logger.Error("database", "err", err)
		os.Exit(1)
	}
	st := store.New(db)

	sender, err := mailer.New(cfg.Email, logger)
	if err != nil {
		logger.Error("mailer", "err", err)
		os.Exit(1)
	}

	verify := services.NewVerificationService(st, st, sender, logger, cfg.Code, cfg.Email.SendTimeout)
	tokens := services.NewTokenService(cfg.JWT)
	auth := services.NewAuthService(st, st, verify, tokens)

	r := routes.NewRouter(routes.Deps{
		Log:        logger,
		CORSOrigin: cfg.CORSOrigin,
		Verify:     verify,
		Auth:       auth,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "err", err)
	}
	// let in-flight verification emails finish
	verify.Wait()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
