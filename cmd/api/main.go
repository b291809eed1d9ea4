package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"blogsphere/cmd/app"
	"blogsphere/internal/config"
	handlers "blogsphere/internal/handler"
	"blogsphere/internal/identity"
	"blogsphere/internal/logging"
	"blogsphere/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	if cfg.Auth.JWTSecretKey == "" {
		logger.Fatal("JWT_SECRET_KEY is not set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	startCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	db, _, services := app.App(startCtx, cfg, logger)
	cancel()
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, cfg, logger)
	resolver := identity.NewJWTResolver(cfg.Auth.JWTSecretKey, cfg.Auth.Issuer)

	router := mux.NewRouter()
	handler.RegisterRoutes(router.PathPrefix("/api").Subrouter(), handlers.Auth{
		Required: middleware.RequireAuth(resolver),
		Optional: middleware.OptionalAuth(resolver),
	})

	handlerChain := middleware.Chain(
		router,
		middleware.RequestLogging(logger),
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.Gzip(),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           handlerChain,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server started",
			zap.String("addr", server.Addr),
			zap.String("database", cfg.DB.DbNAME))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
