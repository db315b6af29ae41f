package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/conectVagas/ConectaVagas/internal/broadcast"
	"github.com/conectVagas/ConectaVagas/internal/config"
	"github.com/conectVagas/ConectaVagas/internal/database"
	"github.com/conectVagas/ConectaVagas/internal/handler"
	"github.com/conectVagas/ConectaVagas/internal/middleware"
	"github.com/conectVagas/ConectaVagas/internal/repository"
	"github.com/conectVagas/ConectaVagas/internal/service"
	"github.com/conectVagas/ConectaVagas/pkg/jwt"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Local development reads .env; deployments set real env vars
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	if err := database.ApplySchema(ctx, db); err != nil {
		slog.Error("failed to apply schema", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize JWT service
	jwtService, err := jwt.NewService(jwt.Config{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		Expiration: cfg.TokenExpiration(),
	})
	if err != nil {
		slog.Error("failed to initialize JWT service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize repositories
	companyRepo := repository.NewCompanyRepository(db)
	jobRepo := repository.NewJobRepository(db)

	// Initialize services
	authService := service.NewAuthService(service.AuthServiceConfig{
		CompanyRepo: companyRepo,
		JWTService:  jwtService,
	})
	jobService := service.NewJobService(service.JobServiceConfig{
		JobRepo: jobRepo,
	})

	// Live update fan-out
	broadcaster := broadcast.New(broadcast.Config{})

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	jobHandler := handler.NewJobHandler(jobService, broadcaster)
	streamHandler := handler.NewStreamHandler(broadcaster)
	spaHandler := handler.NewSPAHandler(cfg.Static.Dir)

	// Auth middleware for protected routes
	authMiddleware := middleware.Auth(authService)

	// Register routes
	mux := http.NewServeMux()

	// Authentication endpoints
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	// Job endpoints - reads are public, writes require a token
	mux.HandleFunc("GET /api/jobs", jobHandler.List)
	mux.HandleFunc("GET /api/jobs/{id}", jobHandler.Get)
	mux.Handle("POST /api/jobs", authMiddleware(http.HandlerFunc(jobHandler.Create)))
	mux.Handle("DELETE /api/jobs/{id}", authMiddleware(http.HandlerFunc(jobHandler.Delete)))

	// Live update stream
	mux.HandleFunc("GET /api/stream", streamHandler.Stream)

	// SPA frontend and liveness fallback
	mux.Handle("/", spaHandler)

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.Compress,
	)

	// Create HTTP server. WriteTimeout stays zero: the SSE stream holds
	// its connection open indefinitely and a write deadline would cut it.
	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           wrapped,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	// Closing the broadcaster ends every open stream so Shutdown does
	// not wait on them.
	broadcaster.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
