package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"tempo/internal/auth"
	"tempo/internal/config"
	"tempo/internal/handler"
	"tempo/internal/middleware"
	"tempo/internal/repository/postgres"
	"tempo/internal/service"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
	)

	// JWT verifier backed by the identity provider's JWKS endpoint
	jwtVerifier, err := auth.NewJWTVerifier(cfg.JWKSURL, logger)
	if err != nil {
		log.Fatalf("Failed to create JWT verifier: %v", err)
	}
	defer jwtVerifier.Close()

	// Bring the schema up to date before accepting traffic
	if err := postgres.Migrate(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("migrations applied")

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected",
		"max_conns", 25,
		"min_conns", 5,
	)

	// Repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Logger: logger,
	}
	profileRepo := postgres.NewProfileRepository(repoConfig)
	folderRepo := postgres.NewFolderRepository(repoConfig)
	moduleRepo := postgres.NewModuleRepository(repoConfig)
	entryRepo := postgres.NewEntryRepository(repoConfig)

	// Services
	folderService := service.NewFolderService(folderRepo, logger)
	moduleService := service.NewModuleService(moduleRepo, folderRepo, logger)
	entryService := service.NewEntryService(entryRepo, moduleRepo, logger)
	stateService := service.NewStateService(profileRepo, folderRepo, moduleRepo, entryRepo, logger)
	profileService := service.NewProfileService(profileRepo, logger)

	// Handlers
	folderHandler := handler.NewFolderHandler(folderService, logger)
	moduleHandler := handler.NewModuleHandler(moduleService, logger)
	entryHandler := handler.NewEntryHandler(entryService, logger)
	stateHandler := handler.NewStateHandler(stateService, profileService, logger)

	logger.Info("services initialized")

	// HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", handler.Health)

	// Full state
	mux.HandleFunc("GET /api/state", stateHandler.GetState)

	// Profile
	mux.HandleFunc("PATCH /api/profile", stateHandler.UpdateProfile)

	// Folder routes
	mux.HandleFunc("POST /api/folders", folderHandler.CreateFolder)
	mux.HandleFunc("GET /api/folders/{id}", folderHandler.GetFolder)
	mux.HandleFunc("PATCH /api/folders/{id}", folderHandler.UpdateFolder)
	mux.HandleFunc("DELETE /api/folders/{id}", folderHandler.DeleteFolder)

	// Module routes
	mux.HandleFunc("POST /api/modules", moduleHandler.CreateModule)
	mux.HandleFunc("GET /api/modules/{id}", moduleHandler.GetModule)
	mux.HandleFunc("PATCH /api/modules/{id}", moduleHandler.UpdateModule)
	mux.HandleFunc("DELETE /api/modules/{id}", moduleHandler.DeleteModule)

	// Entry routes
	mux.HandleFunc("POST /api/entries", entryHandler.CreateEntry)
	mux.HandleFunc("GET /api/entries/{id}", entryHandler.GetEntry)
	mux.HandleFunc("PATCH /api/entries/{id}", entryHandler.UpdateEntry)
	mux.HandleFunc("DELETE /api/entries/{id}", entryHandler.DeleteEntry)

	// Build middleware chain (applied in reverse order, they wrap each other)
	var h http.Handler = mux
	h = middleware.Auth(jwtVerifier)(h)
	h = middleware.Recovery(logger)(h)

	// CORS - must be outermost to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	h = corsHandler.Handler(h)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
