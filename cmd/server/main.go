package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"vrmhub/internal/config"
	"vrmhub/internal/handlers"
	"vrmhub/internal/repository"
	"vrmhub/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func Run(ctx context.Context) error {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Setup Logger
	var handler slog.Handler
	if cfg.AppEnv == "production" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	// 3. Prepare Upload/Static Directories
	if err := bootstrapDirs(cfg); err != nil {
		return fmt.Errorf("failed to prepare directories: %w", err)
	}
	if err := ensureDefaultBackground(cfg, logger); err != nil {
		logger.Warn("Failed to create default background image", "error", err)
	}

	// 4. Initialize Database
	db, err := repository.InitDB(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// 5. Run Migrations
	if strings.HasPrefix(cfg.DatabaseURL, "postgres") {
		logger.Info("Running database migrations...")
		if err := repository.RunMigrations(cfg.DatabaseURL, ""); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	} else {
		if err := repository.AutoMigrateSchema(db); err != nil {
			return fmt.Errorf("schema migration failed: %w", err)
		}
	}

	// 6. Initialize Services
	auditService := services.NewAuditService(db, logger)
	tokenService := services.NewTokenService(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
	assetStore := services.NewAssetStore(cfg.UploadDir)
	libraryService := services.NewLibraryService(db, assetStore, logger)
	rateLimiter := services.NewIPRateLimiter(5, 10, logger)

	// 7. Initialize Handler
	h := handlers.NewHandler(cfg, logger, db, tokenService, libraryService, auditService)

	// 8. Setup Router
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := h.SetupRouter(rateLimiter, "web/templates/*", "./"+cfg.StaticDir, "./"+cfg.UploadDir)

	// 9. Start Server with Graceful Shutdown
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Background Context for workers
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	// Start Background Workers
	go auditService.Start(workerCtx)
	rateLimiter.StartCleanup(workerCtx, 10*time.Minute)

	// Initializing server in a goroutine
	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for context cancellation or server error
	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		logger.Info("Shutting down server...")
	}

	// Graceful shutdown timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	workerCancel()
	// Wait a tiny bit for workers
	time.Sleep(100 * time.Millisecond)

	logger.Info("Server exiting")
	return nil
}

// bootstrapDirs creates the upload and static trees the server serves from.
func bootstrapDirs(cfg config.Config) error {
	dirs := []string{
		cfg.UploadDir,
		filepath.Join(cfg.UploadDir, "backgrounds"),
		cfg.StaticDir,
		filepath.Join(cfg.StaticDir, "uploads", "backgrounds"),
		filepath.Join(cfg.StaticDir, "css"),
		filepath.Join(cfg.StaticDir, "js"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}

// ensureDefaultBackground writes a plain light-gray 800x600 JPEG that the
// viewer falls back to when a user has no backgrounds yet. Existing files
// are left alone.
func ensureDefaultBackground(cfg config.Config, logger *slog.Logger) error {
	path := filepath.Join(cfg.StaticDir, "uploads", "backgrounds", "default.jpg")
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	img := image.NewRGBA(image.Rect(0, 0, 800, 600))
	gray := color.RGBA{R: 240, G: 240, B: 240, A: 255}
	for y := 0; y < 600; y++ {
		for x := 0; x < 800; x++ {
			img.Set(x, y, gray)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := jpeg.Encode(f, img, nil); err != nil {
		return err
	}

	logger.Info("Created default background image", "path", path)
	return nil
}
