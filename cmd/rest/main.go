package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"company-profile-be/internal/bootstrap"
	"company-profile-be/internal/config"
	"company-profile-be/internal/model"
	"company-profile-be/internal/pkg/logger"
	"company-profile-be/internal/server"
	"company-profile-be/internal/tracer"
	"company-profile-be/pkg/database"

	"gorm.io/gorm"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	defer sysLogger.Sync()

	shutdownTracer := tracer.InitTracer(sysLogger)
	defer shutdownTracer(context.Background())

	// 2. Initialize Database
	var gormDB *gorm.DB
	if cfg.Database.Driver != "memory" {
		db, err := database.NewGormDBFromDSN(cfg.Database.Connection, cfg.Database.LogLevel)
		if err != nil {
			sysLogger.Error("Main", "Unable to connect to database", map[string]interface{}{"error": err.Error()})
			os.Exit(1)
		}
		gormDB = db
	}

	// 3. Bootstrap Dependencies (Container)
	ctx := context.Background()
	container, err := bootstrap.NewContainer(ctx, cfg, gormDB, sysLogger)
	if err != nil {
		sysLogger.Error("Main", "Failed to build container", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}
	defer container.Close()

	// In-memory mode starts empty; give it an account to log in with.
	if gormDB == nil {
		if _, _, err := container.AuthService.EnsureUser(ctx, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword, cfg.Seed.AdminName, model.UserRoleAdmin); err != nil {
			sysLogger.Warn("Main", "Failed to create default admin", map[string]interface{}{"error": err.Error()})
		}
	}

	// 4. Start Background Services
	if err := container.Start(ctx); err != nil {
		sysLogger.Error("Main", "Failed to start background services", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			sysLogger.Warn("Main", "Graceful shutdown failed", map[string]interface{}{"error": err.Error()})
		}
	}()

	// 6. Run Server
	if err := srv.Run(); err != nil {
		sysLogger.Error("Main", "Server stopped", map[string]interface{}{"error": err.Error()})
	}
}
