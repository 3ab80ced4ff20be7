package main

import (
	"context"
	"os"

	"company-profile-be/internal/config"
	"company-profile-be/internal/model"
	"company-profile-be/internal/pkg/logger"
	"company-profile-be/internal/repository/unitofwork"
	"company-profile-be/internal/service"
	"company-profile-be/pkg/database"

	"github.com/fatih/color"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, "error")
	if err != nil {
		color.Red("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	factory := unitofwork.NewRepositoryFactory(db)
	log := logger.NewNopLogger()

	color.Cyan("Seeding admin account")
	auth := service.NewAuthService(factory, cfg.Auth.JwtSecret, cfg.Auth.TokenTTL, log)
	user, created, err := auth.EnsureUser(ctx, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword, cfg.Seed.AdminName, model.UserRoleAdmin)
	switch {
	case err != nil:
		color.Red("Failed: %v", err)
		os.Exit(1)
	case created:
		color.Green("Created %s", user.Email)
	default:
		color.Yellow("%s already exists, skipping", user.Email)
	}

	color.Cyan("\nSeeding sample content")
	s := &seeder{deps: service.ResourceServiceDeps{Factory: factory, Logger: log}}
	s.run(ctx)

	if s.failed > 0 {
		color.Red("\nSeeding finished with %d error(s)", s.failed)
		os.Exit(1)
	}
	color.Green("\nSeeding completed")
}
