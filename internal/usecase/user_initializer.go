package usecase

import (
	"context"
	"fmt"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"golang.org/x/crypto/bcrypt"

	"github.com/nvquang/product-api/internal/config"
	"github.com/nvquang/product-api/internal/models"
	"github.com/nvquang/product-api/internal/repo/mongodb"
)

// SeedAdminUser upserts the configured admin account so a fresh deployment
// has a principal that can reach the mutating product routes.
func SeedAdminUser(ctx context.Context, userRepo mongodb.UserRepository, conf *config.Config) error {
	if conf.Auth.AdminEmail == "" || conf.Auth.AdminPassword == "" {
		log.Warnw(ctx, "admin credentials not configured, skipping admin seed")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(conf.Auth.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		Name:         "Admin",
		Email:        conf.Auth.AdminEmail,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		IsActive:     true,
	}

	if err := userRepo.Upsert(ctx, admin); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	log.Infow(ctx, "admin user seeded", "email", admin.Email)
	return nil
}
