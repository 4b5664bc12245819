package postgres

import (
	"context"
	"fmt"
	"log"

	"github.com/tayo/teamwork-backend/internal/config"
	"github.com/tayo/teamwork-backend/internal/domain"
	"github.com/tayo/teamwork-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin inserts the bootstrap admin user when none exists. Every other
// user is created through the admin-gated create-user operation, so without
// this seed the system would have no way to mint its first admin token.
func SeedAdmin(ctx context.Context, users repository.UserRepository, cfg *config.Config) error {
	exists, err := users.ExistsAdmin(ctx)
	if err != nil {
		return fmt.Errorf("checking for admin user: %w", err)
	}
	if exists {
		return nil
	}

	if cfg.AdminPassword == "" {
		return fmt.Errorf("no admin user exists and ADMINPASSWORD is not set")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}

	admin := &domain.User{
		FirstName:    "Admin",
		LastName:     "User",
		Email:        cfg.AdminEmail,
		PasswordHash: string(hashed),
		JobRole:      "administrator",
		Department:   "operations",
		Admin:        true,
	}

	if err := users.Create(ctx, admin); err != nil {
		return fmt.Errorf("inserting admin user: %w", err)
	}

	log.Printf("seeded admin user %s", admin.Email)
	return nil
}
