package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/alumnisphere/backend/internal/app/models"
	"github.com/alumnisphere/backend/internal/app/repositories"
	"github.com/alumnisphere/backend/internal/config"
	"github.com/alumnisphere/backend/internal/pkg/apperrors"
	"github.com/alumnisphere/backend/internal/pkg/auth"
)

// CreateDefaultData seeds the default admin account. Registration only
// produces student and alumni accounts, so without this the approval
// endpoints would be unreachable.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)

	email := cfg.Admin.Email
	exists, err := userRepo.EmailExists(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to check for admin account: %w", err)
	}
	if exists {
		lgr.Debug().Str("email", email).Msg("Admin account already present")
		return nil
	}

	hashedPassword, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		Name:       "Administrator",
		Email:      email,
		Password:   hashedPassword,
		Role:       models.RoleAdmin,
		IsApproved: true,
	}

	if _, err := userRepo.Create(ctx, admin); err != nil {
		// Another instance may have seeded concurrently
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil
		}
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	lgr.Info().Str("email", email).Msg("Default admin account created")
	return nil
}
