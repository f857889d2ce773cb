package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/alumnisphere/backend/internal/app/models"
	"github.com/alumnisphere/backend/internal/app/models/dto"
	"github.com/alumnisphere/backend/internal/app/repositories"
	"github.com/alumnisphere/backend/internal/pkg/apperrors"
	"github.com/alumnisphere/backend/internal/pkg/auth"
	"github.com/alumnisphere/backend/internal/pkg/logger"
)

// AuthService handles registration, login and token-based identity
type AuthService struct {
	userRepo   repositories.IUserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo repositories.IUserRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a new student or alumni account and issues an access
// token right away, so the client does not have to log in separately.
// Students are usable immediately; alumni start unapproved and wait for an
// admin.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, string, int, error) {
	role := req.Role
	if role != models.RoleStudent && role != models.RoleAlumni {
		return nil, "", 0, apperrors.NewValidationError("Role must be either 'student' or 'alumni'")
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", 0, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Name:       req.Name,
		Email:      req.Email,
		Password:   hashedPassword,
		Role:       role,
		IsApproved: role == models.RoleStudent,
	}

	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil, "", 0, apperrors.NewValidationError("Email is already registered")
		}
		return nil, "", 0, err
	}

	created, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, "", 0, err
	}

	token, expiresIn, err := s.jwtService.GenerateToken(created)
	if err != nil {
		return nil, "", 0, fmt.Errorf("error generating token: %w", err)
	}

	logger.Info().Int64("userID", id).Str("role", string(role)).Msg("User registered")

	return created, token, expiresIn, nil
}

// Login verifies credentials and issues an access token
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, string, int, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, "", 0, apperrors.ErrInvalidCredentials
		}
		return nil, "", 0, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, "", 0, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, "", 0, fmt.Errorf("error generating token: %w", err)
	}

	return user, token, expiresIn, nil
}

// Me returns the account behind an authenticated user id
func (s *AuthService) Me(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}
