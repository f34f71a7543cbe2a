package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/alumconnect/backend/internal/app/models"
	"github.com/alumconnect/backend/internal/app/models/dto"
	"github.com/alumconnect/backend/internal/app/repositories"
	"github.com/alumconnect/backend/internal/pkg/apperrors"
	"github.com/alumconnect/backend/internal/pkg/auth"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// AuthService handles registration and login
type AuthService struct {
	userRepo   *repositories.UserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo *repositories.UserRepository, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (s *AuthService) validateRegistration(req *dto.RegisterRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return apperrors.NewValidationError("name cannot be empty")
	}
	if !emailRegex.MatchString(req.Email) {
		return apperrors.NewValidationError("invalid email format")
	}
	if len(req.Password) < 8 {
		return apperrors.NewValidationError("password must be at least 8 characters")
	}

	role := models.Role(req.Role)
	if !role.IsValid() {
		return apperrors.NewValidationError("role must be either 'student' or 'alumni'")
	}
	if role == models.RoleAlumni {
		if req.GraduationYear == nil {
			return apperrors.NewValidationError("graduationYear is required for alumni")
		}
		if req.Department == nil || strings.TrimSpace(*req.Department) == "" {
			return apperrors.NewValidationError("department is required for alumni")
		}
	}
	return nil
}

// Register creates a new account and returns a signed token for it
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := s.validateRegistration(req); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// the unique constraint still catches a concurrent registration
	// of the same address
	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:           strings.TrimSpace(req.Name),
		Email:          email,
		Password:       hash,
		Role:           models.Role(req.Role),
		GraduationYear: req.GraduationYear,
		Department:     req.Department,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil, err
		}
		s.logger.Error().Err(err).Str("email", email).Msg("Failed to create user")
		return nil, err
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info().Int64("userId", user.ID).Str("role", req.Role).Msg("User registered")

	return &dto.AuthResponse{Token: token, ExpiresIn: expiresIn, User: user}, nil
}

// Login verifies credentials and returns a signed token
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			// same response as a bad password, no account probing
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Debug().Int64("userId", user.ID).Msg("User logged in")

	return &dto.AuthResponse{Token: token, ExpiresIn: expiresIn, User: user}, nil
}
