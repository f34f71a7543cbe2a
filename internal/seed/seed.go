package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/alumconnect/backend/internal/app/models"
	appRepos "github.com/alumconnect/backend/internal/app/repositories"
	"github.com/alumconnect/backend/internal/pkg/apperrors"
	pkgAuth "github.com/alumconnect/backend/internal/pkg/auth"
)

// CreateDefaultData creates demo accounts if they don't exist yet. Useful for
// local development, harmless on subsequent starts.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default accounts...")
	var finalErr error

	gradYear := 2018
	department := "Computer Science"
	defaults := []struct {
		name     string
		email    string
		password string
		role     appModels.Role
	}{
		{"Demo Alumni", "alumni@alumconnect.app", "alumni123", appModels.RoleAlumni},
		{"Demo Student", "student@alumconnect.app", "student123", appModels.RoleStudent},
	}

	for _, d := range defaults {
		hashed, err := pkgAuth.HashPassword(d.password)
		if err != nil {
			lgr.Error().Err(err).Str("email", d.email).Msg("Error hashing default account password")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		user := &appModels.User{
			Name:     d.name,
			Email:    d.email,
			Password: hashed,
			Role:     d.role,
		}
		if d.role == appModels.RoleAlumni {
			user.GraduationYear = &gradYear
			user.Department = &department
		}

		err = userRepo.Create(ctx, user)
		if err != nil && !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			lgr.Error().Err(err).Str("email", d.email).Msg("Error creating default account")
			finalErr = errors.Join(finalErr, err)
		} else if err == nil {
			lgr.Info().Str("email", d.email).Str("role", string(d.role)).Msg("Default account created")
		}
	}

	return finalErr
}
