package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/alumconnect/backend/internal/app/models"
	"github.com/alumconnect/backend/internal/app/models/dto"
	"github.com/alumconnect/backend/internal/app/repositories"
	"github.com/alumconnect/backend/internal/pkg/apperrors"
)

// UserService handles profiles, availability and the alumni directory
type UserService struct {
	userRepo *repositories.UserRepository
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo *repositories.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{userRepo: userRepo, logger: logger}
}

// GetProfile retrieves the caller's own profile
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// GetUserByID retrieves another user's public profile
func (s *UserService) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// password hash never leaves the service, even though JSON drops it too
	user.Password = ""
	return user, nil
}

// UpdateProfile applies a partial profile update for the caller
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*models.User, error) {
	fields := map[string]interface{}{}
	if req.Name != nil {
		if *req.Name == "" {
			return nil, apperrors.NewValidationError("name cannot be empty")
		}
		fields["name"] = *req.Name
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.Company != nil {
		fields["company"] = *req.Company
	}
	if req.Position != nil {
		fields["position"] = *req.Position
	}
	if req.GraduationYear != nil {
		fields["graduation_year"] = *req.GraduationYear
	}
	if req.Department != nil {
		fields["department"] = *req.Department
	}
	if req.Specialization != nil {
		fields["specialization"] = *req.Specialization
	}
	if req.Branch != nil {
		fields["branch"] = *req.Branch
	}
	if req.LinkedinURL != nil {
		fields["linkedin_url"] = *req.LinkedinURL
	}
	if req.GithubURL != nil {
		fields["github_url"] = *req.GithubURL
	}
	if req.WebsiteURL != nil {
		fields["website_url"] = *req.WebsiteURL
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}

	err := s.userRepo.UpdateProfile(ctx, userID, fields, req.Skills, req.Achievements, req.Languages)
	if err != nil {
		s.logger.Error().Err(err).Int64("userId", userID).Msg("Failed to update profile")
		return nil, err
	}

	return s.userRepo.GetByID(ctx, userID)
}

// SetAvailability toggles the mentorship availability flag, alumni only
func (s *UserService) SetAvailability(ctx context.Context, userID int64, role models.Role, available bool) error {
	if role != models.RoleAlumni {
		return apperrors.NewForbiddenError("only alumni can set mentorship availability")
	}
	return s.userRepo.SetAvailability(ctx, userID, available)
}

// ListAlumni retrieves the alumni directory
func (s *UserService) ListAlumni(ctx context.Context, availableOnly bool, search *string) ([]*models.User, error) {
	return s.userRepo.ListAlumni(ctx, availableOnly, search)
}
