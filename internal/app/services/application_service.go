package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/alumconnect/backend/internal/app/models"
	"github.com/alumconnect/backend/internal/app/models/dto"
	"github.com/alumconnect/backend/internal/app/repositories"
	"github.com/alumconnect/backend/internal/pkg/apperrors"
)

// ApplicationService handles the application lifecycle and position slots
type ApplicationService struct {
	applicationRepo *repositories.ApplicationRepository
	projectRepo     *repositories.ProjectRepository
	logger          zerolog.Logger
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(
	applicationRepo *repositories.ApplicationRepository,
	projectRepo *repositories.ProjectRepository,
	logger zerolog.Logger,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		projectRepo:     projectRepo,
		logger:          logger,
	}
}

// Apply submits a student's application to a project. With a positionId the
// position must belong to the project and still have open slots; without one
// the project must have no active positions at all, keeping general
// applications from bypassing position capacity.
func (s *ApplicationService) Apply(ctx context.Context, studentID int64, role models.Role, projectID int64, req *dto.ApplyRequest) (*models.ProjectApplication, error) {
	if role != models.RoleStudent {
		return nil, apperrors.NewForbiddenError("only students can apply to projects")
	}

	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.Status != models.ProjectActive || !project.IsRecruiting {
		return nil, apperrors.NewConflictError("project is not recruiting")
	}

	if req.PositionID != nil {
		position, err := s.projectRepo.GetPosition(ctx, *req.PositionID)
		if err != nil {
			return nil, err
		}
		if position.ProjectID != projectID {
			return nil, apperrors.NewValidationError("position does not belong to this project")
		}
		if !position.IsActive {
			return nil, apperrors.ErrPositionInactive
		}
	} else {
		active, err := s.projectRepo.CountActivePositions(ctx, projectID)
		if err != nil {
			return nil, err
		}
		if active > 0 {
			return nil, apperrors.NewValidationError("this project recruits per position, pick one")
		}
	}

	app := &models.ProjectApplication{
		ProjectID:  projectID,
		StudentID:  studentID,
		PositionID: req.PositionID,
		Message:    req.Message,
		HasTeam:    req.HasTeam,
	}
	if err := s.applicationRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("applicationId", app.ID).
		Int64("projectId", projectID).
		Int64("studentId", studentID).
		Msg("Application submitted")
	return app, nil
}

// ListMine retrieves the caller's applications, students only
func (s *ApplicationService) ListMine(ctx context.Context, studentID int64) ([]*dto.ApplicationResponse, error) {
	apps, err := s.applicationRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return applicationResponses(apps), nil
}

// ListForProject retrieves a project's applications, owner only
func (s *ApplicationService) ListForProject(ctx context.Context, projectID, userID int64) ([]*dto.ApplicationResponse, error) {
	ownerID, err := s.projectRepo.GetOwnerID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if ownerID != userID {
		return nil, apperrors.NewForbiddenError("only the project owner can view applications")
	}

	apps, err := s.applicationRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return applicationResponses(apps), nil
}

// applicationResponses flattens the loaded relations into the response shape.
// Listings for students carry the project and position titles; listings for
// owners carry the applicant.
func applicationResponses(apps []*models.ProjectApplication) []*dto.ApplicationResponse {
	responses := make([]*dto.ApplicationResponse, 0, len(apps))
	for _, a := range apps {
		resp := &dto.ApplicationResponse{ProjectApplication: a}
		if a.Project != nil {
			resp.ProjectTitle = a.Project.Title
		}
		if a.Position != nil {
			resp.PositionTitle = &a.Position.Title
		}
		if a.Student != nil {
			resp.StudentName = a.Student.Name
			resp.StudentEmail = a.Student.Email
		}
		responses = append(responses, resp)
	}
	return responses
}

// Accept accepts an application, project owner only
func (s *ApplicationService) Accept(ctx context.Context, applicationID, userID int64) (*models.ProjectApplication, error) {
	if err := s.requireProjectOwner(ctx, applicationID, userID); err != nil {
		return nil, err
	}

	app, err := s.applicationRepo.Accept(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("applicationId", applicationID).Msg("Application accepted")
	return app, nil
}

// Decline declines an application, project owner only. Declining a previously
// accepted application releases its position slot.
func (s *ApplicationService) Decline(ctx context.Context, applicationID, userID int64) (*models.ProjectApplication, error) {
	if err := s.requireProjectOwner(ctx, applicationID, userID); err != nil {
		return nil, err
	}

	app, err := s.applicationRepo.Decline(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("applicationId", applicationID).Msg("Application declined")
	return app, nil
}

// Withdraw removes the student's own applications to a project
func (s *ApplicationService) Withdraw(ctx context.Context, projectID, studentID int64) error {
	if err := s.applicationRepo.Withdraw(ctx, projectID, studentID); err != nil {
		return err
	}
	s.logger.Info().
		Int64("projectId", projectID).
		Int64("studentId", studentID).
		Msg("Application withdrawn")
	return nil
}

// Complete marks an accepted application completed with feedback, owner only
func (s *ApplicationService) Complete(ctx context.Context, applicationID, userID int64, req *dto.CompleteApplicationRequest) error {
	if err := s.requireProjectOwner(ctx, applicationID, userID); err != nil {
		return err
	}

	var feedback *string
	if req.Feedback != "" {
		feedback = &req.Feedback
	}
	return s.applicationRepo.Complete(ctx, applicationID, feedback)
}

func (s *ApplicationService) requireProjectOwner(ctx context.Context, applicationID, userID int64) error {
	_, ownerID, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return err
	}
	if ownerID != userID {
		return apperrors.NewForbiddenError("only the project owner can do this")
	}
	return nil
}
