package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/alumconnect/backend/internal/app/models"
	"github.com/alumconnect/backend/internal/app/models/dto"
	"github.com/alumconnect/backend/internal/app/repositories"
	"github.com/alumconnect/backend/internal/pkg/apperrors"
)

// ProjectService handles project CRUD, positions and recommendations
type ProjectService struct {
	projectRepo     *repositories.ProjectRepository
	applicationRepo *repositories.ApplicationRepository
	userRepo        *repositories.UserRepository
	logger          zerolog.Logger
}

// NewProjectService creates a new ProjectService
func NewProjectService(
	projectRepo *repositories.ProjectRepository,
	applicationRepo *repositories.ApplicationRepository,
	userRepo *repositories.UserRepository,
	logger zerolog.Logger,
) *ProjectService {
	return &ProjectService{
		projectRepo:     projectRepo,
		applicationRepo: applicationRepo,
		userRepo:        userRepo,
		logger:          logger,
	}
}

// Create creates a project with its initial positions, alumni only
func (s *ProjectService) Create(ctx context.Context, userID int64, role models.Role, req *dto.CreateProjectRequest) (*models.Project, error) {
	if role != models.RoleAlumni {
		return nil, apperrors.NewForbiddenError("only alumni can create projects")
	}

	status := models.ProjectActive
	if req.Status != nil {
		status = models.ProjectStatus(*req.Status)
		if !status.IsValid() {
			return nil, apperrors.NewValidationError("status must be one of active, completed, paused")
		}
	}

	isRecruiting := true
	if req.IsRecruiting != nil {
		isRecruiting = *req.IsRecruiting
	}

	project := &models.Project{
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		Status:         status,
		CreatedBy:      userID,
		TeamMembers:    emptyIfNil(req.TeamMembers),
		Tags:           emptyIfNil(req.Tags),
		RequiredSkills: emptyIfNil(req.RequiredSkills),
		Links:          emptyIfNil(req.Links),
		Funding:        req.Funding,
		Partners:       req.Partners,
		Highlights:     req.Highlights,
		IsRecruiting:   isRecruiting,
	}

	positions := make([]models.ProjectPosition, 0, len(req.Positions))
	for _, p := range req.Positions {
		if p.Count < 1 {
			return nil, apperrors.NewValidationError("position count must be at least 1")
		}
		positions = append(positions, models.ProjectPosition{
			Title:          p.Title,
			Description:    p.Description,
			RequiredSkills: emptyIfNil(p.RequiredSkills),
			Count:          p.Count,
		})
	}

	if err := s.projectRepo.Create(ctx, project, positions); err != nil {
		s.logger.Error().Err(err).Int64("userId", userID).Msg("Failed to create project")
		return nil, err
	}

	s.logger.Info().Int64("projectId", project.ID).Int64("userId", userID).Msg("Project created")
	return project, nil
}

// Get retrieves a project with caller-specific state. viewerID may be 0 for
// anonymous callers.
func (s *ProjectService) Get(ctx context.Context, projectID, viewerID int64) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	resp := &dto.ProjectResponse{Project: project}
	if project.Owner != nil {
		resp.CreatedByName = project.Owner.Name
	}

	if viewerID > 0 {
		applied, err := s.applicationRepo.AppliedProjectIDs(ctx, viewerID)
		if err != nil {
			return nil, err
		}
		resp.HasApplied = applied[projectID]
	}
	return resp, nil
}

// List retrieves projects newest first, annotated with the viewer's
// application state when authenticated.
func (s *ProjectService) List(ctx context.Context, filter *dto.ProjectFilter, viewerID int64) ([]*dto.ProjectResponse, error) {
	projects, err := s.projectRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	var applied map[int64]bool
	if viewerID > 0 {
		if applied, err = s.applicationRepo.AppliedProjectIDs(ctx, viewerID); err != nil {
			return nil, err
		}
	}

	responses := make([]*dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		if filter.AvailableOnly && applied[p.ID] {
			continue
		}
		resp := &dto.ProjectResponse{Project: p, HasApplied: applied[p.ID]}
		if p.Owner != nil {
			resp.CreatedByName = p.Owner.Name
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// Update applies a partial project update, owner only. Position payloads with
// an ID update that position; the rest are inserted as new positions.
func (s *ProjectService) Update(ctx context.Context, projectID, userID int64, req *dto.UpdateProjectRequest) (*models.Project, error) {
	if err := s.requireOwner(ctx, projectID, userID); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Status != nil {
		status := models.ProjectStatus(*req.Status)
		if !status.IsValid() {
			return nil, apperrors.NewValidationError("status must be one of active, completed, paused")
		}
		fields["status"] = status
	}
	if req.TeamMembers != nil {
		fields["team_members"] = req.TeamMembers
	}
	if req.Tags != nil {
		fields["tags"] = req.Tags
	}
	if req.RequiredSkills != nil {
		fields["required_skills"] = req.RequiredSkills
	}
	if req.Links != nil {
		fields["links"] = req.Links
	}
	if req.Funding != nil {
		fields["funding"] = *req.Funding
	}
	if req.Partners != nil {
		fields["partners"] = *req.Partners
	}
	if req.Highlights != nil {
		fields["highlights"] = *req.Highlights
	}
	if req.IsRecruiting != nil {
		fields["is_recruiting"] = *req.IsRecruiting
	}

	if err := s.projectRepo.Update(ctx, projectID, fields); err != nil {
		return nil, err
	}

	for _, p := range req.Positions {
		if p.Count < 1 {
			return nil, apperrors.NewValidationError("position count must be at least 1")
		}
		pos := &models.ProjectPosition{
			ProjectID:      projectID,
			Title:          p.Title,
			Description:    p.Description,
			RequiredSkills: emptyIfNil(p.RequiredSkills),
			Count:          p.Count,
		}
		if p.ID != nil {
			pos.ID = *p.ID
			if err := s.projectRepo.UpdatePosition(ctx, projectID, pos); err != nil {
				return nil, err
			}
		} else {
			if err := s.projectRepo.InsertPosition(ctx, pos); err != nil {
				return nil, err
			}
		}
	}

	return s.projectRepo.GetByID(ctx, projectID)
}

// Delete removes a project, owner only
func (s *ProjectService) Delete(ctx context.Context, projectID, userID int64) error {
	if err := s.requireOwner(ctx, projectID, userID); err != nil {
		return err
	}
	s.logger.Info().Int64("projectId", projectID).Int64("userId", userID).Msg("Project deleted")
	return s.projectRepo.Delete(ctx, projectID)
}

// Recommended retrieves active projects ranked for the student's profile.
// Projects the student already applied to are left out.
func (s *ProjectService) Recommended(ctx context.Context, userID int64) ([]*dto.RecommendedProject, error) {
	student, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	projects, err := s.projectRepo.ListActiveWithPositions(ctx)
	if err != nil {
		return nil, err
	}

	applied, err := s.applicationRepo.AppliedProjectIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	candidates := projects[:0]
	for _, p := range projects {
		if !applied[p.ID] {
			candidates = append(candidates, p)
		}
	}

	return RankProjects(candidates, student), nil
}

// AddImage records an uploaded image on a project, owner only
func (s *ProjectService) AddImage(ctx context.Context, projectID, userID int64, url string) error {
	if err := s.requireOwner(ctx, projectID, userID); err != nil {
		return err
	}
	return s.projectRepo.AppendImage(ctx, projectID, url)
}

// SetJDFile records an uploaded job description document, owner only
func (s *ProjectService) SetJDFile(ctx context.Context, projectID, userID int64, url string) error {
	if err := s.requireOwner(ctx, projectID, userID); err != nil {
		return err
	}
	return s.projectRepo.SetJDFileURL(ctx, projectID, url)
}

func (s *ProjectService) requireOwner(ctx context.Context, projectID, userID int64) error {
	ownerID, err := s.projectRepo.GetOwnerID(ctx, projectID)
	if err != nil {
		return err
	}
	if ownerID != userID {
		return apperrors.NewForbiddenError("only the project owner can do this")
	}
	return nil
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
