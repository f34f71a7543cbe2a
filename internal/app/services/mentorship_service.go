package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/alumconnect/backend/internal/app/models"
	"github.com/alumconnect/backend/internal/app/models/dto"
	"github.com/alumconnect/backend/internal/app/repositories"
	"github.com/alumconnect/backend/internal/pkg/apperrors"
)

// MentorshipService handles mentorship requests between students and alumni
type MentorshipService struct {
	mentorshipRepo *repositories.MentorshipRepository
	userRepo       *repositories.UserRepository
	logger         zerolog.Logger
}

// NewMentorshipService creates a new MentorshipService
func NewMentorshipService(
	mentorshipRepo *repositories.MentorshipRepository,
	userRepo *repositories.UserRepository,
	logger zerolog.Logger,
) *MentorshipService {
	return &MentorshipService{
		mentorshipRepo: mentorshipRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

// Request sends a mentorship request from a student to an alumni
func (s *MentorshipService) Request(ctx context.Context, studentID int64, role models.Role, req *dto.MentorshipRequestPayload) (*models.MentorshipRequest, error) {
	if role != models.RoleStudent {
		return nil, apperrors.NewForbiddenError("only students can request mentorship")
	}

	targetRole, err := s.userRepo.GetRole(ctx, req.AlumniID)
	if err != nil {
		return nil, err
	}
	if targetRole != models.RoleAlumni {
		return nil, apperrors.NewValidationError("mentorship requests can only be sent to alumni")
	}

	request := &models.MentorshipRequest{
		StudentID: studentID,
		AlumniID:  req.AlumniID,
		Message:   req.Message,
	}
	if err := s.mentorshipRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("requestId", request.ID).
		Int64("studentId", studentID).
		Int64("alumniId", req.AlumniID).
		Msg("Mentorship requested")
	return request, nil
}

// ListMine retrieves the caller's requests: outgoing for students, incoming
// for alumni.
func (s *MentorshipService) ListMine(ctx context.Context, userID int64, role models.Role) ([]*dto.MentorshipRequestResponse, error) {
	var requests []*models.MentorshipRequest
	var err error
	if role == models.RoleAlumni {
		requests, err = s.mentorshipRepo.ListByAlumni(ctx, userID)
	} else {
		requests, err = s.mentorshipRepo.ListByStudent(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.MentorshipRequestResponse, 0, len(requests))
	for _, r := range requests {
		resp := &dto.MentorshipRequestResponse{MentorshipRequest: r}
		if role == models.RoleAlumni && r.Student != nil {
			resp.OtherUserName = r.Student.Name
			resp.OtherUserEmail = r.Student.Email
		} else if r.Alumni != nil {
			resp.OtherUserName = r.Alumni.Name
			resp.OtherUserEmail = r.Alumni.Email
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// Respond lets the addressed alumni accept or decline a request
func (s *MentorshipService) Respond(ctx context.Context, requestID, alumniID int64, accept bool) error {
	status := models.StatusDeclined
	if accept {
		status = models.StatusAccepted
	}

	if err := s.mentorshipRepo.UpdateStatus(ctx, requestID, alumniID, status); err != nil {
		return err
	}

	s.logger.Info().
		Int64("requestId", requestID).
		Str("status", string(status)).
		Msg("Mentorship request answered")
	return nil
}
