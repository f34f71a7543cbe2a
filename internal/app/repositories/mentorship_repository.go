package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alumconnect/backend/internal/app/models"
	"github.com/alumconnect/backend/internal/pkg/apperrors"
	"github.com/alumconnect/backend/internal/pkg/dberrors"
)

// MentorshipRepository handles database operations for mentorship requests
type MentorshipRepository struct {
	db *pgxpool.Pool
}

// NewMentorshipRepository creates a new MentorshipRepository
func NewMentorshipRepository(db *pgxpool.Pool) *MentorshipRepository {
	return &MentorshipRepository{db: db}
}

// Create inserts a pending mentorship request. The unique constraint on
// (student_id, alumni_id) rejects a second request to the same alumni.
func (r *MentorshipRepository) Create(ctx context.Context, req *models.MentorshipRequest) error {
	query := `
		INSERT INTO mentorship_requests (student_id, alumni_id, message)
		VALUES ($1, $2, $3)
		RETURNING id, status, created_at
	`

	err := r.db.QueryRow(ctx, query, req.StudentID, req.AlumniID, req.Message).
		Scan(&req.ID, &req.Status, &req.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAlreadyRequested
		}
		return fmt.Errorf("error creating mentorship request: %w", err)
	}
	return nil
}

// ListByStudent retrieves a student's outgoing requests with alumni info
func (r *MentorshipRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.MentorshipRequest, error) {
	query := `
		SELECT m.id, m.student_id, m.alumni_id, m.message, m.status, m.created_at,
		       u.id, u.name, u.email, u.company, u.position, u.avatar_url
		FROM mentorship_requests m
		JOIN users u ON m.alumni_id = u.id
		WHERE m.student_id = $1
		ORDER BY m.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing mentorship requests: %w", err)
	}
	defer rows.Close()

	var requests []*models.MentorshipRequest
	for rows.Next() {
		var m models.MentorshipRequest
		var u models.User
		err := rows.Scan(
			&m.ID, &m.StudentID, &m.AlumniID, &m.Message, &m.Status, &m.CreatedAt,
			&u.ID, &u.Name, &u.Email, &u.Company, &u.Position, &u.AvatarURL,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning mentorship row: %w", err)
		}
		u.Role = models.RoleAlumni
		m.Alumni = &u
		requests = append(requests, &m)
	}
	return requests, rows.Err()
}

// ListByAlumni retrieves an alumni's incoming requests with student info
func (r *MentorshipRepository) ListByAlumni(ctx context.Context, alumniID int64) ([]*models.MentorshipRequest, error) {
	query := `
		SELECT m.id, m.student_id, m.alumni_id, m.message, m.status, m.created_at,
		       u.id, u.name, u.email, u.graduation_year, u.department, u.avatar_url
		FROM mentorship_requests m
		JOIN users u ON m.student_id = u.id
		WHERE m.alumni_id = $1
		ORDER BY m.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, alumniID)
	if err != nil {
		return nil, fmt.Errorf("error listing incoming mentorship requests: %w", err)
	}
	defer rows.Close()

	var requests []*models.MentorshipRequest
	for rows.Next() {
		var m models.MentorshipRequest
		var u models.User
		err := rows.Scan(
			&m.ID, &m.StudentID, &m.AlumniID, &m.Message, &m.Status, &m.CreatedAt,
			&u.ID, &u.Name, &u.Email, &u.GraduationYear, &u.Department, &u.AvatarURL,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning mentorship row: %w", err)
		}
		u.Role = models.RoleStudent
		m.Student = &u
		requests = append(requests, &m)
	}
	return requests, rows.Err()
}

// UpdateStatus sets the status of a request addressed to the given alumni.
// Scoping the update by alumni_id keeps other alumni from answering it.
func (r *MentorshipRepository) UpdateStatus(ctx context.Context, requestID, alumniID int64, status models.ApplicationStatus) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE mentorship_requests SET status = $1 WHERE id = $2 AND alumni_id = $3`,
		status, requestID, alumniID,
	)
	if err != nil {
		return fmt.Errorf("error updating mentorship request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrRequestNotFound
	}
	return nil
}
