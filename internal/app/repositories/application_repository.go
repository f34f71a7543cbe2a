package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alumconnect/backend/internal/app/models"
	"github.com/alumconnect/backend/internal/pkg/apperrors"
	"github.com/alumconnect/backend/internal/pkg/dberrors"
)

const applicationColumns = `a.id, a.project_id, a.student_id, a.position_id, a.message, a.status,
	a.has_team, a.is_completed, a.completed_at, a.feedback, a.created_at`

// ApplicationRepository handles database operations for project applications
type ApplicationRepository struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func scanApplication(row pgx.Row) (*models.ProjectApplication, error) {
	var a models.ProjectApplication
	err := row.Scan(
		&a.ID,
		&a.ProjectID,
		&a.StudentID,
		&a.PositionID,
		&a.Message,
		&a.Status,
		&a.HasTeam,
		&a.IsCompleted,
		&a.CompletedAt,
		&a.Feedback,
		&a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a pending application. The unique constraints on
// (student_id, position_id) pairs turn a repeat application into
// ErrAlreadyApplied without a prior existence check.
func (r *ApplicationRepository) Create(ctx context.Context, app *models.ProjectApplication) error {
	query := `
		INSERT INTO project_applications (project_id, student_id, position_id, message, has_team)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, status, is_completed, created_at
	`

	err := r.db.QueryRow(ctx, query,
		app.ProjectID,
		app.StudentID,
		app.PositionID,
		app.Message,
		app.HasTeam,
	).Scan(&app.ID, &app.Status, &app.IsCompleted, &app.CreatedAt)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAlreadyApplied
		}
		return fmt.Errorf("error creating application: %w", err)
	}
	return nil
}

// GetByID retrieves an application together with the project's owner ID,
// which authorization checks need.
func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*models.ProjectApplication, int64, error) {
	query := fmt.Sprintf(`
		SELECT %s, p.created_by
		FROM project_applications a
		JOIN projects p ON a.project_id = p.id
		WHERE a.id = $1
	`, applicationColumns)

	var a models.ProjectApplication
	var ownerID int64
	err := r.db.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.ProjectID, &a.StudentID, &a.PositionID, &a.Message, &a.Status,
		&a.HasTeam, &a.IsCompleted, &a.CompletedAt, &a.Feedback, &a.CreatedAt,
		&ownerID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, apperrors.ErrApplicationNotFound
		}
		return nil, 0, fmt.Errorf("error retrieving application: %w", err)
	}
	return &a, ownerID, nil
}

// ListByStudent retrieves a student's applications with project and position
// titles, newest first
func (r *ApplicationRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.ProjectApplication, error) {
	query := fmt.Sprintf(`
		SELECT %s, p.id, p.title, p.category, p.status, pos.title
		FROM project_applications a
		JOIN projects p ON a.project_id = p.id
		LEFT JOIN project_positions pos ON a.position_id = pos.id
		WHERE a.student_id = $1
		ORDER BY a.created_at DESC
	`, applicationColumns)

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing applications: %w", err)
	}
	defer rows.Close()

	var apps []*models.ProjectApplication
	for rows.Next() {
		var a models.ProjectApplication
		var p models.Project
		var positionTitle *string
		err := rows.Scan(
			&a.ID, &a.ProjectID, &a.StudentID, &a.PositionID, &a.Message, &a.Status,
			&a.HasTeam, &a.IsCompleted, &a.CompletedAt, &a.Feedback, &a.CreatedAt,
			&p.ID, &p.Title, &p.Category, &p.Status,
			&positionTitle,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning application row: %w", err)
		}
		a.Project = &p
		if a.PositionID != nil && positionTitle != nil {
			a.Position = &models.ProjectPosition{ID: *a.PositionID, ProjectID: a.ProjectID, Title: *positionTitle}
		}
		apps = append(apps, &a)
	}
	return apps, rows.Err()
}

// ListByProject retrieves a project's applications with applicant info, newest first
func (r *ApplicationRepository) ListByProject(ctx context.Context, projectID int64) ([]*models.ProjectApplication, error) {
	query := fmt.Sprintf(`
		SELECT %s, u.id, u.name, u.email, u.graduation_year, u.department, u.avatar_url, u.cv_url
		FROM project_applications a
		JOIN users u ON a.student_id = u.id
		WHERE a.project_id = $1
		ORDER BY a.created_at DESC
	`, applicationColumns)

	rows, err := r.db.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("error listing project applications: %w", err)
	}
	defer rows.Close()

	var apps []*models.ProjectApplication
	for rows.Next() {
		var a models.ProjectApplication
		var u models.User
		err := rows.Scan(
			&a.ID, &a.ProjectID, &a.StudentID, &a.PositionID, &a.Message, &a.Status,
			&a.HasTeam, &a.IsCompleted, &a.CompletedAt, &a.Feedback, &a.CreatedAt,
			&u.ID, &u.Name, &u.Email, &u.GraduationYear, &u.Department, &u.AvatarURL, &u.CVURL,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning project application row: %w", err)
		}
		u.Role = models.RoleStudent
		a.Student = &u
		apps = append(apps, &a)
	}
	return apps, rows.Err()
}

// AppliedProjectIDs retrieves the set of projects a student has applied to
func (r *ApplicationRepository) AppliedProjectIDs(ctx context.Context, studentID int64) (map[int64]bool, error) {
	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT project_id FROM project_applications WHERE student_id = $1`,
		studentID,
	)
	if err != nil {
		return nil, fmt.Errorf("error listing applied projects: %w", err)
	}
	defer rows.Close()

	applied := make(map[int64]bool)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning applied project row: %w", err)
		}
		applied[id] = true
	}
	return applied, rows.Err()
}

// Accept marks an application accepted and advances its position's
// filled_count. Both the application and position rows are locked so
// concurrent accepts cannot double-count a slot or overfill the position.
// Accepting into a full position fails with a conflict, which can happen when
// several students applied while it was still open.
func (r *ApplicationRepository) Accept(ctx context.Context, applicationID int64) (*models.ProjectApplication, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	app, err := lockApplication(ctx, tx, applicationID)
	if err != nil {
		return nil, err
	}

	priorStatus := app.Status
	if app.PositionID != nil && consumesSlot(priorStatus) {
		filled, count, err := lockPosition(ctx, tx, *app.PositionID)
		if err != nil {
			return nil, err
		}
		if !hasOpenSlot(filled, count) {
			return nil, apperrors.NewConflictError("position is already filled")
		}
		newFilled, active := fillSlot(filled, count)
		if err := writeSlot(ctx, tx, *app.PositionID, newFilled, active); err != nil {
			return nil, err
		}
	}

	_, err = tx.Exec(ctx,
		`UPDATE project_applications SET status = 'accepted' WHERE id = $1`,
		applicationID,
	)
	if err != nil {
		return nil, fmt.Errorf("error accepting application: %w", err)
	}
	app.Status = models.StatusAccepted

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("error committing accept: %w", err)
	}
	return app, nil
}

// Decline marks an application declined. Declining a previously accepted
// application frees the position slot and reopens the position.
func (r *ApplicationRepository) Decline(ctx context.Context, applicationID int64) (*models.ProjectApplication, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	app, err := lockApplication(ctx, tx, applicationID)
	if err != nil {
		return nil, err
	}

	priorStatus := app.Status
	_, err = tx.Exec(ctx,
		`UPDATE project_applications SET status = 'declined' WHERE id = $1`,
		applicationID,
	)
	if err != nil {
		return nil, fmt.Errorf("error declining application: %w", err)
	}
	app.Status = models.StatusDeclined

	if app.PositionID != nil && freesSlot(priorStatus) {
		filled, _, err := lockPosition(ctx, tx, *app.PositionID)
		if err != nil {
			return nil, err
		}
		newFilled, active := releaseSlot(filled)
		if err := writeSlot(ctx, tx, *app.PositionID, newFilled, active); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("error committing decline: %w", err)
	}
	return app, nil
}

// Withdraw deletes a student's applications to a project. Accepted
// applications release their position slot before the row goes away.
func (r *ApplicationRepository) Withdraw(ctx context.Context, projectID, studentID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := fmt.Sprintf(`
		SELECT %s FROM project_applications a
		WHERE a.project_id = $1 AND a.student_id = $2
		FOR UPDATE
	`, applicationColumns)

	rows, err := tx.Query(ctx, query, projectID, studentID)
	if err != nil {
		return fmt.Errorf("error locking applications: %w", err)
	}

	var apps []*models.ProjectApplication
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			rows.Close()
			return fmt.Errorf("error scanning application row: %w", err)
		}
		apps = append(apps, app)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error reading applications: %w", err)
	}
	if len(apps) == 0 {
		return apperrors.ErrApplicationNotFound
	}

	for _, app := range apps {
		if app.PositionID != nil && freesSlot(app.Status) {
			filled, _, err := lockPosition(ctx, tx, *app.PositionID)
			if err != nil {
				return err
			}
			newFilled, active := releaseSlot(filled)
			if err := writeSlot(ctx, tx, *app.PositionID, newFilled, active); err != nil {
				return err
			}
		}
	}

	_, err = tx.Exec(ctx,
		`DELETE FROM project_applications WHERE project_id = $1 AND student_id = $2`,
		projectID, studentID,
	)
	if err != nil {
		return fmt.Errorf("error withdrawing application: %w", err)
	}

	return tx.Commit(ctx)
}

// Complete marks an accepted application as completed with optional feedback
func (r *ApplicationRepository) Complete(ctx context.Context, applicationID int64, feedback *string) error {
	query := `
		UPDATE project_applications
		SET is_completed = TRUE, completed_at = NOW(), feedback = $1
		WHERE id = $2 AND status = 'accepted'
	`
	tag, err := r.db.Exec(ctx, query, feedback, applicationID)
	if err != nil {
		return fmt.Errorf("error completing application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotAccepted
	}
	return nil
}

func lockApplication(ctx context.Context, tx pgx.Tx, applicationID int64) (*models.ProjectApplication, error) {
	query := fmt.Sprintf(`SELECT %s FROM project_applications a WHERE a.id = $1 FOR UPDATE`, applicationColumns)

	app, err := scanApplication(tx.QueryRow(ctx, query, applicationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error locking application: %w", err)
	}
	return app, nil
}

// lockPosition reads a position's slot counters under FOR UPDATE. Application
// transactions always lock the application row first, then the position, so
// two of them cannot deadlock on each other.
func lockPosition(ctx context.Context, tx pgx.Tx, positionID int64) (filled, count int, err error) {
	err = tx.QueryRow(ctx,
		`SELECT filled_count, count FROM project_positions WHERE id = $1 FOR UPDATE`,
		positionID,
	).Scan(&filled, &count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, 0, apperrors.ErrPositionNotFound
		}
		return 0, 0, fmt.Errorf("error locking position: %w", err)
	}
	return filled, count, nil
}

func writeSlot(ctx context.Context, tx pgx.Tx, positionID int64, filled int, active bool) error {
	_, err := tx.Exec(ctx,
		`UPDATE project_positions SET filled_count = $1, is_active = $2 WHERE id = $3`,
		filled, active, positionID,
	)
	if err != nil {
		return fmt.Errorf("error updating position slot: %w", err)
	}
	return nil
}
