package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alumconnect/backend/internal/app/models"
	"github.com/alumconnect/backend/internal/app/models/dto"
	"github.com/alumconnect/backend/internal/pkg/apperrors"
)

const projectColumns = `p.id, p.title, p.description, p.category, p.status, p.created_by,
	p.team_members, p.tags, p.required_skills, p.images, p.links, p.jd_file_url,
	p.funding, p.partners, p.highlights, p.is_recruiting, p.created_at, p.updated_at`

const positionColumns = `id, project_id, title, description, required_skills, count, filled_count, is_active, created_at`

// ProjectRepository handles database operations for projects and positions
type ProjectRepository struct {
	db *pgxpool.Pool
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func scanProject(row pgx.Row) (*models.Project, error) {
	var p models.Project
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Category,
		&p.Status,
		&p.CreatedBy,
		&p.TeamMembers,
		&p.Tags,
		&p.RequiredSkills,
		&p.Images,
		&p.Links,
		&p.JDFileURL,
		&p.Funding,
		&p.Partners,
		&p.Highlights,
		&p.IsRecruiting,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a project and its initial positions in one transaction
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project, positions []models.ProjectPosition) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO projects (
			title, description, category, status, created_by, team_members, tags,
			required_skills, links, funding, partners, highlights, is_recruiting
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at
	`

	err = tx.QueryRow(ctx, query,
		project.Title,
		project.Description,
		project.Category,
		project.Status,
		project.CreatedBy,
		project.TeamMembers,
		project.Tags,
		project.RequiredSkills,
		project.Links,
		project.Funding,
		project.Partners,
		project.Highlights,
		project.IsRecruiting,
	).Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating project: %w", err)
	}

	for i := range positions {
		positions[i].ProjectID = project.ID
		if err := insertPosition(ctx, tx, &positions[i]); err != nil {
			return err
		}
	}
	project.Positions = positions

	return tx.Commit(ctx)
}

func insertPosition(ctx context.Context, tx pgx.Tx, pos *models.ProjectPosition) error {
	query := `
		INSERT INTO project_positions (project_id, title, description, required_skills, count)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, filled_count, is_active, created_at
	`
	err := tx.QueryRow(ctx, query,
		pos.ProjectID,
		pos.Title,
		pos.Description,
		pos.RequiredSkills,
		pos.Count,
	).Scan(&pos.ID, &pos.FilledCount, &pos.IsActive, &pos.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating position: %w", err)
	}
	return nil
}

// GetByID retrieves a project with its positions and owner info
func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	query := fmt.Sprintf(`
		SELECT %s, u.id, u.name, u.email, u.avatar_url
		FROM projects p
		LEFT JOIN users u ON p.created_by = u.id
		WHERE p.id = $1
	`, projectColumns)

	var p models.Project
	var owner models.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Description, &p.Category, &p.Status, &p.CreatedBy,
		&p.TeamMembers, &p.Tags, &p.RequiredSkills, &p.Images, &p.Links, &p.JDFileURL,
		&p.Funding, &p.Partners, &p.Highlights, &p.IsRecruiting, &p.CreatedAt, &p.UpdatedAt,
		&owner.ID, &owner.Name, &owner.Email, &owner.AvatarURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("error retrieving project: %w", err)
	}
	owner.Role = models.RoleAlumni
	p.Owner = &owner

	positions, err := r.GetPositions(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.Positions = positions

	return &p, nil
}

// List retrieves projects newest first, with optional filters
func (r *ProjectRepository) List(ctx context.Context, filter *dto.ProjectFilter) ([]*models.Project, error) {
	builder := squirrel.Select(
		"p.id", "p.title", "p.description", "p.category", "p.status", "p.created_by",
		"p.team_members", "p.tags", "p.required_skills", "p.images", "p.links", "p.jd_file_url",
		"p.funding", "p.partners", "p.highlights", "p.is_recruiting", "p.created_at", "p.updated_at",
		"u.name AS created_by_name",
	).
		From("projects p").
		LeftJoin("users u ON p.created_by = u.id").
		OrderBy("p.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter != nil {
		if filter.Category != nil && *filter.Category != "" {
			builder = builder.Where("p.category = ?", *filter.Category)
		}
		if filter.Status != nil && *filter.Status != "" {
			builder = builder.Where("p.status = ?", *filter.Status)
		}
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building project list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		var p models.Project
		var ownerName *string
		err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.Category, &p.Status, &p.CreatedBy,
			&p.TeamMembers, &p.Tags, &p.RequiredSkills, &p.Images, &p.Links, &p.JDFileURL,
			&p.Funding, &p.Partners, &p.Highlights, &p.IsRecruiting, &p.CreatedAt, &p.UpdatedAt,
			&ownerName,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning project row: %w", err)
		}
		if ownerName != nil {
			p.Owner = &models.User{ID: p.CreatedBy, Name: *ownerName, Role: models.RoleAlumni}
		}
		projects = append(projects, &p)
	}
	return projects, rows.Err()
}

// ListActiveWithPositions retrieves active projects, each with its positions,
// newest first. Used by the recommendation scorer.
func (r *ProjectRepository) ListActiveWithPositions(ctx context.Context) ([]*models.Project, error) {
	status := string(models.ProjectActive)
	projects, err := r.List(ctx, &dto.ProjectFilter{Status: &status})
	if err != nil {
		return nil, err
	}

	for _, p := range projects {
		positions, err := r.GetPositions(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		p.Positions = positions
	}
	return projects, nil
}

// Update applies a partial column update to a project
func (r *ProjectRepository) Update(ctx context.Context, projectID int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	fields["updated_at"] = squirrel.Expr("NOW()")

	sql, args, err := squirrel.Update("projects").
		SetMap(fields).
		Where("id = ?", projectID).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building project update: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrProjectNotFound
	}
	return nil
}

// Delete removes a project, cascading to positions and applications
func (r *ProjectRepository) Delete(ctx context.Context, projectID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, projectID)
	if err != nil {
		return fmt.Errorf("error deleting project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrProjectNotFound
	}
	return nil
}

// GetOwnerID retrieves the owning alumni of a project
func (r *ProjectRepository) GetOwnerID(ctx context.Context, projectID int64) (int64, error) {
	var ownerID int64
	err := r.db.QueryRow(ctx, `SELECT created_by FROM projects WHERE id = $1`, projectID).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrProjectNotFound
		}
		return 0, fmt.Errorf("error retrieving project owner: %w", err)
	}
	return ownerID, nil
}

// GetPositions retrieves all positions of a project
func (r *ProjectRepository) GetPositions(ctx context.Context, projectID int64) ([]models.ProjectPosition, error) {
	query := fmt.Sprintf(`SELECT %s FROM project_positions WHERE project_id = $1 ORDER BY id`, positionColumns)

	rows, err := r.db.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("error listing positions: %w", err)
	}
	defer rows.Close()

	var positions []models.ProjectPosition
	for rows.Next() {
		var pos models.ProjectPosition
		err := rows.Scan(
			&pos.ID, &pos.ProjectID, &pos.Title, &pos.Description,
			&pos.RequiredSkills, &pos.Count, &pos.FilledCount, &pos.IsActive, &pos.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning position row: %w", err)
		}
		positions = append(positions, pos)
	}
	return positions, rows.Err()
}

// GetPosition retrieves a single position
func (r *ProjectRepository) GetPosition(ctx context.Context, positionID int64) (*models.ProjectPosition, error) {
	query := fmt.Sprintf(`SELECT %s FROM project_positions WHERE id = $1`, positionColumns)

	var pos models.ProjectPosition
	err := r.db.QueryRow(ctx, query, positionID).Scan(
		&pos.ID, &pos.ProjectID, &pos.Title, &pos.Description,
		&pos.RequiredSkills, &pos.Count, &pos.FilledCount, &pos.IsActive, &pos.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPositionNotFound
		}
		return nil, fmt.Errorf("error retrieving position: %w", err)
	}
	return &pos, nil
}

// CountActivePositions counts the positions of a project still accepting applicants
func (r *ProjectRepository) CountActivePositions(ctx context.Context, projectID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM project_positions WHERE project_id = $1 AND is_active = TRUE`,
		projectID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting active positions: %w", err)
	}
	return count, nil
}

// InsertPosition adds a new position to an existing project
func (r *ProjectRepository) InsertPosition(ctx context.Context, pos *models.ProjectPosition) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := insertPosition(ctx, tx, pos); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// UpdatePosition updates a position in place. The project scoping keeps an
// update from touching positions of other projects, and the count cannot be
// lowered below the slots already filled.
func (r *ProjectRepository) UpdatePosition(ctx context.Context, projectID int64, pos *models.ProjectPosition) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var filled int
	err = tx.QueryRow(ctx,
		`SELECT filled_count FROM project_positions WHERE id = $1 AND project_id = $2 FOR UPDATE`,
		pos.ID, projectID,
	).Scan(&filled)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrPositionNotFound
		}
		return fmt.Errorf("error locking position: %w", err)
	}

	if pos.Count < filled {
		return apperrors.NewValidationError("position count cannot be lower than the slots already filled")
	}

	query := `
		UPDATE project_positions
		SET title = $1, description = $2, required_skills = $3, count = $4, is_active = $5
		WHERE id = $6 AND project_id = $7
	`
	_, err = tx.Exec(ctx, query,
		pos.Title,
		pos.Description,
		pos.RequiredSkills,
		pos.Count,
		hasOpenSlot(filled, pos.Count),
		pos.ID,
		projectID,
	)
	if err != nil {
		return fmt.Errorf("error updating position: %w", err)
	}
	return tx.Commit(ctx)
}

// AppendImage appends an image reference to the project's image list
func (r *ProjectRepository) AppendImage(ctx context.Context, projectID int64, url string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE projects SET images = array_append(images, $1), updated_at = NOW() WHERE id = $2`,
		url, projectID,
	)
	if err != nil {
		return fmt.Errorf("error appending project image: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrProjectNotFound
	}
	return nil
}

// SetJDFileURL stores the job description document reference
func (r *ProjectRepository) SetJDFileURL(ctx context.Context, projectID int64, url string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE projects SET jd_file_url = $1, updated_at = NOW() WHERE id = $2`,
		url, projectID,
	)
	if err != nil {
		return fmt.Errorf("error updating job description file: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrProjectNotFound
	}
	return nil
}
