package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alumconnect/backend/internal/app/models"
	"github.com/alumconnect/backend/internal/pkg/apperrors"
	"github.com/alumconnect/backend/internal/pkg/dberrors"
)

const userColumns = `id, name, email, password_hash, role, graduation_year, department, bio,
	company, position, specialization, branch, linkedin_url, github_url, website_url,
	phone, location, avatar_url, cv_url, is_available, created_at, updated_at`

// UserRepository handles database operations for users and their child rows
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Password,
		&u.Role,
		&u.GraduationYear,
		&u.Department,
		&u.Bio,
		&u.Company,
		&u.Position,
		&u.Specialization,
		&u.Branch,
		&u.LinkedinURL,
		&u.GithubURL,
		&u.WebsiteURL,
		&u.Phone,
		&u.Location,
		&u.AvatarURL,
		&u.CVURL,
		&u.IsAvailable,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user row
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (name, email, password_hash, role, graduation_year, department)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, is_available, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		user.Name,
		user.Email,
		user.Password,
		user.Role,
		user.GraduationYear,
		user.Department,
	).Scan(&user.ID, &user.IsAvailable, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by ID including skills, achievements and languages
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	if err := r.loadChildLists(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user by email: %w", err)
	}
	return user, nil
}

// EmailExists checks if an email is already registered
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email existence: %w", err)
	}
	return exists, nil
}

// GetRole retrieves only the role of a user
func (r *UserRepository) GetRole(ctx context.Context, id int64) (models.Role, error) {
	var role models.Role
	err := r.db.QueryRow(ctx, `SELECT role FROM users WHERE id = $1`, id).Scan(&role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrUserNotFound
		}
		return "", fmt.Errorf("error retrieving user role: %w", err)
	}
	return role, nil
}

func (r *UserRepository) loadChildLists(ctx context.Context, user *models.User) error {
	load := func(table, column string) ([]string, error) {
		query := fmt.Sprintf(`SELECT %s FROM %s WHERE user_id = $1 ORDER BY id`, column, table)
		rows, err := r.db.Query(ctx, query, user.ID)
		if err != nil {
			return nil, fmt.Errorf("error loading %s: %w", table, err)
		}
		defer rows.Close()

		var values []string
		for rows.Next() {
			var v string
			if err := rows.Scan(&v); err != nil {
				return nil, fmt.Errorf("error scanning %s row: %w", table, err)
			}
			values = append(values, v)
		}
		return values, rows.Err()
	}

	var err error
	if user.Skills, err = load("user_skills", "skill"); err != nil {
		return err
	}
	if user.Achievements, err = load("user_achievements", "achievement"); err != nil {
		return err
	}
	if user.Languages, err = load("user_languages", "language"); err != nil {
		return err
	}
	return nil
}

// UpdateProfile applies a partial column update and replaces child lists where
// a non-nil slice is given. Everything runs in one transaction.
func (r *UserRepository) UpdateProfile(
	ctx context.Context,
	userID int64,
	fields map[string]interface{},
	skills, achievements, languages []string,
) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if len(fields) > 0 {
		fields["updated_at"] = squirrel.Expr("NOW()")
		sql, args, err := squirrel.Update("users").
			SetMap(fields).
			Where("id = ?", userID).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("error building profile update: %w", err)
		}

		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return fmt.Errorf("error updating profile: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrUserNotFound
		}
	}

	// Child lists are replaced wholesale, no incremental diffing
	replace := func(table, column string, values []string) error {
		if values == nil {
			return nil
		}
		if _, err := tx.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE user_id = $1`, table), userID); err != nil {
			return fmt.Errorf("error clearing %s: %w", table, err)
		}
		for _, v := range values {
			insert := fmt.Sprintf(`INSERT INTO %s (user_id, %s) VALUES ($1, $2)`, table, column)
			if _, err := tx.Exec(ctx, insert, userID, v); err != nil {
				return fmt.Errorf("error inserting into %s: %w", table, err)
			}
		}
		return nil
	}

	if err := replace("user_skills", "skill", skills); err != nil {
		return err
	}
	if err := replace("user_achievements", "achievement", achievements); err != nil {
		return err
	}
	if err := replace("user_languages", "language", languages); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// SetAvatarURL stores the avatar file reference for a user
func (r *UserRepository) SetAvatarURL(ctx context.Context, userID int64, url string) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET avatar_url = $1, updated_at = NOW() WHERE id = $2`, url, userID)
	if err != nil {
		return fmt.Errorf("error updating avatar: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// SetCVURL stores the CV file reference for a user
func (r *UserRepository) SetCVURL(ctx context.Context, userID int64, url string) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET cv_url = $1, updated_at = NOW() WHERE id = $2`, url, userID)
	if err != nil {
		return fmt.Errorf("error updating cv: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// SetAvailability toggles the is_available flag
func (r *UserRepository) SetAvailability(ctx context.Context, userID int64, available bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET is_available = $1, updated_at = NOW() WHERE id = $2`, available, userID)
	if err != nil {
		return fmt.Errorf("error updating availability: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// ListAlumni retrieves alumni for the mentor directory
func (r *UserRepository) ListAlumni(ctx context.Context, availableOnly bool, search *string) ([]*models.User, error) {
	builder := squirrel.Select(
		"id", "name", "email", "role", "graduation_year", "department", "bio",
		"company", "position", "avatar_url", "is_available", "created_at",
	).
		From("users").
		Where("role = ?", models.RoleAlumni).
		OrderBy("name").
		PlaceholderFormat(squirrel.Dollar)

	if availableOnly {
		builder = builder.Where("is_available = TRUE")
	}
	if search != nil && *search != "" {
		pattern := "%" + *search + "%"
		builder = builder.Where("(name ILIKE ? OR department ILIKE ? OR company ILIKE ?)", pattern, pattern, pattern)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building alumni query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing alumni: %w", err)
	}
	defer rows.Close()

	var alumni []*models.User
	for rows.Next() {
		var u models.User
		err := rows.Scan(
			&u.ID, &u.Name, &u.Email, &u.Role, &u.GraduationYear, &u.Department,
			&u.Bio, &u.Company, &u.Position, &u.AvatarURL, &u.IsAvailable, &u.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning alumni row: %w", err)
		}
		alumni = append(alumni, &u)
	}
	return alumni, rows.Err()
}
