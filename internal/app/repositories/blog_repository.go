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
)

// BlogRepository handles database operations for blog posts and likes
type BlogRepository struct {
	db *pgxpool.Pool
}

// NewBlogRepository creates a new BlogRepository
func NewBlogRepository(db *pgxpool.Pool) *BlogRepository {
	return &BlogRepository{db: db}
}

// Create inserts a blog post
func (r *BlogRepository) Create(ctx context.Context, post *models.BlogPost) error {
	query := `
		INSERT INTO blog_posts (author_id, title, content, category)
		VALUES ($1, $2, $3, $4)
		RETURNING id, images, pdfs, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		post.AuthorID,
		post.Title,
		post.Content,
		post.Category,
	).Scan(&post.ID, &post.Images, &post.PDFs, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating blog post: %w", err)
	}
	return nil
}

// GetByID retrieves a blog post with author info and like state. viewerID may
// be 0 for anonymous readers, which simply never match a like row.
func (r *BlogRepository) GetByID(ctx context.Context, id, viewerID int64) (*models.BlogPost, error) {
	query := `
		SELECT b.id, b.author_id, b.title, b.content, b.category, b.images, b.pdfs,
		       b.created_at, b.updated_at,
		       u.id, u.name, u.email, u.avatar_url,
		       (SELECT COUNT(*) FROM blog_likes l WHERE l.post_id = b.id),
		       EXISTS(SELECT 1 FROM blog_likes l WHERE l.post_id = b.id AND l.user_id = $2)
		FROM blog_posts b
		JOIN users u ON b.author_id = u.id
		WHERE b.id = $1
	`

	var post models.BlogPost
	var author models.User
	err := r.db.QueryRow(ctx, query, id, viewerID).Scan(
		&post.ID, &post.AuthorID, &post.Title, &post.Content, &post.Category,
		&post.Images, &post.PDFs, &post.CreatedAt, &post.UpdatedAt,
		&author.ID, &author.Name, &author.Email, &author.AvatarURL,
		&post.LikeCount, &post.Liked,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBlogPostNotFound
		}
		return nil, fmt.Errorf("error retrieving blog post: %w", err)
	}
	post.Author = &author
	return &post, nil
}

// List retrieves blog posts newest first with author names and like counts
func (r *BlogRepository) List(ctx context.Context, category *string, viewerID int64) ([]*models.BlogPost, error) {
	builder := squirrel.Select(
		"b.id", "b.author_id", "b.title", "b.content", "b.category", "b.images", "b.pdfs",
		"b.created_at", "b.updated_at",
		"u.name",
		"(SELECT COUNT(*) FROM blog_likes l WHERE l.post_id = b.id)",
	).
		Column(squirrel.Expr("EXISTS(SELECT 1 FROM blog_likes l WHERE l.post_id = b.id AND l.user_id = ?)", viewerID)).
		From("blog_posts b").
		Join("users u ON b.author_id = u.id").
		OrderBy("b.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if category != nil && *category != "" {
		builder = builder.Where("b.category = ?", *category)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building blog list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing blog posts: %w", err)
	}
	defer rows.Close()

	var posts []*models.BlogPost
	for rows.Next() {
		var post models.BlogPost
		var authorName string
		err := rows.Scan(
			&post.ID, &post.AuthorID, &post.Title, &post.Content, &post.Category,
			&post.Images, &post.PDFs, &post.CreatedAt, &post.UpdatedAt,
			&authorName, &post.LikeCount, &post.Liked,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning blog post row: %w", err)
		}
		post.Author = &models.User{ID: post.AuthorID, Name: authorName, Role: models.RoleAlumni}
		posts = append(posts, &post)
	}
	return posts, rows.Err()
}

// Update applies a partial column update to a blog post owned by the author
func (r *BlogRepository) Update(ctx context.Context, postID, authorID int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	fields["updated_at"] = squirrel.Expr("NOW()")

	sql, args, err := squirrel.Update("blog_posts").
		SetMap(fields).
		Where("id = ?", postID).
		Where("author_id = ?", authorID).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building blog post update: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating blog post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrBlogPostNotFound
	}
	return nil
}

// Delete removes a blog post owned by the author, cascading to its likes
func (r *BlogRepository) Delete(ctx context.Context, postID, authorID int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM blog_posts WHERE id = $1 AND author_id = $2`,
		postID, authorID,
	)
	if err != nil {
		return fmt.Errorf("error deleting blog post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrBlogPostNotFound
	}
	return nil
}

// GetAuthorID retrieves the author of a blog post
func (r *BlogRepository) GetAuthorID(ctx context.Context, postID int64) (int64, error) {
	var authorID int64
	err := r.db.QueryRow(ctx, `SELECT author_id FROM blog_posts WHERE id = $1`, postID).Scan(&authorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrBlogPostNotFound
		}
		return 0, fmt.Errorf("error retrieving blog post author: %w", err)
	}
	return authorID, nil
}

// ToggleLike flips the user's like on a post and returns the new state with
// the updated count. Insert-or-delete against the unique (post_id, user_id)
// constraint keeps concurrent toggles consistent.
func (r *BlogRepository) ToggleLike(ctx context.Context, postID, userID int64) (liked bool, likeCount int, err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	err = tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM blog_posts WHERE id = $1)`, postID).Scan(&exists)
	if err != nil {
		return false, 0, fmt.Errorf("error checking blog post: %w", err)
	}
	if !exists {
		return false, 0, apperrors.ErrBlogPostNotFound
	}

	tag, err := tx.Exec(ctx,
		`DELETE FROM blog_likes WHERE post_id = $1 AND user_id = $2`,
		postID, userID,
	)
	if err != nil {
		return false, 0, fmt.Errorf("error removing like: %w", err)
	}

	if tag.RowsAffected() == 0 {
		_, err = tx.Exec(ctx,
			`INSERT INTO blog_likes (post_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			postID, userID,
		)
		if err != nil {
			return false, 0, fmt.Errorf("error adding like: %w", err)
		}
		liked = true
	}

	err = tx.QueryRow(ctx, `SELECT COUNT(*) FROM blog_likes WHERE post_id = $1`, postID).Scan(&likeCount)
	if err != nil {
		return false, 0, fmt.Errorf("error counting likes: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, 0, fmt.Errorf("error committing like toggle: %w", err)
	}
	return liked, likeCount, nil
}

// AppendImage appends an image reference to a blog post's image list
func (r *BlogRepository) AppendImage(ctx context.Context, postID int64, url string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE blog_posts SET images = array_append(images, $1), updated_at = NOW() WHERE id = $2`,
		url, postID,
	)
	if err != nil {
		return fmt.Errorf("error appending blog image: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrBlogPostNotFound
	}
	return nil
}

// AppendPDF appends a document reference to a blog post's pdf list
func (r *BlogRepository) AppendPDF(ctx context.Context, postID int64, url string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE blog_posts SET pdfs = array_append(pdfs, $1), updated_at = NOW() WHERE id = $2`,
		url, postID,
	)
	if err != nil {
		return fmt.Errorf("error appending blog pdf: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrBlogPostNotFound
	}
	return nil
}
