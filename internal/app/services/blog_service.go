package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/alumconnect/backend/internal/app/models"
	"github.com/alumconnect/backend/internal/app/models/dto"
	"github.com/alumconnect/backend/internal/app/repositories"
	"github.com/alumconnect/backend/internal/pkg/apperrors"
)

// BlogService handles blog posts and likes
type BlogService struct {
	blogRepo *repositories.BlogRepository
	logger   zerolog.Logger
}

// NewBlogService creates a new BlogService
func NewBlogService(blogRepo *repositories.BlogRepository, logger zerolog.Logger) *BlogService {
	return &BlogService{blogRepo: blogRepo, logger: logger}
}

// Create publishes a blog post, alumni only
func (s *BlogService) Create(ctx context.Context, authorID int64, role models.Role, req *dto.CreateBlogPostRequest) (*models.BlogPost, error) {
	if role != models.RoleAlumni {
		return nil, apperrors.NewForbiddenError("only alumni can publish blog posts")
	}

	post := &models.BlogPost{
		AuthorID: authorID,
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
	}
	if err := s.blogRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("postId", post.ID).Int64("authorId", authorID).Msg("Blog post published")
	return post, nil
}

// Get retrieves a blog post. viewerID may be 0 for anonymous readers.
func (s *BlogService) Get(ctx context.Context, postID, viewerID int64) (*models.BlogPost, error) {
	return s.blogRepo.GetByID(ctx, postID, viewerID)
}

// List retrieves blog posts newest first
func (s *BlogService) List(ctx context.Context, category *string, viewerID int64) ([]*models.BlogPost, error) {
	return s.blogRepo.List(ctx, category, viewerID)
}

// Update applies a partial update to the caller's own post
func (s *BlogService) Update(ctx context.Context, postID, userID int64, req *dto.UpdateBlogPostRequest) (*models.BlogPost, error) {
	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Content != nil {
		fields["content"] = *req.Content
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}

	if err := s.blogRepo.Update(ctx, postID, userID, fields); err != nil {
		return nil, err
	}
	return s.blogRepo.GetByID(ctx, postID, userID)
}

// Delete removes the caller's own post
func (s *BlogService) Delete(ctx context.Context, postID, userID int64) error {
	return s.blogRepo.Delete(ctx, postID, userID)
}

// ToggleLike flips the caller's like on a post
func (s *BlogService) ToggleLike(ctx context.Context, postID, userID int64) (*dto.LikeResponse, error) {
	liked, count, err := s.blogRepo.ToggleLike(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	return &dto.LikeResponse{Liked: liked, LikeCount: count}, nil
}

// AddImage records an uploaded image on the caller's own post
func (s *BlogService) AddImage(ctx context.Context, postID, userID int64, url string) error {
	if err := s.requireAuthor(ctx, postID, userID); err != nil {
		return err
	}
	return s.blogRepo.AppendImage(ctx, postID, url)
}

// AddPDF records an uploaded document on the caller's own post
func (s *BlogService) AddPDF(ctx context.Context, postID, userID int64, url string) error {
	if err := s.requireAuthor(ctx, postID, userID); err != nil {
		return err
	}
	return s.blogRepo.AppendPDF(ctx, postID, url)
}

func (s *BlogService) requireAuthor(ctx context.Context, postID, userID int64) error {
	authorID, err := s.blogRepo.GetAuthorID(ctx, postID)
	if err != nil {
		return err
	}
	if authorID != userID {
		return apperrors.NewForbiddenError("only the author can modify this post")
	}
	return nil
}
