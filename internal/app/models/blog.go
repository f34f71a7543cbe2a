package models

import (
	"time"
)

// BlogPost defines the blog post model based on the 'blog_posts' table
type BlogPost struct {
	ID        int64     `json:"id" db:"id"`
	AuthorID  int64     `json:"authorId" db:"author_id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	Category  string    `json:"category" db:"category"`
	Images    []string  `json:"images" db:"images"`
	PDFs      []string  `json:"pdfs" db:"pdfs"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	// Relations, no db tag
	Author    *User `json:"author,omitempty"`
	LikeCount int   `json:"likeCount"`
	Liked     bool  `json:"liked"`
}
