package dto

// CreateBlogPostRequest is the payload for creating a blog post (alumni only)
type CreateBlogPostRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category"`
}

// UpdateBlogPostRequest is a partial blog post update
type UpdateBlogPostRequest struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	Category *string `json:"category,omitempty"`
}

// LikeResponse reports the state of a like toggle
type LikeResponse struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"likeCount"`
}
