package dto

import "github.com/alumconnect/backend/internal/app/models"

// RegisterRequest is the payload for user registration.
// graduationYear and department are required when role is "alumni".
type RegisterRequest struct {
	Name           string  `json:"name" binding:"required" example:"Priya Sharma"`
	Email          string  `json:"email" binding:"required,email" example:"priya@university.edu"`
	Password       string  `json:"password" binding:"required,min=8" example:"s3cretpass"`
	Role           string  `json:"role" binding:"required" example:"alumni" enums:"student,alumni"`
	GraduationYear *int    `json:"graduationYear,omitempty" example:"2015"`
	Department     *string `json:"department,omitempty" example:"Computer Science"`
}

// LoginRequest is the payload for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries a bearer token plus the authenticated user
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int          `json:"expiresIn" example:"86400"`
	User      *models.User `json:"user"`
}
