package models

import (
	"time"
)

// Role represents the account role of a user
type Role string

const (
	RoleStudent Role = "student"
	RoleAlumni  Role = "alumni"
)

// IsValid reports whether the role is one of the known roles
func (r Role) IsValid() bool {
	return r == RoleStudent || r == RoleAlumni
}

// User defines the user model based on the 'users' table
type User struct {
	ID             int64     `json:"id" db:"id" example:"1"`
	Name           string    `json:"name" db:"name" example:"Priya Sharma"`
	Email          string    `json:"email" db:"email" example:"priya@university.edu"`
	Password       string    `json:"-" db:"password_hash"` // hashed, excluded from JSON
	Role           Role      `json:"role" db:"role" example:"alumni"`
	GraduationYear *int      `json:"graduationYear,omitempty" db:"graduation_year" example:"2015"`
	Department     *string   `json:"department,omitempty" db:"department" example:"Computer Science"`
	Bio            *string   `json:"bio,omitempty" db:"bio"`
	Company        *string   `json:"company,omitempty" db:"company"`
	Position       *string   `json:"position,omitempty" db:"position"`
	Specialization *string   `json:"specialization,omitempty" db:"specialization"`
	Branch         *string   `json:"branch,omitempty" db:"branch"`
	LinkedinURL    *string   `json:"linkedinUrl,omitempty" db:"linkedin_url"`
	GithubURL      *string   `json:"githubUrl,omitempty" db:"github_url"`
	WebsiteURL     *string   `json:"websiteUrl,omitempty" db:"website_url"`
	Phone          *string   `json:"phone,omitempty" db:"phone"`
	Location       *string   `json:"location,omitempty" db:"location"`
	AvatarURL      *string   `json:"avatarUrl,omitempty" db:"avatar_url"`
	CVURL          *string   `json:"cvUrl,omitempty" db:"cv_url"`
	IsAvailable    bool      `json:"isAvailable" db:"is_available"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`

	// Child rows, loaded separately
	Skills       []string `json:"skills,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
	Languages    []string `json:"languages,omitempty"`
}
