package models

import (
	"time"
)

// ProjectStatus represents the lifecycle status of a project
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectPaused    ProjectStatus = "paused"
)

// IsValid reports whether the status is one of the known statuses
func (s ProjectStatus) IsValid() bool {
	return s == ProjectActive || s == ProjectCompleted || s == ProjectPaused
}

// Project defines the project model based on the 'projects' table
type Project struct {
	ID             int64         `json:"id" db:"id"`
	Title          string        `json:"title" db:"title"`
	Description    string        `json:"description" db:"description"`
	Category       string        `json:"category" db:"category"`
	Status         ProjectStatus `json:"status" db:"status"`
	CreatedBy      int64         `json:"createdBy" db:"created_by"`
	TeamMembers    []string      `json:"teamMembers" db:"team_members"`
	Tags           []string      `json:"tags" db:"tags"`
	RequiredSkills []string      `json:"requiredSkills" db:"required_skills"`
	Images         []string      `json:"images" db:"images"`
	Links          []string      `json:"links" db:"links"`
	JDFileURL      *string       `json:"jdFileUrl,omitempty" db:"jd_file_url"`
	Funding        *string       `json:"funding,omitempty" db:"funding"`
	Partners       *string       `json:"partners,omitempty" db:"partners"`
	Highlights     *string       `json:"highlights,omitempty" db:"highlights"`
	IsRecruiting   bool          `json:"isRecruiting" db:"is_recruiting"`
	CreatedAt      time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time     `json:"updatedAt" db:"updated_at"`

	// Relations, no db tag
	Owner     *User             `json:"owner,omitempty"`
	Positions []ProjectPosition `json:"positions,omitempty"`
}

// ProjectPosition defines a capacity-bounded role within a project
type ProjectPosition struct {
	ID             int64     `json:"id" db:"id"`
	ProjectID      int64     `json:"projectId" db:"project_id"`
	Title          string    `json:"title" db:"title"`
	Description    string    `json:"description" db:"description"`
	RequiredSkills []string  `json:"requiredSkills" db:"required_skills"`
	Count          int       `json:"count" db:"count"`
	FilledCount    int       `json:"filledCount" db:"filled_count"`
	IsActive       bool      `json:"isActive" db:"is_active"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}
