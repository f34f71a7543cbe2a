package dto

import "github.com/alumconnect/backend/internal/app/models"

// PositionPayload describes a position within a create/update project request.
// An ID marks an existing position to update in place; without one a new
// position is inserted.
type PositionPayload struct {
	ID             *int64   `json:"id,omitempty"`
	Title          string   `json:"title" binding:"required"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"requiredSkills"`
	Count          int      `json:"count" binding:"required,min=1"`
}

// CreateProjectRequest is the payload for project creation (alumni only)
type CreateProjectRequest struct {
	Title          string            `json:"title" binding:"required"`
	Description    string            `json:"description" binding:"required"`
	Category       string            `json:"category" binding:"required"`
	Status         *string           `json:"status,omitempty" enums:"active,completed,paused"`
	TeamMembers    []string          `json:"teamMembers"`
	Tags           []string          `json:"tags"`
	RequiredSkills []string          `json:"requiredSkills"`
	Links          []string          `json:"links"`
	Funding        *string           `json:"funding,omitempty"`
	Partners       *string           `json:"partners,omitempty"`
	Highlights     *string           `json:"highlights,omitempty"`
	IsRecruiting   *bool             `json:"isRecruiting,omitempty"`
	Positions      []PositionPayload `json:"positions"`
}

// UpdateProjectRequest is a partial project update; nil fields are left unchanged
type UpdateProjectRequest struct {
	Title          *string           `json:"title,omitempty"`
	Description    *string           `json:"description,omitempty"`
	Category       *string           `json:"category,omitempty"`
	Status         *string           `json:"status,omitempty"`
	TeamMembers    []string          `json:"teamMembers,omitempty"`
	Tags           []string          `json:"tags,omitempty"`
	RequiredSkills []string          `json:"requiredSkills,omitempty"`
	Links          []string          `json:"links,omitempty"`
	Funding        *string           `json:"funding,omitempty"`
	Partners       *string           `json:"partners,omitempty"`
	Highlights     *string           `json:"highlights,omitempty"`
	IsRecruiting   *bool             `json:"isRecruiting,omitempty"`
	Positions      []PositionPayload `json:"positions,omitempty"`
}

// ProjectResponse is a project annotated with caller-specific state
type ProjectResponse struct {
	*models.Project
	CreatedByName string `json:"createdByName,omitempty"`
	HasApplied    bool   `json:"hasApplied"`
}

// RecommendedProject is a project with its relevance score
type RecommendedProject struct {
	*models.Project
	Score int `json:"score"`
}

// ProjectFilter holds query-time filters for the project list
type ProjectFilter struct {
	Category      *string
	Status        *string
	AvailableOnly bool
}
