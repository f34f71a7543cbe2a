package dto

import "github.com/alumconnect/backend/internal/app/models"

// ApplyRequest is the payload for applying to a project
type ApplyRequest struct {
	PositionID *int64 `json:"positionId,omitempty"`
	Message    string `json:"message"`
	HasTeam    bool   `json:"hasTeam"`
}

// CompleteApplicationRequest carries feedback when marking an accepted
// application as completed
type CompleteApplicationRequest struct {
	Feedback string `json:"feedback"`
}

// ApplicationResponse is an application joined with the parties involved
type ApplicationResponse struct {
	*models.ProjectApplication
	StudentName   string  `json:"studentName,omitempty"`
	StudentEmail  string  `json:"studentEmail,omitempty"`
	ProjectTitle  string  `json:"projectTitle,omitempty"`
	PositionTitle *string `json:"positionTitle,omitempty"`
}
