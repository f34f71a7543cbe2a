package models

import (
	"time"
)

// ApplicationStatus represents the state of an application or request
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusAccepted ApplicationStatus = "accepted"
	StatusDeclined ApplicationStatus = "declined"
)

// ProjectApplication defines a student's application to a project position
type ProjectApplication struct {
	ID          int64             `json:"id" db:"id"`
	ProjectID   int64             `json:"projectId" db:"project_id"`
	StudentID   int64             `json:"studentId" db:"student_id"`
	PositionID  *int64            `json:"positionId,omitempty" db:"position_id"`
	Message     string            `json:"message" db:"message"`
	Status      ApplicationStatus `json:"status" db:"status"`
	HasTeam     bool              `json:"hasTeam" db:"has_team"`
	IsCompleted bool              `json:"isCompleted" db:"is_completed"`
	CompletedAt *time.Time        `json:"completedAt,omitempty" db:"completed_at"`
	Feedback    *string           `json:"feedback,omitempty" db:"feedback"`
	CreatedAt   time.Time         `json:"createdAt" db:"created_at"`

	// Relations, no db tag
	Student  *User            `json:"student,omitempty"`
	Project  *Project         `json:"project,omitempty"`
	Position *ProjectPosition `json:"position,omitempty"`
}

// MentorshipRequest defines a student-to-alumni mentorship request
type MentorshipRequest struct {
	ID        int64             `json:"id" db:"id"`
	StudentID int64             `json:"studentId" db:"student_id"`
	AlumniID  int64             `json:"alumniId" db:"alumni_id"`
	Message   string            `json:"message" db:"message"`
	Status    ApplicationStatus `json:"status" db:"status"`
	CreatedAt time.Time         `json:"createdAt" db:"created_at"`

	// Relations, no db tag
	Student *User `json:"student,omitempty"`
	Alumni  *User `json:"alumni,omitempty"`
}
