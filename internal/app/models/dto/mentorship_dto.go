package dto

import "github.com/alumconnect/backend/internal/app/models"

// MentorshipRequestPayload is the payload for requesting mentorship
type MentorshipRequestPayload struct {
	AlumniID int64  `json:"alumniId" binding:"required"`
	Message  string `json:"message"`
}

// MentorshipRequestResponse is a request joined with the other party.
// Students see the alumni; alumni see the student.
type MentorshipRequestResponse struct {
	*models.MentorshipRequest
	OtherUserName  string `json:"otherUserName"`
	OtherUserEmail string `json:"otherUserEmail"`
}
