package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alumconnect/backend/internal/app/models"
)

func TestApplicationResponsesForStudent(t *testing.T) {
	posID := int64(5)
	apps := []*models.ProjectApplication{
		{
			ID: 1, ProjectID: 3, StudentID: 9, PositionID: &posID,
			Project:  &models.Project{ID: 3, Title: "Campus Navigator"},
			Position: &models.ProjectPosition{ID: 5, ProjectID: 3, Title: "Backend Developer"},
		},
		{
			ID: 2, ProjectID: 4, StudentID: 9,
			Project: &models.Project{ID: 4, Title: "Alumni Atlas"},
		},
	}

	responses := applicationResponses(apps)
	require.Len(t, responses, 2)

	assert.Equal(t, "Campus Navigator", responses[0].ProjectTitle)
	require.NotNil(t, responses[0].PositionTitle)
	assert.Equal(t, "Backend Developer", *responses[0].PositionTitle)

	assert.Equal(t, "Alumni Atlas", responses[1].ProjectTitle)
	assert.Nil(t, responses[1].PositionTitle, "general applications have no position title")
}

func TestApplicationResponsesForOwner(t *testing.T) {
	apps := []*models.ProjectApplication{
		{
			ID: 1, ProjectID: 3, StudentID: 9,
			Student: &models.User{ID: 9, Name: "Demo Student", Email: "student@alumconnect.app"},
		},
	}

	responses := applicationResponses(apps)
	require.Len(t, responses, 1)
	assert.Equal(t, "Demo Student", responses[0].StudentName)
	assert.Equal(t, "student@alumconnect.app", responses[0].StudentEmail)
}
