package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleIsValid(t *testing.T) {
	assert.True(t, RoleStudent.IsValid())
	assert.True(t, RoleAlumni.IsValid())
	assert.False(t, Role("admin").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestProjectStatusIsValid(t *testing.T) {
	assert.True(t, ProjectActive.IsValid())
	assert.True(t, ProjectCompleted.IsValid())
	assert.True(t, ProjectPaused.IsValid())
	assert.False(t, ProjectStatus("archived").IsValid())
}
