package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alumconnect/backend/internal/app/models"
)

func strPtr(s string) *string { return &s }

func TestMatchEither(t *testing.T) {
	assert.True(t, matchEither("React", "React Native"))
	assert.True(t, matchEither("React Native", "React"))
	assert.True(t, matchEither("golang", "GoLang"))
	assert.False(t, matchEither("Python", "Rust"))
	assert.False(t, matchEither("", ""))
	assert.False(t, matchEither("Go", ""))
}

func TestScoreProjectSkillMatch(t *testing.T) {
	project := &models.Project{
		Title:          "Campus Portal",
		Description:    "A portal for campus services",
		Category:       "Web",
		RequiredSkills: []string{"React"},
	}
	student := &models.User{Skills: []string{"React Native"}}

	assert.Equal(t, scoreSkillMatch, ScoreProject(project, student))
}

func TestScoreProjectPositionSkills(t *testing.T) {
	// position-level required skills count the same as project-level ones
	project := &models.Project{
		Title:       "Campus Portal",
		Description: "A portal for campus services",
		Category:    "Web",
		Positions: []models.ProjectPosition{
			{Title: "Backend Developer", RequiredSkills: []string{"PostgreSQL"}},
		},
	}
	student := &models.User{Skills: []string{"postgresql"}}

	assert.Equal(t, scoreSkillMatch, ScoreProject(project, student))
}

func TestScoreProjectTagMatch(t *testing.T) {
	project := &models.Project{
		Title:       "Campus Portal",
		Description: "A portal for campus services",
		Category:    "Web",
		Tags:        []string{"ml"},
	}
	student := &models.User{Skills: []string{"ML"}}

	assert.Equal(t, scoreTagMatch, ScoreProject(project, student))
}

func TestScoreProjectProfileFields(t *testing.T) {
	project := &models.Project{
		Title:       "Computer Science tutoring platform",
		Description: "Helping undergraduates",
		Category:    "Education",
	}
	student := &models.User{
		Department:     strPtr("Computer Science"),
		Specialization: strPtr("tutoring"),
		Branch:         strPtr("undergraduates"),
	}

	expected := scoreDepartmentMatch + scoreSpecializationMatch + scoreBranchMatch
	assert.Equal(t, expected, ScoreProject(project, student))
}

func TestScoreProjectSkillInTitleAndDescription(t *testing.T) {
	project := &models.Project{
		Title:       "Kubernetes operator",
		Description: "Build a Kubernetes controller",
		Category:    "Infrastructure",
	}
	student := &models.User{Skills: []string{"Kubernetes"}}

	assert.Equal(t, scoreSkillInTitle+scoreSkillInDescription, ScoreProject(project, student))
}

func TestScoreProjectNoAffinity(t *testing.T) {
	project := &models.Project{
		Title:          "Bridge inspection drone",
		Description:    "Aerial imaging of civil structures",
		Category:       "Robotics",
		RequiredSkills: []string{"Embedded C"},
	}
	student := &models.User{Skills: []string{"Figma"}}

	assert.Zero(t, ScoreProject(project, student))
}

func TestRankProjectsOrdersByScore(t *testing.T) {
	student := &models.User{Skills: []string{"Go"}}
	weak := &models.Project{ID: 1, Title: "Notes app", Description: "Plain CRUD in Go", Category: "Web"}
	strong := &models.Project{
		ID:             2,
		Title:          "Go scheduler",
		Description:    "Distributed job runner in Go",
		Category:       "Infrastructure",
		RequiredSkills: []string{"Go"},
	}
	unrelated := &models.Project{ID: 3, Title: "Mural painting", Description: "Art on campus walls", Category: "Art"}

	ranked := RankProjects([]*models.Project{weak, strong, unrelated}, student)

	require.Len(t, ranked, 2)
	assert.Equal(t, int64(2), ranked[0].Project.ID)
	assert.Equal(t, int64(1), ranked[1].Project.ID)
	assert.Greater(t, ranked[0].Score, ranked[1].Score)
}

func TestRankProjectsStableAmongTies(t *testing.T) {
	student := &models.User{Skills: []string{"Go"}}
	newest := &models.Project{ID: 5, Title: "Go linter", Description: "x", Category: "Tools"}
	older := &models.Project{ID: 4, Title: "Go formatter", Description: "x", Category: "Tools"}

	// equal scores keep the incoming newest-first order
	ranked := RankProjects([]*models.Project{newest, older}, student)

	require.Len(t, ranked, 2)
	assert.Equal(t, int64(5), ranked[0].Project.ID)
	assert.Equal(t, int64(4), ranked[1].Project.ID)
}

func TestRankProjectsFallback(t *testing.T) {
	student := &models.User{Skills: []string{"Figma"}}

	var projects []*models.Project
	for i := int64(1); i <= 15; i++ {
		projects = append(projects, &models.Project{
			ID:          i,
			Title:       "Bridge inspection",
			Description: "Aerial imaging",
			Category:    "Robotics",
		})
	}

	ranked := RankProjects(projects, student)

	require.Len(t, ranked, fallbackLimit)
	for i, r := range ranked {
		assert.Zero(t, r.Score)
		assert.Equal(t, projects[i].ID, r.Project.ID)
	}
}

func TestRankProjectsEmptyInput(t *testing.T) {
	ranked := RankProjects(nil, &models.User{})
	assert.Empty(t, ranked)
}
