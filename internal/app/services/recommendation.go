package services

import (
	"sort"
	"strings"

	"github.com/alumconnect/backend/internal/app/models"
	"github.com/alumconnect/backend/internal/app/models/dto"
)

// Scoring weights for project recommendations
const (
	scoreSkillMatch          = 10
	scoreTagMatch            = 5
	scoreDepartmentMatch     = 3
	scoreSpecializationMatch = 2
	scoreBranchMatch         = 3
	scoreSkillInTitle        = 4
	scoreSkillInDescription  = 2
	fallbackLimit            = 10
)

func containsFold(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// matchEither reports whether either string contains the other,
// case-insensitively. "React" matches "React Native" and vice versa.
func matchEither(a, b string) bool {
	return containsFold(a, b) || containsFold(b, a)
}

// ScoreProject computes the relevance of a project for a student profile.
func ScoreProject(project *models.Project, student *models.User) int {
	score := 0

	// project-level and position-level required skills against student skills
	var required []string
	required = append(required, project.RequiredSkills...)
	for _, pos := range project.Positions {
		required = append(required, pos.RequiredSkills...)
	}
	for _, req := range required {
		for _, skill := range student.Skills {
			if matchEither(req, skill) {
				score += scoreSkillMatch
				break
			}
		}
	}

	for _, tag := range project.Tags {
		for _, skill := range student.Skills {
			if matchEither(tag, skill) {
				score += scoreTagMatch
				break
			}
		}
	}

	titleAndDesc := project.Title + " " + project.Description + " " + project.Category
	if student.Department != nil && containsFold(titleAndDesc, *student.Department) {
		score += scoreDepartmentMatch
	}
	if student.Specialization != nil && containsFold(titleAndDesc, *student.Specialization) {
		score += scoreSpecializationMatch
	}
	if student.Branch != nil && containsFold(titleAndDesc, *student.Branch) {
		score += scoreBranchMatch
	}

	for _, skill := range student.Skills {
		if containsFold(project.Title, skill) {
			score += scoreSkillInTitle
		}
		if containsFold(project.Description, skill) {
			score += scoreSkillInDescription
		}
	}

	return score
}

// RankProjects scores active projects for a student and returns them by
// descending score. Projects the student shows no affinity for are dropped;
// when nothing matches at all the most recent projects are returned instead
// so a fresh profile still sees something.
func RankProjects(projects []*models.Project, student *models.User) []*dto.RecommendedProject {
	scored := make([]*dto.RecommendedProject, 0, len(projects))
	for _, p := range projects {
		if score := ScoreProject(p, student); score > 0 {
			scored = append(scored, &dto.RecommendedProject{Project: p, Score: score})
		}
	}

	if len(scored) == 0 {
		// input arrives newest first
		limit := fallbackLimit
		if len(projects) < limit {
			limit = len(projects)
		}
		for _, p := range projects[:limit] {
			scored = append(scored, &dto.RecommendedProject{Project: p, Score: 0})
		}
		return scored
	}

	// stable keeps the newest-first order among equal scores
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}
