package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        *UserRepository
	ProjectRepository     *ProjectRepository
	ApplicationRepository *ApplicationRepository
	MentorshipRepository  *MentorshipRepository
	BlogRepository        *BlogRepository
	MessageRepository     *MessageRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		ProjectRepository:     NewProjectRepository(db),
		ApplicationRepository: NewApplicationRepository(db),
		MentorshipRepository:  NewMentorshipRepository(db),
		BlogRepository:        NewBlogRepository(db),
		MessageRepository:     NewMessageRepository(db),
	}
}
