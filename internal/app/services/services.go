package services

// Services defined in this package:
// - AuthService: registration and login
// - UserService: profiles, availability and the alumni directory
// - ProjectService: project CRUD, positions and recommendations
// - ApplicationService: application lifecycle and position slots
// - MentorshipService: mentorship requests between students and alumni
// - BlogService: blog posts and likes
// - ChatService: conversations and direct messages
