package dto

// UpdateProfileRequest is a partial profile update; nil fields are left unchanged.
// Skills, achievements and languages are replaced wholesale when present.
type UpdateProfileRequest struct {
	Name           *string  `json:"name,omitempty"`
	Bio            *string  `json:"bio,omitempty"`
	Company        *string  `json:"company,omitempty"`
	Position       *string  `json:"position,omitempty"`
	GraduationYear *int     `json:"graduationYear,omitempty"`
	Department     *string  `json:"department,omitempty"`
	Specialization *string  `json:"specialization,omitempty"`
	Branch         *string  `json:"branch,omitempty"`
	LinkedinURL    *string  `json:"linkedinUrl,omitempty"`
	GithubURL      *string  `json:"githubUrl,omitempty"`
	WebsiteURL     *string  `json:"websiteUrl,omitempty"`
	Phone          *string  `json:"phone,omitempty"`
	Location       *string  `json:"location,omitempty"`
	Skills         []string `json:"skills,omitempty"`
	Achievements   []string `json:"achievements,omitempty"`
	Languages      []string `json:"languages,omitempty"`
}

// UpdateAvailabilityRequest toggles the alumni availability flag
type UpdateAvailabilityRequest struct {
	IsAvailable bool `json:"isAvailable"`
}
