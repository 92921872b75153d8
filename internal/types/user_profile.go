package types

// UserProfile is the candidate's ground-truth document, loaded once at process
// start. Generated content must only use facts present here.
type UserProfile struct {
	PersonalInfo    PersonalInfo      `json:"personal_info" validate:"required"`
	Skills          SkillSet          `json:"skills"`
	Experience      []ExperienceEntry `json:"experience" validate:"required,min=1,dive"`
	Education       []EducationEntry  `json:"education,omitempty"`
	KeyAchievements []string          `json:"key_achievements,omitempty"`
}

// PersonalInfo holds the candidate's contact details.
type PersonalInfo struct {
	Name     string `json:"name" validate:"required"`
	Title    string `json:"title,omitempty"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Location string `json:"location,omitempty"`
}

// SkillSet separates technical from business skills.
type SkillSet struct {
	Technical []string `json:"technical,omitempty"`
	Business  []string `json:"business,omitempty"`
}

// ExperienceEntry is one role in the candidate's work history.
type ExperienceEntry struct {
	Role       string   `json:"role" validate:"required"`
	Company    string   `json:"company" validate:"required"`
	Duration   string   `json:"duration,omitempty"`
	Location   string   `json:"location,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
}

// EducationEntry is one degree or certification.
type EducationEntry struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree,omitempty"`
	Year        string `json:"year,omitempty"`
}

// RecentExperience returns the most recent n roles. The profile lists
// experience newest-first, so this is a simple prefix slice.
func (p *UserProfile) RecentExperience(n int) []ExperienceEntry {
	if n >= len(p.Experience) {
		return p.Experience
	}
	return p.Experience[:n]
}

// TopAchievements returns at most n key achievements.
func (p *UserProfile) TopAchievements(n int) []string {
	if n >= len(p.KeyAchievements) {
		return p.KeyAchievements
	}
	return p.KeyAchievements[:n]
}
