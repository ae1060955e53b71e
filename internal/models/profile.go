package models

import "time"

// Education levels supported by the onboarding wizard.
const (
	EducationFundamental = "fundamental"
	EducationMedio       = "medio"
	EducationSuperior    = "superior"
	EducationTecnico     = "tecnico"
)

// Learning styles a user can select (one or more).
const (
	StyleVisual      = "visual"
	StyleAuditivo    = "auditivo"
	StyleCinestesico = "cinestesico"
	StyleLeitura     = "leitura"
)

// Learning difficulty tags.
const (
	DifficultyTDAH      = "tdah"
	DifficultyDislexia  = "dislexia"
	DifficultyAnsiedade = "ansiedade"
	DifficultyNenhuma   = "nenhuma"
	DifficultyOutra     = "outra"
)

// UserProfile is the single user's profile, created once when onboarding
// completes and overwritten wholesale on settings save.
type UserProfile struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Age              int       `json:"age"`
	EducationLevel   string    `json:"educationLevel"`
	LearningStyle    []string  `json:"learningStyle"`
	Difficulties     []string  `json:"difficulties"`
	OtherDifficulty  string    `json:"otherDifficulty,omitempty"`
	FavoriteSubjects []string  `json:"favoriteSubjects"`
	StudyGoals       string    `json:"studyGoals"`
	CreatedAt        time.Time `json:"createdAt"`
}

// HasDifficulty reports whether the profile lists the given difficulty tag.
func (p *UserProfile) HasDifficulty(tag string) bool {
	for _, d := range p.Difficulties {
		if d == tag {
			return true
		}
	}
	return false
}

// EffectiveOtherDifficulty returns the free-text difficulty description,
// which is only meaningful when the "outra" tag is selected.
func (p *UserProfile) EffectiveOtherDifficulty() string {
	if p.HasDifficulty(DifficultyOutra) {
		return p.OtherDifficulty
	}
	return ""
}
