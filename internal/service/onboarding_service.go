package service

import (
	"time"

	"github.com/google/uuid"

	"studyquest/internal/catalog"
	"studyquest/internal/models"
	"studyquest/internal/storage"
	"studyquest/internal/validation"
)

var validEducationLevels = map[string]bool{
	models.EducationFundamental: true,
	models.EducationMedio:       true,
	models.EducationSuperior:    true,
	models.EducationTecnico:     true,
}

var validLearningStyles = map[string]bool{
	models.StyleVisual:      true,
	models.StyleAuditivo:    true,
	models.StyleCinestesico: true,
	models.StyleLeitura:     true,
}

var validDifficulties = map[string]bool{
	models.DifficultyTDAH:      true,
	models.DifficultyDislexia:  true,
	models.DifficultyAnsiedade: true,
	models.DifficultyNenhuma:   true,
	models.DifficultyOutra:     true,
}

// OnboardingInput carries the answers collected by the onboarding wizard.
type OnboardingInput struct {
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Age              int      `json:"age"`
	EducationLevel   string   `json:"educationLevel"`
	LearningStyles   []string `json:"learningStyles"`
	Difficulties     []string `json:"difficulties"`
	OtherDifficulty  string   `json:"otherDifficulty"`
	FavoriteSubjects []string `json:"favoriteSubjects"`
	StudyGoals       string   `json:"studyGoals"`
}

// OnboardingService creates the initial application state when the
// onboarding wizard completes: the user profile, a fresh stats record, one
// progress record per catalog subject, and the onboarding flag.
type OnboardingService struct {
	store storage.Store
}

// NewOnboardingService creates a new onboarding service
func NewOnboardingService(store storage.Store) *OnboardingService {
	return &OnboardingService{store: store}
}

// Validate checks the wizard input the same way each wizard step gates
// progression: steps with missing or out-of-range answers are rejected.
func (s *OnboardingService) Validate(input OnboardingInput) error {
	// Step 1: identity
	if err := validation.ValidateName(input.Name); err != nil {
		return err
	}
	if err := validation.ValidateEmail(input.Email); err != nil {
		return err
	}
	if err := validation.ValidateAge(input.Age); err != nil {
		return err
	}

	// Step 2: education level and learning styles
	if !validEducationLevels[input.EducationLevel] {
		return validation.ValidationError{Field: "educationLevel", Message: "unknown education level"}
	}
	if len(input.LearningStyles) == 0 {
		return validation.ValidationError{Field: "learningStyles", Message: "select at least one learning style"}
	}
	for _, style := range input.LearningStyles {
		if !validLearningStyles[style] {
			return validation.ValidationError{Field: "learningStyles", Message: "unknown learning style: " + style}
		}
	}

	// Step 3: difficulties
	if len(input.Difficulties) == 0 {
		return validation.ValidationError{Field: "difficulties", Message: "select at least one option"}
	}
	for _, difficulty := range input.Difficulties {
		if !validDifficulties[difficulty] {
			return validation.ValidationError{Field: "difficulties", Message: "unknown difficulty: " + difficulty}
		}
	}

	// Step 4: favorite subjects and goals
	if len(input.FavoriteSubjects) == 0 {
		return validation.ValidationError{Field: "favoriteSubjects", Message: "select at least one subject"}
	}
	for _, subjectID := range input.FavoriteSubjects {
		if _, found := catalog.SubjectByID(subjectID); !found {
			return validation.ValidationError{Field: "favoriteSubjects", Message: "unknown subject: " + subjectID}
		}
	}
	if input.StudyGoals == "" {
		return validation.ValidationError{Field: "studyGoals", Message: "study goals are required"}
	}

	return nil
}

// Complete validates the wizard input and creates the full initial state.
func (s *OnboardingService) Complete(input OnboardingInput) (models.UserProfile, error) {
	if err := s.Validate(input); err != nil {
		return models.UserProfile{}, err
	}

	now := time.Now()
	profile := models.UserProfile{
		ID:               uuid.New().String(),
		Name:             input.Name,
		Email:            input.Email,
		Age:              input.Age,
		EducationLevel:   input.EducationLevel,
		LearningStyle:    input.LearningStyles,
		Difficulties:     input.Difficulties,
		FavoriteSubjects: input.FavoriteSubjects,
		StudyGoals:       input.StudyGoals,
		CreatedAt:        now,
	}
	// Free-text difficulty only applies together with the "outra" tag
	if profile.HasDifficulty(models.DifficultyOutra) {
		profile.OtherDifficulty = input.OtherDifficulty
	}

	s.store.SaveProfile(profile)
	s.store.InitializeStats(profile.ID)

	// Every subject starts at zero progress
	subjects := catalog.Subjects()
	progress := make([]models.StudyProgress, len(subjects))
	for i, subject := range subjects {
		progress[i] = models.StudyProgress{
			UserID:           profile.ID,
			SubjectID:        subject.ID,
			SubjectName:      subject.Name,
			Progress:         0,
			CompletedLessons: []string{},
			TotalLessons:     subject.TotalLessons,
			LastAccessed:     now,
		}
	}
	s.store.SaveProgress(progress)

	s.store.SetOnboardingCompleted(true)

	return profile, nil
}
