package service

import (
	"testing"

	"studyquest/internal/catalog"
	"studyquest/internal/models"
	"studyquest/internal/storage"
)

func newTestStore() storage.Store {
	return storage.New(storage.NewMemoryBackend())
}

func validOnboardingInput() OnboardingInput {
	return OnboardingInput{
		Name:             "Ana",
		Email:            "ana@example.com",
		Age:              16,
		EducationLevel:   models.EducationMedio,
		LearningStyles:   []string{models.StyleVisual},
		Difficulties:     []string{models.DifficultyNenhuma},
		FavoriteSubjects: []string{"matematica", "ciencias"},
		StudyGoals:       "Passar no vestibular",
	}
}

// onboardUser completes onboarding and returns the created profile.
func onboardUser(t *testing.T, store storage.Store) models.UserProfile {
	t.Helper()
	profile, err := NewOnboardingService(store).Complete(validOnboardingInput())
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	return profile
}

func TestOnboardingComplete(t *testing.T) {
	store := newTestStore()
	profile := onboardUser(t, store)

	if profile.ID == "" {
		t.Error("profile ID should be generated")
	}
	if profile.Name != "Ana" {
		t.Errorf("profile name = %q, want Ana", profile.Name)
	}

	saved, found := store.Profile()
	if !found {
		t.Fatal("profile should be persisted")
	}
	if saved.ID != profile.ID {
		t.Errorf("persisted profile ID = %q, want %q", saved.ID, profile.ID)
	}

	stats, found := store.Stats()
	if !found {
		t.Fatal("stats should be initialized")
	}
	if stats.TotalPoints != 0 || stats.Level != 1 || stats.FriendsInvited != 0 {
		t.Errorf("fresh stats = %+v, want zero points, level 1", stats)
	}

	progress := store.Progress()
	if len(progress) != len(catalog.Subjects()) {
		t.Fatalf("progress records = %d, want one per subject (%d)", len(progress), len(catalog.Subjects()))
	}
	for _, record := range progress {
		if record.Progress != 0 || len(record.CompletedLessons) != 0 {
			t.Errorf("subject %s should start at zero progress, got %+v", record.SubjectID, record)
		}
		if record.UserID != profile.ID {
			t.Errorf("subject %s has user %q, want %q", record.SubjectID, record.UserID, profile.ID)
		}
	}

	if !store.OnboardingCompleted() {
		t.Error("onboarding flag should be set")
	}
}

func TestOnboardingOtherDifficulty(t *testing.T) {
	store := newTestStore()
	svc := NewOnboardingService(store)

	input := validOnboardingInput()
	input.Difficulties = []string{models.DifficultyOutra}
	input.OtherDifficulty = "Discalculia"
	profile, err := svc.Complete(input)
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if profile.OtherDifficulty != "Discalculia" {
		t.Errorf("OtherDifficulty = %q, want Discalculia", profile.OtherDifficulty)
	}

	// Free text is discarded when "outra" was not selected
	input = validOnboardingInput()
	input.OtherDifficulty = "Discalculia"
	profile, err = svc.Complete(input)
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if profile.OtherDifficulty != "" {
		t.Errorf("OtherDifficulty = %q, want empty without outra tag", profile.OtherDifficulty)
	}
}

func TestOnboardingValidate(t *testing.T) {
	svc := NewOnboardingService(newTestStore())

	tests := []struct {
		name   string
		mutate func(*OnboardingInput)
	}{
		{"short name", func(in *OnboardingInput) { in.Name = "A" }},
		{"bad email", func(in *OnboardingInput) { in.Email = "not-an-email" }},
		{"zero age", func(in *OnboardingInput) { in.Age = 0 }},
		{"unknown education level", func(in *OnboardingInput) { in.EducationLevel = "doutorado" }},
		{"no learning styles", func(in *OnboardingInput) { in.LearningStyles = nil }},
		{"unknown learning style", func(in *OnboardingInput) { in.LearningStyles = []string{"telepatia"} }},
		{"no difficulties", func(in *OnboardingInput) { in.Difficulties = nil }},
		{"unknown difficulty", func(in *OnboardingInput) { in.Difficulties = []string{"x"} }},
		{"no favorite subjects", func(in *OnboardingInput) { in.FavoriteSubjects = nil }},
		{"unknown subject", func(in *OnboardingInput) { in.FavoriteSubjects = []string{"astrologia"} }},
		{"empty goals", func(in *OnboardingInput) { in.StudyGoals = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validOnboardingInput()
			tt.mutate(&input)
			if err := svc.Validate(input); err == nil {
				t.Error("Validate() should reject input")
			}
		})
	}

	if err := svc.Validate(validOnboardingInput()); err != nil {
		t.Errorf("Validate() rejected valid input: %v", err)
	}
}
