package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"studyquest/internal/catalog"
	"studyquest/internal/progression"
	"studyquest/internal/storage"
)

// newFixedQuizService returns a quiz service whose question order and clock
// are deterministic.
func newFixedQuizService(store storage.Store, now time.Time) *QuizService {
	svc := NewQuizService(store)
	svc.shuffle = func(n int, swap func(i, j int)) {}
	svc.now = func() time.Time { return now }
	return svc
}

// answerAll plays the whole round, answering every question correctly when
// correct is true and always choosing a wrong option otherwise.
func answerAll(t *testing.T, svc *QuizService, userID string, correct bool) QuizResult {
	t.Helper()
	var result QuizResult
	for i := 0; i < progression.QuizQuestionCount; i++ {
		state, err := svc.Current(userID)
		if err != nil {
			t.Fatalf("Current() error = %v", err)
		}
		// The state hides the answer; recover it from the catalog by ID
		answer := -1
		for _, q := range catalog.QuestionsForSubject(state.SubjectID) {
			if q.ID == state.Question.ID {
				answer = q.CorrectAnswer
			}
		}
		if answer < 0 {
			t.Fatalf("question %s not found in catalog", state.Question.ID)
		}
		if !correct {
			answer = (answer + 1) % len(state.Question.Options)
		}
		result, err = svc.Answer(userID, answer)
		if err != nil {
			t.Fatalf("Answer() error = %v", err)
		}
	}
	return result
}

func TestQuizPerfectRound(t *testing.T) {
	store := newTestStore()
	profile := onboardUser(t, store)
	now := time.UnixMilli(1700000000000)
	svc := newFixedQuizService(store, now)

	state, err := svc.Start(profile.ID, "matematica")
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if state.TotalQuestions != progression.QuizQuestionCount {
		t.Errorf("round size = %d, want %d", state.TotalQuestions, progression.QuizQuestionCount)
	}
	if state.QuestionNumber != 1 || state.Score != 0 {
		t.Errorf("fresh round state = %+v", state)
	}
	if state.Question.CorrectAnswer != -1 {
		t.Error("state must not reveal the correct answer")
	}

	result := answerAll(t, svc, profile.ID, true)
	if !result.Finished {
		t.Fatal("last answer should finish the round")
	}
	if result.Score != progression.QuizQuestionCount {
		t.Errorf("perfect score = %d, want %d", result.Score, progression.QuizQuestionCount)
	}
	wantPoints := progression.QuizPoints(progression.QuizQuestionCount)
	if result.PointsEarned != wantPoints {
		t.Errorf("points earned = %d, want %d", result.PointsEarned, wantPoints)
	}
	wantGameID := fmt.Sprintf("quiz-matematica-%d", now.UnixMilli())
	if result.GameID != wantGameID {
		t.Errorf("game ID = %q, want %q", result.GameID, wantGameID)
	}

	scores := store.GameScores()
	if len(scores) != 1 {
		t.Fatalf("score log entries = %d, want 1", len(scores))
	}
	if scores[0].GameID != wantGameID || scores[0].Score != progression.QuizQuestionCount || scores[0].Points != wantPoints {
		t.Errorf("logged score = %+v", scores[0])
	}

	stats, _ := store.Stats()
	if stats.TotalPoints != wantPoints {
		t.Errorf("total points = %d, want %d (credited exactly once)", stats.TotalPoints, wantPoints)
	}

	// The round is gone once finished
	if _, err := svc.Current(profile.ID); !errors.Is(err, ErrNoActiveQuiz) {
		t.Errorf("Current() after finish error = %v, want ErrNoActiveQuiz", err)
	}
	if _, err := svc.Answer(profile.ID, 0); !errors.Is(err, ErrNoActiveQuiz) {
		t.Errorf("Answer() after finish error = %v, want ErrNoActiveQuiz", err)
	}
}

func TestQuizZeroScoreRound(t *testing.T) {
	store := newTestStore()
	profile := onboardUser(t, store)
	svc := newFixedQuizService(store, time.UnixMilli(1700000000000))

	if _, err := svc.Start(profile.ID, "ciencias"); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	result := answerAll(t, svc, profile.ID, false)
	if result.Score != 0 || result.PointsEarned != 0 {
		t.Errorf("all-wrong round result = %+v, want zero score and points", result)
	}

	// A zero-score round is still logged
	if len(store.GameScores()) != 1 {
		t.Errorf("score log entries = %d, want 1", len(store.GameScores()))
	}
	stats, _ := store.Stats()
	if stats.TotalPoints != 0 {
		t.Errorf("total points = %d, want 0", stats.TotalPoints)
	}
}

func TestQuizExitDiscardsRound(t *testing.T) {
	store := newTestStore()
	profile := onboardUser(t, store)
	svc := newFixedQuizService(store, time.UnixMilli(1700000000000))

	if _, err := svc.Start(profile.ID, "historia"); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if _, err := svc.Answer(profile.ID, 0); err != nil {
		t.Fatalf("Answer() error = %v", err)
	}
	svc.Exit(profile.ID)

	if _, err := svc.Current(profile.ID); !errors.Is(err, ErrNoActiveQuiz) {
		t.Errorf("Current() after exit error = %v, want ErrNoActiveQuiz", err)
	}
	if len(store.GameScores()) != 0 {
		t.Error("abandoned round must not be logged")
	}
	stats, _ := store.Stats()
	if stats.TotalPoints != 0 {
		t.Error("abandoned round must not earn points")
	}
}

func TestQuizStartReplacesRunningRound(t *testing.T) {
	store := newTestStore()
	profile := onboardUser(t, store)
	svc := newFixedQuizService(store, time.UnixMilli(1700000000000))

	if _, err := svc.Start(profile.ID, "matematica"); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if _, err := svc.Answer(profile.ID, 0); err != nil {
		t.Fatalf("Answer() error = %v", err)
	}

	state, err := svc.Start(profile.ID, "geografia")
	if err != nil {
		t.Fatalf("second Start() error = %v", err)
	}
	if state.SubjectID != "geografia" || state.QuestionNumber != 1 || state.Score != 0 {
		t.Errorf("replaced round state = %+v", state)
	}
}

func TestQuizAnswerValidation(t *testing.T) {
	store := newTestStore()
	profile := onboardUser(t, store)
	svc := newFixedQuizService(store, time.UnixMilli(1700000000000))

	if _, err := svc.Start(profile.ID, "ingles"); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if _, err := svc.Answer(profile.ID, -1); !errors.Is(err, ErrAnswerOutOfRange) {
		t.Errorf("negative answer error = %v, want ErrAnswerOutOfRange", err)
	}
	if _, err := svc.Answer(profile.ID, 99); !errors.Is(err, ErrAnswerOutOfRange) {
		t.Errorf("oversized answer error = %v, want ErrAnswerOutOfRange", err)
	}

	if _, err := svc.Start(profile.ID, "astrologia"); !errors.Is(err, ErrUnknownSubject) {
		t.Errorf("unknown subject error = %v, want ErrUnknownSubject", err)
	}
}
