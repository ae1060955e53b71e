package service

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"studyquest/internal/catalog"
	"studyquest/internal/models"
	"studyquest/internal/progression"
	"studyquest/internal/storage"
)

var (
	// ErrNoActiveQuiz is returned when answering or inspecting a quiz that
	// was never started or already finished.
	ErrNoActiveQuiz = errors.New("no active quiz session")
	// ErrQuizFinished is returned when answering a quiz whose questions ran out.
	ErrQuizFinished = errors.New("quiz already finished")
	// ErrAnswerOutOfRange is returned for an answer index outside the options.
	ErrAnswerOutOfRange = errors.New("answer index out of range")
	// ErrNotEnoughQuestions is returned when a subject cannot fill a round.
	ErrNotEnoughQuestions = errors.New("not enough questions for subject")
)

// QuizState describes a running quiz round as seen by the player: the
// current question, position, and score so far. Answer indexes are never
// revealed through it.
type QuizState struct {
	SubjectID      string          `json:"subjectId"`
	SubjectName    string          `json:"subjectName"`
	Question       models.Question `json:"question"`
	QuestionNumber int             `json:"questionNumber"`
	TotalQuestions int             `json:"totalQuestions"`
	Score          int             `json:"score"`
	Finished       bool            `json:"finished"`
}

// QuizResult is returned after each answer.
type QuizResult struct {
	Correct       bool   `json:"correct"`
	CorrectAnswer int    `json:"correctAnswer"`
	Score         int    `json:"score"`
	Finished      bool   `json:"finished"`
	PointsEarned  int    `json:"pointsEarned,omitempty"`
	GameID        string `json:"gameId,omitempty"`
}

type quizSession struct {
	subject   models.Subject
	questions []models.Question
	current   int
	score     int
}

// QuizService runs quiz rounds. Sessions live in memory only; nothing is
// persisted until a round finishes, and an abandoned round leaves no trace.
type QuizService struct {
	store    storage.Store
	mu       sync.Mutex
	sessions map[string]*quizSession
	now      func() time.Time
	shuffle  func(n int, swap func(i, j int))
}

// NewQuizService creates a new quiz service
func NewQuizService(store storage.Store) *QuizService {
	return &QuizService{
		store:    store,
		sessions: make(map[string]*quizSession),
		now:      time.Now,
		shuffle:  rand.Shuffle,
	}
}

// Start begins a new quiz round for the user, replacing any round already
// in progress for them.
func (s *QuizService) Start(userID, subjectID string) (QuizState, error) {
	subject, found := catalog.SubjectByID(subjectID)
	if !found {
		return QuizState{}, ErrUnknownSubject
	}

	pool := catalog.QuestionsForSubject(subjectID)
	if len(pool) < progression.QuizQuestionCount {
		return QuizState{}, fmt.Errorf("%w: %s", ErrNotEnoughQuestions, subjectID)
	}

	questions := make([]models.Question, len(pool))
	copy(questions, pool)
	s.shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	questions = questions[:progression.QuizQuestionCount]

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = &quizSession{
		subject:   subject,
		questions: questions,
	}
	return s.stateLocked(s.sessions[userID]), nil
}

// Current returns the state of the user's running quiz round.
func (s *QuizService) Current(userID string) (QuizState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, found := s.sessions[userID]
	if !found {
		return QuizState{}, ErrNoActiveQuiz
	}
	return s.stateLocked(session), nil
}

// Answer records the user's answer to the current question. When the round
// finishes, the score is persisted as a game record and the earned points
// are credited, exactly once.
func (s *QuizService) Answer(userID string, answer int) (QuizResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, found := s.sessions[userID]
	if !found {
		return QuizResult{}, ErrNoActiveQuiz
	}
	if session.current >= len(session.questions) {
		return QuizResult{}, ErrQuizFinished
	}

	question := session.questions[session.current]
	if answer < 0 || answer >= len(question.Options) {
		return QuizResult{}, ErrAnswerOutOfRange
	}

	result := QuizResult{
		Correct:       answer == question.CorrectAnswer,
		CorrectAnswer: question.CorrectAnswer,
	}
	if result.Correct {
		session.score++
	}
	session.current++
	result.Score = session.score

	if session.current == len(session.questions) {
		result.Finished = true
		result.PointsEarned = progression.QuizPoints(session.score)
		result.GameID = s.finishLocked(userID, session)
	}

	return result, nil
}

// Exit abandons the user's running round without recording anything.
func (s *QuizService) Exit(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

func (s *QuizService) stateLocked(session *quizSession) QuizState {
	state := QuizState{
		SubjectID:      session.subject.ID,
		SubjectName:    session.subject.Name,
		QuestionNumber: session.current + 1,
		TotalQuestions: len(session.questions),
		Score:          session.score,
	}
	if session.current >= len(session.questions) {
		state.Finished = true
		state.QuestionNumber = len(session.questions)
		return state
	}
	// Strip the answer before handing the question to the player
	question := session.questions[session.current]
	question.CorrectAnswer = -1
	state.Question = question
	return state
}

// finishLocked persists the finished round and credits its points. Must be
// called with the mutex held.
func (s *QuizService) finishLocked(userID string, session *quizSession) string {
	points := progression.QuizPoints(session.score)
	gameID := fmt.Sprintf("quiz-%s-%d", session.subject.ID, s.now().UnixMilli())
	s.store.AppendGameScore(models.GameScore{
		UserID:      userID,
		GameID:      gameID,
		GameName:    fmt.Sprintf("Quiz de %s", session.subject.Name),
		Score:       session.score,
		Points:      points,
		CompletedAt: s.now(),
	})

	if points > 0 {
		if stats, found := s.store.Stats(); found {
			s.store.SaveStats(progression.AddPoints(stats, points))
		}
	}

	delete(s.sessions, userID)
	return gameID
}
