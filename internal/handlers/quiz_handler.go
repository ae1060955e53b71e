package handlers

import (
	"errors"
	"net/http"

	"studyquest/internal/service"
	"studyquest/internal/storage"
)

// QuizHandler serves the quiz round lifecycle.
type QuizHandler struct {
	quizService *service.QuizService
	store       storage.Store
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(quizService *service.QuizService, store storage.Store) *QuizHandler {
	return &QuizHandler{quizService: quizService, store: store}
}

// userID resolves the single local user. ok is false before onboarding.
func (h *QuizHandler) userID(w http.ResponseWriter) (string, bool) {
	profile, found := h.store.Profile()
	if !found {
		respondWithError(w, http.StatusForbidden, "onboarding not completed", "", nil)
		return "", false
	}
	return profile.ID, true
}

// StartQuiz begins a new round for the chosen subject.
func (h *QuizHandler) StartQuiz(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w)
	if !ok {
		return
	}

	state, err := h.quizService.Start(userID, r.PathValue("subjectId"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownSubject):
			respondWithError(w, http.StatusNotFound, "subject not found", "", nil)
		case errors.Is(err, service.ErrNotEnoughQuestions):
			respondWithError(w, http.StatusConflict, "subject has no quiz available", "quiz start failed", err)
		default:
			respondWithError(w, http.StatusInternalServerError, "failed to start quiz", "quiz start failed", err)
		}
		return
	}

	respondJSON(w, http.StatusCreated, state)
}

// CurrentQuiz returns the state of the running round.
func (h *QuizHandler) CurrentQuiz(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w)
	if !ok {
		return
	}

	state, err := h.quizService.Current(userID)
	if err != nil {
		respondWithError(w, http.StatusNotFound, "no quiz in progress", "", nil)
		return
	}

	respondJSON(w, http.StatusOK, state)
}

// AnswerQuiz submits an answer to the current question.
func (h *QuizHandler) AnswerQuiz(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w)
	if !ok {
		return
	}

	var body struct {
		Answer int `json:"answer"`
	}
	if err := decodeJSON(r, &body); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", "quiz answer decode failed", err)
		return
	}

	result, err := h.quizService.Answer(userID, body.Answer)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoActiveQuiz):
			respondWithError(w, http.StatusNotFound, "no quiz in progress", "", nil)
		case errors.Is(err, service.ErrAnswerOutOfRange):
			respondWithError(w, http.StatusBadRequest, "answer out of range", "", nil)
		case errors.Is(err, service.ErrQuizFinished):
			respondWithError(w, http.StatusConflict, "quiz already finished", "", nil)
		default:
			respondWithError(w, http.StatusInternalServerError, "failed to record answer", "quiz answer failed", err)
		}
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// ExitQuiz abandons the running round without recording a score.
func (h *QuizHandler) ExitQuiz(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w)
	if !ok {
		return
	}

	h.quizService.Exit(userID)
	respondJSON(w, http.StatusNoContent, nil)
}
