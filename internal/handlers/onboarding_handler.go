package handlers

import (
	"errors"
	"net/http"

	"studyquest/internal/service"
	"studyquest/internal/storage"
	"studyquest/internal/validation"
)

// OnboardingHandler serves the onboarding wizard endpoints.
type OnboardingHandler struct {
	onboardingService *service.OnboardingService
	store             storage.Store
}

// NewOnboardingHandler creates a new onboarding handler
func NewOnboardingHandler(onboardingService *service.OnboardingService, store storage.Store) *OnboardingHandler {
	return &OnboardingHandler{onboardingService: onboardingService, store: store}
}

// Status reports whether onboarding has been completed, so the client knows
// whether to show the wizard or the dashboard.
func (h *OnboardingHandler) Status(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]bool{
		"completed": h.store.OnboardingCompleted(),
	})
}

// Complete finishes the wizard: validates the answers and creates the
// profile, stats, progress records and onboarding flag.
func (h *OnboardingHandler) Complete(w http.ResponseWriter, r *http.Request) {
	var input service.OnboardingInput
	if err := decodeJSON(r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", "onboarding decode failed", err)
		return
	}

	profile, err := h.onboardingService.Complete(input)
	if err != nil {
		var validationErr validation.ValidationError
		if errors.As(err, &validationErr) {
			respondWithError(w, http.StatusBadRequest, validationErr.Error(), "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "failed to complete onboarding", "onboarding failed", err)
		return
	}

	respondJSON(w, http.StatusCreated, profile)
}
