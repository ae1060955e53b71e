package handlers

import (
	"net/http"

	"studyquest/internal/storage"
	"studyquest/internal/validation"
)

// SettingsHandler serves profile viewing, profile edits and the data reset.
type SettingsHandler struct {
	store storage.Store
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(store storage.Store) *SettingsHandler {
	return &SettingsHandler{store: store}
}

// GetProfile returns the stored profile.
func (h *SettingsHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, found := h.store.Profile()
	if !found {
		respondWithError(w, http.StatusNotFound, "profile not found", "", nil)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

// UpdateProfile edits the identity fields of the profile. ID, CreatedAt and
// the onboarding answers stay as they were.
func (h *SettingsHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	profile, found := h.store.Profile()
	if !found {
		respondWithError(w, http.StatusNotFound, "profile not found", "", nil)
		return
	}

	var body struct {
		Name       string `json:"name"`
		Email      string `json:"email"`
		Age        int    `json:"age"`
		StudyGoals string `json:"studyGoals"`
	}
	if err := decodeJSON(r, &body); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", "profile decode failed", err)
		return
	}

	if err := validation.ValidateName(body.Name); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
		return
	}
	if err := validation.ValidateEmail(body.Email); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
		return
	}
	if err := validation.ValidateAge(body.Age); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
		return
	}

	profile.Name = body.Name
	profile.Email = body.Email
	profile.Age = body.Age
	if body.StudyGoals != "" {
		profile.StudyGoals = body.StudyGoals
	}
	h.store.SaveProfile(profile)

	respondJSON(w, http.StatusOK, profile)
}

// ResetData erases all application data. The next request sees a first-time
// user and the client returns to the onboarding wizard.
func (h *SettingsHandler) ResetData(w http.ResponseWriter, r *http.Request) {
	h.store.ClearAll()
	respondJSON(w, http.StatusNoContent, nil)
}
