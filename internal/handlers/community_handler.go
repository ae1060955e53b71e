package handlers

import (
	"errors"
	"net/http"

	"studyquest/internal/progression"
	"studyquest/internal/service"
	"studyquest/internal/storage"
	"studyquest/internal/validation"
)

// CommunityHandler serves the leaderboard and friend invitations.
type CommunityHandler struct {
	socialService *service.SocialService
	store         storage.Store
}

// NewCommunityHandler creates a new community handler
func NewCommunityHandler(socialService *service.SocialService, store storage.Store) *CommunityHandler {
	return &CommunityHandler{socialService: socialService, store: store}
}

// Community returns the ranked leaderboard and invite summary.
func (h *CommunityHandler) Community(w http.ResponseWriter, r *http.Request) {
	stats, _ := h.store.Stats()
	respondJSON(w, http.StatusOK, CommunityView{
		Leaderboard:    h.socialService.Leaderboard(),
		FriendsInvited: stats.FriendsInvited,
		InviteBonus:    progression.InviteBonusPoints,
	})
}

// InviteFriend sends an invitation and credits the invite bonus.
func (h *CommunityHandler) InviteFriend(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
	}
	if err := decodeJSON(r, &body); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", "invite decode failed", err)
		return
	}

	if err := h.socialService.InviteFriend(r.Context(), body.Email); err != nil {
		var validationErr validation.ValidationError
		switch {
		case errors.As(err, &validationErr):
			respondWithError(w, http.StatusBadRequest, validationErr.Error(), "", nil)
		case errors.Is(err, service.ErrNotOnboarded):
			respondWithError(w, http.StatusForbidden, "onboarding not completed", "", nil)
		default:
			respondWithError(w, http.StatusInternalServerError, "failed to send invite", "invite failed", err)
		}
		return
	}

	stats, _ := h.store.Stats()
	respondJSON(w, http.StatusOK, map[string]int{
		"friendsInvited": stats.FriendsInvited,
		"totalPoints":    stats.TotalPoints,
	})
}
