package handlers

import (
	"net/http"

	"studyquest/internal/models"
	"studyquest/internal/storage"
)

// maxRecentGames caps the recent-games panel on the dashboard.
const maxRecentGames = 5

// DashboardHandler serves the home screen aggregate.
type DashboardHandler struct {
	store storage.Store
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(store storage.Store) *DashboardHandler {
	return &DashboardHandler{store: store}
}

// Dashboard returns the home screen view: identity, gamification stats,
// per-subject progress and the most recent quiz rounds.
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	profile, found := h.store.Profile()
	if !found {
		respondWithError(w, http.StatusForbidden, "onboarding not completed", "", nil)
		return
	}

	stats, _ := h.store.Stats()
	progress := h.store.Progress()

	view := DashboardView{
		Name:        profile.Name,
		TotalPoints: stats.TotalPoints,
		Level:       stats.Level,
		Streak:      stats.Streak,
		Subjects:    progress,
		RecentGames: recentGames(h.store.GameScores(), maxRecentGames),
	}
	for _, record := range progress {
		view.LessonsDone += len(record.CompletedLessons)
		view.TotalLessons += record.TotalLessons
	}

	respondJSON(w, http.StatusOK, view)
}

// recentGames returns the newest n entries of the append-ordered log,
// newest first.
func recentGames(scores []models.GameScore, n int) []models.GameScore {
	recent := make([]models.GameScore, 0, n)
	for i := len(scores) - 1; i >= 0 && len(recent) < n; i-- {
		recent = append(recent, scores[i])
	}
	return recent
}
