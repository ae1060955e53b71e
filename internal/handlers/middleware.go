package handlers

import (
	"log"
	"net/http"
	"time"

	"studyquest/internal/storage"
)

// Middleware holds dependencies for middleware functions
type Middleware struct {
	store storage.Store
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(store storage.Store) *Middleware {
	return &Middleware{store: store}
}

// RequireOnboarding gates routes that need a completed onboarding. The app
// is single-user, so the check is the stored flag rather than a session.
func (m *Middleware) RequireOnboarding(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !m.store.OnboardingCompleted() {
			respondWithError(w, http.StatusForbidden, "onboarding not completed", "", nil)
			return
		}
		next(w, r)
	}
}

// Logging middleware logs HTTP requests
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}
