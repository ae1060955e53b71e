package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studyquest/internal/config"
	"studyquest/internal/handlers"
	"studyquest/internal/service"
	"studyquest/internal/social"
	"studyquest/internal/storage"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Open storage backend (supports sqlite, postgres, mysql)
	backend, err := storage.OpenBackend(cfg.DatabaseType, cfg.DatabasePath, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to open storage backend: %v", err)
	}
	defer backend.Close()

	log.Printf("Storage backend ready (type: %s)", cfg.DatabaseType)

	store := storage.New(backend)

	// Initialize services
	emailService, err := service.NewEmailService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.AppBaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}

	onboardingService := service.NewOnboardingService(store)
	studyService := service.NewStudyService(store)
	quizService := service.NewQuizService(store)
	socialService := service.NewSocialService(store, social.NewStaticFriendProvider(), emailService)

	// Initialize handlers
	middleware := handlers.NewMiddleware(store)
	onboardingHandler := handlers.NewOnboardingHandler(onboardingService, store)
	dashboardHandler := handlers.NewDashboardHandler(store)
	subjectHandler := handlers.NewSubjectHandler(studyService)
	quizHandler := handlers.NewQuizHandler(quizService, store)
	communityHandler := handlers.NewCommunityHandler(socialService, store)
	settingsHandler := handlers.NewSettingsHandler(store)

	// Setup routes
	mux := http.NewServeMux()

	// Onboarding routes
	mux.HandleFunc("GET /api/onboarding", onboardingHandler.Status)
	mux.HandleFunc("POST /api/onboarding", onboardingHandler.Complete)

	// Dashboard
	mux.HandleFunc("GET /api/dashboard", middleware.RequireOnboarding(dashboardHandler.Dashboard))

	// Subject and lesson routes
	mux.HandleFunc("GET /api/subjects", subjectHandler.ListSubjects)
	mux.HandleFunc("GET /api/subjects/{id}", middleware.RequireOnboarding(subjectHandler.GetSubject))
	mux.HandleFunc("POST /api/subjects/{id}/lessons/{lessonId}/complete", middleware.RequireOnboarding(subjectHandler.CompleteLesson))

	// Quiz routes
	mux.HandleFunc("POST /api/quiz/start/{subjectId}", middleware.RequireOnboarding(quizHandler.StartQuiz))
	mux.HandleFunc("GET /api/quiz", middleware.RequireOnboarding(quizHandler.CurrentQuiz))
	mux.HandleFunc("POST /api/quiz/answer", middleware.RequireOnboarding(quizHandler.AnswerQuiz))
	mux.HandleFunc("POST /api/quiz/exit", middleware.RequireOnboarding(quizHandler.ExitQuiz))

	// Community routes
	mux.HandleFunc("GET /api/community", middleware.RequireOnboarding(communityHandler.Community))
	mux.HandleFunc("POST /api/community/invite", middleware.RequireOnboarding(communityHandler.InviteFriend))

	// Settings routes
	mux.HandleFunc("GET /api/profile", middleware.RequireOnboarding(settingsHandler.GetProfile))
	mux.HandleFunc("PUT /api/profile", middleware.RequireOnboarding(settingsHandler.UpdateProfile))
	mux.HandleFunc("POST /api/settings/reset", settingsHandler.ResetData)

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
}
