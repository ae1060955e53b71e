package handlers

import (
	"errors"
	"net/http"

	"studyquest/internal/catalog"
	"studyquest/internal/models"
	"studyquest/internal/service"
)

// SubjectHandler serves the subject catalog and lesson completion.
type SubjectHandler struct {
	studyService *service.StudyService
}

// NewSubjectHandler creates a new subject handler
func NewSubjectHandler(studyService *service.StudyService) *SubjectHandler {
	return &SubjectHandler{studyService: studyService}
}

// ListSubjects returns the full subject catalog.
func (h *SubjectHandler) ListSubjects(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, catalog.Subjects())
}

// GetSubject returns one subject with its lessons and the viewer's progress.
func (h *SubjectHandler) GetSubject(w http.ResponseWriter, r *http.Request) {
	subjectID := r.PathValue("id")
	subject, found := catalog.SubjectByID(subjectID)
	if !found {
		respondWithError(w, http.StatusNotFound, "subject not found", "", nil)
		return
	}

	progress, found := h.studyService.SubjectProgress(subjectID)
	if !found {
		// Progress records exist for every subject after onboarding; an
		// absent record still renders as an untouched subject
		progress = models.StudyProgress{
			SubjectID:        subject.ID,
			SubjectName:      subject.Name,
			CompletedLessons: []string{},
			TotalLessons:     subject.TotalLessons,
		}
	}

	lessons := catalog.Lessons(subject)
	view := SubjectView{
		Subject:  subject,
		Lessons:  make([]LessonView, len(lessons)),
		Progress: progress,
	}
	for i, lesson := range lessons {
		view.Lessons[i] = LessonView{
			Lesson:    lesson,
			Completed: progress.IsLessonCompleted(lesson.ID),
		}
	}

	respondJSON(w, http.StatusOK, view)
}

// CompleteLesson marks a lesson complete and credits the lesson points.
func (h *SubjectHandler) CompleteLesson(w http.ResponseWriter, r *http.Request) {
	subjectID := r.PathValue("id")
	lessonID := r.PathValue("lessonId")

	record, completed, err := h.studyService.CompleteLesson(subjectID, lessonID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownSubject), errors.Is(err, service.ErrUnknownLesson):
			respondWithError(w, http.StatusNotFound, err.Error(), "", nil)
		case errors.Is(err, service.ErrNotOnboarded):
			respondWithError(w, http.StatusForbidden, "onboarding not completed", "", nil)
		default:
			respondWithError(w, http.StatusInternalServerError, "failed to complete lesson", "lesson completion failed", err)
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"completed": completed,
		"progress":  record,
	})
}
