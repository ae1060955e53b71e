package service

import (
	"errors"
	"time"

	"studyquest/internal/catalog"
	"studyquest/internal/models"
	"studyquest/internal/progression"
	"studyquest/internal/storage"
)

// Errors shared by the study and quiz flows.
var (
	ErrNotOnboarded   = errors.New("user has not completed onboarding")
	ErrUnknownSubject = errors.New("unknown subject")
	ErrUnknownLesson  = errors.New("unknown lesson")
)

// StudyService handles subject browsing and lesson completion.
type StudyService struct {
	store storage.Store
}

// NewStudyService creates a new study service
func NewStudyService(store storage.Store) *StudyService {
	return &StudyService{store: store}
}

// SubjectProgress returns the progress record for one subject, with
// found=false when no record exists yet.
func (s *StudyService) SubjectProgress(subjectID string) (models.StudyProgress, bool) {
	for _, record := range s.store.Progress() {
		if record.SubjectID == subjectID {
			return record, true
		}
	}
	return models.StudyProgress{}, false
}

// CompleteLesson marks a lesson complete and credits the lesson points.
// Completing an already-completed lesson is a no-op: the stored record is
// unchanged and no points are awarded, regardless of caller discipline.
// The second return value reports whether this call completed the lesson.
func (s *StudyService) CompleteLesson(subjectID, lessonID string) (models.StudyProgress, bool, error) {
	subject, found := catalog.SubjectByID(subjectID)
	if !found {
		return models.StudyProgress{}, false, ErrUnknownSubject
	}
	if !lessonBelongsToSubject(subject, lessonID) {
		return models.StudyProgress{}, false, ErrUnknownLesson
	}

	record, found := s.SubjectProgress(subjectID)
	if !found {
		// Progress records are created at onboarding; their absence means
		// there is no user to credit
		return models.StudyProgress{}, false, ErrNotOnboarded
	}

	updated, completed := progression.CompleteLesson(record, lessonID, time.Now())
	if !completed {
		return record, false, nil
	}

	s.store.UpsertProgress(updated)

	if stats, found := s.store.Stats(); found {
		s.store.SaveStats(progression.AddPoints(stats, progression.LessonPoints))
	}

	return updated, true, nil
}

func lessonBelongsToSubject(subject models.Subject, lessonID string) bool {
	for n := 1; n <= subject.TotalLessons; n++ {
		if catalog.LessonID(subject.ID, n) == lessonID {
			return true
		}
	}
	return false
}
