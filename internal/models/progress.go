package models

import "time"

// StudyProgress tracks one user's progress through one subject.
// One record exists per subject; the full set is created at onboarding
// with progress=0 and no completed lessons.
type StudyProgress struct {
	UserID           string    `json:"userId"`
	SubjectID        string    `json:"subjectId"`
	SubjectName      string    `json:"subjectName"`
	Progress         int       `json:"progress"` // 0-100, derived from completed/total
	CompletedLessons []string  `json:"completedLessons"`
	TotalLessons     int       `json:"totalLessons"`
	LastAccessed     time.Time `json:"lastAccessed"`
}

// IsLessonCompleted reports whether the lesson has already been completed.
// CompletedLessons is a set; duplicates are never stored.
func (p *StudyProgress) IsLessonCompleted(lessonID string) bool {
	for _, id := range p.CompletedLessons {
		if id == lessonID {
			return true
		}
	}
	return false
}
