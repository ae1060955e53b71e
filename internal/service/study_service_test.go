package service

import (
	"errors"
	"testing"

	"studyquest/internal/catalog"
	"studyquest/internal/progression"
)

func TestCompleteLesson(t *testing.T) {
	store := newTestStore()
	onboardUser(t, store)
	svc := NewStudyService(store)

	lessonID := catalog.LessonID("matematica", 1)
	record, completed, err := svc.CompleteLesson("matematica", lessonID)
	if err != nil {
		t.Fatalf("CompleteLesson() error = %v", err)
	}
	if !completed {
		t.Fatal("first completion should report completed=true")
	}
	if !record.IsLessonCompleted(lessonID) {
		t.Error("lesson should be in the completed set")
	}
	if record.Progress != progression.ProgressPercent(1, record.TotalLessons) {
		t.Errorf("progress = %d, want %d", record.Progress, progression.ProgressPercent(1, record.TotalLessons))
	}

	stats, _ := store.Stats()
	if stats.TotalPoints != progression.LessonPoints {
		t.Errorf("points after lesson = %d, want %d", stats.TotalPoints, progression.LessonPoints)
	}
}

func TestCompleteLessonIdempotent(t *testing.T) {
	store := newTestStore()
	onboardUser(t, store)
	svc := NewStudyService(store)

	lessonID := catalog.LessonID("portugues", 3)
	if _, _, err := svc.CompleteLesson("portugues", lessonID); err != nil {
		t.Fatalf("CompleteLesson() error = %v", err)
	}

	record, completed, err := svc.CompleteLesson("portugues", lessonID)
	if err != nil {
		t.Fatalf("repeat CompleteLesson() error = %v", err)
	}
	if completed {
		t.Error("repeat completion should report completed=false")
	}
	if len(record.CompletedLessons) != 1 {
		t.Errorf("completed lessons = %d, want 1 (no duplicates)", len(record.CompletedLessons))
	}

	stats, _ := store.Stats()
	if stats.TotalPoints != progression.LessonPoints {
		t.Errorf("points after repeat = %d, want %d (credited once)", stats.TotalPoints, progression.LessonPoints)
	}
}

func TestCompleteLessonErrors(t *testing.T) {
	store := newTestStore()
	onboardUser(t, store)
	svc := NewStudyService(store)

	if _, _, err := svc.CompleteLesson("astrologia", "astrologia-lesson-1"); !errors.Is(err, ErrUnknownSubject) {
		t.Errorf("unknown subject error = %v, want ErrUnknownSubject", err)
	}
	if _, _, err := svc.CompleteLesson("matematica", "matematica-lesson-99"); !errors.Is(err, ErrUnknownLesson) {
		t.Errorf("unknown lesson error = %v, want ErrUnknownLesson", err)
	}

	empty := NewStudyService(newTestStore())
	if _, _, err := empty.CompleteLesson("matematica", catalog.LessonID("matematica", 1)); !errors.Is(err, ErrNotOnboarded) {
		t.Errorf("fresh store error = %v, want ErrNotOnboarded", err)
	}
}

func TestSubjectProgress(t *testing.T) {
	store := newTestStore()
	onboardUser(t, store)
	svc := NewStudyService(store)

	record, found := svc.SubjectProgress("historia")
	if !found {
		t.Fatal("onboarded user should have a record for every subject")
	}
	if record.SubjectID != "historia" {
		t.Errorf("record subject = %q, want historia", record.SubjectID)
	}

	if _, found := svc.SubjectProgress("astrologia"); found {
		t.Error("unknown subject should report found=false")
	}
}
