package catalog

import "testing"

func TestLessonIDIsDeterministic(t *testing.T) {
	if got := LessonID("matematica", 1); got != "matematica-lesson-1" {
		t.Errorf("LessonID() = %q, want %q", got, "matematica-lesson-1")
	}
	if got := LessonID("ingles", 11); got != "ingles-lesson-11" {
		t.Errorf("LessonID() = %q, want %q", got, "ingles-lesson-11")
	}
}

func TestLessonsMatchSubjectLessonCount(t *testing.T) {
	for _, subject := range Subjects() {
		lessons := Lessons(subject)
		if len(lessons) != subject.TotalLessons {
			t.Errorf("%s: got %d lessons, want %d", subject.ID, len(lessons), subject.TotalLessons)
		}
		for i, lesson := range lessons {
			if lesson.ID != LessonID(subject.ID, i+1) {
				t.Errorf("%s lesson %d: id = %q", subject.ID, i+1, lesson.ID)
			}
			if lesson.Number != i+1 {
				t.Errorf("%s lesson %d: number = %d", subject.ID, i+1, lesson.Number)
			}
		}
	}
}

func TestLessonTitleFallsBackPastTitleTable(t *testing.T) {
	subject, ok := SubjectByID("matematica")
	if !ok {
		t.Fatal("matematica missing from catalog")
	}
	lessons := Lessons(subject)

	// The title table has five entries; later lessons get the generic title
	if lessons[0].Title != "Aula 1: Números e Operações" {
		t.Errorf("lesson 1 title = %q", lessons[0].Title)
	}
	if lessons[5].Title != "Aula 6: Conteúdo 6" {
		t.Errorf("lesson 6 title = %q", lessons[5].Title)
	}
}

func TestSubjectByIDUnknown(t *testing.T) {
	if _, ok := SubjectByID("quimica"); ok {
		t.Error("expected unknown subject to report not found")
	}
}

func TestEverySubjectHasAFullQuizRound(t *testing.T) {
	for _, subject := range Subjects() {
		questions := QuestionsForSubject(subject.ID)
		if len(questions) < 5 {
			t.Errorf("%s: only %d questions in the bank, need at least 5", subject.ID, len(questions))
		}
		for _, q := range questions {
			if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
				t.Errorf("question %s: correct answer index %d out of range", q.ID, q.CorrectAnswer)
			}
		}
	}
}
