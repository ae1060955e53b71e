// Package catalog holds the static reference data the application is built
// around: the subject catalog, deterministic lesson generation and the quiz
// question bank. Everything here is read-only at runtime.
package catalog

import (
	"fmt"

	"studyquest/internal/models"
)

var subjects = []models.Subject{
	{
		ID:           "matematica",
		Name:         "Matemática",
		Icon:         "Calculator",
		Color:        "from-blue-500 to-cyan-500",
		Description:  "Números, álgebra, geometria e muito mais",
		TotalLessons: 12,
	},
	{
		ID:           "portugues",
		Name:         "Português",
		Icon:         "BookOpen",
		Color:        "from-purple-500 to-pink-500",
		Description:  "Gramática, literatura e interpretação",
		TotalLessons: 10,
	},
	{
		ID:           "ciencias",
		Name:         "Ciências",
		Icon:         "Microscope",
		Color:        "from-green-500 to-emerald-500",
		Description:  "Biologia, química e física",
		TotalLessons: 15,
	},
	{
		ID:           "historia",
		Name:         "História",
		Icon:         "Landmark",
		Color:        "from-amber-500 to-orange-500",
		Description:  "Eventos históricos e civilizações",
		TotalLessons: 8,
	},
	{
		ID:           "geografia",
		Name:         "Geografia",
		Icon:         "Globe",
		Color:        "from-teal-500 to-cyan-500",
		Description:  "Mundo, países e fenômenos naturais",
		TotalLessons: 9,
	},
	{
		ID:           "ingles",
		Name:         "Inglês",
		Icon:         "Languages",
		Color:        "from-indigo-500 to-blue-500",
		Description:  "Vocabulário, gramática e conversação",
		TotalLessons: 11,
	},
}

// lessonTitles maps each subject to the titles of its first lessons. Lessons
// past the end of the list fall back to a generic title.
var lessonTitles = map[string][]string{
	"matematica": {"Números e Operações", "Frações e Decimais", "Álgebra Básica", "Geometria", "Estatística"},
	"portugues":  {"Gramática Essencial", "Interpretação de Texto", "Redação", "Literatura", "Ortografia"},
	"ciencias":   {"Método Científico", "Biologia Celular", "Física Básica", "Química", "Ecologia"},
	"historia":   {"Pré-História", "Idade Antiga", "Idade Média", "Idade Moderna", "Idade Contemporânea"},
	"geografia":  {"Cartografia", "Relevo e Clima", "População", "Economia", "Geopolítica"},
	"ingles":     {"Gramática Básica", "Vocabulário", "Conversação", "Leitura", "Escrita"},
}

var lessonTypes = []string{"texto", "video", "audio", "interativo"}

// Subjects returns the full subject catalog.
func Subjects() []models.Subject {
	return subjects
}

// SubjectByID looks up a subject, with found=false for unknown ids.
func SubjectByID(id string) (models.Subject, bool) {
	for _, subject := range subjects {
		if subject.ID == id {
			return subject, true
		}
	}
	return models.Subject{}, false
}

// LessonID returns the deterministic id for a subject's nth lesson (1-based).
func LessonID(subjectID string, number int) string {
	return fmt.Sprintf("%s-lesson-%d", subjectID, number)
}

// Lessons generates the lesson list for a subject. Generation is
// deterministic: the same subject always yields the same lessons.
func Lessons(subject models.Subject) []models.Lesson {
	lessons := make([]models.Lesson, subject.TotalLessons)
	for i := 0; i < subject.TotalLessons; i++ {
		number := i + 1
		lessons[i] = models.Lesson{
			ID:        LessonID(subject.ID, number),
			SubjectID: subject.ID,
			Number:    number,
			Title:     fmt.Sprintf("Aula %d: %s", number, lessonTitle(subject.ID, number)),
			Type:      lessonTypes[i%len(lessonTypes)],
			Duration:  15,
		}
	}
	return lessons
}

func lessonTitle(subjectID string, number int) string {
	titles := lessonTitles[subjectID]
	if number-1 < len(titles) {
		return titles[number-1]
	}
	return fmt.Sprintf("Conteúdo %d", number)
}
