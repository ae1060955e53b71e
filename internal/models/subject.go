package models

// Subject is a static catalog entry. Read-only at runtime.
type Subject struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Icon         string `json:"icon"`
	Color        string `json:"color"`
	Description  string `json:"description"`
	TotalLessons int    `json:"totalLessons"`
}

// Lesson is one unit of content within a subject. Lessons are generated
// deterministically from the subject and ordinal position, so the same
// lesson always gets the same ID.
type Lesson struct {
	ID        string `json:"id"`
	SubjectID string `json:"subjectId"`
	Number    int    `json:"number"`
	Title     string `json:"title"`
	Type      string `json:"type"` // texto, video, audio or interativo
	Duration  int    `json:"duration"` // minutes
}

// Question is a quiz question with a single correct option.
type Question struct {
	ID            string   `json:"id"`
	SubjectID     string   `json:"subjectId"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"` // index into Options
}
