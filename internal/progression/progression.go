// Package progression implements the points and leveling rules: how lesson
// completions, quiz rounds and friend invites turn into points, and how
// points turn into levels and per-subject progress percentages.
package progression

import (
	"math"
	"time"

	"studyquest/internal/models"
)

// Point awards for the three points-earning actions.
const (
	LessonPoints           = 20 // completing a lesson for the first time
	PointsPerCorrectAnswer = 10 // each correct quiz answer
	InviteBonusPoints      = 50 // sending a friend invite
)

// QuizQuestionCount is the number of questions drawn for one quiz round.
const QuizQuestionCount = 5

// Level derives the user's level from their total points. One level per 100
// points, with a floor of 1 so a fresh account starts at level 1. This is the
// single source of truth for the level formula.
func Level(totalPoints int) int {
	level := totalPoints / 100
	if level < 1 {
		return 1
	}
	return level
}

// ProgressPercent computes the derived 0-100 progress value for a subject.
func ProgressPercent(completedLessons, totalLessons int) int {
	if totalLessons <= 0 {
		return 0
	}
	return int(math.Round(float64(completedLessons) / float64(totalLessons) * 100))
}

// QuizPoints converts a final quiz score (correct-answer count) to points.
func QuizPoints(score int) int {
	return score * PointsPerCorrectAnswer
}

// AddPoints returns stats with the points credited and the level recomputed.
// Points are only ever added; callers never pass a negative amount.
func AddPoints(stats models.UserStats, points int) models.UserStats {
	stats.TotalPoints += points
	stats.Level = Level(stats.TotalPoints)
	return stats
}

// CompleteLesson returns the progress record with the lesson marked complete
// and the derived fields updated. Completing an already-completed lesson is a
// no-op: the returned record equals the input and completed reports false.
func CompleteLesson(progress models.StudyProgress, lessonID string, now time.Time) (models.StudyProgress, bool) {
	if progress.IsLessonCompleted(lessonID) {
		return progress, false
	}

	completed := make([]string, 0, len(progress.CompletedLessons)+1)
	completed = append(completed, progress.CompletedLessons...)
	completed = append(completed, lessonID)

	progress.CompletedLessons = completed
	progress.Progress = ProgressPercent(len(completed), progress.TotalLessons)
	progress.LastAccessed = now
	return progress, true
}
