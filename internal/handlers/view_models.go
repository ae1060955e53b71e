package handlers

import (
	"studyquest/internal/models"
	"studyquest/internal/service"
)

// DashboardView aggregates everything the home screen shows.
type DashboardView struct {
	Name         string                 `json:"name"`
	TotalPoints  int                    `json:"totalPoints"`
	Level        int                    `json:"level"`
	Streak       int                    `json:"streak"`
	Subjects     []models.StudyProgress `json:"subjects"`
	RecentGames  []models.GameScore     `json:"recentGames"`
	LessonsDone  int                    `json:"lessonsDone"`
	TotalLessons int                    `json:"totalLessons"`
}

// LessonView is a lesson plus the viewer's completion state.
type LessonView struct {
	models.Lesson
	Completed bool `json:"completed"`
}

// SubjectView is the subject detail screen: catalog data, generated lessons
// and the viewer's progress through them.
type SubjectView struct {
	Subject  models.Subject       `json:"subject"`
	Lessons  []LessonView         `json:"lessons"`
	Progress models.StudyProgress `json:"progress"`
}

// CommunityView is the community screen: ranked entries plus the invite state.
type CommunityView struct {
	Leaderboard    []service.LeaderboardEntry `json:"leaderboard"`
	FriendsInvited int                        `json:"friendsInvited"`
	InviteBonus    int                        `json:"inviteBonus"`
}
