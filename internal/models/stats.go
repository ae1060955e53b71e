package models

// UserStats holds the user's gamification state. TotalPoints only ever
// increases; Level is derived from TotalPoints (see progression.Level).
// Streak and Badges exist in the stored shape but no current flow drives them.
type UserStats struct {
	UserID         string   `json:"userId"`
	TotalPoints    int      `json:"totalPoints"`
	Level          int      `json:"level"`
	Streak         int      `json:"streak"` // consecutive days
	Badges         []string `json:"badges"`
	FriendsInvited int      `json:"friendsInvited"`
}

// NewUserStats returns the all-zero stats record a fresh user starts with.
func NewUserStats(userID string) UserStats {
	return UserStats{
		UserID:         userID,
		TotalPoints:    0,
		Level:          1,
		Streak:         0,
		Badges:         []string{},
		FriendsInvited: 0,
	}
}
