package models

import "time"

// GameScore is one entry in the append-only quiz score log. Entries are
// never mutated or deleted after being written.
type GameScore struct {
	UserID      string    `json:"userId"`
	GameID      string    `json:"gameId"` // unique per play-through
	GameName    string    `json:"gameName"`
	Score       int       `json:"score"`  // correct-answer count
	Points      int       `json:"points"` // score x points-per-answer
	CompletedAt time.Time `json:"completedAt"`
}
