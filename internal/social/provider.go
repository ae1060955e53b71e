// Package social supplies the community data the ranking is built from.
// The provider is a capability so a real backend can replace the bundled
// demo data without touching the progression logic.
package social

// Friend is one community member visible on the leaderboard.
type Friend struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Level  int    `json:"level"`
	Points int    `json:"points"`
	Streak int    `json:"streak"`
}

// FriendProvider returns the community members to rank the user against.
type FriendProvider interface {
	Friends() []Friend
}

// StaticFriendProvider serves a fixed demo roster. It stands in until a real
// social backend exists.
type StaticFriendProvider struct{}

// NewStaticFriendProvider creates the demo provider.
func NewStaticFriendProvider() *StaticFriendProvider {
	return &StaticFriendProvider{}
}

// Friends returns the demo roster.
func (p *StaticFriendProvider) Friends() []Friend {
	return []Friend{
		{ID: "1", Name: "Ana Silva", Level: 12, Points: 1250, Streak: 15},
		{ID: "2", Name: "Carlos Santos", Level: 10, Points: 980, Streak: 8},
		{ID: "3", Name: "Maria Oliveira", Level: 15, Points: 1520, Streak: 22},
		{ID: "4", Name: "João Costa", Level: 8, Points: 750, Streak: 5},
		{ID: "5", Name: "Paula Lima", Level: 11, Points: 1100, Streak: 12},
	}
}
