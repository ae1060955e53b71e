package service

import (
	"context"
	"log"
	"sort"

	"studyquest/internal/progression"
	"studyquest/internal/social"
	"studyquest/internal/storage"
	"studyquest/internal/validation"
)

// LeaderboardEntry is one ranked row of the community leaderboard.
type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	ID     string `json:"id"`
	Name   string `json:"name"`
	Level  int    `json:"level"`
	Points int    `json:"points"`
	Streak int    `json:"streak"`
	IsUser bool   `json:"isUser"`
}

// SocialService handles friend invitations and the community leaderboard.
type SocialService struct {
	store   storage.Store
	friends social.FriendProvider
	email   *EmailService
}

// NewSocialService creates a new social service
func NewSocialService(store storage.Store, friends social.FriendProvider, email *EmailService) *SocialService {
	return &SocialService{store: store, friends: friends, email: email}
}

// InviteFriend records a friend invitation: the invite counter and bonus
// points are credited in a single stats write, then the invitation email is
// sent when email is configured. A failed send does not undo the credit.
func (s *SocialService) InviteFriend(ctx context.Context, friendEmail string) error {
	if err := validation.ValidateEmail(friendEmail); err != nil {
		return err
	}

	profile, found := s.store.Profile()
	if !found {
		return ErrNotOnboarded
	}

	stats, found := s.store.Stats()
	if !found {
		return ErrNotOnboarded
	}
	stats.FriendsInvited++
	s.store.SaveStats(progression.AddPoints(stats, progression.InviteBonusPoints))

	if s.email != nil {
		if err := s.email.SendFriendInvite(ctx, friendEmail, profile.Name); err != nil {
			log.Printf("friend invite email to %s failed: %v", friendEmail, err)
		}
	}

	return nil
}

// Leaderboard ranks the user among the community members, highest points
// first. Ranks are 1-based; ties keep provider order, with the user sorted
// after an equal-scoring friend.
func (s *SocialService) Leaderboard() []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, 8)
	for _, friend := range s.friends.Friends() {
		entries = append(entries, LeaderboardEntry{
			ID:     friend.ID,
			Name:   friend.Name,
			Level:  friend.Level,
			Points: friend.Points,
			Streak: friend.Streak,
		})
	}

	if profile, found := s.store.Profile(); found {
		stats, _ := s.store.Stats()
		entries = append(entries, LeaderboardEntry{
			ID:     profile.ID,
			Name:   profile.Name,
			Level:  progression.Level(stats.TotalPoints),
			Points: stats.TotalPoints,
			Streak: stats.Streak,
			IsUser: true,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Points > entries[j].Points
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
