package storage

import (
	"encoding/json"
	"log"

	"studyquest/internal/models"
)

// Storage keys. These are part of the persisted format and must stay stable
// so existing installations keep their data across upgrades.
const (
	KeyUserProfile         = "studyapp_user_profile"
	KeyStudyProgress       = "studyapp_study_progress"
	KeyGameScores          = "studyapp_game_scores"
	KeyUserStats           = "studyapp_user_stats"
	KeyOnboardingCompleted = "studyapp_onboarding_completed"
)

// ownedKeys is the complete set of keys this component owns. ClearAll removes
// exactly these, never anything else sharing the backend.
var ownedKeys = []string{
	KeyUserProfile,
	KeyStudyProgress,
	KeyGameScores,
	KeyUserStats,
	KeyOnboardingCompleted,
}

// Store is the persistence layer for the application's five record kinds.
//
// Failure semantics: a broken or absent backend never surfaces errors to
// callers. Reads degrade to the absent/empty default, writes become logged
// no-ops, and the user simply appears as a first-time user. Callers must
// treat "absent" as a legitimate value, not an error.
type Store interface {
	// SaveProfile overwrites the user profile. No validation is performed;
	// the caller guarantees the shape.
	SaveProfile(profile models.UserProfile)

	// Profile returns the stored profile, with found=false when absent
	// (user not onboarded yet).
	Profile() (profile models.UserProfile, found bool)

	// SaveProgress persists the entire per-subject progress collection as one unit.
	SaveProgress(progress []models.StudyProgress)

	// Progress returns all progress records, or an empty slice when absent.
	Progress() []models.StudyProgress

	// UpsertProgress replaces the entry whose SubjectID matches, or appends
	// if none matches. All other entries are preserved untouched.
	UpsertProgress(record models.StudyProgress)

	// AppendGameScore appends one entry to the score log. The log is
	// append-only; entries are never removed or compacted.
	AppendGameScore(score models.GameScore)

	// GameScores returns the full score log in append order.
	GameScores() []models.GameScore

	// SaveStats overwrites the user stats record.
	SaveStats(stats models.UserStats)

	// Stats returns the stored stats, with found=false when absent.
	Stats() (stats models.UserStats, found bool)

	// InitializeStats writes a fresh all-zero stats record for the user.
	// An existing record is overwritten silently.
	InitializeStats(userID string)

	// SetOnboardingCompleted records whether onboarding has finished.
	SetOnboardingCompleted(completed bool)

	// OnboardingCompleted reports the onboarding flag, defaulting to false.
	OnboardingCompleted() bool

	// ClearAll erases every key this store owns. Irreversible.
	ClearAll()
}

// New creates a Store persisting into the given backend.
func New(backend Backend) Store {
	return &store{backend: backend}
}

type store struct {
	backend Backend
}

// load reads and decodes one key into dest, returning false when the key is
// absent or unreadable. A corrupt value is unrecoverable for that key: it is
// deleted so the next read starts from the default.
func (s *store) load(key string, dest interface{}) bool {
	data, found, err := s.backend.Get(key)
	if err != nil {
		log.Printf("storage: read %s failed: %v", key, err)
		return false
	}
	if !found {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		log.Printf("storage: corrupt record at %s, resetting: %v", key, err)
		if delErr := s.backend.Delete(key); delErr != nil {
			log.Printf("storage: reset %s failed: %v", key, delErr)
		}
		return false
	}
	return true
}

// save encodes and writes one key. Failures are logged and swallowed.
func (s *store) save(key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("storage: encode %s failed: %v", key, err)
		return
	}
	if err := s.backend.Set(key, data); err != nil {
		log.Printf("storage: write %s failed: %v", key, err)
	}
}

func (s *store) SaveProfile(profile models.UserProfile) {
	s.save(KeyUserProfile, profile)
}

func (s *store) Profile() (models.UserProfile, bool) {
	var profile models.UserProfile
	if !s.load(KeyUserProfile, &profile) {
		return models.UserProfile{}, false
	}
	return profile, true
}

func (s *store) SaveProgress(progress []models.StudyProgress) {
	if progress == nil {
		progress = []models.StudyProgress{}
	}
	s.save(KeyStudyProgress, progress)
}

func (s *store) Progress() []models.StudyProgress {
	var progress []models.StudyProgress
	if !s.load(KeyStudyProgress, &progress) || progress == nil {
		return []models.StudyProgress{}
	}
	return progress
}

func (s *store) UpsertProgress(record models.StudyProgress) {
	progress := s.Progress()

	replaced := false
	for i := range progress {
		if progress[i].SubjectID == record.SubjectID {
			progress[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		progress = append(progress, record)
	}

	s.SaveProgress(progress)
}

func (s *store) AppendGameScore(score models.GameScore) {
	scores := s.GameScores()
	scores = append(scores, score)
	s.save(KeyGameScores, scores)
}

func (s *store) GameScores() []models.GameScore {
	var scores []models.GameScore
	if !s.load(KeyGameScores, &scores) || scores == nil {
		return []models.GameScore{}
	}
	return scores
}

func (s *store) SaveStats(stats models.UserStats) {
	s.save(KeyUserStats, stats)
}

func (s *store) Stats() (models.UserStats, bool) {
	var stats models.UserStats
	if !s.load(KeyUserStats, &stats) {
		return models.UserStats{}, false
	}
	return stats, true
}

func (s *store) InitializeStats(userID string) {
	s.SaveStats(models.NewUserStats(userID))
}

func (s *store) SetOnboardingCompleted(completed bool) {
	s.save(KeyOnboardingCompleted, completed)
}

func (s *store) OnboardingCompleted() bool {
	var completed bool
	if !s.load(KeyOnboardingCompleted, &completed) {
		return false
	}
	return completed
}

func (s *store) ClearAll() {
	for _, key := range ownedKeys {
		if err := s.backend.Delete(key); err != nil {
			log.Printf("storage: clear %s failed: %v", key, err)
		}
	}
}
