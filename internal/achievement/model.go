package achievement

import "time"

// Requirement kinds understood by the rule engine. The set is closed; new
// kinds are added by registering an evaluator.
const (
	ReqEnemiesDestroyed   = "enemies_destroyed"
	ReqAsteroidsDestroyed = "asteroids_destroyed"
	ReqPowerupsCollected  = "powerups_collected"
	ReqScore              = "score"
	ReqGameDuration       = "game_duration"
	ReqWave               = "wave"
	ReqScoreTime          = "score_time"
	ReqNoDamage           = "no_damage"
)

type Achievement struct {
	ID               string    `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"not null" json:"name"`
	Description      string    `json:"description"`
	Icon             string    `json:"icon"`
	Category         string    `json:"category"`
	RequirementType  string    `gorm:"not null" json:"requirement_type"`
	RequirementValue int       `gorm:"not null" json:"requirement_value"`
	Points           int       `json:"points"`
	IsHidden         bool      `gorm:"default:false" json:"is_hidden"`
	CreatedAt        time.Time `json:"created_at"`
}

// PlayerAchievement records one unlock; the composite unique index makes a
// (player, achievement) pair unlockable at most once.
type PlayerAchievement struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	PlayerID      string    `gorm:"uniqueIndex:idx_player_achievement;not null" json:"player_id"`
	AchievementID string    `gorm:"uniqueIndex:idx_player_achievement;not null" json:"achievement_id"`
	UnlockedAt    time.Time `json:"unlocked_at"`
	GameSessionID *string   `json:"game_session_id,omitempty"`
}

type WithStatus struct {
	Achievement
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlocked_at,omitempty"`
}

// SessionResult is the slice of a finalized game session the rule engine
// evaluates session-scoped rules against.
type SessionResult struct {
	SessionID    string
	FinalScore   int
	MaxWave      int
	GameDuration int
}
