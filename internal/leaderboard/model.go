package leaderboard

import "time"

// Score is one immutable ledger entry; exactly one is appended per completed
// game session and none is ever updated.
type Score struct {
	ID                 string    `gorm:"primaryKey" json:"id"`
	PlayerID           string    `gorm:"index;not null" json:"player_id"`
	PlayerUsername     string    `gorm:"not null" json:"player_username"`
	GameSessionID      string    `gorm:"index;not null" json:"game_session_id"`
	Score              int       `gorm:"index;not null" json:"score"`
	Wave               int       `json:"wave"`
	PowerupsCollected  int       `json:"powerups_collected"`
	EnemiesDestroyed   int       `json:"enemies_destroyed"`
	AsteroidsDestroyed int       `json:"asteroids_destroyed"`
	GameDuration       int       `json:"game_duration"`
	CreatedAt          time.Time `json:"created_at"`
}

type Entry struct {
	Rank           int       `json:"rank"`
	PlayerID       string    `json:"player_id"`
	PlayerUsername string    `json:"player_username"`
	Score          int       `json:"score"`
	Wave           int       `json:"wave"`
	GameDuration   int       `json:"game_duration"`
	CreatedAt      time.Time `json:"created_at"`
}

type Board struct {
	Entries       []Entry `json:"entries"`
	TotalEntries  int64   `json:"total_entries"`
	UserRank      *int    `json:"user_rank,omitempty"`
	UserBestScore *int    `json:"user_best_score,omitempty"`
}
