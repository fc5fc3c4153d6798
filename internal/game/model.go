package game

import (
	"time"

	"github.com/stellarisdev/CosmicDefender/internal/achievement"
	"github.com/stellarisdev/CosmicDefender/internal/leaderboard"
	"github.com/stellarisdev/CosmicDefender/internal/player"
)

const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusAbandoned = "abandoned"
)

// GameSession is mutable only while active; finalization or abandonment
// closes it exactly once.
type GameSession struct {
	ID                 string     `gorm:"primaryKey" json:"id"`
	PlayerID           string     `gorm:"index;not null" json:"player_id"`
	PlayerUsername     string     `gorm:"not null" json:"player_username"`
	StartTime          time.Time  `json:"start_time"`
	EndTime            *time.Time `json:"end_time,omitempty"`
	FinalScore         int        `gorm:"default:0" json:"final_score"`
	MaxWave            int        `gorm:"default:1" json:"max_wave"`
	PowerupsCollected  int        `gorm:"default:0" json:"powerups_collected"`
	EnemiesDestroyed   int        `gorm:"default:0" json:"enemies_destroyed"`
	AsteroidsDestroyed int        `gorm:"default:0" json:"asteroids_destroyed"`
	GameDuration       int        `gorm:"default:0" json:"game_duration"`
	Status             string     `gorm:"default:active" json:"status"`
}

type GameSessionCreate struct {
	PlayerID string `json:"player_id"`
}

// SessionUpdate carries the metrics reported by the client; nil fields are
// left as stored.
type SessionUpdate struct {
	FinalScore         *int `json:"final_score,omitempty"`
	MaxWave            *int `json:"max_wave,omitempty"`
	PowerupsCollected  *int `json:"powerups_collected,omitempty"`
	EnemiesDestroyed   *int `json:"enemies_destroyed,omitempty"`
	AsteroidsDestroyed *int `json:"asteroids_destroyed,omitempty"`
	GameDuration       *int `json:"game_duration,omitempty"`
}

type FinalizeResult struct {
	Session         *GameSession              `json:"game_session"`
	Score           *leaderboard.Score        `json:"score"`
	NewAchievements []achievement.Achievement `json:"new_achievements"`
	PlayerRank      *int                      `json:"player_rank,omitempty"`
}

type GameStats struct {
	TotalGames              int     `json:"total_games"`
	TotalScore              int     `json:"total_score"`
	BestScore               int     `json:"best_score"`
	AverageScore            float64 `json:"average_score"`
	TotalPlaytime           int     `json:"total_playtime"`
	TotalEnemiesDestroyed   int     `json:"total_enemies_destroyed"`
	TotalAsteroidsDestroyed int     `json:"total_asteroids_destroyed"`
	TotalPowerupsCollected  int     `json:"total_powerups_collected"`
	BestWave                int     `json:"best_wave"`
	FavoritePowerup         *string `json:"favorite_powerup,omitempty"`
	AchievementsUnlocked    int     `json:"achievements_unlocked"`
	TotalAchievements       int     `json:"total_achievements"`
}

type DetailedStats struct {
	Player       *player.Player           `json:"player"`
	GameStats    GameStats                `json:"game_stats"`
	RecentGames  []GameSession            `json:"recent_games"`
	Achievements []achievement.WithStatus `json:"achievements"`
}
