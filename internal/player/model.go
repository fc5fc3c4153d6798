package player

import "time"

type Player struct {
	ID                      string     `gorm:"primaryKey" json:"id"`
	Username                string     `gorm:"uniqueIndex;not null" json:"username"`
	CreatedAt               time.Time  `json:"created_at"`
	TotalGames              int        `gorm:"default:0" json:"total_games"`
	TotalScore              int        `gorm:"default:0" json:"total_score"`
	BestScore               int        `gorm:"default:0" json:"best_score"`
	BestWave                int        `gorm:"default:1" json:"best_wave"`
	TotalPlaytime           int        `gorm:"default:0" json:"total_playtime"`
	TotalEnemiesDestroyed   int        `gorm:"default:0" json:"total_enemies_destroyed"`
	TotalAsteroidsDestroyed int        `gorm:"default:0" json:"total_asteroids_destroyed"`
	TotalPowerupsCollected  int        `gorm:"default:0" json:"total_powerups_collected"`
	GamesWon                int        `gorm:"default:0" json:"games_won"`
	FavoritePowerup         *string    `json:"favorite_powerup,omitempty"`
	LastPlayed              *time.Time `json:"last_played,omitempty"`
}

type PlayerCreate struct {
	Username string `json:"username"`
}

// PlayerUpdate is a partial overwrite; nil fields are left untouched.
type PlayerUpdate struct {
	GamesWon        *int       `json:"games_won,omitempty"`
	FavoritePowerup *string    `json:"favorite_powerup,omitempty"`
	LastPlayed      *time.Time `json:"last_played,omitempty"`
}

// GameResult is the per-session delta folded into the cumulative profile
// when a game is finalized.
type GameResult struct {
	FinalScore         int
	MaxWave            int
	GameDuration       int
	EnemiesDestroyed   int
	AsteroidsDestroyed int
	PowerupsCollected  int
	PlayedAt           time.Time
}
