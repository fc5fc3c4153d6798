package player

import (
	"errors"

	"github.com/stellarisdev/CosmicDefender/internal/apperrors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	GetByID(id string) (*Player, error)
	GetByUsername(username string) (*Player, error)
	Create(p *Player) (*Player, error)
	Update(id string, update *PlayerUpdate) (*Player, error)
	ApplyGameResult(id string, result *GameResult) error
}

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) GetByID(id string) (*Player, error) {
	var p Player
	err := r.db.Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Unavailable("error fetching player", err)
	}
	return &p, nil
}

func (r *GormRepository) GetByUsername(username string) (*Player, error) {
	var p Player
	err := r.db.Where("username = ?", username).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Unavailable("error fetching player", err)
	}
	return &p, nil
}

// Create inserts the player unless the username is already taken, in which
// case the existing record is returned. Concurrent creates for the same
// username converge on one row via the unique constraint.
func (r *GormRepository) Create(p *Player) (*Player, error) {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoNothing: true,
	}).Create(p).Error
	if err != nil {
		return nil, apperrors.Unavailable("error creating player", err)
	}
	return r.GetByUsername(p.Username)
}

func (r *GormRepository) Update(id string, update *PlayerUpdate) (*Player, error) {
	fields := map[string]interface{}{}
	if update.GamesWon != nil {
		fields["games_won"] = *update.GamesWon
	}
	if update.FavoritePowerup != nil {
		fields["favorite_powerup"] = *update.FavoritePowerup
	}
	if update.LastPlayed != nil {
		fields["last_played"] = *update.LastPlayed
	}

	if len(fields) > 0 {
		err := r.db.Model(&Player{}).Where("id = ?", id).Updates(fields).Error
		if err != nil {
			return nil, apperrors.Unavailable("error updating player", err)
		}
	}
	return r.GetByID(id)
}

// ApplyGameResult folds a finalized session into the profile in one UPDATE:
// counters are incremented and bests raised with GREATEST in the database,
// so two finalizations for the same player cannot lose each other's delta.
func (r *GormRepository) ApplyGameResult(id string, result *GameResult) error {
	err := r.db.Model(&Player{}).Where("id = ?", id).Updates(map[string]interface{}{
		"total_games":               gorm.Expr("total_games + 1"),
		"total_score":               gorm.Expr("total_score + ?", result.FinalScore),
		"total_playtime":            gorm.Expr("total_playtime + ?", result.GameDuration),
		"total_enemies_destroyed":   gorm.Expr("total_enemies_destroyed + ?", result.EnemiesDestroyed),
		"total_asteroids_destroyed": gorm.Expr("total_asteroids_destroyed + ?", result.AsteroidsDestroyed),
		"total_powerups_collected":  gorm.Expr("total_powerups_collected + ?", result.PowerupsCollected),
		"best_score":                gorm.Expr("GREATEST(best_score, ?)", result.FinalScore),
		"best_wave":                 gorm.Expr("GREATEST(best_wave, ?)", result.MaxWave),
		"last_played":               result.PlayedAt,
	}).Error
	if err != nil {
		return apperrors.Unavailable("error updating player stats", err)
	}
	return nil
}
