package achievement

import (
	"github.com/stellarisdev/CosmicDefender/internal/apperrors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	All() ([]Achievement, error)
	CatalogCount() (int64, error)
	SeedCatalog(rules []Achievement) error
	UnlockedFor(playerID string) ([]PlayerAchievement, error)
	InsertUnlock(unlock *PlayerAchievement) (bool, error)
}

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) All() ([]Achievement, error) {
	var rules []Achievement
	if err := r.db.Find(&rules).Error; err != nil {
		return nil, apperrors.Unavailable("error fetching achievements", err)
	}
	return rules, nil
}

func (r *GormRepository) CatalogCount() (int64, error) {
	var count int64
	if err := r.db.Model(&Achievement{}).Count(&count).Error; err != nil {
		return 0, apperrors.Unavailable("error counting achievements", err)
	}
	return count, nil
}

func (r *GormRepository) SeedCatalog(rules []Achievement) error {
	if err := r.db.Create(&rules).Error; err != nil {
		return apperrors.Unavailable("error seeding achievements", err)
	}
	return nil
}

func (r *GormRepository) UnlockedFor(playerID string) ([]PlayerAchievement, error) {
	var unlocks []PlayerAchievement
	err := r.db.Where("player_id = ?", playerID).Find(&unlocks).Error
	if err != nil {
		return nil, apperrors.Unavailable("error fetching player achievements", err)
	}
	return unlocks, nil
}

// InsertUnlock appends the unlock unless the (player, achievement) pair
// already exists. A conflict means a concurrent finalization got there first;
// that is reported as false, not as an error.
func (r *GormRepository) InsertUnlock(unlock *PlayerAchievement) (bool, error) {
	tx := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "player_id"}, {Name: "achievement_id"}},
		DoNothing: true,
	}).Create(unlock)
	if tx.Error != nil {
		return false, apperrors.Unavailable("error unlocking achievement", tx.Error)
	}
	return tx.RowsAffected == 1, nil
}
