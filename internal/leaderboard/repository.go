package leaderboard

import (
	"errors"

	"github.com/stellarisdev/CosmicDefender/internal/apperrors"
	"gorm.io/gorm"
)

type ScoreRepository interface {
	Append(score *Score) error
	Top(limit, skip int) ([]Score, error)
	Count() (int64, error)
	BestFor(playerID string) (*Score, error)
	CountGreaterThan(score int) (int64, error)
}

type GormScoreRepository struct {
	db *gorm.DB
}

func NewGormScoreRepository(db *gorm.DB) *GormScoreRepository {
	return &GormScoreRepository{db: db}
}

func (r *GormScoreRepository) Append(score *Score) error {
	if err := r.db.Create(score).Error; err != nil {
		return apperrors.Unavailable("error appending score", err)
	}
	return nil
}

// Top pages the ledger by score descending. created_at breaks ties so
// pagination with skip stays stable between requests.
func (r *GormScoreRepository) Top(limit, skip int) ([]Score, error) {
	var scores []Score
	err := r.db.Order("score DESC, created_at ASC").
		Limit(limit).
		Offset(skip).
		Find(&scores).Error
	if err != nil {
		return nil, apperrors.Unavailable("error fetching leaderboard", err)
	}
	return scores, nil
}

func (r *GormScoreRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&Score{}).Count(&count).Error; err != nil {
		return 0, apperrors.Unavailable("error counting scores", err)
	}
	return count, nil
}

func (r *GormScoreRepository) BestFor(playerID string) (*Score, error) {
	var s Score
	err := r.db.Where("player_id = ?", playerID).
		Order("score DESC").
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Unavailable("error fetching best score", err)
	}
	return &s, nil
}

func (r *GormScoreRepository) CountGreaterThan(score int) (int64, error) {
	var count int64
	err := r.db.Model(&Score{}).Where("score > ?", score).Count(&count).Error
	if err != nil {
		return 0, apperrors.Unavailable("error counting scores", err)
	}
	return count, nil
}
