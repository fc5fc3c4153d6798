package game

import (
	"errors"
	"time"

	"github.com/stellarisdev/CosmicDefender/internal/apperrors"
	"gorm.io/gorm"
)

type SessionRepository interface {
	Create(session *GameSession) error
	GetByID(id string) (*GameSession, error)
	Update(id string, update *SessionUpdate) (*GameSession, error)
	CompleteIfActive(id string, final *SessionUpdate, endTime time.Time) (bool, error)
	AbandonIfActive(id string, endTime time.Time) (bool, error)
	RecentCompleted(playerID string, limit int) ([]GameSession, error)
}

type GormSessionRepository struct {
	db *gorm.DB
}

func NewGormSessionRepository(db *gorm.DB) *GormSessionRepository {
	return &GormSessionRepository{db: db}
}

func (r *GormSessionRepository) Create(session *GameSession) error {
	if err := r.db.Create(session).Error; err != nil {
		return apperrors.Unavailable("error creating game session", err)
	}
	return nil
}

func (r *GormSessionRepository) GetByID(id string) (*GameSession, error) {
	var session GameSession
	err := r.db.Where("id = ?", id).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Unavailable("error fetching game session", err)
	}
	return &session, nil
}

func (r *GormSessionRepository) Update(id string, update *SessionUpdate) (*GameSession, error) {
	fields := update.fields()
	if len(fields) > 0 {
		err := r.db.Model(&GameSession{}).Where("id = ?", id).Updates(fields).Error
		if err != nil {
			return nil, apperrors.Unavailable("error updating game session", err)
		}
	}
	return r.GetByID(id)
}

// CompleteIfActive merges the final metrics and flips the session to
// completed in one conditional UPDATE. Only the call that finds the session
// still active claims it, so a session is finalized at most once no matter
// how many times the client retries.
func (r *GormSessionRepository) CompleteIfActive(id string, final *SessionUpdate, endTime time.Time) (bool, error) {
	fields := final.fields()
	fields["end_time"] = endTime
	fields["status"] = StatusCompleted

	tx := r.db.Model(&GameSession{}).
		Where("id = ? AND status = ?", id, StatusActive).
		Updates(fields)
	if tx.Error != nil {
		return false, apperrors.Unavailable("error completing game session", tx.Error)
	}
	return tx.RowsAffected == 1, nil
}

func (r *GormSessionRepository) AbandonIfActive(id string, endTime time.Time) (bool, error) {
	tx := r.db.Model(&GameSession{}).
		Where("id = ? AND status = ?", id, StatusActive).
		Updates(map[string]interface{}{
			"end_time": endTime,
			"status":   StatusAbandoned,
		})
	if tx.Error != nil {
		return false, apperrors.Unavailable("error abandoning game session", tx.Error)
	}
	return tx.RowsAffected == 1, nil
}

func (r *GormSessionRepository) RecentCompleted(playerID string, limit int) ([]GameSession, error) {
	var sessions []GameSession
	err := r.db.Where("player_id = ? AND status = ?", playerID, StatusCompleted).
		Order("start_time DESC").
		Limit(limit).
		Find(&sessions).Error
	if err != nil {
		return nil, apperrors.Unavailable("error fetching recent games", err)
	}
	return sessions, nil
}

func (u *SessionUpdate) fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if u.FinalScore != nil {
		fields["final_score"] = *u.FinalScore
	}
	if u.MaxWave != nil {
		fields["max_wave"] = *u.MaxWave
	}
	if u.PowerupsCollected != nil {
		fields["powerups_collected"] = *u.PowerupsCollected
	}
	if u.EnemiesDestroyed != nil {
		fields["enemies_destroyed"] = *u.EnemiesDestroyed
	}
	if u.AsteroidsDestroyed != nil {
		fields["asteroids_destroyed"] = *u.AsteroidsDestroyed
	}
	if u.GameDuration != nil {
		fields["game_duration"] = *u.GameDuration
	}
	return fields
}
