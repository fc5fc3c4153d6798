package game

import (
	"time"

	"github.com/google/uuid"

	"github.com/stellarisdev/CosmicDefender/internal/achievement"
	"github.com/stellarisdev/CosmicDefender/internal/apperrors"
	"github.com/stellarisdev/CosmicDefender/internal/leaderboard"
	"github.com/stellarisdev/CosmicDefender/internal/player"
)

// ScoreLedger is the slice of the leaderboard service the coordinator needs.
type ScoreLedger interface {
	Record(score *leaderboard.Score) error
	RankOf(playerID string) (*int, error)
}

// AchievementChecker is the slice of the achievement service the coordinator
// and stats assembly need.
type AchievementChecker interface {
	CheckUnlocks(profile *player.Player, session *achievement.SessionResult) ([]achievement.Achievement, error)
	ForPlayer(playerID string) ([]achievement.WithStatus, error)
}

type Service struct {
	sessions     SessionRepository
	players      player.Repository
	scores       ScoreLedger
	achievements AchievementChecker
}

func NewService(sessions SessionRepository, players player.Repository, scores ScoreLedger, achievements AchievementChecker) *Service {
	return &Service{
		sessions:     sessions,
		players:      players,
		scores:       scores,
		achievements: achievements,
	}
}

// Start opens a new active session for an existing player.
func (s *Service) Start(req *GameSessionCreate) (*GameSession, error) {
	profile, err := s.players.GetByID(req.PlayerID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperrors.NotFound("Player not found")
	}

	session := &GameSession{
		ID:             uuid.NewString(),
		PlayerID:       profile.ID,
		PlayerUsername: profile.Username,
		StartTime:      time.Now().UTC(),
		MaxWave:        1,
		Status:         StatusActive,
	}
	if err := s.sessions.Create(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *Service) Get(id string) (*GameSession, error) {
	session, err := s.sessions.GetByID(id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperrors.NotFound("Game session not found")
	}
	return session, nil
}

// Update merges mid-game progress into the session. Closed sessions are
// immutable.
func (s *Service) Update(id string, update *SessionUpdate) (*GameSession, error) {
	session, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if session.Status != StatusActive {
		return nil, apperrors.Invalid("Game session is no longer active")
	}
	return s.sessions.Update(id, update)
}

// Abandon closes an active session without propagating anything: no score,
// no stats, no achievements.
func (s *Service) Abandon(id string) (*GameSession, error) {
	claimed, err := s.sessions.AbandonIfActive(id, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, apperrors.NotFound("Active game session not found")
	}
	return s.Get(id)
}

// Finalize drives the whole end-of-game pipeline: close the session, append
// the score, fold the delta into the profile, evaluate achievements, compute
// the rank. The writes span four tables with no cross-table transaction; a
// failure partway leaves the earlier writes in place and surfaces the error
// to the caller, who may retry the request as a whole (the session claim
// makes a retry a NotFound, never a double-count).
func (s *Service) Finalize(sessionID string, final *SessionUpdate) (*FinalizeResult, error) {
	now := time.Now().UTC()

	claimed, err := s.sessions.CompleteIfActive(sessionID, final, now)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, apperrors.NotFound("Active game session not found")
	}

	session, err := s.Get(sessionID)
	if err != nil {
		return nil, err
	}

	score := &leaderboard.Score{
		ID:                 uuid.NewString(),
		PlayerID:           session.PlayerID,
		PlayerUsername:     session.PlayerUsername,
		GameSessionID:      session.ID,
		Score:              session.FinalScore,
		Wave:               session.MaxWave,
		PowerupsCollected:  session.PowerupsCollected,
		EnemiesDestroyed:   session.EnemiesDestroyed,
		AsteroidsDestroyed: session.AsteroidsDestroyed,
		GameDuration:       session.GameDuration,
		CreatedAt:          now,
	}
	if err := s.scores.Record(score); err != nil {
		return nil, err
	}

	err = s.players.ApplyGameResult(session.PlayerID, &player.GameResult{
		FinalScore:         session.FinalScore,
		MaxWave:            session.MaxWave,
		GameDuration:       session.GameDuration,
		EnemiesDestroyed:   session.EnemiesDestroyed,
		AsteroidsDestroyed: session.AsteroidsDestroyed,
		PowerupsCollected:  session.PowerupsCollected,
		PlayedAt:           now,
	})
	if err != nil {
		return nil, err
	}

	profile, err := s.players.GetByID(session.PlayerID)
	if err != nil {
		return nil, err
	}

	newAchievements := []achievement.Achievement{}
	if profile != nil {
		newAchievements, err = s.achievements.CheckUnlocks(profile, &achievement.SessionResult{
			SessionID:    session.ID,
			FinalScore:   session.FinalScore,
			MaxWave:      session.MaxWave,
			GameDuration: session.GameDuration,
		})
		if err != nil {
			return nil, err
		}
	}

	rank, err := s.scores.RankOf(session.PlayerID)
	if err != nil {
		return nil, err
	}

	return &FinalizeResult{
		Session:         session,
		Score:           score,
		NewAchievements: newAchievements,
		PlayerRank:      rank,
	}, nil
}

// PlayerStats assembles the detailed stats view: cumulative profile, derived
// averages, the five most recent completed games and achievement status.
func (s *Service) PlayerStats(playerID string) (*DetailedStats, error) {
	profile, err := s.players.GetByID(playerID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperrors.NotFound("Player not found")
	}

	recent, err := s.sessions.RecentCompleted(playerID, 5)
	if err != nil {
		return nil, err
	}

	achievements, err := s.achievements.ForPlayer(playerID)
	if err != nil {
		return nil, err
	}
	unlockedCount := 0
	for _, ws := range achievements {
		if ws.Unlocked {
			unlockedCount++
		}
	}

	averageScore := 0.0
	if profile.TotalGames > 0 {
		averageScore = float64(profile.TotalScore) / float64(profile.TotalGames)
	}

	return &DetailedStats{
		Player: profile,
		GameStats: GameStats{
			TotalGames:              profile.TotalGames,
			TotalScore:              profile.TotalScore,
			BestScore:               profile.BestScore,
			AverageScore:            averageScore,
			TotalPlaytime:           profile.TotalPlaytime,
			TotalEnemiesDestroyed:   profile.TotalEnemiesDestroyed,
			TotalAsteroidsDestroyed: profile.TotalAsteroidsDestroyed,
			TotalPowerupsCollected:  profile.TotalPowerupsCollected,
			BestWave:                profile.BestWave,
			FavoritePowerup:         profile.FavoritePowerup,
			AchievementsUnlocked:    unlockedCount,
			TotalAchievements:       len(achievements),
		},
		RecentGames:  recent,
		Achievements: achievements,
	}, nil
}
