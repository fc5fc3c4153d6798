package game

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/stellarisdev/CosmicDefender/internal/achievement"
	"github.com/stellarisdev/CosmicDefender/internal/leaderboard"
	"github.com/stellarisdev/CosmicDefender/internal/player"
)

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(session *GameSession) error {
	args := m.Called(session)
	return args.Error(0)
}

func (m *MockSessionRepository) GetByID(id string) (*GameSession, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*GameSession), args.Error(1)
}

func (m *MockSessionRepository) Update(id string, update *SessionUpdate) (*GameSession, error) {
	args := m.Called(id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*GameSession), args.Error(1)
}

func (m *MockSessionRepository) CompleteIfActive(id string, final *SessionUpdate, endTime time.Time) (bool, error) {
	args := m.Called(id, final, endTime)
	return args.Bool(0), args.Error(1)
}

func (m *MockSessionRepository) AbandonIfActive(id string, endTime time.Time) (bool, error) {
	args := m.Called(id, endTime)
	return args.Bool(0), args.Error(1)
}

func (m *MockSessionRepository) RecentCompleted(playerID string, limit int) ([]GameSession, error) {
	args := m.Called(playerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]GameSession), args.Error(1)
}

type MockScoreLedger struct {
	mock.Mock
}

func (m *MockScoreLedger) Record(score *leaderboard.Score) error {
	args := m.Called(score)
	return args.Error(0)
}

func (m *MockScoreLedger) RankOf(playerID string) (*int, error) {
	args := m.Called(playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*int), args.Error(1)
}

type MockAchievementChecker struct {
	mock.Mock
}

func (m *MockAchievementChecker) CheckUnlocks(profile *player.Player, session *achievement.SessionResult) ([]achievement.Achievement, error) {
	args := m.Called(profile, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]achievement.Achievement), args.Error(1)
}

func (m *MockAchievementChecker) ForPlayer(playerID string) ([]achievement.WithStatus, error) {
	args := m.Called(playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]achievement.WithStatus), args.Error(1)
}
