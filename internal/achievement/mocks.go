package achievement

import (
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) All() ([]Achievement, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Achievement), args.Error(1)
}

func (m *MockRepository) CatalogCount() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) SeedCatalog(rules []Achievement) error {
	args := m.Called(rules)
	return args.Error(0)
}

func (m *MockRepository) UnlockedFor(playerID string) ([]PlayerAchievement, error) {
	args := m.Called(playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]PlayerAchievement), args.Error(1)
}

func (m *MockRepository) InsertUnlock(unlock *PlayerAchievement) (bool, error) {
	args := m.Called(unlock)
	return args.Bool(0), args.Error(1)
}
