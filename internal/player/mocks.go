package player

import (
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetByID(id string) (*Player, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Player), args.Error(1)
}

func (m *MockRepository) GetByUsername(username string) (*Player, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Player), args.Error(1)
}

func (m *MockRepository) Create(p *Player) (*Player, error) {
	args := m.Called(p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Player), args.Error(1)
}

func (m *MockRepository) Update(id string, update *PlayerUpdate) (*Player, error) {
	args := m.Called(id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Player), args.Error(1)
}

func (m *MockRepository) ApplyGameResult(id string, result *GameResult) error {
	args := m.Called(id, result)
	return args.Error(0)
}
