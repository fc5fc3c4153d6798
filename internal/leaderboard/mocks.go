package leaderboard

import (
	"github.com/stretchr/testify/mock"
)

type MockScoreRepository struct {
	mock.Mock
}

func (m *MockScoreRepository) Append(score *Score) error {
	args := m.Called(score)
	return args.Error(0)
}

func (m *MockScoreRepository) Top(limit, skip int) ([]Score, error) {
	args := m.Called(limit, skip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Score), args.Error(1)
}

func (m *MockScoreRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockScoreRepository) BestFor(playerID string) (*Score, error) {
	args := m.Called(playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Score), args.Error(1)
}

func (m *MockScoreRepository) CountGreaterThan(score int) (int64, error) {
	args := m.Called(score)
	return args.Get(0).(int64), args.Error(1)
}

type MockBoardCache struct {
	mock.Mock
}

func (m *MockBoardCache) GetBoard(limit, skip int) (*Board, bool) {
	args := m.Called(limit, skip)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*Board), args.Bool(1)
}

func (m *MockBoardCache) SetBoard(limit, skip int, board *Board) {
	m.Called(limit, skip, board)
}

func (m *MockBoardCache) Invalidate() {
	m.Called()
}

// NoopBoardCache never hits; used where caching is irrelevant.
type NoopBoardCache struct{}

func (NoopBoardCache) GetBoard(limit, skip int) (*Board, bool) { return nil, false }
func (NoopBoardCache) SetBoard(limit, skip int, board *Board)  {}
func (NoopBoardCache) Invalidate()                             {}
