package leaderboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestService() (*Service, *MockScoreRepository) {
	mockRepo := &MockScoreRepository{}
	return NewService(mockRepo, NoopBoardCache{}), mockRepo
}

func TestLeaderboardService_Top_RankFollowsSkip(t *testing.T) {
	service, mockRepo := newTestService()

	scores := []Score{
		{PlayerID: "a", PlayerUsername: "ace", Score: 9000, Wave: 9},
		{PlayerID: "b", PlayerUsername: "bolt", Score: 7500, Wave: 8},
		{PlayerID: "c", PlayerUsername: "comet", Score: 7500, Wave: 6},
	}
	mockRepo.On("Top", 3, 10).Return(scores, nil)

	entries, err := service.Top(3, 10)
	assert.NoError(t, err)
	assert.Len(t, entries, 3)
	for i, entry := range entries {
		assert.Equal(t, 10+i+1, entry.Rank)
	}
	assert.Equal(t, "ace", entries[0].PlayerUsername)
	assert.True(t, entries[0].Score >= entries[1].Score)
	assert.True(t, entries[1].Score >= entries[2].Score)
	mockRepo.AssertExpectations(t)
}

func TestLeaderboardService_RankOf(t *testing.T) {
	service, mockRepo := newTestService()

	mockRepo.On("BestFor", "p1").Return(&Score{PlayerID: "p1", Score: 8200}, nil)
	mockRepo.On("CountGreaterThan", 8200).Return(int64(4), nil)

	rank, err := service.RankOf("p1")
	assert.NoError(t, err)
	assert.NotNil(t, rank)
	assert.Equal(t, 5, *rank)
	mockRepo.AssertExpectations(t)
}

func TestLeaderboardService_RankOf_NoScores(t *testing.T) {
	service, mockRepo := newTestService()

	mockRepo.On("BestFor", "fresh").Return(nil, nil)

	rank, err := service.RankOf("fresh")
	assert.NoError(t, err)
	assert.Nil(t, rank)
	mockRepo.AssertNotCalled(t, "CountGreaterThan", mock.Anything)
}

func TestLeaderboardService_RankOf_OnlyPlayer(t *testing.T) {
	service, mockRepo := newTestService()

	mockRepo.On("BestFor", "nova").Return(&Score{PlayerID: "nova", Score: 10000}, nil)
	mockRepo.On("CountGreaterThan", 10000).Return(int64(0), nil)

	rank, err := service.RankOf("nova")
	assert.NoError(t, err)
	assert.Equal(t, 1, *rank)
}

func TestLeaderboardService_Board_WithUser(t *testing.T) {
	service, mockRepo := newTestService()

	now := time.Now()
	mockRepo.On("Top", 10, 0).Return([]Score{
		{PlayerID: "p1", PlayerUsername: "nova", Score: 9999, CreatedAt: now},
	}, nil)
	mockRepo.On("Count").Return(int64(1), nil)
	mockRepo.On("BestFor", "p1").Return(&Score{PlayerID: "p1", Score: 9999}, nil)
	mockRepo.On("CountGreaterThan", 9999).Return(int64(0), nil)

	board, err := service.Board(0, 0, "p1")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), board.TotalEntries)
	assert.Len(t, board.Entries, 1)
	assert.Equal(t, 1, board.Entries[0].Rank)
	assert.Equal(t, 1, *board.UserRank)
	assert.Equal(t, 9999, *board.UserBestScore)
}

func TestLeaderboardService_Board_Anonymous(t *testing.T) {
	service, mockRepo := newTestService()

	mockRepo.On("Top", 10, 0).Return([]Score{}, nil)
	mockRepo.On("Count").Return(int64(0), nil)

	board, err := service.Board(10, 0, "")
	assert.NoError(t, err)
	assert.Empty(t, board.Entries)
	assert.Nil(t, board.UserRank)
	assert.Nil(t, board.UserBestScore)
	mockRepo.AssertNotCalled(t, "BestFor", mock.Anything)
}

func TestLeaderboardService_Board_CacheHit(t *testing.T) {
	mockRepo := &MockScoreRepository{}
	mockCache := &MockBoardCache{}
	service := NewService(mockRepo, mockCache)

	cached := &Board{Entries: []Entry{{Rank: 1, PlayerUsername: "ace", Score: 500}}, TotalEntries: 1}
	mockCache.On("GetBoard", 10, 0).Return(cached, true)

	board, err := service.Board(10, 0, "")
	assert.NoError(t, err)
	assert.Equal(t, cached, board)
	mockRepo.AssertNotCalled(t, "Top", mock.Anything, mock.Anything)
}

func TestLeaderboardService_Record_InvalidatesCache(t *testing.T) {
	mockRepo := &MockScoreRepository{}
	mockCache := &MockBoardCache{}
	service := NewService(mockRepo, mockCache)

	score := &Score{ID: "s1", PlayerID: "p1", Score: 4200}
	mockRepo.On("Append", score).Return(nil)
	mockCache.On("Invalidate").Return()

	err := service.Record(score)
	assert.NoError(t, err)
	mockCache.AssertCalled(t, "Invalidate")
}
