package leaderboard

const DefaultLimit = 10

type Service struct {
	repo  ScoreRepository
	cache BoardCache
}

func NewService(repo ScoreRepository, cache BoardCache) *Service {
	return &Service{repo: repo, cache: cache}
}

// Record appends a score to the ledger and drops cached pages.
func (s *Service) Record(score *Score) error {
	if err := s.repo.Append(score); err != nil {
		return err
	}
	s.cache.Invalidate()
	return nil
}

// Top returns one leaderboard page sorted by score descending, with rank
// assigned as skip + position + 1.
func (s *Service) Top(limit, skip int) ([]Entry, error) {
	scores, err := s.repo.Top(limit, skip)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(scores))
	for i, score := range scores {
		entries = append(entries, Entry{
			Rank:           skip + i + 1,
			PlayerID:       score.PlayerID,
			PlayerUsername: score.PlayerUsername,
			Score:          score.Score,
			Wave:           score.Wave,
			GameDuration:   score.GameDuration,
			CreatedAt:      score.CreatedAt,
		})
	}
	return entries, nil
}

// RankOf returns the player's 1-based position among all recorded scores, or
// nil if the player has no score yet. This counts the whole ledger on every
// call; fine at arcade scale.
func (s *Service) RankOf(playerID string) (*int, error) {
	best, err := s.repo.BestFor(playerID)
	if err != nil {
		return nil, err
	}
	if best == nil {
		return nil, nil
	}

	higher, err := s.repo.CountGreaterThan(best.Score)
	if err != nil {
		return nil, err
	}

	rank := int(higher) + 1
	return &rank, nil
}

// Board assembles the leaderboard response, optionally annotated with the
// requesting player's rank and best score. Only the anonymous part is cached.
func (s *Service) Board(limit, skip int, playerID string) (*Board, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if skip < 0 {
		skip = 0
	}

	board, ok := s.cache.GetBoard(limit, skip)
	if !ok {
		entries, err := s.Top(limit, skip)
		if err != nil {
			return nil, err
		}
		total, err := s.repo.Count()
		if err != nil {
			return nil, err
		}
		board = &Board{Entries: entries, TotalEntries: total}
		s.cache.SetBoard(limit, skip, board)
	}

	if playerID == "" {
		return board, nil
	}

	annotated := &Board{Entries: board.Entries, TotalEntries: board.TotalEntries}
	rank, err := s.RankOf(playerID)
	if err != nil {
		return nil, err
	}
	annotated.UserRank = rank

	best, err := s.repo.BestFor(playerID)
	if err != nil {
		return nil, err
	}
	if best != nil {
		annotated.UserBestScore = &best.Score
	}
	return annotated, nil
}
