package achievement

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/stellarisdev/CosmicDefender/internal/player"
)

type Service struct {
	repo   Repository
	engine *Engine
}

func NewService(repo Repository, engine *Engine) *Service {
	return &Service{repo: repo, engine: engine}
}

// Seed loads the default catalog if the table is empty. Run once at process
// start, before any finalization.
func (s *Service) Seed() error {
	count, err := s.repo.CatalogCount()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if err := s.repo.SeedCatalog(DefaultCatalog); err != nil {
		return err
	}
	log.Printf("achievement catalog seeded with %d rules", len(DefaultCatalog))
	return nil
}

// CheckUnlocks evaluates the catalog against the refreshed profile and the
// finalized session, persists new unlocks and returns them. An unlock lost to
// a concurrent finalization is silently dropped from the result.
func (s *Service) CheckUnlocks(profile *player.Player, session *SessionResult) ([]Achievement, error) {
	rules, err := s.repo.All()
	if err != nil {
		return nil, err
	}

	unlocks, err := s.repo.UnlockedFor(profile.ID)
	if err != nil {
		return nil, err
	}
	held := make(map[string]bool, len(unlocks))
	for _, u := range unlocks {
		held[u.AchievementID] = true
	}

	candidates := s.engine.Unlocks(rules, held, &EvalInput{Profile: profile, Session: session})

	newAchievements := []Achievement{}
	for _, rule := range candidates {
		sessionID := session.SessionID
		inserted, err := s.repo.InsertUnlock(&PlayerAchievement{
			ID:            uuid.NewString(),
			PlayerID:      profile.ID,
			AchievementID: rule.ID,
			UnlockedAt:    time.Now().UTC(),
			GameSessionID: &sessionID,
		})
		if err != nil {
			return nil, err
		}
		if inserted {
			newAchievements = append(newAchievements, rule)
		}
	}
	return newAchievements, nil
}

// ForPlayer returns the full catalog annotated with this player's status.
func (s *Service) ForPlayer(playerID string) ([]WithStatus, error) {
	rules, err := s.repo.All()
	if err != nil {
		return nil, err
	}

	unlocks, err := s.repo.UnlockedFor(playerID)
	if err != nil {
		return nil, err
	}
	unlockedAt := make(map[string]time.Time, len(unlocks))
	for _, u := range unlocks {
		unlockedAt[u.AchievementID] = u.UnlockedAt
	}

	result := make([]WithStatus, 0, len(rules))
	for _, rule := range rules {
		status := WithStatus{Achievement: rule}
		if at, ok := unlockedAt[rule.ID]; ok {
			status.Unlocked = true
			t := at
			status.UnlockedAt = &t
		}
		result = append(result, status)
	}
	return result, nil
}

// All returns the catalog with no player context.
func (s *Service) All() ([]WithStatus, error) {
	rules, err := s.repo.All()
	if err != nil {
		return nil, err
	}
	result := make([]WithStatus, 0, len(rules))
	for _, rule := range rules {
		result = append(result, WithStatus{Achievement: rule})
	}
	return result, nil
}
