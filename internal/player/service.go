package player

import (
	"time"

	"github.com/google/uuid"
	"github.com/stellarisdev/CosmicDefender/internal/apperrors"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateOrGet returns the existing player for the username, creating one on
// first contact.
func (s *Service) CreateOrGet(req *PlayerCreate) (*Player, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByUsername(req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	return s.repo.Create(&Player{
		ID:        uuid.NewString(),
		Username:  req.Username,
		CreatedAt: time.Now().UTC(),
		BestWave:  1,
	})
}

func (s *Service) Get(id string) (*Player, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperrors.NotFound("Player not found")
	}
	return p, nil
}

func (s *Service) Update(id string, update *PlayerUpdate) (*Player, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	return s.repo.Update(id, update)
}

func (p *PlayerCreate) Validate() error {
	if p.Username == "" {
		return apperrors.Invalid("username is required")
	}
	if len(p.Username) > 30 {
		return apperrors.Invalid("username must not exceed 30 characters")
	}
	return nil
}
