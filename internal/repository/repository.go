package repository

import (
	"sync"

	"quizprize-game/internal/models"
)

// Repository is the points-award sink. Writes are fired from gameplay in
// a fire-and-forget fashion: a failure is logged by the caller and never
// blocks or aborts a session.
type Repository interface {
	SavePointsAward(award models.PointsAward) error
	TotalPoints(playerID string) (int, error)
	Close() error
}

// InMemoryRepository backs development mode when no DATABASE_URL is set.
type InMemoryRepository struct {
	mu     sync.RWMutex
	awards []models.PointsAward
	totals map[string]int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{totals: make(map[string]int)}
}

func (r *InMemoryRepository) SavePointsAward(award models.PointsAward) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.awards = append(r.awards, award)
	r.totals[award.PlayerID] += award.Points
	return nil
}

func (r *InMemoryRepository) TotalPoints(playerID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.totals[playerID], nil
}

func (r *InMemoryRepository) Close() error {
	return nil
}
