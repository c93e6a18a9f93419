package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

type memoryScore struct {
	mu        sync.Mutex
	rounds    map[string]struct{}
	standings entity.Standings
}

// NewMemoryScoreRepository - keeps the tally for the lifetime of the process.
func NewMemoryScoreRepository() ScoreRepository {
	return &memoryScore{
		rounds: make(map[string]struct{}),
	}
}

func (that *memoryScore) Add(_ context.Context, roundID string, state entity.State) error {
	field, err := resultField(state)
	if err != nil {
		return err
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.rounds[roundID]; ok {
		return nil
	}
	that.rounds[roundID] = struct{}{}

	switch field {
	case fieldXWins:
		that.standings.XWins++
	case fieldOWins:
		that.standings.OWins++
	case fieldDraws:
		that.standings.Draws++
	}

	return nil
}

func (that *memoryScore) Standings(_ context.Context) (entity.Standings, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.standings, nil
}
