package combatlog

import (
	"context"
	"sync"

	"github.com/KirkDiggler/tactics-engine/internal/errors"
	"github.com/KirkDiggler/tactics-engine/internal/pkg/clock"
)

// inMemoryRepository keeps logs in process memory. The simulator uses it;
// deployments use the Redis repository.
type inMemoryRepository struct {
	mu    sync.Mutex
	clock clock.Clock
	logs  map[string][]Entry
}

// NewInMemoryRepository creates an in-memory combat log repository
func NewInMemoryRepository(clk clock.Clock) Repository {
	if clk == nil {
		clk = clock.New()
	}
	return &inMemoryRepository{
		clock: clk,
		logs:  make(map[string][]Entry),
	}
}

func (r *inMemoryRepository) Append(_ context.Context, input AppendInput) (*AppendOutput, error) {
	if input.EncounterID == "" {
		return nil, errors.InvalidArgument(errEncounterIDEmpty)
	}

	entry := input.Entry
	if entry.At.IsZero() {
		entry.At = r.clock.Now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs[input.EncounterID] = append(r.logs[input.EncounterID], entry)
	return &AppendOutput{}, nil
}

func (r *inMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.EncounterID == "" {
		return nil, errors.InvalidArgument(errEncounterIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	entries := make([]Entry, len(r.logs[input.EncounterID]))
	copy(entries, r.logs[input.EncounterID])
	return &GetOutput{Entries: entries}, nil
}

func (r *inMemoryRepository) Clear(_ context.Context, input ClearInput) (*ClearOutput, error) {
	if input.EncounterID == "" {
		return nil, errors.InvalidArgument(errEncounterIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.logs, input.EncounterID)
	return &ClearOutput{}, nil
}
