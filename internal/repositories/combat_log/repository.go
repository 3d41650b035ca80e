// Package combatlog provides repository interface and types for combat
// narration logs, grouped per encounter.
package combatlog

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=combatlogmock github.com/KirkDiggler/tactics-engine/internal/repositories/combat_log Repository

// Entry is one narration line.
type Entry struct {
	// Category tags the line (e.g. "COMBAT").
	Category string `json:"category"`

	// Text is the human-readable line.
	Text string `json:"text"`

	// At is when the line was recorded.
	At time.Time `json:"at"`
}

// AppendInput carries one entry to record.
type AppendInput struct {
	EncounterID string
	Entry       Entry
}

// AppendOutput is empty; reserved for future fields.
type AppendOutput struct{}

// GetInput selects an encounter's log.
type GetInput struct {
	EncounterID string
}

// GetOutput returns the entries in append order.
type GetOutput struct {
	Entries []Entry
}

// ClearInput selects an encounter's log for deletion.
type ClearInput struct {
	EncounterID string
}

// ClearOutput is empty; reserved for future fields.
type ClearOutput struct{}

// Repository stores combat logs per encounter.
type Repository interface {
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
	Clear(ctx context.Context, input ClearInput) (*ClearOutput, error)
}
