package combatlog

import (
	"context"
	"log/slog"
)

// Sink adapts a Repository to the combat pipeline's fire-and-forget message
// surface. Storage failures are logged and swallowed; narration must never
// fail a combat resolution.
type Sink struct {
	repo        Repository
	encounterID string
}

// NewSink creates a message sink recording into the given encounter's log.
func NewSink(repo Repository, encounterID string) *Sink {
	return &Sink{repo: repo, encounterID: encounterID}
}

// Send records one narration line.
func (s *Sink) Send(category, text string) {
	_, err := s.repo.Append(context.Background(), AppendInput{
		EncounterID: s.encounterID,
		Entry: Entry{
			Category: category,
			Text:     text,
		},
	})
	if err != nil {
		slog.Warn("Failed to record combat log line",
			"encounter_id", s.encounterID,
			"category", category,
			"error", err,
		)
	}
}
