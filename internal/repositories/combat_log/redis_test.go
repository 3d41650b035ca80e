package combatlog_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/tactics-engine/internal/pkg/clock"
	combatlog "github.com/KirkDiggler/tactics-engine/internal/repositories/combat_log"
	"github.com/KirkDiggler/tactics-engine/internal/testutils"
)

const testEncounterID = "enc_test123"

type RedisCombatLogTestSuite struct {
	suite.Suite
	repo    combatlog.Repository
	cleanup func()
	now     time.Time
	ctx     context.Context
}

func (s *RedisCombatLogTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.ctx = context.Background()
	s.now = time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

	repo, err := combatlog.NewRedisRepository(&combatlog.Config{
		Client: client,
		Clock:  &clock.Fixed{T: s.now},
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisCombatLogTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisCombatLogTestSuite) TestAppendAndGet() {
	_, err := s.repo.Append(s.ctx, combatlog.AppendInput{
		EncounterID: testEncounterID,
		Entry:       combatlog.Entry{Category: "COMBAT", Text: "Askell attacks Grim"},
	})
	s.Require().NoError(err)

	_, err = s.repo.Append(s.ctx, combatlog.AppendInput{
		EncounterID: testEncounterID,
		Entry:       combatlog.Entry{Category: "COMBAT", Text: "Grim blocks the attack"},
	})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, combatlog.GetInput{EncounterID: testEncounterID})
	s.Require().NoError(err)
	s.Require().Len(out.Entries, 2)
	s.Equal("Askell attacks Grim", out.Entries[0].Text)
	s.Equal("Grim blocks the attack", out.Entries[1].Text)
	s.Equal(s.now, out.Entries[0].At.UTC(), "missing timestamps are filled from the clock")
}

func (s *RedisCombatLogTestSuite) TestGetEmptyEncounter() {
	out, err := s.repo.Get(s.ctx, combatlog.GetInput{EncounterID: "enc_unknown"})
	s.Require().NoError(err)
	s.Empty(out.Entries)
}

func (s *RedisCombatLogTestSuite) TestClear() {
	_, err := s.repo.Append(s.ctx, combatlog.AppendInput{
		EncounterID: testEncounterID,
		Entry:       combatlog.Entry{Category: "COMBAT", Text: "Askell attacks Grim"},
	})
	s.Require().NoError(err)

	_, err = s.repo.Clear(s.ctx, combatlog.ClearInput{EncounterID: testEncounterID})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, combatlog.GetInput{EncounterID: testEncounterID})
	s.Require().NoError(err)
	s.Empty(out.Entries)
}

func (s *RedisCombatLogTestSuite) TestEmptyEncounterIDRejected() {
	_, err := s.repo.Append(s.ctx, combatlog.AppendInput{
		Entry: combatlog.Entry{Category: "COMBAT", Text: "orphan line"},
	})
	s.Error(err)

	_, err = s.repo.Get(s.ctx, combatlog.GetInput{})
	s.Error(err)

	_, err = s.repo.Clear(s.ctx, combatlog.ClearInput{})
	s.Error(err)
}

func TestRedisCombatLogTestSuite(t *testing.T) {
	suite.Run(t, new(RedisCombatLogTestSuite))
}

func TestSinkRecordsLines(t *testing.T) {
	repo := combatlog.NewInMemoryRepository(nil)
	sink := combatlog.NewSink(repo, testEncounterID)

	sink.Send("COMBAT", "Askell attacks Grim")
	sink.Send("COMBAT", "Grim is slain by Askell")

	out, err := repo.Get(context.Background(), combatlog.GetInput{EncounterID: testEncounterID})
	if err != nil {
		t.Fatalf("get log: %v", err)
	}
	if len(out.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(out.Entries))
	}
	if out.Entries[1].Text != "Grim is slain by Askell" {
		t.Fatalf("unexpected entry: %q", out.Entries[1].Text)
	}
}
