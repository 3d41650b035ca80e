package dice

import (
	"math/rand"

	"github.com/KirkDiggler/tactics-engine/internal/errors"
)

// ScriptedRoller replays a fixed sequence of faces. Tests use it to force
// exact combat outcomes; it fails loudly when the script runs dry so a test
// never silently consumes randomness it did not plan for.
type ScriptedRoller struct {
	faces []int
	next  int
}

// NewScripted creates a roller that returns the given faces in order.
func NewScripted(faces ...int) *ScriptedRoller {
	return &ScriptedRoller{faces: faces}
}

// Roll returns the next scripted face.
func (s *ScriptedRoller) Roll(_ int) (int, error) {
	if s.next >= len(s.faces) {
		return 0, errors.Internalf("scripted roller exhausted after %d rolls", len(s.faces))
	}
	face := s.faces[s.next]
	s.next++
	return face, nil
}

// RollN returns the next count scripted faces.
func (s *ScriptedRoller) RollN(count, size int) ([]int, error) {
	faces := make([]int, 0, count)
	for i := 0; i < count; i++ {
		face, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		faces = append(faces, face)
	}
	return faces, nil
}

// Remaining reports how many scripted faces are left unconsumed.
func (s *ScriptedRoller) Remaining() int {
	return len(s.faces) - s.next
}

// SeededRoller is a deterministic PRNG roller for reproducible simulations.
type SeededRoller struct {
	rng *rand.Rand
}

// NewSeeded creates a roller seeded with the given value.
func NewSeeded(seed int64) *SeededRoller {
	return &SeededRoller{rng: rand.New(rand.NewSource(seed))}
}

// Roll returns a uniform face in [1, size].
func (s *SeededRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("die size must be positive, got %d", size)
	}
	return 1 + s.rng.Intn(size), nil
}

// RollN returns count uniform faces in [1, size].
func (s *SeededRoller) RollN(count, size int) ([]int, error) {
	faces := make([]int, 0, count)
	for i := 0; i < count; i++ {
		face, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		faces = append(faces, face)
	}
	return faces, nil
}
