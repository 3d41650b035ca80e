// Package dice implements the d6 randomness provider for combat resolution.
//
// All randomness flows through a rpg-toolkit dice.Roller so that tests can
// script exact die faces. Flags on an attribute roll (fumble, critical hit,
// critical success) are computed exactly once, when the roll is made; every
// downstream phase reads the same flags.
package dice

import (
	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/tactics-engine/internal/errors"
)

const (
	// DieSides is the only die size the combat rules use.
	DieSides = 6

	// DefaultFumbleThreshold marks rolls of 1 as fumble candidates.
	DefaultFumbleThreshold = 1

	// attributeDiceCount is fixed: attribute tests are always 2d6.
	attributeDiceCount = 2
)

// Provider produces die results from an injectable roller.
type Provider struct {
	roller toolkitdice.Roller
}

// NewProvider creates a dice provider. A nil roller falls back to the
// toolkit's default PRNG roller.
func NewProvider(roller toolkitdice.Roller) *Provider {
	if roller == nil {
		roller = toolkitdice.DefaultRoller
	}
	return &Provider{roller: roller}
}

// RollXd6 rolls n independent d6 and returns the individual faces.
func (p *Provider) RollXd6(n int) ([]int, error) {
	if n <= 0 {
		return nil, errors.InvalidArgumentf("dice count must be positive, got %d", n)
	}

	faces, err := p.roller.RollN(n, DieSides)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll dice")
	}
	return faces, nil
}

// RollD6 rolls a single d6.
func (p *Provider) RollD6() (int, error) {
	face, err := p.roller.Roll(DieSides)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll die")
	}
	return face, nil
}

// RollDie rolls a single die with the given number of sides. Selection among
// n equally likely outcomes rolls a die of size n so every outcome carries
// the same weight.
func (p *Provider) RollDie(sides int) (int, error) {
	if sides <= 0 {
		return 0, errors.InvalidArgumentf("die size must be positive, got %d", sides)
	}
	face, err := p.roller.Roll(sides)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll die")
	}
	return face, nil
}

// AttributeResult holds one 2d6 attribute test with its outcome flags.
type AttributeResult struct {
	// Dice are the two raw faces, in roll order.
	Dice []int

	// Modifier is the flat modifier added to the face sum. Triggers may
	// adjust it before the total is compared.
	Modifier int

	// Fumble is true when two or more dice landed at or below the fumble
	// threshold.
	Fumble bool

	// CriticalHit is true when any die shows 6.
	CriticalHit bool

	// CriticalSuccess is true when two or more dice show 6.
	CriticalSuccess bool
}

// Total returns the face sum plus the modifier.
func (r *AttributeResult) Total() int {
	total := r.Modifier
	for _, d := range r.Dice {
		total += d
	}
	return total
}

// HasFace reports whether any die in the roll shows the given face.
func (r *AttributeResult) HasFace(face int) bool {
	for _, d := range r.Dice {
		if d == face {
			return true
		}
	}
	return false
}

// AttributeRoll performs a 2d6 attribute test with the default fumble
// threshold of 1.
func (p *Provider) AttributeRoll(modifier int) (*AttributeResult, error) {
	return p.AttributeRollThreshold(modifier, DefaultFumbleThreshold)
}

// AttributeRollThreshold performs a 2d6 attribute test with an explicit
// fumble threshold. A threshold of 6 or more would let a roll be both a
// fumble and a critical success, so it is rejected.
func (p *Provider) AttributeRollThreshold(modifier, fumbleThreshold int) (*AttributeResult, error) {
	if fumbleThreshold < 1 || fumbleThreshold >= DieSides {
		return nil, errors.OutOfRangef("fumble threshold must be in [1,%d], got %d", DieSides-1, fumbleThreshold)
	}

	faces, err := p.RollXd6(attributeDiceCount)
	if err != nil {
		return nil, err
	}

	return newAttributeResult(faces, modifier, fumbleThreshold), nil
}

func newAttributeResult(faces []int, modifier, fumbleThreshold int) *AttributeResult {
	res := &AttributeResult{
		Dice:     faces,
		Modifier: modifier,
	}

	// A fumble needs two dice landing on the same low face.
	for v := 1; v <= fumbleThreshold; v++ {
		matching := 0
		for _, d := range faces {
			if d == v {
				matching++
			}
		}
		if matching >= 2 {
			res.Fumble = true
			break
		}
	}

	sixes := 0
	for _, d := range faces {
		if d == DieSides {
			sixes++
		}
	}
	res.CriticalHit = sixes >= 1
	res.CriticalSuccess = sixes >= 2

	return res
}
