package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/tactics-engine/internal/entities"
)

func TestTileDistance(t *testing.T) {
	testCases := []struct {
		name string
		a, b entities.Position
		want int
	}{
		{"same tile", entities.Position{X: 2, Y: 2}, entities.Position{X: 2, Y: 2}, 0},
		{"orthogonal", entities.Position{X: 0, Y: 0}, entities.Position{X: 0, Y: 4}, 4},
		{"diagonal counts once", entities.Position{X: 0, Y: 0}, entities.Position{X: 3, Y: 3}, 3},
		{"mixed", entities.Position{X: 1, Y: 1}, entities.Position{X: 5, Y: 3}, 4},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, entities.TileDistance(tc.a, tc.b))
			assert.Equal(t, tc.want, entities.TileDistance(tc.b, tc.a))
		})
	}
}

func TestDirectionTo(t *testing.T) {
	origin := entities.Position{X: 5, Y: 5}

	assert.Equal(t, entities.FacingNorth, entities.DirectionTo(origin, entities.Position{X: 5, Y: 0}))
	assert.Equal(t, entities.FacingSouth, entities.DirectionTo(origin, entities.Position{X: 5, Y: 9}))
	assert.Equal(t, entities.FacingEast, entities.DirectionTo(origin, entities.Position{X: 9, Y: 5}))
	assert.Equal(t, entities.FacingSouthWest, entities.DirectionTo(origin, entities.Position{X: 2, Y: 8}))
}

func TestFacingOppositeAndRotate(t *testing.T) {
	assert.Equal(t, entities.FacingSouth, entities.FacingNorth.Opposite())
	assert.Equal(t, entities.FacingNorthWest, entities.FacingNorth.Rotate(-1))
	assert.Equal(t, entities.FacingNorthEast, entities.FacingNorth.Rotate(1))
	assert.Equal(t, entities.FacingNorth, entities.FacingNorth.Rotate(8))
}

func TestFacingOffset(t *testing.T) {
	assert.Equal(t, entities.Position{X: 0, Y: -1}, entities.FacingNorth.Offset())
	assert.Equal(t, entities.Position{X: -1, Y: 1}, entities.FacingSouthWest.Offset())
}
