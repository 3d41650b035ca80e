package tilemap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/tactics-engine/internal/entities"
	"github.com/KirkDiggler/tactics-engine/internal/tilemap"
)

func testCreature(t *testing.T, presetID, id string) *entities.Creature {
	t.Helper()
	preset, err := entities.PresetByID(presetID)
	require.NoError(t, err)
	c, err := entities.NewCreatureFromPreset(preset, id, "testers")
	require.NoError(t, err)
	return c
}

func TestNew_RejectsBadDimensions(t *testing.T) {
	_, err := tilemap.New(0, 5)
	assert.Error(t, err)
}

func TestTerrainQueries(t *testing.T) {
	g, err := tilemap.New(10, 8)
	require.NoError(t, err)

	assert.True(t, g.InBounds(9, 7))
	assert.False(t, g.InBounds(10, 7))
	assert.False(t, g.InBounds(-1, 0))

	g.SetTileHeight(3, 3, 2)
	assert.Equal(t, 2, g.HeightAt(3, 3))
	assert.Equal(t, 0, g.HeightAt(99, 99), "off-grid tiles are flat")

	g.SetLight(4, 4, entities.LightDark)
	assert.Equal(t, entities.LightDark, g.LightAt(4, 4, nil))
	assert.Equal(t, entities.LightLit, g.LightAt(0, 0, nil))
	assert.Equal(t, entities.LightDark, g.LightAt(-1, 0, nil))

	g.SetBlocked(5, 5, true)
	assert.False(t, g.TerrainFree(5, 5, 1, 1))
	assert.False(t, g.TerrainFree(4, 4, 2, 2), "footprint overlaps the blocked tile")
	assert.True(t, g.TerrainFree(0, 0, 2, 2))
}

func TestPlaceAndOccupancy(t *testing.T) {
	g, err := tilemap.New(10, 10)
	require.NoError(t, err)

	wolf := testCreature(t, entities.PresetDireWolf, "wolf-1")
	require.NoError(t, g.Place(wolf, 2, 2))

	pos, ok := wolf.Position()
	require.True(t, ok)
	assert.Equal(t, entities.Position{X: 2, Y: 2}, pos)

	assert.False(t, g.IsFree(2, 2, 1, 1, nil))
	assert.True(t, g.IsFree(2, 2, 1, 1, wolf), "a creature ignores itself")

	other := testCreature(t, entities.PresetGoblin, "gob-1")
	err = g.Place(other, 2, 2)
	assert.Error(t, err, "occupied tiles reject placement")
	require.NoError(t, g.Place(other, 3, 2))
}

func TestFootprintOccupancy(t *testing.T) {
	g, err := tilemap.New(10, 10)
	require.NoError(t, err)

	ogre := testCreature(t, entities.PresetOgre, "ogre-1")
	require.NoError(t, g.Place(ogre, 4, 4))

	// The ogre covers 4,4..5,5.
	assert.False(t, g.IsFree(5, 5, 1, 1, nil))
	assert.False(t, g.IsFree(3, 3, 2, 2, nil), "footprints overlap corner to corner")
	assert.True(t, g.IsFree(6, 4, 1, 1, nil))
}

func TestMoveCreature(t *testing.T) {
	g, err := tilemap.New(10, 10)
	require.NoError(t, err)

	wolf := testCreature(t, entities.PresetDireWolf, "wolf-1")
	require.NoError(t, g.Place(wolf, 1, 1))
	require.NoError(t, g.MoveCreature(wolf, 2, 1))

	pos, _ := wolf.Position()
	assert.Equal(t, entities.Position{X: 2, Y: 1}, pos)

	stranger := testCreature(t, entities.PresetGoblin, "gob-1")
	assert.Error(t, g.MoveCreature(stranger, 5, 5), "unplaced creatures cannot move")

	g.SetBlocked(3, 1, true)
	assert.Error(t, g.MoveCreature(wolf, 3, 1))
}

func TestRemove(t *testing.T) {
	g, err := tilemap.New(5, 5)
	require.NoError(t, err)

	wolf := testCreature(t, entities.PresetDireWolf, "wolf-1")
	require.NoError(t, g.Place(wolf, 1, 1))
	g.Remove(wolf)

	_, onMap := wolf.Position()
	assert.False(t, onMap)
	assert.True(t, g.IsFree(1, 1, 1, 1, nil))
}
