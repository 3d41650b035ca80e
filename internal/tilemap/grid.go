// Package tilemap provides a square-grid map with tile heights, lighting,
// and footprint-aware occupancy. It backs the combat pipeline's map queries
// in tests and the simulator; room generation and presets live outside the
// engine.
package tilemap

import (
	"github.com/KirkDiggler/tactics-engine/internal/entities"
	"github.com/KirkDiggler/tactics-engine/internal/errors"
)

type tile struct {
	height  int
	light   entities.LightLevel
	blocked bool
}

// Grid is a rectangular tile map tracking terrain and creature placement.
type Grid struct {
	width, height int
	tiles         []tile
	creatures     map[string]*entities.Creature
}

// New creates an empty grid with all tiles lit, flat, and passable.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.InvalidArgumentf("grid dimensions must be positive, got %dx%d", width, height)
	}

	tiles := make([]tile, width*height)
	for i := range tiles {
		tiles[i].light = entities.LightLit
	}

	return &Grid{
		width:     width,
		height:    height,
		tiles:     tiles,
		creatures: make(map[string]*entities.Creature),
	}, nil
}

// Width returns the grid width in tiles.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in tiles.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether the tile lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

func (g *Grid) at(x, y int) *tile {
	return &g.tiles[y*g.width+x]
}

// SetTileHeight sets the terrain elevation of a tile.
func (g *Grid) SetTileHeight(x, y, height int) {
	if g.InBounds(x, y) {
		g.at(x, y).height = height
	}
}

// SetLight sets the illumination of a tile.
func (g *Grid) SetLight(x, y int, light entities.LightLevel) {
	if g.InBounds(x, y) {
		g.at(x, y).light = light
	}
}

// SetBlocked marks a tile as impassable terrain.
func (g *Grid) SetBlocked(x, y int, blocked bool) {
	if g.InBounds(x, y) {
		g.at(x, y).blocked = blocked
	}
}

// HeightAt returns the terrain elevation at a tile. Off-grid tiles are at
// elevation zero.
func (g *Grid) HeightAt(x, y int) int {
	if !g.InBounds(x, y) {
		return 0
	}
	return g.at(x, y).height
}

// LightAt returns the illumination at a tile as seen by the viewer.
// Off-grid tiles are dark. Vision rules beyond raw tile light belong to the
// caller's visibility layer.
func (g *Grid) LightAt(x, y int, _ *entities.Creature) entities.LightLevel {
	if !g.InBounds(x, y) {
		return entities.LightDark
	}
	return g.at(x, y).light
}

// TerrainFree reports whether a footprint of w x h tiles anchored at (x,y)
// lies fully on the grid and on passable terrain, ignoring creatures.
func (g *Grid) TerrainFree(x, y, w, h int) bool {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			if !g.InBounds(x+dx, y+dy) || g.at(x+dx, y+dy).blocked {
				return false
			}
		}
	}
	return true
}

// IsFree reports whether a footprint anchored at (x,y) is passable terrain
// and unoccupied by any creature other than ignore.
func (g *Grid) IsFree(x, y, w, h int, ignore *entities.Creature) bool {
	if !g.TerrainFree(x, y, w, h) {
		return false
	}
	return !g.occupied(x, y, w, h, ignore)
}

func (g *Grid) occupied(x, y, w, h int, ignore *entities.Creature) bool {
	for _, c := range g.creatures {
		if ignore != nil && c.ID == ignore.ID {
			continue
		}
		pos, ok := c.Position()
		if !ok {
			continue
		}
		if rectsOverlap(x, y, w, h, pos.X, pos.Y, c.Footprint.Width, c.Footprint.Height) {
			return true
		}
	}
	return false
}

func rectsOverlap(ax, ay, aw, ah, bx, by, bw, bh int) bool {
	return ax < bx+bw && bx < ax+aw && ay < by+bh && by < ay+ah
}

// Place puts a creature onto the grid at the given anchor tile.
func (g *Grid) Place(c *entities.Creature, x, y int) error {
	if c == nil {
		return errors.InvalidArgument("creature is required")
	}
	if !g.IsFree(x, y, c.Footprint.Width, c.Footprint.Height, c) {
		return errors.FailedPreconditionf("tile (%d,%d) cannot hold %s", x, y, c.Name)
	}

	c.SetPosition(entities.Position{X: x, Y: y})
	g.creatures[c.ID] = c
	return nil
}

// MoveCreature relocates an on-map creature to a new anchor tile.
func (g *Grid) MoveCreature(c *entities.Creature, x, y int) error {
	if c == nil {
		return errors.InvalidArgument("creature is required")
	}
	if _, tracked := g.creatures[c.ID]; !tracked {
		return errors.FailedPreconditionf("%s is not on the map", c.Name)
	}
	if !g.IsFree(x, y, c.Footprint.Width, c.Footprint.Height, c) {
		return errors.FailedPreconditionf("tile (%d,%d) cannot hold %s", x, y, c.Name)
	}

	c.SetPosition(entities.Position{X: x, Y: y})
	return nil
}

// Remove takes a creature off the grid.
func (g *Grid) Remove(c *entities.Creature) {
	if c == nil {
		return
	}
	delete(g.creatures, c.ID)
	c.ClearPosition()
}
