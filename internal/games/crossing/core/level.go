package core

import (
	"errors"
	"fmt"
)

// Tile is the terrain type of one grid cell.
type Tile uint8

const (
	TileWater Tile = iota // Top row
	TileStone             // Enemy lanes
	TileGrass             // Safe rows at the bottom
)

// String returns the tile name.
func (t Tile) String() string {
	switch t {
	case TileWater:
		return "water"
	case TileStone:
		return "stone"
	case TileGrass:
		return "grass"
	default:
		return "unknown"
	}
}

// Sprite returns the sprite sheet id used to draw the tile.
func (t Tile) Sprite() string {
	return t.String() + "-block"
}

// ErrTileOutOfRange is returned when a tile lookup falls outside the grid.
var ErrTileOutOfRange = errors.New("tile out of range")

// LevelSpec holds the grid dimensions.
type LevelSpec struct {
	WidthTiles  int
	HeightTiles int
	TileWidth   float64 // pixels
	TileHeight  float64 // pixels
}

// DefaultLevelSpec returns the standard 5x6 grid of 101x83 px tiles.
func DefaultLevelSpec() LevelSpec {
	return LevelSpec{
		WidthTiles:  5,
		HeightTiles: 6,
		TileWidth:   101,
		TileHeight:  83,
	}
}

// Level is the static tile grid. It is immutable after construction.
// Tiles are stored in row-major order: index = row*WidthTiles + col.
type Level struct {
	spec  LevelSpec
	tiles []Tile
}

// NewLevel builds the grid: row 0 is water, the last two rows are grass and
// every row in between is a stone lane.
func NewLevel(spec LevelSpec) *Level {
	l := &Level{
		spec:  spec,
		tiles: make([]Tile, spec.WidthTiles*spec.HeightTiles),
	}
	for row := 0; row < spec.HeightTiles; row++ {
		t := TileStone
		switch {
		case row == 0:
			t = TileWater
		case row >= spec.HeightTiles-2:
			t = TileGrass
		}
		for col := 0; col < spec.WidthTiles; col++ {
			l.tiles[row*spec.WidthTiles+col] = t
		}
	}
	return l
}

// Tile returns the tile at (row, col).
func (l *Level) Tile(row, col int) (Tile, error) {
	if row < 0 || row >= l.spec.HeightTiles || col < 0 || col >= l.spec.WidthTiles {
		return 0, fmt.Errorf("%w: (%d, %d) outside %dx%d grid",
			ErrTileOutOfRange, row, col, l.spec.HeightTiles, l.spec.WidthTiles)
	}
	return l.tiles[row*l.spec.WidthTiles+col], nil
}

// MustTile is like Tile but panics on an out-of-range lookup.
// Callers iterate over the level's own dimensions, so a miss is a bug.
func (l *Level) MustTile(row, col int) Tile {
	t, err := l.Tile(row, col)
	if err != nil {
		panic(err)
	}
	return t
}

// Tiles returns a copy of the row-major tile sequence.
func (l *Level) Tiles() []Tile {
	out := make([]Tile, len(l.tiles))
	copy(out, l.tiles)
	return out
}

// Spec returns the dimensions the level was built with.
func (l *Level) Spec() LevelSpec { return l.spec }

// WidthTiles returns the grid width in tiles.
func (l *Level) WidthTiles() int { return l.spec.WidthTiles }

// HeightTiles returns the grid height in tiles.
func (l *Level) HeightTiles() int { return l.spec.HeightTiles }

// TileWidth returns the tile width in pixels.
func (l *Level) TileWidth() float64 { return l.spec.TileWidth }

// TileHeight returns the tile height in pixels.
func (l *Level) TileHeight() float64 { return l.spec.TileHeight }

// WidthPixels returns the level width in pixels.
func (l *Level) WidthPixels() float64 {
	return float64(l.spec.WidthTiles) * l.spec.TileWidth
}

// HeightPixels returns the level height in pixels.
func (l *Level) HeightPixels() float64 {
	return float64(l.spec.HeightTiles) * l.spec.TileHeight
}

// StoneRows returns the indices of the enemy lanes, top to bottom.
func (l *Level) StoneRows() []int {
	rows := make([]int, 0, l.spec.HeightTiles)
	for row := 0; row < l.spec.HeightTiles; row++ {
		if l.spec.WidthTiles > 0 && l.tiles[row*l.spec.WidthTiles] == TileStone {
			rows = append(rows, row)
		}
	}
	return rows
}

// TileOrigin returns the pixel position of the top-left corner of (row, col).
func (l *Level) TileOrigin(row, col int) Vec2 {
	return Vec2{X: float64(col) * l.spec.TileWidth, Y: float64(row) * l.spec.TileHeight}
}
