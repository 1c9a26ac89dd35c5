package core

// Sprite is one entity to draw: a sprite sheet id at a pixel position.
type Sprite struct {
	ID   string
	Kind Kind
	X, Y float64
}

// Frame describes everything a renderer needs for one frame. It is a value
// snapshot; mutating it does not affect the world.
type Frame struct {
	Rows, Cols   int
	Tiles        []Tile // row-major, Rows*Cols
	TileW, TileH float64
	WidthPx      float64
	HeightPx     float64

	Sprites []Sprite // draw order: gems, enemies, player

	State        State
	Score        int
	Level        int
	GemsLeft     int
	Endless      bool
	InputAllowed bool
	GraceLeft    float64 // seconds until input opens
	BlinkOn      bool    // end-state message visible
}

// TileAt returns the tile at (row, col) of the frame. Callers iterate over
// Rows and Cols.
func (f Frame) TileAt(row, col int) Tile {
	return f.Tiles[row*f.Cols+col]
}

// Frame returns the render description of the current state.
func (w *World) Frame() Frame {
	all := w.entities.All()
	sprites := make([]Sprite, 0, len(all))
	for _, e := range all {
		pos := e.Position()
		sprites = append(sprites, Sprite{ID: e.Sprite(), Kind: e.Kind(), X: pos.X, Y: pos.Y})
	}

	return Frame{
		Rows:         w.level.HeightTiles(),
		Cols:         w.level.WidthTiles(),
		Tiles:        w.level.Tiles(),
		TileW:        w.level.TileWidth(),
		TileH:        w.level.TileHeight(),
		WidthPx:      w.level.WidthPixels(),
		HeightPx:     w.level.HeightPixels(),
		Sprites:      sprites,
		State:        w.machine.State(),
		Score:        w.score,
		Level:        w.levelNum,
		GemsLeft:     len(w.entities.Gems),
		Endless:      w.params.Endless,
		InputAllowed: w.machine.InputAllowed(),
		GraceLeft:    w.machine.GraceRemaining(),
		BlinkOn:      w.machine.BlinkOn(w.params.BlinkInterval),
	}
}
