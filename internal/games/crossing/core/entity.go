package core

import (
	platformcore "github.com/vovakirdan/tui-crossing/internal/core"
)

// Vec2 is a pixel position, velocity or displacement.
type Vec2 = platformcore.Vec2

// Kind tags the closed set of entity variants.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
	KindGem
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindGem:
		return "gem"
	default:
		return "unknown"
	}
}

// Entity is any positioned, drawable game object.
type Entity interface {
	Kind() Kind
	Position() Vec2
	Sprite() string
}

// Body is the position shared by every entity.
type Body struct {
	Pos Vec2
}

// Position returns the top-left pixel position.
func (b *Body) Position() Vec2 {
	return b.Pos
}

// Move advances the position by vel*dt.
func (b *Body) Move(vel Vec2, dt float64) {
	b.Pos = b.Pos.Add(vel.Scale(dt))
}

// Shift displaces the position by d.
func (b *Body) Shift(d Vec2) {
	b.Pos = b.Pos.Add(d)
}

// Direction is a discrete player move.
type Direction uint8

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// Player is the entity controlled by input. It moves one tile per step and
// never leaves the grid.
type Player struct {
	Body
	tileW, tileH float64
	maxX, maxY   float64
}

// NewPlayer places a player on tile (row, col) of the level.
func NewPlayer(level *Level, row, col int) *Player {
	return &Player{
		Body:  Body{Pos: level.TileOrigin(row, col)},
		tileW: level.TileWidth(),
		tileH: level.TileHeight(),
		maxX:  level.WidthPixels() - level.TileWidth(),
		maxY:  level.HeightPixels() - level.TileHeight(),
	}
}

// Kind implements Entity.
func (p *Player) Kind() Kind { return KindPlayer }

// Sprite implements Entity.
func (p *Player) Sprite() string { return "char-boy" }

// Update shifts the player one tile in dir and clamps the result to the grid.
// The clamp runs for every call, including DirNone.
func (p *Player) Update(dir Direction) {
	switch dir {
	case DirLeft:
		p.Shift(platformcore.V(-p.tileW, 0))
	case DirRight:
		p.Shift(platformcore.V(p.tileW, 0))
	case DirUp:
		p.Shift(platformcore.V(0, -p.tileH))
	case DirDown:
		p.Shift(platformcore.V(0, p.tileH))
	case DirNone:
	}
	p.Pos.X = platformcore.ClampF(p.Pos.X, 0, p.maxX)
	p.Pos.Y = platformcore.ClampF(p.Pos.Y, 0, p.maxY)
}

// Enemy crosses a stone lane at constant velocity.
type Enemy struct {
	Body
	Vel Vec2
}

// NewEnemy creates an enemy at pos moving with vel.
func NewEnemy(pos, vel Vec2) *Enemy {
	return &Enemy{Body: Body{Pos: pos}, Vel: vel}
}

// Kind implements Entity.
func (e *Enemy) Kind() Kind { return KindEnemy }

// Sprite implements Entity.
func (e *Enemy) Sprite() string {
	if e.MovingLeft() {
		return "enemy-bug-left"
	}
	return "enemy-bug"
}

// Update moves the enemy for dt seconds.
func (e *Enemy) Update(dt float64) {
	e.Move(e.Vel, dt)
}

// MovingLeft reports whether the enemy travels towards negative x.
func (e *Enemy) MovingLeft() bool {
	return e.Vel.X < 0
}

// OffScreen reports whether the enemy has fully left the level in its
// direction of travel.
func (e *Enemy) OffScreen(level *Level) bool {
	if e.MovingLeft() {
		return e.Pos.X <= -level.TileWidth()
	}
	return e.Pos.X >= level.WidthPixels()
}

// GemColor selects the gem sprite.
type GemColor uint8

const (
	GemBlue GemColor = iota
	GemGreen
	GemOrange
)

var gemSprites = [...]string{
	GemBlue:   "gem-blue",
	GemGreen:  "gem-green",
	GemOrange: "gem-orange",
}

// Gem is a stationary pickup worth Points.
type Gem struct {
	Body
	Color  GemColor
	Points int
}

// NewGem creates a gem at pos.
func NewGem(pos Vec2, color GemColor, points int) *Gem {
	return &Gem{Body: Body{Pos: pos}, Color: color, Points: points}
}

// Kind implements Entity.
func (g *Gem) Kind() Kind { return KindGem }

// Sprite implements Entity.
func (g *Gem) Sprite() string {
	if int(g.Color) < len(gemSprites) {
		return gemSprites[g.Color]
	}
	return "gem-blue"
}

var (
	_ Entity = (*Player)(nil)
	_ Entity = (*Enemy)(nil)
	_ Entity = (*Gem)(nil)
)
