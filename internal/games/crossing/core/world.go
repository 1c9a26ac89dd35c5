// Package core implements the crossing simulation: the tile grid, the
// player, enemy and gem entities, enemy spawning and removal, collision
// tests and the session state machine.
//
// The package has no rendering or terminal dependencies. Each frame the
// platform calls World.Update with the elapsed time and reads World.Frame
// to draw.
package core

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-crossing/internal/core"
)

// Params holds the tunable rules of a session.
type Params struct {
	Level          LevelSpec
	PlayerStartRow int
	PlayerStartCol int

	SpawnRate  float64 // enemy spawns per second
	EnemySpeed float64 // px/s

	EnemyRadius float64 // collision radius, fraction of tile width
	GemRadius   float64 // pickup radius, fraction of tile width

	Gems      int  // gems placed per level
	GemPoints int  // score per gem
	Endless   bool // gems respawn and a level is never won

	GracePeriod   float64 // seconds of ignored input after each reset
	BlinkInterval float64 // seconds per half-cycle of end-state messages
}

// DefaultParams returns the standard rules.
func DefaultParams() Params {
	return Params{
		Level:          DefaultLevelSpec(),
		PlayerStartRow: 5,
		PlayerStartCol: 2,
		SpawnRate:      0.5,
		EnemySpeed:     100,
		EnemyRadius:    DefaultEnemyRadius,
		GemRadius:      DefaultGemRadius,
		Gems:           3,
		GemPoints:      100,
		GracePeriod:    2,
		BlinkInterval:  0.5,
	}
}

// Difficulty scales spawn rate and enemy speed by level number.
type Difficulty interface {
	SpawnRate(base float64, level int) float64
	EnemySpeed(base float64, level int) float64
}

// Outcome reports what happened during one running frame.
type Outcome struct {
	HitEnemy    bool
	PickedUpGem bool
	LevelWon    bool
}

// Entities owns every entity of the current level.
type Entities struct {
	Player  *Player
	Enemies []*Enemy // spawn order
	Gems    []*Gem
}

// All returns the entities in draw order: gems, enemies, player.
func (e *Entities) All() []Entity {
	out := make([]Entity, 0, len(e.Gems)+len(e.Enemies)+1)
	for _, g := range e.Gems {
		out = append(out, g)
	}
	for _, en := range e.Enemies {
		out = append(out, en)
	}
	if e.Player != nil {
		out = append(out, e.Player)
	}
	return out
}

// World is a crossing session. It is not safe for concurrent use; the
// platform drives it from a single loop.
type World struct {
	params     Params
	difficulty Difficulty
	rng        Rand

	level    *Level
	machine  *Machine
	spawner  *Spawner
	detector CollisionDetector
	entities Entities

	score    int
	levelNum int
}

// NewWorld creates a session on level 1 in StateInitialising.
// difficulty may be nil, in which case every level uses the base rates.
func NewWorld(p Params, rng Rand, difficulty Difficulty) *World {
	w := &World{
		params:     p,
		difficulty: difficulty,
		rng:        rng,
		machine:    NewMachine(p.GracePeriod),
		levelNum:   1,
	}
	w.resetLevel()
	return w
}

// resetLevel rebuilds the grid and recreates all entities.
func (w *World) resetLevel() {
	w.level = NewLevel(w.params.Level)

	rate, speed := w.params.SpawnRate, w.params.EnemySpeed
	if w.difficulty != nil {
		rate = w.difficulty.SpawnRate(rate, w.levelNum)
		speed = w.difficulty.EnemySpeed(speed, w.levelNum)
	}
	w.spawner = NewSpawner(w.level, w.rng, rate, speed)
	w.detector = NewCollisionDetector(w.level, w.params.EnemyRadius, w.params.GemRadius)

	w.entities = Entities{
		Player: NewPlayer(w.level, w.params.PlayerStartRow, w.params.PlayerStartCol),
	}
	w.entities.Player.Update(DirNone)
	for i := 0; i < w.params.Gems; i++ {
		if !w.placeGem(GemColor(i % len(gemSprites))) {
			break
		}
	}
}

// placeGem puts a gem on a random free stone tile. Returns false when every
// stone tile is taken.
func (w *World) placeGem(color GemColor) bool {
	taken := make(map[Vec2]bool, len(w.entities.Gems)+1)
	for _, g := range w.entities.Gems {
		taken[g.Pos] = true
	}
	if w.entities.Player != nil {
		taken[w.entities.Player.Pos] = true
	}

	var free []Vec2
	for _, row := range w.level.StoneRows() {
		for col := 0; col < w.level.WidthTiles(); col++ {
			pos := w.level.TileOrigin(row, col)
			if !taken[pos] {
				free = append(free, pos)
			}
		}
	}
	if len(free) == 0 {
		return false
	}

	pos := free[w.rng.Intn(len(free))]
	w.entities.Gems = append(w.entities.Gems, NewGem(pos, color, w.params.GemPoints))
	return true
}

// Update advances the session by dt seconds, clamped to [0, 0.1].
//
// A zero dt changes nothing. The first positive frame after a reset moves
// Initialising to Running and is simulated. Running frames execute, in
// order: spawn trial, removal sweep, enemy motion, enemy collision, gem
// pickup. In the end states only the blink timer advances.
//
// The sweep runs before motion, so no off-screen enemy survives the sweep
// step, but an enemy that crosses the edge while moving stays in Entities
// until the next frame.
func (w *World) Update(dt float64) Outcome {
	dt = platformcore.ClampDelta(dt)
	if dt == 0 {
		return Outcome{}
	}

	switch w.machine.State() {
	case StateInitialising:
		if err := w.machine.Start(); err != nil {
			return Outcome{}
		}
		fallthrough
	case StateRunning:
		return w.step(dt)
	case StateLevelWon, StateGameOver:
		w.machine.Advance(dt)
	}
	return Outcome{}
}

func (w *World) step(dt float64) Outcome {
	w.machine.Advance(dt)

	if e := w.spawner.TrySpawn(dt); e != nil {
		w.entities.Enemies = append(w.entities.Enemies, e)
	}
	w.entities.Enemies = w.spawner.Sweep(w.entities.Enemies)
	for _, e := range w.entities.Enemies {
		e.Update(dt)
	}

	var out Outcome
	out.HitEnemy = w.detector.HitsAnyEnemy(w.entities.Player, w.entities.Enemies)

	if picked := w.detector.PickedGems(w.entities.Player, w.entities.Gems); len(picked) > 0 {
		out.PickedUpGem = true
		w.collect(picked)
	}

	out.LevelWon = !w.params.Endless && w.params.Gems > 0 && len(w.entities.Gems) == 0

	// A hit on the same frame as the last gem still ends the game.
	switch {
	case out.HitEnemy:
		_ = w.machine.Lose()
	case out.LevelWon:
		_ = w.machine.Win()
	}
	return out
}

// collect removes the gems at the given ascending indices and scores them.
// In endless mode each collected gem is replaced elsewhere.
func (w *World) collect(picked []int) {
	colors := make([]GemColor, 0, len(picked))
	for i := len(picked) - 1; i >= 0; i-- {
		idx := picked[i]
		g := w.entities.Gems[idx]
		w.score += g.Points
		colors = append(colors, g.Color)
		w.entities.Gems = append(w.entities.Gems[:idx], w.entities.Gems[idx+1:]...)
	}
	if !w.params.Endless {
		return
	}
	for _, c := range colors {
		w.placeGem(c)
	}
}

// Input applies a player move. It returns false, changing nothing, when
// input is not currently allowed.
func (w *World) Input(dir Direction) bool {
	if dir == DirNone || !w.machine.InputAllowed() {
		return false
	}
	w.entities.Player.Update(dir)
	return true
}

// Continue starts the next level after a win. Score is kept.
func (w *World) Continue() error {
	if err := w.machine.Continue(); err != nil {
		return fmt.Errorf("crossing: %w", err)
	}
	w.levelNum++
	w.resetLevel()
	return nil
}

// Restart starts over from level 1 after a loss. Score is reset.
func (w *World) Restart() error {
	if err := w.machine.Restart(); err != nil {
		return fmt.Errorf("crossing: %w", err)
	}
	w.levelNum = 1
	w.score = 0
	w.resetLevel()
	return nil
}

// State returns the session state.
func (w *World) State() State { return w.machine.State() }

// Score returns the current score.
func (w *World) Score() int { return w.score }

// LevelNumber returns the 1-based level number.
func (w *World) LevelNumber() int { return w.levelNum }

// Level returns the current grid.
func (w *World) Level() *Level { return w.level }

// Entities returns the live entity collection.
func (w *World) Entities() *Entities { return &w.entities }

// Spawner returns the enemy spawner of the current level.
func (w *World) Spawner() *Spawner { return w.spawner }

// InputAllowed reports whether player moves are currently accepted.
func (w *World) InputAllowed() bool { return w.machine.InputAllowed() }

// Params returns the rules the world was created with.
func (w *World) Params() Params { return w.params }
