package core

// Spawner creates enemies at random and removes the ones that left the grid.
type Spawner struct {
	Rate  float64 // expected spawns per second
	Speed float64 // horizontal speed in px/s
	level *Level
	rng   Rand
	lanes []int
}

// NewSpawner creates a spawner for the stone lanes of level.
func NewSpawner(level *Level, rng Rand, rate, speed float64) *Spawner {
	return &Spawner{
		Rate:  rate,
		Speed: speed,
		level: level,
		rng:   rng,
		lanes: level.StoneRows(),
	}
}

// TrySpawn runs one spawn trial for a frame of dt seconds and returns the new
// enemy, or nil. The trial succeeds with probability dt*Rate, so the expected
// spawn count per second does not depend on the frame rate.
//
// Draw order on the random source: trial, lane, side.
func (s *Spawner) TrySpawn(dt float64) *Enemy {
	if len(s.lanes) == 0 {
		return nil
	}
	if s.rng.Float64() >= dt*s.Rate {
		return nil
	}

	row := s.lanes[s.rng.Intn(len(s.lanes))]
	y := float64(row) * s.level.TileHeight()

	if s.rng.Intn(2) == 0 {
		// Enter from the left edge, moving right
		return NewEnemy(Vec2{X: -s.level.TileWidth(), Y: y}, Vec2{X: s.Speed})
	}
	return NewEnemy(Vec2{X: s.level.WidthPixels() + s.level.TileWidth(), Y: y}, Vec2{X: -s.Speed})
}

// Sweep removes every enemy that is off-screen in its direction of travel.
// Each pass removes the first match and rescans until a pass finds none.
// Order of the remaining enemies is preserved.
func (s *Spawner) Sweep(enemies []*Enemy) []*Enemy {
	for {
		idx := -1
		for i, e := range enemies {
			if e.OffScreen(s.level) {
				idx = i
				break
			}
		}
		if idx < 0 {
			return enemies
		}
		enemies = append(enemies[:idx], enemies[idx+1:]...)
	}
}
