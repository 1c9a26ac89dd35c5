package core_test

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-crossing/internal/games/crossing/core"
)

func TestSpawnerTrialProbability(t *testing.T) {
	l := newDefaultLevel()

	tests := []struct {
		name  string
		draw  float64
		dt    float64
		spawn bool
	}{
		{"draw below dt*rate", 0.049, 0.1, true},
		{"draw equal to dt*rate", 0.05, 0.1, false},
		{"draw above dt*rate", 0.5, 0.1, false},
		{"zero dt never spawns", 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rng := &scriptedRand{floats: []float64{tc.draw}, floatAfter: 1}
			s := core.NewSpawner(l, rng, 0.5, 100)
			e := s.TrySpawn(tc.dt)
			if (e != nil) != tc.spawn {
				t.Errorf("TrySpawn() spawned = %v, expected %v", e != nil, tc.spawn)
			}
		})
	}
}

func TestSpawnerPlacement(t *testing.T) {
	l := newDefaultLevel()

	tests := []struct {
		name string
		ints []int // lane index, side
		pos  core.Vec2
		vel  core.Vec2
	}{
		{"left edge in lane 2", []int{1, 0}, core.Vec2{X: -101, Y: 166}, core.Vec2{X: 100}},
		{"right edge in lane 1", []int{0, 1}, core.Vec2{X: 606, Y: 83}, core.Vec2{X: -100}},
		{"right edge in lane 3", []int{2, 1}, core.Vec2{X: 606, Y: 249}, core.Vec2{X: -100}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rng := &scriptedRand{floats: []float64{0}, ints: tc.ints, floatAfter: 1}
			s := core.NewSpawner(l, rng, 0.5, 100)
			e := s.TrySpawn(0.1)
			if e == nil {
				t.Fatal("expected a spawn")
			}
			if e.Pos != tc.pos {
				t.Errorf("spawn position = %v, expected %v", e.Pos, tc.pos)
			}
			if e.Vel != tc.vel {
				t.Errorf("spawn velocity = %v, expected %v", e.Vel, tc.vel)
			}
		})
	}
}

func TestSpawnerUsesOnlyStoneLanes(t *testing.T) {
	l := newDefaultLevel()
	rng := rand.New(rand.NewSource(7))
	// dt*rate = 1: every trial succeeds
	s := core.NewSpawner(l, rng, 10, 100)

	lefts, rights := 0, 0
	for i := 0; i < 1000; i++ {
		e := s.TrySpawn(0.1)
		if e == nil {
			t.Fatal("expected a spawn on every trial")
		}
		row := int(e.Pos.Y / l.TileHeight())
		if row < 1 || row > 3 {
			t.Fatalf("enemy spawned in row %d", row)
		}
		if e.MovingLeft() {
			rights++
		} else {
			lefts++
		}
	}
	if lefts == 0 || rights == 0 {
		t.Errorf("both sides should be used, got %d left and %d right spawns", lefts, rights)
	}
}

func TestSpawnerSweepRemovesAllOffScreen(t *testing.T) {
	l := newDefaultLevel()
	s := core.NewSpawner(l, neverSpawn(), 0.5, 100)

	keepA := core.NewEnemy(core.Vec2{X: 10, Y: 83}, core.Vec2{X: 100})
	keepB := core.NewEnemy(core.Vec2{X: 606, Y: 166}, core.Vec2{X: -100})
	keepC := core.NewEnemy(core.Vec2{X: -101, Y: 249}, core.Vec2{X: 100})

	enemies := []*core.Enemy{
		core.NewEnemy(core.Vec2{X: 600, Y: 83}, core.Vec2{X: 100}),
		keepA,
		core.NewEnemy(core.Vec2{X: -200, Y: 83}, core.Vec2{X: -100}),
		core.NewEnemy(core.Vec2{X: -101, Y: 166}, core.Vec2{X: -100}),
		keepB,
		core.NewEnemy(core.Vec2{X: 505, Y: 249}, core.Vec2{X: 100}),
		keepC,
		core.NewEnemy(core.Vec2{X: 9999, Y: 249}, core.Vec2{X: 100}),
	}

	got := s.Sweep(enemies)
	if len(got) != 3 {
		t.Fatalf("Sweep() left %d enemies, expected 3", len(got))
	}
	if got[0] != keepA || got[1] != keepB || got[2] != keepC {
		t.Error("Sweep() should preserve the order of the remaining enemies")
	}
}

func TestSpawnerSweepExhaustiveEveryFrame(t *testing.T) {
	l := newDefaultLevel()
	rng := rand.New(rand.NewSource(42))
	s := core.NewSpawner(l, rng, 5, 100)

	var enemies []*core.Enemy
	for frame := 0; frame < 2000; frame++ {
		dt := 0.1 * rng.Float64()
		if e := s.TrySpawn(dt); e != nil {
			enemies = append(enemies, e)
		}
		enemies = s.Sweep(enemies)
		for _, e := range enemies {
			if e.OffScreen(l) {
				t.Fatalf("frame %d: off-screen enemy at %v survived the sweep", frame, e.Pos)
			}
		}
		for _, e := range enemies {
			e.Update(dt)
		}
	}
}
