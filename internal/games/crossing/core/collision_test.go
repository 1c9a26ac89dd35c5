package core_test

import (
	"testing"

	"github.com/vovakirdan/tui-crossing/internal/games/crossing/core"
)

func TestCollisionWithEnemy(t *testing.T) {
	l := newDefaultLevel()
	d := core.NewCollisionDetector(l, core.DefaultEnemyRadius, core.DefaultGemRadius)

	tests := []struct {
		name     string
		offset   core.Vec2
		expected bool
	}{
		{"same position", core.Vec2{}, true},
		{"60px apart", core.Vec2{X: 60}, true},
		{"61px apart", core.Vec2{X: 61}, false},
		{"one tile apart horizontally", core.Vec2{X: 101}, false},
		{"one tile apart vertically", core.Vec2{Y: 83}, false},
		{"diagonal within radius", core.Vec2{X: 40, Y: 40}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := core.NewPlayer(l, 2, 2)
			e := core.NewEnemy(p.Pos.Add(tc.offset), core.Vec2{X: 100})
			if got := d.HitsAnyEnemy(p, []*core.Enemy{e}); got != tc.expected {
				t.Errorf("HitsAnyEnemy() = %v, expected %v (distance %f)", got, tc.expected, d.Distance(p.Pos, e.Pos))
			}
		})
	}
}

func TestCollisionNoEnemies(t *testing.T) {
	l := newDefaultLevel()
	d := core.NewCollisionDetector(l, core.DefaultEnemyRadius, core.DefaultGemRadius)

	if d.HitsAnyEnemy(core.NewPlayer(l, 5, 2), nil) {
		t.Error("HitsAnyEnemy() with no enemies should be false")
	}
}

func TestCollisionPickedGems(t *testing.T) {
	l := newDefaultLevel()
	d := core.NewCollisionDetector(l, core.DefaultEnemyRadius, core.DefaultGemRadius)
	p := core.NewPlayer(l, 2, 2)

	gems := []*core.Gem{
		core.NewGem(p.Pos.Add(core.Vec2{X: 51}), core.GemBlue, 100),
		core.NewGem(p.Pos.Add(core.Vec2{X: 50}), core.GemGreen, 100),
		core.NewGem(l.TileOrigin(1, 0), core.GemOrange, 100),
		core.NewGem(p.Pos, core.GemBlue, 100),
	}

	picked := d.PickedGems(p, gems)
	if len(picked) != 2 || picked[0] != 1 || picked[1] != 3 {
		t.Errorf("PickedGems() = %v, expected [1 3]", picked)
	}
}
