package core

// Default collision radii as fractions of the tile width.
const (
	DefaultEnemyRadius = 0.6
	DefaultGemRadius   = 0.5
)

// CollisionDetector tests overlap by the distance between entity centers.
// No broad phase: enemy and gem counts stay small.
type CollisionDetector struct {
	half        Vec2
	enemyRadius float64 // px
	gemRadius   float64 // px
}

// NewCollisionDetector builds a detector whose radii are the given fractions
// of the level's tile width.
func NewCollisionDetector(level *Level, enemyFactor, gemFactor float64) CollisionDetector {
	return CollisionDetector{
		half:        Vec2{X: level.TileWidth() / 2, Y: level.TileHeight() / 2},
		enemyRadius: level.TileWidth() * enemyFactor,
		gemRadius:   level.TileWidth() * gemFactor,
	}
}

// Distance returns the distance between the centers of two tile-sized
// entities at positions a and b.
func (d CollisionDetector) Distance(a, b Vec2) float64 {
	return a.Add(d.half).Dist(b.Add(d.half))
}

// HitsAnyEnemy reports whether the player overlaps at least one enemy.
func (d CollisionDetector) HitsAnyEnemy(p *Player, enemies []*Enemy) bool {
	for _, e := range enemies {
		if d.Distance(p.Pos, e.Pos) < d.enemyRadius {
			return true
		}
	}
	return false
}

// PickedGems returns the indices of the gems the player is touching,
// in ascending order.
func (d CollisionDetector) PickedGems(p *Player, gems []*Gem) []int {
	var picked []int
	for i, g := range gems {
		if d.Distance(p.Pos, g.Pos) < d.gemRadius {
			picked = append(picked, i)
		}
	}
	return picked
}
