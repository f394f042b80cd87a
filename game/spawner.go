package game

import "github.com/plus3/skyraid/ecs"

// SpawnEnemies inserts count enemies at uniform positions in the upper half of
// the viewport, each heading straight down at speed.
func SpawnEnemies(w *World, count int, width, height, speed float64, rng Random) []ecs.EntityId {
	ids := make([]ecs.EntityId, 0, count)

	for range count {
		x := rng.Float64() * width
		y := rng.Float64()*height/2 + height/2

		// The modulo keeps the draw in range; VariantFromIndex only saturates.
		variant, _ := VariantFromIndex(rng.Uint32() % VariantCount)

		ids = append(ids, w.InsertEnemy(Enemy{
			Position:  Vec2{X: x, Y: y},
			Direction: Down,
			Speed:     speed,
			Variant:   variant,
		}))
	}

	return ids
}
