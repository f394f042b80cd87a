package game

import (
	"github.com/kamstrup/intmap"
	"github.com/plus3/skyraid/ecs"
)

// EnemyView is the render hand-off for one enemy.
type EnemyView struct {
	Id       ecs.EntityId
	Position Vec2
	Variant  Variant
}

// Snapshot is everything a renderer needs for one frame.
type Snapshot struct {
	Width, Height  float64
	PlayerPosition Vec2
	PlayerFrame    int
	Enemies        []EnemyView
}

// Snapshot copies the drawable state of the world.
func (s *Simulation) Snapshot() Snapshot {
	return s.world.Snapshot()
}

func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Width:   w.Width,
		Height:  w.Height,
		Enemies: make([]EnemyView, 0, w.EnemyCount()),
	}

	if w.player != nil {
		snap.PlayerPosition = w.player.Position
		snap.PlayerFrame = w.player.Frame
	}

	for id, enemy := range w.Enemies() {
		snap.Enemies = append(snap.Enemies, EnemyView{
			Id:       id,
			Position: enemy.Position,
			Variant:  enemy.Variant,
		})
	}

	return snap
}

// VariantTally is the number of live enemies of one kind.
type VariantTally struct {
	Variant Variant
	Count   int
}

// Census counts the snapshot's enemies per variant, in variant order.
// Variants with no live enemies are omitted.
func (s Snapshot) Census() []VariantTally {
	counts := intmap.New[Variant, int](VariantCount + 1)
	for _, enemy := range s.Enemies {
		n, _ := counts.Get(enemy.Variant)
		counts.Put(enemy.Variant, n+1)
	}

	tallies := make([]VariantTally, 0, counts.Len())
	for v := VariantInterceptor; v <= VariantUnknown; v++ {
		if n, ok := counts.Get(v); ok {
			tallies = append(tallies, VariantTally{Variant: v, Count: n})
		}
	}
	return tallies
}
