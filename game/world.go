package game

import (
	"fmt"
	"iter"

	"github.com/plus3/skyraid/ecs"
)

// Listener observes enemy lifecycle events.
type Listener interface {
	EnemySpawned(id ecs.EntityId, enemy Enemy)
	EnemyReaped(id ecs.EntityId, enemy Enemy)
}

// World is the entity store. It exclusively owns the player and every enemy.
// The player is a distinguished field so that there is never more than one.
type World struct {
	player  *Player
	enemies *ecs.Arena[Enemy]

	// Width and Height are the viewport size for the current frame.
	Width, Height float64
	// Keys is the input sampled at the start of the current frame.
	Keys Keys

	listeners []Listener
}

func NewWorld(width, height float64) *World {
	return &World{
		enemies: ecs.NewArena[Enemy](),
		Width:   width,
		Height:  height,
	}
}

// AddListener subscribes l to enemy lifecycle events.
func (w *World) AddListener(l Listener) {
	w.listeners = append(w.listeners, l)
}

// SpawnPlayer creates the player at pos.
func (w *World) SpawnPlayer(pos Vec2, speed float64) (*Player, error) {
	if w.player != nil {
		return nil, ErrPlayerExists
	}
	w.player = &Player{Position: pos, Speed: speed}
	return w.player, nil
}

// Player returns the player for mutation during the current frame.
func (w *World) Player() (*Player, error) {
	if w.player == nil {
		return nil, fmt.Errorf("player: %w", ErrNotFound)
	}
	return w.player, nil
}

// InsertEnemy stores a new enemy and notifies listeners.
func (w *World) InsertEnemy(enemy Enemy) ecs.EntityId {
	id := w.enemies.Insert(enemy)
	for _, l := range w.listeners {
		l.EnemySpawned(id, enemy)
	}
	return id
}

// Enemy returns the enemy with the given id, or nil.
func (w *World) Enemy(id ecs.EntityId) *Enemy {
	return w.enemies.Get(id)
}

// Enemies iterates every live enemy with mutable access.
func (w *World) Enemies() iter.Seq2[ecs.EntityId, *Enemy] {
	return w.enemies.All()
}

func (w *World) EnemyCount() int {
	return w.enemies.Len()
}

// Delete removes an enemy. The player cannot be deleted.
func (w *World) Delete(id ecs.EntityId) bool {
	return w.enemies.Delete(id)
}

func (w *World) notifyReaped(id ecs.EntityId, enemy Enemy) {
	for _, l := range w.listeners {
		l.EnemyReaped(id, enemy)
	}
}
