package game

import "github.com/plus3/skyraid/ecs"

// Escaped reports whether an enemy has left through the bottom edge.
func Escaped(e *Enemy) bool {
	return e.Position.Y < 0
}

// EscapedEnemies returns the ids of every enemy below the bottom edge.
func EscapedEnemies(w *World) []ecs.EntityId {
	var ids []ecs.EntityId
	for id, enemy := range w.Enemies() {
		if Escaped(enemy) {
			ids = append(ids, id)
		}
	}
	return ids
}
