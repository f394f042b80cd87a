// Package game implements the arcade simulation: a player ship confined to the
// lower half of the viewport and a batch of enemy ships that drift downward
// and are removed once they leave the bottom edge.
//
// World coordinates have their origin at the bottom-left corner of the
// viewport with y increasing upwards. Frontends flip y when drawing.
//
// Each frame runs a fixed sequence of systems over a single *World:
//
//	InputSystem -> PlayerMovementSystem -> EnemyMovementSystem ->
//	BoundaryClampSystem -> ReaperSystem
//
// after which the frame's deferred commands are flushed and Snapshot can be
// handed to a renderer.
package game
