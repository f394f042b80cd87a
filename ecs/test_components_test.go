package ecs_test

import "github.com/plus3/skyraid/ecs"

type Position struct {
	X, Y float32
}

type Velocity struct {
	DX, DY float32
}

type Body struct {
	Position
	Velocity
}

// testWorld is a minimal frame state holding one table of bodies.
type testWorld struct {
	Bodies *ecs.Arena[Body]
}

func newTestWorld() *testWorld {
	return &testWorld{Bodies: ecs.NewArena[Body]()}
}

func (w *testWorld) Delete(id ecs.EntityId) bool {
	return w.Bodies.Delete(id)
}
