package game

import (
	"log"

	"github.com/plus3/skyraid/ecs"
)

// InputSystem samples the held keys once per frame.
type InputSystem struct {
	Input Input
}

func (s *InputSystem) Execute(frame *ecs.UpdateFrame[*World]) {
	frame.State.Keys = SampleInput(s.Input)
}

type PlayerMovementSystem struct{}

func (s *PlayerMovementSystem) Execute(frame *ecs.UpdateFrame[*World]) {
	player, err := frame.State.Player()
	if err != nil {
		return
	}
	MovePlayer(player, frame.State.Keys, frame.DeltaTime)
}

type EnemyMovementSystem struct{}

func (s *EnemyMovementSystem) Execute(frame *ecs.UpdateFrame[*World]) {
	for _, enemy := range frame.State.Enemies() {
		MoveEnemy(enemy, frame.DeltaTime)
	}
}

// BoundaryClampSystem keeps the player inside the lower half of the viewport.
type BoundaryClampSystem struct {
	Margin float64
}

func (s *BoundaryClampSystem) Execute(frame *ecs.UpdateFrame[*World]) {
	player, err := frame.State.Player()
	if err != nil {
		return
	}
	player.Position = ClampPlayer(player.Position, frame.State.Width, frame.State.Height, s.Margin)
}

// ReaperSystem removes enemies that have left through the bottom edge.
// Removal happens when the frame's commands are flushed.
type ReaperSystem struct {
	Logger *log.Logger
	Reaped int
}

func (s *ReaperSystem) Execute(frame *ecs.UpdateFrame[*World]) {
	world := frame.State
	for _, id := range EscapedEnemies(world) {
		enemy := *world.Enemy(id)
		frame.Commands.Delete(id)
		frame.Commands.Defer(func() {
			s.Reaped++
			if s.Logger != nil {
				s.Logger.Printf("enemy %d (%s) reached the bottom of the screen at %s", id, enemy.Variant, enemy.Position)
			}
			world.notifyReaped(id, enemy)
		})
	}
}
