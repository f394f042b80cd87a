package ecs

type UpdateFrame[S any] struct {
	DeltaTime float64
	Commands  *Commands
	State     S
}

func newUpdateFrame[S any](dt float64, state S) *UpdateFrame[S] {
	return &UpdateFrame[S]{
		DeltaTime: dt,
		Commands:  newCommands(),
		State:     state,
	}
}
