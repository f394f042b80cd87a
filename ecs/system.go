package ecs

// System represents one phase of a frame. Systems run in registration order
// and may keep custom state fields that persist between frames.
type System[S any] interface {
	Execute(frame *UpdateFrame[S])
}
