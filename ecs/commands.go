package ecs

import "github.com/kamstrup/intmap"

// Deleter is implemented by frame state that can remove entities by id.
type Deleter interface {
	Delete(id EntityId) bool
}

// Commands provides a buffer for deferred operations that are executed at the end of a frame.
// This prevents structural changes to the state while systems are iterating it.
type Commands struct {
	deletes []EntityId
	defers  []deferCommand
}

func newCommands() *Commands {
	return &Commands{}
}

type deferCommand struct {
	fn func()
}

// Defer queues a function execution operation.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, deferCommand{fn: fn})
}

// Delete queues an entity deletion operation.
func (c *Commands) Delete(entity EntityId) {
	c.deletes = append(c.deletes, entity)
}

// Pending returns the number of queued operations.
func (c *Commands) Pending() int {
	return len(c.deletes) + len(c.defers)
}

// Flush applies all queued deletions to target, then runs deferred functions
// in queue order, resetting the buffer state. It returns the number of
// entities actually deleted.
func (c *Commands) Flush(target Deleter) int {
	deleted := 0

	if len(c.deletes) > 0 {
		seen := intmap.New[EntityId, struct{}](len(c.deletes))
		for _, id := range c.deletes {
			if _, ok := seen.Get(id); ok {
				continue
			}
			seen.Put(id, struct{}{})

			if target.Delete(id) {
				deleted++
			}
		}
	}

	for _, df := range c.defers {
		df.fn()
	}

	c.deletes = c.deletes[:0]
	c.defers = c.defers[:0]

	return deleted
}
