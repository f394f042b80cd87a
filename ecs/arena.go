package ecs

import "iter"

const (
	arenaBlockSize = 64
)

// Arena is an index-addressable table of records of type T.
// Records are stored in fixed-size blocks; deleted slots are reused and
// their generation is bumped so that stale EntityIds never resolve.
// The zero EntityId is never handed out.
type Arena[T any] struct {
	blocks    [][arenaBlockSize]T
	filled    [][arenaBlockSize]bool
	gens      [][arenaBlockSize]uint32
	freeSlots []int
	nextIndex int
	count     int
}

// NewArena creates an empty arena.
func NewArena[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Insert stores the record and returns its identifier.
func (a *Arena[T]) Insert(item T) EntityId {
	var index int
	if len(a.freeSlots) > 0 {
		index = a.freeSlots[len(a.freeSlots)-1]
		a.freeSlots = a.freeSlots[:len(a.freeSlots)-1]
	} else {
		index = a.nextIndex
		a.nextIndex++

		if index/arenaBlockSize >= len(a.blocks) {
			a.blocks = append(a.blocks, [arenaBlockSize]T{})
			a.filled = append(a.filled, [arenaBlockSize]bool{})
			a.gens = append(a.gens, [arenaBlockSize]uint32{})
		}
	}

	blockIdx := index / arenaBlockSize
	slotIdx := index % arenaBlockSize

	if a.gens[blockIdx][slotIdx] == 0 {
		a.gens[blockIdx][slotIdx] = 1
	}

	a.blocks[blockIdx][slotIdx] = item
	a.filled[blockIdx][slotIdx] = true
	a.count++

	return NewEntityId(a.gens[blockIdx][slotIdx], uint32(index))
}

// slot resolves an id to its block and slot, or -1 if the id is stale or missing.
func (a *Arena[T]) slot(id EntityId) (int, int) {
	index := int(id.Index())
	blockIdx := index / arenaBlockSize
	slotIdx := index % arenaBlockSize

	if blockIdx >= len(a.blocks) {
		return -1, -1
	}
	if !a.filled[blockIdx][slotIdx] || a.gens[blockIdx][slotIdx] != id.Generation() {
		return -1, -1
	}
	return blockIdx, slotIdx
}

// Get returns a pointer to the record, or nil if the id does not resolve.
// The pointer stays valid until the record is deleted.
func (a *Arena[T]) Get(id EntityId) *T {
	blockIdx, slotIdx := a.slot(id)
	if blockIdx < 0 {
		return nil
	}
	return &a.blocks[blockIdx][slotIdx]
}

// Has reports whether the id refers to a live record.
func (a *Arena[T]) Has(id EntityId) bool {
	blockIdx, _ := a.slot(id)
	return blockIdx >= 0
}

// Delete removes the record. It returns false if the id was already stale.
func (a *Arena[T]) Delete(id EntityId) bool {
	blockIdx, slotIdx := a.slot(id)
	if blockIdx < 0 {
		return false
	}

	var zero T
	a.blocks[blockIdx][slotIdx] = zero
	a.filled[blockIdx][slotIdx] = false
	a.gens[blockIdx][slotIdx]++
	if a.gens[blockIdx][slotIdx] == 0 {
		a.gens[blockIdx][slotIdx] = 1
	}
	a.freeSlots = append(a.freeSlots, int(id.Index()))
	a.count--
	return true
}

// Len returns the number of live records.
func (a *Arena[T]) Len() int {
	return a.count
}

// Clear removes every record. Identifiers handed out before the call become stale.
func (a *Arena[T]) Clear() {
	for i := 0; i < a.nextIndex; i++ {
		blockIdx := i / arenaBlockSize
		slotIdx := i % arenaBlockSize
		if a.filled[blockIdx][slotIdx] {
			a.Delete(NewEntityId(a.gens[blockIdx][slotIdx], uint32(i)))
		}
	}
}

// All iterates live records in slot order with mutable access.
// Deleting the current record during iteration is allowed.
func (a *Arena[T]) All() iter.Seq2[EntityId, *T] {
	return func(yield func(EntityId, *T) bool) {
		for i := 0; i < a.nextIndex; i++ {
			blockIdx := i / arenaBlockSize
			slotIdx := i % arenaBlockSize

			if !a.filled[blockIdx][slotIdx] {
				continue
			}

			id := NewEntityId(a.gens[blockIdx][slotIdx], uint32(i))
			if !yield(id, &a.blocks[blockIdx][slotIdx]) {
				return
			}
		}
	}
}

// Ids returns the identifiers of all live records in slot order.
func (a *Arena[T]) Ids() []EntityId {
	ids := make([]EntityId, 0, a.count)
	for id := range a.All() {
		ids = append(ids, id)
	}
	return ids
}
