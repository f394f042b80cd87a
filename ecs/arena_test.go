package ecs_test

import (
	"testing"

	"github.com/plus3/skyraid/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaInsertGet(t *testing.T) {
	arena := ecs.NewArena[Position]()

	id1 := arena.Insert(Position{X: 1, Y: 2})
	id2 := arena.Insert(Position{X: 3, Y: 4})

	assert.NotEqual(t, ecs.EntityId(0), id1)
	assert.NotEqual(t, id1, id2)
	assert.Equal(t, 2, arena.Len())

	pos := arena.Get(id1)
	require.NotNil(t, pos)
	assert.Equal(t, float32(1), pos.X)

	pos.X = 10
	assert.Equal(t, float32(10), arena.Get(id1).X)
}

func TestArenaDeleteInvalidatesId(t *testing.T) {
	arena := ecs.NewArena[Position]()

	id := arena.Insert(Position{X: 1})
	assert.True(t, arena.Delete(id))
	assert.False(t, arena.Delete(id))
	assert.Nil(t, arena.Get(id))
	assert.False(t, arena.Has(id))
	assert.Equal(t, 0, arena.Len())

	reused := arena.Insert(Position{X: 2})
	assert.Equal(t, id.Index(), reused.Index())
	assert.NotEqual(t, id.Generation(), reused.Generation())
	assert.Nil(t, arena.Get(id))
	assert.Equal(t, float32(2), arena.Get(reused).X)
}

func TestArenaAcrossBlocks(t *testing.T) {
	arena := ecs.NewArena[int]()

	ids := make([]ecs.EntityId, 0, 200)
	for i := range 200 {
		ids = append(ids, arena.Insert(i))
	}

	for i, id := range ids {
		require.NotNil(t, arena.Get(id))
		assert.Equal(t, i, *arena.Get(id))
	}

	for i := 0; i < len(ids); i += 2 {
		arena.Delete(ids[i])
	}
	assert.Equal(t, 100, arena.Len())

	count := 0
	for _, v := range arena.All() {
		assert.Equal(t, 1, *v%2)
		count++
	}
	assert.Equal(t, 100, count)
}

func TestArenaDeleteDuringIteration(t *testing.T) {
	arena := ecs.NewArena[Position]()
	for i := range 10 {
		arena.Insert(Position{Y: float32(i - 5)})
	}

	for id, pos := range arena.All() {
		if pos.Y < 0 {
			arena.Delete(id)
		}
	}

	assert.Equal(t, 5, arena.Len())
	for _, pos := range arena.All() {
		assert.GreaterOrEqual(t, pos.Y, float32(0))
	}
}

func TestArenaClear(t *testing.T) {
	arena := ecs.NewArena[Position]()
	id := arena.Insert(Position{})
	arena.Insert(Position{})

	arena.Clear()

	assert.Equal(t, 0, arena.Len())
	assert.Nil(t, arena.Get(id))
	assert.Empty(t, arena.Ids())
}

func TestEntityIdEncoding(t *testing.T) {
	id := ecs.NewEntityId(7, 42)
	assert.Equal(t, uint32(7), id.Generation())
	assert.Equal(t, uint32(42), id.Index())
}
