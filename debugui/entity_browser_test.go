package debugui

import (
	"testing"

	"github.com/plus3/skyraid/ecs"
	"github.com/plus3/skyraid/game"
	"github.com/stretchr/testify/assert"
)

func TestSortEnemies(t *testing.T) {
	rows := []game.EnemyView{
		{Id: 3, Variant: game.VariantDrone, Position: game.Vec2{X: 10, Y: 300}},
		{Id: 1, Variant: game.VariantCruiser, Position: game.Vec2{X: 30, Y: 100}},
		{Id: 2, Variant: game.VariantInterceptor, Position: game.Vec2{X: 20, Y: 200}},
	}

	ids := func() []ecs.EntityId {
		out := make([]ecs.EntityId, 0, len(rows))
		for _, r := range rows {
			out = append(out, r.Id)
		}
		return out
	}

	sortEnemies(rows, columnId, true)
	assert.Equal(t, []ecs.EntityId{1, 2, 3}, ids())

	sortEnemies(rows, columnVariant, true)
	assert.Equal(t, []ecs.EntityId{2, 3, 1}, ids())

	sortEnemies(rows, columnX, false)
	assert.Equal(t, []ecs.EntityId{1, 2, 3}, ids())

	sortEnemies(rows, columnY, true)
	assert.Equal(t, []ecs.EntityId{1, 2, 3}, ids())
}

func TestPageBounds(t *testing.T) {
	tests := []struct {
		total, page, perPage int
		start, end           int
	}{
		{0, 0, 10, 0, 0},
		{5, 0, 10, 0, 5},
		{25, 1, 10, 10, 20},
		{25, 2, 10, 20, 25},
		{25, 7, 10, 20, 25},
		{20, 2, 10, 10, 20},
		{5, 0, 0, 0, 5},
	}

	for _, tt := range tests {
		start, end := pageBounds(tt.total, tt.page, tt.perPage)
		assert.Equal(t, tt.start, start, "total=%d page=%d", tt.total, tt.page)
		assert.Equal(t, tt.end, end, "total=%d page=%d", tt.total, tt.page)
	}
}

func TestPerformanceStatsRecord(t *testing.T) {
	ps := NewPerformanceStats(4)
	assert.Equal(t, float32(1), ps.record(4))
	assert.Equal(t, float32(2), ps.record(4))
	ps.record(4)
	ps.record(4)
	assert.Equal(t, float32(3.5), ps.record(2))
}
