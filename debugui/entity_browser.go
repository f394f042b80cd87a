package debugui

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/skyraid/ecs"
	"github.com/plus3/skyraid/game"
)

const (
	columnId = iota
	columnVariant
	columnX
	columnY
)

// EntityBrowser lists live enemies in a sortable, paged table.
type EntityBrowser struct {
	rows               []game.EnemyView
	selectedEntityId   ecs.EntityId
	sortColumn         int
	sortAscending      bool
	maxEntitiesPerPage int
	currentPage        int
}

func NewEntityBrowser(maxEntitiesPerPage int) *EntityBrowser {
	return &EntityBrowser{
		sortColumn:         columnId,
		sortAscending:      true,
		maxEntitiesPerPage: maxEntitiesPerPage,
	}
}

// Render draws the browser and returns the selected enemy id (0 for the player).
func (eb *EntityBrowser) Render(snap game.Snapshot) ecs.EntityId {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return eb.selectedEntityId
	}

	eb.rows = append(eb.rows[:0], snap.Enemies...)
	sortEnemies(eb.rows, eb.sortColumn, eb.sortAscending)

	if imgui.SelectableBoolV("Player", eb.selectedEntityId == 0, imgui.SelectableFlagsNone, imgui.NewVec2(0, 0)) {
		eb.selectedEntityId = 0
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EnemyTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity ID")
		imgui.TableSetupColumn("Variant")
		imgui.TableSetupColumn("X")
		imgui.TableSetupColumn("Y")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			eb.sortColumn = int(spec.ColumnIndex())
			eb.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortEnemies(eb.rows, eb.sortColumn, eb.sortAscending)
			sortSpecs.SetSpecsDirty(false)
		}

		eb.currentPage = clampPage(len(eb.rows), eb.currentPage, eb.maxEntitiesPerPage)
		start, end := pageBounds(len(eb.rows), eb.currentPage, eb.maxEntitiesPerPage)
		for _, row := range eb.rows[start:end] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			if imgui.SelectableBoolV(fmt.Sprintf("%d", row.Id), eb.selectedEntityId == row.Id, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selectedEntityId = row.Id
			}

			imgui.TableNextColumn()
			imgui.Text(row.Variant.String())

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.1f", row.Position.X))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.1f", row.Position.Y))
		}

		imgui.EndTable()
	}

	if len(eb.rows) > eb.maxEntitiesPerPage {
		totalPages := (len(eb.rows) + eb.maxEntitiesPerPage - 1) / eb.maxEntitiesPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d enemies)", eb.currentPage+1, totalPages, len(eb.rows)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.currentPage > 0 {
			eb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.currentPage < totalPages-1 {
			eb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d enemies", len(eb.rows)))
	}

	imgui.End()
	return eb.selectedEntityId
}

func sortEnemies(rows []game.EnemyView, column int, ascending bool) {
	slices.SortStableFunc(rows, func(a, b game.EnemyView) int {
		var c int
		switch column {
		case columnVariant:
			c = cmp.Compare(a.Variant, b.Variant)
		case columnX:
			c = cmp.Compare(a.Position.X, b.Position.X)
		case columnY:
			c = cmp.Compare(a.Position.Y, b.Position.Y)
		default:
			c = cmp.Compare(a.Id, b.Id)
		}
		if !ascending {
			c = -c
		}
		return c
	})
}

// clampPage keeps page within the pages that exist for total rows.
func clampPage(total, page, perPage int) int {
	if perPage <= 0 || total == 0 {
		return 0
	}
	lastPage := (total - 1) / perPage
	return min(max(page, 0), lastPage)
}

// pageBounds returns the slice bounds of page within total rows.
func pageBounds(total, page, perPage int) (int, int) {
	if perPage <= 0 {
		return 0, total
	}
	page = clampPage(total, page, perPage)
	start := page * perPage
	return start, min(start+perPage, total)
}
