package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/skyraid/ecs"
	"github.com/plus3/skyraid/game"
)

// EntityInspector shows the record behind the browser's selection.
type EntityInspector struct{}

func (ci *EntityInspector) Render(world *game.World, selected ecs.EntityId) {
	if !imgui.BeginV("Entity Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if selected == 0 {
		player, err := world.Player()
		if err != nil {
			imgui.Text(err.Error())
			imgui.End()
			return
		}
		imgui.Text("Player")
		imgui.Separator()
		imgui.Text(fmt.Sprintf("Position: %s", player.Position))
		imgui.Text(fmt.Sprintf("Speed: %.0f", player.Speed))
		imgui.Text(fmt.Sprintf("Frame: %d", player.Frame))
		imgui.End()
		return
	}

	enemy := world.Enemy(selected)
	if enemy == nil {
		imgui.Text(fmt.Sprintf("Enemy %d has been removed", selected))
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Enemy %d (slot %d, generation %d)", selected, selected.Index(), selected.Generation()))
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Variant: %s", enemy.Variant))
	imgui.Text(fmt.Sprintf("Position: %s", enemy.Position))
	imgui.Text(fmt.Sprintf("Direction: %s", enemy.Direction))
	imgui.Text(fmt.Sprintf("Speed: %.0f", enemy.Speed))

	imgui.End()
}
