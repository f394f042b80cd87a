package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/skyraid/ecs"
	"github.com/plus3/skyraid/game"
)

// PerformanceStats plots frame times and per-system timings.
type PerformanceStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
	clock         *game.WallClock
}

func NewPerformanceStats(historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		clock:         game.NewWallClock(),
	}
}

// record stores a frame time in milliseconds and returns the rolling average.
func (ps *PerformanceStats) record(ms float32) float32 {
	ps.frameHistory[ps.frameIndex] = ms
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames

	var total float32
	for _, ft := range ps.frameHistory {
		total += ft
	}
	return total / float32(ps.historyFrames)
}

func (ps *PerformanceStats) Render(stats *ecs.SchedulerStats) {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avgFrameTime := ps.record(float32(ps.clock.Delta() * 1000.0))

	imgui.Text(fmt.Sprintf("Frames: %d", stats.FrameCount))
	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if imgui.TreeNodeStr("Systems") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, sys := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
