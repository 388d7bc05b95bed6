package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/microecs/ecs"
)

// NewPerformanceStats creates a stats window keeping historyFrames samples of
// frame time.
func NewPerformanceStats(historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		frameIndex:    0,
	}
}

// Render draws entity totals, the frame-time graph, and a per-system counter
// table sourced from System.Stats.
func (ps *PerformanceStats) Render(entities []*ecs.Entity, systems []ecs.Processor, deltaTime float32) {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames

	totalComponents := 0
	for _, e := range entities {
		totalComponents += e.Len()
	}

	imgui.Text(fmt.Sprintf("Entities: %d", len(entities)))
	imgui.Text(fmt.Sprintf("Components: %d", totalComponents))
	imgui.Text(fmt.Sprintf("Systems: %d", len(systems)))

	var avgFrameTime float32
	for _, ft := range ps.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(ps.historyFrames)

	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if imgui.TreeNodeStr("System Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Ran")
			imgui.TableSetupColumn("Skipped")
			imgui.TableSetupColumn("Avg Logic")
			imgui.TableSetupColumn("Last Logic")
			imgui.TableHeadersRow()

			for _, sys := range systems {
				stats := sys.Stats()
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", stats.Invocations))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", stats.Skipped))
				imgui.TableNextColumn()
				imgui.Text(stats.AvgLogic.String())
				imgui.TableNextColumn()
				imgui.Text(stats.LastLogic.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

// FrameTimer measures wall-clock delta between frames for the stats window.
type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) DeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
