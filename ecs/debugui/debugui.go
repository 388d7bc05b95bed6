// Package debugui provides immediate-mode debug windows for ECS applications
// using Dear ImGui: an entity browser, a component inspector with live field
// editing, and a system performance view, all driven by caller-owned entity
// collections.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/microecs/ecs"
)

// ImguiItem is a component that holds a Dear ImGui render function.
// Attach this to entities that should render ImGui widgets each frame.
type ImguiItem struct {
	Render func()
}

// NewRenderSystem builds a system that runs every ImguiItem attached to the
// processed entities. Drive it with the same entity slice as the rest of the
// frame's systems.
func NewRenderSystem() *ecs.System[struct{ *ImguiItem }] {
	return ecs.NewSystem(func(_ *ecs.Entity, c struct{ *ImguiItem }) {
		if c.ImguiItem.Render != nil {
			c.ImguiItem.Render()
		}
	}).WithName("imgui-items")
}

// InputState mirrors Dear ImGui's input capture flags. Refresh it once per
// frame to decide whether the application should ignore mouse or keyboard
// input that ImGui is consuming.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Refresh updates the capture flags from the current ImGui IO state.
func (s *InputState) Refresh() {
	io := imgui.CurrentIO()
	s.WantCaptureMouse = io.WantCaptureMouse()
	s.WantCaptureKeyboard = io.WantCaptureKeyboard()
}

// DebugUI bundles the standard debug windows. Selection flows from the
// browser into the inspector.
type DebugUI struct {
	Browser   *EntityBrowser
	Inspector *ComponentInspector
	Perf      *PerformanceStats
}

// New creates a DebugUI with default window settings.
func New() *DebugUI {
	return &DebugUI{
		Browser:   NewEntityBrowser(100),
		Inspector: NewComponentInspector(),
		Perf:      NewPerformanceStats(120),
	}
}

// Render draws all debug windows for the current frame.
func (ui *DebugUI) Render(entities []*ecs.Entity, systems []ecs.Processor, deltaTime float32) {
	ui.Browser.Render(entities)
	ui.Inspector.Render(ui.Browser.Selected())
	ui.Perf.Render(entities, systems, deltaTime)
}
