package ebiten_test

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/microecs/ecs"
	"github.com/plus3/microecs/ecs/debugui"
	debugui_ebiten "github.com/plus3/microecs/ecs/debugui/ebiten"
)

// Game implements ebiten.Game and drives the ECS plus the ImGui overlay.
type Game struct {
	entities []*ecs.Entity
	systems  []ecs.Processor
	imgui    *ecs.System[struct{ *debugui.ImguiItem }]
	ui       *debugui.DebugUI
	backend  *debugui_ebiten.Backend
	timer    *debugui.FrameTimer
}

func (g *Game) Update() error {
	// Begin ImGui frame before running systems
	g.backend.BeginFrame()

	for _, sys := range g.systems {
		sys.ProcessAll(g.entities)
	}
	g.imgui.ProcessAll(g.entities)
	g.ui.Render(g.entities, g.systems, g.timer.DeltaTime())

	// End ImGui frame after systems complete
	g.backend.EndFrame()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw game content to screen
	// ...

	// Draw ImGui overlay on top
	g.backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	backend := debugui_ebiten.NewBackend("ECS ImGui Example", 1280, 720)
	imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini

	// One entity renders a custom ImGui window each frame
	banner := ecs.NewEntity()
	ecs.Emplace(banner, debugui.ImguiItem{
		Render: func() {
			imgui.Begin("Debug Window")
			imgui.Text("Hello from ECS!")
			imgui.End()
		},
	})

	game := &Game{
		entities: []*ecs.Entity{banner},
		systems:  nil,
		imgui:    debugui.NewRenderSystem(),
		ui:       debugui.New(),
		backend:  backend,
		timer:    debugui.NewFrameTimer(),
	}

	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
