package ecs_test

import (
	"fmt"

	"github.com/plus3/microecs/ecs"
)

// ExampleSystem runs a movement system over a mixed population. Only the
// entity carrying both Position and Velocity is moved; the other is skipped
// without error.
func ExampleSystem() {
	mover := ecs.NewEntity()
	ecs.Emplace(mover, Position{X: 0, Y: 0})
	ecs.Emplace(mover, Velocity{DX: 1, DY: 1})

	scenery := ecs.NewEntity()
	ecs.Emplace(scenery, Position{X: 10, Y: 10})

	movement := ecs.NewSystem(func(e *ecs.Entity, c struct {
		*Position
		*Velocity
	}) {
		c.Position.X += c.Velocity.DX
		c.Position.Y += c.Velocity.DY
	})

	movement.ProcessAll([]*ecs.Entity{mover, scenery})

	m := ecs.Get[Position](mover)
	s := ecs.Get[Position](scenery)
	fmt.Printf("mover (%.0f, %.0f)\n", m.X, m.Y)
	fmt.Printf("scenery (%.0f, %.0f)\n", s.X, s.Y)

	// Output:
	// mover (1, 1)
	// scenery (10, 10)
}

// ExampleSystem_optional marks a requirement field optional: it never gates
// execution, and is nil when the entity lacks it.
func ExampleSystem_optional() {
	labeler := ecs.NewSystem(func(e *ecs.Entity, c struct {
		*Health
		Label *Name `ecs:"optional"`
	}) {
		who := "unnamed"
		if c.Label != nil {
			who = c.Label.Value
		}
		fmt.Printf("%s: %d/%d\n", who, c.Health.Current, c.Health.Max)
	})

	named := ecs.NewEntity()
	ecs.Emplace(named, Health{Current: 80, Max: 100})
	ecs.Emplace(named, Name{Value: "hero"})

	anonymous := ecs.NewEntity()
	ecs.Emplace(anonymous, Health{Current: 20, Max: 40})

	labeler.ProcessAll([]*ecs.Entity{named, anonymous})

	// Output:
	// hero: 80/100
	// unnamed: 20/40
}
