package ecs_test

import (
	"fmt"

	"github.com/plus3/microecs/ecs"
)

// ExampleEmplace demonstrates the insert-or-no-op policy: the first component
// stored for a concrete type wins, and later insertions for that type return
// the existing component untouched. Erase first to overwrite.
func ExampleEmplace() {
	e := ecs.NewEntity()

	name, stored := ecs.Emplace(e, Name{Value: "goblin"})
	fmt.Println(name.Value, stored)

	name, stored = ecs.Emplace(e, Name{Value: "orc"})
	fmt.Println(name.Value, stored)

	ecs.Erase[Name](e)
	name, stored = ecs.Emplace(e, Name{Value: "orc"})
	fmt.Println(name.Value, stored)

	// Output:
	// goblin true
	// goblin false
	// orc true
}

// ExampleGet shows that absence is a normal, checkable result rather than an
// error.
func ExampleGet() {
	e := ecs.NewEntity()
	ecs.Emplace(e, Health{Current: 50, Max: 100})

	if hp := ecs.Get[Health](e); hp != nil {
		fmt.Println("health:", hp.Current)
	}
	if ecs.Get[Velocity](e) == nil {
		fmt.Println("no velocity")
	}

	// Output:
	// health: 50
	// no velocity
}
