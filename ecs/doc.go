/*
Package ecs is a minimal entity-component-system substrate: entities are bags
of independently-typed components, and systems run logic over exactly those
entities that carry a required set of component types.

There is deliberately no scheduler, no world registry and no parallelism.
Callers own their entity collections and drive systems directly:

	player := ecs.NewEntity()
	ecs.Emplace(player, Position{X: 0, Y: 0})
	ecs.Emplace(player, Velocity{DX: 1, DY: 1})

	movement := ecs.NewSystem(func(e *ecs.Entity, c struct {
		*Position
		*Velocity
	}) {
		c.Position.X += c.Velocity.DX
		c.Position.Y += c.Velocity.DY
	})

	movement.ProcessAll([]*ecs.Entity{player})

A system's requirement struct fixes its component needs at compile time: each
pointer field names one required type. Entities missing a required component
are skipped silently; that is the expected steady state in a heterogeneous
population, not an error.

Component insertion is insert-or-no-op: the first component stored for a
concrete type wins, and later Emplace/Insert calls for the same type return
the existing component untouched. Callers that want overwrite semantics must
Erase first.
*/
package ecs
