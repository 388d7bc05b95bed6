package ecs_test

import (
	"reflect"
	"testing"

	"github.com/plus3/microecs/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmplaceAndGet(t *testing.T) {
	e := ecs.NewEntity()

	pos, stored := ecs.Emplace(e, Position{X: 3, Y: 4})
	assert.True(t, stored)
	require.NotNil(t, pos)
	assert.Equal(t, float32(3), pos.X)
	assert.Equal(t, float32(4), pos.Y)

	got := ecs.Get[Position](e)
	require.NotNil(t, got)
	assert.Same(t, pos, got)

	// Mutations through the returned pointer are visible on the entity
	got.X = 7
	assert.Equal(t, float32(7), ecs.Get[Position](e).X)
}

func TestGetAbsent(t *testing.T) {
	e := ecs.NewEntity()

	assert.Nil(t, ecs.Get[Position](e))
	assert.False(t, ecs.Has[Position](e))
}

func TestZeroValueEntity(t *testing.T) {
	var e ecs.Entity

	assert.Nil(t, ecs.Get[Position](&e))
	assert.False(t, ecs.Has[Position](&e))
	assert.Equal(t, 0, e.Len())
	e.Erase(reflect.TypeFor[Position]())

	_, stored := ecs.Emplace(&e, Score(10))
	assert.True(t, stored)
	assert.Equal(t, 1, e.Len())
}

// First write wins: a second Emplace for the same type is a no-op and
// returns the original component.
func TestEmplaceIsInsertOrNoOp(t *testing.T) {
	e := ecs.NewEntity()

	first, stored := ecs.Emplace(e, Name{Value: "A"})
	assert.True(t, stored)

	second, stored := ecs.Emplace(e, Name{Value: "B"})
	assert.False(t, stored)
	assert.Same(t, first, second)
	assert.Equal(t, "A", ecs.Get[Name](e).Value)

	// Erase first to overwrite
	ecs.Erase[Name](e)
	third, stored := ecs.Emplace(e, Name{Value: "B"})
	assert.True(t, stored)
	assert.Equal(t, "B", third.Value)
}

func TestInsertIsInsertOrNoOp(t *testing.T) {
	e := ecs.NewEntity()

	a := &Health{Current: 100, Max: 100}
	b := &Health{Current: 50, Max: 50}

	got, stored := ecs.Insert(e, a)
	assert.True(t, stored)
	assert.Same(t, a, got)

	got, stored = ecs.Insert(e, b)
	assert.False(t, stored)
	assert.Same(t, a, got)
	assert.Equal(t, 100, ecs.Get[Health](e).Current)
}

func TestInsertNilPanics(t *testing.T) {
	e := ecs.NewEntity()
	assert.Panics(t, func() {
		ecs.Insert[Position](e, nil)
	})
}

func TestEraseIsIdempotent(t *testing.T) {
	e := ecs.NewEntity()

	// Erasing an absent type is a no-op
	ecs.Erase[Position](e)
	assert.False(t, ecs.Has[Position](e))

	ecs.Emplace(e, Position{X: 1, Y: 1})
	require.True(t, ecs.Has[Position](e))

	ecs.Erase[Position](e)
	assert.False(t, ecs.Has[Position](e))
	assert.Nil(t, ecs.Get[Position](e))

	// Twice is the same as once
	ecs.Erase[Position](e)
	assert.False(t, ecs.Has[Position](e))
}

func TestErasedAccessByIdentity(t *testing.T) {
	e := ecs.NewEntity()

	ecs.Emplace(e, Position{X: 1, Y: 2})
	posType := ecs.TypeOf[Position]()

	assert.True(t, e.Has(posType))

	comp := e.Get(posType)
	require.NotNil(t, comp)
	pos, ok := comp.(*Position)
	require.True(t, ok)
	assert.Equal(t, float32(1), pos.X)

	assert.Nil(t, e.Get(ecs.TypeOf[Velocity]()))
	assert.False(t, e.Has(ecs.TypeOf[Velocity]()))

	e.Erase(posType)
	assert.Nil(t, e.Get(posType))
}

func TestOneComponentPerType(t *testing.T) {
	e := ecs.NewEntity()

	ecs.Emplace(e, Position{X: 1, Y: 1})
	ecs.Emplace(e, Position{X: 2, Y: 2})
	ecs.Emplace(e, Velocity{DX: 1, DY: 1})
	ecs.Emplace(e, Score(10))

	assert.Equal(t, 3, e.Len())
}

func TestPrimitiveComponents(t *testing.T) {
	e := ecs.NewEntity()

	ecs.Emplace(e, Score(42))
	ecs.Emplace(e, Tag("boss"))
	ecs.Emplace(e, Temperature(36.6))

	assert.Equal(t, Score(42), *ecs.Get[Score](e))
	assert.Equal(t, Tag("boss"), *ecs.Get[Tag](e))
	assert.Equal(t, Temperature(36.6), *ecs.Get[Temperature](e))
}

func TestUnstorableKindsPanic(t *testing.T) {
	e := ecs.NewEntity()

	assert.Panics(t, func() {
		ecs.Emplace(e, BadMap{"x": 1})
	})
	assert.Panics(t, func() {
		ecs.Emplace[BadFunc](e, func() {})
	})
}

func TestAll(t *testing.T) {
	e := ecs.NewEntity()

	ecs.Emplace(e, Position{X: 1, Y: 2})
	ecs.Emplace(e, Velocity{DX: 3, DY: 4})
	ecs.Emplace(e, Name{Value: "n"})

	seen := make(map[reflect.Type]ecs.Component)
	for typ, comp := range e.All() {
		seen[typ] = comp
	}

	require.Len(t, seen, 3)
	assert.Same(t, ecs.Get[Position](e), seen[ecs.TypeOf[Position]()])
	assert.Same(t, ecs.Get[Velocity](e), seen[ecs.TypeOf[Velocity]()])
	assert.Same(t, ecs.Get[Name](e), seen[ecs.TypeOf[Name]()])

	// A fresh call yields a fresh, complete traversal
	count := 0
	for range e.All() {
		count++
	}
	assert.Equal(t, 3, count)
}

func TestAllOnEmptyEntity(t *testing.T) {
	var e ecs.Entity
	for range e.All() {
		t.Fatal("empty entity yielded a component")
	}
}

func TestAllSupportsEarlyExit(t *testing.T) {
	e := ecs.NewEntity()
	ecs.Emplace(e, Position{})
	ecs.Emplace(e, Velocity{})
	ecs.Emplace(e, Name{})

	count := 0
	for range e.All() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestTypeIdentityIsCanonical(t *testing.T) {
	assert.Equal(t, ecs.TypeOf[Position](), ecs.TypeOf[Position]())
	assert.NotEqual(t, ecs.TypeOf[Position](), ecs.TypeOf[Velocity]())

	// Distinct named types with identical layouts are distinct identities
	assert.NotEqual(t, ecs.TypeOf[Score](), ecs.TypeOf[int32]())
}
