package ecs

import (
	"iter"
	"reflect"
	"time"
	"unsafe"
)

// Processor is the entity-facing surface shared by all System
// instantiations. It lets callers hold heterogeneous system collections
// without naming each requirement struct.
type Processor interface {
	Name() string
	Requires() []reflect.Type
	Matches(*Entity) bool
	Process(*Entity)
	ProcessAll([]*Entity)
	Stats() SystemStats
}

// System runs a logic hook over entities that carry a required set of
// component types. The requirement struct R fixes that set at compile time:
// each pointer field names one required component type. Named fields may be
// marked `ecs:"optional"`; they are populated when present and left nil when
// absent, but do not gate execution. Embedded fields are always required.
//
// R = struct{} yields a system with no requirements that runs on every
// entity. The requirement list never changes after construction.
type System[R any] struct {
	name        string
	types       []reflect.Type
	optional    []bool
	fieldOffset []uintptr
	logic       func(*Entity, R)
	stats       systemStats
}

// NewSystem builds a system from a requirement struct type and a logic hook.
// The hook receives the entity plus an R whose fields point at the entity's
// own components, so mutations through them are visible on the entity.
// Panics if R is not a struct, a field is not a pointer, or a tag is invalid.
func NewSystem[R any](logic func(e *Entity, c R)) *System[R] {
	var zero R
	structType := reflect.TypeOf(zero)

	if structType.Kind() != reflect.Struct {
		panic("ecs: System requirement type parameter must be a struct")
	}
	if logic == nil {
		panic("ecs: NewSystem called with nil logic")
	}

	n := structType.NumField()
	types := make([]reflect.Type, 0, n)
	optional := make([]bool, 0, n)
	fieldOffset := make([]uintptr, 0, n)

	for i := 0; i < n; i++ {
		field := structType.Field(i)
		if field.Type.Kind() != reflect.Ptr {
			panic("ecs: System requirement fields must be pointer types")
		}

		types = append(types, field.Type.Elem())
		fieldOffset = append(fieldOffset, field.Offset)

		// Embedded fields are always required.
		isOptional := false
		if !field.Anonymous {
			if tag := field.Tag.Get("ecs"); tag != "" {
				if tag != "optional" {
					panic("ecs: invalid ecs tag value: \"" + tag + "\" (only \"optional\" is supported)")
				}
				isOptional = true
			}
		}
		optional = append(optional, isOptional)
	}

	return &System[R]{
		name:        structType.String(),
		types:       types,
		optional:    optional,
		fieldOffset: fieldOffset,
		logic:       logic,
		stats:       newSystemStats(),
	}
}

// WithName gives the system a display name for stats and debug tooling.
// Returns the receiver for chaining at construction.
func (s *System[R]) WithName(name string) *System[R] {
	s.name = name
	return s
}

// Name returns the display name; defaults to the requirement struct's type
// string.
func (s *System[R]) Name() string {
	return s.name
}

// Requires returns the fixed set of required component type identities, in
// requirement-struct field order. Optional fields are not part of the set.
func (s *System[R]) Requires() []reflect.Type {
	required := make([]reflect.Type, 0, len(s.types))
	for i, t := range s.types {
		if !s.optional[i] {
			required = append(required, t)
		}
	}
	return required
}

// Matches reports whether the entity carries every required component type.
// It is a pure membership test and never modifies the entity.
func (s *System[R]) Matches(e *Entity) bool {
	for i, t := range s.types {
		if s.optional[i] {
			continue
		}
		if !e.Has(t) {
			return false
		}
	}
	return true
}

// Process invokes the logic hook iff the entity satisfies every requirement.
// The membership test is all-or-nothing and completes before logic runs; an
// entity missing any required component is skipped silently.
func (s *System[R]) Process(e *Entity) {
	s.stats.executions++

	var c R
	if !s.fill(e, &c) {
		s.stats.skipped++
		return
	}

	s.stats.invocations++
	start := time.Now()
	s.logic(e, c)
	s.stats.observe(time.Since(start))
}

// ProcessAll applies Process to each entity in order, with no
// short-circuiting: one entity failing the filter has no effect on the
// entities after it.
func (s *System[R]) ProcessAll(entities []*Entity) {
	for _, e := range entities {
		s.Process(e)
	}
}

// ProcessSeq drains an iterator sequence through Process in yield order.
func (s *System[R]) ProcessSeq(seq iter.Seq[*Entity]) {
	for e := range seq {
		s.Process(e)
	}
}

// fill populates the requirement struct with pointers to the entity's
// components. Returns false as soon as a required component is missing.
// Field writes go through pre-computed offsets to avoid reflection in the
// hot path; the data pointer of the erased component interface is the
// concrete *T stored at insertion.
func (s *System[R]) fill(e *Entity, ptr *R) bool {
	structPtr := unsafe.Pointer(ptr)

	for i, t := range s.types {
		fieldPtr := unsafe.Pointer(uintptr(structPtr) + s.fieldOffset[i])

		comp := e.Get(t)
		if comp == nil {
			if !s.optional[i] {
				return false
			}
			*(*unsafe.Pointer)(fieldPtr) = nil
			continue
		}

		*(*unsafe.Pointer)(fieldPtr) = (*iface)(unsafe.Pointer(&comp)).data
	}
	return true
}
