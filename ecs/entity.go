package ecs

import (
	"iter"
	"reflect"

	"github.com/kamstrup/intmap"
)

// Entity is a bag of components: at most one component per concrete type,
// addressable by type identity. Entities carry no identity of their own;
// lifetime is owned by whatever collection the caller maintains.
//
// The zero value is an empty entity ready for use. An Entity is not safe for
// concurrent use without external synchronization.
type Entity struct {
	components *intmap.Map[uint64, Component]
}

// NewEntity creates an empty entity.
func NewEntity() *Entity {
	return &Entity{}
}

func (e *Entity) store() *intmap.Map[uint64, Component] {
	if e.components == nil {
		e.components = intmap.New[uint64, Component](8)
	}
	return e.components
}

// Get returns the erased component stored under the given type identity, or
// nil if absent. Systems use this form; application code usually prefers the
// typed Get[T].
func (e *Entity) Get(t reflect.Type) Component {
	if e.components == nil {
		return nil
	}
	c, _ := e.components.Get(typeKey(t))
	return c
}

// Has reports whether a component is stored under the given type identity.
func (e *Entity) Has(t reflect.Type) bool {
	if e.components == nil {
		return false
	}
	_, ok := e.components.Get(typeKey(t))
	return ok
}

// Erase removes the component stored under the given type identity. Erasing
// an absent type is a no-op, not an error.
func (e *Entity) Erase(t reflect.Type) {
	if e.components == nil {
		return
	}
	e.components.Del(typeKey(t))
}

// Len returns the number of components on the entity.
func (e *Entity) Len() int {
	if e.components == nil {
		return 0
	}
	return e.components.Len()
}

// All returns an iterator over (type identity, component) pairs. The
// traversal is lazy, finite, and restartable; ordering follows the underlying
// map and has no relationship to insertion order. Mutating the entity during
// traversal is unsupported.
func (e *Entity) All() iter.Seq2[reflect.Type, Component] {
	return func(yield func(reflect.Type, Component) bool) {
		if e.components == nil {
			return
		}
		e.components.ForEach(func(_ uint64, c Component) bool {
			return yield(concreteType(c), c)
		})
	}
}

// Get returns the component of type T stored on the entity, or nil if absent.
// The stored identity and payload are bound by the same type parameter at
// insertion, so the assertion below cannot fail.
func Get[T Component](e *Entity) *T {
	c := e.Get(reflect.TypeFor[T]())
	if c == nil {
		return nil
	}
	return c.(*T)
}

// Has reports whether the entity holds a component of type T.
func Has[T Component](e *Entity) bool {
	return e.Has(reflect.TypeFor[T]())
}

// Emplace constructs a component of type T from value and stores it on the
// entity. Insertion is insert-or-no-op: if the entity already holds a T, the
// existing component is kept and returned with stored=false, and value is
// discarded. Callers that want overwrite semantics must Erase[T] first.
func Emplace[T Component](e *Entity, value T) (comp *T, stored bool) {
	return put(e, &value)
}

// Insert stores a pre-constructed component, transferring ownership of it to
// the entity. The insert-or-no-op policy of Emplace applies: a T already on
// the entity wins and the argument is discarded.
func Insert[T Component](e *Entity, comp *T) (*T, bool) {
	if comp == nil {
		panic("ecs: Insert called with nil component")
	}
	return put(e, comp)
}

func put[T Component](e *Entity, comp *T) (*T, bool) {
	t := reflect.TypeFor[T]()
	assertStorable(t)

	m := e.store()
	key := typeKey(t)
	if existing, ok := m.Get(key); ok {
		return existing.(*T), false
	}
	m.Put(key, comp)
	return comp, true
}

// Erase removes the component of type T from the entity, if present.
func Erase[T Component](e *Entity) {
	e.Erase(reflect.TypeFor[T]())
}
