package ecs

import (
	"reflect"
	"unsafe"
)

// Component marks a value as attachable to an Entity. Components are plain
// data; any application-defined value type qualifies, and the marker itself
// requires no behavior. The typed operations (Emplace, Insert, Get, Has,
// Erase) bind a component to its type identity at the call site.
type Component interface{}

// TypeOf returns the identity token for component type T. Identities are
// canonical: two tokens compare equal iff they denote the same concrete type.
func TypeOf[T Component]() reflect.Type {
	return reflect.TypeFor[T]()
}

// typeKey derives a stable integer key from a type identity. The runtime
// canonicalizes reflect.Type values, so the data pointer of the interface is
// unique per concrete type and doubles as a hash.
func typeKey(t reflect.Type) uint64 {
	ptr := (*iface)(unsafe.Pointer(&t)).data
	return uint64(uintptr(ptr))
}

// concreteType normalizes a stored component back to its concrete
// (non-pointer) type identity.
func concreteType(c Component) reflect.Type {
	t := reflect.TypeOf(c)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

// assertStorable rejects component kinds that cannot carry a stable identity.
// Components must be value types: structs or primitives, not pointers, maps,
// channels, or functions.
func assertStorable(t reflect.Type) {
	switch t.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func:
		panic("ecs: components cannot be pointers, maps, channels, or functions")
	}
}
