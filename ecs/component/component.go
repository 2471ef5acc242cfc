// Package component declares the game's ECS component types. Each type is
// paired with a package-level handle whose Kind keys its storage in a world.
package component

import (
	"errors"
	"reflect"
	"strconv"
	"sync/atomic"
)

// Errors returned by the ecs accessors, wrapped with the offending kind.
var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

type ComponentID uint32

var lastComponentID atomic.Uint32

// ComponentKind keys the storage for components of type T. The zero value
// has no storage and is rejected by the ecs accessors.
type ComponentKind[T any] struct {
	id   ComponentID
	name string
}

func NewComponentKind[T any]() ComponentKind[T] {
	return ComponentKind[T]{
		id:   ComponentID(lastComponentID.Add(1)),
		name: reflect.TypeFor[T]().Name(),
	}
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }
func (k ComponentKind[T]) Valid() bool     { return k.id != 0 }

// String is "Type#id", e.g. "Coin#4", or "invalid" for the zero kind.
func (k ComponentKind[T]) String() string {
	if !k.Valid() {
		return "invalid"
	}
	return k.name + "#" + strconv.FormatUint(uint64(k.id), 10)
}

// ComponentHandle is what each component file exports, e.g. CoinComponent.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] { return h.kind }
