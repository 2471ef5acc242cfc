package ecs

import "fmt"

// Entity is a generational handle. The low word is the storage slot (1-based)
// and the high word counts how often that slot has been recycled, so a
// handle to a collected coin never aliases whatever reuses its slot.
type Entity uint64

type (
	entityID   uint32
	generation uint32
)

func makeEntity(id entityID, gen generation) Entity {
	return Entity(gen)<<32 | Entity(id)
}

func (e Entity) id() entityID           { return entityID(e & 0xffffffff) }
func (e Entity) generation() generation { return generation(e >> 32) }

// String renders slot and generation, e.g. "17v2". It shows up in session
// logs for wall contacts and captured coins.
func (e Entity) String() string {
	if e.id() == 0 {
		return "none"
	}
	return fmt.Sprintf("%dv%d", e.id(), e.generation())
}
