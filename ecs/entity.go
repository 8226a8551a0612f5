package ecs

import "fmt"

type (
	entityID   uint32
	generation uint32
)

// Entity is a generational handle. The low word is the slot, the high word
// counts how many times that slot has been reused. Zero is never issued.
type Entity uint64

const slotMask = 1<<32 - 1

func makeEntity(id entityID, gen generation) Entity {
	return Entity(gen)<<32 | Entity(id)
}

func (e Entity) id() entityID { return entityID(e & slotMask) }
func (e Entity) generation() generation { return generation(e >> 32) }

// Valid reports whether e refers to a slot at all; it says nothing about
// liveness, see World.IsAlive.
func (e Entity) Valid() bool {
	return e.id() != 0
}

func (e Entity) String() string {
	return fmt.Sprintf("#%d.%d", e.id(), e.generation())
}
