package component

import "github.com/milk9111/tilewalker/character"

// Movement owns the tile-transit state of a controlled actor.
type Movement struct {
	State *character.State
}

var MovementComponent = NewComponent[Movement]()
