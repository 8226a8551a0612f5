package character

import (
	"fmt"
	"strings"
)

// Orientation is the facing of the controlled actor. The zero value is not a
// valid orientation; states built with NewState always hold one.
type Orientation uint8

const (
	Up Orientation = iota + 1
	Right
	Down
	Left
)

// FramesPerCycle is the length of one walk cycle on the sheet.
const FramesPerCycle = 4

// SheetFrames is the number of frames on a character sheet: one cycle per orientation.
const SheetFrames = 4 * FramesPerCycle

func (o Orientation) Valid() bool {
	return o >= Up && o <= Left
}

func (o Orientation) String() string {
	switch o {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("orientation(%d)", uint8(o))
	}
}

// ParseOrientation accepts the names produced by String, case-insensitively.
func ParseOrientation(s string) (Orientation, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, true
	case "right":
		return Right, true
	case "down":
		return Down, true
	case "left":
		return Left, true
	}
	return 0, false
}

// BaseFrame returns the first sheet index of the orientation's walk cycle.
// It panics on an invalid orientation.
func (o Orientation) BaseFrame() int {
	switch o {
	case Right:
		return 12
	case Left:
		return 8
	case Down:
		return 0
	case Up:
		return 4
	}
	panic("character: base frame: no orientation")
}

// Translate turns a scalar step into a signed delta. Y grows upward, so Down
// decreases it. It panics on an invalid orientation.
func (o Orientation) Translate(m float64) Movement {
	switch o {
	case Right:
		return Movement{X: m}
	case Left:
		return Movement{X: -m}
	case Down:
		return Movement{Y: -m}
	case Up:
		return Movement{Y: m}
	}
	panic("character: translate: no orientation")
}

// Movement is the world-space delta to apply to the actor this tick.
type Movement struct {
	X float64
	Y float64
}

func (m Movement) IsZero() bool {
	return m.X == 0 && m.Y == 0
}
