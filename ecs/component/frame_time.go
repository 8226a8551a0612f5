package component

import "time"

// FrameTime is a singleton carrying the elapsed time of the current tick.
type FrameTime struct {
	Delta time.Duration
	Tick  uint64
}

var FrameTimeComponent = NewComponent[FrameTime]()
