package system

import (
	"time"

	"github.com/milk9111/tilewalker/character"
	"github.com/milk9111/tilewalker/ecs"
	"github.com/milk9111/tilewalker/ecs/component"
)

// MaxFrameDelta is the default cap on one real clock reading: two sub-steps
// at 60 ticks per second, so a slow frame catches up by one extra sub-step
// at most.
const MaxFrameDelta = 2 * character.DefaultSubStep

// Clock returns the time elapsed since its previous call. Reset forgets the
// previous call, so time spent while the world was not updated is dropped.
type Clock interface {
	Elapsed() time.Duration
	Reset()
}

// RealClock measures wall time between calls. The first call after creation
// or Reset returns zero.
type RealClock struct {
	Max  time.Duration
	now  func() time.Time
	last time.Time
}

// NewRealClock caps each reading at limit, or at MaxFrameDelta when limit is
// not positive.
func NewRealClock(limit time.Duration) *RealClock {
	if limit <= 0 {
		limit = MaxFrameDelta
	}
	return &RealClock{Max: limit, now: time.Now}
}

func (c *RealClock) Reset() {
	c.last = time.Time{}
}

func (c *RealClock) Elapsed() time.Duration {
	if c.now == nil {
		c.now = time.Now
	}
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	dt := now.Sub(c.last)
	c.last = now
	if dt < 0 {
		return 0
	}
	if c.Max > 0 && dt > c.Max {
		return c.Max
	}
	return dt
}

// FixedClock reports the same step every call.
type FixedClock struct {
	Step time.Duration
}

func (c FixedClock) Elapsed() time.Duration {
	return c.Step
}

func (FixedClock) Reset() {}

// TimeSystem writes the FrameTime singleton at the start of every tick.
type TimeSystem struct {
	clock Clock
}

func NewTimeSystem(clock Clock) *TimeSystem {
	if clock == nil {
		clock = NewRealClock(0)
	}
	return &TimeSystem{clock: clock}
}

// Reset drops the time that passed since the last tick. Call it when the
// world resumes after being skipped, e.g. leaving the pause menu.
func (s *TimeSystem) Reset() {
	s.clock.Reset()
}

func (s *TimeSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ft := frameTime(w)
	if ft == nil {
		e := w.CreateEntity()
		ft = &component.FrameTime{}
		if err := ecs.Add(w, e, component.FrameTimeComponent.Kind(), ft); err != nil {
			panic("time system: add frame time: " + err.Error())
		}
	} else {
		ft.Tick++
	}
	ft.Delta = s.clock.Elapsed()
}

// frameTime returns the FrameTime singleton, or nil before the first tick.
func frameTime(w *ecs.World) *component.FrameTime {
	e, ok := w.First(component.FrameTimeComponent.Kind())
	if !ok {
		return nil
	}
	ft, _ := ecs.Get(w, e, component.FrameTimeComponent.Kind())
	return ft
}
