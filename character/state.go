package character

import (
	"errors"
	"fmt"
	"time"
)

const (
	// DefaultTileSize is the edge of a tile in world units.
	DefaultTileSize = 32.0
	// DefaultTransitTicks is the number of sub-steps it takes to cross one tile.
	DefaultTransitTicks = 16
	// DefaultSubStep is one sub-step at 60 ticks per second.
	DefaultSubStep = time.Second / 60
)

var ErrInvalidConfig = errors.New("character: invalid config")

// Config fixes the geometry and timing of a transit. A zero SubStep selects
// tick counting: every Step completes exactly one sub-step regardless of dt.
// Otherwise dt is accumulated and a sub-step completes each time SubStep worth
// of time has elapsed.
type Config struct {
	TileSize     float64
	TransitTicks int
	SubStep      time.Duration
}

func DefaultConfig() Config {
	return Config{
		TileSize:     DefaultTileSize,
		TransitTicks: DefaultTransitTicks,
		SubStep:      DefaultSubStep,
	}
}

// TickConfig is DefaultConfig with tick counting.
func TickConfig() Config {
	cfg := DefaultConfig()
	cfg.SubStep = 0
	return cfg
}

func (c Config) Validate() error {
	if c.TileSize <= 0 {
		return fmt.Errorf("%w: tile size %v must be positive", ErrInvalidConfig, c.TileSize)
	}
	if c.TransitTicks < 2*FramesPerCycle || c.TransitTicks%FramesPerCycle != 0 {
		return fmt.Errorf("%w: transit ticks %d must be a multiple of %d and at least %d",
			ErrInvalidConfig, c.TransitTicks, FramesPerCycle, 2*FramesPerCycle)
	}
	if c.SubStep < 0 {
		return fmt.Errorf("%w: negative sub-step %s", ErrInvalidConfig, c.SubStep)
	}
	return nil
}

// TickBased reports whether dt is ignored.
func (c Config) TickBased() bool {
	return c.SubStep == 0
}

func (c Config) stepSize() float64 {
	return c.TileSize / float64(c.TransitTicks)
}

// State is the movement of one controlled actor. It is owned by a single
// caller and advanced once per simulation tick.
type State struct {
	Moving       bool
	Orientation  Orientation
	FrameCounter int
	NextFrame    int
	// Timer is the time left before the next sub-step is due. Unused when
	// the config is tick based.
	Timer time.Duration

	cfg Config
	// chained is set on the tick a transit completes and cleared on the
	// next Step. A transit begun while it is set keeps Timer.
	chained bool
}

// NewState returns an idle state facing down. It panics if cfg does not
// validate; check configs loaded at runtime with Config.Validate first.
func NewState(cfg Config) *State {
	if err := cfg.Validate(); err != nil {
		panic(err.Error())
	}
	return &State{
		Orientation: Down,
		NextFrame:   Down.BaseFrame(),
		cfg:         cfg,
	}
}

// Face turns an idle state toward o without moving it. It reports false and
// changes nothing while a transit is in progress.
func (s *State) Face(o Orientation) bool {
	if !o.Valid() {
		panic("character: face: no orientation")
	}
	if s.Moving && s.FrameCounter > 0 {
		return false
	}
	s.Moving = false
	s.Orientation = o
	s.NextFrame = o.BaseFrame()
	return true
}

func (s *State) Config() Config {
	return s.cfg
}

// Step advances the state by one tick. dir is the orientation resolved this
// tick, or zero when nothing was resolved; it is ignored while a transit is
// in progress. It returns the delta to add to the actor's position and the
// sheet frame to show.
func (s *State) Step(dir Orientation, dt time.Duration) (Movement, int) {
	if s.cfg.TransitTicks == 0 {
		panic("character: step: state not initialised")
	}

	if s.Moving && s.FrameCounter == 0 {
		s.Moving = false
	}

	if !s.Moving && dir != 0 {
		s.begin(dir)
	}
	s.chained = false

	if !s.Moving {
		return Movement{}, s.NextFrame
	}

	due := s.dueSubSteps(dt)
	magnitude := 0.0
	for i := 0; i < due; i++ {
		s.advanceFrame()
		magnitude += s.cfg.stepSize()
		s.FrameCounter--
	}
	if s.FrameCounter == 0 {
		s.Moving = false
		s.chained = true
	}

	return s.Orientation.Translate(magnitude), s.NextFrame
}

// begin starts a transit toward dir. Straight after another transit the
// timer carries over, so time left over or overdue at the tile boundary
// counts toward the new tile.
func (s *State) begin(dir Orientation) {
	s.Orientation = dir
	s.FrameCounter = s.cfg.TransitTicks
	s.Moving = true
	if !s.chained || s.cfg.TickBased() {
		s.Timer = s.cfg.SubStep
	}
	s.NextFrame = dir.BaseFrame()
}

// dueSubSteps returns how many sub-steps complete during this tick, never
// more than the transit has left.
func (s *State) dueSubSteps(dt time.Duration) int {
	if s.cfg.TickBased() {
		return 1
	}
	if dt > 0 {
		s.Timer -= dt
	}
	due := 0
	for s.Timer <= 0 && due < s.FrameCounter {
		due++
		s.Timer += s.cfg.SubStep
	}
	return due
}

// advanceFrame moves through the walk cycle. It runs before FrameCounter is
// decremented for the sub-step.
func (s *State) advanceFrame() {
	interval := s.cfg.TransitTicks / FramesPerCycle
	switch {
	case s.FrameCounter%interval == 0 && s.FrameCounter < s.cfg.TransitTicks:
		s.NextFrame++
	case s.FrameCounter == 1:
		s.NextFrame -= FramesPerCycle - 1
	}
}
