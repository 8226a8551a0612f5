package input

import "github.com/milk9111/tilewalker/character"

// Extra actions bound alongside the four directions.
const (
	ActionPause   = "pause"
	ActionRestart = "restart"
)

// Source answers held-action queries for the input system.
type Source interface {
	character.HeldQuery
}

// Ticker is implemented by sources that need to refresh once per tick
// before being queried.
type Ticker interface {
	Tick(tick uint64) error
}

// Map is a fixed held-state table. Actions missing from the map are
// reported as unknown.
type Map map[string]bool

func (m Map) Held(action string) (bool, bool) {
	held, ok := m[action]
	return held, ok
}
