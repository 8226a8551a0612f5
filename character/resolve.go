package character

// Action names polled from the held query every tick.
const (
	ActionUp    = "up"
	ActionDown  = "down"
	ActionLeft  = "left"
	ActionRight = "right"
)

// HeldQuery reports whether a named action is currently held. known is false
// when the source has no opinion about the action; that counts as not held.
type HeldQuery interface {
	Held(action string) (held bool, known bool)
}

// Intent is a snapshot of the four directional actions.
type Intent struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
}

// ReadIntent polls q once for each directional action.
func ReadIntent(q HeldQuery) Intent {
	if q == nil {
		return Intent{}
	}
	return Intent{
		Up:    isHeld(q, ActionUp),
		Down:  isHeld(q, ActionDown),
		Left:  isHeld(q, ActionLeft),
		Right: isHeld(q, ActionRight),
	}
}

func isHeld(q HeldQuery, action string) bool {
	held, known := q.Held(action)
	return known && held
}

// Resolve reads q and reduces it to at most one orientation.
func Resolve(q HeldQuery) (Orientation, bool) {
	return ResolveIntent(ReadIntent(q))
}

// ResolveIntent reduces a snapshot to at most one orientation. Opposing
// actions on one axis cancel out and the horizontal axis wins ties.
func ResolveIntent(in Intent) (Orientation, bool) {
	horizontal := axis(in.Left, in.Right)
	vertical := axis(in.Up, in.Down)

	switch {
	case horizontal == 1:
		return Right, true
	case horizontal == -1:
		return Left, true
	case vertical == 1:
		return Down, true
	case vertical == -1:
		return Up, true
	}
	return 0, false
}

func axis(negative, positive bool) int {
	v := 0
	if negative {
		v--
	}
	if positive {
		v++
	}
	return v
}
