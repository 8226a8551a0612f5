package component

// Input stores the held-action snapshot taken this frame.
type Input struct {
	Actions map[string]bool
}

// Held implements character.HeldQuery over the snapshot.
func (i *Input) Held(action string) (bool, bool) {
	if i == nil || i.Actions == nil {
		return false, false
	}
	held, ok := i.Actions[action]
	return held, ok
}

var InputComponent = NewComponent[Input]()
