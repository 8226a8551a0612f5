package input

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/tilewalker/prefabs"
)

// The script must define actions := func(tick) { ... } returning a map of
// action name to bool. The dispatch below is appended to it.
const autopilotDispatchScript = `
__held := actions(__tick)
`

// Autopilot drives the held-action query from a tengo script, for demos and
// soak runs without a player at the keyboard.
type Autopilot struct {
	name     string
	compiled *tengo.Compiled
	held     map[string]any
}

// LoadAutopilot compiles a script from prefabs/scripts.
func LoadAutopilot(name string) (*Autopilot, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, err
	}
	return NewAutopilot(name, src)
}

func NewAutopilot(name string, src []byte) (*Autopilot, error) {
	script := tengo.NewScript(append(append([]byte(nil), src...), autopilotDispatchScript...))
	if err := script.Add("__tick", 0); err != nil {
		return nil, fmt.Errorf("input: autopilot %s: %w", name, err)
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("input: autopilot %s: compile: %w", name, err)
	}
	return &Autopilot{name: name, compiled: compiled}, nil
}

// Tick runs the script for tick and keeps its answer until the next call.
func (a *Autopilot) Tick(tick uint64) error {
	if err := a.compiled.Set("__tick", int64(tick)); err != nil {
		return fmt.Errorf("input: autopilot %s: %w", a.name, err)
	}
	if err := a.compiled.Run(); err != nil {
		a.held = nil
		return fmt.Errorf("input: autopilot %s: tick %d: %w", a.name, tick, err)
	}
	v := a.compiled.Get("__held")
	if v.IsUndefined() {
		a.held = nil
		return nil
	}
	a.held = v.Map()
	return nil
}

// Held reports unknown for actions the script left out or set to a
// non-bool value.
func (a *Autopilot) Held(action string) (bool, bool) {
	if a == nil || a.held == nil {
		return false, false
	}
	held, ok := a.held[action].(bool)
	return held, ok
}
