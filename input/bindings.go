package input

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilewalker/prefabs"
)

var buttonNames = map[string]ebiten.StandardGamepadButton{
	"rightbottom":      ebiten.StandardGamepadButtonRightBottom,
	"rightright":       ebiten.StandardGamepadButtonRightRight,
	"rightleft":        ebiten.StandardGamepadButtonRightLeft,
	"righttop":         ebiten.StandardGamepadButtonRightTop,
	"fronttopleft":     ebiten.StandardGamepadButtonFrontTopLeft,
	"fronttopright":    ebiten.StandardGamepadButtonFrontTopRight,
	"frontbottomleft":  ebiten.StandardGamepadButtonFrontBottomLeft,
	"frontbottomright": ebiten.StandardGamepadButtonFrontBottomRight,
	"centerleft":       ebiten.StandardGamepadButtonCenterLeft,
	"centerright":      ebiten.StandardGamepadButtonCenterRight,
	"leftstick":        ebiten.StandardGamepadButtonLeftStick,
	"rightstick":       ebiten.StandardGamepadButtonRightStick,
	"lefttop":          ebiten.StandardGamepadButtonLeftTop,
	"leftbottom":       ebiten.StandardGamepadButtonLeftBottom,
	"leftleft":         ebiten.StandardGamepadButtonLeftLeft,
	"leftright":        ebiten.StandardGamepadButtonLeftRight,
	"centercenter":     ebiten.StandardGamepadButtonCenterCenter,
}

// Binding is the set of keys and standard gamepad buttons for one action.
type Binding struct {
	Keys    []ebiten.Key
	Buttons []ebiten.StandardGamepadButton
}

// Bindings maps action names to their inputs.
type Bindings struct {
	Actions       map[string]Binding
	StickDeadzone float64
}

// NewBindings resolves the key and button names of spec.
func NewBindings(spec *prefabs.InputSpec) (*Bindings, error) {
	if spec == nil {
		return nil, fmt.Errorf("input: nil bindings spec")
	}
	b := &Bindings{
		Actions:       make(map[string]Binding, len(spec.Actions)),
		StickDeadzone: spec.StickDeadzone,
	}
	if b.StickDeadzone <= 0 || b.StickDeadzone >= 1 {
		b.StickDeadzone = 0.5
	}
	for action, raw := range spec.Actions {
		var binding Binding
		for _, name := range raw.Keys {
			var key ebiten.Key
			if err := key.UnmarshalText([]byte(name)); err != nil {
				return nil, fmt.Errorf("input: action %q: key %q: %w", action, name, err)
			}
			binding.Keys = append(binding.Keys, key)
		}
		for _, name := range raw.Buttons {
			button, ok := buttonNames[strings.ToLower(name)]
			if !ok {
				return nil, fmt.Errorf("input: action %q: unknown gamepad button %q", action, name)
			}
			binding.Buttons = append(binding.Buttons, button)
		}
		b.Actions[action] = binding
	}
	return b, nil
}

// LoadBindings reads input.yaml.
func LoadBindings() (*Bindings, error) {
	spec, err := prefabs.LoadInputSpec()
	if err != nil {
		return nil, err
	}
	return NewBindings(spec)
}

// Names returns the bound action names in sorted order.
func (b *Bindings) Names() []string {
	names := make([]string, 0, len(b.Actions))
	for name := range b.Actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
