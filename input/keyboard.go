package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/tilewalker/character"
)

// Keyboard reads bound keys and the first standard gamepad. The left stick
// also drives the four directions once it leaves the dead zone.
type Keyboard struct {
	bindings *Bindings
}

func NewKeyboard(b *Bindings) *Keyboard {
	return &Keyboard{bindings: b}
}

// Held reports unknown for actions without a binding.
func (k *Keyboard) Held(action string) (bool, bool) {
	if k == nil || k.bindings == nil {
		return false, false
	}
	binding, ok := k.bindings.Actions[action]
	if !ok {
		return false, false
	}
	for _, key := range binding.Keys {
		if ebiten.IsKeyPressed(key) {
			return true, true
		}
	}

	gamepads := ebiten.AppendGamepadIDs(nil)
	if len(gamepads) == 0 {
		return false, true
	}
	id := gamepads[0]
	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		return false, true
	}
	for _, button := range binding.Buttons {
		if ebiten.IsStandardGamepadButtonPressed(id, button) {
			return true, true
		}
	}
	return stickHeld(action, id, k.bindings.StickDeadzone), true
}

// JustPressed reports whether any input bound to action went down this tick.
func (k *Keyboard) JustPressed(action string) bool {
	if k == nil || k.bindings == nil {
		return false
	}
	binding, ok := k.bindings.Actions[action]
	if !ok {
		return false
	}
	for _, key := range binding.Keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		for _, button := range binding.Buttons {
			if inpututil.IsStandardGamepadButtonJustPressed(id, button) {
				return true
			}
		}
	}
	return false
}

func stickHeld(action string, id ebiten.GamepadID, deadzone float64) bool {
	x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	y := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
	switch action {
	case character.ActionLeft:
		return x < -deadzone
	case character.ActionRight:
		return x > deadzone
	case character.ActionUp:
		return y < -deadzone
	case character.ActionDown:
		return y > deadzone
	}
	return false
}
