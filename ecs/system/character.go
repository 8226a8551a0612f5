package system

import (
	"github.com/milk9111/tilewalker/character"
	"github.com/milk9111/tilewalker/ecs"
	"github.com/milk9111/tilewalker/ecs/component"
)

// CharacterSystem turns the held snapshot into tile transits. It resolves
// one orientation per entity, steps its movement state, applies the delta
// to the transform and shows the resulting frame.
type CharacterSystem struct{}

func NewCharacterSystem() *CharacterSystem {
	return &CharacterSystem{}
}

func (s *CharacterSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ft := frameTime(w)
	var dt = character.DefaultSubStep
	if ft != nil {
		dt = ft.Delta
	}

	ents := w.Query(
		component.InputComponent.Kind(),
		component.MovementComponent.Kind(),
		component.TransformComponent.Kind(),
	)
	for _, e := range ents {
		in, _ := ecs.Get(w, e, component.InputComponent.Kind())
		mv, _ := ecs.Get(w, e, component.MovementComponent.Kind())
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		if mv.State == nil {
			panic("character system: movement: nil state")
		}
		st := mv.State

		inTransit := st.Moving && st.FrameCounter > 0
		dir, _ := character.Resolve(in)
		started := !inTransit && dir != 0
		startX, startY := t.X, t.Y

		delta, frame := st.Step(dir, dt)
		if !delta.IsZero() {
			t.Translate(delta.X, delta.Y)
		}

		if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			sprite.Frame = frame
		}

		if started {
			w.Events().Push(ecs.Event{
				Type: ecs.EventTransitStarted,
				Data: ecs.TransitEvent{Entity: e, Orientation: st.Orientation, X: startX, Y: startY},
			})
		}
		if (inTransit || started) && !st.Moving {
			w.Events().Push(ecs.Event{
				Type: ecs.EventTransitFinished,
				Data: ecs.TransitEvent{Entity: e, Orientation: st.Orientation, X: t.X, Y: t.Y},
			})
		}
	}
}
