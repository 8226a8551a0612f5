package system

import (
	"github.com/milk9111/tilewalker/character"
	"github.com/milk9111/tilewalker/ecs"
	"github.com/milk9111/tilewalker/ecs/component"
	"github.com/milk9111/tilewalker/input"
	"github.com/milk9111/tilewalker/logging"
)

var directionActions = []string{
	character.ActionUp,
	character.ActionDown,
	character.ActionLeft,
	character.ActionRight,
}

type justPresser interface {
	JustPressed(action string) bool
}

// InputSystem snapshots the held state of the four directions into every
// Input component. Actions the source knows nothing about are left out of
// the snapshot so they stay unknown downstream.
type InputSystem struct {
	source    input.Source
	failedAt  uint64
	hasFailed bool
}

func NewInputSystem(source input.Source) *InputSystem {
	return &InputSystem{source: source}
}

func (s *InputSystem) Update(w *ecs.World) {
	if w == nil || s.source == nil {
		return
	}

	var tick uint64
	if ft := frameTime(w); ft != nil {
		tick = ft.Tick
	}
	if ticker, ok := s.source.(input.Ticker); ok {
		if err := ticker.Tick(tick); err != nil {
			// One line per failure streak; a broken script fails every tick.
			if !s.hasFailed {
				logging.Log.Errorw("input source failed", "tick", tick, "error", err)
			}
			s.hasFailed = true
			s.failedAt = tick
		} else if s.hasFailed {
			logging.Log.Infow("input source recovered", "tick", tick, "failed_at", s.failedAt)
			s.hasFailed = false
		}
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, in *component.Input) {
		if in.Actions == nil {
			in.Actions = make(map[string]bool, len(directionActions))
		}
		for _, action := range directionActions {
			held, known := s.source.Held(action)
			if !known {
				delete(in.Actions, action)
				continue
			}
			in.Actions[action] = held
		}
	})

	if jp, ok := s.source.(justPresser); ok && jp.JustPressed(input.ActionRestart) {
		RequestReload(w, "restart")
	}
}

// RequestReload queues a ReloadRequest for the game loop to pick up.
func RequestReload(w *ecs.World, reason string) {
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.ReloadRequestComponent.Kind(), &component.ReloadRequest{Reason: reason}); err != nil {
		panic("input system: add reload request: " + err.Error())
	}
}

// TakeReloadRequest removes every pending reload request and returns the
// reason of the first one.
func TakeReloadRequest(w *ecs.World) (string, bool) {
	if w == nil {
		return "", false
	}
	reason := ""
	found := false
	for _, e := range w.Query(component.ReloadRequestComponent.Kind()) {
		if req, ok := ecs.Get(w, e, component.ReloadRequestComponent.Kind()); ok && !found {
			reason = req.Reason
			found = true
		}
		w.DestroyEntity(e)
	}
	return reason, found
}
