package system

import (
	"github.com/milk9111/tilewalker/character"
	"github.com/milk9111/tilewalker/ecs"
	"github.com/milk9111/tilewalker/logging"
	"go.uber.org/zap"
)

// TelemetrySystem drains the event queue, logs what happened and keeps
// counters for the debug overlay.
type TelemetrySystem struct {
	Started  uint64
	Finished uint64
	Last     ecs.TransitEvent
	Facing   character.Orientation

	log *zap.SugaredLogger
}

// NewTelemetrySystem names its logger from the process logger current at
// construction, so build it after logging.Init.
func NewTelemetrySystem() *TelemetrySystem {
	return &TelemetrySystem{log: logging.Named("telemetry")}
}

func (s *TelemetrySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	if s.log == nil {
		s.log = logging.Named("telemetry")
	}
	log := s.log
	for _, evt := range w.Events().Drain() {
		switch evt.Type {
		case ecs.EventTransitStarted:
			te, ok := evt.Data.(ecs.TransitEvent)
			if !ok {
				panic("telemetry system: transit started: unexpected payload")
			}
			s.Started++
			s.Facing = te.Orientation
			log.Debugw("transit started", "entity", te.Entity, "orientation", te.Orientation, "x", te.X, "y", te.Y)
		case ecs.EventTransitFinished:
			te, ok := evt.Data.(ecs.TransitEvent)
			if !ok {
				panic("telemetry system: transit finished: unexpected payload")
			}
			s.Finished++
			s.Last = te
			log.Debugw("transit finished", "entity", te.Entity, "orientation", te.Orientation, "x", te.X, "y", te.Y)
		case ecs.EventLevelLoaded:
			log.Infow("level loaded", "level", evt.Data)
		default:
			log.Warnw("unhandled event", "type", evt.Type)
		}
	}
}
