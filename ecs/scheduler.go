package ecs

import "github.com/hajimehoshi/ebiten/v2"

// System advances one concern of the world per tick.
type System interface {
	Update(w *World)
}

// RenderSystem is a System that also draws.
type RenderSystem interface {
	Draw(w *World, screen *ebiten.Image)
}

// Scheduler runs systems in registration order. Systems that can draw are
// remembered separately so a frame does not type-check every system.
type Scheduler struct {
	order   []System
	drawers []RenderSystem
}

func (s *Scheduler) Add(sys System) {
	if sys == nil {
		return
	}
	s.order = append(s.order, sys)
	if rs, ok := sys.(RenderSystem); ok {
		s.drawers = append(s.drawers, rs)
	}
}

func (s *Scheduler) Update(w *World) {
	for _, sys := range s.order {
		sys.Update(w)
	}
}

func (s *Scheduler) Draw(w *World, screen *ebiten.Image) {
	for _, rs := range s.drawers {
		rs.Draw(w, screen)
	}
}

// Systems returns a copy of the update order.
func (s *Scheduler) Systems() []System {
	return append([]System(nil), s.order...)
}
