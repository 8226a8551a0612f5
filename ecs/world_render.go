package ecs

import "github.com/hajimehoshi/ebiten/v2"

// Draw renders one frame through every drawing system, in update order.
func (w *World) Draw(screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	w.scheduler.Draw(w, screen)
}
