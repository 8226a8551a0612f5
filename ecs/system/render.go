package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilewalker/ecs"
	"github.com/milk9111/tilewalker/ecs/component"
)

// View is the camera state the renderer projects through.
type View struct {
	X, Y    float64
	Zoom    float64
	ScreenW float64
	ScreenH float64
}

// ToScreen maps a world point to screen pixels. The camera sits at the
// screen centre and world Y grows upward, so it is flipped here.
func (v View) ToScreen(x, y float64) (float64, float64) {
	zoom := v.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return (x-v.X)*zoom + v.ScreenW/2, v.ScreenH/2 - (y-v.Y)*zoom
}

type RenderSystem struct {
	camEntity ecs.Entity
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// Update is a no-op; drawing happens in Draw.
func (r *RenderSystem) Update(*ecs.World) {}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	b := screen.Bounds()
	view := r.View(w, float64(b.Dx()), float64(b.Dy()))

	for _, e := range DrawOrder(w) {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
		if s.Hidden || s.Sheet == nil {
			continue
		}
		src, ok := s.Source()
		if !ok {
			continue
		}
		img, ok := s.Sheet.SubImage(src).(*ebiten.Image)
		if !ok {
			continue
		}

		x, y := view.ToScreen(t.X, t.Y)
		sx := t.ScaleX
		if sx == 0 {
			sx = 1
		}
		sy := t.ScaleY
		if sy == 0 {
			sy = 1
		}
		zoom := view.Zoom
		if zoom <= 0 {
			zoom = 1
		}

		// Cull anything that cannot reach the screen even at its largest extent.
		reach := float64(max(s.FrameW, s.FrameH)) * max(sx, sy, -sx, -sy) * zoom
		if x+reach < 0 || y+reach < 0 || x-reach > view.ScreenW || y-reach > view.ScreenH {
			continue
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-s.OriginX, -s.OriginY)
		op.GeoM.Scale(sx, sy)
		op.GeoM.Rotate(t.Rotation)
		op.GeoM.Scale(zoom, zoom)
		op.GeoM.Translate(x, y)
		screen.DrawImage(img, op)
	}
}

// View returns the projection of the first camera, or an identity view
// centred on the origin when there is none.
func (r *RenderSystem) View(w *ecs.World, screenW, screenH float64) View {
	v := View{Zoom: 1, ScreenW: screenW, ScreenH: screenH}
	if !r.camEntity.Valid() || !w.IsAlive(r.camEntity) {
		r.camEntity, _ = w.First(component.CameraComponent.Kind())
	}
	if t, ok := ecs.Get(w, r.camEntity, component.TransformComponent.Kind()); ok {
		v.X, v.Y = t.X, t.Y
	}
	if cam, ok := ecs.Get(w, r.camEntity, component.CameraComponent.Kind()); ok && cam.Zoom > 0 {
		v.Zoom = cam.Zoom
	}
	return v
}

// DrawOrder returns the drawable entities back to front: by Z, then render
// layer, then slot.
func DrawOrder(w *ecs.World) []ecs.Entity {
	ents := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	type key struct {
		z     float64
		layer int
	}
	keys := make(map[ecs.Entity]key, len(ents))
	for _, e := range ents {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		k := key{z: t.Z}
		if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			k.layer = layer.Index
		}
		keys[e] = k
	}
	sort.SliceStable(ents, func(i, j int) bool {
		ki, kj := keys[ents[i]], keys[ents[j]]
		if ki.z != kj.z {
			return ki.z < kj.z
		}
		return ki.layer < kj.layer
	})
	return ents
}
