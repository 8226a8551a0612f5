package system

import (
	"math"

	"github.com/milk9111/tilewalker/common"
	"github.com/milk9111/tilewalker/ecs"
	"github.com/milk9111/tilewalker/ecs/component"
)

// cameraSnapDistance is how close the camera has to get before it stops
// easing and lands on the target.
const cameraSnapDistance = 0.01

type CameraSystem struct {
	camEntity    ecs.Entity
	targetEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Update moves the camera toward its target plus the offset recorded at
// spawn. Smoothness 1 (or unset) follows exactly; smaller values ease in.
func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	if !cs.camEntity.Valid() || !w.IsAlive(cs.camEntity) {
		cs.camEntity, _ = w.First(component.CameraComponent.Kind())
		cs.targetEntity = 0
	}

	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, cs.camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	if !cs.targetEntity.Valid() || !w.IsAlive(cs.targetEntity) {
		cs.targetEntity = findEntityByNameOrTag(w, cam.TargetName)
	}
	target, ok := ecs.Get(w, cs.targetEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	wantX := target.X + cam.OffsetX
	wantY := target.Y + cam.OffsetY
	smooth := cam.Smoothness
	if smooth <= 0 {
		smooth = 1
	}
	smooth = common.Clamp01(smooth)

	camTransform.X = follow(camTransform.X, wantX, smooth)
	camTransform.Y = follow(camTransform.Y, wantY, smooth)
}

func follow(cur, want, t float64) float64 {
	next := common.Lerp(cur, want, t)
	if math.Abs(want-next) < cameraSnapDistance {
		return want
	}
	return next
}

func findEntityByNameOrTag(w *ecs.World, name string) ecs.Entity {
	switch name {
	case "", "player":
		if e, ok := w.First(component.PlayerTagComponent.Kind()); ok {
			return e
		}
	}
	return 0
}
