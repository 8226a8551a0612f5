package entity

import (
	"fmt"

	"github.com/milk9111/tilewalker/ecs"
	"github.com/milk9111/tilewalker/ecs/component"
)

func (b *Builder) NewCamera(w *ecs.World) (ecs.Entity, error) {
	return b.BuildEntity(w, "camera.yaml")
}

// NewCameraAt builds the camera centred on (x, y) and records its distance
// from target so the camera system keeps it while following.
func (b *Builder) NewCameraAt(w *ecs.World, x, y float64, target ecs.Entity) (ecs.Entity, error) {
	camera, err := b.NewCamera(w)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, camera, x, y, 0); err != nil {
		return 0, fmt.Errorf("camera: override transform: %w", err)
	}

	cam, ok := ecs.Get(w, camera, component.CameraComponent.Kind())
	if !ok {
		return 0, fmt.Errorf("camera: prefab has no camera component")
	}
	if t, ok := ecs.Get(w, target, component.TransformComponent.Kind()); ok {
		cam.OffsetX = x - t.X
		cam.OffsetY = y - t.Y
	}
	return camera, nil
}

// CameraStart is where the camera sits when a level opens. Level camera
// coordinates are in tiles; (0, 0) puts the bottom-left tile in the
// bottom-left corner of the screen.
func CameraStart(screenW, screenH, tileSize, camX, camY float64) (float64, float64) {
	return screenW/2 - tileSize/2 + camX*tileSize,
		screenH/2 - tileSize/2 + camY*tileSize
}
