package entity

import (
	"errors"
	"fmt"

	"github.com/milk9111/tilewalker/ecs"
	"github.com/milk9111/tilewalker/ecs/component"
	"github.com/milk9111/tilewalker/levels"
	"github.com/milk9111/tilewalker/logging"
)

// LevelEntities are the handles LoadLevelToWorld hands back to the game.
type LevelEntities struct {
	Info   ecs.Entity
	Player ecs.Entity
	Camera ecs.Entity
	Tiles  int
}

// LoadLevelToWorld fills an empty world from lvl: one entity per placed tile
// of every configured layer, then the player and the camera.
func (b *Builder) LoadLevelToWorld(world *ecs.World, lvl *levels.Level) (LevelEntities, error) {
	var out LevelEntities
	if world == nil || lvl == nil {
		return out, fmt.Errorf("load level: nil world or level")
	}
	if b.Game == nil {
		return out, fmt.Errorf("load level %s: no game spec", lvl.Name)
	}
	tileSize := b.Game.TileSize
	log := logging.Named("level")

	width, height := lvl.Size()
	out.Info = world.CreateEntity()
	if err := ecs.Add(world, out.Info, component.LevelInfoComponent.Kind(), &component.LevelInfo{
		Name:     lvl.Name,
		TileSize: tileSize,
		Width:    width,
		Height:   height,
	}); err != nil {
		return out, err
	}

	for _, layer := range b.Game.Layers {
		tiles, err := lvl.Tiles(layer.Name)
		if errors.Is(err, levels.ErrLayerNotFound) {
			log.Warnw("level has no layer", "level", lvl.Name, "layer", layer.Name)
			continue
		}
		if err != nil {
			return out, fmt.Errorf("load level %s: %w", lvl.Name, err)
		}

		sheet, err := b.loadSheet(layer.Sheet)
		if err != nil {
			return out, fmt.Errorf("load level %s: layer %s: %w", lvl.Name, layer.Name, err)
		}
		frames := sheet.Frames()

		for _, tile := range tiles {
			// Frames is zero when the sheet has no image to measure.
			if frames > 0 && tile.ID >= frames {
				log.Warnw("tile id outside sheet", "layer", layer.Name, "x", tile.X, "y", tile.Y, "id", tile.ID)
				continue
			}
			e := world.CreateEntity()
			if err := ecs.Add(world, e, component.TileTagComponent.Kind(), &component.TileTag{Layer: layer.Name}); err != nil {
				return out, err
			}
			if err := ecs.Add(world, e, component.TransformComponent.Kind(), &component.Transform{
				X:      float64(tile.X) * tileSize,
				Y:      float64(tile.Y) * tileSize,
				Z:      layer.Z,
				ScaleX: 1,
				ScaleY: 1,
			}); err != nil {
				return out, err
			}
			if err := ecs.Add(world, e, component.SpriteComponent.Kind(), newSprite(sheet, tile.ID)); err != nil {
				return out, err
			}
			out.Tiles++
		}
	}

	player, err := b.NewPlayerAt(world, lvl.Character.X*tileSize, lvl.Character.Y*tileSize, b.Game.PlayerZ)
	if err != nil {
		return out, fmt.Errorf("load level %s: %w", lvl.Name, err)
	}
	out.Player = player

	camX, camY := CameraStart(float64(b.Game.ScreenWidth), float64(b.Game.ScreenHeight), tileSize, lvl.Camera.X, lvl.Camera.Y)
	camera, err := b.NewCameraAt(world, camX, camY, player)
	if err != nil {
		return out, fmt.Errorf("load level %s: %w", lvl.Name, err)
	}
	out.Camera = camera

	world.Events().Push(ecs.Event{Type: ecs.EventLevelLoaded, Data: lvl.Name})
	log.Infow("level built", "level", lvl.Name, "tiles", out.Tiles, "width", width, "height", height)
	return out, nil
}
