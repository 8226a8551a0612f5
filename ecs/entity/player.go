package entity

import (
	"fmt"

	"github.com/milk9111/tilewalker/ecs"
)

func (b *Builder) NewPlayer(w *ecs.World) (ecs.Entity, error) {
	return b.BuildEntity(w, "player.yaml")
}

// NewPlayerAt builds the player with its centre at (x, y).
func (b *Builder) NewPlayerAt(w *ecs.World, x, y, z float64) (ecs.Entity, error) {
	entity, err := b.NewPlayer(w)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, entity, x, y, z); err != nil {
		return 0, fmt.Errorf("player: override transform: %w", err)
	}
	return entity, nil
}
