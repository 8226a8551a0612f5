package entity

import (
	"fmt"
	"sort"

	"github.com/milk9111/tilewalker/character"
	"github.com/milk9111/tilewalker/ecs"
	"github.com/milk9111/tilewalker/ecs/component"
	"github.com/milk9111/tilewalker/ecs/render"
	"github.com/milk9111/tilewalker/prefabs"
)

// SheetLoader resolves a spritesheet descriptor name.
type SheetLoader func(name string) (*render.Sheet, error)

// Builder turns prefab files and levels into entities. Game supplies the
// screen and tile geometry; Movement is the transit config given to every
// movement component unless the prefab overrides it.
type Builder struct {
	Game     *prefabs.GameSpec
	Movement character.Config
	Sheets   SheetLoader
}

func NewBuilder(game *prefabs.GameSpec, movement character.Config) *Builder {
	return &Builder{Game: game, Movement: movement, Sheets: render.LoadSheet}
}

type buildContext struct {
	PrefabPath string
	builder    *Builder
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":   addPlayerTag,
	"camera_tag":   addCameraTag,
	"input":        addInput,
	"movement":     addMovement,
	"transform":    addTransform,
	"sprite":       addSprite,
	"render_layer": addRenderLayer,
	"camera":       addCamera,
}

// sprite goes after movement so it can start on the facing frame.
var componentBuildOrder = []string{
	"player_tag",
	"camera_tag",
	"input",
	"movement",
	"transform",
	"sprite",
	"render_layer",
	"camera",
}

func (b *Builder) BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	return b.BuildFromSpec(w, prefabPath, spec)
}

// BuildFromSpec builds an entity from an already decoded prefab.
func (b *Builder) BuildFromSpec(w *ecs.World, prefabPath string, spec prefabs.EntityBuildSpec) (ecs.Entity, error) {
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath, builder: b}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	ordered := make([]string, 0, len(remaining))
	for _, name := range componentBuildOrder {
		if _, ok := remaining[name]; ok {
			ordered = append(ordered, name)
			delete(remaining, name)
		}
	}
	// Unknown names are reported in a stable order.
	rest := make([]string, 0, len(remaining))
	for name := range remaining {
		rest = append(rest, name)
	}
	sort.Strings(rest)
	ordered = append(ordered, rest...)

	for _, name := range ordered {
		builder, ok := componentRegistry[name]
		if !ok {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, name)
		}
		if err := builder(w, e, spec.Components[name], ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
	}

	return e, nil
}

// SetEntityTransform moves e, creating a unit-scale transform if it has none.
func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y, z float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{ScaleX: 1, ScaleY: 1}
	}
	t.X = x
	t.Y = y
	t.Z = z
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addCameraTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{Actions: map[string]bool{}})
}

type movementSpec = prefabs.MovementComponentSpec

func addMovement(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[movementSpec](raw)
	if err != nil {
		return err
	}

	cfg := ctx.builder.Movement
	if spec.TileSize > 0 {
		cfg.TileSize = spec.TileSize
	}
	if spec.TransitTicks > 0 {
		cfg.TransitTicks = spec.TransitTicks
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	state := character.NewState(cfg)
	if spec.Facing != "" {
		facing, ok := character.ParseOrientation(spec.Facing)
		if !ok {
			return fmt.Errorf("unknown facing %q", spec.Facing)
		}
		state.Face(facing)
	}
	return ecs.Add(w, e, component.MovementComponent.Kind(), &component.Movement{State: state})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return err
	}
	sx, sy := spec.ScaleX, spec.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		Z:        spec.Z,
		ScaleX:   sx,
		ScaleY:   sy,
		Rotation: spec.Rotation,
	})
}

type spriteSpec = prefabs.SpriteComponentSpec

func addSprite(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return err
	}
	if spec.Sheet == "" {
		return fmt.Errorf("sprite has no sheet")
	}
	sheet, err := ctx.builder.loadSheet(spec.Sheet)
	if err != nil {
		return err
	}

	frame := spec.Frame
	if mv, ok := ecs.Get(w, e, component.MovementComponent.Kind()); ok && mv.State != nil {
		frame = mv.State.NextFrame
	}
	sprite := newSprite(sheet, frame)
	if spec.OriginX != 0 || spec.OriginY != 0 {
		sprite.OriginX = spec.OriginX
		sprite.OriginY = spec.OriginY
	}
	return ecs.Add(w, e, component.SpriteComponent.Kind(), sprite)
}

// newSprite centres the frame on the transform.
func newSprite(sheet *render.Sheet, frame int) *component.Sprite {
	return &component.Sprite{
		Sheet:   sheet.Image,
		FrameW:  sheet.FrameW,
		FrameH:  sheet.FrameH,
		Frame:   frame,
		OriginX: float64(sheet.FrameW) / 2,
		OriginY: float64(sheet.FrameH) / 2,
	}
}

type renderLayerSpec = prefabs.RenderLayerComponentSpec

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[renderLayerSpec](raw)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}

type cameraSpec = prefabs.CameraComponentSpec

func addCamera(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[cameraSpec](raw)
	if err != nil {
		return err
	}
	zoom := spec.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	cam := &component.Camera{
		TargetName: spec.TargetName,
		Zoom:       zoom,
		Smoothness: spec.Smoothness,
	}
	if g := ctx.builder.Game; g != nil {
		cam.ScreenW = float64(g.ScreenWidth)
		cam.ScreenH = float64(g.ScreenHeight)
	}
	return ecs.Add(w, e, component.CameraComponent.Kind(), cam)
}

func (b *Builder) loadSheet(name string) (*render.Sheet, error) {
	load := b.Sheets
	if load == nil {
		load = render.LoadSheet
	}
	sheet, err := load(name)
	if err != nil {
		return nil, err
	}
	if sheet == nil {
		return nil, fmt.Errorf("sheet %q not found", name)
	}
	return sheet, nil
}
