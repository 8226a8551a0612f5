package prefabs

import (
	"fmt"
	"time"

	"github.com/milk9111/tilewalker/character"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// GameSpec is game.yaml: screen geometry, transit timing and the tile
// layers to build from each level.
type GameSpec struct {
	Title          string      `yaml:"title"`
	ScreenWidth    int         `yaml:"screen_width"`
	ScreenHeight   int         `yaml:"screen_height"`
	WindowScale    float64     `yaml:"window_scale"`
	TileSize       float64     `yaml:"tile_size"`
	TransitTicks   int         `yaml:"transit_ticks"`
	TicksPerSecond int         `yaml:"ticks_per_second"`
	PlayerZ        float64     `yaml:"player_z"`
	Layers         []LayerSpec `yaml:"layers"`
}

type LayerSpec struct {
	Name  string  `yaml:"name"`
	Sheet string  `yaml:"sheet"`
	Z     float64 `yaml:"z"`
}

func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec]("game.yaml")
	if err != nil {
		return nil, err
	}
	spec.applyDefaults()
	if _, err := spec.MovementConfig(false); err != nil {
		return nil, fmt.Errorf("prefabs: game.yaml: %w", err)
	}
	return &spec, nil
}

func (s *GameSpec) applyDefaults() {
	if s.Title == "" {
		s.Title = "tilewalker"
	}
	if s.ScreenWidth <= 0 {
		s.ScreenWidth = 352
	}
	if s.ScreenHeight <= 0 {
		s.ScreenHeight = 288
	}
	if s.WindowScale <= 0 {
		s.WindowScale = 1
	}
	if s.TileSize <= 0 {
		s.TileSize = character.DefaultTileSize
	}
	if s.TransitTicks <= 0 {
		s.TransitTicks = character.DefaultTransitTicks
	}
	if s.TicksPerSecond <= 0 {
		s.TicksPerSecond = 60
	}
}

// MovementConfig builds the transit config. fixedStep selects tick counting
// instead of elapsed-time accumulation.
func (s *GameSpec) MovementConfig(fixedStep bool) (character.Config, error) {
	cfg := character.Config{
		TileSize:     s.TileSize,
		TransitTicks: s.TransitTicks,
	}
	if !fixedStep && s.TicksPerSecond > 0 {
		cfg.SubStep = time.Second / time.Duration(s.TicksPerSecond)
	}
	if err := cfg.Validate(); err != nil {
		return character.Config{}, err
	}
	return cfg, nil
}

// InputSpec is input.yaml: key and standard gamepad button names per action.
type InputSpec struct {
	StickDeadzone float64                     `yaml:"stick_deadzone"`
	Actions       map[string]ActionBindingSpec `yaml:"actions"`
}

type ActionBindingSpec struct {
	Keys    []string `yaml:"keys"`
	Buttons []string `yaml:"buttons"`
}

func LoadInputSpec() (*InputSpec, error) {
	spec, err := LoadSpec[InputSpec]("input.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
