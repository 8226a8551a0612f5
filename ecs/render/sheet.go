package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilewalker/assets"
	"gopkg.in/yaml.v3"
)

// SheetSpec is the yaml descriptor of a spritesheet: one image cut into a
// grid of equally sized frames.
type SheetSpec struct {
	Image  string `yaml:"image"`
	FrameW int    `yaml:"frame_w"`
	FrameH int    `yaml:"frame_h"`
}

// Sheet is a loaded spritesheet.
type Sheet struct {
	Image  *ebiten.Image
	FrameW int
	FrameH int
}

// Frames returns the number of frames on the sheet.
func (s *Sheet) Frames() int {
	if s == nil || s.Image == nil || s.FrameW <= 0 || s.FrameH <= 0 {
		return 0
	}
	b := s.Image.Bounds()
	return (b.Dx() / s.FrameW) * (b.Dy() / s.FrameH)
}

// ParseSheetSpec decodes and validates a descriptor.
func ParseSheetSpec(data []byte) (SheetSpec, error) {
	var spec SheetSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return SheetSpec{}, fmt.Errorf("render: unmarshal sheet: %w", err)
	}
	if spec.Image == "" {
		return SheetSpec{}, fmt.Errorf("render: sheet has no image")
	}
	if spec.FrameW <= 0 || spec.FrameH <= 0 {
		return SheetSpec{}, fmt.Errorf("render: sheet %s: invalid frame size %dx%d", spec.Image, spec.FrameW, spec.FrameH)
	}
	return spec, nil
}

// LoadSheet loads the descriptor name (e.g. "character.yaml") and its image.
func LoadSheet(name string) (*Sheet, error) {
	mu.RLock()
	cached := sheets[name]
	mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	data, err := os.ReadFile(filepath.Join("assets", name))
	if err != nil {
		data, err = assets.LoadFile(name)
		if err != nil {
			return nil, fmt.Errorf("render: load sheet %s: %w", name, err)
		}
	}
	spec, err := ParseSheetSpec(data)
	if err != nil {
		return nil, fmt.Errorf("render: sheet %s: %w", name, err)
	}
	img, err := LoadImage(spec.Image)
	if err != nil {
		return nil, err
	}

	sheet := &Sheet{Image: img, FrameW: spec.FrameW, FrameH: spec.FrameH}
	mu.Lock()
	sheets[name] = sheet
	mu.Unlock()
	return sheet, nil
}
