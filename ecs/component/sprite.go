package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite draws one cell of a sheet laid out as a grid of equally sized
// frames, numbered left to right and top to bottom.
type Sprite struct {
	Sheet   *ebiten.Image
	FrameW  int
	FrameH  int
	Frame   int
	OriginX float64
	OriginY float64
	Hidden  bool
}

// Source returns the sheet rectangle of the current frame. ok is false when
// the frame lies outside the sheet.
func (s *Sprite) Source() (image.Rectangle, bool) {
	if s == nil || s.Sheet == nil || s.FrameW <= 0 || s.FrameH <= 0 || s.Frame < 0 {
		return image.Rectangle{}, false
	}
	b := s.Sheet.Bounds()
	return FrameRect(b.Dx(), b.Dy(), s.FrameW, s.FrameH, s.Frame)
}

// FrameRect locates frame on a sheetW x sheetH grid of frameW x frameH cells.
func FrameRect(sheetW, sheetH, frameW, frameH, frame int) (image.Rectangle, bool) {
	if frameW <= 0 || frameH <= 0 || frame < 0 {
		return image.Rectangle{}, false
	}
	cols := sheetW / frameW
	rows := sheetH / frameH
	if cols <= 0 || frame >= cols*rows {
		return image.Rectangle{}, false
	}
	x := (frame % cols) * frameW
	y := (frame / cols) * frameH
	return image.Rect(x, y, x+frameW, y+frameH), true
}

var SpriteComponent = NewComponent[Sprite]()

// RenderLayer orders sprites that share a Z; lower indexes draw first.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
