package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/tilewalker/character"
	"github.com/milk9111/tilewalker/ecs/component"
	"github.com/milk9111/tilewalker/ecs/render"
	"github.com/milk9111/tilewalker/input"
	"github.com/milk9111/tilewalker/logging"
)

const (
	viewSize = 256
	scale    = 2
)

// sheetView walks one character around a script-driven path on an empty
// grid so a sheet's walk cycles can be checked frame by frame.
type sheetView struct {
	sheet *render.Sheet
	pilot *input.Autopilot
	state *character.State
	x, y  float64
	tick  uint64
}

func (v *sheetView) Update() error {
	if err := v.pilot.Tick(v.tick); err != nil {
		return err
	}
	v.tick++
	dir, _ := character.Resolve(v.pilot)
	delta, _ := v.state.Step(dir, character.DefaultSubStep)
	v.x += delta.X
	v.y += delta.Y
	return nil
}

func (v *sheetView) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x20, 0x20, 0x28, 0xff})

	frame := v.state.NextFrame
	src, ok := component.FrameRect(v.sheet.Image.Bounds().Dx(), v.sheet.Image.Bounds().Dy(), v.sheet.FrameW, v.sheet.FrameH, frame)
	if ok {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(v.sheet.FrameW)/2, -float64(v.sheet.FrameH)/2)
		op.GeoM.Scale(scale, scale)
		// Keep the walker near the centre; the path itself is only a few tiles wide.
		op.GeoM.Translate(viewSize/2+v.x, viewSize/2-v.y)
		op.Filter = ebiten.FilterNearest
		screen.DrawImage(v.sheet.Image.SubImage(src).(*ebiten.Image), op)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("frame %2d  facing %s  moving %t  counter %2d",
		frame, v.state.Orientation, v.state.Moving, v.state.FrameCounter))
}

func (v *sheetView) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewSize, viewSize
}

func main() {
	sheetName := flag.String("sheet", "character.yaml", "sheet descriptor in assets/")
	script := flag.String("script", "square", "autopilot script in prefabs/scripts")
	transit := flag.Int("transit", character.DefaultTransitTicks, "sub-steps per tile")
	flag.Parse()

	if err := logging.Init(logging.Options{}); err != nil {
		fmt.Fprintln(os.Stderr, "logging:", err)
		os.Exit(1)
	}
	defer logging.Sync()
	log := logging.Named("sheetview")

	sheet, err := render.LoadSheet(*sheetName)
	if err != nil {
		log.Fatalw("load sheet", "sheet", *sheetName, "error", err)
	}
	if n := sheet.Frames(); n < character.SheetFrames {
		log.Fatalw("sheet too small for a walker", "sheet", *sheetName, "frames", n, "want", character.SheetFrames)
	}
	pilot, err := input.LoadAutopilot(*script)
	if err != nil {
		log.Fatalw("load script", "script", *script, "error", err)
	}

	cfg := character.TickConfig()
	cfg.TransitTicks = *transit
	if err := cfg.Validate(); err != nil {
		log.Fatalw("transit", "error", err)
	}

	view := &sheetView{sheet: sheet, pilot: pilot, state: character.NewState(cfg)}
	ebiten.SetWindowSize(viewSize*2, viewSize*2)
	ebiten.SetWindowTitle("sheetview: " + *sheetName)
	if err := ebiten.RunGame(view); err != nil {
		log.Fatalw("run", "error", err)
	}
}
