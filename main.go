package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilewalker/logging"
)

func main() {
	levelName := flag.String("level", "1", "level number or file name in levels/")
	debug := flag.Bool("debug", false, "debug logging and on-screen overlay")
	watch := flag.Bool("watch", false, "reload the level when files under levels/, prefabs/ or assets/ change")
	autopilot := flag.String("autopilot", "", "drive the player with a script from prefabs/scripts instead of the keyboard")
	fixedStep := flag.Bool("fixed-step", false, "advance transits once per tick instead of by elapsed time")
	logFile := flag.String("log", "", "also write JSON logs to this file, rotated by size")
	scale := flag.Float64("scale", 0, "window scale; 0 uses game.yaml")
	flag.Parse()

	if err := logging.Init(logging.Options{File: *logFile, Debug: *debug}); err != nil {
		fmt.Fprintln(os.Stderr, "logging:", err)
		os.Exit(1)
	}

	err := run(Options{
		Level:     *levelName,
		Debug:     *debug,
		Watch:     *watch,
		FixedStep: *fixedStep,
		Autopilot: *autopilot,
	}, *scale)
	if err != nil {
		logging.Log.Errorw("tilewalker exited", "error", err)
		logging.Sync()
		os.Exit(1)
	}
	logging.Sync()
}

func run(opts Options, scale float64) error {
	game, err := NewGame(opts)
	if err != nil {
		return err
	}
	defer game.Close()

	if scale <= 0 {
		scale = game.spec.WindowScale
	}
	ebiten.SetWindowSize(int(float64(game.spec.ScreenWidth)*scale), int(float64(game.spec.ScreenHeight)*scale))
	ebiten.SetWindowTitle(game.spec.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(game.spec.TicksPerSecond)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
