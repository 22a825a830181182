package main

import (
	"errors"
	"flag"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/citydash/common"
	"github.com/milk9111/citydash/logger"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode (hitboxes, tuning hot reload, F9 copies position)")
	levelName := flag.String("level", "level1", "level name in levels/ (basename, .json optional)")
	weather := flag.String("weather", "", "initial weather: rain or snow")
	flag.Parse()

	logger.Init()
	log := logger.For("main")

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("citydash")

	game, err := NewGame(*levelName, *debug, *weather)
	if err != nil {
		log.WithError(err).Fatal("init")
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.WithError(err).Fatal("run")
	}
}
