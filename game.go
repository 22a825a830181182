package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/milk9111/citydash/common"
	"github.com/milk9111/citydash/component"
	"github.com/milk9111/citydash/logger"
	"github.com/milk9111/citydash/prefabs"
	"github.com/milk9111/citydash/render"
	"github.com/milk9111/citydash/system"
)

// maxFrameDt caps dt after a stall (window drag, breakpoint) so particles
// and the camera do not jump.
const maxFrameDt = 0.1

type Game struct {
	world    *system.World
	renderer *render.Renderer
	clock    common.Clock
	last     int64

	ui     *ebitenui.UI
	paused bool
	quit   bool

	debug     bool
	watcher   *prefabs.Watcher
	modTimes  *prefabs.ModTracker
	clipboard bool

	log *logrus.Entry
}

func NewGame(levelName string, debug bool, weather string) (*Game, error) {
	log := logger.For("game")

	tuning, err := prefabs.LoadTuning()
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	world, err := system.NewWorld(levelName, tuning, rng, logger.For("world"))
	if err != nil {
		return nil, err
	}
	if weather != "" {
		kind, err := component.ParseWeatherKind(weather)
		if err != nil {
			return nil, err
		}
		if err := world.SetWeather(kind); err != nil {
			return nil, err
		}
	}

	clock := common.NewWallClock()
	g := &Game{
		world:    world,
		renderer: render.New(debug),
		clock:    clock,
		last:     clock.Now(),
		debug:    debug,
		log:      log,
	}
	g.ui = NewPauseUI(g)

	if debug {
		g.startDebug()
	}
	return g, nil
}

func (g *Game) Update() error {
	if g.quit {
		g.Close()
		return ebiten.Termination
	}

	now := g.clock.Now()
	dt := min(float64(now-g.last)/1000, maxFrameDt)
	g.last = now

	if pausePressed() {
		g.setPaused(!g.paused)
	}
	if g.debug {
		g.updateDebug()
	}

	if g.paused {
		g.ui.Update()
		return nil
	}

	if err := g.world.Step(pollInput(), now, dt); err != nil {
		return fmt.Errorf("step: %w", err)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.world, g.clock.Now())
	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) setPaused(paused bool) {
	if g.paused == paused {
		return
	}
	g.paused = paused
	g.log.WithField("paused", paused).Debug("pause toggled")
}

func (g *Game) setWeather(kind component.WeatherKind) {
	if err := g.world.SetWeather(kind); err != nil {
		g.log.WithError(err).Error("set weather")
	}
}

func (g *Game) restart() {
	if err := g.world.Restart(); err != nil {
		g.log.WithError(err).Error("restart")
		return
	}
	g.setPaused(false)
}

// Close releases the watcher. Safe to call more than once.
func (g *Game) Close() {
	if g.watcher == nil {
		return
	}
	if err := g.watcher.Close(); err != nil {
		g.log.WithError(err).Warn("close watcher")
	}
	g.watcher = nil
}
