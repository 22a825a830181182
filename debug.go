package main

import (
	"fmt"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"

	"github.com/milk9111/citydash/prefabs"
)

// startDebug sets up the tuning watcher and the clipboard. Either can fail
// without stopping the game.
func (g *Game) startDebug() {
	w, err := prefabs.NewWatcher(prefabs.DiskDir())
	if err != nil {
		g.log.WithError(err).Warn("tuning hot reload disabled")
	} else {
		g.watcher = w
		g.modTimes = prefabs.NewModTracker()
		g.modTimes.Prime(prefabs.SpecFiles...)
		g.log.WithField("dir", prefabs.DiskDir()).Info("watching tuning")
	}

	if err := clipboard.Init(); err != nil {
		g.log.WithError(err).Warn("clipboard unavailable")
	} else {
		g.clipboard = true
	}
}

// updateDebug drains pending reloads and handles the debug keys.
func (g *Game) updateDebug() {
	g.drainReloads()

	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.copyPosition()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF10) {
		g.renderer.Debug = !g.renderer.Debug
	}
}

func (g *Game) drainReloads() {
	if g.watcher == nil {
		return
	}
	changed := false
	for drained := false; !drained; {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if !g.modTimes.Changed(name) {
				continue
			}
			g.log.WithField("file", filepath.Base(name)).Debug("tuning changed")
			changed = true
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.log.WithError(err).Warn("watch")
		default:
			drained = true
		}
	}
	if !changed {
		return
	}

	tuning, err := prefabs.LoadTuning()
	if err != nil {
		g.log.WithError(err).Error("reload tuning, keeping previous values")
		return
	}
	g.world.ApplyTuning(tuning)
	g.log.Info("tuning reloaded")
}

// copyPosition puts the player's position on the clipboard in the level file
// format so it can be pasted as a spawn or placement.
func (g *Game) copyPosition() {
	p := g.world.Player
	s := fmt.Sprintf(`{"x": %.0f, "y": %.0f}`, p.X, p.Y)
	g.log.WithField("level", g.world.Level.Name).Info("position " + s)
	if g.clipboard {
		clipboard.Write(clipboard.FmtText, []byte(s))
	}
}
