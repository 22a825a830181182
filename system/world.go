package system

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/milk9111/citydash/common"
	"github.com/milk9111/citydash/component"
	"github.com/milk9111/citydash/obj"
)

// GameOverDelayMs is how long the world holds on zero health before the level
// restarts.
const GameOverDelayMs = 1000

// CameraTuning sizes the viewport and drives follow and shake.
type CameraTuning struct {
	ViewWidth  float64
	ViewHeight float64
	Rate       float64

	ShakeDuration  float64
	ShakeDecay     float64
	ShakeAmplitude int
}

// Tuning is everything a session needs besides the level itself.
type Tuning struct {
	PlayerWidth  float64
	PlayerHeight float64
	Player       obj.PlayerTuning
	Enemy        obj.EnemyTuning
	Camera       CameraTuning

	WeatherCapacity int
	Weather         component.WeatherTuning
}

// DefaultTuning matches the embedded prefab specs.
func DefaultTuning() Tuning {
	return Tuning{
		PlayerWidth:  32,
		PlayerHeight: 64,
		Player:       obj.DefaultPlayerTuning(),
		Enemy:        obj.DefaultEnemyTuning(),
		Camera: CameraTuning{
			ViewWidth:      common.BaseWidth,
			ViewHeight:     common.BaseHeight,
			Rate:           10,
			ShakeDuration:  200,
			ShakeDecay:     2,
			ShakeAmplitude: 5,
		},
		WeatherCapacity: 2000,
		Weather:         component.DefaultWeatherTuning(),
	}
}

// World is the session: the loaded level and everything that moves in it.
// It is updated in place once per frame by Step.
type World struct {
	Level   *obj.Level
	Player  *obj.Player
	Enemy   *obj.Enemy
	Camera  *obj.Camera
	Shake   obj.Shake
	Weather *component.Weather

	// Elapsed is the play time in seconds since the session started.
	Elapsed float64

	tuning Tuning
	rng    *rand.Rand
	log    *logrus.Entry

	overAt int64
	over   bool
}

// NewWorld loads the named level and places the player at its spawn.
func NewWorld(levelName string, tuning Tuning, rng *rand.Rand, log *logrus.Entry) (*World, error) {
	lvl, err := obj.LoadLevel(levelName)
	if err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}
	return NewWorldFromLevel(lvl, tuning, rng, log)
}

// NewWorldFromLevel starts a session on an already built level.
func NewWorldFromLevel(lvl *obj.Level, tuning Tuning, rng *rand.Rand, log *logrus.Entry) (*World, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	w := &World{tuning: tuning, rng: rng, log: log}
	if err := w.SetLevel(lvl); err != nil {
		return nil, err
	}
	return w, nil
}

// Load replaces the current level with the named embedded level.
func (w *World) Load(name string) error {
	lvl, err := obj.LoadLevel(name)
	if err != nil {
		return fmt.Errorf("world: %w", err)
	}
	return w.SetLevel(lvl)
}

// SetLevel rebuilds the actors, camera and shake for lvl. Weather keeps its
// kind but its pool is cleared.
func (w *World) SetLevel(lvl *obj.Level) error {
	if w == nil {
		return fmt.Errorf("world is nil")
	}
	if lvl == nil || lvl.Grid == nil {
		return fmt.Errorf("world: level has no grid")
	}

	player, err := obj.NewPlayer(lvl.SpawnX, lvl.SpawnY, w.tuning.PlayerWidth, w.tuning.PlayerHeight, w.tuning.Player, w.rng)
	if err != nil {
		return fmt.Errorf("world: %w", err)
	}

	var enemy *obj.Enemy
	if lvl.HasEnemy {
		et := w.tuning.Enemy
		if lvl.EnemyRange > 0 {
			et.MovingRange = lvl.EnemyRange
		}
		enemy = obj.NewEnemy(lvl.EnemyX, lvl.EnemyY, et)
	}

	player.Health.OnDamage = w.onPlayerDamage
	player.Health.OnDeath = w.onPlayerDeath

	ct := w.tuning.Camera
	w.Level = lvl
	w.Player = player
	w.Enemy = enemy
	w.Camera = obj.NewCamera(ct.ViewWidth, ct.ViewHeight, lvl.Grid.PixelWidth(), ct.Rate)
	w.Camera.SnapTo(player.X, player.Width)
	w.Shake = obj.NewShake(ct.ShakeDuration, ct.ShakeDecay, ct.ShakeAmplitude)
	w.over = false
	w.overAt = 0

	if w.Weather != nil {
		w.Weather.Reset()
	}

	w.log.WithFields(logrus.Fields{
		"level":  lvl.Name,
		"width":  lvl.Grid.Width(),
		"height": lvl.Grid.Height(),
		"cars":   len(lvl.Cars),
		"enemy":  lvl.HasEnemy,
	}).Info("level loaded")
	return nil
}

func (w *World) onPlayerDamage(h *component.Health) {
	w.Shake.Trigger()
	w.log.WithFields(logrus.Fields{
		"health": h.Current,
		"x":      w.Player.X,
		"y":      w.Player.Y,
	}).Info("player hit")
}

func (w *World) onPlayerDeath(h *component.Health) {
	w.over = true
	w.overAt = h.HitAt
	w.log.WithField("level", w.Level.Name).Warn("game over")
}

// Restart reloads the current level from scratch.
func (w *World) Restart() error {
	if w.Level == nil {
		return fmt.Errorf("world: no level to restart")
	}
	return w.SetLevel(w.Level)
}

// SetWeather switches to kind, starting from an empty pool. Asking for the
// active kind keeps the current particles.
func (w *World) SetWeather(kind component.WeatherKind) error {
	if w.Weather != nil {
		if w.Weather.Kind() != kind {
			w.Weather.SetKind(kind)
			w.log.WithField("weather", kind).Info("weather changed")
		}
		return nil
	}
	weather, err := component.NewWeather(w.tuning.WeatherCapacity, kind, w.tuning.Weather, w.rng)
	if err != nil {
		return fmt.Errorf("world: %w", err)
	}
	w.Weather = weather
	w.log.WithField("weather", kind).Info("weather changed")
	return nil
}

// ClearWeather stops all weather.
func (w *World) ClearWeather() {
	if w.Weather == nil {
		return
	}
	w.Weather = nil
	w.log.Info("weather cleared")
}

// ApplyTuning swaps in new tuning. Camera and weather settings apply at once;
// player and enemy settings apply on the next level load.
func (w *World) ApplyTuning(t Tuning) {
	w.tuning = t
	if w.Camera != nil {
		w.Camera.Rate = t.Camera.Rate
		w.Camera.ViewWidth = t.Camera.ViewWidth
		w.Camera.ViewHeight = t.Camera.ViewHeight
	}
	w.Shake.Duration = t.Camera.ShakeDuration
	w.Shake.Decay = t.Camera.ShakeDecay
	w.Shake.Amplitude = t.Camera.ShakeAmplitude
	if w.Weather != nil {
		w.Weather.SetTuning(t.Weather)
	}
}

// GameOver reports whether the player ran out of health and the world is
// waiting to restart.
func (w *World) GameOver() bool {
	return w.over
}

// Step advances the session by one frame. now is in milliseconds, dt in
// seconds. The stages run in dependency order: each one reads the state the
// previous one produced.
func (w *World) Step(in obj.Input, now int64, dt float64) error {
	if w.over {
		w.Elapsed += dt
		if now-w.overAt >= GameOverDelayMs {
			return w.Restart()
		}
		w.updateEffects(now, dt)
		return nil
	}

	if err := w.applyWeatherInput(in); err != nil {
		return err
	}

	grid := w.Level.Grid
	w.Player.Update(in, grid)
	if w.Enemy != nil {
		w.Enemy.Update(grid)
	}

	// Health hooks trigger the shake and the game over.
	w.Player.Health.Tick(now)
	ResolveHits(w.Player, w.Enemy, w.Level.Cars, now)
	if w.over {
		return nil
	}

	if w.Level.ReachedExit(w.Player.Rect) && w.Level.Next != "" {
		w.log.WithFields(logrus.Fields{"from": w.Level.Name, "to": w.Level.Next}).Info("level complete")
		return w.Load(w.Level.Next)
	}

	w.Camera.Update(w.Player.X, w.Player.Width, dt)
	w.Camera.Nudge(w.Shake.Step(w.rng))

	w.updateEffects(now, dt)
	w.Elapsed += dt
	return nil
}

func (w *World) applyWeatherInput(in obj.Input) error {
	switch {
	case in.ClearWeather:
		w.ClearWeather()
	case in.Rain:
		return w.SetWeather(component.WeatherRain)
	case in.Snow:
		return w.SetWeather(component.WeatherSnow)
	}
	return nil
}

func (w *World) updateEffects(now int64, dt float64) {
	if w.Weather != nil {
		w.Weather.Update(now, component.WeatherView{
			MapWidth:  w.Level.Grid.PixelWidth(),
			MapHeight: w.Level.Grid.PixelHeight(),
			CameraX:   w.Camera.OffsetX,
			ViewWidth: w.Camera.ViewWidth,
		}, dt)
	}
	w.Player.Particles.Update(dt)
}
