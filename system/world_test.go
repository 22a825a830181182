package system

import (
	"io"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/milk9111/citydash/common"
	"github.com/milk9111/citydash/component"
	"github.com/milk9111/citydash/levels"
	"github.com/milk9111/citydash/obj"
)

const frameMs = 16

func quietLog() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

// testLevel is 40x10 tiles with a floor on the last row. The player spawns
// standing on the floor.
func testLevel(t *testing.T, extra string) *obj.Level {
	t.Helper()
	data := `{
		"name": "test",
		"width": 40,
		"height": 10,
		"solids": [{"x": 0, "y": 9, "w": 40, "h": 1}],
		"spawn": {"x": 100, "y": 224}` + extra + `
	}`
	desc, err := levels.Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	lvl, err := obj.NewLevel(desc)
	if err != nil {
		t.Fatalf("NewLevel: %v", err)
	}
	return lvl
}

func newTestWorld(t *testing.T, lvl *obj.Level) *World {
	t.Helper()
	w, err := NewWorldFromLevel(lvl, DefaultTuning(), rand.New(rand.NewSource(9)), quietLog())
	if err != nil {
		t.Fatalf("NewWorldFromLevel: %v", err)
	}
	return w
}

func TestWorldSettlesAndKeepsCameraInBounds(t *testing.T) {
	w := newTestWorld(t, testLevel(t, ""))
	clock := &common.ManualClock{Ms: 1000}
	maxOff := w.Level.Grid.PixelWidth() - w.Camera.ViewWidth
	if maxOff < 0 {
		maxOff = 0
	}

	for i := 0; i < 300; i++ {
		in := obj.Input{Right: i < 150, Left: i >= 150}
		if err := w.Step(in, clock.Now(), 1.0/60); err != nil {
			t.Fatalf("Step: %v", err)
		}
		clock.Advance(frameMs)
		if w.Camera.OffsetX < 0 || w.Camera.OffsetX > maxOff {
			t.Fatalf("frame %d: camera offset %v outside [0, %v]", i, w.Camera.OffsetX, maxOff)
		}
	}
	if !w.Player.Grounded || w.Player.Bottom() != 288 {
		t.Fatalf("expected player on the floor, bottom=%v", w.Player.Bottom())
	}
	if w.Elapsed <= 0 {
		t.Fatalf("elapsed time should advance")
	}
}

func TestWorldHitShakesAndEndsGame(t *testing.T) {
	w := newTestWorld(t, testLevel(t, `, "cars": [{"x": 90, "y": 200, "w": 80, "h": 88}]`))

	if err := w.Step(obj.Input{}, 1000, 1.0/60); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if w.Player.Health.Current != 2 {
		t.Fatalf("expected one hit, health=%d", w.Player.Health.Current)
	}
	if !w.Shake.Active() {
		t.Fatalf("a hit should start the shake")
	}

	for now := int64(1016); now < 1500; now += frameMs {
		if err := w.Step(obj.Input{}, now, 1.0/60); err != nil {
			t.Fatalf("Step: %v", err)
		}
	}
	if w.Player.Health.Current != 2 {
		t.Fatalf("contact inside the window must not cost health, health=%d", w.Player.Health.Current)
	}

	for _, now := range []int64{1500, 2000} {
		if err := w.Step(obj.Input{}, now, 1.0/60); err != nil {
			t.Fatalf("Step: %v", err)
		}
	}
	if !w.GameOver() || w.Player.Health.Current != 0 {
		t.Fatalf("expected game over, health=%d", w.Player.Health.Current)
	}

	if err := w.Step(obj.Input{}, 2500, 1.0/60); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if !w.GameOver() {
		t.Fatalf("restart should wait %dms", GameOverDelayMs)
	}

	if err := w.Step(obj.Input{}, 3000, 1.0/60); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if w.GameOver() || w.Player.Health.Current != w.Player.Health.Max {
		t.Fatalf("expected a fresh level, health=%d", w.Player.Health.Current)
	}
	if w.Player.X != 100 || w.Player.Y != 224 {
		t.Fatalf("player should be back at spawn, got (%v, %v)", w.Player.X, w.Player.Y)
	}
}

func TestWorldWeatherInput(t *testing.T) {
	w := newTestWorld(t, testLevel(t, ""))
	now := int64(1000)
	step := func(in obj.Input) {
		t.Helper()
		if err := w.Step(in, now, 1.0/60); err != nil {
			t.Fatalf("Step: %v", err)
		}
		now += 100
	}

	step(obj.Input{Rain: true})
	if w.Weather == nil || w.Weather.Kind() != component.WeatherRain {
		t.Fatalf("expected rain")
	}
	step(obj.Input{})
	if w.Weather.Count() == 0 {
		t.Fatalf("rain should spawn drops")
	}

	step(obj.Input{Snow: true})
	if w.Weather.Kind() != component.WeatherSnow {
		t.Fatalf("expected snow")
	}
	for _, p := range w.Weather.Live() {
		if p.Size != 3 {
			t.Fatalf("rain drop survived the switch: %+v", p)
		}
	}

	step(obj.Input{ClearWeather: true})
	if w.Weather != nil {
		t.Fatalf("expected clear skies")
	}
}

func TestWorldLevelProgression(t *testing.T) {
	w, err := NewWorld("level1", DefaultTuning(), rand.New(rand.NewSource(2)), quietLog())
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	next := w.Level.Next
	w.Player.X = w.Level.ExitFraction*w.Level.Grid.PixelWidth() - w.Player.Width + 1
	w.Camera.OffsetX = 500

	if err := w.Step(obj.Input{}, 1000, 1.0/60); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if w.Level.Name != next {
		t.Fatalf("expected level %q, got %q", next, w.Level.Name)
	}
	if w.Player.X != w.Level.SpawnX || w.Player.Y != w.Level.SpawnY {
		t.Fatalf("player not at the new spawn: (%v, %v)", w.Player.X, w.Player.Y)
	}
	if w.Camera.OffsetX != 0 {
		t.Fatalf("camera should reset, offset=%v", w.Camera.OffsetX)
	}
}

func TestWorldApplyTuning(t *testing.T) {
	w := newTestWorld(t, testLevel(t, ""))
	if err := w.SetWeather(component.WeatherRain); err != nil {
		t.Fatalf("SetWeather: %v", err)
	}
	tuning := DefaultTuning()
	tuning.Camera.Rate = 3
	tuning.Camera.ShakeAmplitude = 9
	w.ApplyTuning(tuning)
	if w.Camera.Rate != 3 || w.Shake.Amplitude != 9 {
		t.Fatalf("tuning not applied: rate=%v amp=%d", w.Camera.Rate, w.Shake.Amplitude)
	}
}

func TestWorldHealthHooks(t *testing.T) {
	cases := []struct {
		name     string
		hits     []int64
		wantOver bool
	}{
		{"single_hit_shakes", []int64{1000}, false},
		{"last_hit_ends_game", []int64{1000, 1500, 2000}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newTestWorld(t, testLevel(t, ""))
			for _, now := range c.hits {
				if !w.Player.Health.ApplyHit(now) {
					t.Fatalf("hit at %d was absorbed", now)
				}
			}
			if !w.Shake.Active() {
				t.Fatalf("damage should start the shake")
			}
			if w.GameOver() != c.wantOver {
				t.Fatalf("GameOver() = %v, want %v", w.GameOver(), c.wantOver)
			}
		})
	}
}

func TestWorldCameraStartsOnPlayer(t *testing.T) {
	desc, err := levels.Parse([]byte(`{
		"name": "wide",
		"width": 100,
		"height": 10,
		"solids": [{"x": 0, "y": 9, "w": 100, "h": 1}],
		"spawn": {"x": 2000, "y": 224}
	}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	lvl, err := obj.NewLevel(desc)
	if err != nil {
		t.Fatalf("NewLevel: %v", err)
	}
	w := newTestWorld(t, lvl)
	want := w.Camera.Target(w.Player.X, w.Player.Width)
	if want == 0 || w.Camera.OffsetX != want {
		t.Fatalf("camera offset = %v, want %v", w.Camera.OffsetX, want)
	}
}

func TestWorldElapsedRunsDuringGameOver(t *testing.T) {
	w := newTestWorld(t, testLevel(t, ""))
	for _, now := range []int64{1000, 1500, 2000} {
		w.Player.Health.ApplyHit(now)
	}
	if !w.GameOver() {
		t.Fatalf("expected game over")
	}

	before := w.Elapsed
	for _, now := range []int64{2100, 2200, 2300} {
		if err := w.Step(obj.Input{}, now, 0.5); err != nil {
			t.Fatalf("Step: %v", err)
		}
	}
	if got := w.Elapsed - before; got != 1.5 {
		t.Fatalf("elapsed advanced by %v during game over, want 1.5", got)
	}
}

func TestWorldRestartKeepsWeatherKind(t *testing.T) {
	logger, hook := test.NewNullLogger()
	w, err := NewWorldFromLevel(testLevel(t, ""), DefaultTuning(), rand.New(rand.NewSource(9)), logrus.NewEntry(logger))
	if err != nil {
		t.Fatalf("NewWorldFromLevel: %v", err)
	}
	if err := w.SetWeather(component.WeatherRain); err != nil {
		t.Fatalf("SetWeather: %v", err)
	}
	if err := w.Step(obj.Input{}, 1000, 1.0/60); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if w.Weather.Count() == 0 {
		t.Fatalf("rain should spawn drops")
	}
	weather := w.Weather
	hook.Reset()

	if err := w.Restart(); err != nil {
		t.Fatalf("Restart: %v", err)
	}
	if w.Weather != weather || w.Weather.Kind() != component.WeatherRain {
		t.Fatalf("restart should keep the rain pool")
	}
	if w.Weather.Count() != 0 {
		t.Fatalf("restart should empty the pool, count=%d", w.Weather.Count())
	}
	for _, e := range hook.AllEntries() {
		if e.Message == "weather changed" {
			t.Fatalf("restart logged a weather change")
		}
	}
}
