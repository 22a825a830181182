package prefabs

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/citydash/component"
	"github.com/milk9111/citydash/obj"
	"github.com/milk9111/citydash/system"
)

// Spec file names. They are both the embedded names and the names of the
// disk overrides under prefabs/.
const (
	PlayerFile  = "player.yaml"
	EnemyFile   = "enemy.yaml"
	CameraFile  = "camera.yaml"
	WeatherFile = "weather.yaml"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	return Decode[T](filename, data)
}

// Decode unmarshals a spec and runs its Validate method when it has one.
func Decode[T any](filename string, data []byte) (T, error) {
	var zero T
	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	if v, ok := any(&spec).(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return zero, fmt.Errorf("prefabs: %s: %w", filename, err)
		}
	}
	return spec, nil
}

type ParticleSpec struct {
	Capacity     int `yaml:"capacity"`
	DustInterval int `yaml:"dust_interval"`
	LandingBurst int `yaml:"landing_burst"`
}

type PlayerSpec struct {
	Name              string       `yaml:"name"`
	Width             float64      `yaml:"width"`
	Height            float64      `yaml:"height"`
	Gravity           float64      `yaml:"gravity"`
	JumpForce         float64      `yaml:"jump_force"`
	MoveSpeed         float64      `yaml:"move_speed"`
	MaxHealth         int          `yaml:"max_health"`
	InvulnerabilityMs int64        `yaml:"invulnerability_ms"`
	Particles         ParticleSpec `yaml:"particles"`
}

func (s *PlayerSpec) Validate() error {
	switch {
	case s.Width <= 0 || s.Height <= 0:
		return fmt.Errorf("%w: player size %vx%v", ErrInvalidSpec, s.Width, s.Height)
	case s.Gravity <= 0:
		return fmt.Errorf("%w: gravity must be positive, got %v", ErrInvalidSpec, s.Gravity)
	case s.JumpForce >= 0:
		return fmt.Errorf("%w: jump_force must be negative (up), got %v", ErrInvalidSpec, s.JumpForce)
	case s.MoveSpeed <= 0:
		return fmt.Errorf("%w: move_speed must be positive, got %v", ErrInvalidSpec, s.MoveSpeed)
	case s.MaxHealth <= 0:
		return fmt.Errorf("%w: max_health must be positive, got %d", ErrInvalidSpec, s.MaxHealth)
	case s.InvulnerabilityMs < 0:
		return fmt.Errorf("%w: invulnerability_ms must not be negative", ErrInvalidSpec)
	case s.Particles.Capacity <= 0:
		return fmt.Errorf("%w: particles.capacity must be positive, got %d", ErrInvalidSpec, s.Particles.Capacity)
	case s.Particles.DustInterval < 0 || s.Particles.LandingBurst < 0:
		return fmt.Errorf("%w: particle counts must not be negative", ErrInvalidSpec)
	}
	return nil
}

func (s *PlayerSpec) Tuning() obj.PlayerTuning {
	return obj.PlayerTuning{
		Gravity:           s.Gravity,
		JumpForce:         s.JumpForce,
		MoveSpeed:         s.MoveSpeed,
		MaxHealth:         s.MaxHealth,
		InvulnerabilityMs: s.InvulnerabilityMs,
		ParticleCapacity:  s.Particles.Capacity,
		DustInterval:      s.Particles.DustInterval,
		LandingBurst:      s.Particles.LandingBurst,
	}
}

type EnemySpec struct {
	Name        string  `yaml:"name"`
	Size        float64 `yaml:"size"`
	Speed       float64 `yaml:"speed"`
	MovingRange float64 `yaml:"moving_range"`
	HitboxSize  float64 `yaml:"hitbox_size"`
}

func (s *EnemySpec) Validate() error {
	if s.Size <= 0 || s.HitboxSize <= 0 {
		return fmt.Errorf("%w: enemy size %v, hitbox %v", ErrInvalidSpec, s.Size, s.HitboxSize)
	}
	if s.Speed < 0 || s.MovingRange < 0 {
		return fmt.Errorf("%w: enemy speed and moving_range must not be negative", ErrInvalidSpec)
	}
	return nil
}

func (s *EnemySpec) Tuning() obj.EnemyTuning {
	return obj.EnemyTuning{
		Size:        s.Size,
		Speed:       s.Speed,
		MovingRange: s.MovingRange,
		HitboxSize:  s.HitboxSize,
	}
}

type ShakeSpec struct {
	Duration  float64 `yaml:"duration"`
	Decay     float64 `yaml:"decay"`
	Amplitude int     `yaml:"amplitude"`
}

type CameraSpec struct {
	Name       string    `yaml:"name"`
	ViewWidth  float64   `yaml:"view_width"`
	ViewHeight float64   `yaml:"view_height"`
	Smoothing  float64   `yaml:"smoothing"`
	Shake      ShakeSpec `yaml:"shake"`
}

func (s *CameraSpec) Validate() error {
	if s.ViewWidth <= 0 || s.ViewHeight <= 0 {
		return fmt.Errorf("%w: viewport %vx%v", ErrInvalidSpec, s.ViewWidth, s.ViewHeight)
	}
	if s.Smoothing <= 0 {
		return fmt.Errorf("%w: smoothing must be positive, got %v", ErrInvalidSpec, s.Smoothing)
	}
	if s.Shake.Duration < 0 || s.Shake.Amplitude < 0 {
		return fmt.Errorf("%w: shake duration and amplitude must not be negative", ErrInvalidSpec)
	}
	if s.Shake.Duration > 0 && s.Shake.Decay <= 0 {
		return fmt.Errorf("%w: shake decay must be positive", ErrInvalidSpec)
	}
	return nil
}

func (s *CameraSpec) Tuning() system.CameraTuning {
	return system.CameraTuning{
		ViewWidth:      s.ViewWidth,
		ViewHeight:     s.ViewHeight,
		Rate:           s.Smoothing,
		ShakeDuration:  s.Shake.Duration,
		ShakeDecay:     s.Shake.Decay,
		ShakeAmplitude: s.Shake.Amplitude,
	}
}

type WeatherSpec struct {
	Name            string  `yaml:"name"`
	Capacity        int     `yaml:"capacity"`
	SpawnIntervalMs int64   `yaml:"spawn_interval_ms"`
	Batch           int     `yaml:"batch"`
	SpawnBuffer     float64 `yaml:"spawn_buffer"`
	Margin          float64 `yaml:"margin"`
	Lifetime        int     `yaml:"lifetime"`
}

func (s *WeatherSpec) Validate() error {
	switch {
	case s.Capacity <= 0:
		return fmt.Errorf("%w: weather capacity must be positive, got %d", ErrInvalidSpec, s.Capacity)
	case s.SpawnIntervalMs < 0 || s.Batch < 0:
		return fmt.Errorf("%w: spawn_interval_ms and batch must not be negative", ErrInvalidSpec)
	case s.Lifetime <= 0:
		return fmt.Errorf("%w: lifetime must be positive, got %d", ErrInvalidSpec, s.Lifetime)
	case s.SpawnBuffer < 0 || s.Margin < 0:
		return fmt.Errorf("%w: spawn_buffer and margin must not be negative", ErrInvalidSpec)
	}
	return nil
}

func (s *WeatherSpec) Tuning() component.WeatherTuning {
	return component.WeatherTuning{
		SpawnIntervalMs: s.SpawnIntervalMs,
		Batch:           s.Batch,
		SpawnBuffer:     s.SpawnBuffer,
		Margin:          s.Margin,
		Lifetime:        s.Lifetime,
	}
}

// LoadTuning reads every spec and assembles the session tuning.
func LoadTuning() (system.Tuning, error) {
	var t system.Tuning

	player, err := LoadSpec[PlayerSpec](PlayerFile)
	if err != nil {
		return t, err
	}
	enemy, err := LoadSpec[EnemySpec](EnemyFile)
	if err != nil {
		return t, err
	}
	camera, err := LoadSpec[CameraSpec](CameraFile)
	if err != nil {
		return t, err
	}
	weather, err := LoadSpec[WeatherSpec](WeatherFile)
	if err != nil {
		return t, err
	}

	t.PlayerWidth = player.Width
	t.PlayerHeight = player.Height
	t.Player = player.Tuning()
	t.Enemy = enemy.Tuning()
	t.Camera = camera.Tuning()
	t.WeatherCapacity = weather.Capacity
	t.Weather = weather.Tuning()
	return t, nil
}
