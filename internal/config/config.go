package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/ballsim/internal/physics"
	"github.com/san-kum/ballsim/internal/spawn"
	"github.com/san-kum/ballsim/internal/world"
)

const (
	DefaultDt       = 1.0 / 120.0
	DefaultDuration = 20.0
	DefaultWidth    = 800.0
	DefaultHeight   = 600.0
	DefaultInitial  = 8
	DefaultMax      = 50
)

type Config struct {
	Dt       float64 `yaml:"dt"`
	Duration float64 `yaml:"duration"`
	Seed     int64   `yaml:"seed"`

	Arena   ArenaConfig   `yaml:"arena"`
	Physics PhysicsConfig `yaml:"physics"`
	Spawn   SpawnConfig   `yaml:"spawn"`
}

type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`
	Restitution    float64 `yaml:"restitution"`
	GroundFriction float64 `yaml:"ground_friction"`
	AirDrag        float64 `yaml:"air_drag"`
	PairFriction   float64 `yaml:"pair_friction"`
	MaxDt          float64 `yaml:"max_dt"`
	Substeps       int     `yaml:"substeps"`
}

type SpawnConfig struct {
	InitialBodies int     `yaml:"initial_bodies"`
	MaxBodies     int     `yaml:"max_bodies"`
	IntervalMin   float64 `yaml:"interval_min"`
	IntervalMax   float64 `yaml:"interval_max"`
	RadiusMin     float64 `yaml:"radius_min"`
	RadiusMax     float64 `yaml:"radius_max"`
	DropJitter    float64 `yaml:"drop_jitter"`
}

func DefaultConfig() *Config {
	p := physics.DefaultParams()
	s := spawn.DefaultOptions()
	return &Config{
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		Arena:    ArenaConfig{Width: DefaultWidth, Height: DefaultHeight},
		Physics: PhysicsConfig{
			Gravity:        p.Gravity,
			Restitution:    p.Restitution,
			GroundFriction: p.GroundFriction,
			AirDrag:        p.AirDrag,
			PairFriction:   p.PairFriction,
			MaxDt:          p.MaxDt,
			Substeps:       p.Substeps,
		},
		Spawn: SpawnConfig{
			InitialBodies: DefaultInitial,
			MaxBodies:     DefaultMax,
			IntervalMin:   s.IntervalMin,
			IntervalMax:   s.IntervalMax,
			RadiusMin:     s.RadiusMin,
			RadiusMax:     s.RadiusMax,
			DropJitter:    s.DropJitter,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", c.Dt)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", c.Duration)
	}
	if c.Spawn.InitialBodies < 0 {
		return fmt.Errorf("initial bodies must be non-negative, got %d", c.Spawn.InitialBodies)
	}
	if c.Spawn.MaxBodies < 1 {
		return fmt.Errorf("max bodies must be at least 1, got %d", c.Spawn.MaxBodies)
	}
	if err := c.Params().Validate(); err != nil {
		return err
	}
	return c.SpawnOptions().Validate()
}

func (c *Config) Params() physics.Params {
	p := physics.DefaultParams()
	p.Gravity = c.Physics.Gravity
	p.Restitution = c.Physics.Restitution
	p.GroundFriction = c.Physics.GroundFriction
	p.AirDrag = c.Physics.AirDrag
	p.PairFriction = c.Physics.PairFriction
	p.MaxDt = c.Physics.MaxDt
	p.Substeps = c.Physics.Substeps
	return p
}

func (c *Config) SpawnOptions() spawn.Options {
	return spawn.Options{
		IntervalMin: c.Spawn.IntervalMin,
		IntervalMax: c.Spawn.IntervalMax,
		RadiusMin:   c.Spawn.RadiusMin,
		RadiusMax:   c.Spawn.RadiusMax,
		DropJitter:  c.Spawn.DropJitter,
	}
}

// World builds an empty world from the configured arena, parameters and
// population bound.
func (c *Config) World() (*world.World, error) {
	arena := physics.Arena{Width: c.Arena.Width, Height: c.Arena.Height}
	return world.New(arena, c.Params(), c.Spawn.MaxBodies)
}
