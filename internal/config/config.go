// Package config provides YAML-based configuration loading for the flappy
// simulation and its terminal frontend.
package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// FlappyConfig contains all tunables of the simulation.
// Distances are world units (play area origin at its center, y up),
// speeds are units per second and durations are seconds.
type FlappyConfig struct {
	Physics   PhysicsConfig   `yaml:"physics"`
	Actor     ActorConfig     `yaml:"actor"`
	Obstacles ObstacleConfig  `yaml:"obstacles"`
	Spawner   SpawnerConfig   `yaml:"spawner"`
	PlayArea  PlayAreaConfig  `yaml:"play_area"`
	Clock     ClockConfig     `yaml:"clock"`
	Animation AnimationConfig `yaml:"animation"`
}

// PhysicsConfig defines the actor's vertical motion.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // Downward acceleration
	LaunchSpeed float64 `yaml:"launch_speed"` // Velocity assigned on jump
}

// ActorConfig defines the actor's fixed placement and hitbox.
type ActorConfig struct {
	X      float64 `yaml:"x"`       // Fixed horizontal position
	StartY float64 `yaml:"start_y"` // Vertical position on entering play
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ObstacleConfig defines obstacle size and motion.
type ObstacleConfig struct {
	ImageWidth    float64 `yaml:"image_width"`  // Source image size
	ImageHeight   float64 `yaml:"image_height"` //
	Scale         float64 `yaml:"scale"`        // Transform scale applied to the image size
	Speed         float64 `yaml:"speed"`
	DespawnMargin float64 `yaml:"despawn_margin"` // Distance past the left edge before removal
}

// SpawnerConfig defines when and where obstacle pairs appear.
type SpawnerConfig struct {
	Period      float64 `yaml:"period"`       // Seconds between pairs
	UpperMin    float64 `yaml:"upper_min"`    // Range of the upper obstacle's center y
	UpperMax    float64 `yaml:"upper_max"`    //
	PairOffset  float64 `yaml:"pair_offset"`  // Part of the vertical distance between pair centers
	Gap         float64 `yaml:"gap"`          // Opening between the two obstacles
	SpawnMargin float64 `yaml:"spawn_margin"` // Distance past the right edge at spawn
}

// PlayAreaConfig is the default viewport size handed to the simulation.
type PlayAreaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ClockConfig bounds the elapsed time a frontend feeds per tick.
type ClockConfig struct {
	MaxDT float64 `yaml:"max_dt"`
}

// AnimationConfig drives the cosmetic wing flap.
type AnimationConfig struct {
	FramePeriod float64 `yaml:"frame_period"`
	Frames      int     `yaml:"frames"`
}

// ObstacleSize returns the obstacle bounding box size.
func (c FlappyConfig) ObstacleSize() (w, h float64) {
	return c.Obstacles.ImageWidth * c.Obstacles.Scale, c.Obstacles.ImageHeight * c.Obstacles.Scale
}

// PairDistance returns the vertical distance between the centers of a pair.
func (c FlappyConfig) PairDistance() float64 {
	return c.Spawner.PairOffset + c.Spawner.Gap
}

// Validate reports the first invalid setting, if any.
func (c FlappyConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if !(v > 0) {
			errs = append(errs, fmt.Errorf("config: %s must be > 0, got %v", name, v))
		}
	}
	nonNegative := func(name string, v float64) {
		if !(v >= 0) {
			errs = append(errs, fmt.Errorf("config: %s must be >= 0, got %v", name, v))
		}
	}

	nonNegative("physics.gravity", c.Physics.Gravity)
	positive("actor.width", c.Actor.Width)
	positive("actor.height", c.Actor.Height)
	positive("obstacles.image_width", c.Obstacles.ImageWidth)
	positive("obstacles.image_height", c.Obstacles.ImageHeight)
	positive("obstacles.scale", c.Obstacles.Scale)
	nonNegative("obstacles.speed", c.Obstacles.Speed)
	nonNegative("obstacles.despawn_margin", c.Obstacles.DespawnMargin)
	positive("spawner.period", c.Spawner.Period)
	nonNegative("spawner.gap", c.Spawner.Gap)
	nonNegative("spawner.spawn_margin", c.Spawner.SpawnMargin)
	positive("play_area.width", c.PlayArea.Width)
	positive("play_area.height", c.PlayArea.Height)
	positive("clock.max_dt", c.Clock.MaxDT)
	positive("animation.frame_period", c.Animation.FramePeriod)

	if c.Spawner.UpperMin > c.Spawner.UpperMax {
		errs = append(errs, fmt.Errorf("config: spawner.upper_min (%v) exceeds spawner.upper_max (%v)",
			c.Spawner.UpperMin, c.Spawner.UpperMax))
	}
	if c.Animation.Frames < 1 {
		errs = append(errs, fmt.Errorf("config: animation.frames must be >= 1, got %d", c.Animation.Frames))
	}

	return errors.Join(errs...)
}

// Marshal encodes the configuration as YAML.
func (c FlappyConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
