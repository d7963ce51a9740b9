package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration.
// It mirrors defaults/flappy.yaml and is the base every file is layered on.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: PhysicsConfig{
			Gravity:     1000,
			LaunchSpeed: 300,
		},
		Actor: ActorConfig{
			X:      0,
			StartY: 0,
			Width:  34,
			Height: 24,
		},
		Obstacles: ObstacleConfig{
			ImageWidth:    52,
			ImageHeight:   320,
			Scale:         1,
			Speed:         250,
			DespawnMargin: 32,
		},
		Spawner: SpawnerConfig{
			Period:      1.0,
			UpperMin:    150,
			UpperMax:    300,
			PairOffset:  320,
			Gap:         150,
			SpawnMargin: 16,
		},
		PlayArea: PlayAreaConfig{
			Width:  288,
			Height: 512,
		},
		Clock: ClockConfig{
			MaxDT: 0.25,
		},
		Animation: AnimationConfig{
			FramePeriod: 0.3,
			Frames:      3,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
