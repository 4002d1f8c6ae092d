package config

import (
	_ "embed"
)

//go:embed defaults/colorbubble.yaml
var defaultTuningYAML []byte

// DefaultTuning returns the built-in tuning, matching defaults/colorbubble.yaml.
func DefaultTuning() Tuning {
	return Tuning{
		Timing: TimingConfig{
			TimestepNS:      16_666_667,
			MaxFrameSeconds: 0,
		},
		Player: PlayerConfig{
			Gravity:                 Vec{X: 0, Y: -1.1},
			InitialVelocity:         Vec{X: 0, Y: -1},
			SpeedX:                  5.5,
			JumpY:                   18,
			DampX:                   0.8,
			DampY:                   1.0,
			HueSpeed:                0.01,
			BubbleSpawnOffset:       Vec{X: 6, Y: 0},
			BubbleLaunchVelocity:    Vec{X: 10, Y: 0},
			DeathBurstCount:         25,
			DeathBurstRadius:        2,
			DeathBurstSpeed:         5,
			PreserveBrokenCollision: true,
		},
		Bubble: BubbleConfig{
			Gravity:     Vec{X: 0, Y: -0.05},
			Damping:     0.98,
			BurstCount:  10,
			BurstRadius: 0,
			BurstSpeed:  5,
		},
		Splash: SplashConfig{
			Gravity: Vec{X: 0, Y: -0.3},
			Damping: 0.99,
			MaxAge:  500,
		},
		Portal: PortalConfig{
			TriggerDistance: 15,
			CountdownTicks:  30,
			Rearm:           false,
		},
	}
}

// DefaultYAML returns the embedded default tuning file, used by `config dump`.
func DefaultYAML() []byte {
	return defaultTuningYAML
}
