// Package config provides YAML-based tuning for the colorbubble simulation.
// Every physics constant, the fixed timestep and the behavior toggles for the
// known gameplay quirks live here so they can be adjusted without a rebuild.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/colorbubble/internal/core"
)

// Tuning contains all configuration for the simulation.
type Tuning struct {
	Timing TimingConfig `yaml:"timing"`
	Player PlayerConfig `yaml:"player"`
	Bubble BubbleConfig `yaml:"bubble"`
	Splash SplashConfig `yaml:"splash"`
	Portal PortalConfig `yaml:"portal"`
}

// Vec is a YAML-friendly 2D vector.
type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// V converts to a core vector.
func (v Vec) V() core.Vec2 {
	return core.V2(v.X, v.Y)
}

// TimingConfig defines the fixed simulation step.
type TimingConfig struct {
	TimestepNS      int64   `yaml:"timestep_ns"`
	MaxFrameSeconds float64 `yaml:"max_frame_seconds"` // 0 disables the cap
}

// Timestep returns the fixed tick duration.
func (t TimingConfig) Timestep() time.Duration {
	return time.Duration(t.TimestepNS)
}

// MaxFrame returns the per-call elapsed time cap, or 0 when disabled.
func (t TimingConfig) MaxFrame() time.Duration {
	if t.MaxFrameSeconds <= 0 {
		return 0
	}
	return time.Duration(t.MaxFrameSeconds * float64(time.Second))
}

// PlayerConfig defines movement and death parameters for the player.
type PlayerConfig struct {
	Gravity              Vec     `yaml:"gravity"`
	InitialVelocity      Vec     `yaml:"initial_velocity"`
	SpeedX               float64 `yaml:"speed_x"`
	JumpY                float64 `yaml:"jump_y"`
	DampX                float64 `yaml:"damp_x"`
	DampY                float64 `yaml:"damp_y"`
	HueSpeed             float64 `yaml:"hue_speed"`
	BubbleSpawnOffset    Vec     `yaml:"bubble_spawn_offset"`    // X is mirrored when facing left
	BubbleLaunchVelocity Vec     `yaml:"bubble_launch_velocity"` // X is mirrored when facing left
	DeathBurstCount      int     `yaml:"death_burst_count"`
	DeathBurstRadius     float64 `yaml:"death_burst_radius"`
	DeathBurstSpeed      float64 `yaml:"death_burst_speed"`

	// PreserveBrokenCollision keeps the original response to a solid hit:
	// velocity is zeroed and the new X is kept while the new Y is dropped.
	// When false the player keeps its whole previous position instead.
	PreserveBrokenCollision bool `yaml:"preserve_broken_collision"`
}

// BubbleConfig defines bubble flight and pop burst parameters.
type BubbleConfig struct {
	Gravity     Vec     `yaml:"gravity"`
	Damping     float64 `yaml:"damping"`
	BurstCount  int     `yaml:"burst_count"`
	BurstRadius float64 `yaml:"burst_radius"`
	BurstSpeed  float64 `yaml:"burst_speed"`
}

// SplashConfig defines splash particle parameters.
type SplashConfig struct {
	Gravity Vec     `yaml:"gravity"`
	Damping float64 `yaml:"damping"`
	MaxAge  int     `yaml:"max_age"` // Ticks; a particle older than this despawns
}

// PortalConfig defines the level exit trigger.
type PortalConfig struct {
	TriggerDistance float64 `yaml:"trigger_distance"`
	CountdownTicks  int     `yaml:"countdown_ticks"`
	Rearm           bool    `yaml:"rearm"` // Return to idle after firing instead of staying spent
}

// Validate reports tuning values the simulation cannot run with.
func (t Tuning) Validate() error {
	var errs []error
	if t.Timing.TimestepNS <= 0 {
		errs = append(errs, fmt.Errorf("timing.timestep_ns must be positive, got %d", t.Timing.TimestepNS))
	}
	if t.Timing.MaxFrameSeconds < 0 {
		errs = append(errs, fmt.Errorf("timing.max_frame_seconds must not be negative, got %g", t.Timing.MaxFrameSeconds))
	}
	if t.Player.DeathBurstCount < 0 {
		errs = append(errs, fmt.Errorf("player.death_burst_count must not be negative, got %d", t.Player.DeathBurstCount))
	}
	if t.Bubble.BurstCount < 0 {
		errs = append(errs, fmt.Errorf("bubble.burst_count must not be negative, got %d", t.Bubble.BurstCount))
	}
	if t.Splash.MaxAge < 0 {
		errs = append(errs, fmt.Errorf("splash.max_age must not be negative, got %d", t.Splash.MaxAge))
	}
	if t.Portal.CountdownTicks < 0 {
		errs = append(errs, fmt.Errorf("portal.countdown_ticks must not be negative, got %d", t.Portal.CountdownTicks))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid tuning: %w", err)
	}
	return nil
}
