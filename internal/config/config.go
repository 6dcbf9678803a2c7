// Package config provides YAML-based game configuration loading for Entropy.
package config

import (
	"errors"
	"fmt"
	"math"
)

// Config contains all tunable parameters of the game.
type Config struct {
	Physics Physics `yaml:"physics"`
	Player  Player  `yaml:"player"`
	World   World   `yaml:"world"`
	Repair  Repair  `yaml:"repair"`
	Decay   Decay   `yaml:"decay"`
	Session Session `yaml:"session"`
}

// Physics defines per-tick movement constants, expressed at ReferenceRate.
type Physics struct {
	Gravity          float64 `yaml:"gravity"`
	JumpStrength     float64 `yaml:"jump_strength"`
	MoveSpeed        float64 `yaml:"move_speed"`
	LandingTolerance float64 `yaml:"landing_tolerance"`
	ReferenceRate    int     `yaml:"reference_rate"` // Tick rate the constants were tuned at
}

// Player defines the player body and spawn point.
type Player struct {
	Size   float64 `yaml:"size"`
	SpawnX float64 `yaml:"spawn_x"`
	SpawnY float64 `yaml:"spawn_y"`
	Lives  int     `yaml:"lives"`
}

// World defines the playfield dimensions.
type World struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	FloorHeight float64 `yaml:"floor_height"` // Thickness of the ground slab at the bottom
}

// FloorY returns the y coordinate of the world floor plane.
func (w World) FloorY() float64 {
	return w.Height - w.FloorHeight
}

// Repair defines the limits used to make platform layouts traversable.
type Repair struct {
	MaxGap       float64 `yaml:"max_gap"`
	MinWidth     float64 `yaml:"min_width"`
	MinY         float64 `yaml:"min_y"`
	MaxY         float64 `yaml:"max_y"`
	BridgeHeight float64 `yaml:"bridge_height"`
}

// Decay defines the time-pressure window.
type Decay struct {
	StaticWindow float64 `yaml:"static_window"` // Seconds before timeout when static starts
}

// Session defines the progression timing and camera behaviour.
type Session struct {
	LoadingSeconds float64 `yaml:"loading_seconds"`
	CameraEase     float64 `yaml:"camera_ease"` // Fraction of the distance closed per tick
	CameraLead     float64 `yaml:"camera_lead"` // Fraction of the view width kept left of the player
}

// ErrInvalid is returned by Validate for configs the simulation cannot run.
var ErrInvalid = errors.New("config: invalid")

// MinPlatformWidth returns the effective minimum elevated platform width:
// the configured width, but never narrower than the player plus a margin.
func (c Config) MinPlatformWidth() float64 {
	return math.Max(c.Repair.MinWidth, c.Player.Size+20)
}

// Validate checks the values that would make the simulation degenerate.
func (c Config) Validate() error {
	switch {
	case c.Physics.Gravity <= 0:
		return fmt.Errorf("%w: physics.gravity must be positive", ErrInvalid)
	case c.Physics.JumpStrength <= 0:
		return fmt.Errorf("%w: physics.jump_strength must be positive", ErrInvalid)
	case c.Physics.ReferenceRate <= 0:
		return fmt.Errorf("%w: physics.reference_rate must be positive", ErrInvalid)
	case c.Player.Size <= 0:
		return fmt.Errorf("%w: player.size must be positive", ErrInvalid)
	case c.Player.Lives <= 0:
		return fmt.Errorf("%w: player.lives must be positive", ErrInvalid)
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world dimensions must be positive", ErrInvalid)
	case c.Repair.MaxGap <= 0:
		return fmt.Errorf("%w: repair.max_gap must be positive", ErrInvalid)
	case c.Repair.MinY > c.Repair.MaxY:
		return fmt.Errorf("%w: repair.min_y above repair.max_y", ErrInvalid)
	case c.Decay.StaticWindow < 0:
		return fmt.Errorf("%w: decay.static_window must not be negative", ErrInvalid)
	}
	return nil
}
