package config

import (
	_ "embed"
)

//go:embed defaults/entropy.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
// It mirrors defaults/entropy.yaml and is used if the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Physics: Physics{
			Gravity:          0.8,
			JumpStrength:     16,
			MoveSpeed:        6,
			LandingTolerance: 20,
			ReferenceRate:    60,
		},
		Player: Player{
			Size:   55,
			SpawnX: 50,
			SpawnY: 620,
			Lives:  3,
		},
		World: World{
			Width:       1280,
			Height:      720,
			FloorHeight: 50,
		},
		Repair: Repair{
			MaxGap:       180,
			MinWidth:     90,
			MinY:         240,
			MaxY:         520,
			BridgeHeight: 20,
		},
		Decay: Decay{
			StaticWindow: 15,
		},
		Session: Session{
			LoadingSeconds: 2,
			CameraEase:     0.1,
			CameraLead:     0.333,
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `entropy config`.
func DefaultYAML() []byte {
	return defaultYAML
}
