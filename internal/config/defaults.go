package config

import (
	_ "embed"
)

//go:embed defaults/flaptty.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It mirrors the embedded
// defaults/flaptty.yaml and serves as the last-resort fallback if the
// embedded file fails to parse.
func Default() Config {
	return Config{
		Physics: Physics{
			Gravity:       0.12,
			JumpImpulse:   -1.4,
			BaseSpeed:     0.5,
			SpeedIncrease: 0.01,
		},
		Obstacles: Obstacles{
			Width:     5,
			GapHeight: 9,
			MinGapY:   2,
		},
		Player: Player{
			X:      10,
			Width:  2,
			Height: 2,
		},
		Field: Field{
			TopMargin:    1,
			BottomMargin: 2,
		},
	}
}
