package parameter

import (
	"time"

	"github.com/lixenwraith/vi-snake/core"
)

// PowerUpDef is the immutable definition of a power-up type
type PowerUpDef struct {
	Type     core.PowerUpType
	Duration time.Duration
	Points   int

	// Probability is the per-tick spawn chance, ranges are cumulative in table order
	Probability float64

	// SpeedMultiplier scales the tick rate while active, 0 means no speed effect
	SpeedMultiplier float64
}

var powerUpTable = [core.PowerUpCount]PowerUpDef{
	core.PowerUpSpeedBoost: {
		Type:            core.PowerUpSpeedBoost,
		Probability:     0.005,
		Duration:        5 * time.Second,
		Points:          15,
		SpeedMultiplier: 1.5,
	},
	core.PowerUpSlowMotion: {
		Type:            core.PowerUpSlowMotion,
		Probability:     0.005,
		Duration:        5 * time.Second,
		Points:          10,
		SpeedMultiplier: 0.5,
	},
	core.PowerUpInvincible: {
		Type:        core.PowerUpInvincible,
		Probability: 0.003,
		Duration:    5 * time.Second,
		Points:      20,
	},
}

// PowerUp resolves the definition of a power-up type
func PowerUp(t core.PowerUpType) PowerUpDef {
	return powerUpTable[t]
}

// PowerUps returns all definitions in cumulative probability order
func PowerUps() []PowerUpDef {
	out := make([]PowerUpDef, len(powerUpTable))
	copy(out, powerUpTable[:])
	return out
}
