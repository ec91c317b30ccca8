package parameter

import "github.com/lixenwraith/vi-snake/core"

// DifficultySettings is the immutable per-round preset for a difficulty
type DifficultySettings struct {
	InitialFPS int
	MaxFPS     int
	Obstacles  int

	// SpeedInterval is the number of foods eaten per tick rate step
	SpeedInterval int
}

var difficultyTable = [core.DifficultyCount]DifficultySettings{
	core.DifficultyEasy:   {InitialFPS: 8, MaxFPS: 15, SpeedInterval: 5, Obstacles: 0},
	core.DifficultyNormal: {InitialFPS: 10, MaxFPS: 20, SpeedInterval: 5, Obstacles: 0},
	core.DifficultyHard:   {InitialFPS: 15, MaxFPS: 25, SpeedInterval: 3, Obstacles: 10},
}

// Difficulty resolves the preset for d, unknown values resolve to normal
func Difficulty(d core.Difficulty) DifficultySettings {
	if d >= core.DifficultyCount {
		return difficultyTable[core.DifficultyNormal]
	}
	return difficultyTable[d]
}
