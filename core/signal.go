package core

import "time"

// Signal is a device-independent controller input
type Signal uint8

const (
	SignalNone Signal = iota
	SignalUp
	SignalDown
	SignalLeft
	SignalRight
	SignalStart
	SignalPauseToggle
	SignalRestart
	SignalCycleDifficulty
	SignalTogglePortal
	SignalToggleSound
	SignalToggleMusic
	SignalQuit
)

var signalNames = [...]string{
	SignalNone:            "none",
	SignalUp:              "up",
	SignalDown:            "down",
	SignalLeft:            "left",
	SignalRight:           "right",
	SignalStart:           "start",
	SignalPauseToggle:     "pause",
	SignalRestart:         "restart",
	SignalCycleDifficulty: "difficulty",
	SignalTogglePortal:    "portal",
	SignalToggleSound:     "sound",
	SignalToggleMusic:     "music",
	SignalQuit:            "quit",
}

func (s Signal) String() string {
	if int(s) < len(signalNames) {
		return signalNames[s]
	}
	return "unknown"
}

// Direction returns the movement direction carried by a move signal
func (s Signal) Direction() (Direction, bool) {
	switch s {
	case SignalUp:
		return Up, true
	case SignalDown:
		return Down, true
	case SignalLeft:
		return Left, true
	case SignalRight:
		return Right, true
	}
	return Direction{}, false
}

// Signals is the fixed record of gameplay counters checked by achievement predicates
type Signals struct {
	FoodEaten         int
	SnakeLength       int
	Score             int
	Mode              RuleMode
	SurvivalTime      time.Duration
	TimeAttackScore   int
	GoldenApples      int
	PowerUpsCollected int
	ReachedMaxSpeed   bool
	InvinciblePass    bool
}

// RoundSummary describes a finished round
type RoundSummary struct {
	RoundID        string
	Difficulty     Difficulty
	Mode           RuleMode
	Cause          GameOverCause
	Score          int
	HighScore      int
	NewHighScore   bool
	FoodEaten      int
	GoldenEaten    int
	PowerUps       int
	SnakeLength    int
	PlayTime       time.Duration
	MaxFPS         int
	ReachedMax     bool
	InvinciblePass bool
}

// Settings are the user-facing toggles owned by the controller
type Settings struct {
	Difficulty   Difficulty
	Mode         RuleMode
	SoundEnabled bool
	MusicEnabled bool
}
