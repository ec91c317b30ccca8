package core

// Difficulty selects a preset bundle of tick rate, ramp interval and obstacle count
type Difficulty uint8

const (
	DifficultyEasy Difficulty = iota
	DifficultyNormal
	DifficultyHard
	DifficultyCount
)

var difficultyNames = [DifficultyCount]string{"easy", "normal", "hard"}

func (d Difficulty) String() string {
	if d < DifficultyCount {
		return difficultyNames[d]
	}
	return "unknown"
}

// Next cycles easy -> normal -> hard -> easy
func (d Difficulty) Next() Difficulty {
	return (d + 1) % DifficultyCount
}

// ParseDifficulty maps a difficulty name to its value, ok is false for unknown names
func ParseDifficulty(s string) (Difficulty, bool) {
	for i, name := range difficultyNames {
		if name == s {
			return Difficulty(i), true
		}
	}
	return DifficultyNormal, false
}

// RuleMode tags the active rule variant
type RuleMode uint8

const (
	ModeClassic RuleMode = iota
	ModePortal
	ModeSurvival
	ModeTimeAttack
	ModeCount
)

var modeNames = [ModeCount]string{"classic", "portal", "survival", "time_attack"}

func (m RuleMode) String() string {
	if m < ModeCount {
		return modeNames[m]
	}
	return "unknown"
}

// ParseRuleMode maps a mode name to its value, ok is false for unknown names
func ParseRuleMode(s string) (RuleMode, bool) {
	for i, name := range modeNames {
		if name == s {
			return RuleMode(i), true
		}
	}
	return ModeClassic, false
}

// PowerUpType identifies a time-boxed effect
type PowerUpType uint8

const (
	PowerUpSpeedBoost PowerUpType = iota
	PowerUpSlowMotion
	PowerUpInvincible
	PowerUpCount
)

var powerUpNames = [PowerUpCount]string{"speed_boost", "slow_motion", "invincible"}

func (p PowerUpType) String() string {
	if p < PowerUpCount {
		return powerUpNames[p]
	}
	return "unknown"
}

// GameOverCause records why a round ended, reporting only
type GameOverCause uint8

const (
	CauseNone GameOverCause = iota
	CauseWall
	CauseSelf
	CauseObstacle
	CauseTimeUp
)

func (c GameOverCause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	case CauseObstacle:
		return "obstacle"
	case CauseTimeUp:
		return "time_up"
	default:
		return "none"
	}
}

// State is the controller lifecycle phase
type State uint8

const (
	StateWaiting State = iota
	StateCountdown
	StateRunning
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateWaiting:
		return "waiting"
	case StateCountdown:
		return "countdown"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
