package parameter

import "time"

// Snake spawn
const (
	// SnakeInitialLength is the body length at round start
	SnakeInitialLength = 3
)

// Food scoring
const (
	// FoodScore is the base value of a normal food item
	FoodScore = 10

	// ComboBonus is added when food is eaten within ComboWindow of the previous food
	ComboBonus = 5

	// ComboWindow is the maximum gap between two foods for the combo bonus
	ComboWindow = 3 * time.Second
)

// Golden apple
const (
	// GoldenProbability is the Bernoulli chance a spawned food is golden
	GoldenProbability = 0.1

	// GoldenScore is added directly when a golden apple is eaten, combo path bypassed
	GoldenScore = 50

	// GoldenTimeout forces a respawn of an uneaten golden apple
	GoldenTimeout = 10 * time.Second
)

// Placement limits
const (
	// ObstaclePlacementAttempts caps rejection sampling per placement call
	ObstaclePlacementAttempts = 1000

	// FoodSpawnAttemptFactor scales grid area into the food sampling cap before free-cell enumeration
	FoodSpawnAttemptFactor = 4
)

// Survival mode
const (
	// SurvivalObstacleInterval is the game time between added obstacles
	SurvivalObstacleInterval = 10 * time.Second

	// SurvivalMaxObstacles caps the total obstacle count, initial obstacles included
	SurvivalMaxObstacles = 20

	// SurvivorThreshold is the survival time that unlocks the survivor achievement
	SurvivorThreshold = 300 * time.Second
)

// Time attack mode
const (
	// TimeAttackDuration is the initial round length
	TimeAttackDuration = 60 * time.Second

	// TimeAttackBonus extends the round each time a golden apple is eaten
	TimeAttackBonus = 5 * time.Second
)
