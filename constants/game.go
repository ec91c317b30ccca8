package constants

import "time"

// Grid dimensions
const (
	// GridWidth is the number of columns in the playfield
	GridWidth = 30

	// GridHeight is the number of rows in the playfield
	GridHeight = 30
)

// Round lifecycle timing
const (
	// CountdownStart is the first value shown when a countdown begins
	CountdownStart = 3

	// CountdownStep is the game time between countdown decrements
	CountdownStep = time.Second

	// IdleFrameInterval paces redraws while the controller is not running
	IdleFrameInterval = 100 * time.Millisecond

	// SpectatorFrameInterval throttles snapshot broadcasts to observers
	SpectatorFrameInterval = 50 * time.Millisecond
)

// Persistence file names, relative to the data directory
const (
	DataDirName          = ".vi-snake"
	ConfigFileName       = "config.toml"
	HighScoreFileName    = "highscore.json"
	AchievementsFileName = "achievements.json"
	DatabaseFileName     = "vi-snake.db"
	ReplayFileExt        = ".vsr"
)

// Leaderboard limits
const (
	// LeaderboardCapacity is the number of entries kept
	LeaderboardCapacity = 100

	// LeaderboardNameLimit truncates player names
	LeaderboardNameLimit = 20

	// DefaultPlayerName replaces empty names
	DefaultPlayerName = "Player"
)
