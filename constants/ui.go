package constants

// Board layout in terminal cells
const (
	// CellWidth is the number of terminal columns per grid cell, keeps cells visually square
	CellWidth = 2

	// BoardOffsetX is the column of the left border
	BoardOffsetX = 0

	// BoardOffsetY is the row of the top border
	BoardOffsetY = 0

	// HUDGap is the number of columns between the right border and the HUD panel
	HUDGap = 2
)

// Board glyphs
const (
	GlyphSnakeHead  = '█'
	GlyphSnakeBody  = '▓'
	GlyphFood       = '●'
	GlyphGolden     = '◆'
	GlyphObstacle   = '▒'
	GlyphSpeedBoost = '»'
	GlyphSlowMotion = '«'
	GlyphInvincible = '☼'
	GlyphBorderH    = '─'
	GlyphBorderV    = '│'
	GlyphCornerTL   = '┌'
	GlyphCornerTR   = '┐'
	GlyphCornerBL   = '└'
	GlyphCornerBR   = '┘'
)

// Overlay text
const (
	TextWaiting  = "SPACE to start"
	TextPaused   = "PAUSED"
	TextGameOver = "GAME OVER"
	TextRestart  = "R to restart"
	TextNewHigh  = "NEW HIGH SCORE"
)
