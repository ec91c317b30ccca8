package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbBorder     = tcell.NewRGBColor(120, 120, 140) // Muted slate
	RgbText       = tcell.NewRGBColor(220, 220, 220) // Soft white
	RgbDimText    = tcell.NewRGBColor(140, 140, 140) // Gray

	RgbSnakeHead       = tcell.NewRGBColor(80, 250, 123) // Bright green
	RgbSnakeBody       = tcell.NewRGBColor(0, 170, 70)   // Green
	RgbSnakeInvincible = tcell.NewRGBColor(255, 255, 255)

	RgbFood     = tcell.NewRGBColor(255, 80, 80)  // Red
	RgbGolden   = tcell.NewRGBColor(255, 215, 0)  // Gold
	RgbObstacle = tcell.NewRGBColor(150, 110, 70) // Brown

	RgbSpeedBoost = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbSlowMotion = tcell.NewRGBColor(100, 150, 255) // Blue
	RgbInvincible = tcell.NewRGBColor(200, 120, 255) // Violet

	RgbCombo    = tcell.NewRGBColor(255, 192, 203) // Pink
	RgbWarning  = tcell.NewRGBColor(255, 0, 0)
	RgbOverlay  = tcell.NewRGBColor(255, 255, 0)
	RgbNewHigh  = tcell.NewRGBColor(255, 215, 0)
	RgbUnlocked = tcell.NewRGBColor(144, 238, 144) // Light green
)

func style(fg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(fg).Background(RgbBackground)
}

// powerUpLook returns glyph and color for a power-up type
func powerUpLook(t core.PowerUpType) (rune, tcell.Color) {
	switch t {
	case core.PowerUpSpeedBoost:
		return constants.GlyphSpeedBoost, RgbSpeedBoost
	case core.PowerUpSlowMotion:
		return constants.GlyphSlowMotion, RgbSlowMotion
	default:
		return constants.GlyphInvincible, RgbInvincible
	}
}
