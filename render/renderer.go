// Package render draws game snapshots to a tcell screen
package render

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/game"
)

// Renderer draws one frame per call from a read-only snapshot
type Renderer struct {
	screen  tcell.Screen
	originX int
	originY int
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen:  screen,
		originX: constants.BoardOffsetX,
		originY: constants.BoardOffsetY,
	}
}

// CellOrigin returns the screen position of the left column of grid cell c
func (r *Renderer) CellOrigin(c core.Cell) (int, int) {
	return r.originX + 1 + c.X*constants.CellWidth, r.originY + 1 + c.Y
}

// HUDOrigin returns the top-left screen position of the HUD panel for a grid width
func (r *Renderer) HUDOrigin(width int) (int, int) {
	return r.originX + width*constants.CellWidth + 2 + constants.HUDGap, r.originY
}

// Draw renders the board, HUD, state overlay and transient notices, then shows the frame
func (r *Renderer) Draw(snap game.Snapshot, notices []string) {
	r.screen.SetStyle(style(RgbText))
	r.screen.Clear()

	r.drawBorder(snap.Width, snap.Height)
	r.drawBoard(snap)
	r.drawHUD(snap, notices)
	r.drawOverlay(snap)

	r.screen.Show()
}

func (r *Renderer) drawBorder(w, h int) {
	st := style(RgbBorder)
	left, top := r.originX, r.originY
	right, bottom := left+w*constants.CellWidth+1, top+h+1

	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, constants.GlyphBorderH, nil, st)
		r.screen.SetContent(x, bottom, constants.GlyphBorderH, nil, st)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, constants.GlyphBorderV, nil, st)
		r.screen.SetContent(right, y, constants.GlyphBorderV, nil, st)
	}
	r.screen.SetContent(left, top, constants.GlyphCornerTL, nil, st)
	r.screen.SetContent(right, top, constants.GlyphCornerTR, nil, st)
	r.screen.SetContent(left, bottom, constants.GlyphCornerBL, nil, st)
	r.screen.SetContent(right, bottom, constants.GlyphCornerBR, nil, st)
}

// drawCell fills both terminal columns of a grid cell; fill repeats the glyph, otherwise the second column is blank
func (r *Renderer) drawCell(c core.Cell, glyph rune, fg tcell.Color, fill bool) {
	x, y := r.CellOrigin(c)
	st := style(fg)
	r.screen.SetContent(x, y, glyph, nil, st)
	second := ' '
	if fill {
		second = glyph
	}
	for dx := 1; dx < constants.CellWidth; dx++ {
		r.screen.SetContent(x+dx, y, second, nil, st)
	}
}

func (r *Renderer) drawBoard(snap game.Snapshot) {
	for _, c := range snap.Obstacles {
		r.drawCell(c, constants.GlyphObstacle, RgbObstacle, true)
	}

	if snap.Food.Golden {
		r.drawCell(snap.Food.Position, constants.GlyphGolden, RgbGolden, false)
	} else {
		r.drawCell(snap.Food.Position, constants.GlyphFood, RgbFood, false)
	}

	if p := snap.PendingPowerUp; p != nil {
		glyph, fg := powerUpLook(p.Type)
		r.drawCell(p.Position, glyph, fg, false)
	}

	body, head := RgbSnakeBody, RgbSnakeHead
	if snap.Invincible {
		body, head = RgbSnakeInvincible, RgbInvincible
	}
	// Tail first so the head wins on overlap
	for i := len(snap.Snake) - 1; i >= 1; i-- {
		r.drawCell(snap.Snake[i], constants.GlyphSnakeBody, body, true)
	}
	if len(snap.Snake) > 0 {
		r.drawCell(snap.Snake[0], constants.GlyphSnakeHead, head, true)
	}
}

// drawText writes s starting at x, y and returns the column after the last rune
func (r *Renderer) drawText(x, y int, s string, st tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, st)
		x++
	}
	return x
}

func (r *Renderer) drawHUD(snap game.Snapshot, notices []string) {
	x, y := r.HUDOrigin(snap.Width)
	label := style(RgbDimText)
	value := style(RgbText)

	line := func(name, val string, st tcell.Style) {
		r.drawText(r.drawText(x, y, fmt.Sprintf("%-7s", name), label), y, val, st)
		y++
	}

	line("Score", strconv.Itoa(snap.Score), value)
	line("High", strconv.Itoa(snap.HighScore), value)
	line("Length", strconv.Itoa(len(snap.Snake)), value)
	line("Food", strconv.Itoa(snap.FoodEaten), value)
	speed := fmt.Sprintf("%d fps", snap.FPS)
	if snap.SpeedMultiplier != 1 {
		speed += fmt.Sprintf(" x%.1f", snap.SpeedMultiplier)
	}
	line("Speed", speed, value)
	line("Time", formatDuration(snap.PlayTime), value)
	line("Level", snap.Difficulty.String(), value)
	line("Mode", snap.Mode.String(), value)

	switch snap.Mode {
	case core.ModeTimeAttack:
		st := value
		if snap.TimeRemaining <= 10*time.Second {
			st = style(RgbWarning)
		}
		line("Left", formatDuration(snap.TimeRemaining), st)
		line("Bonus", strconv.Itoa(snap.TimeBonuses), value)
	case core.ModeSurvival:
		line("Walls", fmt.Sprintf("%d/%d", len(snap.Obstacles), snap.ObstacleCap), value)
	}

	if snap.Combo {
		r.drawText(x, y, "COMBO!", style(RgbCombo))
	}
	y++

	for _, e := range snap.ActiveEffects {
		_, fg := powerUpLook(e.Type)
		r.drawText(x, y, fmt.Sprintf("%s %.1fs", e.Type, e.Remaining.Seconds()), style(fg))
		y++
	}
	y++

	line("Sound", onOff(snap.SoundEnabled), value)
	line("Music", onOff(snap.MusicEnabled), value)
	y++

	for _, n := range notices {
		r.drawText(x, y, n, style(RgbUnlocked))
		y++
	}
}

func (r *Renderer) drawOverlay(snap game.Snapshot) {
	var lines []string
	st := style(RgbOverlay)

	switch snap.State {
	case core.StateWaiting:
		lines = []string{constants.TextWaiting}
	case core.StateCountdown:
		lines = []string{strconv.Itoa(snap.Countdown)}
	case core.StatePaused:
		lines = []string{constants.TextPaused}
	case core.StateGameOver:
		lines = []string{
			constants.TextGameOver,
			"Cause: " + snap.Cause.String(),
			"Score: " + strconv.Itoa(snap.Score),
			"Time: " + formatDuration(snap.PlayTime),
		}
		if snap.NewHighScore {
			lines = append(lines, constants.TextNewHigh)
		}
		lines = append(lines, constants.TextRestart)
	default:
		return
	}

	innerW := snap.Width * constants.CellWidth
	top := r.originY + 1 + (snap.Height-len(lines))/2
	for i, s := range lines {
		x := r.originX + 1 + (innerW-len([]rune(s)))/2
		ls := st
		if s == constants.TextNewHigh {
			ls = style(RgbNewHigh)
		}
		r.drawText(x, top+i, s, ls)
	}
}

func formatDuration(d time.Duration) string {
	secs := int(d.Truncate(time.Second).Seconds())
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
