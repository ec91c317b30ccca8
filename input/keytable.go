// Package input translates terminal key events into controller signals
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/core"
)

// KeyTable maps keys to signals
type KeyTable struct {
	// Special keys (arrows, Enter, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]core.Signal

	// Printable rune bindings, matched case-insensitively for letters
	Runes map[rune]core.Signal
}

// DefaultKeyTable returns arrows and vi hjkl for movement plus single-letter commands
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]core.Signal{
			tcell.KeyUp:     core.SignalUp,
			tcell.KeyDown:   core.SignalDown,
			tcell.KeyLeft:   core.SignalLeft,
			tcell.KeyRight:  core.SignalRight,
			tcell.KeyEnter:  core.SignalStart,
			tcell.KeyEscape: core.SignalQuit,
			tcell.KeyCtrlC:  core.SignalQuit,
		},
		Runes: map[rune]core.Signal{
			'k': core.SignalUp,
			'j': core.SignalDown,
			'h': core.SignalLeft,
			'l': core.SignalRight,
			' ': core.SignalStart,
			'r': core.SignalRestart,
			'd': core.SignalCycleDifficulty,
			'p': core.SignalTogglePortal,
			's': core.SignalToggleSound,
			'm': core.SignalToggleMusic,
			'q': core.SignalQuit,
		},
	}
}

// Translate maps a key and rune to a signal, ok is false for unbound keys
func (kt *KeyTable) Translate(key tcell.Key, r rune) (core.Signal, bool) {
	if key == tcell.KeyRune {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		sig, ok := kt.Runes[r]
		return sig, ok
	}
	sig, ok := kt.SpecialKeys[key]
	return sig, ok
}

// HandleEvent translates a terminal event, non-key events yield no signal
func (kt *KeyTable) HandleEvent(ev tcell.Event) (core.Signal, bool) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return core.SignalNone, false
	}
	return kt.Translate(key.Key(), key.Rune())
}
