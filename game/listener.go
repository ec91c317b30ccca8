package game

import "github.com/lixenwraith/vi-snake/core"

// Listener receives controller side effects on the controller goroutine
// Implementations must not call back into the controller
type Listener interface {
	OnStateChange(from, to core.State)
	OnCountdown(value int)
	OnFoodEaten(golden bool, signals core.Signals)
	OnPowerUpCollected(t core.PowerUpType)
	OnGameOver(summary core.RoundSummary, signals core.Signals)
	OnSettingsChanged(settings core.Settings)
}

// NopListener implements Listener with no-ops, embed it to handle a subset of events
type NopListener struct{}

func (NopListener) OnStateChange(core.State, core.State)       {}
func (NopListener) OnCountdown(int)                            {}
func (NopListener) OnFoodEaten(bool, core.Signals)             {}
func (NopListener) OnPowerUpCollected(core.PowerUpType)        {}
func (NopListener) OnGameOver(core.RoundSummary, core.Signals) {}
func (NopListener) OnSettingsChanged(core.Settings)            {}
