// Package audio synthesizes game sound effects and background music with beep
package audio

import (
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/game"
)

// Engine plays effects and music in response to controller events
// Without a started speaker, streamers are queued on the mixer only, which keeps tests device-free
type Engine struct {
	game.NopListener

	mu    sync.Mutex
	rate  beep.SampleRate
	mixer *beep.Mixer
	music *beep.Ctrl

	started  bool
	disabled bool

	soundOn bool
	musicOn bool
	running bool
}

// NewEngine creates an engine with the given toggles
func NewEngine(soundOn, musicOn bool) *Engine {
	rate := beep.SampleRate(constants.AudioSampleRate)
	e := &Engine{
		rate:    rate,
		mixer:   &beep.Mixer{},
		soundOn: soundOn,
		musicOn: musicOn,
	}
	e.music = &beep.Ctrl{Streamer: NewMusic(rate), Paused: true}
	e.mixer.Add(e.music)
	return e
}

// Start opens the speaker; on failure the engine is disabled and the error returned for logging
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.started || e.disabled {
		return nil
	}
	if err := speaker.Init(e.rate, e.rate.N(constants.AudioBufferDuration)); err != nil {
		e.disabled = true
		e.mixer.Clear()
		log.Printf("[audio] speaker unavailable, sound disabled: %v", err)
		return err
	}
	speaker.Play(e.mixer)
	e.started = true
	return nil
}

// Close stops all playback
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started {
		return
	}
	speaker.Clear()
	speaker.Close()
	e.started = false
	e.disabled = true
}

// Play queues a one-shot effect when sound is enabled
func (e *Engine) Play(s Sound) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.disabled || !e.soundOn {
		return false
	}
	st := Effect(s, e.rate)
	if st == nil {
		return false
	}
	e.withSpeaker(func() { e.mixer.Add(st) })
	return true
}

// withSpeaker runs fn under the speaker lock once playback has started
func (e *Engine) withSpeaker(fn func()) {
	if e.started {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}

// syncMusic plays music only while running with music enabled; caller holds mu
func (e *Engine) syncMusic() {
	paused := e.disabled || !e.musicOn || !e.running
	e.withSpeaker(func() { e.music.Paused = paused })
}

// MusicPlaying reports whether the melody is currently audible
func (e *Engine) MusicPlaying() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	var playing bool
	e.withSpeaker(func() { playing = !e.music.Paused })
	return playing
}

// Queued returns the number of streamers on the mixer, music included
func (e *Engine) Queued() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	var n int
	e.withSpeaker(func() { n = e.mixer.Len() })
	return n
}

func (e *Engine) OnStateChange(_, to core.State) {
	e.mu.Lock()
	e.running = to == core.StateRunning
	e.syncMusic()
	e.mu.Unlock()
}

func (e *Engine) OnCountdown(int) {
	e.Play(SoundCountdown)
}

func (e *Engine) OnFoodEaten(golden bool, _ core.Signals) {
	if golden {
		e.Play(SoundGolden)
		return
	}
	e.Play(SoundEat)
}

func (e *Engine) OnPowerUpCollected(core.PowerUpType) {
	e.Play(SoundPowerUp)
}

func (e *Engine) OnGameOver(core.RoundSummary, core.Signals) {
	e.Play(SoundGameOver)
}

// OnSettingsChanged follows the sound and music toggles immediately
func (e *Engine) OnSettingsChanged(s core.Settings) {
	e.mu.Lock()
	e.soundOn = s.SoundEnabled
	e.musicOn = s.MusicEnabled
	e.syncMusic()
	e.mu.Unlock()
}
