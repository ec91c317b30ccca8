package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/vi-snake/core"
)

const testRate = beep.SampleRate(44100)

// drain pulls every sample from a finite streamer
func drain(t *testing.T, s beep.Streamer, limit int) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for len(out) < limit {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatalf("Expected finite stream within %d samples", limit)
	return nil
}

func TestOscillatorLengthAndRange(t *testing.T) {
	d := 50 * time.Millisecond
	samples := drain(t, NewOscillator(440, d, WaveSine, testRate), testRate.N(time.Second))

	if len(samples) != testRate.N(d) {
		t.Errorf("Expected %d samples, got %d", testRate.N(d), len(samples))
	}
	for i, s := range samples {
		if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
			t.Fatalf("Sample %d invalid: %v", i, s)
		}
	}
}

func TestSquareWave(t *testing.T) {
	samples := drain(t, NewOscillator(220, 20*time.Millisecond, WaveSquare, testRate), testRate.N(time.Second))
	for i, s := range samples {
		if s[0] != 1 && s[0] != -1 {
			t.Fatalf("Square sample %d should be -1 or 1, got %f", i, s[0])
		}
	}
}

func TestFadeEndsSilent(t *testing.T) {
	d := 100 * time.Millisecond
	st := NewFade(NewOscillator(600, d, WaveSquare, testRate), d, 0.25, testRate)
	samples := drain(t, st, testRate.N(time.Second))

	if last := samples[len(samples)-1][0]; last != 0 {
		t.Errorf("Expected silent last sample, got %f", last)
	}
	// Head of the sound is untouched by the fade
	if first := math.Abs(samples[0][0]); first != 1 {
		t.Errorf("Expected full amplitude at start, got %f", first)
	}
}

func TestEffects(t *testing.T) {
	sounds := []struct {
		name  string
		sound Sound
	}{
		{"eat", SoundEat},
		{"golden", SoundGolden},
		{"powerup", SoundPowerUp},
		{"gameover", SoundGameOver},
		{"countdown", SoundCountdown},
	}
	for _, tt := range sounds {
		t.Run(tt.name, func(t *testing.T) {
			st := Effect(tt.sound, testRate)
			if st == nil {
				t.Fatal("Expected streamer")
			}
			samples := drain(t, st, testRate.N(2*time.Second))
			want := testRate.N(EffectDuration(tt.sound))
			if diff := len(samples) - want; diff < -1 || diff > 1 {
				t.Errorf("Expected about %d samples, got %d", want, len(samples))
			}
			if samples[len(samples)-1][0] != 0 {
				t.Errorf("Expected fade to silence, got %f", samples[len(samples)-1][0])
			}
		})
	}

	if Effect(Sound(99), testRate) != nil {
		t.Error("Expected nil for unknown sound")
	}
}

func TestMusicIsEndless(t *testing.T) {
	m := NewMusic(testRate)
	buf := make([][2]float64, 4096)
	for i := 0; i < 50; i++ {
		n, ok := m.Stream(buf)
		if !ok || n != len(buf) {
			t.Fatalf("Expected endless music, got n=%d ok=%v", n, ok)
		}
	}
}

func TestEngineRespondsToEvents(t *testing.T) {
	e := NewEngine(true, true)
	base := e.Queued()

	e.OnFoodEaten(false, core.Signals{})
	e.OnFoodEaten(true, core.Signals{})
	e.OnPowerUpCollected(core.PowerUpSpeedBoost)
	if got := e.Queued() - base; got != 3 {
		t.Errorf("Expected 3 queued effects, got %d", got)
	}

	e.OnSettingsChanged(core.Settings{SoundEnabled: false, MusicEnabled: true})
	e.OnGameOver(core.RoundSummary{}, core.Signals{})
	if got := e.Queued() - base; got != 3 {
		t.Errorf("Expected no effect while sound is off, got %d queued", got)
	}
}

func TestEngineMusicFollowsState(t *testing.T) {
	e := NewEngine(true, true)
	if e.MusicPlaying() {
		t.Error("Expected music paused before running")
	}

	e.OnStateChange(core.StateWaiting, core.StateRunning)
	if !e.MusicPlaying() {
		t.Error("Expected music while running")
	}

	e.OnSettingsChanged(core.Settings{SoundEnabled: true, MusicEnabled: false})
	if e.MusicPlaying() {
		t.Error("Expected music off after toggle")
	}

	e.OnSettingsChanged(core.Settings{SoundEnabled: true, MusicEnabled: true})
	e.OnStateChange(core.StateRunning, core.StatePaused)
	if e.MusicPlaying() {
		t.Error("Expected music paused with the game")
	}
}
