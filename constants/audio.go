package constants

import "time"

// Audio device
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// AudioEffectVolume is the linear gain applied to effects
	AudioEffectVolume = 0.3

	// AudioMusicVolume is the linear gain applied to music
	AudioMusicVolume = 0.12

	// AudioFadeFraction is the tail share of a sound that ramps to silence
	AudioFadeFraction = 0.25
)

// Effect synthesis
const (
	EatFrequency      = 600.0
	EatDuration       = 100 * time.Millisecond
	GoldenFreqLow     = 800.0
	GoldenFreqHigh    = 1200.0
	GoldenToneLength  = 80 * time.Millisecond
	PowerUpFreqStart  = 400.0
	PowerUpFreqEnd    = 900.0
	PowerUpDuration   = 200 * time.Millisecond
	GameOverFreqStart = 500.0
	GameOverFreqEnd   = 200.0
	GameOverDuration  = 500 * time.Millisecond
	CountdownFreq     = 440.0
	CountdownDuration = 60 * time.Millisecond
)

// MusicNoteLength is the duration of one melody step
const MusicNoteLength = 200 * time.Millisecond
