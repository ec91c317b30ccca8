package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/vi-snake/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
)

// oscillator generates a finite tone, sweeping linearly from startFreq to endFreq
type oscillator struct {
	startFreq float64
	endFreq   float64
	phase     float64
	duration  int
	position  int
	wave      WaveType
	rate      beep.SampleRate
}

// NewOscillator creates a constant-frequency tone
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates a tone gliding from start to end over duration
func NewSweep(start, end float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		startFreq: start,
		endFreq:   end,
		duration:  rate.N(duration),
		wave:      wave,
		rate:      rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		val := waveValue(o.wave, o.phase)
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.startFreq + (o.endFreq-o.startFreq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

func waveValue(w WaveType, phase float64) float64 {
	if w == WaveSquare {
		if phase < 0.5 {
			return 1
		}
		return -1
	}
	return math.Sin(2 * math.Pi * phase)
}

// fade scales the last fraction of a finite stream linearly down to silence
type fade struct {
	streamer beep.Streamer
	position int
	total    int
	start    int
}

// NewFade applies a release ramp over the trailing fraction of a stream of the given duration
func NewFade(s beep.Streamer, duration time.Duration, fraction float64, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	tail := int(float64(total) * fraction)
	return &fade{streamer: s, total: total, start: total - tail}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if f.position >= f.start && f.total > f.start {
			vol := float64(f.total-f.position-1) / float64(f.total-f.start)
			vol = max(vol, 0)
			samples[i][0] *= vol
			samples[i][1] *= vol
		}
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// newVolume wraps s with a linear gain, zero gain is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(start, end float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewFade(NewSweep(start, end, d, wave, rate), d, constants.AudioFadeFraction, rate)
}

// Sound identifies a one-shot effect
type Sound int

const (
	SoundEat Sound = iota
	SoundGolden
	SoundPowerUp
	SoundGameOver
	SoundCountdown
)

// Effect builds the streamer for a sound at effect volume
func Effect(s Sound, rate beep.SampleRate) beep.Streamer {
	var st beep.Streamer
	switch s {
	case SoundEat:
		st = tone(constants.EatFrequency, constants.EatFrequency, constants.EatDuration, WaveSine, rate)
	case SoundGolden:
		st = beep.Seq(
			tone(constants.GoldenFreqLow, constants.GoldenFreqLow, constants.GoldenToneLength, WaveSine, rate),
			tone(constants.GoldenFreqHigh, constants.GoldenFreqHigh, constants.GoldenToneLength, WaveSine, rate),
		)
	case SoundPowerUp:
		st = tone(constants.PowerUpFreqStart, constants.PowerUpFreqEnd, constants.PowerUpDuration, WaveSine, rate)
	case SoundGameOver:
		st = tone(constants.GameOverFreqStart, constants.GameOverFreqEnd, constants.GameOverDuration, WaveSquare, rate)
	case SoundCountdown:
		st = tone(constants.CountdownFreq, constants.CountdownFreq, constants.CountdownDuration, WaveSine, rate)
	default:
		return nil
	}
	return newVolume(st, constants.AudioEffectVolume)
}

// EffectDuration returns the playing time of a sound
func EffectDuration(s Sound) time.Duration {
	switch s {
	case SoundEat:
		return constants.EatDuration
	case SoundGolden:
		return 2 * constants.GoldenToneLength
	case SoundPowerUp:
		return constants.PowerUpDuration
	case SoundGameOver:
		return constants.GameOverDuration
	case SoundCountdown:
		return constants.CountdownDuration
	}
	return 0
}
