package audio

import (
	"math"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/vi-snake/constants"
)

// melody is one bar of square-wave notes in Hz, zero is a rest
var melody = []float64{
	261.63, 329.63, 392.00, 329.63,
	293.66, 349.23, 440.00, 349.23,
	329.63, 392.00, 493.88, 392.00,
	349.23, 293.66, 261.63, 0,
}

// melodyStreamer loops melody forever, each note fading out to avoid clicks at boundaries
type melodyStreamer struct {
	notes       []float64
	noteSamples int
	position    int
	phase       float64
	rate        beep.SampleRate
}

// NewMusic creates the endless background melody at music volume
func NewMusic(rate beep.SampleRate) beep.Streamer {
	m := &melodyStreamer{
		notes:       melody,
		noteSamples: max(rate.N(constants.MusicNoteLength), 1),
		rate:        rate,
	}
	return newVolume(m, constants.AudioMusicVolume)
}

func (m *melodyStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		idx := (m.position / m.noteSamples) % len(m.notes)
		offset := m.position % m.noteSamples
		if offset == 0 {
			m.phase = 0
		}

		var val float64
		if freq := m.notes[idx]; freq > 0 {
			val = waveValue(WaveSquare, m.phase)
			val *= 1 - float64(offset)/float64(m.noteSamples)
			m.phase += freq / float64(m.rate)
			m.phase -= math.Floor(m.phase)
		}

		samples[i][0] = val
		samples[i][1] = val
		m.position++
	}
	return len(samples), true
}

func (m *melodyStreamer) Err() error { return nil }
