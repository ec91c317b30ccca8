// Package replay records controller input to a msgpack stream and re-executes it on a manual clock
package replay

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/game"
)

// Version is the stream format written by Recorder
const Version = 1

// ErrVersion reports a stream written by an incompatible recorder
var ErrVersion = errors.New("replay: unsupported version")

// Header carries everything needed to rebuild the controller a stream was recorded against
type Header struct {
	Version    int       `msgpack:"v"`
	RoundID    string    `msgpack:"round"`
	Seed       uint64    `msgpack:"seed"`
	Difficulty string    `msgpack:"difficulty"`
	Mode       string    `msgpack:"mode"`
	Width      int       `msgpack:"w"`
	Height     int       `msgpack:"h"`
	HighScore  int       `msgpack:"high"`
	Start      time.Time `msgpack:"start"`
}

// Config converts the header back into controller construction input
func (h Header) Config() (game.Config, error) {
	diff, ok := core.ParseDifficulty(h.Difficulty)
	if !ok {
		return game.Config{}, fmt.Errorf("replay: difficulty %q", h.Difficulty)
	}
	mode, ok := core.ParseRuleMode(h.Mode)
	if !ok {
		return game.Config{}, fmt.Errorf("replay: mode %q", h.Mode)
	}
	return game.Config{
		Difficulty: diff,
		Mode:       mode,
		Seed:       h.Seed,
		Width:      h.Width,
		Height:     h.Height,
		HighScore:  h.HighScore,
	}, nil
}

// EventKind distinguishes input signals from frame ticks
type EventKind uint8

const (
	KindSignal EventKind = iota
	KindTick
)

// Event is one recorded controller call at an offset from Header.Start
type Event struct {
	Offset int64       `msgpack:"o"` // Nanoseconds of source time
	Kind   EventKind   `msgpack:"k"`
	Signal core.Signal `msgpack:"s,omitempty"`
}

// Recorder writes a header followed by one event per Handle or Tick call
// Source must be the same time provider the controller reads so offsets match its view of time
type Recorder struct {
	enc    *msgpack.Encoder
	source engine.TimeProvider
	start  time.Time
	events int
	err    error
}

// NewRecorder writes the header for a controller built from cfg and returns a recorder positioned at source's current time
func NewRecorder(w io.Writer, source engine.TimeProvider, cfg game.Config, roundID string) (*Recorder, error) {
	r := &Recorder{
		enc:    msgpack.NewEncoder(w),
		source: source,
		start:  source.Now(),
	}
	h := Header{
		Version:    Version,
		RoundID:    roundID,
		Seed:       cfg.Seed,
		Difficulty: cfg.Difficulty.String(),
		Mode:       cfg.Mode.String(),
		Width:      cfg.Width,
		Height:     cfg.Height,
		HighScore:  cfg.HighScore,
		Start:      r.start,
	}
	if err := r.enc.Encode(&h); err != nil {
		return nil, fmt.Errorf("replay: write header: %w", err)
	}
	return r, nil
}

// Signal records sig, call it immediately before Controller.Handle
func (r *Recorder) Signal(sig core.Signal) {
	r.write(Event{Kind: KindSignal, Signal: sig})
}

// Tick records a frame, call it immediately before Controller.Tick
func (r *Recorder) Tick() {
	r.write(Event{Kind: KindTick})
}

func (r *Recorder) write(ev Event) {
	if r.err != nil {
		return
	}
	ev.Offset = int64(r.source.Now().Sub(r.start))
	if err := r.enc.Encode(&ev); err != nil {
		r.err = fmt.Errorf("replay: write event %d: %w", r.events, err)
		return
	}
	r.events++
}

// Events returns the number of events written
func (r *Recorder) Events() int { return r.events }

// Err returns the first write error, recording stops after it
func (r *Recorder) Err() error { return r.err }

// Play rebuilds the recorded controller and re-applies every event at its recorded time
// Listeners are attached before the first event; the controller is returned in its final state
func Play(r io.Reader, listeners ...game.Listener) (*game.Controller, Header, error) {
	dec := msgpack.NewDecoder(r)

	var h Header
	if err := dec.Decode(&h); err != nil {
		return nil, h, fmt.Errorf("replay: read header: %w", err)
	}
	if h.Version != Version {
		return nil, h, fmt.Errorf("%w: %d", ErrVersion, h.Version)
	}
	cfg, err := h.Config()
	if err != nil {
		return nil, h, err
	}

	// Timestamps decode in the local zone
	h.Start = h.Start.UTC()
	clock := engine.NewManualClock(h.Start)
	c := game.New(cfg, clock)
	for _, l := range listeners {
		c.AddListener(l)
	}

	for n := 0; ; n++ {
		if _, err := dec.PeekCode(); errors.Is(err, io.EOF) {
			return c, h, nil
		}
		var ev Event
		if err := dec.Decode(&ev); err != nil {
			return c, h, fmt.Errorf("replay: read event %d: %w", n, err)
		}

		clock.Set(h.Start.Add(time.Duration(ev.Offset)))
		switch ev.Kind {
		case KindSignal:
			c.Handle(ev.Signal)
		case KindTick:
			c.Tick()
		default:
			return c, h, fmt.Errorf("replay: event %d: unknown kind %d", n, ev.Kind)
		}
	}
}
