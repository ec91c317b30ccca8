package engine

import (
	"testing"
	"time"
)

func testEpoch() time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
}

func TestManualClock(t *testing.T) {
	clock := NewManualClock(testEpoch())

	clock.Advance(1500 * time.Millisecond)
	if got := clock.Now().Sub(testEpoch()); got != 1500*time.Millisecond {
		t.Errorf("Expected 1.5s elapsed, got %v", got)
	}

	clock.Set(testEpoch())
	if got := clock.Now().Sub(testEpoch()); got != 1500*time.Millisecond {
		t.Errorf("Expected backwards Set to be ignored, got %v elapsed", got)
	}
}

func TestPausableClockFreezesWhilePaused(t *testing.T) {
	source := NewManualClock(testEpoch())
	clock := NewPausableClock(source)

	source.Advance(2 * time.Second)
	clock.Pause()
	frozen := clock.Now()

	source.Advance(5 * time.Second)
	if !clock.Now().Equal(frozen) {
		t.Errorf("Expected game time frozen at %v, got %v", frozen, clock.Now())
	}
	if !clock.IsPaused() {
		t.Error("Expected clock to report paused")
	}
	if got := clock.TotalPauseDuration(); got != 5*time.Second {
		t.Errorf("Expected 5s ongoing pause, got %v", got)
	}

	clock.Resume()
	source.Advance(time.Second)

	if got := clock.Now().Sub(testEpoch()); got != 3*time.Second {
		t.Errorf("Expected 3s of game time, got %v", got)
	}
	if got := clock.TotalPauseDuration(); got != 5*time.Second {
		t.Errorf("Expected 5s total pause, got %v", got)
	}
}

func TestPausableClockRepeatedCalls(t *testing.T) {
	source := NewManualClock(testEpoch())
	clock := NewPausableClock(source)

	clock.Resume()
	clock.Pause()
	source.Advance(time.Second)
	clock.Pause()
	source.Advance(time.Second)
	clock.Resume()
	clock.Resume()

	if got := clock.TotalPauseDuration(); got != 2*time.Second {
		t.Errorf("Expected 2s paused, got %v", got)
	}
	if !clock.Now().Equal(testEpoch()) {
		t.Errorf("Expected no game time to pass, got %v", clock.Now().Sub(testEpoch()))
	}
}
