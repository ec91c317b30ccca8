package engine

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/vi-snake/core"
)

// fixedRNG replays scripted values, Intn returns 0 once the script is exhausted
type fixedRNG struct {
	floats []float64
	ints   []int
}

func (r *fixedRNG) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	f := r.floats[0]
	r.floats = r.floats[1:]
	return f
}

func (r *fixedRNG) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	i := r.ints[0] % n
	r.ints = r.ints[1:]
	return i
}

func TestTrySpawnCumulativeTable(t *testing.T) {
	tests := []struct {
		roll   float64
		want   core.PowerUpType
		spawns bool
	}{
		{0.0, core.PowerUpSpeedBoost, true},
		{0.0049, core.PowerUpSpeedBoost, true},
		{0.005, core.PowerUpSlowMotion, true},
		{0.0099, core.PowerUpSlowMotion, true},
		{0.010, core.PowerUpInvincible, true},
		{0.0129, core.PowerUpInvincible, true},
		{0.0131, 0, false},
		{0.5, 0, false},
	}
	for _, tt := range tests {
		m := NewPowerUpManager(NewGrid(10, 10), &fixedRNG{floats: []float64{tt.roll}})
		p, ok := m.TrySpawn(NewCellSet())
		if ok != tt.spawns {
			t.Errorf("roll %.4f: Expected spawn=%v, got %v", tt.roll, tt.spawns, ok)
			continue
		}
		if ok && p.Type != tt.want {
			t.Errorf("roll %.4f: Expected %v, got %v", tt.roll, tt.want, p.Type)
		}
	}
}

func TestTrySpawnUsesFreeCell(t *testing.T) {
	g := NewGrid(4, 1)
	occupied := NewCellSet(core.Cell{X: 0, Y: 0}, core.Cell{X: 1, Y: 0}, core.Cell{X: 3, Y: 0})
	m := NewPowerUpManager(g, &fixedRNG{floats: []float64{0}, ints: []int{0}})

	p, ok := m.TrySpawn(occupied)
	if !ok {
		t.Fatal("Expected spawn")
	}
	if p.Position != (core.Cell{X: 2, Y: 0}) {
		t.Errorf("Expected only free cell (2,0), got %v", p.Position)
	}
	if !m.PendingAt(p.Position) {
		t.Error("Expected pending power-up at spawn position")
	}

	if _, again := m.TrySpawn(NewCellSet()); again {
		t.Error("Expected no second spawn while one is pending")
	}
}

func TestCollectOverwritesSameType(t *testing.T) {
	now := testEpoch()
	m := NewPowerUpManager(NewGrid(10, 10), NewRNG(1))

	points := m.Collect(PowerUp{Type: core.PowerUpSpeedBoost}, now)
	if points != 15 {
		t.Errorf("Expected 15 points, got %d", points)
	}

	later := now.Add(4 * time.Second)
	m.Collect(PowerUp{Type: core.PowerUpSpeedBoost}, later)

	active := m.Active()
	if len(active) != 1 {
		t.Fatalf("Expected a single active effect, got %d", len(active))
	}
	if !active[0].ActivatedAt.Equal(later) {
		t.Errorf("Expected timer reset to %v, got %v", later, active[0].ActivatedAt)
	}

	// The first activation would have expired at 5s
	if expired := m.Update(now.Add(6 * time.Second)); len(expired) != 0 {
		t.Errorf("Expected no expiry, got %v", expired)
	}
}

func TestCollectClearsPending(t *testing.T) {
	m := NewPowerUpManager(NewGrid(10, 10), &fixedRNG{floats: []float64{0.011}})
	p, ok := m.TrySpawn(NewCellSet())
	if !ok {
		t.Fatal("Expected spawn")
	}

	if points := m.Collect(p, testEpoch()); points != 20 {
		t.Errorf("Expected 20 points for invincible, got %d", points)
	}
	if _, pending := m.Pending(); pending {
		t.Error("Expected pending slot cleared")
	}
	if !m.IsInvincible() {
		t.Error("Expected invincible active")
	}
}

func TestPowerUpExpiry(t *testing.T) {
	now := testEpoch()
	m := NewPowerUpManager(NewGrid(10, 10), NewRNG(1))
	m.Collect(PowerUp{Type: core.PowerUpInvincible, Duration: 100 * time.Millisecond}, now)

	active := m.Active()[0]
	if !active.IsActive(now.Add(50 * time.Millisecond)) {
		t.Error("Expected active at 0.05s")
	}

	later := now.Add(200 * time.Millisecond)
	if active.IsActive(later) {
		t.Error("Expected inactive at 0.2s")
	}
	if active.Remaining(later) != 0 {
		t.Errorf("Expected no time remaining, got %v", active.Remaining(later))
	}

	expired := m.Update(later)
	if len(expired) != 1 || expired[0] != core.PowerUpInvincible {
		t.Errorf("Expected invincible to expire, got %v", expired)
	}
	if m.IsInvincible() {
		t.Error("Expected invincible removed from active map")
	}
}

func TestSpeedMultiplierComposes(t *testing.T) {
	now := testEpoch()
	m := NewPowerUpManager(NewGrid(10, 10), NewRNG(1))

	if m.SpeedMultiplier() != 1 {
		t.Errorf("Expected neutral multiplier, got %f", m.SpeedMultiplier())
	}

	m.Collect(PowerUp{Type: core.PowerUpSpeedBoost}, now)
	if m.SpeedMultiplier() != 1.5 {
		t.Errorf("Expected 1.5, got %f", m.SpeedMultiplier())
	}

	m.Collect(PowerUp{Type: core.PowerUpInvincible}, now)
	if m.SpeedMultiplier() != 1.5 {
		t.Errorf("Expected invincible to contribute 1, got %f", m.SpeedMultiplier())
	}

	m.Collect(PowerUp{Type: core.PowerUpSlowMotion}, now)
	if got := m.SpeedMultiplier(); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("Expected 0.75, got %f", got)
	}

	m.Reset()
	if m.SpeedMultiplier() != 1 || len(m.Active()) != 0 {
		t.Error("Expected reset to clear effects")
	}
}

func TestPlaceReplacesPending(t *testing.T) {
	m := NewPowerUpManager(NewGrid(30, 30), &fixedRNG{floats: []float64{0.0}})
	if _, ok := m.TrySpawn(NewCellSet()); !ok {
		t.Fatal("Expected scripted spawn")
	}

	at := core.Cell{X: 8, Y: 1}
	m.Place(PowerUp{Type: core.PowerUpInvincible, Position: at, Active: true})

	p, ok := m.Pending()
	if !ok || p.Type != core.PowerUpInvincible || p.Position != at {
		t.Fatalf("Expected invincible pending at %v, got %+v", at, p)
	}
	if p.Active {
		t.Error("Expected placed power-up inactive until collected")
	}
	if !m.PendingAt(at) {
		t.Errorf("Expected pending at %v", at)
	}
}
