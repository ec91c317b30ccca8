package engine

import (
	"time"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/parameter"
)

// PowerUp is a time-boxed effect, pending on the grid until collected
type PowerUp struct {
	Type        core.PowerUpType `json:"type"`
	Position    core.Cell        `json:"position"`
	Active      bool             `json:"active"`
	ActivatedAt time.Time        `json:"-"`
	Duration    time.Duration    `json:"duration"`
}

// IsActive reports whether the effect is collected and within its duration
func (p PowerUp) IsActive(now time.Time) bool {
	return p.Active && now.Sub(p.ActivatedAt) < p.Duration
}

// Remaining returns the time left on an active effect, zero once expired
func (p PowerUp) Remaining(now time.Time) time.Duration {
	if !p.Active {
		return 0
	}
	return max(p.Duration-now.Sub(p.ActivatedAt), 0)
}

// PowerUpManager owns the pending power-up and the active effects map
type PowerUpManager struct {
	grid  Grid
	rng   RNG
	table []parameter.PowerUpDef

	pending *PowerUp
	active  map[core.PowerUpType]PowerUp
}

// NewPowerUpManager creates a manager with the default power-up table
func NewPowerUpManager(g Grid, rng RNG) *PowerUpManager {
	return &PowerUpManager{
		grid:   g,
		rng:    rng,
		table:  parameter.PowerUps(),
		active: make(map[core.PowerUpType]PowerUp),
	}
}

// TrySpawn draws once against the cumulative probability table and on a hit places a
// pending power-up on a uniform free cell; no-op while one is already pending
func (m *PowerUpManager) TrySpawn(occupied CellSet) (PowerUp, bool) {
	if m.pending != nil {
		return PowerUp{}, false
	}

	roll := m.rng.Float64()
	cumulative := 0.0
	for _, def := range m.table {
		cumulative += def.Probability
		if roll >= cumulative {
			continue
		}

		free := m.grid.FreeCells(occupied)
		if len(free) == 0 {
			return PowerUp{}, false
		}
		p := PowerUp{
			Type:     def.Type,
			Position: free[m.rng.Intn(len(free))],
			Duration: def.Duration,
		}
		m.pending = &p
		return p, true
	}
	return PowerUp{}, false
}

// Pending returns the uncollected power-up, if any
func (m *PowerUpManager) Pending() (PowerUp, bool) {
	if m.pending == nil {
		return PowerUp{}, false
	}
	return *m.pending, true
}

// Place makes p the pending power-up, replacing any uncollected one
func (m *PowerUpManager) Place(p PowerUp) {
	p.Active = false
	m.pending = &p
}

// PendingAt reports whether the pending power-up sits on c
func (m *PowerUpManager) PendingAt(c core.Cell) bool {
	return m.pending != nil && m.pending.Position == c
}

// Collect activates p, replacing any active effect of the same type, clears the pending
// slot and returns the type's point value
func (m *PowerUpManager) Collect(p PowerUp, now time.Time) int {
	def := parameter.PowerUp(p.Type)
	if p.Duration == 0 {
		p.Duration = def.Duration
	}
	p.Active = true
	p.ActivatedAt = now

	m.active[p.Type] = p
	m.pending = nil
	return def.Points
}

// Update removes expired effects and returns their types in table order
func (m *PowerUpManager) Update(now time.Time) []core.PowerUpType {
	var expired []core.PowerUpType
	for t := core.PowerUpType(0); t < core.PowerUpCount; t++ {
		p, ok := m.active[t]
		if ok && !p.IsActive(now) {
			delete(m.active, t)
			expired = append(expired, t)
		}
	}
	return expired
}

// IsActive reports whether an effect of type t is in the active map
func (m *PowerUpManager) IsActive(t core.PowerUpType) bool {
	_, ok := m.active[t]
	return ok
}

// IsInvincible reports whether invincibility is active
func (m *PowerUpManager) IsInvincible() bool {
	return m.IsActive(core.PowerUpInvincible)
}

// SpeedMultiplier returns the product of the speed factors of all active effects
func (m *PowerUpManager) SpeedMultiplier() float64 {
	mult := 1.0
	for t := range m.active {
		if f := parameter.PowerUp(t).SpeedMultiplier; f > 0 {
			mult *= f
		}
	}
	return mult
}

// Active returns the active effects in table order
func (m *PowerUpManager) Active() []PowerUp {
	out := make([]PowerUp, 0, len(m.active))
	for t := core.PowerUpType(0); t < core.PowerUpCount; t++ {
		if p, ok := m.active[t]; ok {
			out = append(out, p)
		}
	}
	return out
}

// Reset drops the pending power-up and all active effects
func (m *PowerUpManager) Reset() {
	m.pending = nil
	clear(m.active)
}
