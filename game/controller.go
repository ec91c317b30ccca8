// Package game drives a round through its lifecycle: waiting, countdown, running, paused, game over
package game

import (
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/parameter"
	"github.com/lixenwraith/vi-snake/rules"
)

// Config is the construction-time input of a controller
type Config struct {
	Difficulty   core.Difficulty
	Mode         core.RuleMode
	Seed         uint64
	Width        int
	Height       int
	HighScore    int
	SoundEnabled bool
	MusicEnabled bool
}

// DefaultConfig returns the standard grid with normal difficulty in classic mode
func DefaultConfig() Config {
	return Config{
		Difficulty:   core.DifficultyNormal,
		Mode:         core.ModeClassic,
		Seed:         1,
		Width:        constants.GridWidth,
		Height:       constants.GridHeight,
		SoundEnabled: true,
		MusicEnabled: true,
	}
}

// Controller owns every per-round entity and is driven by Handle and Tick from one goroutine
type Controller struct {
	cfg   Config
	clock *engine.PausableClock
	world *engine.World

	rules     *rules.Rules
	modeState *rules.State
	settings  parameter.DifficultySettings

	state      core.State
	difficulty core.Difficulty
	mode       core.RuleMode
	sound      bool
	music      bool
	quit       bool

	countdown     int
	countdownNext time.Time

	roundID           uuid.UUID
	fps               int
	ticks             uint64
	reachedMaxSpeed   bool
	powerUpsCollected int
	invinciblePass    bool
	cause             core.GameOverCause
	result            *core.RoundSummary

	listeners []Listener
}

// New creates a controller in WAITING with a populated round
func New(cfg Config, source engine.TimeProvider) *Controller {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = constants.GridWidth, constants.GridHeight
	}

	clock := engine.NewPausableClock(source)
	now := clock.Now()

	c := &Controller{
		cfg:        cfg,
		clock:      clock,
		world:      engine.NewWorld(engine.NewGrid(cfg.Width, cfg.Height), engine.NewRNG(cfg.Seed), cfg.HighScore, now),
		state:      core.StateWaiting,
		difficulty: cfg.Difficulty,
		mode:       cfg.Mode,
		sound:      cfg.SoundEnabled,
		music:      cfg.MusicEnabled,
	}
	c.resetRound(now)
	return c
}

// AddListener registers l for side effects, listeners are called in registration order
func (c *Controller) AddListener(l Listener) {
	c.listeners = append(c.listeners, l)
}

// Handle applies one input signal according to the current state
func (c *Controller) Handle(sig core.Signal) {
	if dir, ok := sig.Direction(); ok {
		switch c.state {
		case core.StateWaiting, core.StateCountdown, core.StateRunning:
			c.world.Snake.ChangeDirection(dir)
		}
		return
	}

	switch sig {
	case core.SignalQuit:
		c.quit = true

	case core.SignalStart:
		switch c.state {
		case core.StateWaiting:
			c.startRound(c.clock.Now())
		case core.StateRunning, core.StatePaused:
			c.togglePause()
		}

	case core.SignalPauseToggle:
		c.togglePause()

	case core.SignalRestart:
		if c.state == core.StateGameOver {
			c.resetRound(c.clock.Now())
			c.setState(core.StateWaiting)
		}

	case core.SignalCycleDifficulty:
		c.difficulty = c.difficulty.Next()
		c.notifySettings()
		if c.state != core.StateGameOver {
			c.clock.Resume()
			now := c.clock.Now()
			c.resetRound(now)
			c.enterCountdown(now)
		}

	case core.SignalTogglePortal:
		if c.state != core.StateWaiting && c.state != core.StateGameOver {
			return
		}
		if c.mode == core.ModePortal {
			c.mode = core.ModeClassic
		} else {
			c.mode = core.ModePortal
		}
		c.notifySettings()
		if c.state == core.StateWaiting {
			c.resetRound(c.clock.Now())
		}

	case core.SignalToggleSound:
		c.sound = !c.sound
		c.notifySettings()

	case core.SignalToggleMusic:
		c.music = !c.music
		c.notifySettings()
	}
}

// Tick advances the countdown or runs one gameplay step; other states do not mutate
func (c *Controller) Tick() {
	now := c.clock.Now()
	switch c.state {
	case core.StateCountdown:
		c.advanceCountdown(now)
	case core.StateRunning:
		c.step(now)
	}
}

// step runs the ordered per-tick pipeline of a running round
func (c *Controller) step(now time.Time) {
	w := c.world
	c.ticks++

	// 1. golden apple timeout
	if w.Food.ShouldRespawn(now) {
		w.Food.Spawn(w.OccupiedForFood(), now)
	}

	// 2. movement
	w.Snake.Move(w.Grid, c.rules.Wrap)

	// 3. termination
	out := c.rules.CheckGameOver(c.modeState, w, now)
	if out.PassedObstacle {
		c.invinciblePass = true
	}
	if out.Over {
		c.endRound(out.Cause, now)
		return
	}

	head := w.Snake.Head()

	// 4. food
	if w.Food.At(head) {
		golden := w.Food.Food().Golden
		w.Snake.Grow()
		if golden {
			w.Score.AddGolden()
		} else {
			w.Score.AddFood(now)
		}
		c.rules.OnFood(c.modeState, golden)
		w.Food.Spawn(w.OccupiedForFood(), now)
		c.rampSpeed()

		signals := c.Signals()
		for _, l := range c.listeners {
			l.OnFoodEaten(golden, signals)
		}
	}

	// 5. power-up pickup
	if w.PowerUps.PendingAt(head) {
		p, _ := w.PowerUps.Pending()
		w.Score.AddPoints(w.PowerUps.Collect(p, now))
		c.powerUpsCollected++
		for _, l := range c.listeners {
			l.OnPowerUpCollected(p.Type)
		}
	}

	// 6. power-up spawn
	if _, pending := w.PowerUps.Pending(); !pending {
		w.PowerUps.TrySpawn(w.OccupiedForPowerUp())
	}

	// 7. effect expiry
	w.PowerUps.Update(now)

	// 8. mode update
	if out := c.rules.Update(c.modeState, w, now); out.Over {
		c.endRound(out.Cause, now)
	}
}

// rampSpeed raises the tick rate one step every SpeedInterval foods, capped at the preset maximum
func (c *Controller) rampSpeed() {
	eaten := c.world.Score.FoodEaten()
	if eaten%c.settings.SpeedInterval == 0 && c.fps < c.settings.MaxFPS {
		c.fps++
	}
	if c.fps >= c.settings.MaxFPS {
		c.reachedMaxSpeed = true
	}
}

// resetRound rebuilds snake, food, obstacles, score and mode state for the current settings
func (c *Controller) resetRound(now time.Time) {
	c.settings = parameter.Difficulty(c.difficulty)
	c.rules = rules.For(c.mode)

	c.world.Reset(now)
	c.world.Score.SetMultiplier(c.rules.Multiplier)
	placed := c.world.Populate(c.settings.Obstacles, now)
	if placed < c.settings.Obstacles {
		log.Printf("[game] placed %d of %d obstacles", placed, c.settings.Obstacles)
	}
	c.modeState = rules.NewState(c.mode, c.world, now)

	c.roundID = uuid.New()
	c.fps = c.settings.InitialFPS
	c.ticks = 0
	c.reachedMaxSpeed = false
	c.powerUpsCollected = 0
	c.invinciblePass = false
	c.cause = core.CauseNone
	c.countdown = 0
}

// startRound marks the round start and enters RUNNING
// The first food's golden timeout restarts here so WAITING and COUNTDOWN do not consume it
func (c *Controller) startRound(now time.Time) {
	c.world.Score.Reset(now)
	c.world.Food.Restamp(now)
	c.modeState = rules.NewState(c.mode, c.world, now)
	c.setState(core.StateRunning)
}

func (c *Controller) enterCountdown(now time.Time) {
	c.countdown = constants.CountdownStart
	c.countdownNext = now.Add(constants.CountdownStep)
	c.setState(core.StateCountdown)
	for _, l := range c.listeners {
		l.OnCountdown(c.countdown)
	}
}

// advanceCountdown decrements once per elapsed step, a late tick may consume several steps
func (c *Controller) advanceCountdown(now time.Time) {
	for c.countdown > 0 && !now.Before(c.countdownNext) {
		c.countdown--
		c.countdownNext = c.countdownNext.Add(constants.CountdownStep)
		if c.countdown > 0 {
			for _, l := range c.listeners {
				l.OnCountdown(c.countdown)
			}
		}
	}
	if c.countdown == 0 {
		c.startRound(now)
	}
}

func (c *Controller) togglePause() {
	switch c.state {
	case core.StateRunning:
		c.clock.Pause()
		c.setState(core.StatePaused)
	case core.StatePaused:
		c.clock.Resume()
		c.setState(core.StateRunning)
	}
}

func (c *Controller) endRound(cause core.GameOverCause, now time.Time) {
	c.cause = cause
	c.world.Score.EndGame(now)

	summary := c.summary(now)
	c.result = &summary
	c.setState(core.StateGameOver)

	signals := c.Signals()
	for _, l := range c.listeners {
		l.OnGameOver(summary, signals)
	}
}

func (c *Controller) summary(now time.Time) core.RoundSummary {
	s := c.world.Score
	return core.RoundSummary{
		RoundID:        c.roundID.String(),
		Difficulty:     c.difficulty,
		Mode:           c.mode,
		Cause:          c.cause,
		Score:          s.Score(),
		HighScore:      s.HighScore(),
		NewHighScore:   s.IsNewHighScore(),
		FoodEaten:      s.FoodEaten(),
		GoldenEaten:    s.GoldenEaten(),
		PowerUps:       c.powerUpsCollected,
		SnakeLength:    c.world.Snake.Len(),
		PlayTime:       s.PlayTime(now),
		MaxFPS:         c.fps,
		ReachedMax:     c.reachedMaxSpeed,
		InvinciblePass: c.invinciblePass,
	}
}

// roundStarted reports whether round timers are running, false before the first RUNNING tick
func (c *Controller) roundStarted() bool {
	return c.state != core.StateWaiting && c.state != core.StateCountdown
}

func (c *Controller) setState(to core.State) {
	from := c.state
	if from == to {
		return
	}
	c.state = to
	for _, l := range c.listeners {
		l.OnStateChange(from, to)
	}
}

func (c *Controller) notifySettings() {
	s := c.Settings()
	for _, l := range c.listeners {
		l.OnSettingsChanged(s)
	}
}

// Signals returns the achievement counters of the current round
func (c *Controller) Signals() core.Signals {
	s := c.world.Score
	now := c.clock.Now()
	sig := core.Signals{
		FoodEaten:         s.FoodEaten(),
		SnakeLength:       c.world.Snake.Len(),
		Score:             s.Score(),
		Mode:              c.mode,
		GoldenApples:      s.GoldenEaten(),
		PowerUpsCollected: c.powerUpsCollected,
		ReachedMaxSpeed:   c.reachedMaxSpeed,
		InvinciblePass:    c.invinciblePass,
	}
	switch c.mode {
	case core.ModeSurvival:
		sig.SurvivalTime = s.PlayTime(now)
	case core.ModeTimeAttack:
		sig.TimeAttackScore = s.Score()
	}
	return sig
}

// Result returns the summary of the last finished round
// Panics when called before any round reached GAME_OVER
func (c *Controller) Result() core.RoundSummary {
	if c.result == nil {
		panic("game: Result called before a round ended")
	}
	return *c.result
}

// TickInterval returns the delay until the next Tick: the effective tick rate while
// running, the idle frame interval otherwise
func (c *Controller) TickInterval() time.Duration {
	if c.state != core.StateRunning {
		return constants.IdleFrameInterval
	}
	rate := float64(c.fps) * c.world.PowerUps.SpeedMultiplier()
	if rate <= 0 {
		return constants.IdleFrameInterval
	}
	return time.Duration(float64(time.Second) / rate)
}

// Settings returns the current user toggles
func (c *Controller) Settings() core.Settings {
	return core.Settings{
		Difficulty:   c.difficulty,
		Mode:         c.mode,
		SoundEnabled: c.sound,
		MusicEnabled: c.music,
	}
}

// State returns the lifecycle state
func (c *Controller) State() core.State { return c.state }

// Done reports whether a quit signal was received
func (c *Controller) Done() bool { return c.quit }

// FPS returns the base tick rate before power-up scaling
func (c *Controller) FPS() int { return c.fps }

// Seed returns the RNG seed of the controller
func (c *Controller) Seed() uint64 { return c.cfg.Seed }

// RoundID identifies the current round
func (c *Controller) RoundID() string { return c.roundID.String() }

// Now returns game time
func (c *Controller) Now() time.Time { return c.clock.Now() }
