package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/replay"
	"github.com/lixenwraith/vi-snake/session"
	"github.com/lixenwraith/vi-snake/spectate"
	"github.com/lixenwraith/vi-snake/store"
)

var (
	debugFlag      = flag.Bool("debug", false, "Write logs to logs/vi-snake.log")
	seedFlag       = flag.Uint64("seed", 0, "RNG seed, 0 derives one from the clock")
	dataFlag       = flag.String("data", "", "Data directory (default ~/.vi-snake)")
	difficultyFlag = flag.String("difficulty", "", "Difficulty: easy, normal, hard (default from config)")
	modeFlag       = flag.String("mode", "", "Mode: classic, portal, survival, time_attack (default from config)")
	nameFlag       = flag.String("name", "", "Leaderboard name (default from config)")
	recordFlag     = flag.String("record", "", "Record input to a replay file")
	replayFlag     = flag.String("replay", "", "Re-run a replay file and print the result")
	spectateFlag   = flag.String("spectate", "", "Serve a websocket spectator feed on this address")
	muteFlag       = flag.Bool("mute", false, "Disable all audio")
)

// noticeDuration is how long an achievement notice stays in the HUD
const noticeDuration = 4 * time.Second

func main() {
	// Panic Recovery: restore the terminal even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if *replayFlag != "" {
		if err := runReplay(*replayFlag, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "replay: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dataDir := resolveDataDir(*dataFlag)
	settings := store.OpenConfig(filepath.Join(dataDir, constants.ConfigFileName))

	cfg, err := buildConfig(settings, *difficultyFlag, *modeFlag, *seedFlag)
	if err != nil {
		return err
	}
	if *nameFlag != "" {
		if err := settings.SetPlayerName(*nameFlag); err != nil {
			log.Printf("[store] save player name: %v", err)
		}
	}

	highScores := store.NewHighScoreStore(filepath.Join(dataDir, constants.HighScoreFileName))
	cfg.HighScore = highScores.Load()

	stores := session.Stores{
		Config:       settings,
		HighScore:    highScores,
		Achievements: store.OpenAchievements(filepath.Join(dataDir, constants.AchievementsFileName)),
	}
	// Leaderboard and stats are optional, the game runs without the database
	if db, err := store.OpenDB(filepath.Join(dataDir, constants.DatabaseFileName)); err != nil {
		log.Printf("[store] database unavailable: %v", err)
	} else {
		defer db.Close()
		stores.Leaderboard = db.Leaderboard()
		stores.Stats = db.Stats()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashScreen(screen)
	defer func() {
		core.SetCrashScreen(nil)
		screen.Fini()
	}()

	// Every controller call within one loop iteration sees the same instant
	frameClock := engine.NewManualClock(time.Now())
	ctrl := game.New(cfg, frameClock)
	log.Printf("round %s seed %d %s/%s", ctrl.RoundID(), cfg.Seed, cfg.Difficulty, cfg.Mode)

	tracker := session.NewTracker(stores, settings.PlayerName())
	ctrl.AddListener(tracker)

	if !*muteFlag {
		sound := audio.NewEngine(cfg.SoundEnabled, cfg.MusicEnabled)
		if err := sound.Start(); err == nil {
			defer sound.Close()
		}
		ctrl.AddListener(sound)
	}

	var rec *replay.Recorder
	if *recordFlag != "" {
		path := *recordFlag
		if filepath.Ext(path) == "" {
			path += constants.ReplayFileExt
		}
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create recording: %w", err)
		}
		defer f.Close()
		if rec, err = replay.NewRecorder(f, frameClock, cfg, ctrl.RoundID()); err != nil {
			return err
		}
		defer func() {
			if err := rec.Err(); err != nil {
				log.Printf("[replay] %v", err)
			}
			log.Printf("[replay] %d events written to %s", rec.Events(), path)
		}()
	}

	var hub *spectate.Hub
	if *spectateFlag != "" {
		hub = spectate.NewHub()
		mux := http.NewServeMux()
		mux.Handle("/ws", hub)
		srv := &http.Server{Addr: *spectateFlag, Handler: mux}
		core.Go(func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("[spectate] serve %s: %v", *spectateFlag, err)
			}
		})
		defer func() {
			hub.Close()
			srv.Close()
		}()
	}

	// Input polling goroutine, closed screens yield nil events
	events := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	keys := input.DefaultKeyTable()
	renderer := render.NewRenderer(screen)
	notices := newNoticeBoard()
	var lastBroadcast time.Time

	timer := time.NewTimer(ctrl.TickInterval())
	defer timer.Stop()

	for !ctrl.Done() {
		select {
		case ev := <-events:
			frameClock.Set(time.Now())
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}
			sig, ok := keys.HandleEvent(ev)
			if !ok {
				break
			}
			if rec != nil {
				rec.Signal(sig)
			}
			ctrl.Handle(sig)

		case <-timer.C:
			frameClock.Set(time.Now())
			if rec != nil {
				rec.Tick()
			}
			ctrl.Tick()
			timer.Reset(ctrl.TickInterval())
		}

		now := time.Now()
		for _, a := range tracker.DrainUnlocked() {
			notices.add("Unlocked: "+a.Name, now)
		}

		snap := ctrl.Snapshot()
		lines := notices.active(now)
		if snap.State == core.StateGameOver && tracker.LastRank() > 0 {
			lines = append(lines, fmt.Sprintf("Leaderboard #%d", tracker.LastRank()))
		}
		renderer.Draw(snap, lines)

		if hub != nil && now.Sub(lastBroadcast) >= constants.SpectatorFrameInterval {
			if err := hub.Broadcast(snap); err != nil {
				log.Printf("[spectate] encode: %v", err)
			}
			lastBroadcast = now
		}
	}
	return nil
}

// buildConfig merges persisted settings with command-line overrides
func buildConfig(settings *store.ConfigStore, difficulty, mode string, seed uint64) (game.Config, error) {
	cfg := game.DefaultConfig()
	cfg.Difficulty = settings.Difficulty()
	cfg.Mode = settings.Mode()
	cfg.SoundEnabled = settings.SoundEnabled()
	cfg.MusicEnabled = settings.MusicEnabled()

	if difficulty != "" {
		d, ok := core.ParseDifficulty(difficulty)
		if !ok {
			return cfg, fmt.Errorf("unknown difficulty %q", difficulty)
		}
		cfg.Difficulty = d
	}
	if mode != "" {
		m, ok := core.ParseRuleMode(mode)
		if !ok {
			return cfg, fmt.Errorf("unknown mode %q", mode)
		}
		cfg.Mode = m
	}

	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	cfg.Seed = seed
	return cfg, nil
}

// resolveDataDir returns dir, or ~/.vi-snake, or .vi-snake when no home directory exists
func resolveDataDir(dir string) string {
	if dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return constants.DataDirName
	}
	return filepath.Join(home, constants.DataDirName)
}

// runReplay re-executes a recording without a terminal and prints how the round ended
func runReplay(path string, w io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	ctrl, h, err := replay.Play(f)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "round %s  seed %d  %s/%s  %dx%d\n", h.RoundID, h.Seed, h.Difficulty, h.Mode, h.Width, h.Height)
	if ctrl.State() != core.StateGameOver {
		snap := ctrl.Snapshot()
		fmt.Fprintf(w, "unfinished  state %s  score %d  length %d\n", snap.State, snap.Score, len(snap.Snake))
		return nil
	}
	r := ctrl.Result()
	fmt.Fprintf(w, "game over  cause %s  score %d  food %d  length %d  time %s\n",
		r.Cause, r.Score, r.FoodEaten, r.SnakeLength, r.PlayTime)
	return nil
}

type notice struct {
	text    string
	expires time.Time
}

// noticeBoard keeps transient HUD messages until they expire
type noticeBoard struct {
	items []notice
}

func newNoticeBoard() *noticeBoard {
	return &noticeBoard{}
}

func (b *noticeBoard) add(text string, now time.Time) {
	b.items = append(b.items, notice{text: text, expires: now.Add(noticeDuration)})
}

// active drops expired notices and returns the remaining texts
func (b *noticeBoard) active(now time.Time) []string {
	kept := b.items[:0]
	var out []string
	for _, n := range b.items {
		if now.Before(n.expires) {
			kept = append(kept, n)
			out = append(out, n.text)
		}
	}
	b.items = kept
	return out
}
