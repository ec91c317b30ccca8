package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/vi-snake/core"
)

// GlobalStats are lifetime totals across all rounds
type GlobalStats struct {
	Games        int
	PlayTime     time.Duration
	FoodEaten    int
	GoldenApples int
	PowerUps     int
	BestScore    int
	LongestSnake int
}

// SurvivalRecord is one finished survival round
type SurvivalRecord struct {
	Time       time.Duration
	Score      int
	AchievedAt time.Time
}

// Stats records lifetime totals and per-difficulty, per-mode and survival bests
type Stats struct {
	db *DB
}

// RecordGame adds a finished round to the totals
func (s *Stats) RecordGame(r core.RoundSummary) error {
	_, err := s.db.conn.Exec(`
		UPDATE global_stats SET
			total_playtime_ms = total_playtime_ms + ?,
			total_games = total_games + 1,
			total_food_eaten = total_food_eaten + ?,
			total_golden_apples = total_golden_apples + ?,
			total_powerups = total_powerups + ?,
			best_score = MAX(best_score, ?),
			longest_snake = MAX(longest_snake, ?)
		WHERE id = 1`,
		r.PlayTime.Milliseconds(), r.FoodEaten, r.GoldenEaten, r.PowerUps, r.Score, r.SnakeLength,
	)
	if err != nil {
		return fmt.Errorf("record game: %w", err)
	}
	return nil
}

// Global returns the lifetime totals
func (s *Stats) Global() (GlobalStats, error) {
	var (
		g  GlobalStats
		ms int64
	)
	err := s.db.conn.QueryRow(`
		SELECT total_playtime_ms, total_games, total_food_eaten, total_golden_apples,
			total_powerups, best_score, longest_snake
		FROM global_stats WHERE id = 1`,
	).Scan(&ms, &g.Games, &g.FoodEaten, &g.GoldenApples, &g.PowerUps, &g.BestScore, &g.LongestSnake)
	if err != nil {
		return GlobalStats{}, fmt.Errorf("read global stats: %w", err)
	}
	g.PlayTime = time.Duration(ms) * time.Millisecond
	return g, nil
}

// UpdateDifficultyHighScore stores score when it beats the record for d, reports whether it did
func (s *Stats) UpdateDifficultyHighScore(d core.Difficulty, score int) (bool, error) {
	return s.updateBest("difficulty_highscores", "difficulty", d.String(), score)
}

// UpdateModeHighScore stores score when it beats the record for m, reports whether it did
func (s *Stats) UpdateModeHighScore(m core.RuleMode, score int) (bool, error) {
	return s.updateBest("mode_highscores", "mode", m.String(), score)
}

// DifficultyHighScore returns the record for d, 0 when none is stored
func (s *Stats) DifficultyHighScore(d core.Difficulty) (int, error) {
	return s.best("difficulty_highscores", "difficulty", d.String())
}

// ModeHighScore returns the record for m, 0 when none is stored
func (s *Stats) ModeHighScore(m core.RuleMode) (int, error) {
	return s.best("mode_highscores", "mode", m.String())
}

// table and column come from the fixed set above, never from input
func (s *Stats) updateBest(table, column, key string, score int) (bool, error) {
	tx, err := s.db.conn.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	var current int
	err = tx.QueryRow(`SELECT highscore FROM `+table+` WHERE `+column+` = ?`, key).Scan(&current)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return false, fmt.Errorf("read %s: %w", table, err)
	case score <= current:
		return false, nil
	}

	if _, err := tx.Exec(
		`INSERT OR REPLACE INTO `+table+` (`+column+`, highscore, achieved_at) VALUES (?, ?, ?)`,
		key, score, s.db.now().UnixNano(),
	); err != nil {
		return false, fmt.Errorf("write %s: %w", table, err)
	}
	return true, tx.Commit()
}

func (s *Stats) best(table, column, key string) (int, error) {
	var score int
	err := s.db.conn.QueryRow(`SELECT highscore FROM `+table+` WHERE `+column+` = ?`, key).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return score, err
}

// RecordSurvivalTime appends a survival round
func (s *Stats) RecordSurvivalTime(d time.Duration, score int) error {
	_, err := s.db.conn.Exec(
		`INSERT INTO survival_records (survival_ms, score, achieved_at) VALUES (?, ?, ?)`,
		d.Milliseconds(), score, s.db.now().UnixNano(),
	)
	return err
}

// LongestSurvival returns the best survival round, ok is false when none is recorded
func (s *Stats) LongestSurvival() (SurvivalRecord, bool, error) {
	var (
		r      SurvivalRecord
		ms, at int64
	)
	err := s.db.conn.QueryRow(
		`SELECT survival_ms, score, achieved_at FROM survival_records ORDER BY survival_ms DESC, id ASC LIMIT 1`,
	).Scan(&ms, &r.Score, &at)
	if errors.Is(err, sql.ErrNoRows) {
		return SurvivalRecord{}, false, nil
	}
	if err != nil {
		return SurvivalRecord{}, false, err
	}
	r.Time = time.Duration(ms) * time.Millisecond
	r.AchievedAt = time.Unix(0, at)
	return r, true, nil
}

// Reset clears all statistics, the leaderboard is untouched
func (s *Stats) Reset() error {
	tx, err := s.db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, q := range []string{
		`DELETE FROM global_stats`,
		`INSERT INTO global_stats (id) VALUES (1)`,
		`DELETE FROM difficulty_highscores`,
		`DELETE FROM mode_highscores`,
		`DELETE FROM survival_records`,
	} {
		if _, err := tx.Exec(q); err != nil {
			return fmt.Errorf("reset stats: %w", err)
		}
	}
	return tx.Commit()
}
