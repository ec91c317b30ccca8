package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
)

// Entry is one leaderboard row
type Entry struct {
	ID         string
	Name       string
	Score      int
	Difficulty core.Difficulty
	Mode       core.RuleMode
	Date       time.Time
}

// Filter narrows Top to one difficulty and/or mode, nil fields match everything
type Filter struct {
	Difficulty *core.Difficulty
	Mode       *core.RuleMode
}

// Leaderboard keeps the best LeaderboardCapacity scores, ties ordered by insertion
type Leaderboard struct {
	db *DB
}

// NormalizeName trims name, substitutes the default for empty names and truncates long ones
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return constants.DefaultPlayerName
	}
	if r := []rune(name); len(r) > constants.LeaderboardNameLimit {
		name = string(r[:constants.LeaderboardNameLimit])
	}
	return name
}

// AddScore inserts an entry and trims the board
// Returns the 1-based rank of the new entry, 0 when it did not make the board
func (l *Leaderboard) AddScore(name string, score int, d core.Difficulty, m core.RuleMode) (int, error) {
	tx, err := l.db.conn.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO leaderboard (id, name, score, difficulty, mode, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), NormalizeName(name), score, d.String(), m.String(), l.db.now().UnixNano(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert score: %w", err)
	}
	seq, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if _, err := tx.Exec(
		`DELETE FROM leaderboard WHERE seq NOT IN (
			SELECT seq FROM leaderboard ORDER BY score DESC, seq ASC LIMIT ?
		)`, constants.LeaderboardCapacity,
	); err != nil {
		return 0, fmt.Errorf("trim leaderboard: %w", err)
	}

	var kept int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM leaderboard WHERE seq = ?`, seq).Scan(&kept); err != nil {
		return 0, err
	}

	rank := 0
	if kept == 1 {
		if err := tx.QueryRow(
			`SELECT COUNT(*) + 1 FROM leaderboard WHERE score > ? OR (score = ? AND seq < ?)`,
			score, score, seq,
		).Scan(&rank); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return rank, nil
}

// Top returns up to limit entries matching f, best first
func (l *Leaderboard) Top(f Filter, limit int) ([]Entry, error) {
	query := `SELECT id, name, score, difficulty, mode, created_at FROM leaderboard`
	var where []string
	var args []any
	if f.Difficulty != nil {
		where = append(where, "difficulty = ?")
		args = append(args, f.Difficulty.String())
	}
	if f.Mode != nil {
		where = append(where, "mode = ?")
		args = append(args, f.Mode.String())
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY score DESC, seq ASC LIMIT ?"
	args = append(args, limit)

	rows, err := l.db.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e          Entry
			difficulty string
			mode       string
			created    int64
		)
		if err := rows.Scan(&e.ID, &e.Name, &e.Score, &difficulty, &mode, &created); err != nil {
			return nil, err
		}
		e.Difficulty, _ = core.ParseDifficulty(difficulty)
		e.Mode, _ = core.ParseRuleMode(mode)
		e.Date = time.Unix(0, created)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Len returns the number of stored entries
func (l *Leaderboard) Len() (int, error) {
	var n int
	err := l.db.conn.QueryRow(`SELECT COUNT(*) FROM leaderboard`).Scan(&n)
	return n, err
}

// IsHighScore reports whether score would enter the board
func (l *Leaderboard) IsHighScore(score int) (bool, error) {
	n, err := l.Len()
	if err != nil {
		return false, err
	}
	if n < constants.LeaderboardCapacity {
		return true, nil
	}

	var lowest int
	if err := l.db.conn.QueryRow(`SELECT MIN(score) FROM leaderboard`).Scan(&lowest); err != nil {
		return false, err
	}
	return score > lowest, nil
}

// Clear removes every entry
func (l *Leaderboard) Clear() error {
	_, err := l.db.conn.Exec(`DELETE FROM leaderboard`)
	return err
}
