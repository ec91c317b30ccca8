package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS leaderboard (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		score INTEGER NOT NULL,
		difficulty TEXT NOT NULL,
		mode TEXT NOT NULL,
		created_at INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS global_stats (
		id INTEGER PRIMARY KEY,
		total_playtime_ms INTEGER DEFAULT 0,
		total_games INTEGER DEFAULT 0,
		total_food_eaten INTEGER DEFAULT 0,
		total_golden_apples INTEGER DEFAULT 0,
		total_powerups INTEGER DEFAULT 0,
		best_score INTEGER DEFAULT 0,
		longest_snake INTEGER DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS difficulty_highscores (
		difficulty TEXT PRIMARY KEY,
		highscore INTEGER DEFAULT 0,
		achieved_at INTEGER
	)`,
	`CREATE TABLE IF NOT EXISTS mode_highscores (
		mode TEXT PRIMARY KEY,
		highscore INTEGER DEFAULT 0,
		achieved_at INTEGER
	)`,
	`CREATE TABLE IF NOT EXISTS survival_records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		survival_ms INTEGER NOT NULL,
		score INTEGER NOT NULL,
		achieved_at INTEGER NOT NULL
	)`,
	`INSERT OR IGNORE INTO global_stats (id) VALUES (1)`,
}

// DB is the SQLite database behind the leaderboard and statistics
type DB struct {
	conn *sql.DB
	now  func() time.Time
}

// OpenDB opens or creates the database at path and applies the schema
func OpenDB(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// Single writer, sqlite serializes anyway
	conn.SetMaxOpenConns(1)

	for _, q := range schema {
		if _, err := conn.Exec(q); err != nil {
			conn.Close()
			return nil, fmt.Errorf("apply schema: %w", err)
		}
	}
	return &DB{conn: conn, now: time.Now}, nil
}

// Close releases the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// Leaderboard returns the leaderboard view of the database
func (db *DB) Leaderboard() *Leaderboard {
	return &Leaderboard{db: db}
}

// Stats returns the statistics view of the database
func (db *DB) Stats() *Stats {
	return &Stats{db: db}
}
