package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type highScoreFile struct {
	HighScore int `json:"high_score"`
}

// HighScoreStore persists the single best score as {"high_score": n}
type HighScoreStore struct {
	path string
}

// NewHighScoreStore returns a store backed by the JSON file at path
func NewHighScoreStore(path string) *HighScoreStore {
	return &HighScoreStore{path: path}
}

// Load returns the stored high score, 0 when the file is missing or unreadable
func (s *HighScoreStore) Load() int {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return 0
	}
	var f highScoreFile
	if err := json.Unmarshal(data, &f); err != nil {
		return 0
	}
	return max(f.HighScore, 0)
}

// Save writes score unconditionally
func (s *HighScoreStore) Save(score int) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create high score dir: %w", err)
	}
	data, err := json.Marshal(highScoreFile{HighScore: score})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

// Update saves score when it beats the stored value, reports whether it did
func (s *HighScoreStore) Update(score int) (bool, error) {
	if score <= s.Load() {
		return false, nil
	}
	return true, s.Save(score)
}
