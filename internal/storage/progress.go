package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/entropy/internal/progression"
)

// ErrMalformedProgress is returned by Load when the file cannot be parsed.
// The accompanying record is empty and safe to use.
var ErrMalformedProgress = errors.New("storage: malformed progress file")

// progressData is the layout Save writes. unlocked_levels is derived from
// level_scores and only written for readers that want it precomputed.
type progressData struct {
	LevelScores    map[string]int `json:"level_scores"`
	UnlockedLevels []int          `json:"unlocked_levels"`
}

// storedScores is what Load reads back. unlocked_levels is never read, so a
// damaged copy of it cannot cost the scores, and each score decodes alone.
type storedScores struct {
	LevelScores map[string]json.RawMessage `json:"level_scores"`
}

// ProgressFile keeps the best-stars record in a JSON file.
type ProgressFile struct {
	path   string
	logger *log.Logger
}

// NewProgressFile creates a store for the file at path (~ is expanded).
func NewProgressFile(path string, logger *log.Logger) (*ProgressFile, error) {
	path, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &ProgressFile{path: path, logger: logger}, nil
}

// Path returns the resolved file path.
func (p *ProgressFile) Path() string {
	return p.path
}

// Load reads the record. A missing or empty file is empty progress.
// Unparseable content also yields empty progress, with ErrMalformedProgress.
// Entries for unknown levels or impossible star counts are dropped.
func (p *ProgressFile) Load() (progression.Record, error) {
	data, err := os.ReadFile(p.path)
	if errors.Is(err, os.ErrNotExist) {
		return progression.Record{}, nil
	}
	if err != nil {
		return progression.Record{}, fmt.Errorf("storage: cannot read progress: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return progression.Record{}, nil
	}

	var stored storedScores
	if err := json.Unmarshal(data, &stored); err != nil {
		return progression.Record{}, fmt.Errorf("%w: %v", ErrMalformedProgress, err)
	}

	scores := make(map[int]int, len(stored.LevelScores))
	for key, raw := range stored.LevelScores {
		var stars int
		level, err := strconv.Atoi(key)
		if err == nil {
			err = json.Unmarshal(raw, &stars)
		}
		if err != nil || !progression.ValidEntry(level, stars) {
			p.logger.Warn("dropping progress entry", "level", key, "stars", string(raw))
			continue
		}
		scores[level] = stars
	}
	return progression.NewRecord(scores), nil
}

// Save writes the record atomically: a temp file in the same directory is
// renamed over the old one.
func (p *ProgressFile) Save(r progression.Record) error {
	scores := r.Scores()
	pd := progressData{
		LevelScores:    make(map[string]int, len(scores)),
		UnlockedLevels: r.UnlockedLevels(),
	}
	for level, stars := range scores {
		pd.LevelScores[strconv.Itoa(level)] = stars
	}

	data, err := json.Marshal(pd)
	if err != nil {
		return fmt.Errorf("storage: cannot encode progress: %w", err)
	}

	dir := filepath.Dir(p.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".progress-*")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot write progress: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot write progress: %w", err)
	}
	if err := os.Rename(tmp.Name(), p.path); err != nil {
		return fmt.Errorf("storage: cannot replace progress: %w", err)
	}
	return nil
}

// Ensure ProgressFile can back the progression machine.
var _ progression.ProgressStore = (*ProgressFile)(nil)
