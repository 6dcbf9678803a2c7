package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/entropy/internal/progression"
)

func newTestProgress(t *testing.T, content *string) *ProgressFile {
	t.Helper()
	path := filepath.Join(t.TempDir(), "progress.json")
	if content != nil {
		if err := os.WriteFile(path, []byte(*content), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}
	p, err := NewProgressFile(path, nil)
	if err != nil {
		t.Fatalf("NewProgressFile: %v", err)
	}
	return p
}

func strp(s string) *string { return &s }

func assertEmptyProgress(t *testing.T, r progression.Record) {
	t.Helper()
	if len(r.Scores()) != 0 {
		t.Errorf("expected empty progress, got %v", r.Scores())
	}
	if !r.Unlocked(1) {
		t.Error("level 1 must be unlocked")
	}
	for n := 2; n <= 10; n++ {
		if r.Unlocked(n) {
			t.Errorf("level %d unlocked on empty progress", n)
		}
	}
}

func TestProgressLoadTolerant(t *testing.T) {
	tests := []struct {
		name      string
		content   *string
		malformed bool
	}{
		{"absent", nil, false},
		{"empty", strp(""), false},
		{"whitespace", strp("  \n\t"), false},
		{"truncated", strp(`{"level_scores": {"1": 3, "2"`), true},
		{"garbage", strp("not json at all"), true},
		{"wrong shape", strp(`{"level_scores": [1, 2, 3]}`), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestProgress(t, tt.content)

			r, err := p.Load()

			if tt.malformed {
				if !errors.Is(err, ErrMalformedProgress) {
					t.Errorf("Load() error = %v, want ErrMalformedProgress", err)
				}
			} else if err != nil {
				t.Errorf("Load() error = %v", err)
			}
			assertEmptyProgress(t, r)
		})
	}
}

func TestProgressLoadDropsInvalidEntries(t *testing.T) {
	p := newTestProgress(t, strp(`{"level_scores": {"1": 3, "2": 1, "x": 2, "11": 3, "3": 7}, "unlocked_levels": [1, 2, 3]}`))

	r, err := p.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := r.Scores(); !reflect.DeepEqual(got, map[int]int{1: 3, 2: 1}) {
		t.Errorf("Scores() = %v", got)
	}
	if !r.Unlocked(3) || r.Unlocked(4) {
		t.Error("unlock state should be derived from scores, not unlocked_levels")
	}
}

func TestProgressLoadKeepsScoresPastDamagedFields(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    map[int]int
	}{
		{"unlocked_levels not a list", `{"level_scores": {"1": 3}, "unlocked_levels": "x"}`, map[int]int{1: 3}},
		{"unlocked_levels of strings", `{"level_scores": {"1": 3, "2": 2}, "unlocked_levels": ["a"]}`, map[int]int{1: 3, 2: 2}},
		{"one score not a number", `{"level_scores": {"1": 3, "2": "two"}}`, map[int]int{1: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestProgress(t, strp(tt.content))

			r, err := p.Load()
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if got := r.Scores(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Scores() = %v, want %v", got, tt.want)
			}
			if best := r.Best(1); best != 3 {
				t.Errorf("Best(1) = %d, want 3", best)
			}
		})
	}
}

func TestProgressSaveRoundTrip(t *testing.T) {
	p := newTestProgress(t, nil)

	var r progression.Record
	r.Merge(1, 3)
	r.Merge(2, 2)

	if err := p.Save(r); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := p.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(got.Scores(), r.Scores()) {
		t.Errorf("Load() = %v, want %v", got.Scores(), r.Scores())
	}
}

func TestProgressFileFormat(t *testing.T) {
	p := newTestProgress(t, nil)

	r := progression.NewRecord(map[int]int{1: 2, 2: 0})
	if err := p.Save(r); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(p.Path())
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	var raw struct {
		LevelScores    map[string]int `json:"level_scores"`
		UnlockedLevels []int          `json:"unlocked_levels"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("saved file is not valid JSON: %v", err)
	}
	if !reflect.DeepEqual(raw.LevelScores, map[string]int{"1": 2, "2": 0}) {
		t.Errorf("level_scores = %v", raw.LevelScores)
	}
	if !reflect.DeepEqual(raw.UnlockedLevels, []int{1, 2}) {
		t.Errorf("unlocked_levels = %v", raw.UnlockedLevels)
	}

	entries, err := os.ReadDir(filepath.Dir(p.Path()))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the progress file, found %d entries", len(entries))
	}
}

func TestProgressSaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "progress.json")
	p, err := NewProgressFile(path, nil)
	if err != nil {
		t.Fatal(err)
	}

	if err := p.Save(progression.NewRecord(map[int]int{1: 1})); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("progress file not created: %v", err)
	}
}
