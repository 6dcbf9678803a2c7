package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	if got, want := base(), DefaultConfig(); got != want {
		t.Errorf("embedded defaults differ from DefaultConfig():\n got  %+v\n want %+v", got, want)
	}
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadCustomPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("physics:\n  gravity: 1.2\nplayer:\n  lives: 5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Physics.Gravity != 1.2 {
		t.Errorf("gravity = %v, expected 1.2", cfg.Physics.Gravity)
	}
	if cfg.Player.Lives != 5 {
		t.Errorf("lives = %d, expected 5", cfg.Player.Lives)
	}
	// Untouched keys keep their defaults
	if cfg.Repair.MaxGap != 180 {
		t.Errorf("max_gap = %v, expected default 180", cfg.Repair.MaxGap)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("physics:\n  gravity: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() of invalid values = %v, expected ErrInvalid", err)
	}
}

func TestLoadSearchPath(t *testing.T) {
	writeFile := func(t *testing.T, path, content string) {
		t.Helper()
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		name    string
		user    string
		local   string
		wantErr bool
		lives   int
	}{
		{"nothing found", "", "", false, DefaultConfig().Player.Lives},
		{"local file", "", "player:\n  lives: 4\n", false, 4},
		{"user file wins", "player:\n  lives: 6\n", "player:\n  lives: 4\n", false, 6},
		{"invalid local file", "", "physics:\n  gravity: -1\n", true, 0},
		{"invalid user file", "physics:\n  gravity: -1\n", "player:\n  lives: 4\n", true, 0},
		{"malformed user file", "physics: [oops", "", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			work := t.TempDir()
			t.Setenv("HOME", home)
			t.Chdir(work)
			if tt.user != "" {
				writeFile(t, filepath.Join(home, ".entropy", "config.yaml"), tt.user)
			}
			if tt.local != "" {
				writeFile(t, filepath.Join(work, "configs", "entropy.yaml"), tt.local)
			}

			cfg, err := Load("")

			if tt.wantErr {
				if err == nil {
					t.Fatalf("Load() = %+v, should report the broken file", cfg)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			if cfg.Player.Lives != tt.lives {
				t.Errorf("lives = %d, want %d", cfg.Player.Lives, tt.lives)
			}
		})
	}
}

func TestDerivedValues(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.World.FloorY(); got != 670 {
		t.Errorf("FloorY() = %v, expected 670", got)
	}
	if got := cfg.MinPlatformWidth(); got != 90 {
		t.Errorf("MinPlatformWidth() = %v, expected 90", got)
	}
	cfg.Player.Size = 100
	if got := cfg.MinPlatformWidth(); got != 120 {
		t.Errorf("MinPlatformWidth() with big player = %v, expected 120", got)
	}
}
