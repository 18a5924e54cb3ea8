package config

import (
	"testing"
	"time"
)

// fakeFS is an in-memory FileSystem for loader tests.
type fakeFS struct {
	files map[string]bool
}

func (f *fakeFS) Exists(path string) bool { return f.files[path] }
func (f *fakeFS) LoadEnv(path string) error {
	return nil
}

func TestConfig_ApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.GapThreshold != 1.0 {
		t.Errorf("expected gap threshold 1.0, got %v", cfg.GapThreshold)
	}
	if cfg.HistoryLimit != 50 {
		t.Errorf("expected history limit 50, got %d", cfg.HistoryLimit)
	}
	if cfg.DebounceWindow != 300*time.Millisecond {
		t.Errorf("expected debounce 300ms, got %v", cfg.DebounceWindow)
	}
	if cfg.Grouping.PauseThreshold != 1.2 {
		t.Errorf("expected grouping defaults applied, got %v", cfg.Grouping.PauseThreshold)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected logging defaults applied, got %q", cfg.Logging.Level)
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected default config to validate, got %v", err)
	}

	bad := Default()
	bad.GapThreshold = -1
	if err := bad.Validate(); err == nil {
		t.Error("expected error for negative gap threshold")
	}

	badHist := Default()
	badHist.HistoryLimit = 0
	badHist.Grouping.ApplyDefaults()
	if err := badHist.Validate(); err == nil {
		t.Error("expected error for zero history limit")
	}
}

func TestLoad_NoFilesUsesDefaults(t *testing.T) {
	var cfg Config
	err := Load("transcriptkit", &cfg, WithFileSystem(&fakeFS{files: map[string]bool{}}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HistoryLimit != 50 || cfg.GapThreshold != 1.0 {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_ExplicitMissingConfigFileIgnored(t *testing.T) {
	var cfg Config
	err := Load("transcriptkit", &cfg,
		WithFileSystem(&fakeFS{files: map[string]bool{}}),
		WithConfigFile("/nope/config.yml"))
	if err != nil {
		t.Fatalf("unexpected error for missing explicit file: %v", err)
	}
}
