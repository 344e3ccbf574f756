package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// startWatcher runs a watcher over path and returns its reload stream.
func startWatcher(t *testing.T, path string) <-chan *Config {
	t.Helper()

	reloads := make(chan *Config, 4)
	w, err := NewWatcher(path, func(cfg *Config) { reloads <- cfg })
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	t.Cleanup(func() {
		cancel()
		_ = w.Stop()
	})

	return reloads
}

func awaitReload(t *testing.T, reloads <-chan *Config) *Config {
	t.Helper()

	select {
	case cfg := <-reloads:
		return cfg
	case <-time.After(5 * time.Second):
		t.Fatal("no reload within 5s")

		return nil
	}
}

func TestWatcherReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kitwire.yaml")
	writeFile(t, path, "log-level: info\n")

	reloads := startWatcher(t, path)

	writeFile(t, path, "log-level: debug\n")

	if cfg := awaitReload(t, reloads); cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
}

func TestWatcherSkipsUnchangedContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kitwire.yaml")
	writeFile(t, path, "log-level: info\n")

	reloads := startWatcher(t, path)

	writeFile(t, path, "log-level: debug\n")
	if cfg := awaitReload(t, reloads); cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}

	// A byte-identical rewrite must not surface; the next reload seen
	// is the genuinely new content.
	writeFile(t, path, "log-level: debug\n")
	writeFile(t, path, "log-level: warn\n")

	if cfg := awaitReload(t, reloads); cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "warn")
	}
}

func TestWatcherKeepsWatchingAfterBadContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kitwire.yaml")
	writeFile(t, path, "log-level: info\n")

	reloads := startWatcher(t, path)

	writeFile(t, path, "log-level: [broken\n")
	writeFile(t, path, "log-level: error\n")

	if cfg := awaitReload(t, reloads); cfg.LogLevel != "error" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "error")
	}
}

func TestWatcherSurvivesAtomicReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kitwire.yaml")
	writeFile(t, path, "log-level: info\n")

	reloads := startWatcher(t, path)

	tmp := filepath.Join(dir, "kitwire.yaml.tmp")
	writeFile(t, tmp, "log-level: trace\n")
	if err := os.Rename(tmp, path); err != nil {
		t.Fatalf("rename failed: %v", err)
	}

	if cfg := awaitReload(t, reloads); cfg.LogLevel != "trace" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "trace")
	}
}
