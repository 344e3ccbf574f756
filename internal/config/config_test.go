package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/zacjones93/script-kit-next-sub004/pkg/kit/adapters/stdio"
	"github.com/zacjones93/script-kit-next-sub004/pkg/kiterrs"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func TestLoadAppliesDefaultsForAbsentKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kitwire.yaml")
	writeFile(t, path, "log-level: debug\nstrict: true\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.LogLevel != "debug" || !cfg.Strict {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.LogDir != "logs" {
		t.Errorf("LogDir = %q, want default %q", cfg.LogDir, "logs")
	}
	if cfg.MaxLineSize != stdio.DefaultMaxLineSize {
		t.Errorf("MaxLineSize = %d, want default %d", cfg.MaxLineSize, stdio.DefaultMaxLineSize)
	}
}

func TestLoadParsesKebabCaseKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kitwire.yaml")
	writeFile(t, path,
		"logging-to-file: true\nlog-dir: /tmp/wire-logs\nlogs-max-size-mb: 25\nmax-line-size: 1024\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !cfg.LoggingToFile || cfg.LogDir != "/tmp/wire-logs" {
		t.Errorf("logging fields wrong: %+v", cfg)
	}
	if cfg.LogsMaxSizeMB != 25 || cfg.MaxLineSize != 1024 {
		t.Errorf("size fields wrong: %+v", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")

	_, err := Load(path)
	if !kiterrs.IsCode(err, kiterrs.ErrCodeConfigRead) {
		t.Errorf("expected config_read, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("cause does not unwrap to os.ErrNotExist: %v", err)
	}
}

func TestLoadOptionalMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")

	cfg, err := LoadOptional(path, true)
	if err != nil {
		t.Fatalf("LoadOptional failed: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected defaults, got %+v", cfg)
	}

	if _, err := LoadOptional(path, false); err == nil {
		t.Error("expected an error when the file is required")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kitwire.yaml")
	writeFile(t, path, "log-level: [broken\n")

	_, err := Load(path)
	if !kiterrs.IsCode(err, kiterrs.ErrCodeConfigInvalid) {
		t.Errorf("expected config_invalid, got %v", err)
	}
}

func TestValidateBounds(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}

	bad := Default()
	bad.MaxLineSize = 0
	if err := bad.Validate(); !kiterrs.IsCode(err, kiterrs.ErrCodeConfigInvalid) {
		t.Errorf("zero max-line-size accepted: %v", err)
	}

	bad = Default()
	bad.LogsMaxSizeMB = -1
	if err := bad.Validate(); !kiterrs.IsCode(err, kiterrs.ErrCodeConfigInvalid) {
		t.Errorf("negative logs-max-size-mb accepted: %v", err)
	}
}
