package logging

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
)

func TestFormatterColumns(t *testing.T) {
	entry := &log.Entry{
		Time:    time.Date(2026, 8, 26, 10, 14, 4, 0, time.UTC),
		Level:   log.WarnLevel,
		Message: "skipping undecodable record\n",
		Data: log.Fields{
			"trace_id": "a1b2c3d4",
			"kind":     "parse_error",
			"raw_len":  1024,
		},
	}

	out, err := (&Formatter{}).Format(entry)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	want := "[2026-08-26 10:14:04] [a1b2c3d4] [warn ] " +
		"skipping undecodable record kind=parse_error raw_len=1024\n"
	if string(out) != want {
		t.Errorf("formatted line\n got %q\nwant %q", out, want)
	}
}

func TestFormatterPlaceholderOutsideTrace(t *testing.T) {
	entry := &log.Entry{
		Time:    time.Date(2026, 8, 26, 10, 14, 4, 0, time.UTC),
		Level:   log.InfoLevel,
		Message: "listening",
	}

	out, err := (&Formatter{}).Format(entry)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if !strings.Contains(string(out), "[--------]") {
		t.Errorf("missing trace placeholder: %q", out)
	}
}

func TestFormatterOrdersFields(t *testing.T) {
	entry := &log.Entry{
		Time:    time.Date(2026, 8, 26, 10, 14, 4, 0, time.UTC),
		Level:   log.ErrorLevel,
		Message: "command failed",
		Data: log.Fields{
			"error":   errors.New("pasteboard busy"),
			"command": "getSelectedText",
		},
	}

	out, err := (&Formatter{}).Format(entry)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	line := string(out)
	cmdAt := strings.Index(line, "command=getSelectedText")
	errAt := strings.Index(line, "error=pasteboard busy")
	if cmdAt == -1 || errAt == -1 {
		t.Fatalf("missing fields: %q", line)
	}
	if cmdAt > errAt {
		t.Errorf("fields out of order: %q", line)
	}
}

func TestConfigureWritesToFile(t *testing.T) {
	dir := t.TempDir()
	if err := Configure(Options{ToFile: true, Dir: dir}); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}
	t.Cleanup(func() {
		Close()
		_ = Configure(Options{})
	})

	log.WithField("kind", "unknown_type").Warn("skipping undecodable record")

	data, err := os.ReadFile(filepath.Join(dir, defaultLogName))
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "skipping undecodable record") {
		t.Errorf("log file missing message: %q", data)
	}
	if !strings.Contains(string(data), "kind=unknown_type") {
		t.Errorf("log file missing field: %q", data)
	}
}

func TestConfigureRejectsUnknownLevel(t *testing.T) {
	if err := Configure(Options{Level: "noisy"}); err == nil {
		t.Fatal("expected an error for an unknown level")
	}
}
