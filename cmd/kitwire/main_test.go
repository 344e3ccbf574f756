package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zacjones93/script-kit-next-sub004/internal/config"
)

func writeStream(t *testing.T, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "stream.ndjson")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600); err != nil {
		t.Fatalf("writing stream: %v", err)
	}

	return path
}

func TestDecodeCleanStream(t *testing.T) {
	path := writeStream(t,
		`{"type":"beep"}`,
		`{"type":"show"}`,
	)

	var out bytes.Buffer
	cmd := &DecodeCmd{Path: path, out: &out}
	if err := cmd.Run(config.Default()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("printed %d lines, want 2: %q", len(lines), out.String())
	}
	if !strings.Contains(lines[0], `"type":"beep"`) {
		t.Errorf("first line = %q, want a beep record", lines[0])
	}
	if !strings.Contains(lines[1], `"type":"show"`) {
		t.Errorf("second line = %q, want a show record", lines[1])
	}
}

func TestDecodeSkipsUndecodableRecords(t *testing.T) {
	path := writeStream(t,
		"not json at all",
		`{"type":"beep"}`,
		`{"type":"show"}`,
	)

	var out bytes.Buffer
	cmd := &DecodeCmd{Path: path, out: &out}
	err := cmd.Run(config.Default())
	if err == nil {
		t.Fatal("Run succeeded on a stream with undecodable records")
	}
	if !strings.Contains(err.Error(), "1 undecodable") {
		t.Errorf("error = %q, want it to count 1 undecodable record", err)
	}

	// Skipping must not suppress the decodable records around the bad one.
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("printed %d lines, want 2: %q", len(lines), out.String())
	}
}

func TestDecodeStrictStopsAtFirstFailure(t *testing.T) {
	path := writeStream(t,
		`{"type":"select","id":"1"}`,
		`{"type":"beep"}`,
	)

	var out bytes.Buffer
	cmd := &DecodeCmd{Path: path, Strict: true, out: &out}
	err := cmd.Run(config.Default())
	if err == nil {
		t.Fatal("strict Run succeeded on an invalid record")
	}
	if !strings.Contains(err.Error(), "line 1") {
		t.Errorf("error = %q, want the failing line number", err)
	}
	if out.Len() != 0 {
		t.Errorf("strict mode printed %q before failing", out.String())
	}
}

func TestDecodeStrictFromConfig(t *testing.T) {
	path := writeStream(t,
		"garbage",
		`{"type":"beep"}`,
	)

	cfg := config.Default()
	cfg.Strict = true

	var out bytes.Buffer
	cmd := &DecodeCmd{Path: path, out: &out}
	if err := cmd.Run(cfg); err == nil {
		t.Fatal("Run ignored strict mode from config")
	}
}

func TestDecodeTable(t *testing.T) {
	path := writeStream(t,
		`{"type":"setInput","id":"p-1","input":"hello"}`,
		`{"type":"beep"}`,
	)

	var out bytes.Buffer
	cmd := &DecodeCmd{Path: path, Table: true, out: &out}
	if err := cmd.Run(config.Default()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("printed %d lines, want 2: %q", len(lines), out.String())
	}
	if !strings.Contains(lines[0], "setInput") || !strings.Contains(lines[0], "p-1") {
		t.Errorf("first row = %q, want type and id columns", lines[0])
	}
	if !strings.Contains(lines[1], "beep") || !strings.Contains(lines[1], "-") {
		t.Errorf("second row = %q, want a placeholder id", lines[1])
	}
}

func TestDecodeMissingFile(t *testing.T) {
	cmd := &DecodeCmd{Path: filepath.Join(t.TempDir(), "absent.ndjson")}
	if err := cmd.Run(config.Default()); err == nil {
		t.Fatal("Run succeeded on a missing file")
	}
}

func TestCheckCleanStream(t *testing.T) {
	path := writeStream(t,
		`{"type":"beep"}`,
		`{"type":"show"}`,
	)

	var out bytes.Buffer
	cmd := &CheckCmd{Path: path, out: &out}
	if err := cmd.Run(config.Default()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := out.String(); got != "ok: 2 messages\n" {
		t.Errorf("output = %q, want %q", got, "ok: 2 messages\n")
	}
}

func TestCheckReportsLineNumber(t *testing.T) {
	path := writeStream(t,
		`{"type":"beep"}`,
		`{"type":"select","id":"1"}`,
		`{"type":"show"}`,
	)

	var out bytes.Buffer
	cmd := &CheckCmd{Path: path, out: &out}
	err := cmd.Run(config.Default())
	if err == nil {
		t.Fatal("Run succeeded on an invalid record")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error = %q, want the failing line number", err)
	}
}

func TestIDForms(t *testing.T) {
	tests := []struct {
		name string
		cmd  IDCmd
		want string
	}{
		{"slug only", IDCmd{Text: "Red Apple!", Index: -1}, "red-apple"},
		{"indexed", IDCmd{Text: "Red Apple!", Kind: "choice", Index: 2}, "choice:2:red-apple"},
		{"named", IDCmd{Text: "Red Apple!", Kind: "action", Index: -1}, "action:red-apple"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			tt.cmd.out = &out
			if err := tt.cmd.Run(); err != nil {
				t.Fatalf("Run: %v", err)
			}
			if got := strings.TrimSuffix(out.String(), "\n"); got != tt.want {
				t.Errorf("id = %q, want %q", got, tt.want)
			}
		})
	}
}
