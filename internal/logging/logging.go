// Package logging configures the process-wide logrus instance for the
// binaries in this repo. Output defaults to stderr so stdout stays
// free for protocol streams; Configure can redirect it to a rotating
// file instead.
package logging

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	setupOnce sync.Once
	writerMu  sync.Mutex
	logWriter *lumberjack.Logger
)

// defaultLogName is the rotating file inside the log directory.
const defaultLogName = "kitwire.log"

// tracePlaceholder fills the trace column for entries outside any
// skipped-record trace.
const tracePlaceholder = "--------"

// fieldOrder defines the display order for common log fields. Fields
// outside this list are not printed; trace_id has its own column.
var fieldOrder = []string{
	"kind", "message_type", "command", "request_id", "prompt_id",
	"tool", "line", "raw_len", "error", "preview",
}

// Formatter renders one entry per line in fixed columns.
// Format: [2026-08-26 10:14:04] [a1b2c3d4] [warn ] [reader.go:42] skipping undecodable record kind=parse_error
type Formatter struct{}

// Format renders a single log entry.
func (f *Formatter) Format(entry *log.Entry) ([]byte, error) {
	var buffer *bytes.Buffer
	if entry.Buffer != nil {
		buffer = entry.Buffer
	} else {
		buffer = &bytes.Buffer{}
	}

	timestamp := entry.Time.Format("2006-01-02 15:04:05")
	message := strings.TrimRight(entry.Message, "\r\n")

	trace := tracePlaceholder
	if id, ok := entry.Data["trace_id"].(string); ok && id != "" {
		trace = id
	}

	level := entry.Level.String()
	if level == "warning" {
		level = "warn"
	}
	levelStr := fmt.Sprintf("%-5s", level)

	var fieldsStr string
	if len(entry.Data) > 0 {
		var fields []string
		for _, k := range fieldOrder {
			if v, ok := entry.Data[k]; ok {
				fields = append(fields, fmt.Sprintf("%s=%v", k, v))
			}
		}
		if len(fields) > 0 {
			fieldsStr = " " + strings.Join(fields, " ")
		}
	}

	var formatted string
	if entry.Caller != nil {
		formatted = fmt.Sprintf("[%s] [%s] [%s] [%s:%d] %s%s\n",
			timestamp, trace, levelStr,
			filepath.Base(entry.Caller.File), entry.Caller.Line,
			message, fieldsStr)
	} else {
		formatted = fmt.Sprintf("[%s] [%s] [%s] %s%s\n",
			timestamp, trace, levelStr, message, fieldsStr)
	}
	buffer.WriteString(formatted)

	return buffer.Bytes(), nil
}

// Setup configures the shared logrus instance. It is safe to call
// multiple times; initialization happens only once.
func Setup() {
	setupOnce.Do(func() {
		log.SetOutput(os.Stderr)
		log.SetReportCaller(true)
		log.SetFormatter(&Formatter{})
		log.RegisterExitHandler(Close)
	})
}

// Options pick the global log destination and verbosity.
type Options struct {
	// Level is a logrus level name. Empty means info.
	Level string
	// ToFile redirects output to a rotating file under Dir.
	ToFile bool
	// Dir is the log directory. Empty means "logs".
	Dir string
	// MaxSizeMB is the rotate threshold. Zero means 10.
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// Configure switches the global log destination between a rotating
// file and stderr. Safe to call again on config reload.
func Configure(opts Options) error {
	Setup()

	level := log.InfoLevel
	if opts.Level != "" {
		parsed, err := log.ParseLevel(opts.Level)
		if err != nil {
			return fmt.Errorf("logging: unknown level %q: %w", opts.Level, err)
		}
		level = parsed
	}
	log.SetLevel(level)

	writerMu.Lock()
	defer writerMu.Unlock()

	if !opts.ToFile {
		if logWriter != nil {
			_ = logWriter.Close()
			logWriter = nil
		}
		log.SetOutput(os.Stderr)

		return nil
	}

	dir := opts.Dir
	if dir == "" {
		dir = "logs"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("logging: creating log directory: %w", err)
	}

	if logWriter != nil {
		_ = logWriter.Close()
	}

	maxSize := opts.MaxSizeMB
	if maxSize <= 0 {
		maxSize = 10
	}
	logWriter = &lumberjack.Logger{
		Filename:   filepath.Join(dir, defaultLogName),
		MaxSize:    maxSize,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		Compress:   opts.Compress,
	}
	log.SetOutput(logWriter)

	return nil
}

// Close releases the rotating writer if one is active.
func Close() {
	writerMu.Lock()
	defer writerMu.Unlock()

	if logWriter != nil {
		_ = logWriter.Close()
		logWriter = nil
	}
}
