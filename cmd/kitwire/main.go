// Command kitwire inspects and generates script-kit wire traffic.
// It decodes NDJSON streams leniently or strictly, validates them, and
// derives the deterministic identifiers hosts assign to choices.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/zacjones93/script-kit-next-sub004/internal/config"
	"github.com/zacjones93/script-kit-next-sub004/internal/logging"
	"github.com/zacjones93/script-kit-next-sub004/pkg/kit/adapters/parse"
	"github.com/zacjones93/script-kit-next-sub004/pkg/kit/adapters/stdio"
	"github.com/zacjones93/script-kit-next-sub004/pkg/kit/ident"
	"github.com/zacjones93/script-kit-next-sub004/pkg/kit/messages"
)

const defaultConfigPath = "kitwire.yaml"

var cli struct {
	Config  string `help:"Path to the config file." default:"kitwire.yaml"`
	Verbose bool   `short:"v" help:"Enable debug logging."`

	Decode DecodeCmd `cmd:"" help:"Decode an NDJSON stream, skipping undecodable records."`
	Check  CheckCmd  `cmd:"" help:"Validate an NDJSON stream strictly, stopping at the first failure."`
	ID     IDCmd     `cmd:"" name:"id" help:"Derive a slug or semantic identifier from text."`
}

// DecodeCmd reads a protocol stream and reprints every decodable
// record. Undecodable records are logged and counted; a non-empty
// count makes the command fail after the stream ends.
type DecodeCmd struct {
	Path   string `arg:"" optional:"" help:"Stream to read. Reads stdin when omitted or \"-\"."`
	Table  bool   `help:"Print a line/type/id table instead of normalized records."`
	Strict bool   `help:"Stop at the first undecodable record instead of skipping it."`

	out io.Writer
}

// Run decodes the stream. The exit status encodes the outcome: zero
// for a fully decoded stream, non-zero when records were skipped or
// the stream could not be read.
func (c *DecodeCmd) Run(cfg *config.Config) error {
	src, cleanup, err := openStream(c.Path)
	if err != nil {
		return err
	}
	defer cleanup()

	out := c.out
	if out == nil {
		out = os.Stdout
	}

	issues := 0
	reader := stdio.NewReader(src, parse.NewStandardCodec(),
		stdio.WithMaxLineSize(cfg.MaxLineSize),
		stdio.WithIssueHandler(func(issue *parse.ParseIssue) {
			issues++
			log.WithFields(log.Fields{
				"trace_id":     issue.TraceID,
				"kind":         issue.Kind.String(),
				"message_type": issue.MessageType,
				"raw_len":      issue.RawLen,
				"preview":      issue.Preview,
			}).Warn("skipping undecodable record")
		}),
	)

	strict := c.Strict || cfg.Strict

	decoded := 0
	for {
		var msg messages.Message
		if strict {
			msg, err = reader.Next()
		} else {
			msg, err = reader.NextLenient()
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("line %d: %w", reader.Line(), err)
		}

		decoded++
		if err := c.print(out, reader.Line(), msg); err != nil {
			return err
		}
	}

	log.Infof("decoded %d messages, skipped %d records", decoded, issues)
	if issues > 0 {
		return fmt.Errorf("%d undecodable records skipped", issues)
	}

	return nil
}

func (c *DecodeCmd) print(out io.Writer, line int, msg messages.Message) error {
	if c.Table {
		id := messages.CorrelationID(msg)
		if id == "" {
			id = "-"
		}
		_, err := fmt.Fprintf(out, "%-6d %-24s %s\n", line, msg.Type(), id)

		return err
	}

	data, err := messages.Marshal(msg)
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		return err
	}
	_, err = out.Write([]byte{'\n'})

	return err
}

// CheckCmd validates a protocol stream strictly.
type CheckCmd struct {
	Path string `arg:"" optional:"" help:"Stream to read. Reads stdin when omitted or \"-\"."`

	out io.Writer
}

// Run stops at the first record that fails to decode and reports its
// line number.
func (c *CheckCmd) Run(cfg *config.Config) error {
	src, cleanup, err := openStream(c.Path)
	if err != nil {
		return err
	}
	defer cleanup()

	out := c.out
	if out == nil {
		out = os.Stdout
	}

	reader := stdio.NewReader(src, parse.NewStandardCodec(),
		stdio.WithMaxLineSize(cfg.MaxLineSize))

	checked := 0
	for {
		_, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("line %d: %w", reader.Line(), err)
		}
		checked++
	}

	_, err = fmt.Fprintf(out, "ok: %d messages\n", checked)

	return err
}

// IDCmd derives identifiers the way hosts assign them to listed
// choices and actions.
type IDCmd struct {
	Text  string `arg:"" help:"Text to derive the identifier from."`
	Kind  string `help:"Identifier kind prefix, for example choice or action."`
	Index int    `default:"-1" help:"Position in the list. Negative derives a name-only identifier."`

	out io.Writer
}

// Run prints the identifier.
func (c *IDCmd) Run() error {
	out := c.out
	if out == nil {
		out = os.Stdout
	}

	var id string
	switch {
	case c.Kind == "":
		id = ident.Slug(c.Text)
	case c.Index >= 0:
		id = ident.MakeID(c.Kind, c.Index, c.Text)
	default:
		id = ident.MakeNamedID(c.Kind, c.Text)
	}

	_, err := fmt.Fprintln(out, id)

	return err
}

// openStream resolves the input argument to a reader. "-" and empty
// both mean stdin, matching the usual filter convention.
func openStream(path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return os.Stdin, func() {}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	return f, func() { _ = f.Close() }, nil
}

// loadDotEnv loads environment variables from .env if present.
func loadDotEnv() {
	wd, err := os.Getwd()
	if err != nil {
		return
	}
	if err := godotenv.Load(filepath.Join(wd, ".env")); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.WithError(err).Warn("failed to load .env file")
		}
	}
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("kitwire"),
		kong.Description("Inspect and generate script-kit wire protocol streams."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	loadDotEnv()

	cfg, err := config.LoadOptional(cli.Config, cli.Config == defaultConfigPath)
	ctx.FatalIfErrorf(err)

	level := cfg.LogLevel
	if cli.Verbose {
		level = "debug"
	}
	ctx.FatalIfErrorf(logging.Configure(logging.Options{
		Level:     level,
		ToFile:    cfg.LoggingToFile,
		Dir:       cfg.LogDir,
		MaxSizeMB: cfg.LogsMaxSizeMB,
	}))

	err = ctx.Run(cfg)
	ctx.FatalIfErrorf(err)
}
