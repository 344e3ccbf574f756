// Package stdio moves framed protocol lines over plain byte streams.
// One JSON record per line, newline-terminated, blank lines skipped.
// The adapter works against any io.Reader/io.Writer pair, which covers
// pipes to script processes, TCP connections, and the websocket bridge
// alike.
package stdio

import (
	"bufio"
	"bytes"
	"errors"
	"io"

	"github.com/zacjones93/script-kit-next-sub004/pkg/kit/adapters/parse"
	"github.com/zacjones93/script-kit-next-sub004/pkg/kit/messages"
	"github.com/zacjones93/script-kit-next-sub004/pkg/kit/ports"
	"github.com/zacjones93/script-kit-next-sub004/pkg/kiterrs"
)

const (
	// initialBufferSize is the scanner buffer allocated up front and
	// reused for every line.
	initialBufferSize = 64 * 1024

	// DefaultMaxLineSize bounds a single record. Screenshots travel
	// base64-encoded inside one line, so the ceiling is generous.
	DefaultMaxLineSize = 10 * 1024 * 1024
)

// ReaderOption customises Reader construction.
type ReaderOption func(*Reader)

// WithMaxLineSize overrides the per-line byte ceiling.
func WithMaxLineSize(n int) ReaderOption {
	return func(r *Reader) {
		r.maxLineSize = n
	}
}

// WithIssueHandler installs the callback that receives every skipped
// record on the lenient path. All narration policy lives in this one
// handler; without it, issues are dropped silently.
func WithIssueHandler(h parse.IssueHandler) ReaderOption {
	return func(r *Reader) {
		r.onIssue = h
	}
}

// Reader decodes newline-delimited records from a byte stream. It is
// driven by a single goroutine; cancellation is closing the underlying
// source, which surfaces here as an error or io.EOF.
type Reader struct {
	scanner     *bufio.Scanner
	codec       *parse.Codec
	onIssue     parse.IssueHandler
	maxLineSize int
	line        int
}

// Verify interface compliance at compile time.
var _ ports.MessageReader = (*Reader)(nil)

// NewReader wraps src with a line reader decoding through codec.
func NewReader(src io.Reader, codec *parse.Codec, opts ...ReaderOption) *Reader {
	r := &Reader{
		scanner:     bufio.NewScanner(src),
		codec:       codec,
		maxLineSize: DefaultMaxLineSize,
	}

	for _, opt := range opts {
		opt(r)
	}

	initial := initialBufferSize
	if r.maxLineSize < initial {
		initial = r.maxLineSize
	}
	r.scanner.Buffer(make([]byte, initial), r.maxLineSize)

	return r
}

// Next returns the next message, strictly. A record that fails to
// decode returns its error and is consumed, so the reader stays usable
// for the lines after it. End of input is io.EOF.
func (r *Reader) Next() (messages.Message, error) {
	line, err := r.nextLine()
	if err != nil {
		return nil, err
	}

	msg, err := r.codec.Decode(line)
	if err != nil {
		return nil, err
	}

	return msg, nil
}

// NextLenient returns the next decodable message. Records that fail
// classification are reported to the issue handler and skipped; only
// I/O failures and end of input stop the iteration. This is the flavor
// a host serve loop runs on, where one misbehaving script must never
// end the session.
func (r *Reader) NextLenient() (messages.Message, error) {
	for {
		line, err := r.nextLine()
		if err != nil {
			return nil, err
		}

		msg, issue := r.codec.Classify(line)
		if issue != nil {
			if r.onIssue != nil {
				r.onIssue(issue)
			}

			continue
		}

		return msg, nil
	}
}

// Line returns the one-based number of the last line consumed.
func (r *Reader) Line() int {
	return r.line
}

// nextLine scans to the next non-blank line. The loop is explicit so
// arbitrarily long blank runs cost no stack.
func (r *Reader) nextLine() ([]byte, error) {
	for r.scanner.Scan() {
		r.line++

		line := r.scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		return line, nil
	}

	if err := r.scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, kiterrs.NewWireError(
				kiterrs.ErrCodeLineTooLong,
				"record exceeds line size limit",
				err,
			).WithLine(r.line + 1)
		}

		return nil, kiterrs.NewWireError(
			kiterrs.ErrCodeReadFailed,
			"reading stream",
			err,
		).WithLine(r.line + 1)
	}

	return nil, io.EOF
}
