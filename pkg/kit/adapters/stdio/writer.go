package stdio

import (
	"bufio"
	"io"
	"sync"

	"github.com/zacjones93/script-kit-next-sub004/pkg/kit/messages"
	"github.com/zacjones93/script-kit-next-sub004/pkg/kit/ports"
	"github.com/zacjones93/script-kit-next-sub004/pkg/kiterrs"
)

// Writer frames messages onto a byte stream, one line each. Writes are
// flushed per message so an interactive peer sees each record as soon
// as it is sent. The mutex covers incidental sharing; sustained
// concurrent producers should funnel through one goroutine instead.
type Writer struct {
	mu sync.Mutex
	w  *bufio.Writer
}

// Verify interface compliance at compile time.
var _ ports.MessageWriter = (*Writer)(nil)

// NewWriter wraps dst with a message writer.
func NewWriter(dst io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(dst)}
}

// Write encodes m, appends the newline terminator, and flushes.
func (w *Writer) Write(m messages.Message) error {
	b, err := messages.Marshal(m)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := w.w.Write(b); err != nil {
		return kiterrs.NewWireError(kiterrs.ErrCodeWriteFailed, "writing record", err)
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return kiterrs.NewWireError(kiterrs.ErrCodeWriteFailed, "writing terminator", err)
	}

	return w.flushLocked()
}

// Flush pushes any buffered bytes to the underlying stream.
func (w *Writer) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.flushLocked()
}

func (w *Writer) flushLocked() error {
	if err := w.w.Flush(); err != nil {
		return kiterrs.NewWireError(kiterrs.ErrCodeWriteFailed, "flushing stream", err)
	}

	return nil
}
