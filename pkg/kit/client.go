package kit

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/zacjones93/script-kit-next-sub004/pkg/kit/adapters/parse"
	"github.com/zacjones93/script-kit-next-sub004/pkg/kit/adapters/stdio"
	"github.com/zacjones93/script-kit-next-sub004/pkg/kit/messages"
	"github.com/zacjones93/script-kit-next-sub004/pkg/kit/ports"
	"github.com/zacjones93/script-kit-next-sub004/pkg/kiterrs"
)

// requestIDFormat yields ids like "req_1_a3f2b4c1".
const requestIDFormat = "req_%d_%s"

// CommandRequest is satisfied by every command-style message, which
// carries its correlation id in the requestId field.
type CommandRequest interface {
	messages.Message
	RequestID() string
	SetRequestID(string)
}

// PromptOpen is satisfied by every prompt-scoped message, which
// carries its correlation id in the id field.
type PromptOpen interface {
	messages.Message
	PromptID() string
	SetPromptID(string)
}

// Client is the script side of a session. It owns the read loop over
// the inbound stream and routes responses and prompt events to the
// calls waiting on them.
//
// The Client drives the reader/writer pair but does not own the
// underlying transport; closing the transport is what unblocks the
// read loop, so callers close it after Close.
type Client struct {
	reader ports.MessageReader
	writer ports.MessageWriter
	log    *logrus.Logger

	maxLineSize int
	onState     func(messages.AppState)

	mu             sync.Mutex
	requestCounter int
	pending        map[string]chan messages.Message
	active         *Prompt
	state          messages.AppState
	closed         bool
	readErr        error

	closeChan chan struct{}
	done      chan struct{}
}

// NewClient creates a session client over the given streams and starts
// its read loop. For a script process r and w are typically stdin and
// stdout; a wsstream.Conn serves as both for socket transports.
func NewClient(r io.Reader, w io.Writer, opts ...ClientOption) *Client {
	c := &Client{
		log:         logrus.New(),
		maxLineSize: stdio.DefaultMaxLineSize,
		pending:     make(map[string]chan messages.Message),
		closeChan:   make(chan struct{}),
		done:        make(chan struct{}),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.reader = stdio.NewReader(r, parse.NewStandardCodec(),
		stdio.WithMaxLineSize(c.maxLineSize),
		stdio.WithIssueHandler(c.logIssue),
	)
	c.writer = stdio.NewWriter(w)

	go c.readLoop()

	return c
}

// Done is closed when the read loop exits, either at end of stream or
// on a terminal wire error.
func (c *Client) Done() <-chan struct{} {
	return c.done
}

// Err returns the terminal read error, or nil for a clean end of
// stream. It is meaningful once Done is closed.
func (c *Client) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.readErr
}

// State returns the most recent appState pushed by the host.
func (c *Client) State() messages.AppState {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Send writes a message without waiting for anything to come back.
func (c *Client) Send(m messages.Message) error {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()

	if closed {
		return kiterrs.NewSessionError(
			kiterrs.ErrCodeSessionClosed,
			"send on closed client",
			nil,
		)
	}

	return c.writer.Write(m)
}

// Request sends a command request and waits for the response carrying
// the same requestId. A commandError answer is converted into a
// *kiterrs.CommandError. The request's id field is overwritten with a
// freshly generated id.
func (c *Client) Request(
	ctx context.Context,
	req CommandRequest,
) (messages.Message, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()

		return nil, kiterrs.NewSessionError(
			kiterrs.ErrCodeSessionClosed,
			"request on closed client",
			nil,
		)
	}
	c.requestCounter++
	counter := c.requestCounter
	c.mu.Unlock()

	requestID := fmt.Sprintf(requestIDFormat, counter, uuid.New().String()[:8])
	req.SetRequestID(requestID)

	respChan := make(chan messages.Message, 1)
	c.mu.Lock()
	c.pending[requestID] = respChan
	c.mu.Unlock()

	if err := c.writer.Write(req); err != nil {
		c.mu.Lock()
		delete(c.pending, requestID)
		c.mu.Unlock()

		return nil, err
	}

	select {
	case resp := <-respChan:
		if ce, ok := resp.(*messages.CommandErrorMessage); ok {
			return nil, commandErrToErr(req.Type(), requestID, ce)
		}

		return resp, nil
	case <-ctx.Done():
		c.mu.Lock()
		delete(c.pending, requestID)
		c.mu.Unlock()

		return nil, ctx.Err()
	case <-c.closeChan:
		c.mu.Lock()
		delete(c.pending, requestID)
		c.mu.Unlock()

		return nil, kiterrs.NewSessionError(
			kiterrs.ErrCodeSessionClosed,
			"client closed while waiting for response",
			nil,
		).WithRequestID(requestID)
	case <-c.done:
		c.mu.Lock()
		delete(c.pending, requestID)
		readErr := c.readErr
		c.mu.Unlock()

		return nil, kiterrs.NewSessionError(
			kiterrs.ErrCodeSessionClosed,
			"stream ended while waiting for response",
			readErr,
		).WithRequestID(requestID)
	}
}

// Close ends the session: pending requests and the active prompt fail
// with a session-closed error, and further sends are refused. It does
// not close the underlying streams.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()

		return nil
	}
	c.closed = true
	active := c.active
	c.active = nil
	c.mu.Unlock()

	close(c.closeChan)

	if active != nil {
		active.fail(kiterrs.NewSessionError(
			kiterrs.ErrCodeSessionClosed,
			"client closed",
			nil,
		).WithPromptID(active.id))
	}

	return nil
}

// readLoop pulls decoded messages off the stream until it ends.
func (c *Client) readLoop() {
	for {
		msg, err := c.reader.NextLenient()
		if err != nil {
			c.finish(err)

			return
		}

		c.dispatch(msg)
	}
}

// finish records the loop's terminal condition and fails everything
// still waiting on the stream.
func (c *Client) finish(err error) {
	c.mu.Lock()
	if err != nil && err != io.EOF {
		c.readErr = err
	}
	active := c.active
	c.active = nil
	readErr := c.readErr
	c.mu.Unlock()

	if readErr != nil {
		c.log.WithError(readErr).Error("session read loop failed")
	}

	if active != nil {
		active.fail(kiterrs.NewSessionError(
			kiterrs.ErrCodeSessionClosed,
			"stream ended with prompt open",
			readErr,
		).WithPromptID(active.id))
	}

	close(c.done)
}

// dispatch routes one inbound message to whatever is waiting for it.
// Messages nothing claims are logged and dropped.
func (c *Client) dispatch(msg messages.Message) {
	switch m := msg.(type) {
	case *messages.AppStateUpdate:
		c.mu.Lock()
		c.state = m.State
		handler := c.onState
		c.mu.Unlock()

		if handler != nil {
			handler(m.State)
		}
	case *messages.HostErrorMessage:
		c.log.WithFields(logrus.Fields{
			"code":   m.Err.Code,
			"detail": m.Err.Detail,
		}).Error(m.Err.Message)
	case *messages.Submit, *messages.Escape, *messages.Abandon:
		c.deliverEvent(messages.CorrelationID(msg), msg, true)
	case *messages.Input, *messages.ChoiceFocused, *messages.ActionTriggered:
		c.deliverEvent(messages.CorrelationID(msg), msg, false)
	default:
		if rid := requestIDOf(msg); rid != "" {
			c.deliverResponse(rid, msg)

			return
		}

		c.log.WithFields(logrus.Fields{
			"type":           msg.Type(),
			"correlation_id": messages.CorrelationID(msg),
		}).Warn("unclaimed message")
	}
}

// deliverResponse resolves the pending request the response answers.
func (c *Client) deliverResponse(requestID string, msg messages.Message) {
	c.mu.Lock()
	ch, ok := c.pending[requestID]
	if ok {
		delete(c.pending, requestID)
	}
	c.mu.Unlock()

	if !ok {
		c.log.WithFields(logrus.Fields{
			"type":       msg.Type(),
			"request_id": requestID,
		}).Warn("response with no pending request")

		return
	}

	ch <- msg
}

// deliverEvent hands a prompt event to the active prompt. Terminal
// events (submit, escape, abandon) end the prompt.
func (c *Client) deliverEvent(
	promptID string,
	msg messages.Message,
	terminal bool,
) {
	c.mu.Lock()
	p := c.active
	if p == nil || p.id != promptID {
		c.mu.Unlock()

		c.log.WithFields(logrus.Fields{
			"type":      msg.Type(),
			"prompt_id": promptID,
		}).Warn("event for unknown prompt")

		return
	}
	if terminal {
		c.active = nil
	}
	c.mu.Unlock()

	p.deliver(msg, terminal)
}

// logIssue reports a skipped record to the structured logger. The
// preview is already clipped by the parse layer.
func (c *Client) logIssue(issue *parse.ParseIssue) {
	c.log.WithFields(logrus.Fields{
		"trace_id":     issue.TraceID,
		"kind":         issue.Kind.String(),
		"message_type": issue.MessageType,
		"raw_len":      issue.RawLen,
		"preview":      issue.Preview,
	}).WithError(issue.Err).Warn("skipping undecodable record")
}

// requestIDOf extracts the requestId correlation field, or "".
func requestIDOf(msg messages.Message) string {
	if r, ok := msg.(interface{ RequestID() string }); ok {
		return r.RequestID()
	}

	return ""
}

// commandErrToErr converts a commandError answer into a typed error.
func commandErrToErr(
	command, requestID string,
	ce *messages.CommandErrorMessage,
) error {
	code := kiterrs.ErrCodeCommandFailed
	if ce.Err.Code == "unsupported" {
		code = kiterrs.ErrCodeCommandUnsupported
	}

	err := kiterrs.NewCommandError(code, ce.Err.Message, nil).
		WithCommand(command).
		WithRequestID(requestID)
	if ce.Err.Code != "" {
		err.WithMetadata("host_code", ce.Err.Code)
	}
	if ce.Err.Detail != "" {
		err.WithMetadata("detail", ce.Err.Detail)
	}

	return err
}
