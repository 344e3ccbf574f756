package kit

import (
	"context"
	"encoding/json"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/zacjones93/script-kit-next-sub004/pkg/kit/adapters/parse"
	"github.com/zacjones93/script-kit-next-sub004/pkg/kit/adapters/stdio"
	"github.com/zacjones93/script-kit-next-sub004/pkg/kit/messages"
	"github.com/zacjones93/script-kit-next-sub004/pkg/kit/ports"
	"github.com/zacjones93/script-kit-next-sub004/pkg/kiterrs"
)

// Handlers holds the host's command implementations. A nil field means
// the host does not support that command; requests for it are answered
// with a commandError of code "unsupported".
type Handlers struct {
	WindowBounds          func(ctx context.Context) (messages.WindowBounds, error)
	SetWindowBounds       func(ctx context.Context, bounds messages.WindowBounds) (messages.WindowBounds, error)
	ClipboardHistory      func(ctx context.Context, limit int) ([]messages.ClipboardEntry, error)
	RemoveClipboardEntry  func(ctx context.Context, entryID string) ([]messages.ClipboardEntry, error)
	ClearClipboardHistory func(ctx context.Context) ([]messages.ClipboardEntry, error)
	Screenshot            func(ctx context.Context, displayID int) (*messages.ScreenshotResponse, error)
	ScreensInfo           func(ctx context.Context) ([]messages.ScreenInfo, error)
	RunScriptlet          func(ctx context.Context, scriptlet messages.Scriptlet, args []string) (*messages.ScriptletResult, error)
	MenuBarItems          func(ctx context.Context, appName string) ([]messages.MenuBarItem, error)
	ClickMenuBarItem      func(ctx context.Context, path []string, appName string) error
	SelectedText          func(ctx context.Context) (string, error)
	SetSelectedText       func(ctx context.Context, text string) (string, error)
	MousePosition         func(ctx context.Context) (x int, y int, err error)
	ActiveApp             func(ctx context.Context) (*messages.ActiveAppResponse, error)
}

// Host is the shell side of a session: it serves one script's stream,
// answering command requests and surfacing everything else through
// callbacks. Handlers run concurrently; Serve waits for in-flight
// handlers before returning.
type Host struct {
	reader ports.MessageReader
	writer ports.MessageWriter
	log    *logrus.Logger

	maxLineSize int
	handlers    Handlers
	onPrompt    func(messages.Message)
	onSystem    func(messages.Message)

	wg sync.WaitGroup
}

// NewHost creates a host over the given streams. Nothing is read until
// Serve runs.
func NewHost(r io.Reader, w io.Writer, opts ...HostOption) *Host {
	h := &Host{
		log:         logrus.New(),
		maxLineSize: stdio.DefaultMaxLineSize,
	}

	for _, opt := range opts {
		opt(h)
	}

	h.reader = stdio.NewReader(r, parse.NewStandardCodec(),
		stdio.WithMaxLineSize(h.maxLineSize),
		stdio.WithIssueHandler(h.logIssue),
	)
	h.writer = stdio.NewWriter(w)

	return h
}

// Serve reads the script's stream until it ends. A clean end of stream
// returns nil; a terminal wire error is returned as is. The context
// stops the loop between records and is passed to every handler.
func (h *Host) Serve(ctx context.Context) error {
	defer h.wg.Wait()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		msg, err := h.reader.NextLenient()
		if err != nil {
			if err == io.EOF {
				return nil
			}

			return err
		}

		h.dispatch(ctx, msg)
	}
}

// PushState informs the script of the shell's current state.
func (h *Host) PushState(state messages.AppState) error {
	return h.writer.Write(&messages.AppStateUpdate{State: state})
}

// Submit resolves the script's prompt with a value, as if the user
// submitted it. The value is marshaled to its JSON form.
func (h *Host) Submit(promptID string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return kiterrs.NewDecodeError(
			kiterrs.ErrCodeEncodeFailed,
			"marshaling submit value",
			err,
		)
	}

	return h.writer.Write(messages.NewSubmit(promptID, data))
}

// Escape dismisses the script's prompt, as if the user pressed escape.
func (h *Host) Escape(promptID string) error {
	return h.writer.Write(&messages.Escape{
		PromptRef: messages.PromptRef{ID: promptID},
	})
}

// PushError reports a host-side failure outside any command exchange.
func (h *Host) PushError(code, message string) error {
	return h.writer.Write(&messages.HostErrorMessage{
		Err: messages.ErrorPayload{Code: code, Message: message},
	})
}

// Send writes an arbitrary host-to-script message.
func (h *Host) Send(m messages.Message) error {
	return h.writer.Write(m)
}

// dispatch routes one inbound message. Command requests run their
// handler on a fresh goroutine; everything else is synchronous.
func (h *Host) dispatch(ctx context.Context, msg messages.Message) {
	switch m := msg.(type) {
	case *messages.GetWindowBounds:
		h.respond(ctx, m.RequestID(), m.Type(), func(ctx context.Context) (messages.Message, error) {
			if h.handlers.WindowBounds == nil {
				return nil, h.unsupported(m.Type())
			}
			bounds, err := h.handlers.WindowBounds(ctx)
			if err != nil {
				return nil, err
			}

			return &messages.WindowBoundsResponse{Bounds: bounds}, nil
		})
	case *messages.SetWindowBounds:
		h.respond(ctx, m.RequestID(), m.Type(), func(ctx context.Context) (messages.Message, error) {
			if h.handlers.SetWindowBounds == nil {
				return nil, h.unsupported(m.Type())
			}
			bounds, err := h.handlers.SetWindowBounds(ctx, m.Bounds)
			if err != nil {
				return nil, err
			}

			return &messages.WindowBoundsResponse{Bounds: bounds}, nil
		})
	case *messages.GetClipboardHistory:
		h.respond(ctx, m.RequestID(), m.Type(), func(ctx context.Context) (messages.Message, error) {
			if h.handlers.ClipboardHistory == nil {
				return nil, h.unsupported(m.Type())
			}
			entries, err := h.handlers.ClipboardHistory(ctx, m.Limit)
			if err != nil {
				return nil, err
			}

			return &messages.ClipboardHistoryResponse{Entries: entries}, nil
		})
	case *messages.RemoveClipboardEntry:
		h.respond(ctx, m.RequestID(), m.Type(), func(ctx context.Context) (messages.Message, error) {
			if h.handlers.RemoveClipboardEntry == nil {
				return nil, h.unsupported(m.Type())
			}
			entries, err := h.handlers.RemoveClipboardEntry(ctx, m.EntryID)
			if err != nil {
				return nil, err
			}

			return &messages.ClipboardHistoryResponse{Entries: entries}, nil
		})
	case *messages.ClearClipboardHistory:
		h.respond(ctx, m.RequestID(), m.Type(), func(ctx context.Context) (messages.Message, error) {
			if h.handlers.ClearClipboardHistory == nil {
				return nil, h.unsupported(m.Type())
			}
			entries, err := h.handlers.ClearClipboardHistory(ctx)
			if err != nil {
				return nil, err
			}

			return &messages.ClipboardHistoryResponse{Entries: entries}, nil
		})
	case *messages.CaptureScreenshot:
		h.respond(ctx, m.RequestID(), m.Type(), func(ctx context.Context) (messages.Message, error) {
			if h.handlers.Screenshot == nil {
				return nil, h.unsupported(m.Type())
			}
			shot, err := h.handlers.Screenshot(ctx, m.DisplayID)
			if err != nil {
				return nil, err
			}

			return shot, nil
		})
	case *messages.GetScreensInfo:
		h.respond(ctx, m.RequestID(), m.Type(), func(ctx context.Context) (messages.Message, error) {
			if h.handlers.ScreensInfo == nil {
				return nil, h.unsupported(m.Type())
			}
			screens, err := h.handlers.ScreensInfo(ctx)
			if err != nil {
				return nil, err
			}

			return &messages.ScreensInfoResponse{Screens: screens}, nil
		})
	case *messages.RunScriptlet:
		h.respond(ctx, m.RequestID(), m.Type(), func(ctx context.Context) (messages.Message, error) {
			if h.handlers.RunScriptlet == nil {
				return nil, h.unsupported(m.Type())
			}
			result, err := h.handlers.RunScriptlet(ctx, m.Scriptlet, m.Args)
			if err != nil {
				return nil, err
			}

			return result, nil
		})
	case *messages.GetMenuBarItems:
		h.respond(ctx, m.RequestID(), m.Type(), func(ctx context.Context) (messages.Message, error) {
			if h.handlers.MenuBarItems == nil {
				return nil, h.unsupported(m.Type())
			}
			items, err := h.handlers.MenuBarItems(ctx, m.AppName)
			if err != nil {
				return nil, err
			}

			return &messages.MenuBarItemsResponse{Items: items}, nil
		})
	case *messages.ClickMenuBarItem:
		h.respond(ctx, m.RequestID(), m.Type(), func(ctx context.Context) (messages.Message, error) {
			if h.handlers.ClickMenuBarItem == nil {
				return nil, h.unsupported(m.Type())
			}
			if err := h.handlers.ClickMenuBarItem(ctx, m.Path, m.AppName); err != nil {
				return nil, err
			}

			return &messages.MenuBarClicked{Path: m.Path}, nil
		})
	case *messages.GetSelectedText:
		h.respond(ctx, m.RequestID(), m.Type(), func(ctx context.Context) (messages.Message, error) {
			if h.handlers.SelectedText == nil {
				return nil, h.unsupported(m.Type())
			}
			text, err := h.handlers.SelectedText(ctx)
			if err != nil {
				return nil, err
			}

			return &messages.SelectedTextResponse{Text: text}, nil
		})
	case *messages.SetSelectedText:
		h.respond(ctx, m.RequestID(), m.Type(), func(ctx context.Context) (messages.Message, error) {
			if h.handlers.SetSelectedText == nil {
				return nil, h.unsupported(m.Type())
			}
			text, err := h.handlers.SetSelectedText(ctx, m.Text)
			if err != nil {
				return nil, err
			}

			return &messages.SelectedTextResponse{Text: text}, nil
		})
	case *messages.GetMousePosition:
		h.respond(ctx, m.RequestID(), m.Type(), func(ctx context.Context) (messages.Message, error) {
			if h.handlers.MousePosition == nil {
				return nil, h.unsupported(m.Type())
			}
			x, y, err := h.handlers.MousePosition(ctx)
			if err != nil {
				return nil, err
			}

			return &messages.MousePositionResponse{X: x, Y: y}, nil
		})
	case *messages.GetActiveApp:
		h.respond(ctx, m.RequestID(), m.Type(), func(ctx context.Context) (messages.Message, error) {
			if h.handlers.ActiveApp == nil {
				return nil, h.unsupported(m.Type())
			}
			app, err := h.handlers.ActiveApp(ctx)
			if err != nil {
				return nil, err
			}

			return app, nil
		})
	case *messages.AppStateUpdate, *messages.HostErrorMessage:
		h.log.WithField("type", msg.Type()).Warn("host-bound push from script")
	default:
		h.dispatchUncorrelated(msg)
	}
}

// dispatchUncorrelated routes prompt traffic and system messages to
// their callbacks. Responses arriving at the host answer nothing here
// and are logged.
func (h *Host) dispatchUncorrelated(msg messages.Message) {
	if _, ok := msg.(interface{ PromptID() string }); ok {
		if h.onPrompt != nil {
			h.onPrompt(msg)

			return
		}

		h.log.WithFields(logrus.Fields{
			"type":      msg.Type(),
			"prompt_id": messages.CorrelationID(msg),
		}).Debug("prompt traffic with no handler")

		return
	}

	if rid := requestIDOf(msg); rid != "" {
		h.log.WithFields(logrus.Fields{
			"type":       msg.Type(),
			"request_id": rid,
		}).Warn("response answers nothing")

		return
	}

	if h.onSystem != nil {
		h.onSystem(msg)

		return
	}

	h.log.WithField("type", msg.Type()).Debug("system message with no handler")
}

// respond runs fn and writes its response, or a commandError if it
// failed. The response carries the request's id unchanged.
func (h *Host) respond(
	ctx context.Context,
	requestID, command string,
	fn func(context.Context) (messages.Message, error),
) {
	h.wg.Add(1)

	go func() {
		defer h.wg.Done()

		resp, err := fn(ctx)
		if err != nil {
			resp = h.commandError(requestID, command, err)
		} else if cr, ok := resp.(CommandRequest); ok {
			cr.SetRequestID(requestID)
		}

		if werr := h.writer.Write(resp); werr != nil {
			h.log.WithError(werr).WithFields(logrus.Fields{
				"command":    command,
				"request_id": requestID,
			}).Error("writing command response")
		}
	}()
}

// commandError converts a handler failure into its wire form.
func (h *Host) commandError(
	requestID, command string,
	err error,
) *messages.CommandErrorMessage {
	code := "failed"
	if kiterrs.IsCode(err, kiterrs.ErrCodeCommandUnsupported) {
		code = "unsupported"
	}

	h.log.WithError(err).WithFields(logrus.Fields{
		"command":    command,
		"request_id": requestID,
	}).Warn("command failed")

	return messages.NewCommandError(requestID, code, err.Error())
}

// unsupported reports that no handler covers the command.
func (h *Host) unsupported(command string) error {
	return kiterrs.NewCommandError(
		kiterrs.ErrCodeCommandUnsupported,
		"no handler for "+command,
		nil,
	).WithCommand(command)
}

// logIssue reports a skipped record to the structured logger.
func (h *Host) logIssue(issue *parse.ParseIssue) {
	h.log.WithFields(logrus.Fields{
		"trace_id":     issue.TraceID,
		"kind":         issue.Kind.String(),
		"message_type": issue.MessageType,
		"raw_len":      issue.RawLen,
		"preview":      issue.Preview,
	}).WithError(issue.Err).Warn("skipping undecodable record")
}
