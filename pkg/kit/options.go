package kit

import (
	"github.com/sirupsen/logrus"

	"github.com/zacjones93/script-kit-next-sub004/pkg/kit/messages"
)

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithLogger sets the logger that receives skipped-record issues and
// unclaimed-message reports.
func WithLogger(log *logrus.Logger) ClientOption {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithMaxLineSize caps the size of a single inbound record in bytes.
func WithMaxLineSize(n int) ClientOption {
	return func(c *Client) {
		if n > 0 {
			c.maxLineSize = n
		}
	}
}

// WithStateHandler installs a callback invoked for every appState push
// from the host. The latest state is also available via State.
func WithStateHandler(h func(messages.AppState)) ClientOption {
	return func(c *Client) {
		c.onState = h
	}
}

// HostOption configures a Host.
type HostOption func(*Host)

// WithHostLogger sets the logger that receives skipped-record issues
// and unclaimed-message reports.
func WithHostLogger(log *logrus.Logger) HostOption {
	return func(h *Host) {
		if log != nil {
			h.log = log
		}
	}
}

// WithHostMaxLineSize caps the size of a single inbound record in
// bytes.
func WithHostMaxLineSize(n int) HostOption {
	return func(h *Host) {
		if n > 0 {
			h.maxLineSize = n
		}
	}
}

// WithHandlers installs the command handlers. Requests whose handler
// field is nil are answered with a commandError of code "unsupported".
func WithHandlers(handlers Handlers) HostOption {
	return func(h *Host) {
		h.handlers = handlers
	}
}

// WithPromptHandler installs the callback that receives prompt opens,
// mutations, and prompt events arriving from scripts.
func WithPromptHandler(fn func(messages.Message)) HostOption {
	return func(h *Host) {
		h.onPrompt = fn
	}
}

// WithSystemHandler installs the callback that receives fire-and-forget
// system messages arriving from scripts.
func WithSystemHandler(fn func(messages.Message)) HostOption {
	return func(h *Host) {
		h.onSystem = fn
	}
}
