package kit

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/zacjones93/script-kit-next-sub004/pkg/kit/messages"
	"github.com/zacjones93/script-kit-next-sub004/pkg/kiterrs"
)

// promptEventBuffer bounds how many undrained events a prompt holds.
// Non-terminal events beyond it are dropped; terminal events always
// land.
const promptEventBuffer = 16

// Prompt is the script-side handle for one open prompt. Events carries
// the user's interactions in arrival order; the channel closes after a
// terminal event (submit, escape, abandon) or when the prompt is
// replaced or the session ends.
//
// Use either Events or Wait, not both; Wait drains the channel.
type Prompt struct {
	id     string
	client *Client
	events chan messages.Message

	mu      sync.Mutex
	done    bool
	outcome messages.Message
	err     error
}

// ID returns the prompt correlation identifier.
func (p *Prompt) ID() string {
	return p.id
}

// Events returns the channel of events for this prompt.
func (p *Prompt) Events() <-chan messages.Message {
	return p.events
}

// Wait blocks until the prompt resolves and returns the submitted
// value. Escape, abandon, replacement, and session end surface as
// session errors distinguishable by code.
func (p *Prompt) Wait(ctx context.Context) (messages.JSONValue, error) {
	for {
		select {
		case msg, ok := <-p.events:
			if !ok {
				return p.result()
			}

			switch m := msg.(type) {
			case *messages.Submit:
				return m.Value, nil
			case *messages.Escape:
				return nil, p.escaped()
			case *messages.Abandon:
				return nil, p.abandoned()
			default:
				// Input and focus events are advisory.
			}
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// SetChoices replaces the prompt's choice list. Semantic ids are
// assigned to choices that lack one.
func (p *Prompt) SetChoices(choices []messages.Choice) error {
	messages.AssignSemanticIDs(choices)

	return p.client.Send(messages.NewSetChoices(p.id, choices))
}

// SetActions replaces the prompt's action list. Semantic ids are
// assigned to actions that lack one.
func (p *Prompt) SetActions(actions []messages.ProtocolAction) error {
	messages.AssignActionIDs(actions)

	return p.client.Send(messages.NewSetActions(p.id, actions))
}

// SetInput replaces the text in the input field.
func (p *Prompt) SetInput(input string) error {
	return p.client.Send(&messages.SetInput{
		PromptRef: messages.PromptRef{ID: p.id},
		Input:     input,
	})
}

// SetPlaceholder replaces the placeholder text.
func (p *Prompt) SetPlaceholder(placeholder string) error {
	return p.client.Send(&messages.SetPlaceholder{
		PromptRef:   messages.PromptRef{ID: p.id},
		Placeholder: placeholder,
	})
}

// SetHint replaces the hint line.
func (p *Prompt) SetHint(hint string) error {
	return p.client.Send(&messages.SetHint{
		PromptRef: messages.PromptRef{ID: p.id},
		Hint:      hint,
	})
}

// SetPanel replaces the panel HTML.
func (p *Prompt) SetPanel(html string) error {
	return p.client.Send(&messages.SetPanel{
		PromptRef: messages.PromptRef{ID: p.id},
		HTML:      html,
	})
}

// SetPreview replaces the preview pane HTML.
func (p *Prompt) SetPreview(html string) error {
	return p.client.Send(&messages.SetPreview{
		PromptRef: messages.PromptRef{ID: p.id},
		HTML:      html,
	})
}

// SetFooter replaces the footer text.
func (p *Prompt) SetFooter(footer string) error {
	return p.client.Send(&messages.SetFooter{
		PromptRef: messages.PromptRef{ID: p.id},
		Footer:    footer,
	})
}

// SetProgress updates the progress indicator, 0 to 100.
func (p *Prompt) SetProgress(progress int) error {
	return p.client.Send(&messages.SetProgress{
		PromptRef: messages.PromptRef{ID: p.id},
		Progress:  progress,
	})
}

// SetEnter relabels the enter button.
func (p *Prompt) SetEnter(label string) error {
	return p.client.Send(&messages.SetEnter{
		PromptRef: messages.PromptRef{ID: p.id},
		Label:     label,
	})
}

// deliver hands an inbound event to the handle. Called only from the
// client's read loop.
func (p *Prompt) deliver(msg messages.Message, terminal bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.done {
		return
	}

	if terminal {
		p.done = true
		p.outcome = msg
		select {
		case p.events <- msg:
		default:
		}
		close(p.events)

		return
	}

	select {
	case p.events <- msg:
	default:
		p.client.log.WithFields(logrus.Fields{
			"type":      msg.Type(),
			"prompt_id": p.id,
		}).Warn("prompt event buffer full, dropping event")
	}
}

// fail ends the prompt with an error outcome.
func (p *Prompt) fail(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.done {
		return
	}

	p.done = true
	p.err = err
	close(p.events)
}

// result reports the terminal outcome once the events channel closed.
func (p *Prompt) result() (messages.JSONValue, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.err != nil {
		return nil, p.err
	}

	switch m := p.outcome.(type) {
	case *messages.Submit:
		return m.Value, nil
	case *messages.Escape:
		return nil, p.escaped()
	case *messages.Abandon:
		return nil, p.abandoned()
	}

	return nil, kiterrs.NewSessionError(
		kiterrs.ErrCodeSessionClosed,
		"prompt ended without outcome",
		nil,
	).WithPromptID(p.id)
}

func (p *Prompt) escaped() error {
	return kiterrs.NewSessionError(
		kiterrs.ErrCodePromptEscaped,
		"prompt escaped",
		nil,
	).WithPromptID(p.id)
}

func (p *Prompt) abandoned() error {
	return kiterrs.NewSessionError(
		kiterrs.ErrCodePromptAbandoned,
		"prompt abandoned",
		nil,
	).WithPromptID(p.id)
}

// Prompt opens a prompt and returns its handle. The open's id field is
// overwritten with a freshly generated id, and choices and actions on
// the open get semantic ids assigned. Opening a prompt while another
// is active fails the previous handle with a prompt-replaced error;
// the host shows one prompt at a time.
func (c *Client) Prompt(ctx context.Context, open PromptOpen) (*Prompt, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	normalizeOpen(open)
	id := uuid.New().String()
	open.SetPromptID(id)

	p := &Prompt{
		id:     id,
		client: c,
		events: make(chan messages.Message, promptEventBuffer),
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()

		return nil, kiterrs.NewSessionError(
			kiterrs.ErrCodeSessionClosed,
			"prompt on closed client",
			nil,
		)
	}
	prev := c.active
	c.active = p
	c.mu.Unlock()

	if prev != nil {
		prev.fail(kiterrs.NewSessionError(
			kiterrs.ErrCodePromptReplaced,
			"prompt replaced by a newer open",
			nil,
		).WithPromptID(prev.id))
	}

	if err := c.writer.Write(open); err != nil {
		c.mu.Lock()
		if c.active == p {
			c.active = nil
		}
		c.mu.Unlock()

		return nil, err
	}

	return p, nil
}

// Arg opens an arg prompt and resolves to the submitted text. A JSON
// string value is returned unquoted; other values are returned in
// their wire form.
func (c *Client) Arg(
	ctx context.Context,
	placeholder string,
	choices ...messages.Choice,
) (string, error) {
	open := messages.NewArgPrompt(placeholder)
	open.Choices = choices

	p, err := c.Prompt(ctx, open)
	if err != nil {
		return "", err
	}

	value, err := p.Wait(ctx)
	if err != nil {
		return "", err
	}

	return gjson.ParseBytes(value).String(), nil
}

// normalizeOpen assigns semantic ids to the choice and action lists an
// open carries, so hosts and agents can address entries stably.
func normalizeOpen(open PromptOpen) {
	switch m := open.(type) {
	case *messages.ArgPrompt:
		messages.AssignSemanticIDs(m.Choices)
		messages.AssignActionIDs(m.Actions)
	case *messages.SelectPrompt:
		messages.AssignSemanticIDs(m.Choices)
		messages.AssignActionIDs(m.Actions)
	case *messages.GridPrompt:
		messages.AssignSemanticIDs(m.Choices)
	}
}
