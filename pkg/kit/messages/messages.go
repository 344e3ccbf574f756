// Package messages defines the wire vocabulary spoken between the host
// shell and script processes. Every record on the stream is one JSON
// object carrying a "type" discriminator; this package models that as a
// closed tagged union with one struct per message kind, so a variant
// only ever carries the fields that are valid together.
//
// Field names on the wire are lower camelCase. Optional fields holding
// their default are omitted rather than serialized as null; decoders
// apply the documented defaults for anything they do not find.
package messages

import (
	"encoding/json"

	"github.com/tidwall/sjson"

	"github.com/zacjones93/script-kit-next-sub004/pkg/kiterrs"
)

// JSONValue preserves raw JSON for caller-controlled decoding.
type JSONValue = json.RawMessage

// Message is the root interface for all wire messages. Each variant
// implements the unexported marker plus Type, which returns the wire
// discriminator that selects it.
type Message interface {
	// message is a marker method for type safety.
	message()
	// Type returns the wire discriminator string.
	Type() string
}

// Validator is implemented by variants that have required payload
// fields. Decoders call it after unmarshaling; a non-nil result means
// the payload is malformed for its declared type.
type Validator interface {
	Validate() error
}

// PromptRef carries the prompt correlation identifier, named "id" on
// the wire. It is embedded by every prompt-category message and every
// prompt event, tying stream traffic to one long-lived prompt session.
type PromptRef struct {
	ID string `json:"id,omitempty"`
}

// PromptID returns the prompt correlation identifier.
func (r PromptRef) PromptID() string {
	return r.ID
}

// SetPromptID assigns the prompt correlation identifier. The session
// layer calls it once before a message is written; ids never change on
// a message already sent.
func (r *PromptRef) SetPromptID(id string) {
	r.ID = id
}

// RequestRef carries the request correlation identifier, named
// "requestId" on the wire. It is embedded by every command-style
// request and by the response that answers it; the responder echoes
// the initiator's value verbatim.
type RequestRef struct {
	ID string `json:"requestId,omitempty"`
}

// RequestID returns the request correlation identifier.
func (r RequestRef) RequestID() string {
	return r.ID
}

// SetRequestID assigns the request correlation identifier. Initiators
// call it once before sending; responders copy the incoming value
// instead of minting their own.
func (r *RequestRef) SetRequestID(id string) {
	r.ID = id
}

// CorrelationID returns whichever correlation identifier m carries,
// preferring the prompt identifier. Messages outside both correlation
// families return "".
func CorrelationID(m Message) string {
	if p, ok := m.(interface{ PromptID() string }); ok {
		if id := p.PromptID(); id != "" {
			return id
		}
	}

	if r, ok := m.(interface{ RequestID() string }); ok {
		return r.RequestID()
	}

	return ""
}

// Marshal serializes m to its single-line wire form: the variant's own
// fields plus the injected "type" discriminator. The result carries no
// trailing newline; framing belongs to the stream writer.
func Marshal(m Message) ([]byte, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, kiterrs.NewDecodeError(
			kiterrs.ErrCodeEncodeFailed,
			"marshaling message",
			err,
		).WithMessageType(m.Type())
	}

	b, err = sjson.SetBytes(b, "type", m.Type())
	if err != nil {
		return nil, kiterrs.NewDecodeError(
			kiterrs.ErrCodeEncodeFailed,
			"injecting discriminator",
			err,
		).WithMessageType(m.Type())
	}

	return b, nil
}
