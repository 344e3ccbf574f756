// Package parse turns raw wire lines into typed messages and back.
// This is an infrastructure adapter: it knows JSON and the registry,
// never the stream. It keeps two decode flavors with one
// classification core: Decode for callers that want an error, Classify
// for stream loops that must keep going no matter what arrives.
//
// The package never logs. Every skipped record is described by a
// ParseIssue and handed back to the caller; narration policy lives
// with whoever owns the stream.
package parse

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/zacjones93/script-kit-next-sub004/pkg/kit/messages"
	"github.com/zacjones93/script-kit-next-sub004/pkg/kit/ports"
	"github.com/zacjones93/script-kit-next-sub004/pkg/kiterrs"
)

// Codec decodes and encodes wire records against one registry.
type Codec struct {
	registry *Registry
}

// Verify interface compliance at compile time.
var (
	_ ports.Decoder = (*Codec)(nil)
	_ ports.Encoder = (*Codec)(nil)
)

// NewCodec creates a codec over the given registry.
func NewCodec(registry *Registry) *Codec {
	return &Codec{registry: registry}
}

// NewStandardCodec creates a codec over the full standard vocabulary.
func NewStandardCodec() *Codec {
	return NewCodec(NewRegistry())
}

// Registry returns the codec's registry.
func (c *Codec) Registry() *Registry {
	return c.registry
}

// Decode is the strict flavor: one typed message or one error. The
// error is always a *kiterrs.DecodeError whose code mirrors the
// graceful path's classification.
func (c *Codec) Decode(raw []byte) (messages.Message, error) {
	msg, derr := c.decode(raw)
	if derr != nil {
		return nil, derr
	}

	return msg, nil
}

// Classify is the graceful flavor: a typed message or a ParseIssue,
// never an error and never a panic, whatever bytes arrive. Exactly one
// of the results is non-nil.
func (c *Codec) Classify(raw []byte) (messages.Message, *ParseIssue) {
	msg, derr := c.decode(raw)
	if derr == nil {
		return msg, nil
	}

	var kind IssueKind
	switch derr.Code() {
	case kiterrs.ErrCodeNotJSON:
		kind = IssueParseError
	case kiterrs.ErrCodeMissingType:
		kind = IssueMissingType
	case kiterrs.ErrCodeUnknownType:
		kind = IssueUnknownType
	default:
		kind = IssueInvalidPayload
	}

	return nil, newIssue(kind, derr.MessageType(), derr.Unwrap(), raw)
}

// Encode serializes a message to its wire line, without framing.
func (c *Codec) Encode(m messages.Message) ([]byte, error) {
	return messages.Marshal(m)
}

// decode is the single classification core. The record is parsed once:
// gjson walks the raw bytes to validate syntax and pull the
// discriminator, the registry decides known from unknown before any
// typed work happens, and only then does the one typed projection run.
func (c *Codec) decode(raw []byte) (messages.Message, *kiterrs.DecodeError) {
	if !gjson.ValidBytes(raw) {
		return nil, kiterrs.NewDecodeError(
			kiterrs.ErrCodeNotJSON,
			"record is not valid JSON",
			fmt.Errorf("invalid JSON in %d-byte record", len(raw)),
		)
	}

	disc := gjson.GetBytes(raw, "type")
	if disc.Type != gjson.String {
		return nil, kiterrs.NewDecodeError(
			kiterrs.ErrCodeMissingType,
			"record has no string type field",
			nil,
		)
	}

	factory, ok := c.registry.Lookup(disc.Str)
	if !ok {
		return nil, kiterrs.NewDecodeError(
			kiterrs.ErrCodeUnknownType,
			"unrecognized message type",
			nil,
		).WithMessageType(disc.Str)
	}

	msg := factory()
	if err := json.Unmarshal(raw, msg); err != nil {
		return nil, kiterrs.NewDecodeError(
			kiterrs.ErrCodeInvalidPayload,
			"payload does not match message type",
			err,
		).WithMessageType(disc.Str)
	}

	if v, ok := msg.(messages.Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, kiterrs.NewDecodeError(
				kiterrs.ErrCodeInvalidPayload,
				"payload is missing required fields",
				err,
			).WithMessageType(disc.Str)
		}
	}

	return msg, nil
}
