package parse

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// PreviewLimit caps how much of an offending raw record a ParseIssue
// carries. Records can embed base64 screenshots or clipboard dumps;
// diagnostics must never replay those at full size.
const PreviewLimit = 200

// traceIDLength sizes issue trace ids. Eight characters fit the log
// formatter's trace column.
const traceIDLength = 8

// IssueKind classifies why a record on the graceful path produced no
// message.
type IssueKind int

const (
	// IssueMissingType means the record had no usable string
	// discriminator. The payload is unrecoverable.
	IssueMissingType IssueKind = iota
	// IssueUnknownType means a well-formed envelope named a
	// discriminator this peer does not know. Expected whenever one
	// side is upgraded before the other; always safe to skip.
	IssueUnknownType
	// IssueInvalidPayload means a known discriminator arrived with
	// malformed fields. This is a sender bug, not a version skew, so
	// readers surface it prominently.
	IssueInvalidPayload
	// IssueParseError means the line was not JSON at all, which
	// usually points at a framing bug or a corrupted stream.
	IssueParseError
)

// String returns the kind's name for logs.
func (k IssueKind) String() string {
	switch k {
	case IssueMissingType:
		return "missing_type"
	case IssueUnknownType:
		return "unknown_type"
	case IssueInvalidPayload:
		return "invalid_payload"
	case IssueParseError:
		return "parse_error"
	default:
		return "unknown"
	}
}

// IssueHandler consumes one skipped-record report. Handlers own all
// narration policy; the decode path itself never logs.
type IssueHandler func(*ParseIssue)

// ParseIssue describes one skipped record on the graceful decode path.
// TraceID is freshly generated per issue so log lines about the same
// record can be tied together; it is unrelated to protocol request
// ids.
type ParseIssue struct {
	TraceID     string
	Kind        IssueKind
	MessageType string
	Err         error
	Preview     string
	RawLen      int
}

// newIssue builds an issue for raw, clipping the preview.
func newIssue(kind IssueKind, messageType string, err error, raw []byte) *ParseIssue {
	return &ParseIssue{
		TraceID:     gonanoid.Must(traceIDLength),
		Kind:        kind,
		MessageType: messageType,
		Err:         err,
		Preview:     clipPreview(raw),
		RawLen:      len(raw),
	}
}

// clipPreview bounds raw to PreviewLimit bytes for diagnostics.
func clipPreview(raw []byte) string {
	if len(raw) <= PreviewLimit {
		return string(raw)
	}

	return string(raw[:PreviewLimit])
}
