package kiterrs

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorFormatting(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "with cause",
			err:  NewDecodeError(ErrCodeNotJSON, "line is not valid JSON", cause),
			want: "decode: line is not valid JSON: unexpected end of JSON input",
		},
		{
			name: "without cause",
			err:  NewWireError(ErrCodeLineTooLong, "line exceeds limit", nil),
			want: "wire: line exceeds limit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnwrapPreservesCause(t *testing.T) {
	cause := errors.New("broken pipe")
	err := NewWireError(ErrCodeWriteFailed, "write failed", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is did not find the wrapped cause")
	}

	wrapped := fmt.Errorf("sending message: %w", err)

	var werr *WireError
	if !errors.As(wrapped, &werr) {
		t.Fatal("errors.As did not find the WireError through wrapping")
	}
	if werr.Code() != ErrCodeWriteFailed {
		t.Errorf("Code() = %q, want %q", werr.Code(), ErrCodeWriteFailed)
	}
}

func TestMetadataChaining(t *testing.T) {
	err := NewDecodeError(ErrCodeInvalidPayload, "placeholder is required", nil).
		WithMessageType("arg").
		WithField("placeholder").
		WithPreview(`{"type":"arg","id":"1"}`)

	meta := err.Metadata()

	if meta["message_type"] != "arg" {
		t.Errorf("message_type = %v, want %q", meta["message_type"], "arg")
	}
	if meta["field"] != "placeholder" {
		t.Errorf("field = %v, want %q", meta["field"], "placeholder")
	}
	if err.MessageType() != "arg" {
		t.Errorf("MessageType() = %q, want %q", err.MessageType(), "arg")
	}
}

func TestCategoryAndCodeInspection(t *testing.T) {
	err := fmt.Errorf("outer: %w",
		NewSessionError(ErrCodeResponseTimeout, "no response", nil).
			WithRequestID("kitwire_req_1_abc"))

	if !IsCategory(err, CategorySession) {
		t.Error("IsCategory(CategorySession) = false")
	}
	if IsCategory(err, CategoryDecode) {
		t.Error("IsCategory(CategoryDecode) = true for a session error")
	}
	if !IsCode(err, ErrCodeResponseTimeout) {
		t.Error("IsCode(ErrCodeResponseTimeout) = false")
	}
	if got := CodeOf(err); got != ErrCodeResponseTimeout {
		t.Errorf("CodeOf = %q, want %q", got, ErrCodeResponseTimeout)
	}
	if got := CodeOf(errors.New("plain")); got != "" {
		t.Errorf("CodeOf(plain error) = %q, want empty", got)
	}
}

func TestWrapSelectsTypedError(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		category ErrorCategory
		wantType string
	}{
		{CategoryDecode, "*kiterrs.DecodeError"},
		{CategoryWire, "*kiterrs.WireError"},
		{CategorySession, "*kiterrs.SessionError"},
		{CategoryCommand, "*kiterrs.CommandError"},
		{CategoryConfig, "*kiterrs.ConfigError"},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			err := Wrap(tt.category, "some_code", "wrapped", cause)

			if got := fmt.Sprintf("%T", err); got != tt.wantType {
				t.Errorf("Wrap(%s) produced %s, want %s", tt.category, got, tt.wantType)
			}
			if err.Category() != tt.category {
				t.Errorf("Category() = %q, want %q", err.Category(), tt.category)
			}
			if !errors.Is(err, cause) {
				t.Error("cause not preserved through Wrap")
			}
		})
	}
}

func TestCommandErrorAccessors(t *testing.T) {
	err := NewCommandError(ErrCodeCommandFailed, "screenshot capture failed", nil).
		WithCommand("captureScreenshot").
		WithRequestID("req-9")

	if err.Command() != "captureScreenshot" {
		t.Errorf("Command() = %q, want %q", err.Command(), "captureScreenshot")
	}
	if err.Metadata()["request_id"] != "req-9" {
		t.Errorf("request_id metadata = %v, want %q", err.Metadata()["request_id"], "req-9")
	}
}
