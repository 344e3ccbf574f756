package kiterrs

// DecodeError reports a failure turning one wire line into a typed
// message. The message type is recorded when the discriminator was at
// least readable.
type DecodeError struct {
	*BaseError
	messageType string
}

// NewDecodeError creates a decode error.
func NewDecodeError(code ErrorCode, message string, cause error) *DecodeError {
	return &DecodeError{
		BaseError: NewBaseError(CategoryDecode, code, message, cause),
	}
}

// WithMessageType records the wire discriminator that was being decoded.
func (e *DecodeError) WithMessageType(messageType string) *DecodeError {
	e.messageType = messageType
	e.WithMetadata("message_type", messageType)

	return e
}

// MessageType returns the wire discriminator, or "" when it was absent
// or unreadable.
func (e *DecodeError) MessageType() string {
	return e.messageType
}

// WithField records the payload field that failed validation.
func (e *DecodeError) WithField(field string) *DecodeError {
	e.WithMetadata("field", field)

	return e
}

// WithPreview records a clipped copy of the offending input.
func (e *DecodeError) WithPreview(preview string) *DecodeError {
	e.WithMetadata("preview", preview)

	return e
}

// WireError reports a failure moving framed lines across a stream.
type WireError struct {
	*BaseError
}

// NewWireError creates a wire error.
func NewWireError(code ErrorCode, message string, cause error) *WireError {
	return &WireError{
		BaseError: NewBaseError(CategoryWire, code, message, cause),
	}
}

// WithLine records the one-based line number the failure occurred at.
func (e *WireError) WithLine(line int) *WireError {
	e.WithMetadata("line", line)

	return e
}

// WithRemote records the peer address for socket-backed streams.
func (e *WireError) WithRemote(remote string) *WireError {
	e.WithMetadata("remote", remote)

	return e
}

// SessionError reports a correlation failure between a script and its
// host session.
type SessionError struct {
	*BaseError
}

// NewSessionError creates a session error.
func NewSessionError(code ErrorCode, message string, cause error) *SessionError {
	return &SessionError{
		BaseError: NewBaseError(CategorySession, code, message, cause),
	}
}

// WithPromptID records the prompt the failure relates to.
func (e *SessionError) WithPromptID(promptID string) *SessionError {
	e.WithMetadata("prompt_id", promptID)

	return e
}

// WithRequestID records the command request the failure relates to.
func (e *SessionError) WithRequestID(requestID string) *SessionError {
	e.WithMetadata("request_id", requestID)

	return e
}

// CommandError reports a host-side failure executing a command request.
type CommandError struct {
	*BaseError
	command string
}

// NewCommandError creates a command error.
func NewCommandError(code ErrorCode, message string, cause error) *CommandError {
	return &CommandError{
		BaseError: NewBaseError(CategoryCommand, code, message, cause),
	}
}

// WithCommand records the command message type that failed.
func (e *CommandError) WithCommand(command string) *CommandError {
	e.command = command
	e.WithMetadata("command", command)

	return e
}

// Command returns the command message type, or "" when not recorded.
func (e *CommandError) Command() string {
	return e.command
}

// WithRequestID records the request the failure answers.
func (e *CommandError) WithRequestID(requestID string) *CommandError {
	e.WithMetadata("request_id", requestID)

	return e
}

// ConfigError reports a failure loading or validating configuration.
type ConfigError struct {
	*BaseError
}

// NewConfigError creates a config error.
func NewConfigError(code ErrorCode, message string, cause error) *ConfigError {
	return &ConfigError{
		BaseError: NewBaseError(CategoryConfig, code, message, cause),
	}
}

// WithPath records the file the failure came from.
func (e *ConfigError) WithPath(path string) *ConfigError {
	e.WithMetadata("path", path)

	return e
}
