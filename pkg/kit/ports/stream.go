package ports

import "github.com/zacjones93/script-kit-next-sub004/pkg/kit/messages"

// MessageReader yields decoded messages from a line stream. Both
// flavors block; cancellation is closing the underlying source, after
// which reads return io.EOF or the close error. A reader is driven by
// one goroutine at a time.
type MessageReader interface {
	// Next returns the next message or the first decode or I/O
	// error. A decode error consumes the offending line, so calling
	// Next again continues with the rest of the stream.
	Next() (messages.Message, error)

	// NextLenient returns the next decodable message, skipping and
	// reporting malformed or unknown records, and fails only on
	// genuine I/O errors. End of input is io.EOF.
	NextLenient() (messages.Message, error)
}

// MessageWriter frames and sends messages, one line each.
type MessageWriter interface {
	// Write encodes m and appends the line terminator.
	Write(m messages.Message) error

	// Flush pushes any buffered lines to the underlying stream.
	Flush() error
}
