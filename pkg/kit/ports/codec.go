// Package ports defines the interfaces the session layer needs from
// infrastructure. Contracts here are shaped by what the protocol
// requires, not by any particular transport or JSON library; the
// adapters under adapters/ implement them.
package ports

import "github.com/zacjones93/script-kit-next-sub004/pkg/kit/messages"

// Decoder turns one raw wire record into a typed message. The strict
// contract: any record that does not decode to a known, valid variant
// is an error, and the decoder itself never logs.
type Decoder interface {
	// Decode parses a single record without its line terminator.
	Decode(raw []byte) (messages.Message, error)
}

// Encoder serializes one message to its single-line wire form, with
// the discriminator injected and no trailing newline.
type Encoder interface {
	// Encode renders m as one unframed JSON record.
	Encode(m messages.Message) ([]byte, error)
}
