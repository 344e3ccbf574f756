// Package wsstream bridges a websocket connection into the byte-stream
// contract the line reader and writer already speak. Frame boundaries
// carry no protocol meaning: the websocket is treated as a continuous
// byte pipe, so a record may span frames and a frame may carry several
// records, and the same newline framing applies on both transports.
package wsstream

import (
	"context"
	"io"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/zacjones93/script-kit-next-sub004/pkg/kiterrs"
)

// maxInboundMessageLen bounds a single inbound frame, mirroring the
// line reader's default record ceiling.
const maxInboundMessageLen = 10 << 20

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Conn adapts one websocket connection to io.ReadWriteCloser.
type Conn struct {
	ws *websocket.Conn

	// frame is the reader over the frame currently being drained.
	frame io.Reader

	writeMu sync.Mutex
}

// Verify interface compliance at compile time.
var _ io.ReadWriteCloser = (*Conn)(nil)

// New wraps an established websocket connection.
func New(ws *websocket.Conn) *Conn {
	ws.SetReadLimit(maxInboundMessageLen)

	return &Conn{ws: ws}
}

// Dial connects to a websocket endpoint and returns the byte-stream
// view of it. This is the script-process side.
func Dial(ctx context.Context, url string) (*Conn, error) {
	ws, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, kiterrs.NewWireError(
			kiterrs.ErrCodeStreamFailed,
			"dialing websocket",
			err,
		).WithRemote(url)
	}

	return New(ws), nil
}

// Upgrade switches an HTTP request to a websocket and returns the
// byte-stream view of it. This is the host side.
func Upgrade(w http.ResponseWriter, r *http.Request) (*Conn, error) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return nil, kiterrs.NewWireError(
			kiterrs.ErrCodeUpgradeFailed,
			"upgrading connection",
			err,
		).WithRemote(r.RemoteAddr)
	}

	return New(ws), nil
}

// Read drains websocket frames as one continuous byte stream. A peer
// close becomes io.EOF so line readers see a clean end of input. Read
// is single-goroutine, matching the reader contract.
func (c *Conn) Read(p []byte) (int, error) {
	for {
		if c.frame == nil {
			_, frame, err := c.ws.NextReader()
			if err != nil {
				return 0, mapReadErr(err)
			}
			c.frame = frame
		}

		n, err := c.frame.Read(p)
		if err == io.EOF {
			c.frame = nil
			if n > 0 {
				return n, nil
			}

			continue
		}

		return n, err
	}
}

// Write sends p as one text frame. The line writer flushes one record
// per message, so frames line up with records in the common case; the
// peer must not rely on that.
func (c *Conn) Write(p []byte) (int, error) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if err := c.ws.WriteMessage(websocket.TextMessage, p); err != nil {
		return 0, kiterrs.NewWireError(
			kiterrs.ErrCodeWriteFailed,
			"writing frame",
			err,
		).WithRemote(c.ws.RemoteAddr().String())
	}

	return len(p), nil
}

// Close sends a normal closure frame and tears the connection down.
func (c *Conn) Close() error {
	c.writeMu.Lock()
	_ = c.ws.WriteMessage(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
	)
	c.writeMu.Unlock()

	return c.ws.Close()
}

// mapReadErr turns expected closes into io.EOF and wraps the rest.
func mapReadErr(err error) error {
	if websocket.IsCloseError(err,
		websocket.CloseNormalClosure,
		websocket.CloseGoingAway,
		websocket.CloseNoStatusReceived,
	) {
		return io.EOF
	}

	return kiterrs.NewWireError(kiterrs.ErrCodeReadFailed, "reading frame", err)
}
