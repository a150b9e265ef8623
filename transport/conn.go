// Package transport carries meshkit wire messages over a websocket
// connection.
package transport

import (
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/gogpu/meshkit"
)

// Conn is a message channel backed by a websocket connection. It satisfies
// [meshkit.MessageChannel]: each WriteMessage call delivers one binary
// websocket message.
//
// A Conn does not serialize concurrent writers; callers that share one
// Conn across goroutines must hold their own write lock.
type Conn struct {
	ws *websocket.Conn
}

var _ meshkit.MessageChannel = (*Conn)(nil)

// Dial connects to a websocket server and returns a [Conn].
func Dial(url string) (*Conn, error) {
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("transport: dial %s: %w", url, err)
	}
	return &Conn{ws: ws}, nil
}

// NewConn wraps an already-established websocket connection, for servers
// that accept connections with their own upgrader.
func NewConn(ws *websocket.Conn) *Conn {
	return &Conn{ws: ws}
}

// WriteMessage sends one complete binary message.
func (c *Conn) WriteMessage(data []byte) error {
	return c.ws.WriteMessage(websocket.BinaryMessage, data)
}

// ReadMessage returns the payload of the next binary message, skipping
// text messages. It blocks until a message arrives or the connection
// fails.
func (c *Conn) ReadMessage() ([]byte, error) {
	for {
		typ, msg, err := c.ws.ReadMessage()
		if err != nil {
			return nil, fmt.Errorf("transport: read: %w", err)
		}
		if typ == websocket.BinaryMessage {
			return msg, nil
		}
	}
}

// Close sends a close frame and closes the underlying connection.
func (c *Conn) Close() error {
	err := c.ws.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	if cerr := c.ws.Close(); err == nil {
		err = cerr
	}
	return err
}
