// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package realtime

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 30 * time.Second
	maxMessageSize = 4096
	sendBufferSize = 16
)

var (
	ErrConnectionClosed = errors.New("connection closed")
	ErrSendBufferFull   = errors.New("connection send buffer full")
)

// Conn wraps a websocket and funnels outbound writes through a buffered
// queue drained by a single write goroutine. Send and Close are safe for
// concurrent use.
type Conn struct {
	id     string
	remote string

	ws   *websocket.Conn
	send chan []byte
	done chan struct{}
	once sync.Once
}

// NewConn wraps an upgraded websocket. remote is used for logging only.
func NewConn(ws *websocket.Conn, remote string) *Conn {
	return &Conn{
		id:     uuid.NewString(),
		remote: remote,
		ws:     ws,
		send:   make(chan []byte, sendBufferSize),
		done:   make(chan struct{}),
	}
}

func (c *Conn) ID() string { return c.id }

func (c *Conn) Remote() string { return c.remote }

// Start launches the write loop. It must be called exactly once.
func (c *Conn) Start() {
	go c.writeLoop()
}

// Send enqueues payload for delivery. A client too slow to drain its queue
// is disconnected.
func (c *Conn) Send(payload []byte) error {
	select {
	case <-c.done:
		return ErrConnectionClosed
	default:
	}

	select {
	case <-c.done:
		return ErrConnectionClosed
	case c.send <- payload:
		return nil
	default:
		// The write loop may be stuck on this socket; never wait on it here
		c.abandon(websocket.CloseTryAgainLater, "send buffer full")
		return ErrSendBufferFull
	}
}

// Close sends a normal close frame and tears down the socket
func (c *Conn) Close() {
	c.closeWith(websocket.CloseNormalClosure, "")
}

// Done is closed once the connection has been closed
func (c *Conn) Done() <-chan struct{} {
	return c.done
}

// ReadUntilClosed consumes inbound frames until the peer goes away or the
// connection is closed locally. Inbound messages are keepalives and are
// discarded; each one, like each pong, extends the read deadline.
func (c *Conn) ReadUntilClosed() error {
	c.ws.SetReadLimit(maxMessageSize)
	_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.ws.ReadMessage(); err != nil {
			return err
		}
		_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))
	}
}

func (c *Conn) closeWith(code int, reason string) {
	c.once.Do(func() {
		close(c.done)
		c.teardown(code, reason)
	})
}

// abandon marks the connection closed immediately and leaves the close
// handshake to a background goroutine.
func (c *Conn) abandon(code int, reason string) {
	c.once.Do(func() {
		close(c.done)
		go c.teardown(code, reason)
	})
}

func (c *Conn) teardown(code int, reason string) {
	// 1006 is never sent on the wire; the socket is already broken
	if code != websocket.CloseAbnormalClosure {
		_ = c.ws.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason), time.Now().Add(writeWait))
	}
	_ = c.ws.Close()
}

func (c *Conn) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case msg := <-c.send:
			if err := c.write(websocket.TextMessage, msg); err != nil {
				c.closeWith(websocket.CloseAbnormalClosure, "")
				return
			}
		case <-ticker.C:
			if err := c.write(websocket.PingMessage, nil); err != nil {
				c.closeWith(websocket.CloseAbnormalClosure, "")
				return
			}
		}
	}
}

func (c *Conn) write(messageType int, payload []byte) error {
	if err := c.ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.ws.WriteMessage(messageType, payload)
}
