/*
Package api
File: hub.go
Description:
    The websocket hub behind the editor's live preview.

    Every connected editor sends its current card and gets the priced,
    rendered preview back on the same socket. Registry changes (a tribe
    renamed or deleted) are broadcast to every client so open editors
    re-render their text.

    Architecture:
    - Hub: owns the client set and every client's send channel.
    - Client: one browser connection with a read and a write pump.
    - ServeWs: upgrades a GET request and registers the client.
*/

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Message is the JSON envelope for everything sent over the socket.
type Message struct {
	Type    string `json:"type"`    // "preview", "tribes_changed", "error"
	Payload any    `json:"payload"` // event data
}

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 64 << 10
	sendBuffer     = 32
)

// Handler answers one inbound socket message. A nil reply sends nothing.
type Handler func(msg []byte) []byte

// Client is one connected editor.
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	handle Handler
}

type direct struct {
	client *Client
	msg    []byte
}

// Hub maintains the set of active clients and broadcasts to them. Only the
// Run loop touches the client map or closes send channels.
type Hub struct {
	logger *zap.Logger

	clients    map[*Client]bool
	broadcast  chan []byte
	reply      chan direct
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
}

// NewHub creates a hub. Start it with `go hub.Run(ctx)`.
func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		logger:     logger.Named("hub"),
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte),
		reply:      make(chan direct),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run is the hub's event loop. It returns when ctx is cancelled, after
// closing every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				delete(h.clients, c)
				close(c.send)
			}
			return

		case c := <-h.register:
			h.clients[c] = true
			h.logger.Debug("client registered", zap.Int("clients", len(h.clients)))

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
				h.logger.Debug("client unregistered", zap.Int("clients", len(h.clients)))
			}

		case d := <-h.reply:
			if _, ok := h.clients[d.client]; ok {
				h.deliver(d.client, d.msg)
			}

		case msg := <-h.broadcast:
			for c := range h.clients {
				h.deliver(c, msg)
			}
		}
	}
}

// deliver drops clients whose send buffer is full.
func (h *Hub) deliver(c *Client, msg []byte) {
	select {
	case c.send <- msg:
	default:
		close(c.send)
		delete(h.clients, c)
		h.logger.Warn("dropping slow client")
	}
}

// Publish broadcasts a typed message to every client. It is a no-op once
// the hub has stopped.
func (h *Hub) Publish(typ string, payload any) error {
	b, err := json.Marshal(Message{Type: typ, Payload: payload})
	if err != nil {
		return err
	}
	select {
	case h.broadcast <- b:
	case <-h.done:
	}
	return nil
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ServeWs upgrades the request and attaches the connection to hub. Every
// text message the client sends is passed to handle.
func ServeWs(hub *Hub, handle Handler, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		hub.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	c := &Client{hub: hub, conn: conn, send: make(chan []byte, sendBuffer), handle: handle}

	select {
	case hub.register <- c:
	case <-hub.done:
		conn.Close()
		return
	}
	go c.writePump()
	go c.readPump()
}

func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.hub.logger.Warn("websocket read", zap.Error(err))
			}
			return
		}
		if c.handle == nil {
			continue
		}
		out := c.handle(msg)
		if out == nil {
			continue
		}
		select {
		case c.hub.reply <- direct{client: c, msg: out}:
		case <-c.hub.done:
			return
		}
	}
}

// writePump exits when the hub closes c.send.
func (c *Client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
