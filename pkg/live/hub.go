package live

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/htmlr/pkg/middleware"
)

// MessageType represents the type of a live message.
type MessageType string

const (
	MessageFragment MessageType = "fragment"
	MessageError    MessageType = "error"
)

// Message is sent to browsers via WebSocket.
type Message struct {
	Type   MessageType `json:"type"`
	Target string      `json:"target,omitempty"`
	HTML   string      `json:"html,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// Fragment is rendered markup that replaces the children of the element
// with ID Target.
type Fragment struct {
	Target string
	HTML   string
}

const writeWait = 5 * time.Second

// client serializes writes; a websocket.Conn allows one writer at a time.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) write(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// Hub manages WebSocket clients and fans fragments out to them.
type Hub struct {
	clients  map[*client]bool
	mu       sync.RWMutex
	upgrader websocket.Upgrader
	logger   *slog.Logger

	// last is replayed to clients as they connect.
	last []byte
}

// Option configures a Hub.
type Option func(*Hub)

// WithLogger sets the hub's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Hub) {
		h.logger = logger
	}
}

// WithCheckOrigin sets the upgrader's origin check. By default only
// same-origin requests are accepted.
func WithCheckOrigin(check func(r *http.Request) bool) Option {
	return func(h *Hub) {
		h.upgrader.CheckOrigin = check
	}
}

// NewHub creates a new hub.
func NewHub(opts ...Option) *Hub {
	h := &Hub{
		clients: make(map[*client]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// HandleWebSocket upgrades the request and keeps the client registered
// until it disconnects.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, req *http.Request) {
	conn, err := h.upgrader.Upgrade(w, req, nil)
	if err != nil {
		middleware.RecordWebSocketError("upgrade")
		h.logger.Debug("live upgrade failed", "error", err)
		return
	}
	c := &client{conn: conn}

	h.mu.Lock()
	h.clients[c] = true
	last := h.last
	h.mu.Unlock()
	middleware.RecordLiveConnect()
	h.logger.Debug("live client connected", "remote", req.RemoteAddr)

	if last != nil {
		if err := c.write(last); err != nil {
			middleware.RecordWebSocketError("write")
		}
	}

	// Keep connection alive until client disconnects
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.remove(c)
	h.logger.Debug("live client disconnected", "remote", req.RemoteAddr)
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()
	if ok {
		middleware.RecordLiveDisconnect()
	}
	c.conn.Close()
}

// Broadcast sends a fragment to all clients and remembers it for clients
// that connect later. It returns the number of clients reached.
func (h *Hub) Broadcast(f Fragment) int {
	return h.send(Message{Type: MessageFragment, Target: f.Target, HTML: f.HTML}, true)
}

// BroadcastError sends an error message to all clients.
func (h *Hub) BroadcastError(errMsg string) int {
	return h.send(Message{Type: MessageError, Error: errMsg}, false)
}

func (h *Hub) send(msg Message, remember bool) int {
	data, err := json.Marshal(msg)
	if err != nil {
		return 0
	}

	h.mu.Lock()
	if remember {
		h.last = data
	}
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	sent := 0
	for _, c := range clients {
		if err := c.write(data); err != nil {
			middleware.RecordWebSocketError("write")
			h.remove(c)
			continue
		}
		sent++
	}
	middleware.RecordLiveMessages(sent)
	return sent
}

// Run calls render every interval and broadcasts the fragment until ctx
// is done. Ticks with no connected clients are skipped. A render error is
// logged and sent to clients in place of the fragment.
func (h *Hub) Run(ctx context.Context, interval time.Duration, render func(time.Time) (Fragment, error)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case t := <-ticker.C:
			if h.ClientCount() == 0 {
				continue
			}
			f, err := render(t)
			if err != nil {
				h.logger.Error("live render failed", "error", err)
				h.BroadcastError(err.Error())
				continue
			}
			h.Broadcast(f)
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close closes all client connections.
func (h *Hub) Close() {
	h.mu.Lock()
	clients := h.clients
	h.clients = make(map[*client]bool)
	h.mu.Unlock()

	for c := range clients {
		middleware.RecordLiveDisconnect()
		c.conn.Close()
	}
}
