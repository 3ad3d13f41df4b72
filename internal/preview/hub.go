package preview

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// MessageType is the type of a message sent to browsers.
type MessageType string

const (
	// MessageHello carries the client ID assigned on connect.
	MessageHello MessageType = "hello"
	// MessageHTML carries the new inner HTML of the body.
	MessageHTML MessageType = "html"
)

// Message is sent to browsers via WebSocket.
type Message struct {
	Type MessageType `json:"type"`
	ID   string      `json:"id,omitempty"`
	HTML string      `json:"html,omitempty"`
}

// Hub manages the WebSocket connections of preview clients.
type Hub struct {
	clients  map[*websocket.Conn]string
	mu       sync.RWMutex
	upgrader websocket.Upgrader
	logger   *slog.Logger

	// writeMu serializes writes; a connection allows one writer at a time.
	writeMu sync.Mutex

	onCount func(int)
}

// NewHub creates a hub. onCount, if not nil, is called with the client
// count after every connect and disconnect.
func NewHub(logger *slog.Logger, onCount func(int)) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		clients: make(map[*websocket.Conn]string),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // preview is a local development tool
			},
		},
		logger:  logger,
		onCount: onCount,
	}
}

// HandleWebSocket upgrades the connection, greets the client with its ID
// and the current body HTML, and keeps it registered until it disconnects.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, req *http.Request, current func() string) {
	conn, err := h.upgrader.Upgrade(w, req, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	id := uuid.NewString()
	h.mu.Lock()
	h.clients[conn] = id
	n := len(h.clients)
	h.mu.Unlock()
	h.count(n)
	h.logger.Info("preview client connected", "client", id, "clients", n)

	h.send(conn, Message{Type: MessageHello, ID: id})
	if current != nil {
		h.send(conn, Message{Type: MessageHTML, HTML: current()})
	}

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.remove(conn)
	h.logger.Info("preview client disconnected", "client", id)
}

// Broadcast sends msg to all connected clients. Clients that fail to
// receive it are dropped.
func (h *Hub) Broadcast(msg Message) {
	h.mu.RLock()
	clients := make([]*websocket.Conn, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	for _, client := range clients {
		h.send(client, msg)
	}
}

func (h *Hub) send(conn *websocket.Conn, msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	h.writeMu.Lock()
	err = conn.WriteMessage(websocket.TextMessage, data)
	h.writeMu.Unlock()
	if err != nil {
		h.remove(conn)
	}
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	_, ok := h.clients[conn]
	delete(h.clients, conn)
	n := len(h.clients)
	h.mu.Unlock()
	conn.Close()
	if ok {
		h.count(n)
	}
}

func (h *Hub) count(n int) {
	if h.onCount != nil {
		h.onCount(n)
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
	defer h.mu.Unlock()

	for client := range h.clients {
		client.Close()
		delete(h.clients, client)
	}
	h.count(0)
}

// ClientScript keeps the page body in sync with the server. It is added to
// the head of the preview document.
const ClientScript = `
(function() {
    'use strict';

    var reconnectDelay = 1000;
    var maxReconnectDelay = 30000;

    function connect() {
        var protocol = location.protocol === 'https:' ? 'wss:' : 'ws:';
        var ws = new WebSocket(protocol + '//' + location.host + '/ws');

        ws.onopen = function() {
            reconnectDelay = 1000;
        };

        ws.onmessage = function(e) {
            var msg;
            try {
                msg = JSON.parse(e.data);
            } catch (err) {
                return;
            }
            switch (msg.type) {
                case 'hello':
                    console.log('[ruix] preview connected as', msg.id);
                    break;
                case 'html':
                    document.body.innerHTML = msg.html;
                    break;
            }
        };

        ws.onclose = function() {
            setTimeout(function() {
                reconnectDelay = Math.min(reconnectDelay * 2, maxReconnectDelay);
                connect();
            }, reconnectDelay);
        };

        ws.onerror = function() {
            ws.close();
        };
    }

    connect();
})();
`
