// Package spectate streams game snapshots to read-only websocket observers
package spectate

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/game"
)

const (
	sendBuffer   = 8
	writeTimeout = 2 * time.Second
	pongTimeout  = 30 * time.Second
	pingInterval = pongTimeout * 9 / 10
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Observers are read-only
	},
}

type observer struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans out snapshot frames to connected observers
type Hub struct {
	mu        sync.Mutex
	observers map[*observer]struct{}
	last      []byte // Most recent frame, sent to observers on join
	closed    bool

	dropped uint64
}

func NewHub() *Hub {
	return &Hub{observers: make(map[*observer]struct{})}
}

// ServeHTTP upgrades the request and registers the connection as an observer
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[spectate] upgrade from %s: %v", r.RemoteAddr, err)
		return
	}

	o := &observer{conn: conn, send: make(chan []byte, sendBuffer)}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"))
		conn.Close()
		return
	}
	h.observers[o] = struct{}{}
	if h.last != nil {
		o.send <- h.last
	}
	h.mu.Unlock()

	log.Printf("[spectate] observer joined from %s", r.RemoteAddr)
	core.Go(func() { h.writePump(o) })
	h.readPump(o)
}

// readPump discards observer messages and returns when the connection drops
func (h *Hub) readPump(o *observer) {
	defer h.remove(o)

	o.conn.SetReadLimit(512)
	o.conn.SetReadDeadline(time.Now().Add(pongTimeout))
	o.conn.SetPongHandler(func(string) error {
		return o.conn.SetReadDeadline(time.Now().Add(pongTimeout))
	})
	for {
		if _, _, err := o.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[spectate] read: %v", err)
			}
			return
		}
	}
}

func (h *Hub) writePump(o *observer) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		o.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-o.send:
			o.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if !ok {
				o.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
				return
			}
			if err := o.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				log.Printf("[spectate] write: %v", err)
				return
			}
		case <-ticker.C:
			o.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := o.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *Hub) remove(o *observer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.observers[o]; ok {
		delete(h.observers, o)
		close(o.send)
	}
}

// Broadcast encodes snap once and queues it for every observer without blocking
// Observers with a full buffer miss this frame
func (h *Hub) Broadcast(snap game.Snapshot) error {
	frame, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = frame
	for o := range h.observers {
		select {
		case o.send <- frame:
		default:
			h.dropped++
		}
	}
	return nil
}

// Observers returns the number of connected observers
func (h *Hub) Observers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.observers)
}

// Dropped returns the number of frames skipped for slow observers
func (h *Hub) Dropped() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.dropped
}

// Close disconnects every observer and rejects new ones
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for o := range h.observers {
		delete(h.observers, o)
		close(o.send)
	}
}
