package server

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/anthropics/akashvani/internal/biz/domain"
)

// WireMessage is the JSON frame exchanged with chat clients
type WireMessage struct {
	Username  string `json:"username"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// toWire converts a domain message to its wire form
func toWire(msg domain.ChatMessage) WireMessage {
	return WireMessage{
		Username:  msg.Sender,
		Text:      msg.Text,
		Timestamp: msg.Timestamp.Format(time.RFC3339),
	}
}

// Hub owns the transcript and the set of connected clients. Every message
// is appended to the transcript before it is fanned out, so a reader that
// snapshots the transcript always sees at least what has been broadcast.
type Hub struct {
	mu         sync.Mutex
	conns      map[*websocket.Conn]bool
	transcript *domain.Transcript
}

// NewHub creates a hub with an empty transcript
func NewHub() *Hub {
	return &Hub{
		conns:      make(map[*websocket.Conn]bool),
		transcript: domain.NewTranscript(),
	}
}

// Transcript returns the hub's transcript
func (h *Hub) Transcript() *domain.Transcript {
	return h.transcript
}

// Register adds a connection and replays the transcript to it
func (h *Hub) Register(conn *websocket.Conn) {
	history := h.transcript.Snapshot()

	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = true

	for _, msg := range history {
		if err := h.writeTo(conn, toWire(msg)); err != nil {
			fmt.Printf("[Hub] Replay failed, dropping connection: %v\n", err)
			delete(h.conns, conn)
			return
		}
	}
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, conn)
}

// Broadcast appends the message to the transcript and sends it to every
// connected client, dropping connections that fail mid-send.
func (h *Hub) Broadcast(msg domain.ChatMessage) {
	h.transcript.Append(msg)
	frame := toWire(msg)

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if err := h.writeTo(conn, frame); err != nil {
			fmt.Printf("[Hub] Send failed, dropping connection: %v\n", err)
			_ = conn.Close()
			delete(h.conns, conn)
		}
	}
}

func (h *Hub) writeTo(conn *websocket.Conn, frame WireMessage) error {
	payload, err := json.Marshal(frame)
	if err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, payload)
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}
