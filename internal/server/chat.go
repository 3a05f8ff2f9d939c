package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/anthropics/akashvani/internal/biz/domain"
	"github.com/anthropics/akashvani/internal/biz/usecase"
	"github.com/anthropics/akashvani/internal/conf"
)

// ChatServer serves the websocket chat and the static demo page, and runs
// the pipeline for every incoming message.
type ChatServer struct {
	hub      *Hub
	pipeline *usecase.Pipeline
	cfg      conf.ChatConfig
	botName  string
	upgrader websocket.Upgrader
	httpSrv  *http.Server
}

// NewChatServer creates a chat server
func NewChatServer(hub *Hub, pipeline *usecase.Pipeline, cfg conf.ChatConfig, botName string) *ChatServer {
	return &ChatServer{
		hub:      hub,
		pipeline: pipeline,
		cfg:      cfg,
		botName:  botName,
		upgrader: websocket.Upgrader{
			// Demo surface, any origin may connect
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Handler returns the HTTP handler for the chat surface
func (s *ChatServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(s.cfg.StaticDir))))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, s.cfg.StaticDir+"/index.html")
	})
	return mux
}

// Start blocks serving HTTP until Stop is called
func (s *ChatServer) Start() error {
	s.httpSrv = &http.Server{Addr: s.cfg.Addr, Handler: s.Handler()}
	fmt.Printf("[Server] Listening on %s\n", s.cfg.Addr)

	err := s.httpSrv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Stop shuts the server down gracefully
func (s *ChatServer) Stop() {
	if s.httpSrv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = s.httpSrv.Shutdown(ctx)
}

func (s *ChatServer) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		fmt.Printf("[Server] Upgrade failed: %v\n", err)
		return
	}
	defer conn.Close()

	s.hub.Register(conn)
	defer s.hub.Unregister(conn)

	for {
		var frame WireMessage
		if err := conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				fmt.Printf("[Server] Read error: %v\n", err)
			}
			return
		}
		s.handleIncoming(r.Context(), frame)
	}
}

// handleIncoming broadcasts the user's message first, then runs the
// pipeline and broadcasts the bot's reply, matching the visible ordering
// of the chat: the question appears before the answer.
func (s *ChatServer) handleIncoming(ctx context.Context, frame WireMessage) {
	msg := domain.ChatMessage{
		ID:        uuid.NewString(),
		Sender:    frame.Username,
		Text:      frame.Text,
		Timestamp: parseTimestamp(frame.Timestamp),
		IsBot:     frame.Username == s.botName,
	}
	s.hub.Broadcast(msg)

	reply := s.pipeline.Handle(ctx, msg, s.hub.Transcript())
	if reply == nil {
		return
	}

	s.hub.Broadcast(domain.ChatMessage{
		ID:        uuid.NewString(),
		Sender:    s.botName,
		Text:      reply.Text,
		Timestamp: time.Now(),
		IsBot:     true,
	})
}

// parseTimestamp reads the client's RFC3339 timestamp, falling back to now
func parseTimestamp(raw string) time.Time {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	return time.Now()
}
