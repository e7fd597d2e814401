// Package chatapi relays the page's chat panel to the language-model
// backend through a chatclient.Asker.
package chatapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/netcourse/netcourse/internal/chatclient"
)

const (
	maxRequestBytes = 64 << 10
	writeWait       = 10 * time.Second

	// RateLimitedMessage is returned when the gateway's ask budget is spent.
	RateLimitedMessage = "Too many questions at once. Please wait a moment and try again."
)

// Options configures a Gateway.
type Options struct {
	Asker chatclient.Asker
	// RateLimitRPM bounds asks per minute across all clients. Zero disables it.
	RateLimitRPM int
	// MaxHistory bounds the history forwarded per ask. Zero forwards all of it.
	MaxHistory int
	Logger     *zap.Logger
}

// Gateway serves POST /api/chat and the /ws/chat websocket.
type Gateway struct {
	asker      chatclient.Asker
	limiter    *Limiter
	maxHistory int
	log        *zap.Logger
	upgrader   websocket.Upgrader
}

// New creates a Gateway.
func New(opts Options) *Gateway {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gateway{
		asker:      opts.Asker,
		limiter:    NewLimiter(opts.RateLimitRPM),
		maxHistory: opts.MaxHistory,
		log:        logger.Named("chatapi"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
	}
}

// RegisterRoutes mounts the chat routes onto the given router.
func (g *Gateway) RegisterRoutes(r chi.Router) {
	r.Post("/api/chat", g.handleChat)
	r.Get("/ws/chat", g.handleWebSocket)
}

func (g *Gateway) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatclient.Request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, chatclient.Response{Message: "invalid request body"})
		return
	}
	question := strings.TrimSpace(req.Question)
	if question == "" {
		writeJSON(w, http.StatusBadRequest, chatclient.Response{Message: "question is required"})
		return
	}
	if !g.limiter.Allow() {
		writeJSON(w, http.StatusTooManyRequests, chatclient.Response{Message: RateLimitedMessage})
		return
	}

	answer, err := g.asker.Ask(r.Context(), question, g.trimHistory(req.History))
	if err != nil {
		g.logAskFailure(err)
		writeJSON(w, http.StatusBadGateway, chatclient.Response{Message: chatclient.UnavailableMessage})
		return
	}
	writeJSON(w, http.StatusOK, chatclient.Response{Success: true, Answer: answer})
}

// trimHistory keeps the most recent maxHistory messages.
func (g *Gateway) trimHistory(history []chatclient.Message) []chatclient.Message {
	if history == nil {
		return []chatclient.Message{}
	}
	if g.maxHistory > 0 && len(history) > g.maxHistory {
		return history[len(history)-g.maxHistory:]
	}
	return history
}

func (g *Gateway) logAskFailure(err error) {
	var unreachable *chatclient.BackendUnreachableError
	if errors.As(err, &unreachable) {
		g.log.Warn("chat backend unreachable",
			zap.String("message", unreachable.Message),
			zap.Int("attempts", unreachable.Attempts),
			zap.NamedError("cause", unreachable.Cause),
		)
		return
	}
	g.log.Warn("chat ask failed", zap.Error(err))
}

// wsRequest is the incoming websocket message format.
type wsRequest struct {
	Type    string `json:"type"` // "ask" or "reset"
	Content string `json:"content"`
}

// wsResponse is the outgoing websocket message format.
type wsResponse struct {
	Type      string `json:"type"` // "answer", "reset" or "error"
	SessionID string `json:"session_id"`
	Content   string `json:"content"`
}

func (g *Gateway) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.Debug("websocket upgrade", zap.Error(err))
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxRequestBytes)

	// The request context may carry server deadlines; the session outlives them.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sessionID := uuid.NewString()
	conv := chatclient.NewConversation(g.asker, g.maxHistory)
	log := g.log.With(zap.String("session_id", sessionID))
	log.Debug("chat session opened")

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("websocket read", zap.Error(err))
			}
			log.Debug("chat session closed")
			return
		}

		var req wsRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			g.send(conn, log, wsResponse{Type: "error", SessionID: sessionID, Content: "invalid message format"})
			continue
		}

		switch req.Type {
		case "reset":
			conv.Reset()
			g.send(conn, log, wsResponse{Type: "reset", SessionID: sessionID})
		case "ask":
			content := strings.TrimSpace(req.Content)
			if content == "" {
				g.send(conn, log, wsResponse{Type: "error", SessionID: sessionID, Content: "content is required"})
				continue
			}
			if !g.limiter.Allow() {
				g.send(conn, log, wsResponse{Type: "error", SessionID: sessionID, Content: RateLimitedMessage})
				continue
			}
			reply, err := conv.Send(ctx, content)
			if err != nil {
				g.logAskFailure(err)
				g.send(conn, log, wsResponse{Type: "error", SessionID: sessionID, Content: reply})
				continue
			}
			g.send(conn, log, wsResponse{Type: "answer", SessionID: sessionID, Content: reply})
		default:
			g.send(conn, log, wsResponse{Type: "error", SessionID: sessionID, Content: "unknown message type: " + req.Type})
		}
	}
}

func (g *Gateway) send(conn *websocket.Conn, log *zap.Logger, resp wsResponse) {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(resp); err != nil {
		log.Warn("websocket write", zap.Error(err))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
