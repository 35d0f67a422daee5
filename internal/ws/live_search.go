package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/windoze95/servicehub-api/internal/controller"
	"github.com/windoze95/servicehub-api/internal/logger"
	"github.com/windoze95/servicehub-api/internal/service"
	"go.uber.org/zap"
)

// WebSocket message types for the live search protocol.
const (
	MsgTypeInput     = "input"     // Client keystroke-level query
	MsgTypePage      = "page"      // Client page selection
	MsgTypeState     = "state"     // Server search state push
	MsgTypeError     = "error"     // Error message
	MsgTypeConnected = "connected" // Connection confirmed
)

// WSMessage is the envelope for all messages sent over the live search WebSocket.
type WSMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// InputPayload carries the current contents of the search box.
type InputPayload struct {
	Query string `json:"query"`
}

// PagePayload selects a result page.
type PagePayload struct {
	Page int `json:"page"`
}

// ErrorPayload carries an error message to the client.
type ErrorPayload struct {
	Message string `json:"message"`
}

// ConnectedPayload confirms a successful connection.
type ConnectedPayload struct {
	SessionID string `json:"session_id"`
}

// searchSession is the part of a live search the message loop drives.
type searchSession interface {
	Input(query string)
	SetPage(page int)
}

// LiveSearchHandler manages WebSocket connections for live book search.
type LiveSearchHandler struct {
	Hub            *Hub
	Books          *service.BookService
	DebounceDelay  time.Duration
	PageSize       int
	AllowedOrigins []string

	upgrader websocket.Upgrader
}

// NewLiveSearchHandler returns a new LiveSearchHandler.
func NewLiveSearchHandler(hub *Hub, books *service.BookService, debounceDelay time.Duration, pageSize int, allowedOrigins []string) *LiveSearchHandler {
	h := &LiveSearchHandler{
		Hub:            hub,
		Books:          books,
		DebounceDelay:  debounceDelay,
		PageSize:       pageSize,
		AllowedOrigins: allowedOrigins,
	}
	h.upgrader = websocket.Upgrader{
		CheckOrigin:     h.checkOrigin,
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}
	return h
}

func (h *LiveSearchHandler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, allowed := range h.AllowedOrigins {
		if origin == allowed {
			return true
		}
	}
	// Allow localhost for development
	return strings.HasPrefix(origin, "http://localhost:") || origin == "http://localhost"
}

// HandleBookSearch upgrades the request and runs one live search session.
func (h *LiveSearchHandler) HandleBookSearch(c *gin.Context) {
	log := logger.Get()

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("websocket upgrade failed", zap.Error(err))
		return
	}

	sessionID := uuid.New().String()
	client := &Client{
		Hub:       h.Hub,
		Conn:      conn,
		Send:      make(chan []byte, sendBuffer),
		RoomID:    sessionID,
		SessionID: sessionID,
	}

	session := controller.NewLiveSearch[service.BookCard](
		context.Background(),
		h.DebounceDelay,
		h.PageSize,
		h.Books.FetchPage,
		func(state controller.SearchState[service.BookCard]) {
			h.publish(sessionID, MsgTypeState, state)
		},
	)
	client.OnDisconnect = session.Close

	h.Hub.Register <- client
	client.Send <- encode(MsgTypeConnected, ConnectedPayload{SessionID: sessionID})

	log.Info("live search session started", zap.String("session_id", sessionID))

	go client.WritePump()
	go client.ReadPump(func(cl *Client, data []byte) {
		h.handleMessage(cl, session, data)
	})
}

// handleMessage parses an incoming WebSocket message and feeds it to the
// session.
func (h *LiveSearchHandler) handleMessage(client *Client, session searchSession, data []byte) {
	var msg WSMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		h.sendError(client, "invalid message format")
		return
	}

	switch msg.Type {
	case MsgTypeInput:
		var input InputPayload
		if err := json.Unmarshal(msg.Payload, &input); err != nil {
			h.sendError(client, "invalid input payload")
			return
		}
		session.Input(input.Query)

	case MsgTypePage:
		var page PagePayload
		if err := json.Unmarshal(msg.Payload, &page); err != nil || page.Page < 1 {
			h.sendError(client, "page must be a positive integer")
			return
		}
		session.SetPage(page.Page)

	default:
		h.sendError(client, "unknown message type: "+msg.Type)
	}
}

// publish routes a message through the hub so nothing is delivered to a
// client that has already been unregistered.
func (h *LiveSearchHandler) publish(roomID, msgType string, payload any) {
	h.Hub.Broadcast <- &RoomMessage{RoomID: roomID, Message: encode(msgType, payload)}
}

func (h *LiveSearchHandler) sendError(client *Client, message string) {
	h.publish(client.RoomID, MsgTypeError, ErrorPayload{Message: message})
}

func encode(msgType string, payload any) []byte {
	raw, err := json.Marshal(payload)
	if err != nil {
		logger.Get().Error("failed to encode websocket payload", zap.String("type", msgType), zap.Error(err))
		raw = []byte("null")
	}
	msg, _ := json.Marshal(WSMessage{Type: msgType, Payload: raw})
	return msg
}
