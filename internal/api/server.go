// Package api serves the chat endpoint over HTTP.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/fundsbot/fundsbot/internal/api/middleware"
	"github.com/fundsbot/fundsbot/internal/handlers"
)

// Responder answers a chat message.
type Responder interface {
	HandleMessage(ctx context.Context, text string) handlers.Reply
}

// ChatHandler handles POST /chat.
type ChatHandler struct {
	responder Responder
	log       zerolog.Logger
}

func NewChatHandler(responder Responder, log zerolog.Logger) *ChatHandler {
	return &ChatHandler{responder: responder, log: log}
}

type chatRequest struct {
	Message *string `json:"message"`
}

type chatResponse struct {
	Response string `json:"response"`
}

type specialResponse struct {
	SpecialResponse *handlers.SpecialPayload `json:"special_response"`
}

func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Message == nil || strings.TrimSpace(*req.Message) == "" {
		middleware.WriteJSON(w, http.StatusBadRequest, chatResponse{Response: handlers.EmptyMessageReply})
		return
	}

	reply := h.responder.HandleMessage(r.Context(), *req.Message)
	if reply.Special != nil {
		middleware.WriteJSON(w, http.StatusOK, specialResponse{SpecialResponse: reply.Special})
		return
	}

	middleware.WriteJSON(w, http.StatusOK, chatResponse{Response: reply.Text})
}

// NewRouter wires the routes and middleware.
func NewRouter(responder Responder, log zerolog.Logger) http.Handler {
	chat := NewChatHandler(responder, log)
	mux := http.NewServeMux()

	mux.HandleFunc("/chat", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			chat.Chat(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteJSON(w, http.StatusOK, map[string]string{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return middleware.Recovery(log)(
		middleware.RequestID(log)(
			middleware.Logger(log)(
				middleware.CORS(mux),
			),
		),
	)
}

// NewServer returns an http.Server for addr with the router installed.
func NewServer(addr string, responder Responder, log zerolog.Logger) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      NewRouter(responder, log),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
