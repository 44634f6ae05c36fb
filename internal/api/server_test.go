package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/fundsbot/fundsbot/internal/api/middleware"
	"github.com/fundsbot/fundsbot/internal/handlers"
)

type mockResponder struct {
	handleFunc func(ctx context.Context, text string) handlers.Reply
	calls      int
}

func (m *mockResponder) HandleMessage(ctx context.Context, text string) handlers.Reply {
	m.calls++
	if m.handleFunc != nil {
		return m.handleFunc(ctx, text)
	}
	return handlers.Reply{Text: "echo: " + text}
}

func post(t *testing.T, h http.Handler, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body)))

	var out map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return rec, out
}

func TestChat(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		key    string
		want   string
		calls  int
	}{
		{"message", `{"message":"show my balance"}`, http.StatusOK, "response", "echo: show my balance", 1},
		{"invalid json", `{"message":`, http.StatusBadRequest, "error", "Invalid request body", 0},
		{"missing message", `{}`, http.StatusBadRequest, "response", handlers.EmptyMessageReply, 0},
		{"blank message", `{"message":"   "}`, http.StatusBadRequest, "response", handlers.EmptyMessageReply, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			responder := &mockResponder{}
			rec, out := post(t, NewRouter(responder, zerolog.Nop()), tt.body)

			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
			if out[tt.key] != tt.want {
				t.Errorf("%s = %v, want %q", tt.key, out[tt.key], tt.want)
			}
			if responder.calls != tt.calls {
				t.Errorf("responder calls = %d, want %d", responder.calls, tt.calls)
			}
		})
	}
}

func TestChat_Special(t *testing.T) {
	responder := &mockResponder{handleFunc: func(context.Context, string) handlers.Reply {
		return handlers.Reply{Special: &handlers.SpecialPayload{Text: "You cannot hack this Prachi!!!", ImagePath: "images/x.jpeg"}}
	}}

	rec, out := post(t, NewRouter(responder, zerolog.Nop()), `{"message":"-1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	special, ok := out["special_response"].(map[string]any)
	if !ok {
		t.Fatalf("special_response missing in %v", out)
	}
	if special["text"] != "You cannot hack this Prachi!!!" || special["image_path"] != "images/x.jpeg" {
		t.Errorf("special_response = %v", special)
	}
}

func TestChat_Panic(t *testing.T) {
	responder := &mockResponder{handleFunc: func(context.Context, string) handlers.Reply {
		panic("nil map")
	}}

	rec, out := post(t, NewRouter(responder, zerolog.Nop()), `{"message":"hi"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if out["error"] != middleware.InternalErrorMessage {
		t.Errorf("error = %v", out["error"])
	}
}

func TestRouter_Health(t *testing.T) {
	rec := httptest.NewRecorder()
	NewRouter(&mockResponder{}, zerolog.Nop()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"healthy"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	NewRouter(&mockResponder{}, zerolog.Nop()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/chat", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}
