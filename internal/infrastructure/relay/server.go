package relay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/chatdeck/internal/application/port"
	"github.com/bnema/chatdeck/internal/application/usecase"
	"github.com/bnema/chatdeck/internal/domain/entity"
	"github.com/bnema/chatdeck/internal/logging"
)

const (
	maxRequestBytes = 1 << 20
	shutdownTimeout = 5 * time.Second
)

// Error codes of the JSON error body.
const (
	CodeInvalidRequest = "invalid_request"
	CodeUpstream       = "upstream_error"
	CodeMissingAPIKey  = "missing_api_key"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Messages       []chatMessage `json:"messages"`
	Model          string        `json:"model,omitempty"`
	Stream         bool          `json:"stream,omitempty"`
	ConversationID string        `json:"conversationId,omitempty"`
}

type chatResponse struct {
	Content      string `json:"content"`
	Model        string `json:"model,omitempty"`
	FinishReason string `json:"finishReason,omitempty"`
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Server is the local chat relay.
type Server struct {
	chat   *usecase.SendChatUseCase
	logger zerolog.Logger
}

// NewServer creates a relay serving chat through uc.
func NewServer(ctx context.Context, uc *usecase.SendChatUseCase) *Server {
	return &Server{
		chat:   uc,
		logger: logging.FromContext(ctx).With().Str("component", "relay").Logger(),
	}
}

// Handler returns the relay routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/chat", s.handleChat)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	return mux
}

// ListenAndServe serves on addr until ctx is done, then shuts down gracefully.
// ready, when non-nil, receives the bound address.
func (s *Server) ListenAndServe(ctx context.Context, addr string, ready func(net.Addr)) error {
	ln, err := (&net.ListenConfig{}).Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return s.logger.WithContext(context.Background()) },
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	s.logger.Info().Str("addr", ln.Addr().String()).Msg("relay listening")
	if ready != nil {
		ready(ln.Addr())
	}

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("relay shutdown: %w", err)
		}
		return nil
	}
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := s.logger.With().Str("remote", r.RemoteAddr).Logger()
	ctx = log.WithContext(ctx)

	var req chatRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeInvalidRequest, "malformed request body: "+err.Error())
		return
	}

	input := usecase.SendChatInput{
		Messages:       make([]entity.Message, 0, len(req.Messages)),
		Model:          req.Model,
		ConversationID: entity.ConversationID(req.ConversationID),
	}
	for _, m := range req.Messages {
		input.Messages = append(input.Messages, entity.Message{Role: entity.Role(m.Role), Content: m.Content})
	}

	if req.Stream {
		s.streamChat(ctx, w, input)
		return
	}

	out, err := s.chat.Execute(ctx, input)
	if err != nil {
		s.fail(ctx, w, err)
		return
	}
	writeJSON(w, http.StatusOK, chatResponse{
		Content:      out.Reply.Content,
		Model:        out.Model,
		FinishReason: out.FinishReason,
	})
}

func (s *Server) streamChat(ctx context.Context, w http.ResponseWriter, input usecase.SendChatInput) {
	sse := &sseWriter{w: w}
	_, err := s.chat.Stream(ctx, input, func(delta string) error {
		return sse.event(map[string]string{"delta": delta})
	})
	if err != nil {
		if !sse.started {
			s.fail(ctx, w, err)
			return
		}
		// Headers are gone; report in-band and end without [DONE].
		code, _ := classify(err)
		logging.FromContext(ctx).Warn().Err(err).Msg("chat stream aborted")
		_ = sse.event(errorBody{Error: errorDetail{Code: code, Message: err.Error()}})
		return
	}
	_ = sse.done()
}

func (s *Server) fail(ctx context.Context, w http.ResponseWriter, err error) {
	code, status := classify(err)
	ev := logging.FromContext(ctx).Warn()
	if status == http.StatusBadRequest {
		ev = logging.FromContext(ctx).Debug()
	}
	ev.Err(err).Int("status", status).Msg("chat request failed")
	writeError(w, status, code, err.Error())
}

// classify maps use case errors to an error code and HTTP status.
func classify(err error) (code string, status int) {
	switch {
	case errors.Is(err, usecase.ErrInvalidChatRequest):
		return CodeInvalidRequest, http.StatusBadRequest
	case errors.Is(err, port.ErrMissingAPIKey):
		return CodeMissingAPIKey, http.StatusServiceUnavailable
	default:
		return CodeUpstream, http.StatusBadGateway
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorBody{Error: errorDetail{Code: code, Message: message}})
}

// sseWriter writes server-sent events, sending headers on the first event.
type sseWriter struct {
	w       http.ResponseWriter
	started bool
}

func (s *sseWriter) start() {
	if s.started {
		return
	}
	h := s.w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	s.w.WriteHeader(http.StatusOK)
	s.started = true
}

func (s *sseWriter) event(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.write("data: " + string(data) + "\n\n")
}

func (s *sseWriter) done() error {
	return s.write("data: [DONE]\n\n")
}

func (s *sseWriter) write(frame string) error {
	s.start()
	if _, err := s.w.Write([]byte(frame)); err != nil {
		return err
	}
	if f, ok := s.w.(http.Flusher); ok {
		f.Flush()
	}
	return nil
}
