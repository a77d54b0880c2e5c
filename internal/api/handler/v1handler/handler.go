// Package v1handler implements the HTTP endpoints of the leave bot: the LINE
// webhook, the LIFF form environment and the leave submission API.
package v1handler

import (
	"context"
	"errors"
	"leavebot/internal/bot"
	"leavebot/internal/config"
	"leavebot/internal/leave"
	"leavebot/pkg/logger"
	"leavebot/pkg/serrors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// Deps are the services behind the handlers.
type Deps struct {
	Dispatcher bot.Dispatcher
	Leave      leave.Service
}

// Options configure the handlers.
type Options struct {
	// ChannelSecret verifies webhook signatures.
	ChannelSecret string
	// LIFFID and BaseURL are injected into the form through env.js.
	LIFFID  string
	BaseURL string
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		ChannelSecret: cfg.LINE.ChannelSecret,
		LIFFID:        cfg.LIFF.ID,
		BaseURL:       cfg.BaseURL,
	}
}

type Handler struct {
	deps Deps
	opts Options
}

func New(deps Deps, opts Options) *Handler {
	return &Handler{deps: deps, opts: opts}
}

// Register mounts the handlers on r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/", h.Health)
	r.Get("/webhook", h.Health)
	r.Post("/webhook", h.Webhook)
	r.Get("/liff/env.js", h.LIFFEnv)
	r.Post("/api/leave", h.SubmitLeave)
}

// ErrorResponse is the status and client-facing message for an error.
type ErrorResponse struct {
	StatusCode int
	Code       string
	Message    string
}

var kindStatus = []struct {
	kind    serrors.Kind
	status  int
	message string
}{
	{serrors.ErrBadRequest, http.StatusBadRequest, "bad request"},
	{serrors.ErrNotFound, http.StatusNotFound, "resource not found"},
	{serrors.ErrConflict, http.StatusConflict, "conflict"},
	{serrors.ErrRateLimited, http.StatusTooManyRequests, "too many requests"},
	{serrors.ErrTimeout, http.StatusGatewayTimeout, "timeout"},
	{serrors.ErrUnavailable, http.StatusServiceUnavailable, "service unavailable"},
}

// NewError maps err to a response by its serrors kind. Errors without a known
// kind are internal and their details are only logged.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	for _, ks := range kindStatus {
		if !errors.Is(err, ks.kind) {
			continue
		}

		msg := serrors.MessageOf(err)
		if msg == "" {
			msg = ks.message
		}
		logger.Warn(ctx, "request failed", zap.Error(err))

		return &ErrorResponse{StatusCode: ks.status, Code: ks.kind.Error(), Message: msg}
	}

	logger.Error(ctx, "internal error", zap.Error(err))

	return &ErrorResponse{
		StatusCode: http.StatusInternalServerError,
		Code:       serrors.ErrInternal.Error(),
		Message:    "internal error",
	}
}

// writeError writes {"ok":false,"error":<message>}.
func (h *Handler) writeError(w http.ResponseWriter, res *ErrorResponse) {
	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("ok", func(e *jx.Encoder) { e.Bool(false) })
		e.Field("error", func(e *jx.Encoder) { e.Str(res.Message) })
	})
	writeJSON(w, res.StatusCode, e.Bytes())
}

func writeJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// Health answers liveness probes and the platform's webhook verification.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("OK"))
}
