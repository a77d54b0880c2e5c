package v1handler

import (
	"errors"
	"leavebot/pkg/logger"
	"net/http"

	"github.com/line/line-bot-sdk-go/v8/linebot/webhook"
	"go.uber.org/zap"
)

// Webhook verifies and parses a platform delivery, dispatches every event and
// answers 200 once they have all been handled. Handling failures are logged;
// the platform only learns about malformed or unsigned deliveries.
func (h *Handler) Webhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cb, err := webhook.ParseRequest(h.opts.ChannelSecret, r)
	if err != nil {
		if errors.Is(err, webhook.ErrInvalidSignature) {
			logger.Warn(ctx, "webhook signature rejected")
		} else {
			logger.Warn(ctx, "could not parse webhook", zap.Error(err))
		}
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	ctx = logger.WithFields(ctx, zap.String("destination", cb.Destination), zap.Int("events", len(cb.Events)))
	if err := h.deps.Dispatcher.HandleEvents(ctx, cb.Events); err != nil {
		logger.Warn(ctx, "some webhook events failed", zap.Error(err))
	}

	w.WriteHeader(http.StatusOK)
}
