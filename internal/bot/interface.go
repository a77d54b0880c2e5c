package bot

import (
	"context"

	"github.com/line/line-bot-sdk-go/v8/linebot/webhook"
)

// Dispatcher handles the events of one webhook delivery.
//
//go:generate mockgen -package mockbot -source=interface.go -destination=mock/mockbot.go *
type Dispatcher interface {
	// HandleEvents processes every event and returns once all of them have
	// settled. The returned error joins individual failures and is meant for
	// logging only.
	HandleEvents(ctx context.Context, events []webhook.EventInterface) error
}
