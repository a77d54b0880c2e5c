// Package messenger defines the outbound messaging capability the bot needs
// from a chat platform: replying to an inbound event and pushing a message to
// a user outside of the reply cycle.
package messenger

import (
	"context"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
)

// Client sends messages to chat users. Implementations classify delivery
// failures with serrors kinds:
//   - serrors.ErrBadRequest when the platform rejected the call and retrying will not help
//   - serrors.ErrRateLimited when the platform throttled the call
//   - serrors.ErrUnavailable for transient platform or network failures
//
//go:generate mockgen -package mockmessenger -source=interface.go -destination=mock/mockmessenger.go *
type Client interface {
	// ReplyMessage answers an inbound event identified by its one-time reply token.
	ReplyMessage(ctx context.Context, replyToken string, msgs ...messaging_api.MessageInterface) error
	// PushMessage sends msgs to the user to. Calls sharing a non-empty retryKey
	// are delivered at most once by the platform.
	PushMessage(ctx context.Context, to string, retryKey string, msgs ...messaging_api.MessageInterface) error
}
