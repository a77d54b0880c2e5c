// Package line provides a messenger.Client implementation backed by the LINE
// Messaging API.
package line

import (
	"context"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"

	"leavebot/pkg/messenger"
	"leavebot/pkg/serrors"
)

// Client talks to the LINE Messaging API and fulfills the messenger.Client
// interface. It is safe for concurrent use.
type Client struct {
	api *messaging_api.MessagingApiAPI
}

// Ensure Client conforms to the messenger.Client interface at compile time.
var _ messenger.Client = (*Client)(nil)

// New constructs a Client authenticated with the channel access token. An
// empty endpoint keeps the SDK default (https://api.line.me).
func New(httpClient *http.Client, token, endpoint string) (*Client, error) {
	opts := []messaging_api.MessagingApiAPIOption{messaging_api.WithHTTPClient(httpClient)}
	if endpoint != "" {
		opts = append(opts, messaging_api.WithEndpoint(endpoint))
	}

	api, err := messaging_api.NewMessagingApiAPI(token, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create messaging api client")
	}

	return &Client{api: api}, nil
}

// ReplyMessage sends msgs as the reply to an inbound event.
func (c *Client) ReplyMessage(ctx context.Context, replyToken string, msgs ...messaging_api.MessageInterface) error {
	res, _, err := c.api.WithContext(ctx).ReplyMessageWithHttpInfo(&messaging_api.ReplyMessageRequest{
		ReplyToken: replyToken,
		Messages:   msgs,
	})

	return classify(res, err, "reply message", false)
}

// PushMessage sends msgs to the user to. A 409 answer means a request with the
// same retry key was already accepted and is reported as success.
func (c *Client) PushMessage(ctx context.Context, to string, retryKey string, msgs ...messaging_api.MessageInterface) error {
	res, _, err := c.api.WithContext(ctx).PushMessageWithHttpInfo(&messaging_api.PushMessageRequest{
		To:       to,
		Messages: msgs,
	}, retryKey)

	return classify(res, err, "push message", retryKey != "")
}

// classify maps an SDK call outcome to a semantic error.
func classify(res *http.Response, err error, op string, retried bool) error {
	if err == nil {
		return nil
	}
	if res == nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return serrors.Wrap(serrors.ErrTimeout, err, "%s", op)
		}

		return serrors.Wrap(serrors.ErrUnavailable, err, "%s", op)
	}

	switch code := res.StatusCode; {
	case code == http.StatusConflict && retried:
		return nil
	case code == http.StatusTooManyRequests:
		return serrors.Wrap(serrors.ErrRateLimited, err, "%s", op)
	case code >= http.StatusInternalServerError:
		return serrors.Wrap(serrors.ErrUnavailable, err, "%s", op)
	case code >= http.StatusBadRequest:
		return serrors.Wrap(serrors.ErrBadRequest, err, "%s", op)
	default:
		return errors.Wrap(err, op)
	}
}
