package bot_test

import (
	"context"
	"errors"
	"leavebot/internal/bot"
	"leavebot/internal/classifier"
	mockmessenger "leavebot/pkg/messenger/mock"
	"sync"
	"testing"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
	"github.com/line/line-bot-sdk-go/v8/linebot/webhook"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestBot(t *testing.T) (*mockmessenger.MockClient, *bot.Bot) {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := mockmessenger.NewMockClient(ctrl)
	b, err := bot.New(client, bot.Options{BaseURL: "https://bot.example.com/"}, nil)
	require.NoError(t, err)

	return client, b
}

func textEvent(token, text string) webhook.MessageEvent {
	return webhook.MessageEvent{
		ReplyToken: token,
		Message:    webhook.TextMessageContent{Text: text},
	}
}

func TestBot_HandleEvent_Balance(t *testing.T) {
	client, b := newTestBot(t)

	client.EXPECT().ReplyMessage(gomock.Any(), "r1", gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, msgs ...messaging_api.MessageInterface) error {
			require.Len(t, msgs, 2)
			text, ok := msgs[0].(*messaging_api.TextMessage)
			require.True(t, ok)
			require.Equal(t, bot.BalanceText, text.Text)
			flex, ok := msgs[1].(*messaging_api.FlexMessage)
			require.True(t, ok)
			require.Equal(t, bot.BalanceAltText, flex.AltText)
			require.NotNil(t, flex.Contents)

			return nil
		})

	require.NoError(t, b.HandleEvent(context.Background(), textEvent("r1", " ยอดลา ")))
}

func TestBot_HandleEvent_Leave(t *testing.T) {
	client, b := newTestBot(t)

	client.EXPECT().ReplyMessage(gomock.Any(), "r1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, msgs ...messaging_api.MessageInterface) error {
			tmpl, ok := msgs[0].(*messaging_api.TemplateMessage)
			require.True(t, ok)
			require.Equal(t, bot.LeaveFormAltText, tmpl.AltText)
			buttons, ok := tmpl.Template.(*messaging_api.ButtonsTemplate)
			require.True(t, ok)
			require.Equal(t, bot.LeaveFormTitle, buttons.Title)
			action, ok := buttons.Actions[0].(*messaging_api.UriAction)
			require.True(t, ok)
			require.Equal(t, "https://bot.example.com/liff/", action.Uri)

			return nil
		})

	require.NoError(t, b.HandleEvent(context.Background(), textEvent("r1", "ขอลาพรุ่งนี้")))
}

func TestBot_HandleEvent_Echo(t *testing.T) {
	client, b := newTestBot(t)

	client.EXPECT().ReplyMessage(gomock.Any(), "r1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, msgs ...messaging_api.MessageInterface) error {
			text, ok := msgs[0].(*messaging_api.TextMessage)
			require.True(t, ok)
			require.Equal(t, "คุณพิมพ์: hello", text.Text)

			return nil
		})

	require.NoError(t, b.HandleEvent(context.Background(), textEvent("r1", "  hello\n")))
}

func TestBot_HandleEvent_NoReply(t *testing.T) {
	// no ReplyMessage expectation: any call fails the test
	_, b := newTestBot(t)
	ctx := context.Background()

	require.NoError(t, b.HandleEvent(ctx, webhook.PostbackEvent{ReplyToken: "r1"}))
	require.NoError(t, b.HandleEvent(ctx, webhook.FollowEvent{ReplyToken: "r2"}))
	require.NoError(t, b.HandleEvent(ctx, webhook.MessageEvent{
		ReplyToken: "r3",
		Message:    webhook.StickerMessageContent{},
	}))
}

func TestBot_HandleEvents_WaitsForAll(t *testing.T) {
	client, b := newTestBot(t)

	var (
		mu      sync.Mutex
		replied []string
	)
	client.EXPECT().ReplyMessage(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, token string, _ ...messaging_api.MessageInterface) error {
			mu.Lock()
			replied = append(replied, token)
			mu.Unlock()
			if token == "bad" {
				return errors.New("reply token expired")
			}

			return nil
		}).Times(3)

	err := b.HandleEvents(context.Background(), []webhook.EventInterface{
		textEvent("a", "hello"),
		textEvent("bad", "hello"),
		textEvent("c", "hello"),
		webhook.PostbackEvent{},
	})
	require.Error(t, err)
	require.ElementsMatch(t, []string{"a", "bad", "c"}, replied)
}

func TestBot_HandleEvents_Empty(t *testing.T) {
	_, b := newTestBot(t)
	require.NoError(t, b.HandleEvents(context.Background(), nil))
}

func TestBot_HandleEvent_CustomKeywords(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockmessenger.NewMockClient(ctrl)
	b, err := bot.New(client, bot.Options{Keywords: classifier.Keywords{Balance: "balance"}}, nil)
	require.NoError(t, err)

	client.EXPECT().ReplyMessage(gomock.Any(), "r1", gomock.Any(), gomock.Any()).Return(nil)
	require.NoError(t, b.HandleEvent(context.Background(), textEvent("r1", "balance?")))
}

func TestBot_Reply_FormURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	b, err := bot.New(mockmessenger.NewMockClient(ctrl), bot.Options{BaseURL: "http://localhost:3000"}, nil)
	require.NoError(t, err)

	msgs := b.Reply(classifier.IntentLeave, "leave")
	tmpl := msgs[0].(*messaging_api.TemplateMessage)
	buttons := tmpl.Template.(*messaging_api.ButtonsTemplate)
	require.Equal(t, "http://localhost:3000/liff/", buttons.Actions[0].(*messaging_api.UriAction).Uri)
}
