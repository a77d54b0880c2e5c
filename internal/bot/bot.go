// Package bot routes inbound chat events to replies. Text messages are
// classified into an intent and answered with a balance summary, a link to
// the leave form, or an echo of the text. Other events are acknowledged
// without a reply.
package bot

import (
	"context"
	_ "embed"
	"fmt"
	"leavebot/internal/classifier"
	"leavebot/pkg/logger"
	"leavebot/pkg/messenger"
	"leavebot/pkg/metrics"
	"strings"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
	"github.com/line/line-bot-sdk-go/v8/linebot/webhook"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

//go:embed flex/balance.json
var balanceBubble []byte

const tracerName = "leavebot/internal/bot"

// Reply texts.
const (
	BalanceText      = "สรุปวันลาคงเหลือของคุณ (ตัวอย่าง):"
	BalanceAltText   = "สรุปวันลาคงเหลือ"
	LeaveFormAltText = "แบบฟอร์มยื่นลา"
	LeaveFormTitle   = "ยื่นลางาน"
	LeaveFormText    = "กรอกข้อมูลใน LIFF"
	LeaveFormLabel   = "เปิดแบบฟอร์ม"
	EchoPrefix       = "คุณพิมพ์: "
)

// Options configure the bot replies.
type Options struct {
	// BaseURL is the public URL of the service; the form lives at BaseURL/liff/.
	BaseURL string
	// Keywords are the classifier trigger words.
	Keywords classifier.Keywords
}

// Bot implements Dispatcher on top of a messenger.Client.
type Bot struct {
	client      messenger.Client
	classifier  *classifier.Classifier
	formURL     string
	balance     messaging_api.FlexContainerInterface
	instruments *metrics.Instruments
}

// Ensure Bot conforms to the Dispatcher interface at compile time.
var _ Dispatcher = (*Bot)(nil)

// New creates a Bot replying through client. A nil instruments records nothing.
func New(client messenger.Client, options Options, instruments *metrics.Instruments) (*Bot, error) {
	balance, err := messaging_api.UnmarshalFlexContainer(balanceBubble)
	if err != nil {
		return nil, fmt.Errorf("could not parse balance flex message: %w", err)
	}
	if instruments == nil {
		instruments = metrics.Noop()
	}

	return &Bot{
		client:      client,
		classifier:  classifier.New(options.Keywords),
		formURL:     strings.TrimRight(options.BaseURL, "/") + "/liff/",
		balance:     balance,
		instruments: instruments,
	}, nil
}

// HandleEvents runs HandleEvent for all events concurrently and waits for
// every one of them. A failing event does not cancel the others; failures are
// logged and returned joined.
func (b *Bot) HandleEvents(ctx context.Context, events []webhook.EventInterface) error {
	p := pool.New().WithErrors()
	for i, event := range events {
		p.Go(func() error {
			ctx := logger.WithFields(ctx, zap.Int("event", i))
			if err := b.HandleEvent(ctx, event); err != nil {
				logger.Error(ctx, "could not handle event", zap.Error(err))

				return err
			}

			return nil
		})
	}

	return p.Wait() //nolint: wrapcheck
}

// HandleEvent replies to a single event.
func (b *Bot) HandleEvent(ctx context.Context, event webhook.EventInterface) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "bot.HandleEvent")
	defer span.End()

	var err error
	switch e := event.(type) {
	case webhook.MessageEvent:
		err = b.handleMessage(ctx, e)
	case webhook.PostbackEvent:
		b.count(ctx, "postback")
	default:
		b.count(ctx, "ignored")
	}
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	}

	return err
}

func (b *Bot) handleMessage(ctx context.Context, e webhook.MessageEvent) error {
	content, ok := e.Message.(webhook.TextMessageContent)
	if !ok {
		b.count(ctx, "ignored")

		return nil
	}

	text := classifier.Normalize(content.Text)
	intent := b.classifier.Classify(text)
	b.count(ctx, string(intent))
	logger.Debug(ctx, "classified message", zap.String("intent", string(intent)))

	if err := b.client.ReplyMessage(ctx, e.ReplyToken, b.Reply(intent, text)...); err != nil {
		return fmt.Errorf("could not reply to %s message: %w", intent, err)
	}

	return nil
}

// Reply builds the messages answering text classified as intent.
func (b *Bot) Reply(intent classifier.Intent, text string) []messaging_api.MessageInterface {
	switch intent {
	case classifier.IntentBalance:
		return []messaging_api.MessageInterface{
			&messaging_api.TextMessage{Text: BalanceText},
			&messaging_api.FlexMessage{AltText: BalanceAltText, Contents: b.balance},
		}
	case classifier.IntentLeave:
		return []messaging_api.MessageInterface{
			&messaging_api.TemplateMessage{
				AltText: LeaveFormAltText,
				Template: &messaging_api.ButtonsTemplate{
					Title: LeaveFormTitle,
					Text:  LeaveFormText,
					Actions: []messaging_api.ActionInterface{
						&messaging_api.UriAction{Label: LeaveFormLabel, Uri: b.formURL},
					},
				},
			},
		}
	default:
		return []messaging_api.MessageInterface{
			&messaging_api.TextMessage{Text: EchoPrefix + text},
		}
	}
}

func (b *Bot) count(ctx context.Context, intent string) {
	b.instruments.Events.Add(ctx, 1, metric.WithAttributes(attribute.String("intent", intent)))
}
