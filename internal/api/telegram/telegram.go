package telegram

import (
	"fmt"

	"github.com/andreyminyukevich-create/tg-expenses-bot/internal/service"
	"github.com/fasthttp/router"
	"github.com/mymmrac/telego"
	"github.com/mymmrac/telego/telegoutil"
	"github.com/valyala/fasthttp"
)

type telegramMessenger struct {
	api         *telego.Bot
	updatesType string
	srvAddr     string
	webhookURL  string
}

var _ service.Messenger = (*telegramMessenger)(nil)

// Options represents options that required for creating new instance of telegram API.
type Options struct {
	// Token represents telegram bot token.
	Token string
	// UpdatesType represents a way we'll receive updates from Telegram. (webhook | polling)
	UpdatesType string

	// ServerAddress represents an address on which we'll start a server. (Required for webhook updates type)
	ServerAddress string
	// WebhookURL represents an url to which telegram will send updates. (Required for webhook updates type)
	WebhookURL string
}

// New creates a new instance of telegram API.
func New(opts Options) (*telegramMessenger, error) {
	bot, err := telego.NewBot(opts.Token, telego.WithDefaultLogger(false, true))
	if err != nil {
		return nil, fmt.Errorf("init bot instance: %w", err)
	}

	if opts.UpdatesType == "webhook" {
		err := bot.SetWebhook(&telego.SetWebhookParams{
			URL: opts.WebhookURL + "/bot",
		})
		if err != nil {
			return nil, fmt.Errorf("set webhook url: %w", err)
		}
	}

	return &telegramMessenger{
		api:         bot,
		updatesType: opts.UpdatesType,
		srvAddr:     opts.ServerAddress,
		webhookURL:  opts.WebhookURL,
	}, nil
}

func (t *telegramMessenger) ReadUpdates(result chan service.Update, errors chan error) {
	var (
		updates <-chan telego.Update
		err     error
	)

	switch t.updatesType {
	case "webhook":
		updates, err = t.api.UpdatesViaWebhook("/bot",
			telego.WithWebhookServer(telego.FastHTTPWebhookServer{
				Logger: t.api.Logger(),
				Server: &fasthttp.Server{},
				Router: router.New(),
			}),
		)
		if err != nil {
			errors <- fmt.Errorf("register webhook telegram updates receiver: %w", err)

			return
		}

		go func() {
			err := t.api.StartWebhook(t.srvAddr)
			if err != nil {
				errors <- fmt.Errorf("start webhook: %w", err)
			}
		}()
	case "polling":
		updates, err = t.api.UpdatesViaLongPolling(nil)
		if err != nil {
			errors <- fmt.Errorf("register long polling telegram updates receiver: %w", err)

			return
		}

	default:
		errors <- fmt.Errorf("unknown updates type: %s", t.updatesType)

		return
	}

	for update := range updates {
		result <- &Update{update: update}
	}
}

func (t *telegramMessenger) Close() error {
	if t.updatesType == "webhook" {
		return t.api.StopWebhook()
	}

	t.api.StopLongPolling()

	return nil
}

func (t *telegramMessenger) SendMessage(chatID int64, text string) (int, error) {
	return t.send(&sendOptions{
		chatID:  chatID,
		message: text,
	})
}

func (t *telegramMessenger) SendWithKeyboard(opts service.SendWithKeyboardOptions) (int, error) {
	return t.send(&sendOptions{
		chatID:         opts.ChatID,
		message:        opts.Message,
		keyboard:       opts.Keyboard,
		inlineKeyboard: opts.InlineKeyboard,
	})
}

type sendOptions struct {
	chatID  int64
	message string

	keyboard       []service.KeyboardRow
	inlineKeyboard []service.InlineKeyboardRow
}

func (t *telegramMessenger) send(opts *sendOptions) (int, error) {
	message := telegoutil.Message(telegoutil.ID(opts.chatID), opts.message)

	if len(opts.keyboard) != 0 {
		message = message.WithReplyMarkup(t.createKeyboard(opts.keyboard))
	}

	if len(opts.inlineKeyboard) != 0 {
		message = message.WithReplyMarkup(t.createInlineKeyboard(opts.inlineKeyboard))
	}

	sent, err := t.api.SendMessage(message)
	if err != nil {
		return 0, err
	}

	return sent.MessageID, nil
}

func (t *telegramMessenger) EditMessage(opts service.EditMessageOptions) error {
	params := &telego.EditMessageTextParams{
		ChatID:    telegoutil.ID(opts.ChatID),
		MessageID: opts.MessageID,
		Text:      opts.Message,
	}

	if len(opts.InlineKeyboard) != 0 {
		params.ReplyMarkup = t.createInlineKeyboard(opts.InlineKeyboard)
	}

	_, err := t.api.EditMessageText(params)
	if err != nil {
		return err
	}

	return nil
}

func (t *telegramMessenger) DeleteMessage(chatID int64, messageID int) error {
	return t.api.DeleteMessage(&telego.DeleteMessageParams{
		ChatID:    telegoutil.ID(chatID),
		MessageID: messageID,
	})
}

func (t *telegramMessenger) AnswerCallback(callbackID, text string) error {
	return t.api.AnswerCallbackQuery(&telego.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
	})
}

func (t *telegramMessenger) createKeyboard(rows []service.KeyboardRow) *telego.ReplyKeyboardMarkup {
	var convertedRows [][]telego.KeyboardButton

	for _, r := range rows {
		var buttons []telego.KeyboardButton

		for _, b := range r.Buttons {
			buttons = append(buttons, telegoutil.KeyboardButton(b))
		}

		convertedRows = append(convertedRows, buttons)
	}

	keyboard := telegoutil.Keyboard(convertedRows...).WithResizeKeyboard()

	return keyboard
}

func (t *telegramMessenger) createInlineKeyboard(rows []service.InlineKeyboardRow) *telego.InlineKeyboardMarkup {
	var convertedRows [][]telego.InlineKeyboardButton

	for _, r := range rows {
		var buttons []telego.InlineKeyboardButton

		for _, b := range r.Buttons {
			inlineKeyboardButton := telegoutil.
				InlineKeyboardButton(b.Text).
				WithCallbackData(b.Text)

			if b.Data != "" {
				inlineKeyboardButton = inlineKeyboardButton.WithCallbackData(b.Data)
			}

			buttons = append(buttons, inlineKeyboardButton)
		}

		convertedRows = append(convertedRows, buttons)
	}

	keyboard := telegoutil.InlineKeyboard(convertedRows...)

	return keyboard
}
