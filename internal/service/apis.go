package service

import (
	"context"

	"github.com/andreyminyukevich-create/tg-expenses-bot/internal/model"
)

// APIs represents all external APIs.
type APIs struct {
	Messenger Messenger
	Gateway   Gateway
}

// Messenger handles messaging operations between the application and the
// messaging platform.
type Messenger interface {
	// ReadUpdates retrieves new incoming updates from the messaging platform.
	ReadUpdates(result chan Update, errors chan error)
	// SendMessage sends a text message to the specified chat and returns
	// the created message id.
	SendMessage(chatID int64, text string) (int, error)
	// SendWithKeyboard sends a message with an attached keyboard
	// (inline or reply) and returns the created message id.
	SendWithKeyboard(opts SendWithKeyboardOptions) (int, error)
	// EditMessage replaces the text and inline keyboard of an existing
	// message.
	EditMessage(opts EditMessageOptions) error
	// DeleteMessage removes a message. Best effort: the platform may
	// refuse to delete old messages.
	DeleteMessage(chatID int64, messageID int) error
	// AnswerCallback acknowledges a button press with an optional notice.
	AnswerCallback(callbackID, text string) error

	// Close closes the underlying connection to the messaging platform.
	Close() error
}

// SendWithKeyboardOptions represents options for sending a message with
// a keyboard.
type SendWithKeyboardOptions struct {
	ChatID         int64
	Message        string
	Keyboard       []KeyboardRow
	InlineKeyboard []InlineKeyboardRow
}

// EditMessageOptions represents options for editing an existing message.
type EditMessageOptions struct {
	ChatID         int64
	MessageID      int
	Message        string
	InlineKeyboard []InlineKeyboardRow
}

// KeyboardRow represents keyboard row with buttons.
type KeyboardRow struct {
	Buttons []string
}

// InlineKeyboardRow represents inline keyboard row with buttons.
type InlineKeyboardRow struct {
	Buttons []InlineKeyboardButton
}

// InlineKeyboardButton represents an inline keyboard button with text
// and callback data.
type InlineKeyboardButton struct {
	Text string
	Data string
}

// Update represents an inbound event received from the messaging platform.
type Update interface {
	// GetUserID returns the stable identity of the sending user.
	GetUserID() int64
	// GetChatID returns the ID of the chat the event originated from.
	GetChatID() int64
	// GetText returns the message text for text events.
	GetText() string
	// GetCallbackData returns the payload for button press events.
	GetCallbackData() string
	// GetCallbackID returns the callback query id to acknowledge, empty
	// for text events.
	GetCallbackID() string
	// IsCallback reports whether the update is a button press.
	IsCallback() bool
}

// Gateway is the spreadsheet-backed store reachable over the webhook API.
// Every method classifies transport failures into gateway categories via
// model.GatewayError.
type Gateway interface {
	// Append records one transaction row.
	Append(ctx context.Context, record model.TransactionRecord) error
	// DeleteLast removes the most recently appended row and returns it.
	DeleteLast(ctx context.Context) (*model.TransactionRecord, error)
	// Stats returns the revenue/expense summary for a period.
	Stats(ctx context.Context, period model.Period) (*model.StatsReport, error)
	// GroupTotals returns per-group expense totals for a period.
	GroupTotals(ctx context.Context, period model.Period) ([]model.GroupTotal, error)
	// TopPayers returns counterparties ranked by revenue for a period.
	TopPayers(ctx context.Context, period model.Period, limit int) ([]model.Payer, error)
	// Transactions lists rows of one type for a period.
	Transactions(ctx context.Context, transactionType model.TransactionType, period model.Period) ([]model.TransactionRecord, error)
}
