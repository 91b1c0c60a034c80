package telegram

import (
	"github.com/mymmrac/telego"
)

// Update represents the update received from the Telegram.
type Update struct {
	update telego.Update
}

// GetUserID returns the ID of the user who triggered the update.
func (t *Update) GetUserID() int64 {
	var userID int64

	if t.update.Message != nil && t.update.Message.From != nil {
		userID = t.update.Message.From.ID
	}
	if t.update.CallbackQuery != nil {
		userID = t.update.CallbackQuery.From.ID
	}

	return userID
}

// GetChatID returns the ID of the chat the update originated from.
func (t *Update) GetChatID() int64 {
	var chatID int64

	if t.update.Message != nil {
		chatID = t.update.Message.Chat.ID
	}
	if t.update.CallbackQuery != nil && t.update.CallbackQuery.Message != nil {
		chatID = t.update.CallbackQuery.Message.Chat.ID
	}

	return chatID
}

// GetText returns the text content of the message. Empty for button presses.
func (t *Update) GetText() string {
	if t.update.Message != nil {
		return t.update.Message.Text
	}

	return ""
}

// GetCallbackData returns the payload of the button press.
func (t *Update) GetCallbackData() string {
	if t.update.CallbackQuery != nil {
		return t.update.CallbackQuery.Data
	}

	return ""
}

// GetCallbackID returns the callback query id to acknowledge.
func (t *Update) GetCallbackID() string {
	if t.update.CallbackQuery != nil {
		return t.update.CallbackQuery.ID
	}

	return ""
}

// IsCallback reports whether the update is a button press.
func (t *Update) IsCallback() bool {
	return t.update.CallbackQuery != nil
}
