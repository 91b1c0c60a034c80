package telegram

import (
	"testing"

	"github.com/mymmrac/telego"
	"github.com/stretchr/testify/assert"
)

func TestUpdate_MessageAccessors(t *testing.T) {
	t.Parallel()

	update := &Update{update: telego.Update{
		Message: &telego.Message{
			MessageID: 7,
			Text:      "1234,56",
			Chat:      telego.Chat{ID: 10},
			From:      &telego.User{ID: 1},
		},
	}}

	assert.Equal(t, int64(1), update.GetUserID())
	assert.Equal(t, int64(10), update.GetChatID())
	assert.Equal(t, "1234,56", update.GetText())
	assert.False(t, update.IsCallback())
	assert.Empty(t, update.GetCallbackData())
	assert.Empty(t, update.GetCallbackID())
}

func TestUpdate_CallbackAccessors(t *testing.T) {
	t.Parallel()

	update := &Update{update: telego.Update{
		CallbackQuery: &telego.CallbackQuery{
			ID:   "cb-1",
			Data: "confirm:n1",
			From: telego.User{ID: 1},
			Message: &telego.Message{
				MessageID: 7,
				Chat:      telego.Chat{ID: 10},
			},
		},
	}}

	assert.Equal(t, int64(1), update.GetUserID())
	assert.Equal(t, int64(10), update.GetChatID())
	assert.True(t, update.IsCallback())
	assert.Equal(t, "confirm:n1", update.GetCallbackData())
	assert.Equal(t, "cb-1", update.GetCallbackID())
	assert.Empty(t, update.GetText())
}
