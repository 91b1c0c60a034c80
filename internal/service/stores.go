package service

import (
	"context"

	"github.com/andreyminyukevich-create/tg-expenses-bot/internal/model"
)

// Stores represents all stores.
type Stores struct {
	Session SessionStore
}

// SessionStore provides functionality for work with per-user sessions.
type SessionStore interface {
	// GetOrCreate returns the session for a user, creating an idle one
	// on first interaction.
	GetOrCreate(userID, chatID int64) *model.Session
	// Get returns the session for a user or nil when absent.
	Get(userID int64) *model.Session
	// Touch refreshes the session's last-activity timestamp.
	Touch(userID int64)
	// Delete removes the session entirely.
	Delete(userID int64)
	// RunSweep evicts idle sessions on a fixed interval until the
	// context is cancelled.
	RunSweep(ctx context.Context)
}
