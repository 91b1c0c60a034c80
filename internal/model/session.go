package model

import (
	"time"

	"github.com/andreyminyukevich-create/tg-expenses-bot/pkg/money"
)

// Session represents the per-user conversation state. A session owns at
// most one draft; everything in it is ephemeral and lost on eviction.
type Session struct {
	ID     string
	UserID int64
	ChatID int64

	Step  Step
	Draft Draft

	// PromptNonce identifies the prompt currently on screen; button
	// presses carrying any other nonce are stale.
	PromptNonce string
	// ScreenMessageID is the message edited in place to represent the
	// current state. Zero means no screen exists yet.
	ScreenMessageID int
	// AmountCandidates holds the two interpretations of an ambiguous
	// amount while the user disambiguates.
	AmountCandidates []money.Money

	LastActivity time.Time
	CreatedAt    time.Time
}

// Reset discards the draft and everything tied to it, returning the
// session to idle. The screen handle survives so the next prompt can
// reuse the same message.
func (s *Session) Reset() {
	s.Step = StepIdle
	s.Draft = nil
	s.PromptNonce = ""
	s.AmountCandidates = nil
}

// HasActiveDraft reports whether a form is currently in progress.
func (s *Session) HasActiveDraft() bool {
	return s.Step != StepIdle
}
