package service

import (
	"context"

	"github.com/andreyminyukevich-create/tg-expenses-bot/internal/model"
)

// Services contains all Services.
type Services struct {
	Handler HandlerService
	Event   EventService
}

// EventService provides functionality for receiving updates from the
// messenger and reacting on them.
type EventService interface {
	// Listen receives all updates from the messenger and dispatches them
	// until the context is cancelled.
	Listen(ctx context.Context)
}

// HandlerService drives the transaction form and the report menu for
// one inbound event at a time.
type HandlerService interface {
	// HandleStart greets the operator and shows the main keyboard.
	HandleStart(ctx context.Context, session *model.Session) error
	// HandleCancel discards the active draft from any step.
	HandleCancel(ctx context.Context, session *model.Session) error
	// HandleStartTransaction begins a new transaction form.
	HandleStartTransaction(ctx context.Context, session *model.Session) error
	// HandleText routes free-text input to the step waiting for it.
	HandleText(ctx context.Context, session *model.Session, text string) error
	// HandleAction routes a decoded button press.
	HandleAction(ctx context.Context, session *model.Session, action model.Action, callbackID string) error
	// HandleReportMenu opens the period menu for a report kind.
	HandleReportMenu(ctx context.Context, session *model.Session, kind model.ReportKind) error
	// HandleDeleteLast asks for confirmation before removing the last row.
	HandleDeleteLast(ctx context.Context, session *model.Session) error
}
