package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/andreyminyukevich-create/tg-expenses-bot/internal/model"
	"github.com/andreyminyukevich-create/tg-expenses-bot/pkg/logger"
	"github.com/andreyminyukevich-create/tg-expenses-bot/pkg/worker"
)

type eventService struct {
	logger  *logger.Logger
	apis    APIs
	stores  Stores
	handler HandlerService
	ownerID int64

	dispatcher *worker.Dispatcher[Update]
}

var _ EventService = (*eventService)(nil)

// EventOptions represents input options for new instance of event service.
type EventOptions struct {
	Logger  *logger.Logger
	APIs    APIs
	Stores  Stores
	Handler HandlerService
	// OwnerID is the only user the bot serves. Everyone else gets a
	// fixed refusal and no session.
	OwnerID int64
	// ShardCount is the number of dispatcher workers. Updates from the
	// same user always land on the same worker, so a user's events are
	// processed strictly in arrival order.
	ShardCount int
}

const defaultShardCount = 4

// NewEvent returns new instance of event service.
func NewEvent(opts *EventOptions) *eventService {
	shardCount := opts.ShardCount
	if shardCount == 0 {
		shardCount = defaultShardCount
	}

	event := &eventService{
		logger:  opts.Logger,
		apis:    opts.APIs,
		stores:  opts.Stores,
		handler: opts.Handler,
		ownerID: opts.OwnerID,
	}
	event.dispatcher = worker.NewDispatcher(shardCount, event.processUpdate)

	return event
}

func (e *eventService) Listen(ctx context.Context) {
	logger := e.logger.With().Str("name", "eventService.Listen").Logger()

	e.dispatcher.Start(ctx)
	defer e.dispatcher.Stop()

	updates := make(chan Update)
	errs := make(chan error)

	go e.apis.Messenger.ReadUpdates(updates, errs)

	logger.Info().Msg("listening for updates")

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("stopped listening for updates")
			return

		case err := <-errs:
			logger.Error().Err(err).Msg("read updates")

		case update, ok := <-updates:
			if !ok {
				logger.Info().Msg("updates channel closed")
				return
			}

			e.dispatcher.Dispatch(update.GetUserID(), update)
		}
	}
}

// processUpdate handles a single inbound event. A panic in a handler is
// contained here so one malformed event cannot take the listener down.
func (e *eventService) processUpdate(ctx context.Context, update Update) {
	logger := e.logger.With().Str("name", "eventService.processUpdate").Logger()

	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Int64("userID", update.GetUserID()).Msg("recovered from panic in update handler")
		}
	}()

	if update.GetUserID() != e.ownerID {
		logger.Info().Int64("userID", update.GetUserID()).Msg("refused update from unknown user")

		_, err := e.apis.Messenger.SendMessage(update.GetChatID(), "Это личный бот. Доступ закрыт.")
		if err != nil {
			logger.Warn().Err(err).Msg("send refusal")
		}
		return
	}

	session := e.stores.Session.GetOrCreate(update.GetUserID(), update.GetChatID())

	var err error
	if update.IsCallback() {
		err = e.handler.HandleAction(ctx, session, model.ParseAction(update.GetCallbackData()), update.GetCallbackID())
	} else {
		err = e.routeText(ctx, session, update.GetText())
	}

	if err != nil {
		logger.Error().Err(err).Int64("userID", update.GetUserID()).Msg("handle update")
	}
}

// routeText maps message text onto commands, reply-keyboard captions and
// step input, in that order.
func (e *eventService) routeText(ctx context.Context, session *model.Session, text string) error {
	text = strings.TrimSpace(text)

	switch text {
	case model.BotStartCommand:
		return e.handler.HandleStart(ctx, session)
	case model.BotCancelCommand:
		return e.handler.HandleCancel(ctx, session)
	case model.BotAddTransactionButton:
		return e.handler.HandleStartTransaction(ctx, session)
	case model.BotDeleteLastButton:
		return e.handler.HandleDeleteLast(ctx, session)
	}

	if kind, ok := model.ReportKindForButton(text); ok {
		return e.handler.HandleReportMenu(ctx, session, kind)
	}

	err := e.handler.HandleText(ctx, session, text)
	if err != nil {
		return fmt.Errorf("handle text input: %w", err)
	}

	return nil
}
