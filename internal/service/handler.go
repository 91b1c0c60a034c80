package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/andreyminyukevich-create/tg-expenses-bot/internal/model"
	"github.com/andreyminyukevich-create/tg-expenses-bot/pkg/errs"
	"github.com/andreyminyukevich-create/tg-expenses-bot/pkg/logger"
	"github.com/andreyminyukevich-create/tg-expenses-bot/pkg/money"
	"github.com/google/uuid"
)

type handlerService struct {
	logger    *logger.Logger
	apis      APIs
	stores    Stores
	responder responder
	location  *time.Location
	now       func() time.Time
}

var _ HandlerService = (*handlerService)(nil)

// HandlerOptions represents input options for new instance of handler service.
type HandlerOptions struct {
	Logger *logger.Logger
	APIs   APIs
	Stores Stores
	// RandSource seeds the failure-reply picker. Tests pin it.
	RandSource rand.Source
	// Location is the operator's timezone used for date defaults.
	Location *time.Location
	// Now overrides the clock. Nil means time.Now.
	Now func() time.Time
}

// NewHandler returns new instance of handler service.
func NewHandler(opts *HandlerOptions) *handlerService {
	location := opts.Location
	if location == nil {
		location = time.Local
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	source := opts.RandSource
	if source == nil {
		source = rand.NewSource(time.Now().UnixNano())
	}

	return &handlerService{
		logger:    opts.Logger,
		apis:      opts.APIs,
		stores:    opts.Stores,
		responder: newResponder(source),
		location:  location,
		now:       now,
	}
}

func (h *handlerService) today() string {
	return model.FormatDate(h.now().In(h.location))
}

// renderPrompt keeps the single live "screen" message up to date. It
// edits the message in place and falls back to sending a fresh one when
// the handle is stale, storing the new handle either way.
func (h *handlerService) renderPrompt(session *model.Session, text string, buildKeyboard func(nonce string) []InlineKeyboardRow) error {
	logger := h.logger.With().Str("name", "handlerService.renderPrompt").Logger()

	nonce := uuid.NewString()

	var keyboard []InlineKeyboardRow
	if buildKeyboard != nil {
		keyboard = buildKeyboard(nonce)
	}

	if session.ScreenMessageID != 0 {
		err := h.apis.Messenger.EditMessage(EditMessageOptions{
			ChatID:         session.ChatID,
			MessageID:      session.ScreenMessageID,
			Message:        text,
			InlineKeyboard: keyboard,
		})
		if err == nil {
			session.PromptNonce = nonce
			return nil
		}

		logger.Warn().Err(err).Int("messageID", session.ScreenMessageID).Msg("edit screen message, resending")
	}

	messageID, err := h.apis.Messenger.SendWithKeyboard(SendWithKeyboardOptions{
		ChatID:         session.ChatID,
		Message:        text,
		InlineKeyboard: keyboard,
	})
	if err != nil {
		logger.Error().Err(err).Msg("send screen message")
		return fmt.Errorf("send screen message: %w", err)
	}

	session.ScreenMessageID = messageID
	session.PromptNonce = nonce

	return nil
}

func (h *handlerService) HandleStart(ctx context.Context, session *model.Session) error {
	logger := h.logger.With().Str("name", "handlerService.HandleStart").Logger()

	_, err := h.apis.Messenger.SendWithKeyboard(SendWithKeyboardOptions{
		ChatID:   session.ChatID,
		Message:  "Готово.",
		Keyboard: mainKeyboard(),
	})
	if err != nil {
		logger.Error().Err(err).Msg("send main keyboard")
		return fmt.Errorf("send main keyboard: %w", err)
	}

	logger.Info().Msg("handled start")
	return nil
}

func (h *handlerService) HandleCancel(ctx context.Context, session *model.Session) error {
	logger := h.logger.With().Str("name", "handlerService.HandleCancel").Logger()

	if !session.HasActiveDraft() {
		return h.renderPrompt(session, "Нечего отменять.", nil)
	}

	session.Reset()

	err := h.renderPrompt(session, "Отменено.", nil)
	if err != nil {
		logger.Error().Err(err).Msg("render cancel screen")
		return fmt.Errorf("render cancel screen: %w", err)
	}

	logger.Info().Msg("handled cancel")
	return nil
}

func (h *handlerService) HandleStartTransaction(ctx context.Context, session *model.Session) error {
	logger := h.logger.With().Str("name", "handlerService.HandleStartTransaction").Logger()

	// Starting over replaces whatever form was in progress.
	session.Reset()
	session.Step = model.StepType

	err := h.renderPrompt(session, "Тип транзакции:", typeKeyboard)
	if err != nil {
		logger.Error().Err(err).Msg("render type prompt")
		return fmt.Errorf("render type prompt: %w", err)
	}

	logger.Info().Msg("started transaction form")
	return nil
}

func (h *handlerService) HandleText(ctx context.Context, session *model.Session, text string) error {
	logger := h.logger.With().Str("name", "handlerService.HandleText").Logger()
	logger.Debug().Str("step", string(session.Step)).Msg("got free-text input")

	switch session.Step {
	case model.StepIdle:
		_, err := h.apis.Messenger.SendWithKeyboard(SendWithKeyboardOptions{
			ChatID:   session.ChatID,
			Message:  "Не понял. Выберите действие на клавиатуре.",
			Keyboard: mainKeyboard(),
		})
		if err != nil {
			return fmt.Errorf("send unknown input hint: %w", err)
		}
		return nil

	case model.StepDate:
		return h.handleDateInput(session, text)

	case model.StepAmount:
		return h.handleAmountInput(session, text)

	case model.StepAmountConfirm:
		// Any free text replaces the ambiguous input: candidates are
		// discarded and the text is parsed as a fresh amount.
		session.AmountCandidates = nil
		session.Step = model.StepAmount
		return h.handleAmountInput(session, text)

	case model.StepCounterparty:
		return h.handleCounterpartyInput(session, text)

	case model.StepMemo:
		return h.handleMemoInput(session, text)

	case model.StepConfirm:
		// Only the buttons decide the draft's fate.
		return h.renderConfirmation(session)

	default:
		// Choice steps only react to buttons.
		return h.renderPrompt(session, "Используйте кнопки выше или /cancel.", h.keyboardForStep(session))
	}
}

// keyboardForStep rebuilds the keyboard matching the current step, used
// when a prompt has to be re-rendered.
func (h *handlerService) keyboardForStep(session *model.Session) func(nonce string) []InlineKeyboardRow {
	switch session.Step {
	case model.StepType:
		return typeKeyboard
	case model.StepGroup:
		return groupsKeyboard
	default:
		return nil
	}
}

func (h *handlerService) handleDateInput(session *model.Session, text string) error {
	date, err := model.ParseDateInput(text, h.now().In(h.location))
	if err != nil {
		if errs.IsExpected(err) {
			return h.renderPrompt(session, err.Error(), dateKeyboard)
		}

		return fmt.Errorf("parse date input: %w", err)
	}

	session.Draft.Base().Date = date
	session.Step = model.StepAmount

	return h.renderPrompt(session, "Сумма?", nil)
}

func (h *handlerService) handleAmountInput(session *model.Session, text string) error {
	logger := h.logger.With().Str("name", "handlerService.handleAmountInput").Logger()

	result := parseAmount(text)
	switch result.Status {
	case model.AmountParseInvalid:
		return h.renderPrompt(session, h.responder.Pick(model.FailureInvalidAmount), nil)

	case model.AmountParseAmbiguous:
		session.AmountCandidates = result.Candidates[:]
		session.Step = model.StepAmountConfirm

		logger.Debug().
			Str("first", result.Candidates[0].StringFixed()).
			Str("second", result.Candidates[1].StringFixed()).
			Msg("amount is ambiguous, asking to disambiguate")

		candidates := session.AmountCandidates
		return h.renderPrompt(session, "Какую сумму вы имели в виду?", func(nonce string) []InlineKeyboardRow {
			return amountCandidatesKeyboard(nonce, candidates)
		})

	default:
		return h.acceptAmount(session, result.Amount)
	}
}

// acceptAmount stores a parsed amount after range validation and moves
// the form to the counterparty step.
func (h *handlerService) acceptAmount(session *model.Session, amount money.Money) error {
	if !validateAmountRange(amount) {
		session.AmountCandidates = nil
		session.Step = model.StepAmount
		return h.renderPrompt(session, h.responder.Pick(model.FailureAmountOutOfRange), nil)
	}

	session.Draft.Base().Amount = amount
	session.AmountCandidates = nil
	session.Step = model.StepCounterparty

	return h.renderPrompt(session, h.counterpartyQuestion(session), nil)
}

func (h *handlerService) counterpartyQuestion(session *model.Session) string {
	if session.Draft.Type() == model.TransactionTypeExpense {
		return "Кому?"
	}
	return "Кто?"
}

func (h *handlerService) handleCounterpartyInput(session *model.Session, text string) error {
	if len([]rune(text)) > model.MaxFreeTextLength {
		return h.renderPrompt(session, h.responder.Pick(model.FailureTextTooLong), nil)
	}

	session.Draft.Base().Counterparty = text

	if session.Draft.Type() == model.TransactionTypeExpense {
		session.Step = model.StepGroup
		return h.renderPrompt(session, "Группа:", groupsKeyboard)
	}

	session.Step = model.StepConfirm
	return h.renderConfirmation(session)
}

func (h *handlerService) handleMemoInput(session *model.Session, text string) error {
	if len([]rune(text)) > model.MaxFreeTextLength {
		return h.renderPrompt(session, h.responder.Pick(model.FailureTextTooLong), nil)
	}

	expense, ok := session.Draft.(*model.ExpenseDraft)
	if !ok {
		return fmt.Errorf("memo step reached with %s draft", session.Draft.Type())
	}
	expense.Memo = text

	session.Step = model.StepConfirm
	return h.renderConfirmation(session)
}

func (h *handlerService) renderConfirmation(session *model.Session) error {
	text := "Проверьте запись:\n\n" + session.Draft.Summary()
	return h.renderPrompt(session, text, confirmKeyboard)
}

func (h *handlerService) HandleAction(ctx context.Context, session *model.Session, action model.Action, callbackID string) error {
	logger := h.logger.With().Str("name", "handlerService.HandleAction").Logger()
	logger.Debug().Str("kind", string(action.Kind)).Str("step", string(session.Step)).Msg("got action")

	switch action.Kind {
	case model.ActionCancel:
		h.answerCallback(callbackID, "Ок")
		return h.HandleCancel(ctx, session)

	case model.ActionNavigateReport:
		h.answerCallback(callbackID, "")
		return h.handleNavigateReport(ctx, session, action.ReportKind, action.Period)
	}

	// Everything below is bound to the prompt that issued the button.
	// A press carrying an older nonce arrived after the session moved
	// on; reject it without touching state.
	if action.Nonce != session.PromptNonce {
		logger.Info().Str("kind", string(action.Kind)).Msg("rejected stale button press")
		h.answerCallback(callbackID, h.responder.Pick(model.FailureStaleInteraction))
		return nil
	}

	switch action.Kind {
	case model.ActionSelectType:
		return h.handleSelectType(session, action.TransactionType, callbackID)
	case model.ActionSelectDate:
		return h.handleSelectDate(session, action.QuickPick, callbackID)
	case model.ActionSelectGroup:
		return h.handleSelectGroup(session, action.GroupIndex, callbackID)
	case model.ActionSelectAmountCandidate:
		return h.handleSelectAmountCandidate(session, action.CandidateIndex, callbackID)
	case model.ActionConfirm, model.ActionRetry:
		h.answerCallback(callbackID, "")
		return h.handleSubmit(ctx, session)
	case model.ActionDeleteLast:
		h.answerCallback(callbackID, "")
		return h.handleDeleteLastConfirmed(ctx, session)
	default:
		h.answerCallback(callbackID, h.responder.Pick(model.FailureStaleInteraction))
		return nil
	}
}

// answerCallback acknowledges a button press. Failures are swallowed:
// an unanswered callback only leaves the client spinner visible.
func (h *handlerService) answerCallback(callbackID, text string) {
	if callbackID == "" {
		return
	}

	err := h.apis.Messenger.AnswerCallback(callbackID, text)
	if err != nil {
		h.logger.Warn().Err(err).Msg("answer callback query")
	}
}

func (h *handlerService) handleSelectType(session *model.Session, transactionType model.TransactionType, callbackID string) error {
	if session.Step != model.StepType {
		h.answerCallback(callbackID, h.responder.Pick(model.FailureStaleInteraction))
		return nil
	}

	switch transactionType {
	case model.TransactionTypeExpense:
		session.Draft = model.NewExpenseDraft(h.today())
	case model.TransactionTypeRevenue:
		session.Draft = model.NewRevenueDraft(h.today())
	default:
		h.answerCallback(callbackID, h.responder.Pick(model.FailureStaleInteraction))
		return nil
	}

	session.Step = model.StepDate
	h.answerCallback(callbackID, "Ок")

	return h.renderPrompt(session, "Дата? Выберите или введите ДД.ММ или ДД.ММ.ГГГГ", dateKeyboard)
}

func (h *handlerService) handleSelectDate(session *model.Session, pick model.DateQuickPick, callbackID string) error {
	if session.Step != model.StepDate {
		h.answerCallback(callbackID, h.responder.Pick(model.FailureStaleInteraction))
		return nil
	}

	date, ok := pick.Resolve(h.now().In(h.location))
	if !ok {
		h.answerCallback(callbackID, h.responder.Pick(model.FailureStaleInteraction))
		return nil
	}

	session.Draft.Base().Date = date
	session.Step = model.StepAmount
	h.answerCallback(callbackID, "Ок")

	return h.renderPrompt(session, "Сумма?", nil)
}

func (h *handlerService) handleSelectGroup(session *model.Session, index int, callbackID string) error {
	if session.Step != model.StepGroup {
		h.answerCallback(callbackID, h.responder.Pick(model.FailureStaleInteraction))
		return nil
	}

	group, ok := model.GroupByIndex(index)
	if !ok {
		h.answerCallback(callbackID, h.responder.Pick(model.FailureStaleInteraction))
		return nil
	}

	expense, isExpense := session.Draft.(*model.ExpenseDraft)
	if !isExpense {
		h.answerCallback(callbackID, h.responder.Pick(model.FailureStaleInteraction))
		return nil
	}
	expense.Group = group

	session.Step = model.StepMemo
	h.answerCallback(callbackID, "Ок")

	return h.renderPrompt(session, "За что?", nil)
}

func (h *handlerService) handleSelectAmountCandidate(session *model.Session, index int, callbackID string) error {
	if session.Step != model.StepAmountConfirm || index < 0 || index >= len(session.AmountCandidates) {
		h.answerCallback(callbackID, h.responder.Pick(model.FailureStaleInteraction))
		return nil
	}

	h.answerCallback(callbackID, "Ок")
	return h.acceptAmount(session, session.AmountCandidates[index])
}

// handleSubmit appends the finished draft through the gateway. Failure
// keeps the session in the confirm step with the same draft, so retry
// replays the identical record without re-collecting anything.
func (h *handlerService) handleSubmit(ctx context.Context, session *model.Session) error {
	logger := h.logger.With().Str("name", "handlerService.handleSubmit").Logger()

	if session.Step != model.StepConfirm || session.Draft == nil {
		return h.renderPrompt(session, h.responder.Pick(model.FailureStaleInteraction), nil)
	}

	record := session.Draft.Record()

	err := h.apis.Gateway.Append(ctx, record)
	if err != nil {
		category := model.GatewayFailureCategory(err)
		logger.Error().Err(err).Str("category", string(category)).Msg("append transaction via gateway")

		text := h.responder.Pick(category) + "\n\n" + session.Draft.Summary()
		return h.renderPrompt(session, text, retryKeyboard)
	}

	summary := session.Draft.Summary()
	session.Reset()

	logger.Info().
		Str("type", string(record.Type)).
		Str("amount", record.Amount.StringFixed()).
		Msg("transaction recorded")

	return h.renderPrompt(session, "Записано.\n\n"+summary, nil)
}

func (h *handlerService) HandleReportMenu(ctx context.Context, session *model.Session, kind model.ReportKind) error {
	return h.renderPrompt(session, "За какой период?", func(string) []InlineKeyboardRow {
		return periodKeyboard(kind)
	})
}

func (h *handlerService) handleNavigateReport(ctx context.Context, session *model.Session, kind model.ReportKind, period model.Period) error {
	logger := h.logger.With().Str("name", "handlerService.handleNavigateReport").Logger()
	logger.Debug().Str("kind", string(kind)).Str("period", string(period)).Msg("building report")

	text, err := h.buildReport(ctx, kind, period)
	if err != nil {
		category := model.GatewayFailureCategory(err)
		logger.Error().Err(err).Str("category", string(category)).Msg("fetch report from gateway")

		// The period keyboard stays on screen, so pressing the same
		// period again is the explicit retry.
		return h.renderPrompt(session, h.responder.Pick(category), func(string) []InlineKeyboardRow {
			return periodKeyboard(kind)
		})
	}

	return h.renderPrompt(session, text, func(string) []InlineKeyboardRow {
		return periodKeyboard(kind)
	})
}

const topPayersLimit = 10

func (h *handlerService) buildReport(ctx context.Context, kind model.ReportKind, period model.Period) (string, error) {
	switch kind {
	case model.ReportKindStats:
		stats, err := h.apis.Gateway.Stats(ctx, period)
		if err != nil {
			return "", fmt.Errorf("fetch stats: %w", err)
		}
		return renderStats(stats, period), nil

	case model.ReportKindGroupTotals:
		items, err := h.apis.Gateway.GroupTotals(ctx, period)
		if err != nil {
			return "", fmt.Errorf("fetch group totals: %w", err)
		}
		return renderGroupTotals(items, period), nil

	case model.ReportKindTopPayers:
		payers, err := h.apis.Gateway.TopPayers(ctx, period, topPayersLimit)
		if err != nil {
			return "", fmt.Errorf("fetch top payers: %w", err)
		}
		return renderTopPayers(payers, period), nil

	case model.ReportKindTransactions:
		expenses, err := h.apis.Gateway.Transactions(ctx, model.TransactionTypeExpense, period)
		if err != nil {
			return "", fmt.Errorf("fetch expense transactions: %w", err)
		}
		revenue, err := h.apis.Gateway.Transactions(ctx, model.TransactionTypeRevenue, period)
		if err != nil {
			return "", fmt.Errorf("fetch revenue transactions: %w", err)
		}
		return renderTransactions(expenses, revenue, period), nil

	default:
		return "", fmt.Errorf("unknown report kind: %v", kind)
	}
}

func (h *handlerService) HandleDeleteLast(ctx context.Context, session *model.Session) error {
	return h.renderPrompt(session, "Удалить последнюю запись?", deleteLastKeyboard)
}

func (h *handlerService) handleDeleteLastConfirmed(ctx context.Context, session *model.Session) error {
	logger := h.logger.With().Str("name", "handlerService.handleDeleteLastConfirmed").Logger()

	deleted, err := h.apis.Gateway.DeleteLast(ctx)
	if err != nil {
		category := model.GatewayFailureCategory(err)
		logger.Error().Err(err).Str("category", string(category)).Msg("delete last transaction via gateway")

		return h.renderPrompt(session, h.responder.Pick(category), deleteLastKeyboard)
	}

	logger.Info().Msg("deleted last transaction")
	return h.renderPrompt(session, renderDeletedRecord(deleted), nil)
}
