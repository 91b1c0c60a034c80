package service

import (
	"github.com/andreyminyukevich-create/tg-expenses-bot/internal/model"
	"github.com/andreyminyukevich-create/tg-expenses-bot/pkg/money"
)

// mainKeyboard is the persistent reply keyboard shown after /start and
// after every finished form.
func mainKeyboard() []KeyboardRow {
	return []KeyboardRow{
		{Buttons: []string{model.BotAddTransactionButton}},
		{Buttons: []string{model.BotStatsButton, model.BotGroupTotalsButton}},
		{Buttons: []string{model.BotTopPayersButton, model.BotTransactionsButton}},
		{Buttons: []string{model.BotDeleteLastButton}},
	}
}

func cancelRow() InlineKeyboardRow {
	return InlineKeyboardRow{Buttons: []InlineKeyboardButton{{
		Text: model.BotCancelButton,
		Data: model.Action{Kind: model.ActionCancel}.Encode(),
	}}}
}

func typeKeyboard(nonce string) []InlineKeyboardRow {
	return []InlineKeyboardRow{
		{Buttons: []InlineKeyboardButton{
			{
				Text: model.TransactionTypeExpense.Label(),
				Data: model.Action{Kind: model.ActionSelectType, TransactionType: model.TransactionTypeExpense, Nonce: nonce}.Encode(),
			},
			{
				Text: model.TransactionTypeRevenue.Label(),
				Data: model.Action{Kind: model.ActionSelectType, TransactionType: model.TransactionTypeRevenue, Nonce: nonce}.Encode(),
			},
		}},
		cancelRow(),
	}
}

func dateKeyboard(nonce string) []InlineKeyboardRow {
	var buttons []InlineKeyboardButton
	for _, pick := range model.DateQuickPicks {
		buttons = append(buttons, InlineKeyboardButton{
			Text: pick.Label(),
			Data: model.Action{Kind: model.ActionSelectDate, QuickPick: pick, Nonce: nonce}.Encode(),
		})
	}

	return []InlineKeyboardRow{
		{Buttons: buttons},
		cancelRow(),
	}
}

const groupsPerKeyboardRow = 2

// groupsKeyboard lays the fixed catalog out two per row, referencing
// groups by index to keep callback payloads short.
func groupsKeyboard(nonce string) []InlineKeyboardRow {
	keyboardRows := make([]InlineKeyboardRow, 0, len(model.Groups)/groupsPerKeyboardRow+2)

	var currentRow InlineKeyboardRow
	for i, group := range model.Groups {
		currentRow.Buttons = append(currentRow.Buttons, InlineKeyboardButton{
			Text: string(group),
			Data: model.Action{Kind: model.ActionSelectGroup, GroupIndex: i, Nonce: nonce}.Encode(),
		})

		// When row is full or we're at the last group, append row
		if len(currentRow.Buttons) == groupsPerKeyboardRow || i == len(model.Groups)-1 {
			keyboardRows = append(keyboardRows, currentRow)
			currentRow = InlineKeyboardRow{}
		}
	}

	return append(keyboardRows, cancelRow())
}

func amountCandidatesKeyboard(nonce string, candidates []money.Money) []InlineKeyboardRow {
	var buttons []InlineKeyboardButton
	for i, candidate := range candidates {
		buttons = append(buttons, InlineKeyboardButton{
			Text: candidate.StringFixed(),
			Data: model.Action{Kind: model.ActionSelectAmountCandidate, CandidateIndex: i, Nonce: nonce}.Encode(),
		})
	}

	return []InlineKeyboardRow{
		{Buttons: buttons},
		cancelRow(),
	}
}

func confirmKeyboard(nonce string) []InlineKeyboardRow {
	return []InlineKeyboardRow{
		{Buttons: []InlineKeyboardButton{{
			Text: "Подтвердить",
			Data: model.Action{Kind: model.ActionConfirm, Nonce: nonce}.Encode(),
		}}},
		cancelRow(),
	}
}

func retryKeyboard(nonce string) []InlineKeyboardRow {
	return []InlineKeyboardRow{
		{Buttons: []InlineKeyboardButton{{
			Text: "Повторить",
			Data: model.Action{Kind: model.ActionRetry, Nonce: nonce}.Encode(),
		}}},
		cancelRow(),
	}
}

func deleteLastKeyboard(nonce string) []InlineKeyboardRow {
	return []InlineKeyboardRow{
		{Buttons: []InlineKeyboardButton{{
			Text: "Удалить",
			Data: model.Action{Kind: model.ActionDeleteLast, Nonce: nonce}.Encode(),
		}}},
		cancelRow(),
	}
}

func periodKeyboard(kind model.ReportKind) []InlineKeyboardRow {
	periods := []model.Period{model.PeriodToday, model.PeriodMonth, model.PeriodYear}

	var buttons []InlineKeyboardButton
	for _, period := range periods {
		buttons = append(buttons, InlineKeyboardButton{
			Text: period.Label(),
			Data: model.Action{Kind: model.ActionNavigateReport, ReportKind: kind, Period: period}.Encode(),
		})
	}

	return []InlineKeyboardRow{{Buttons: buttons}}
}
