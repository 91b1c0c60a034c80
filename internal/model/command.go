package model

// Slash commands the bot reacts to.
const (
	// BotStartCommand greets the operator and shows the main keyboard.
	BotStartCommand = "/start"
	// BotCancelCommand discards the active draft, same as the inline
	// cancel button.
	BotCancelCommand = "/cancel"
)

// Reply-keyboard button captions. The transport delivers these as plain
// message text, so they double as commands.
const (
	// BotAddTransactionButton starts the transaction form.
	BotAddTransactionButton = "Внести транзакцию"
	// BotStatsButton opens the stats report period menu.
	BotStatsButton = "Статистика"
	// BotGroupTotalsButton opens the group totals period menu.
	BotGroupTotalsButton = "Группы затрат"
	// BotTopPayersButton opens the top payers period menu.
	BotTopPayersButton = "Топ плательщиков"
	// BotTransactionsButton opens the transaction list period menu.
	BotTransactionsButton = "Операции"
	// BotDeleteLastButton asks to remove the last recorded transaction.
	BotDeleteLastButton = "Удалить последнюю"
	// BotCancelButton is the caption of inline cancel buttons.
	BotCancelButton = "Отмена"
)

// ReportKindForButton maps a report menu caption to the report kind it
// opens. The second result is false for non-report captions.
func ReportKindForButton(text string) (ReportKind, bool) {
	switch text {
	case BotStatsButton:
		return ReportKindStats, true
	case BotGroupTotalsButton:
		return ReportKindGroupTotals, true
	case BotTopPayersButton:
		return ReportKindTopPayers, true
	case BotTransactionsButton:
		return ReportKindTransactions, true
	default:
		return "", false
	}
}
