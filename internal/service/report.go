package service

import (
	"fmt"
	"strings"

	"github.com/andreyminyukevich-create/tg-expenses-bot/internal/model"
	"github.com/andreyminyukevich-create/tg-expenses-bot/pkg/money"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// amountPrinter renders amounts with Russian digit grouping.
var amountPrinter = message.NewPrinter(language.Russian)

func formatAmount(amount money.Money) string {
	return amountPrinter.Sprintf("%.2f", amount.Float64())
}

const emptyReportMessage = "Пока пусто: за этот период ничего не записано."

func renderStats(stats *model.StatsReport, period model.Period) string {
	var b strings.Builder

	title := "Статистика " + period.Label()
	if stats.MonthName != "" {
		title = fmt.Sprintf("Статистика за %s", stats.MonthName)
	}
	b.WriteString(title + "\n\n")

	b.WriteString(fmt.Sprintf("Выручка: %s\n", formatAmount(stats.Revenue)))
	b.WriteString(fmt.Sprintf("Затраты: %s\n", formatAmount(stats.Expense)))
	b.WriteString(fmt.Sprintf("Баланс: %s\n", formatAmount(stats.Balance())))

	if len(stats.TopGroups) != 0 {
		b.WriteString("\nКрупнейшие группы затрат:\n")
		for i, group := range stats.TopGroups {
			b.WriteString(fmt.Sprintf("%d. %s — %s\n", i+1, group.Group, formatAmount(group.Amount)))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func renderGroupTotals(items []model.GroupTotal, period model.Period) string {
	if len(items) == 0 {
		return emptyReportMessage
	}

	var b strings.Builder
	b.WriteString("Затраты по группам " + period.Label() + "\n\n")

	total := money.Zero
	for i, item := range items {
		total.Inc(item.Amount)
		b.WriteString(fmt.Sprintf("%d. %s — %s (итого %s)\n", i+1, item.Group, formatAmount(item.Amount), formatAmount(total)))
	}

	b.WriteString(fmt.Sprintf("\nВсего: %s", formatAmount(total)))

	return b.String()
}

func renderTopPayers(payers []model.Payer, period model.Period) string {
	if len(payers) == 0 {
		return emptyReportMessage
	}

	var b strings.Builder
	b.WriteString("Топ плательщиков " + period.Label() + "\n\n")

	total := money.Zero
	for i, payer := range payers {
		total.Inc(payer.Total)
		b.WriteString(fmt.Sprintf(
			"%d. %s — %s, платежей: %d (итого %s)\n",
			i+1, payer.Name, formatAmount(payer.Total), payer.Count, formatAmount(total),
		))
	}

	return strings.TrimRight(b.String(), "\n")
}

func renderTransactions(expenses, revenue []model.TransactionRecord, period model.Period) string {
	if len(expenses) == 0 && len(revenue) == 0 {
		return emptyReportMessage
	}

	var b strings.Builder
	b.WriteString("Операции " + period.Label() + "\n")

	if len(revenue) != 0 {
		b.WriteString("\nВыручка:\n")
		for _, record := range revenue {
			b.WriteString(fmt.Sprintf("%s — %s от %s\n", record.Date, formatAmount(record.Amount), record.Counterparty))
		}
	}

	if len(expenses) != 0 {
		b.WriteString("\nЗатраты:\n")
		for _, record := range expenses {
			line := fmt.Sprintf("%s — %s кому %s", record.Date, formatAmount(record.Amount), record.Counterparty)
			if record.Group != "" {
				line += fmt.Sprintf(" [%s]", record.Group)
			}
			if record.Memo != "" {
				line += fmt.Sprintf(" (%s)", record.Memo)
			}
			b.WriteString(line + "\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func renderDeletedRecord(record *model.TransactionRecord) string {
	if record == nil {
		return "Последняя запись удалена."
	}

	return fmt.Sprintf(
		"Удалена запись: %s, %s, %s, %s",
		record.Type.Label(), record.Date, formatAmount(record.Amount), record.Counterparty,
	)
}
