package model

import "github.com/andreyminyukevich-create/tg-expenses-bot/pkg/money"

// Period represents the reporting window.
type Period string

const (
	// PeriodToday covers the current day.
	PeriodToday Period = "today"
	// PeriodMonth covers the current month.
	PeriodMonth Period = "month"
	// PeriodYear covers the current year.
	PeriodYear Period = "year"
)

// Label returns the user-facing name of the period.
func (p Period) Label() string {
	switch p {
	case PeriodToday:
		return "за сегодня"
	case PeriodMonth:
		return "за месяц"
	case PeriodYear:
		return "за год"
	default:
		return string(p)
	}
}

// ParsePeriod converts a callback payload fragment into a Period.
func ParsePeriod(value string) (Period, bool) {
	switch Period(value) {
	case PeriodToday, PeriodMonth, PeriodYear:
		return Period(value), true
	default:
		return "", false
	}
}

// ReportKind represents one of the aggregate views the gateway can build.
type ReportKind string

const (
	// ReportKindStats is the revenue/expense/balance summary.
	ReportKindStats ReportKind = "stats"
	// ReportKindGroupTotals is the per-group expense breakdown.
	ReportKindGroupTotals ReportKind = "groups"
	// ReportKindTopPayers ranks counterparties by revenue brought in.
	ReportKindTopPayers ReportKind = "payers"
	// ReportKindTransactions lists individual transactions.
	ReportKindTransactions ReportKind = "list"
)

// ParseReportKind converts a callback payload fragment into a ReportKind.
func ParseReportKind(value string) (ReportKind, bool) {
	switch ReportKind(value) {
	case ReportKindStats, ReportKindGroupTotals, ReportKindTopPayers, ReportKindTransactions:
		return ReportKind(value), true
	default:
		return "", false
	}
}

// StatsReport is the aggregate summary returned by the gateway.
type StatsReport struct {
	Revenue   money.Money
	Expense   money.Money
	MonthName string
	TopGroups []GroupTotal
}

// Balance returns revenue minus expense.
func (s StatsReport) Balance() money.Money {
	return s.Revenue.Sub(s.Expense)
}

// GroupTotal is the total spent within one expense group.
type GroupTotal struct {
	Group  string
	Amount money.Money
}

// Payer is one entry of the top-payers ranking.
type Payer struct {
	Name  string
	Total money.Money
	Count int
}
