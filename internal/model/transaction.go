package model

import (
	"fmt"

	"github.com/andreyminyukevich-create/tg-expenses-bot/pkg/money"
)

// TransactionType represents the kind of a recorded transaction.
type TransactionType string

const (
	// TransactionTypeExpense represents money spent.
	TransactionTypeExpense TransactionType = "expense"
	// TransactionTypeRevenue represents money received.
	TransactionTypeRevenue TransactionType = "revenue"
)

// Label returns the user-facing name of the transaction type.
func (t TransactionType) Label() string {
	if t == TransactionTypeRevenue {
		return "Выручка"
	}
	return "Затраты"
}

// MaxFreeTextLength bounds counterparty and memo inputs.
const MaxFreeTextLength = 500

// DraftBase holds the fields shared by every draft kind.
type DraftBase struct {
	Date         string // DD.MM.YYYY
	Amount       money.Money
	Counterparty string
}

// Draft is an in-progress, not-yet-submitted transaction.
// Group and memo exist only on the expense form, which is what makes
// the two concrete kinds separate types.
type Draft interface {
	// Type returns the kind of transaction being drafted.
	Type() TransactionType
	// Base returns the mutable shared fields of the draft.
	Base() *DraftBase
	// Record converts the draft into the record sent to the gateway.
	Record() TransactionRecord
	// Summary renders the draft for the confirmation screen.
	Summary() string
}

// ExpenseDraft is a draft of a spending transaction.
type ExpenseDraft struct {
	DraftBase

	Group Group
	Memo  string
}

var _ Draft = (*ExpenseDraft)(nil)

// NewExpenseDraft creates an expense draft dated with the given day.
func NewExpenseDraft(date string) *ExpenseDraft {
	return &ExpenseDraft{DraftBase: DraftBase{Date: date}}
}

// Type returns TransactionTypeExpense.
func (d *ExpenseDraft) Type() TransactionType { return TransactionTypeExpense }

// Base returns the shared draft fields.
func (d *ExpenseDraft) Base() *DraftBase { return &d.DraftBase }

// Record converts the draft into a gateway record.
func (d *ExpenseDraft) Record() TransactionRecord {
	return TransactionRecord{
		Type:         TransactionTypeExpense,
		Date:         d.Date,
		Amount:       d.Amount,
		Counterparty: d.Counterparty,
		Group:        string(d.Group),
		Memo:         d.Memo,
	}
}

// Summary renders the draft for the confirmation screen.
func (d *ExpenseDraft) Summary() string {
	return fmt.Sprintf(
		"Тип: Затраты\nДата: %s\nСумма: %s\nКому: %s\nГруппа: %s\nЗа что: %s",
		d.Date, d.Amount.StringFixed(), d.Counterparty, d.Group, d.Memo,
	)
}

// RevenueDraft is a draft of an incoming transaction.
type RevenueDraft struct {
	DraftBase
}

var _ Draft = (*RevenueDraft)(nil)

// NewRevenueDraft creates a revenue draft dated with the given day.
func NewRevenueDraft(date string) *RevenueDraft {
	return &RevenueDraft{DraftBase: DraftBase{Date: date}}
}

// Type returns TransactionTypeRevenue.
func (d *RevenueDraft) Type() TransactionType { return TransactionTypeRevenue }

// Base returns the shared draft fields.
func (d *RevenueDraft) Base() *DraftBase { return &d.DraftBase }

// Record converts the draft into a gateway record.
func (d *RevenueDraft) Record() TransactionRecord {
	return TransactionRecord{
		Type:         TransactionTypeRevenue,
		Date:         d.Date,
		Amount:       d.Amount,
		Counterparty: d.Counterparty,
	}
}

// Summary renders the draft for the confirmation screen.
func (d *RevenueDraft) Summary() string {
	return fmt.Sprintf(
		"Тип: Выручка\nДата: %s\nСумма: %s\nКто: %s",
		d.Date, d.Amount.StringFixed(), d.Counterparty,
	)
}

// TransactionRecord is the flat form of a transaction exchanged with the
// gateway. Group and Memo are empty for revenue records.
type TransactionRecord struct {
	Type         TransactionType
	Date         string
	Amount       money.Money
	Counterparty string
	Group        string
	Memo         string
}
