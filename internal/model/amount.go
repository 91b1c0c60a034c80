package model

import "github.com/andreyminyukevich-create/tg-expenses-bot/pkg/money"

// AmountParseStatus tags the outcome of parsing free-form amount text.
type AmountParseStatus string

const (
	// AmountParseValid means the text resolved to a single amount.
	AmountParseValid AmountParseStatus = "valid"
	// AmountParseInvalid means the text could not be read as an amount.
	AmountParseInvalid AmountParseStatus = "invalid"
	// AmountParseAmbiguous means the separator could equally be a
	// thousands mark or a decimal point; the user has to choose.
	AmountParseAmbiguous AmountParseStatus = "ambiguous"
)

// AmountParseResult is the tagged outcome of amount parsing. Amount is
// set for valid results, Candidates for ambiguous ones; both are rounded
// to cents.
type AmountParseResult struct {
	Status     AmountParseStatus
	Amount     money.Money
	Candidates [2]money.Money
}
