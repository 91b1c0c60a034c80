package service

import (
	"strings"
	"unicode"

	"github.com/andreyminyukevich-create/tg-expenses-bot/internal/model"
	"github.com/andreyminyukevich-create/tg-expenses-bot/pkg/money"
)

// parseAmount interprets free-form amount text typed in mixed regional
// conventions (comma decimal, dot thousands, or the reverse). A 3-digit
// trailing segment cannot be classified safely, so it comes back as
// ambiguous and the user picks the interpretation.
func parseAmount(text string) model.AmountParseResult {
	if strings.ContainsRune(text, '-') {
		return invalidAmount()
	}

	var cleaned strings.Builder
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
			cleaned.WriteRune(r)
		case r == '.' || r == ',':
			cleaned.WriteRune(r)
		case r == '\'' || r == '`' || unicode.IsSpace(r):
			// Thousands punctuation and whitespace collapse away entirely.
		default:
			// Currency signs and other noise are stripped.
		}
	}

	normalized := cleaned.String()
	if normalized == "" {
		return invalidAmount()
	}

	hasDot := strings.ContainsRune(normalized, '.')
	hasComma := strings.ContainsRune(normalized, ',')

	switch {
	case hasDot && hasComma:
		return parseMixedSeparators(normalized)
	case hasDot:
		return parseSingleSeparator(normalized, ".")
	case hasComma:
		return parseSingleSeparator(normalized, ",")
	default:
		return validAmount(normalized)
	}
}

// parseMixedSeparators handles text with both '.' and ','. The
// later-occurring separator is the decimal one; every other occurrence
// of both characters is a thousands mark.
func parseMixedSeparators(text string) model.AmountParseResult {
	lastDot := strings.LastIndex(text, ".")
	lastComma := strings.LastIndex(text, ",")

	decimalAt := lastDot
	if lastComma > lastDot {
		decimalAt = lastComma
	}

	var normalized strings.Builder
	for i, r := range text {
		switch {
		case i == decimalAt:
			normalized.WriteRune('.')
		case r == '.' || r == ',':
			// thousands mark
		default:
			normalized.WriteRune(r)
		}
	}

	return validAmount(normalized.String())
}

// parseSingleSeparator handles text where exactly one separator kind
// appears, which is where decimal/thousands ambiguity lives.
func parseSingleSeparator(text, separator string) model.AmountParseResult {
	segments := strings.Split(text, separator)
	for _, segment := range segments {
		if segment == "" {
			return invalidAmount()
		}
	}

	last := segments[len(segments)-1]
	joined := strings.Join(segments, "")

	if len(segments) == 2 {
		switch {
		case len(last) <= 2:
			return validAmount(segments[0] + "." + last)
		case len(last) == 3:
			return ambiguousAmount(joined, segments[0]+"."+last)
		default:
			return validAmount(joined)
		}
	}

	// Three or more segments: grouping, unless the final run is short
	// enough to only make sense as cents.
	if len(last) <= 2 {
		return validAmount(strings.Join(segments[:len(segments)-1], "") + "." + last)
	}

	return validAmount(joined)
}

func validAmount(text string) model.AmountParseResult {
	amount, err := money.NewFromString(text)
	if err != nil {
		return invalidAmount()
	}

	return model.AmountParseResult{
		Status: model.AmountParseValid,
		Amount: amount.RoundToCents(),
	}
}

func invalidAmount() model.AmountParseResult {
	return model.AmountParseResult{Status: model.AmountParseInvalid}
}

func ambiguousAmount(thousandsText, decimalText string) model.AmountParseResult {
	thousands, err := money.NewFromString(thousandsText)
	if err != nil {
		return invalidAmount()
	}
	decimal, err := money.NewFromString(decimalText)
	if err != nil {
		return invalidAmount()
	}

	return model.AmountParseResult{
		Status:     model.AmountParseAmbiguous,
		Candidates: [2]money.Money{thousands.RoundToCents(), decimal.RoundToCents()},
	}
}

// validateAmountRange rejects amounts a transaction cannot carry.
func validateAmountRange(amount money.Money) bool {
	return amount.IsPositive() && !amount.GreaterThan(money.MaxTransactionAmount)
}
