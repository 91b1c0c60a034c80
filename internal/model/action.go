package model

import (
	"strconv"
	"strings"
)

// ActionKind discriminates the inbound actions a button press can carry.
type ActionKind string

const (
	// ActionSelectType carries the expense/revenue choice.
	ActionSelectType ActionKind = "type"
	// ActionSelectDate carries a date quick pick.
	ActionSelectDate ActionKind = "date"
	// ActionSelectGroup carries an expense group chosen by catalog index.
	ActionSelectGroup ActionKind = "group"
	// ActionSelectAmountCandidate carries the chosen amount interpretation.
	ActionSelectAmountCandidate ActionKind = "amount"
	// ActionConfirm submits the draft to the gateway.
	ActionConfirm ActionKind = "confirm"
	// ActionRetry replays the failed submission without re-collecting data.
	ActionRetry ActionKind = "retry"
	// ActionCancel discards the draft from any step.
	ActionCancel ActionKind = "cancel"
	// ActionDeleteLast asks the gateway to remove the last recorded row.
	ActionDeleteLast ActionKind = "dellast"
	// ActionNavigateReport requests a rendered report for a period.
	ActionNavigateReport ActionKind = "report"
	// ActionUnknown marks a payload that could not be decoded.
	ActionUnknown ActionKind = "unknown"
)

// Action is a button press decoded once at the transport boundary.
// Nonce binds the press to the prompt that issued the button, so a press
// arriving after the session has moved on is detectable as stale.
type Action struct {
	Kind  ActionKind
	Nonce string

	TransactionType TransactionType
	QuickPick       DateQuickPick
	GroupIndex      int
	CandidateIndex  int
	ReportKind      ReportKind
	Period          Period
}

// Encode renders the action as callback payload data.
func (a Action) Encode() string {
	switch a.Kind {
	case ActionSelectType:
		return join(string(a.Kind), string(a.TransactionType), a.Nonce)
	case ActionSelectDate:
		return join(string(a.Kind), string(a.QuickPick), a.Nonce)
	case ActionSelectGroup:
		return join(string(a.Kind), strconv.Itoa(a.GroupIndex), a.Nonce)
	case ActionSelectAmountCandidate:
		return join(string(a.Kind), strconv.Itoa(a.CandidateIndex), a.Nonce)
	case ActionConfirm, ActionRetry, ActionDeleteLast:
		return join(string(a.Kind), a.Nonce)
	case ActionCancel:
		return string(ActionCancel)
	case ActionNavigateReport:
		return join(string(a.Kind), string(a.ReportKind), string(a.Period))
	default:
		return string(ActionUnknown)
	}
}

func join(parts ...string) string {
	return strings.Join(parts, ":")
}

// ParseAction decodes callback payload data into an Action.
// Malformed payloads come back as ActionUnknown rather than an error:
// the caller treats them the same as any other unusable press.
func ParseAction(data string) Action {
	parts := strings.Split(data, ":")

	switch ActionKind(parts[0]) {
	case ActionSelectType:
		if len(parts) != 3 {
			break
		}
		transactionType := TransactionType(parts[1])
		if transactionType != TransactionTypeExpense && transactionType != TransactionTypeRevenue {
			break
		}
		return Action{Kind: ActionSelectType, TransactionType: transactionType, Nonce: parts[2]}

	case ActionSelectDate:
		if len(parts) != 3 {
			break
		}
		return Action{Kind: ActionSelectDate, QuickPick: DateQuickPick(parts[1]), Nonce: parts[2]}

	case ActionSelectGroup:
		if len(parts) != 3 {
			break
		}
		index, err := strconv.Atoi(parts[1])
		if err != nil {
			break
		}
		return Action{Kind: ActionSelectGroup, GroupIndex: index, Nonce: parts[2]}

	case ActionSelectAmountCandidate:
		if len(parts) != 3 {
			break
		}
		index, err := strconv.Atoi(parts[1])
		if err != nil {
			break
		}
		return Action{Kind: ActionSelectAmountCandidate, CandidateIndex: index, Nonce: parts[2]}

	case ActionConfirm, ActionRetry, ActionDeleteLast:
		if len(parts) != 2 {
			break
		}
		return Action{Kind: ActionKind(parts[0]), Nonce: parts[1]}

	case ActionCancel:
		return Action{Kind: ActionCancel}

	case ActionNavigateReport:
		if len(parts) != 3 {
			break
		}
		kind, ok := ParseReportKind(parts[1])
		if !ok {
			break
		}
		period, ok := ParsePeriod(parts[2])
		if !ok {
			break
		}
		return Action{Kind: ActionNavigateReport, ReportKind: kind, Period: period}
	}

	return Action{Kind: ActionUnknown}
}
