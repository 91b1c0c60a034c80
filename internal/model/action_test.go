package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAction_EncodeParseRoundTrip(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		desc   string
		action Action
	}{
		{
			desc:   "select type",
			action: Action{Kind: ActionSelectType, TransactionType: TransactionTypeExpense, Nonce: "n1"},
		},
		{
			desc:   "select date",
			action: Action{Kind: ActionSelectDate, QuickPick: DateQuickPickYesterday, Nonce: "n2"},
		},
		{
			desc:   "select group by index",
			action: Action{Kind: ActionSelectGroup, GroupIndex: 13, Nonce: "n3"},
		},
		{
			desc:   "select amount candidate",
			action: Action{Kind: ActionSelectAmountCandidate, CandidateIndex: 1, Nonce: "n4"},
		},
		{
			desc:   "confirm",
			action: Action{Kind: ActionConfirm, Nonce: "n5"},
		},
		{
			desc:   "retry",
			action: Action{Kind: ActionRetry, Nonce: "n6"},
		},
		{
			desc:   "cancel carries no nonce",
			action: Action{Kind: ActionCancel},
		},
		{
			desc:   "delete last",
			action: Action{Kind: ActionDeleteLast, Nonce: "n7"},
		},
		{
			desc:   "navigate report",
			action: Action{Kind: ActionNavigateReport, ReportKind: ReportKindTopPayers, Period: PeriodMonth},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.action, ParseAction(tc.action.Encode()))
		})
	}
}

func TestAction_EncodeFitsCallbackDataLimit(t *testing.T) {
	t.Parallel()

	// Telegram rejects callback data over 64 bytes. UUID nonces are the
	// longest component, so check with a realistic one.
	const nonce = "a3bb189e-8bf9-3888-9912-ace4e6543002"

	actions := []Action{
		{Kind: ActionSelectType, TransactionType: TransactionTypeExpense, Nonce: nonce},
		{Kind: ActionSelectDate, QuickPick: DateQuickPickDayBefore, Nonce: nonce},
		{Kind: ActionSelectGroup, GroupIndex: len(Groups) - 1, Nonce: nonce},
		{Kind: ActionSelectAmountCandidate, CandidateIndex: 1, Nonce: nonce},
		{Kind: ActionConfirm, Nonce: nonce},
		{Kind: ActionNavigateReport, ReportKind: ReportKindTransactions, Period: PeriodYear},
	}

	for _, action := range actions {
		assert.LessOrEqual(t, len(action.Encode()), 64, "payload %q", action.Encode())
	}
}

func TestParseAction_Malformed(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		desc string
		data string
	}{
		{desc: "empty", data: ""},
		{desc: "unknown kind", data: "teleport:now"},
		{desc: "type without nonce", data: "type:expense"},
		{desc: "type with bogus value", data: "type:loan:n1"},
		{desc: "group index not a number", data: "group:first:n1"},
		{desc: "report with bogus period", data: "report:stats:decade"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, ActionUnknown, ParseAction(tc.data).Kind)
		})
	}
}
