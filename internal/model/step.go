package model

// Step represents the current position of a session within the
// transaction form.
type Step string

const (
	// StepIdle represents a session with no active draft.
	StepIdle Step = "idle"
	// StepType represents the step waiting for the expense/revenue choice.
	StepType Step = "choose_type"
	// StepDate represents the step waiting for the transaction date.
	StepDate Step = "enter_date"
	// StepAmount represents the step waiting for a free-text amount.
	StepAmount Step = "enter_amount"
	// StepAmountConfirm represents the step waiting for the user to pick one
	// of two candidate amount interpretations.
	StepAmountConfirm Step = "confirm_amount"
	// StepCounterparty represents the step waiting for the counterparty name.
	StepCounterparty Step = "enter_counterparty"
	// StepGroup represents the step waiting for an expense group selection.
	StepGroup Step = "choose_group"
	// StepMemo represents the step waiting for the expense memo.
	StepMemo Step = "enter_memo"
	// StepConfirm represents the step displaying the draft summary and
	// waiting for the final confirm/cancel decision.
	StepConfirm Step = "confirm"
)
