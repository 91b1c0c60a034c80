package model

import (
	"errors"
	"fmt"
)

// FailureCategory classifies everything that can go wrong during a
// conversation. Validation categories are resolved locally by the form;
// gateway categories surface to the user with a retry option.
type FailureCategory string

const (
	// FailureInvalidAmount marks unparseable amount text.
	FailureInvalidAmount FailureCategory = "invalid_amount"
	// FailureAmountOutOfRange marks an amount that is zero, negative or
	// above the transaction ceiling.
	FailureAmountOutOfRange FailureCategory = "amount_out_of_range"
	// FailureTextTooLong marks counterparty/memo input over the limit.
	FailureTextTooLong FailureCategory = "text_too_long"
	// FailureGatewayTimeout marks a gateway call that exceeded its deadline.
	FailureGatewayTimeout FailureCategory = "gateway_timeout"
	// FailureGatewayNetwork marks a gateway call that failed to connect.
	FailureGatewayNetwork FailureCategory = "gateway_network"
	// FailureGatewayBadResponse marks a non-JSON, non-2xx or ok:false reply.
	FailureGatewayBadResponse FailureCategory = "gateway_bad_response"
	// FailureStaleInteraction marks a button press that no longer matches
	// the session state.
	FailureStaleInteraction FailureCategory = "stale_interaction"
)

// GatewayError is a gateway failure with its category and a diagnostic
// detail that is logged but never shown to the user verbatim.
type GatewayError struct {
	Category FailureCategory
	Detail   string
}

var _ error = (*GatewayError)(nil)

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway failure (%s): %s", e.Category, e.Detail)
}

// GatewayFailureCategory extracts the category from a gateway error chain,
// defaulting to bad-response for anything unrecognized.
func GatewayFailureCategory(err error) FailureCategory {
	var gatewayErr *GatewayError
	if errors.As(err, &gatewayErr) {
		return gatewayErr.Category
	}
	return FailureGatewayBadResponse
}
