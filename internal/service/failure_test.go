package service

import (
	"math/rand"
	"testing"

	"github.com/andreyminyukevich-create/tg-expenses-bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponder_PickStaysInPool(t *testing.T) {
	t.Parallel()

	responder := newResponder(rand.NewSource(42))

	categories := []model.FailureCategory{
		model.FailureInvalidAmount,
		model.FailureAmountOutOfRange,
		model.FailureTextTooLong,
		model.FailureGatewayTimeout,
		model.FailureGatewayNetwork,
		model.FailureGatewayBadResponse,
		model.FailureStaleInteraction,
	}

	for _, category := range categories {
		pool := failureReplies[category]
		require.NotEmpty(t, pool, "category %s has no replies", category)

		for i := 0; i < 20; i++ {
			assert.Contains(t, pool, responder.Pick(category))
		}
	}
}

func TestResponder_PickUnknownCategory(t *testing.T) {
	t.Parallel()

	responder := newResponder(rand.NewSource(1))

	got := responder.Pick(model.FailureCategory("no_such_category"))
	assert.NotEmpty(t, got)
}
