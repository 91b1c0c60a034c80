package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromString(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		desc      string
		input     string
		expected  string
		expectErr bool
	}{
		{
			desc:     "positive: plain integer",
			input:    "1234",
			expected: "1234.00",
		},
		{
			desc:     "positive: decimal with cents",
			input:    "1234.56",
			expected: "1234.56",
		},
		{
			desc:     "positive: empty string returns zero",
			input:    "",
			expected: "0.00",
		},
		{
			desc:      "negative: not a number",
			input:     "12a34",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			actual, err := NewFromString(tc.input)
			if tc.expectErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual.StringFixed())
		})
	}
}

func TestRoundToCents(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		desc     string
		input    string
		expected string
	}{
		{
			desc:     "positive: already at cent precision",
			input:    "10.25",
			expected: "10.25",
		},
		{
			desc:     "positive: half rounds away from zero",
			input:    "10.255",
			expected: "10.26",
		},
		{
			desc:     "positive: below half rounds down",
			input:    "10.254",
			expected: "10.25",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			amount, err := NewFromString(tc.input)
			require.NoError(t, err)

			assert.Equal(t, tc.expected, amount.RoundToCents().StringFixed())
		})
	}
}

func TestMaxTransactionAmount(t *testing.T) {
	t.Parallel()

	boundary, err := NewFromString("999999999.99")
	require.NoError(t, err)
	assert.False(t, boundary.GreaterThan(MaxTransactionAmount))

	over, err := NewFromString("1000000000.00")
	require.NoError(t, err)
	assert.True(t, over.GreaterThan(MaxTransactionAmount))
}

func TestArithmetic(t *testing.T) {
	t.Parallel()

	balance := NewFromInt(100)
	balance.Inc(NewFromInt(50))
	assert.Equal(t, "150.00", balance.StringFixed())

	assert.Equal(t, "130.00", balance.Sub(NewFromInt(20)).StringFixed())
	assert.True(t, balance.IsPositive())
	assert.False(t, Zero.IsPositive())
}
