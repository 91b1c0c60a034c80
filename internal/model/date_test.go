package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDateInput(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	testCases := [...]struct {
		desc     string
		input    string
		expected string
		wantErr  bool
	}{
		{
			desc:     "full date",
			input:    "01.02.2023",
			expected: "01.02.2023",
		},
		{
			desc:     "day and month default to current year",
			input:    "5.3",
			expected: "05.03.2024",
		},
		{
			desc:     "two digit year maps to 20xx",
			input:    "10.11.23",
			expected: "10.11.2023",
		},
		{
			desc:    "day overflow",
			input:   "32.01",
			wantErr: true,
		},
		{
			desc:    "month overflow",
			input:   "01.13",
			wantErr: true,
		},
		{
			desc:    "february 30th",
			input:   "30.02.2024",
			wantErr: true,
		},
		{
			desc:    "not a date",
			input:   "вчера",
			wantErr: true,
		},
		{
			desc:    "empty input",
			input:   "",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			got, err := ParseDateInput(tc.input, now)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestDateQuickPick_Resolve(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	testCases := [...]struct {
		desc     string
		pick     DateQuickPick
		expected string
	}{
		{desc: "today", pick: DateQuickPickToday, expected: "01.03.2024"},
		{desc: "yesterday crosses month boundary", pick: DateQuickPickYesterday, expected: "29.02.2024"},
		{desc: "day before", pick: DateQuickPickDayBefore, expected: "28.02.2024"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			got, ok := tc.pick.Resolve(now)
			assert.True(t, ok)
			assert.Equal(t, tc.expected, got)
		})
	}

	_, ok := DateQuickPick("tomorrow").Resolve(now)
	assert.False(t, ok)
}
