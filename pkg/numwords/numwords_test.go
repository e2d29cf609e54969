package numwords

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToWords(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "Zero"},
		{1, "One"},
		{7, "Seven"},
		{10, "Ten"},
		{15, "Fifteen"},
		{19, "Nineteen"},
		{20, "Twenty"},
		{42, "Forty Two"},
		{99, "Ninety Nine"},
		{100, "One Hundred"},
		{101, "One Hundred One"},
		{115, "One Hundred Fifteen"},
		{999, "Nine Hundred Ninety Nine"},
		{1000, "One Thousand"},
		{1234, "One Thousand Two Hundred Thirty Four"},
		{20000, "Twenty Thousand"},
		{99999, "Ninety Nine Thousand Nine Hundred Ninety Nine"},
		{100000, "One Lakh"},
		{125000, "One Lakh Twenty Five Thousand"},
		{150500, "One Lakh Fifty Thousand Five Hundred"},
		{500000, "Five Lakh"},
		{2550000, "Twenty Five Lakh Fifty Thousand"},
		{9999999, "Ninety Nine Lakh Ninety Nine Thousand Nine Hundred Ninety Nine"},
	}

	for _, tt := range tests {
		got, err := ToWords(tt.amount)
		require.NoError(t, err, "amount %d", tt.amount)
		assert.Equal(t, tt.want, got, "amount %d", tt.amount)
	}
}

func TestToWordsNegative(t *testing.T) {
	_, err := ToWords(-1)
	assert.ErrorIs(t, err, ErrNegativeAmount)

	_, err = ToWords(-125000)
	assert.ErrorIs(t, err, ErrNegativeAmount)
}

// Above 99 lakh there is no crore term: the lakh count itself is spelled out.
// This mirrors every receipt the system has issued, so it is pinned here.
func TestToWordsAboveNinetyNineLakh(t *testing.T) {
	got, err := ToWords(10000000)
	require.NoError(t, err)
	assert.Equal(t, "One Hundred Lakh", got)

	got, err = ToWords(12345678)
	require.NoError(t, err)
	assert.Equal(t, "One Hundred Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight", got)

	// The lakh count itself is grouped by thousands when it grows that large.
	got, err = ToWords(123456789)
	require.NoError(t, err)
	assert.Equal(t, "One Thousand Two Hundred Thirty Four Lakh Fifty Six Thousand Seven Hundred Eighty Nine", got)
}

// The amount column admits values up to fourteen digits; the converter must
// spell every one of them rather than run out of vocabulary.
func TestToWordsVeryLargeAmounts(t *testing.T) {
	got, err := ToWords(100000000000)
	require.NoError(t, err)
	assert.Equal(t, "Ten Lakh Lakh", got)

	got, err = ToWords(99999999999)
	require.NoError(t, err)
	assert.Equal(t,
		"Nine Lakh Ninety Nine Thousand Nine Hundred Ninety Nine Lakh Ninety Nine Thousand Nine Hundred Ninety Nine",
		got)

	// Full width of numeric(14,2)
	_, err = ToWords(999999999999)
	require.NoError(t, err)
}

func TestToWordsWellFormed(t *testing.T) {
	// Sweep a spread of values below one crore: output is always non-empty,
	// contains no digits, no doubled spaces, and no leading/trailing space.
	for n := int64(0); n < 10000000; n += 331 {
		got, err := ToWords(n)
		require.NoError(t, err)
		require.NotEmpty(t, got, "amount %d", n)
		assert.NotContains(t, got, "  ", "amount %d", n)
		assert.Equal(t, strings.TrimSpace(got), got, "amount %d", n)
		for _, r := range got {
			if r >= '0' && r <= '9' {
				t.Fatalf("ToWords(%d) = %q contains digit %q", n, got, r)
			}
		}
	}
}

func TestToWordsPure(t *testing.T) {
	first, err := ToWords(150500)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, _ = ToWords(int64(i * 99991))
		again, err := ToWords(150500)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
