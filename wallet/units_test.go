package wallet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0.00000000", FormatAmount(0, 8))
	assert.Equal(t, "1.50000000", FormatAmount(150000000, 8))
	assert.Equal(t, "0.00000001", FormatAmount(1, 8))
	assert.Equal(t, "184467440737.09551615", FormatAmount(^uint64(0), 8))
	assert.Equal(t, "12.34", FormatAmount(1234, 2))
}

func TestFormatSignedAmount(t *testing.T) {
	assert.Equal(t, "+1.00000000", FormatSignedAmount(100000000, 8))
	assert.Equal(t, "-0.50000000", FormatSignedAmount(-50000000, 8))
	assert.Equal(t, "0.00000000", FormatSignedAmount(0, 8))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{"1", 100000000},
		{"1.5", 150000000},
		{" 0.00000001 ", 1},
		{"0", 0},
		{"184467440737.09551615", ^uint64(0)},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.in, 8)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseAmountErrors(t *testing.T) {
	for in, msg := range map[string]string{
		"abc":                   "invalid amount",
		"-1":                    "must not be negative",
		"0.000000001":           "more than 8 decimal places",
		"184467440737.09551616": "too large",
	} {
		_, err := ParseAmount(in, 8)
		assert.ErrorContains(t, err, msg, in)
	}
}
