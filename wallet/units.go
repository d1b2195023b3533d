package wallet

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultDecimals is the number of decimal places of one coin
const DefaultDecimals int32 = 8

var maxUnits = decimal.NewFromBigInt(new(big.Int).SetUint64(^uint64(0)), 0)

// FormatAmount renders atomic units as a coin amount with all decimal places
func FormatAmount(units uint64, decimals int32) string {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(units), -decimals).StringFixed(decimals)
}

// FormatSignedAmount renders a transaction amount, negative for outgoing
func FormatSignedAmount(units int64, decimals int32) string {
	s := decimal.New(units, -decimals).StringFixed(decimals)
	if units > 0 {
		return "+" + s
	}
	return s
}

// ParseAmount converts a coin amount such as "1.5" to atomic units
func ParseAmount(s string, decimals int32) (uint64, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if amount.IsNegative() {
		return 0, fmt.Errorf("amount must not be negative: %s", s)
	}

	units := amount.Shift(decimals)
	if !units.Equal(units.Truncate(0)) {
		return 0, fmt.Errorf("amount %s has more than %d decimal places", s, decimals)
	}
	if units.GreaterThan(maxUnits) {
		return 0, fmt.Errorf("amount %s is too large", s)
	}

	return units.BigInt().Uint64(), nil
}
