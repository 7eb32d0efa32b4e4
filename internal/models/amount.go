package models

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a numeric API field (currency, bathrooms, square feet, ...).
// It accepts JSON numbers and numeric strings; anything else, including
// null, leaves it invalid. An invalid Amount reads as zero.
type Amount struct {
	Decimal decimal.Decimal
	Valid   bool
}

func NewAmount(d decimal.Decimal) Amount { return Amount{Decimal: d, Valid: true} }

func AmountFromInt(v int64) Amount { return NewAmount(decimal.NewFromInt(v)) }

func AmountFromFloat(v float64) Amount { return NewAmount(decimal.NewFromFloat(v)) }

// ParseAmount parses a user-entered number, e.g. "1200.50".
func ParseAmount(s string) (Amount, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Amount{}, false
	}
	return NewAmount(d), true
}

// OrZero returns the decimal value, or zero when invalid.
func (a Amount) OrZero() decimal.Decimal {
	if !a.Valid {
		return decimal.Zero
	}
	return a.Decimal
}

// NonNegative returns the value clamped at zero; invalid reads as zero.
func (a Amount) NonNegative() decimal.Decimal {
	d := a.OrZero()
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// Filled returns the amount itself when valid, else a valid zero.
func (a Amount) Filled() Amount {
	return NewAmount(a.OrZero())
}

func (a Amount) String() string {
	if !a.Valid {
		return ""
	}
	return a.Decimal.String()
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	*a = Amount{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		if parsed, ok := ParseAmount(s); ok {
			*a = parsed
		}
		return nil
	}
	if parsed, ok := ParseAmount(string(b)); ok {
		*a = parsed
	}
	return nil
}

// MarshalJSON writes a bare JSON number, or null when invalid.
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Valid {
		return []byte("null"), nil
	}
	return []byte(a.Decimal.String()), nil
}
