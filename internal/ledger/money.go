package ledger

import "github.com/shopspring/decimal"

// Cents is a monetary amount in integer cents. All balance and settlement
// arithmetic happens in this type so the zero-sum invariant holds exactly;
// decimal values appear only at the serialization boundary.
type Cents int64

// CentsFromDecimal converts a decimal amount (e.g. 12.345) to cents,
// rounding half-up on the third fractional digit.
func CentsFromDecimal(d decimal.Decimal) Cents {
	return Cents(d.Shift(2).Round(0).IntPart())
}

// CentsFromFloat converts a float amount received on the wire to cents.
func CentsFromFloat(f float64) Cents {
	return CentsFromDecimal(decimal.NewFromFloat(f))
}

// Decimal returns the amount as a decimal with two fractional digits.
func (c Cents) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

// Amount returns the amount as a float for JSON serialization. Every cents
// value converts to the float whose shortest representation has at most two
// fraction digits, which is what encoding/json emits.
func (c Cents) Amount() float64 {
	return c.Decimal().InexactFloat64()
}

// Abs returns the absolute value.
func (c Cents) Abs() Cents {
	if c < 0 {
		return -c
	}
	return c
}
