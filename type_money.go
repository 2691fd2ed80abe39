package financas

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Money represents a monetary value in the client's currency (BRL).
type Money struct {
	value decimal.Decimal // as major unit value
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// Display formatters. The amounts keep the source locale's digits
// ("1234.56" and "1,234.56") under the "R$ " prefix, so the sign must stay
// with the number, not the currency symbol. Both run on go-money minor units.
var (
	plainFmt   = money.NewFormatter(2, ".", "", "", "1")
	groupedFmt = money.NewFormatter(2, ".", ",", "", "1")
)

// cents returns the value in minor units, rounded to the cent.
func (m Money) cents() int64 {
	return m.value.Shift(2).Round(0).IntPart()
}

// String formats the value with two decimals, e.g. "R$ 1340.10".
func (m Money) String() string {
	return "R$ " + plainFmt.Format(m.cents())
}

// Grouped formats the value with two decimals and thousands separators,
// e.g. "R$ 1,340.10".
func (m Money) Grouped() string {
	return "R$ " + groupedFmt.Format(m.cents())
}

func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg()} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value)} }

// Compound returns the value grown by rate over the given number of whole
// months, kept exact in decimal. Months never go negative in this model.
func (m Money) Compound(rate Rate, months int) Money {
	factor := decimal.NewFromFloat(1 + float64(rate))
	value := m.value
	for range months {
		value = value.Mul(factor)
	}
	return Money{value: value}
}

// AsFloat is a convenience for callers that do not need exact arithmetic.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }
