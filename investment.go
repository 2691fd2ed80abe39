package financas

import "time"

// A month, in this model, is always 30 days; partial months are floored.
const monthDays = 30

// Investment is a principal accruing compound return in discrete monthly
// steps since its purchase date.
type Investment struct {
	Type          string
	Principal     Money // zeroed on liquidation
	DatePurchased time.Time
	Rate          Rate
}

// NewInvestment creates an investment purchased now.
func NewInvestment(typ string, principal Money, rate Rate) *Investment {
	return &Investment{
		Type:          typ,
		Principal:     principal,
		DatePurchased: time.Now(),
		Rate:          rate,
	}
}

// elapsedMonths counts whole 30-day months between two instants, never
// negative.
func elapsedMonths(from, to time.Time) int {
	if !to.After(from) {
		return 0
	}
	days := int(to.Sub(from).Hours()) / 24
	return days / monthDays
}

// Value computes the investment's worth at asOf, compounding the principal
// once per elapsed whole month. A zero asOf means now. A liquidated
// investment is worth zero on any date.
func (i *Investment) Value(asOf time.Time) Money {
	if asOf.IsZero() {
		asOf = time.Now()
	}
	return i.Principal.Compound(i.Rate, elapsedMonths(i.DatePurchased, asOf))
}

// Sell liquidates the investment now. See SellAt.
func (i *Investment) Sell(target *Account) (*Transaction, error) {
	return i.SellAt(target, time.Now())
}

// SellAt liquidates the investment at the given instant: its value on that
// date is posted to the target account as a deposit naming the investment
// type, and the principal is zeroed. The investment stays wherever it is
// listed but is economically inert afterwards. A zero instant means now,
// resolved once for both the valuation and the posted date.
func (i *Investment) SellAt(target *Account, at time.Time) (*Transaction, error) {
	if at.IsZero() {
		at = time.Now()
	}
	value := i.Value(at)
	tx, err := target.postAt(at, value, Deposito, "Venda de investimento "+i.Type)
	if err != nil {
		return nil, err
	}
	i.Principal = M(0)
	return tx, nil
}
