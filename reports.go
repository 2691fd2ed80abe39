package financas

import "time"

// AccountLine is one account row of a report.
type AccountLine struct {
	Name    string
	Balance Money
}

// InvestmentLine is one investment row of a report, valued at the report's
// instant.
type InvestmentLine struct {
	Type  string
	Value Money
}

// Report is a consistent snapshot of a client's state: every figure is
// computed at the single GeneratedAt instant.
type Report struct {
	GeneratedAt time.Time
	ClientName  string
	NetWorth    Money
	Accounts    []AccountLine
	Investments []InvestmentLine
}

// NewReport snapshots the client at the given instant. A zero instant
// means now, resolved once for the whole report.
func NewReport(c *Client, at time.Time) *Report {
	if at.IsZero() {
		at = time.Now()
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	r := &Report{
		GeneratedAt: at,
		ClientName:  c.name,
		NetWorth:    c.netWorthAt(at),
	}
	for _, a := range c.accounts {
		r.Accounts = append(r.Accounts, AccountLine{Name: a.name, Balance: a.balance})
	}
	for _, i := range c.investments {
		r.Investments = append(r.Investments, InvestmentLine{Type: i.Type, Value: i.Value(at)})
	}
	return r
}

// ProjectionLine is one investment row of a projection: the principal as it
// stands now, grown over the months ahead. The investment's own age is
// deliberately ignored.
type ProjectionLine struct {
	Type      string
	Projected Money
}

// Projection estimates a client's position at a future date. Account
// balances are carried unchanged; each investment's principal is compounded
// over the whole months between the generation instant and the future date.
//
// NetWorth keeps the source model's arithmetic: the current net worth
// (which already includes each investment's present value) plus the sum of
// projected values. Each investment is therefore counted at its present
// value and again at its projected value. Callers wanting the projected
// values to replace the present ones can recompute them from
// CurrentNetWorth and the projected lines.
type Projection struct {
	GeneratedAt     time.Time
	FutureDate      time.Time
	ClientName      string
	MonthsAhead     int
	CurrentNetWorth Money
	Accounts        []AccountLine
	Investments     []ProjectionLine
	NetWorth        Money
}

// NewProjection projects the client from the given instant to the future
// date. A zero instant means now, resolved once; a future date not after
// the instant projects zero months ahead.
func NewProjection(c *Client, at, future time.Time) *Projection {
	if at.IsZero() {
		at = time.Now()
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := &Projection{
		GeneratedAt:     at,
		FutureDate:      future,
		ClientName:      c.name,
		MonthsAhead:     elapsedMonths(at, future),
		CurrentNetWorth: c.netWorthAt(at),
	}
	var growth Money
	for _, i := range c.investments {
		projected := i.Principal.Compound(i.Rate, p.MonthsAhead)
		p.Investments = append(p.Investments, ProjectionLine{Type: i.Type, Projected: projected})
		growth = growth.Add(projected)
	}
	for _, a := range c.accounts {
		p.Accounts = append(p.Accounts, AccountLine{Name: a.name, Balance: a.balance})
	}
	p.NetWorth = p.CurrentNetWorth.Add(growth)
	return p
}
