package financas

import (
	"errors"
	"slices"
	"sync"
	"time"
)

// ErrDuplicateAccount is returned when a client is asked to create an
// account under a name it already holds.
var ErrDuplicateAccount = errors.New("Account already exists.")

// Client aggregates a named set of accounts and investments. A client
// exclusively owns its accounts and investments; they are not shared.
//
// A client's whole object graph is one unit of mutual exclusion: the
// client's own methods serialize on an internal mutex, and concurrent hosts
// mutating an owned Account or Investment directly must hold Guard around
// the mutation so it cannot interleave with NetWorth or report reads.
type Client struct {
	mu          sync.Mutex
	name        string
	accounts    []*Account
	investments []*Investment
}

// NewClient creates a client with no accounts and no investments.
func NewClient(name string) *Client {
	return &Client{name: name}
}

// Name returns the client's name.
func (c *Client) Name() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.name
}

// Rename replaces the client's name. No validation applies.
func (c *Client) Rename(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.name = name
}

// Guard exposes the client's mutex for callers that mutate owned accounts
// or investments directly.
func (c *Client) Guard() *sync.Mutex { return &c.mu }

// AddAccount creates, stores and returns a new empty account. It fails
// with ErrDuplicateAccount if this client already has an account of that
// exact name, leaving the client unchanged.
func (c *Client) AddAccount(name string) (*Account, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, a := range c.accounts {
		if a.name == name {
			return nil, ErrDuplicateAccount
		}
	}
	account := NewAccount(name)
	c.accounts = append(c.accounts, account)
	return account, nil
}

// AddInvestment appends an already-constructed investment. Duplicate types
// are allowed and nothing is validated.
func (c *Client) AddInvestment(inv *Investment) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.investments = append(c.investments, inv)
}

// Accounts returns the client's accounts in insertion order.
func (c *Client) Accounts() []*Account {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.accounts)
}

// Investments returns the client's investments in insertion order.
func (c *Client) Investments() []*Investment {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.investments)
}

// NetWorth computes the client's net worth now. See NetWorthAt.
func (c *Client) NetWorth() Money {
	return c.NetWorthAt(time.Now())
}

// NetWorthAt sums every account balance and every investment's value at the
// given instant. It is recomputed on every call, never cached, and the one
// instant is shared by all investment valuations. A zero instant means now.
func (c *Client) NetWorthAt(at time.Time) Money {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.netWorthAt(at)
}

// netWorthAt must be called with c.mu held.
func (c *Client) netWorthAt(at time.Time) Money {
	if at.IsZero() {
		at = time.Now()
	}
	var total Money
	for _, a := range c.accounts {
		total = total.Add(a.balance)
	}
	for _, i := range c.investments {
		total = total.Add(i.Value(at))
	}
	return total
}
