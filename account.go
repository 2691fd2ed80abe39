package financas

import (
	"sort"
	"time"
)

// Account is an append-only ledger of transactions with a running balance.
//
// The ledger is always kept sorted by date ascending; the sort is stable,
// so transactions on the same instant keep their posting order.
type Account struct {
	name    string
	balance Money
	ledger  []*Transaction
}

// NewAccount creates an account with a zero balance and an empty ledger.
func NewAccount(name string) *Account {
	return &Account{name: name}
}

// Name returns the account name. It is unique within a client, not globally.
func (a *Account) Name() string { return a.name }

// Balance is the running sum of all posted transaction amounts. It is
// maintained incrementally at post time, never recomputed from the ledger.
func (a *Account) Balance() Money { return a.balance }

// PostTransaction validates the category code, creates a transaction dated
// now, adds its amount to the balance and inserts it into the ledger in
// date order. On an invalid code the account is left unchanged.
func (a *Account) PostTransaction(amount Money, code CategoryCode, description string) (*Transaction, error) {
	return a.postAt(time.Now(), amount, code, description)
}

func (a *Account) postAt(at time.Time, amount Money, code CategoryCode, description string) (*Transaction, error) {
	// Checked here independently of the transaction's own validation, so a
	// bad code never touches balance or ledger.
	if _, err := CategoryName(code); err != nil {
		return nil, err
	}
	tx, err := newTransactionAt(at, amount, code, description)
	if err != nil {
		return nil, err
	}
	a.balance = a.balance.Add(tx.Amount)
	a.ledger = append(a.ledger, tx)
	sort.SliceStable(a.ledger, func(i, j int) bool {
		return a.ledger[i].Date.Before(a.ledger[j].Date)
	})
	return tx, nil
}

// TransactionFilter selects a subsequence of an account's ledger. Zero
// values leave the corresponding criterion unbounded.
type TransactionFilter struct {
	From     time.Time    // include transactions dated From or later
	To       time.Time    // include transactions dated To or earlier
	Category CategoryCode // include only this category; 0 means any
}

// Transactions returns the transactions matching every given criterion, in
// ledger (date) order. A filter with a category code outside the registry
// fails with ErrInvalidCategory.
func (a *Account) Transactions(f TransactionFilter) ([]*Transaction, error) {
	var category string
	if f.Category != 0 {
		var err error
		if category, err = CategoryName(f.Category); err != nil {
			return nil, err
		}
	}
	matches := make([]*Transaction, 0, len(a.ledger))
	for _, tx := range a.ledger {
		if !f.From.IsZero() && tx.Date.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && tx.Date.After(f.To) {
			continue
		}
		if category != "" && tx.Category != category {
			continue
		}
		matches = append(matches, tx)
	}
	return matches, nil
}
