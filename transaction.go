package financas

import (
	"fmt"
	"time"
)

// Transaction records one monetary movement. Category always holds the
// registry's display name for a valid code, never a raw or unknown value.
type Transaction struct {
	Amount      Money
	Date        time.Time
	Category    string
	Description string
}

// NewTransaction creates a transaction dated now. It fails with
// ErrInvalidCategory if the code is not in the registry.
func NewTransaction(amount Money, code CategoryCode, description string) (*Transaction, error) {
	return newTransactionAt(time.Now(), amount, code, description)
}

func newTransactionAt(at time.Time, amount Money, code CategoryCode, description string) (*Transaction, error) {
	name, err := CategoryName(code)
	if err != nil {
		return nil, err
	}
	return &Transaction{
		Amount:      amount,
		Date:        at,
		Category:    name,
		Description: description,
	}, nil
}

// String renders the transaction for display, e.g.
// "Transação: Depósito inicial R$ 1000.00 (Depósito)".
func (t *Transaction) String() string {
	return fmt.Sprintf("Transação: %s %s (%s)", t.Description, t.Amount, t.Category)
}

// TransactionUpdate is a partial patch for a transaction. Nil fields are
// left untouched.
type TransactionUpdate struct {
	Amount      *Money
	Category    *CategoryCode // re-validated and re-resolved through the registry
	Description *string
	Date        *time.Time
}

// Update applies the patch to the transaction's own fields. A category
// patch is validated against the registry first; on ErrInvalidCategory the
// transaction is left fully unchanged.
//
// Update has no effect beyond the record itself: an account holding an
// already-posted transaction keeps its balance and ordering as they were at
// post time. Update transactions before posting when that matters.
func (t *Transaction) Update(u TransactionUpdate) error {
	name := t.Category
	if u.Category != nil {
		var err error
		if name, err = CategoryName(*u.Category); err != nil {
			return err
		}
	}
	t.Category = name
	if u.Amount != nil {
		t.Amount = *u.Amount
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.Date != nil {
		t.Date = *u.Date
	}
	return nil
}
