package financas

import (
	"errors"
	"iter"
	"maps"
)

// CategoryCode is the small integer key into the category registry.
type CategoryCode int

// Category codes accepted by the registry.
const (
	Pagamento CategoryCode = iota + 1
	Deposito
	Transferencia
)

// categories is the registry of transaction categories. It is fixed at
// startup and read-only thereafter; a code absent from it is invalid.
var categories = map[CategoryCode]string{
	Pagamento:     "Pagamento",
	Deposito:      "Depósito",
	Transferencia: "Transferência",
}

// ErrInvalidCategory is returned whenever a category code outside the
// registry is supplied.
var ErrInvalidCategory = errors.New("Invalid category.")

// CategoryName resolves a code to its display name, or ErrInvalidCategory.
func CategoryName(code CategoryCode) (string, error) {
	name, ok := categories[code]
	if !ok {
		return "", ErrInvalidCategory
	}
	return name, nil
}

// Categories iterates over a copy of the registry, so callers can validate
// codes before posting.
func Categories() iter.Seq2[CategoryCode, string] {
	return maps.All(maps.Clone(categories))
}
