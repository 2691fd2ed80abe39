// Package financas models the bookkeeping of a single client's personal
// finances: accounts holding a chronological ledger of transactions,
// investments accruing compound monthly returns, and the client aggregate
// that ties them together.
//
// The core functionalities include:
//   - Transactions: monetary movements classified against a fixed category
//     registry, with exact two-decimal text rendering.
//   - Accounts: append-only ledgers with an incrementally maintained balance
//     and conjunctive date/category queries.
//   - Investments: principals growing in discrete 30-day months, with
//     liquidation into an account as a deposit.
//   - Reports: snapshot and future-value projections of a client's net
//     worth, computed at a single explicit instant.
//
// All monetary arithmetic is exact, carried by [Money] on top of
// shopspring/decimal; floating point only enters at construction time.
// Rendering of reports into text or markdown lives in the renderer
// subpackage, and the fin command-line tool exposes the demo scenario.
//
// The package itself performs no I/O and keeps no global mutable state:
// the category registry is fixed at startup and read-only.
package financas
