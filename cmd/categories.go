package cmd

import (
	"context"
	"flag"
	"fmt"
	"sort"

	"financas"
	"github.com/google/subcommands"
)

// categoriesCmd holds the flags for the 'categories' subcommand.
type categoriesCmd struct{}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "list the transaction category registry" }
func (*categoriesCmd) Usage() string {
	return `fin categories

  Lists the valid transaction category codes and their names. Transactions
  posted with a code outside this registry are rejected.
`
}

func (c *categoriesCmd) SetFlags(f *flag.FlagSet) {}

func (c *categoriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	codes := make([]financas.CategoryCode, 0, 3)
	names := make(map[financas.CategoryCode]string)
	for code, name := range financas.Categories() {
		codes = append(codes, code)
		names[code] = name
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

	for _, code := range codes {
		fmt.Printf("%d\t%s\n", code, names[code])
	}
	return subcommands.ExitSuccess
}
