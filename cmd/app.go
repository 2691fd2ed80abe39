// Package cmd implements the CLI application showcasing the bookkeeping
// model.
package cmd

import (
	"fmt"
	"time"

	"financas"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&demoCmd{}, "reports")
	c.Register(&reportCmd{}, "reports")
	c.Register(&projectionCmd{}, "reports")

	c.Register(&categoriesCmd{}, "registry")
}

// printMarkdown renders a markdown document for the terminal, falling back
// to the raw document when the terminal renderer fails.
func printMarkdown(doc string) {
	out, err := glamour.Render(doc, "auto")
	if err != nil {
		fmt.Print(doc)
		return
	}
	fmt.Print(out)
}

// exampleClient builds the demo scenario shared by the report commands:
// two funded accounts and two monthly-return investments.
func exampleClient() *financas.Client {
	client := financas.NewClient("João Silva")

	poupanca, _ := client.AddAccount("Poupança")
	corrente, _ := client.AddAccount("Corrente")

	poupanca.PostTransaction(financas.M(1000.0), financas.Pagamento, "Depósito inicial na poupança")
	corrente.PostTransaction(financas.M(2000.0), financas.Deposito, "Depósito inicial na corrente")
	poupanca.PostTransaction(financas.M(-200.0), financas.Transferencia, "Transferência para a corrente")

	client.AddInvestment(financas.NewInvestment("Imobiliário", financas.M(5000.0), 0.05))
	client.AddInvestment(financas.NewInvestment("Tesouro", financas.M(2000.0), 0.03))

	return client
}

// monthsFromNow returns the date the given number of 30-day months ahead.
func monthsFromNow(months int) time.Time {
	return time.Now().AddDate(0, 0, 30*months)
}
