// Package renderer turns report structs into text for display. The plain
// text renderings reproduce the exact layout consumed by downstream
// display and tests; the markdown renderings are for terminal viewing.
package renderer

import (
	"fmt"
	"strings"
	"time"

	"financas"
)

// futureDateFormat lays the projection's target date out as dd/mm/yyyy.
const futureDateFormat = "02/01/2006"

// GenerateReport renders the client's current financial report, resolving
// "now" once for the whole report.
func GenerateReport(c *financas.Client) string {
	return Report(financas.NewReport(c, time.Now()))
}

// Report renders a snapshot report:
//
//	Relatório Financeiro de {name}:
//	Patrimônio Líquido: R$ {net}
//
//	Contas:
//	- {account}: R$ {balance}
//
//	Investimentos:
//	- {type}: R$ {value}
func Report(r *financas.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Relatório Financeiro de %s:\n", r.ClientName)
	fmt.Fprintf(&b, "Patrimônio Líquido: %s\n\n", r.NetWorth)

	b.WriteString("Contas:\n")
	for _, a := range r.Accounts {
		fmt.Fprintf(&b, "- %s: %s\n", a.Name, a.Balance)
	}

	b.WriteString("\n")

	b.WriteString("Investimentos:\n")
	for _, i := range r.Investments {
		fmt.Fprintf(&b, "- %s: %s\n", i.Type, i.Value)
	}

	return b.String()
}

// FutureValueReport renders the client's projected position at the future
// date, resolving "now" once for the whole projection.
func FutureValueReport(c *financas.Client, future time.Time) string {
	return Projection(financas.NewProjection(c, time.Now(), future))
}

// Projection renders a future-value projection. Projection money carries
// thousands separators.
func Projection(p *financas.Projection) string {
	lines := []string{fmt.Sprintf("Projeção de Rendimentos para %s até %s\n",
		p.ClientName, p.FutureDate.Format(futureDateFormat))}

	lines = append(lines, "Investimentos Futuros:")
	for _, i := range p.Investments {
		lines = append(lines, fmt.Sprintf("- %s: Valor Projetado %s", i.Type, i.Projected.Grouped()))
	}

	lines = append(lines, "\nContas:")
	for _, a := range p.Accounts {
		lines = append(lines, fmt.Sprintf("- %s: Saldo Atual %s", a.Name, a.Balance.Grouped()))
	}

	lines = append(lines, fmt.Sprintf("\nPatrimônio Líquido Projetado: %s", p.NetWorth.Grouped()))

	return strings.Join(lines, "\n")
}
