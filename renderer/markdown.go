package renderer

import (
	"bytes"
	"fmt"

	"financas"
	md "github.com/nao1215/markdown"
)

// ReportMarkdown renders a snapshot report as markdown.
func ReportMarkdown(r *financas.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Relatório Financeiro de %s", r.ClientName))
	doc.PlainText(fmt.Sprintf("Patrimônio Líquido: %s", r.NetWorth))

	doc.H2("Contas")
	accounts := md.TableSet{Header: []string{"Conta", "Saldo"}}
	for _, a := range r.Accounts {
		accounts.Rows = append(accounts.Rows, []string{a.Name, a.Balance.String()})
	}
	doc.Table(accounts)

	doc.H2("Investimentos")
	investments := md.TableSet{Header: []string{"Tipo", "Valor Atual"}}
	for _, i := range r.Investments {
		investments.Rows = append(investments.Rows, []string{i.Type, i.Value.String()})
	}
	doc.Table(investments)

	return doc.String()
}

// ProjectionMarkdown renders a future-value projection as markdown.
func ProjectionMarkdown(p *financas.Projection) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Projeção de Rendimentos para %s até %s",
		p.ClientName, p.FutureDate.Format(futureDateFormat)))
	doc.PlainText(fmt.Sprintf("Horizonte: %d meses", p.MonthsAhead))

	doc.H2("Investimentos Futuros")
	investments := md.TableSet{Header: []string{"Tipo", "Valor Projetado"}}
	for _, i := range p.Investments {
		investments.Rows = append(investments.Rows, []string{i.Type, i.Projected.Grouped()})
	}
	doc.Table(investments)

	doc.H2("Contas")
	accounts := md.TableSet{Header: []string{"Conta", "Saldo Atual"}}
	for _, a := range p.Accounts {
		accounts.Rows = append(accounts.Rows, []string{a.Name, a.Balance.Grouped()})
	}
	doc.Table(accounts)

	doc.PlainText(fmt.Sprintf("Patrimônio Líquido Projetado: %s", p.NetWorth.Grouped()))

	return doc.String()
}
