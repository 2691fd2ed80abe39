package renderer

import (
	"strings"
	"testing"
	"time"

	"financas"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// fixtureClient builds a deterministic client once valued at the fixture
// instant: balances come from postings, investment ages are set relative
// to at.
func fixtureClient(t *testing.T, at time.Time) *financas.Client {
	t.Helper()
	client := financas.NewClient("João Silva")

	poupanca, err := client.AddAccount("Poupança")
	if err != nil {
		t.Fatalf("AddAccount: %v", err)
	}
	corrente, err := client.AddAccount("Corrente")
	if err != nil {
		t.Fatalf("AddAccount: %v", err)
	}
	if _, err := poupanca.PostTransaction(financas.M(1000.0), financas.Pagamento, "Depósito inicial na poupança"); err != nil {
		t.Fatalf("PostTransaction: %v", err)
	}
	if _, err := corrente.PostTransaction(financas.M(2000.0), financas.Deposito, "Depósito inicial na corrente"); err != nil {
		t.Fatalf("PostTransaction: %v", err)
	}
	if _, err := poupanca.PostTransaction(financas.M(-200.0), financas.Transferencia, "Transferência para a corrente"); err != nil {
		t.Fatalf("PostTransaction: %v", err)
	}

	client.AddInvestment(&financas.Investment{
		Type: "Imobiliário", Principal: financas.M(5000.0), DatePurchased: at, Rate: 0.05,
	})
	client.AddInvestment(&financas.Investment{
		Type: "Tesouro", Principal: financas.M(2000.0), DatePurchased: at.AddDate(0, 0, -60), Rate: 0.03,
	})
	return client
}

func TestReport(t *testing.T) {
	at := day("2025-09-01")
	report := financas.NewReport(fixtureClient(t, at), at)

	want := `Relatório Financeiro de João Silva:
Patrimônio Líquido: R$ 9921.80

Contas:
- Poupança: R$ 800.00
- Corrente: R$ 2000.00

Investimentos:
- Imobiliário: R$ 5000.00
- Tesouro: R$ 2121.80
`
	if got := Report(report); got != want {
		t.Errorf("Report() =\n%q\nwant:\n%q", got, want)
	}
}

func TestProjection(t *testing.T) {
	at := day("2025-09-01")
	projection := financas.NewProjection(fixtureClient(t, at), at, at.AddDate(0, 0, 180))

	want := `Projeção de Rendimentos para João Silva até 28/02/2026

Investimentos Futuros:
- Imobiliário: Valor Projetado R$ 6,700.48
- Tesouro: Valor Projetado R$ 2,388.10

Contas:
- Poupança: Saldo Atual R$ 800.00
- Corrente: Saldo Atual R$ 2,000.00

Patrimônio Líquido Projetado: R$ 19,010.38`
	if got := Projection(projection); got != want {
		t.Errorf("Projection() =\n%q\nwant:\n%q", got, want)
	}
}

func TestGenerateReport(t *testing.T) {
	client := fixtureClient(t, time.Now())
	got := GenerateReport(client)

	for _, fragment := range []string{
		"Relatório Financeiro de João Silva:",
		"Patrimônio Líquido: R$ ",
		"Contas:\n- Poupança: R$ 800.00\n- Corrente: R$ 2000.00",
		"Investimentos:\n- Imobiliário: R$ ",
	} {
		if !strings.Contains(got, fragment) {
			t.Errorf("GenerateReport() missing %q in:\n%s", fragment, got)
		}
	}
}

func TestFutureValueReport(t *testing.T) {
	client := fixtureClient(t, time.Now())
	future := time.Now().AddDate(0, 0, 180)
	got := FutureValueReport(client, future)

	for _, fragment := range []string{
		"Projeção de Rendimentos para João Silva até " + future.Format("02/01/2006"),
		"Investimentos Futuros:",
		"- Poupança: Saldo Atual R$ 800.00",
		"Patrimônio Líquido Projetado: R$ ",
	} {
		if !strings.Contains(got, fragment) {
			t.Errorf("FutureValueReport() missing %q in:\n%s", fragment, got)
		}
	}
}

func TestReportMarkdown(t *testing.T) {
	at := day("2025-09-01")
	report := financas.NewReport(fixtureClient(t, at), at)

	got := ReportMarkdown(report)
	for _, fragment := range []string{
		"Relatório Financeiro de João Silva",
		"Patrimônio Líquido: R$ 9921.80",
		"Contas",
		"Imobiliário",
		"R$ 2121.80",
	} {
		if !strings.Contains(got, fragment) {
			t.Errorf("ReportMarkdown() missing %q in:\n%s", fragment, got)
		}
	}
}

func TestProjectionMarkdown(t *testing.T) {
	at := day("2025-09-01")
	projection := financas.NewProjection(fixtureClient(t, at), at, at.AddDate(0, 0, 180))

	got := ProjectionMarkdown(projection)
	for _, fragment := range []string{
		"Projeção de Rendimentos para João Silva até 28/02/2026",
		"Horizonte: 6 meses",
		"R$ 6,700.48",
		"Patrimônio Líquido Projetado: R$ 19,010.38",
	} {
		if !strings.Contains(got, fragment) {
			t.Errorf("ProjectionMarkdown() missing %q in:\n%s", fragment, got)
		}
	}
}
