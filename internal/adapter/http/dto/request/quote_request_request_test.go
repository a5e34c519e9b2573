package request

import "testing"

func TestSubmitQuoteRequest_ToSubmission(t *testing.T) {
	t.Run("english field names", func(t *testing.T) {
		r := SubmitQuoteRequest{
			Name:        "Maria Souza",
			Email:       "maria@example.com",
			Phone:       "11987654321",
			ServiceType: "Website",
			Description: "Site institucional novo",
		}
		s := r.ToSubmission()
		if s.Name != "Maria Souza" || s.Phone != "11987654321" || s.ServiceType != "Website" {
			t.Fatalf("unexpected submission: %+v", s)
		}
	})

	t.Run("portuguese field names", func(t *testing.T) {
		r := SubmitQuoteRequest{
			Nome:      "João Lima",
			Email:     "joao@example.com",
			Telefone:  "(15) 99156-3363",
			Empresa:   "Lima ME",
			Servico:   "E-commerce",
			Descricao: "Loja virtual com pagamentos",
			Prazo:     "1 mês",
			Orcamento: "R$ 5.000",
		}
		s := r.ToSubmission()
		if s.Name != "João Lima" {
			t.Fatalf("expected name from nome, got %q", s.Name)
		}
		if s.Phone != "(15) 99156-3363" || s.Company != "Lima ME" || s.ServiceType != "E-commerce" {
			t.Fatalf("unexpected submission: %+v", s)
		}
		if s.Description != "Loja virtual com pagamentos" || s.DesiredDeadline != "1 mês" || s.BudgetRange != "R$ 5.000" {
			t.Fatalf("unexpected submission: %+v", s)
		}
	})

	t.Run("english wins when both are set", func(t *testing.T) {
		r := SubmitQuoteRequest{Name: "Ana", Nome: "Outra"}
		if got := r.ToSubmission().Name; got != "Ana" {
			t.Fatalf("expected Ana, got %q", got)
		}
	})

	t.Run("blank english falls back", func(t *testing.T) {
		r := SubmitQuoteRequest{Name: "   ", Nome: "Carla"}
		if got := r.ToSubmission().Name; got != "Carla" {
			t.Fatalf("expected Carla, got %q", got)
		}
	})
}

func TestUpdateQuoteStatusRequest_ResolveStatus(t *testing.T) {
	r := UpdateQuoteStatusRequest{Status: "  Em Andamento "}
	if got := r.ResolveStatus(); got != "Em Andamento" {
		t.Fatalf("expected trimmed status, got %q", got)
	}
}
