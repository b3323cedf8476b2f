package response

import (
	"testing"

	"oficina_xyz/internal/domain/entities"
)

func TestBalanceFromTransactions(t *testing.T) {
	txs := []entities.FinancialTransaction{
		{Type: entities.TransactionEntrada, Value: 180},
		{Type: entities.TransactionEntrada, Value: 320},
		{Type: entities.TransactionSaida, Value: 150},
		{Type: "DESCONHECIDO", Value: 999},
	}

	b := BalanceFromTransactions(txs)
	if b.Entrada != 500 {
		t.Fatalf("expected entrada 500, got %v", b.Entrada)
	}
	if b.Saida != 150 {
		t.Fatalf("expected saida 150, got %v", b.Saida)
	}
	if b.Balance != 350 {
		t.Fatalf("expected balance 350, got %v", b.Balance)
	}
}

func TestBalanceFromTransactions_Empty(t *testing.T) {
	b := BalanceFromTransactions(nil)
	if b.Entrada != 0 || b.Saida != 0 || b.Balance != 0 {
		t.Fatalf("expected zero rollup, got %+v", b)
	}
}
