package response

import (
	"time"

	"oficina_xyz/internal/domain/entities"
)

type TransactionResponse struct {
	ID            string    `json:"id"`
	Description   string    `json:"description"`
	Category      string    `json:"category,omitempty"`
	Type          string    `json:"type"`
	Value         float64   `json:"value"`
	Date          time.Time `json:"date"`
	ReferenceID   string    `json:"reference_id,omitempty"`
	ReferenceType string    `json:"reference_type,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromTransaction(t entities.FinancialTransaction) TransactionResponse {
	return TransactionResponse{
		ID:            t.ID,
		Description:   t.Description,
		Category:      t.Category,
		Type:          string(t.Type),
		Value:         t.Value,
		Date:          t.Date,
		ReferenceID:   t.ReferenceID,
		ReferenceType: t.ReferenceType,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func FromTransactions(txs []entities.FinancialTransaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, t := range txs {
		out = append(out, FromTransaction(t))
	}
	return out
}

// BalanceResponse is the derived ledger rollup returned alongside listings.
type BalanceResponse struct {
	Entrada float64 `json:"entrada"`
	Saida   float64 `json:"saida"`
	Balance float64 `json:"balance"`
}

func BalanceFromTransactions(txs []entities.FinancialTransaction) BalanceResponse {
	var b BalanceResponse
	for _, t := range txs {
		switch t.Type {
		case entities.TransactionEntrada:
			b.Entrada += t.Value
		case entities.TransactionSaida:
			b.Saida += t.Value
		}
	}
	b.Balance = b.Entrada - b.Saida
	return b
}

type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Balance      BalanceResponse       `json:"balance"`
}
