package entities

import "time"

type TransactionType string

const (
	TransactionEntrada TransactionType = "ENTRADA"
	TransactionSaida   TransactionType = "SAIDA"
)

// FinancialTransaction is one ledger entry.
//
// Storage model (DynamoDB):
//   - PK: oficina_id
//   - SK: id
//
// The ledger is the sole source of truth for balance and revenue aggregates.
// Order totals feed it only at creation time (RecordPayment); later edits to an
// order never rewrite its transaction.

type FinancialTransaction struct {
	ID          string          `json:"id"`
	OficinaID   string          `json:"oficina_id"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Type        TransactionType `json:"type"`
	Value       float64         `json:"value"`
	Date        time.Time       `json:"date"`

	// Optional link back to the order or stock purchase that produced the
	// entry. ReferenceType "OS" links to an order id.
	ReferenceID   string `json:"reference_id,omitempty"`
	ReferenceType string `json:"reference_type,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
