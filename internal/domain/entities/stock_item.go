package entities

import "time"

// MovementDirection distinguishes manual stock adjustments.
//
// Automatic decrements driven by order completion are not movements; they go
// through the batch decrement path on the repository.

type MovementDirection string

const (
	MovementEntrada MovementDirection = "ENTRADA"
	MovementSaida   MovementDirection = "SAIDA"
)

// StockItem is a workshop inventory item.
//
// Storage model (DynamoDB):
//   - PK: oficina_id
//   - SK: id
//
// Quantity is the only field mutated from two flows (manual movement and order
// completion); both mutate it through conditional updates so it never goes
// negative as observed externally.

type StockItem struct {
	ID          string    `json:"id"`
	OficinaID   string    `json:"oficina_id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Quantity    int       `json:"quantity"`
	MinQuantity int       `json:"min_quantity"`
	CostPrice   float64   `json:"cost_price"`
	SalePrice   float64   `json:"sale_price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LowStock reports whether the item is at or below its alert threshold.
func (s StockItem) LowStock() bool {
	return s.Quantity <= s.MinQuantity
}
