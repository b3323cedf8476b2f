package interfaces

import (
	"context"
	"errors"
	"fmt"

	"oficina_xyz/internal/domain/entities"
)

// ErrConditionalCheckFailed is returned by repositories when a storage-level
// condition rejected the write (item missing or guard not satisfied).
var ErrConditionalCheckFailed = errors.New("conditional check failed")

// StockDecrement is one entry of a completion batch.
type StockDecrement struct {
	ItemID   string
	Quantity int
}

// InsufficientStockError reports which item made a conditional decrement fail.
type InsufficientStockError struct {
	ItemID string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for item %s", e.ItemID)
}

// IStockItemRepository abstracts DynamoDB persistence for StockItem.
//
// Quantity mutations never read-modify-write in the application: AdjustQuantity
// and DecrementBatch push the guard down to the storage layer as conditional
// writes so concurrent completions cannot overdraw an item.

type IStockItemRepository interface {
	Create(ctx context.Context, item entities.StockItem) (entities.StockItem, error)
	GetByID(ctx context.Context, oficinaID, id string) (entities.StockItem, error)
	ListByOficina(ctx context.Context, oficinaID string) ([]entities.StockItem, error)
	Update(ctx context.Context, item entities.StockItem) (entities.StockItem, error)
	Delete(ctx context.Context, oficinaID, id string) error

	// AdjustQuantity applies quantity += delta. Negative deltas carry the
	// condition quantity >= -delta; a rejected condition surfaces as
	// ErrConditionalCheckFailed with no change applied.
	AdjustQuantity(ctx context.Context, oficinaID, id string, delta int) (entities.StockItem, error)

	// DecrementBatch applies every decrement atomically, each guarded by
	// quantity >= requested. On a rejected guard nothing is applied and the
	// error wraps InsufficientStockError naming the first failing item.
	DecrementBatch(ctx context.Context, oficinaID string, decrements []StockDecrement) error
}
