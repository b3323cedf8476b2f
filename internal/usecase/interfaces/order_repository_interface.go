package interfaces

import (
	"context"

	"oficina_xyz/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Save is an upsert: the order lifecycle persists the order regardless of the
// stock outcome, so the write must not depend on prior state.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	Save(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, oficinaID, id string) (entities.Order, error)
	ListByOficina(ctx context.Context, oficinaID string) ([]entities.Order, error)
	Delete(ctx context.Context, oficinaID, id string) error
}
