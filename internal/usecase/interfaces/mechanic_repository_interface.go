package interfaces

import (
	"context"

	"oficina_xyz/internal/domain/entities"
)

// IMechanicRepository abstracts DynamoDB persistence for Mechanic.

type IMechanicRepository interface {
	Create(ctx context.Context, m entities.Mechanic) (entities.Mechanic, error)
	GetByID(ctx context.Context, oficinaID, id string) (entities.Mechanic, error)
	ListByOficina(ctx context.Context, oficinaID string) ([]entities.Mechanic, error)
	Update(ctx context.Context, m entities.Mechanic) (entities.Mechanic, error)
	Delete(ctx context.Context, oficinaID, id string) error
}
