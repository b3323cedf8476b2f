package interfaces

import (
	"context"

	"oficina_xyz/internal/domain/entities"
)

// ITransactionRepository abstracts DynamoDB persistence for
// FinancialTransaction. Aggregation views fold over ListByOficina on every
// read; nothing derived is persisted.

type ITransactionRepository interface {
	Create(ctx context.Context, t entities.FinancialTransaction) (entities.FinancialTransaction, error)
	GetByID(ctx context.Context, oficinaID, id string) (entities.FinancialTransaction, error)
	ListByOficina(ctx context.Context, oficinaID string) ([]entities.FinancialTransaction, error)
	Update(ctx context.Context, t entities.FinancialTransaction) (entities.FinancialTransaction, error)
	Delete(ctx context.Context, oficinaID, id string) error
}
