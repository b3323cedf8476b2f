package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"oficina_xyz/internal/domain/entities"
	"oficina_xyz/internal/domain/tenant"
	"oficina_xyz/internal/usecase/interfaces"
)

var (
	ErrTransactionNotFound  = errors.New("financial transaction not found")
	ErrInvalidTransactionID = errors.New("invalid transaction id")
	ErrInvalidTransaction   = errors.New("invalid transaction payload")
)

// IFinanceUseCase exposes the ledger.
//
// The ledger is append-mostly: entries may be edited or deleted manually, but
// aggregates are only ever derived from it, never pushed into it.

type IFinanceUseCase interface {
	Create(ctx context.Context, tn tenant.Tenant, t entities.FinancialTransaction) (entities.FinancialTransaction, error)
	List(ctx context.Context, tn tenant.Tenant) ([]entities.FinancialTransaction, error)
	Update(ctx context.Context, tn tenant.Tenant, t entities.FinancialTransaction) (entities.FinancialTransaction, error)
	Delete(ctx context.Context, tn tenant.Tenant, id string) error
}

type FinanceUseCase struct {
	repo interfaces.ITransactionRepository
}

var _ IFinanceUseCase = (*FinanceUseCase)(nil)

func NewFinanceUseCase(repo interfaces.ITransactionRepository) *FinanceUseCase {
	return &FinanceUseCase{repo: repo}
}

func validTransaction(t entities.FinancialTransaction) bool {
	if t.Value <= 0 {
		return false
	}
	switch t.Type {
	case entities.TransactionEntrada, entities.TransactionSaida:
		return true
	}
	return false
}

func (u *FinanceUseCase) Create(ctx context.Context, tn tenant.Tenant, t entities.FinancialTransaction) (entities.FinancialTransaction, error) {
	if !tn.Valid() {
		return entities.FinancialTransaction{}, ErrInvalidTenant
	}
	t.Description = strings.TrimSpace(t.Description)
	if t.Description == "" || !validTransaction(t) {
		return entities.FinancialTransaction{}, ErrInvalidTransaction
	}

	now := time.Now().UTC()
	t.ID = newID()
	t.OficinaID = tn.OficinaID
	if t.Date.IsZero() {
		t.Date = now
	}
	t.CreatedAt = now
	t.UpdatedAt = now
	return u.repo.Create(ctx, t)
}

func (u *FinanceUseCase) List(ctx context.Context, tn tenant.Tenant) ([]entities.FinancialTransaction, error) {
	if !tn.Valid() {
		return nil, ErrInvalidTenant
	}
	return u.repo.ListByOficina(ctx, tn.OficinaID)
}

func (u *FinanceUseCase) Update(ctx context.Context, tn tenant.Tenant, t entities.FinancialTransaction) (entities.FinancialTransaction, error) {
	if !tn.Valid() {
		return entities.FinancialTransaction{}, ErrInvalidTenant
	}
	t.ID = strings.TrimSpace(t.ID)
	if t.ID == "" {
		return entities.FinancialTransaction{}, ErrInvalidTransactionID
	}
	t.Description = strings.TrimSpace(t.Description)
	if t.Description == "" || !validTransaction(t) {
		return entities.FinancialTransaction{}, ErrInvalidTransaction
	}

	current, err := u.repo.GetByID(ctx, tn.OficinaID, t.ID)
	if err != nil {
		return entities.FinancialTransaction{}, err
	}
	if current.ID == "" {
		return entities.FinancialTransaction{}, ErrTransactionNotFound
	}

	t.OficinaID = tn.OficinaID
	t.CreatedAt = current.CreatedAt
	if t.Date.IsZero() {
		t.Date = current.Date
	}
	// Ledger entries written by RecordPayment keep their order linkage even
	// through manual edits.
	if t.ReferenceID == "" {
		t.ReferenceID = current.ReferenceID
		t.ReferenceType = current.ReferenceType
	}
	t.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, t)
}

func (u *FinanceUseCase) Delete(ctx context.Context, tn tenant.Tenant, id string) error {
	if !tn.Valid() {
		return ErrInvalidTenant
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidTransactionID
	}
	return u.repo.Delete(ctx, tn.OficinaID, id)
}
