package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"oficina_xyz/internal/domain/entities"
	mock_interfaces "oficina_xyz/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestFinanceUseCase_Create(t *testing.T) {
	t.Run("rejects non positive value", func(t *testing.T) {
		uc := NewFinanceUseCase(nil)
		_, err := uc.Create(context.Background(), testTenant, entities.FinancialTransaction{
			Description: "aluguel", Type: entities.TransactionSaida, Value: 0,
		})
		if !errors.Is(err, ErrInvalidTransaction) {
			t.Fatalf("expected ErrInvalidTransaction, got %v", err)
		}
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		uc := NewFinanceUseCase(nil)
		_, err := uc.Create(context.Background(), testTenant, entities.FinancialTransaction{
			Description: "aluguel", Type: "TRANSFERENCIA", Value: 10,
		})
		if !errors.Is(err, ErrInvalidTransaction) {
			t.Fatalf("expected ErrInvalidTransaction, got %v", err)
		}
	})

	t.Run("stamps id tenant and date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewFinanceUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx entities.FinancialTransaction) (entities.FinancialTransaction, error) {
				if tx.ID == "" || tx.OficinaID != "of-1" || tx.Date.IsZero() {
					t.Fatalf("unexpected transaction: %+v", tx)
				}
				return tx, nil
			})

		_, err := uc.Create(context.Background(), testTenant, entities.FinancialTransaction{
			Description: "aluguel", Type: entities.TransactionSaida, Value: 1500,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestFinanceUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewFinanceUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "of-1", "t-missing").Return(entities.FinancialTransaction{}, nil)

		_, err := uc.Update(context.Background(), testTenant, entities.FinancialTransaction{
			ID: "t-missing", Description: "x", Type: entities.TransactionEntrada, Value: 1,
		})
		if !errors.Is(err, ErrTransactionNotFound) {
			t.Fatalf("expected ErrTransactionNotFound, got %v", err)
		}
	})

	t.Run("manual edit keeps order linkage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewFinanceUseCase(repo)

		created := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
		repo.EXPECT().GetByID(gomock.Any(), "of-1", "t-1").Return(entities.FinancialTransaction{
			ID: "t-1", OficinaID: "of-1", Description: "Pagamento OS-AB12CD",
			Type: entities.TransactionEntrada, Value: 180,
			ReferenceID: "o-1", ReferenceType: "OS",
			CreatedAt: created, Date: created,
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx entities.FinancialTransaction) (entities.FinancialTransaction, error) {
				if tx.ReferenceID != "o-1" || tx.ReferenceType != "OS" {
					t.Fatalf("linkage lost: %+v", tx)
				}
				if !tx.CreatedAt.Equal(created) {
					t.Fatalf("created at rewritten: %v", tx.CreatedAt)
				}
				return tx, nil
			})

		_, err := uc.Update(context.Background(), testTenant, entities.FinancialTransaction{
			ID: "t-1", Description: "Pagamento ajustado", Type: entities.TransactionEntrada, Value: 170,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
