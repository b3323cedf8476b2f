package usecase

import (
	"context"
	"errors"
	"testing"

	"oficina_xyz/internal/domain/entities"
	"oficina_xyz/internal/domain/tenant"
	mock_interfaces "oficina_xyz/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestMechanicUseCase_Create(t *testing.T) {
	t.Run("invalid tenant", func(t *testing.T) {
		uc := NewMechanicUseCase(nil)
		_, err := uc.Create(context.Background(), tenant.Tenant{}, entities.Mechanic{Name: "Pedro"})
		if !errors.Is(err, ErrInvalidTenant) {
			t.Fatalf("expected ErrInvalidTenant, got %v", err)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		uc := NewMechanicUseCase(nil)
		_, err := uc.Create(context.Background(), testTenant, entities.Mechanic{Name: "   "})
		if !errors.Is(err, ErrInvalidMechanic) {
			t.Fatalf("expected ErrInvalidMechanic, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMechanicRepository(ctrl)
		uc := NewMechanicUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m entities.Mechanic) (entities.Mechanic, error) {
				if m.ID == "" || m.OficinaID != "of-1" {
					t.Fatalf("unexpected mechanic: %+v", m)
				}
				return m, nil
			})

		_, err := uc.Create(context.Background(), testTenant, entities.Mechanic{Name: "Pedro", Specialty: "Freios"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestMechanicUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMechanicRepository(ctrl)
		uc := NewMechanicUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "of-1", "m-missing").Return(entities.Mechanic{}, nil)

		_, err := uc.Update(context.Background(), testTenant, entities.Mechanic{ID: "m-missing", Name: "Pedro"})
		if !errors.Is(err, ErrMechanicNotFound) {
			t.Fatalf("expected ErrMechanicNotFound, got %v", err)
		}
	})

	t.Run("keeps created at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMechanicRepository(ctrl)
		uc := NewMechanicUseCase(repo)

		current := entities.Mechanic{ID: "m-1", OficinaID: "of-1", Name: "Pedro"}
		repo.EXPECT().GetByID(gomock.Any(), "of-1", "m-1").Return(current, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m entities.Mechanic) (entities.Mechanic, error) {
				if !m.CreatedAt.Equal(current.CreatedAt) {
					t.Fatalf("created at rewritten: %v", m.CreatedAt)
				}
				return m, nil
			})

		_, err := uc.Update(context.Background(), testTenant, entities.Mechanic{ID: "m-1", Name: "Pedro Silva"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
