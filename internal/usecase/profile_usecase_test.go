package usecase

import (
	"context"
	"testing"
	"time"

	"oficina_xyz/internal/domain/entities"
	mock_interfaces "oficina_xyz/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProfileUseCase_GetProfile(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	t.Run("bootstraps on first access", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewProfileUseCase(repo)

		repo.EXPECT().GetByOficinaID(gomock.Any(), "of-1").Return(entities.UserProfile{}, nil)
		repo.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.UserProfile) (entities.UserProfile, error) {
				if p.OficinaID != "of-1" || p.Role != entities.RoleOficina {
					t.Fatalf("unexpected profile: %+v", p)
				}
				if !p.CreatedAt.Equal(now) {
					t.Fatalf("trial clock should start now, got %v", p.CreatedAt)
				}
				return p, nil
			})

		view, err := uc.GetProfile(context.Background(), testTenant, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.ActivePlan != entities.PlanTrial {
			t.Fatalf("fresh profile should be on trial, got %s", view.ActivePlan)
		}
	})

	t.Run("existing profile within trial window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewProfileUseCase(repo)

		repo.EXPECT().GetByOficinaID(gomock.Any(), "of-1").Return(entities.UserProfile{
			ID: "p-1", OficinaID: "of-1", Role: entities.RoleOficina,
			CreatedAt: now.Add(-entities.TrialWindow + time.Hour),
		}, nil)

		view, err := uc.GetProfile(context.Background(), testTenant, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.ActivePlan != entities.PlanTrial {
			t.Fatalf("expected TRIAL inside the window, got %s", view.ActivePlan)
		}
	})

	t.Run("trial expires exactly at the boundary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewProfileUseCase(repo)

		repo.EXPECT().GetByOficinaID(gomock.Any(), "of-1").Return(entities.UserProfile{
			ID: "p-1", OficinaID: "of-1", Role: entities.RoleOficina,
			CreatedAt: now.Add(-entities.TrialWindow),
		}, nil)

		view, err := uc.GetProfile(context.Background(), testTenant, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.ActivePlan != entities.PlanGratuito {
			t.Fatalf("expected GRATUITO at the boundary, got %s", view.ActivePlan)
		}
	})
}
