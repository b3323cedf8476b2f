package usecase

import (
	"context"
	"testing"
	"time"

	"oficina_xyz/internal/domain/entities"
	mock_interfaces "oficina_xyz/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDashboardUseCase_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	txs := mock_interfaces.NewMockITransactionRepository(ctrl)
	uc := NewDashboardUseCase(orders, txs)

	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	lastMonth := now.AddDate(0, -1, 0)

	orders.EXPECT().ListByOficina(gomock.Any(), "of-1").Return([]entities.Order{
		{ID: "o-1", StartDate: now, Status: entities.OrderStatusEmAndamento, Customer: entities.Customer{Name: "Joana"}},
		{ID: "o-2", StartDate: now, Status: entities.OrderStatusConcluido, Customer: entities.Customer{Name: "Joana"}},
		{ID: "o-3", StartDate: lastMonth, Status: entities.OrderStatusEmAndamento, Customer: entities.Customer{Name: "Carlos"}},
	}, nil)
	txs.EXPECT().ListByOficina(gomock.Any(), "of-1").Return([]entities.FinancialTransaction{
		{Type: entities.TransactionEntrada, Value: 100, Date: now},
		{Type: entities.TransactionEntrada, Value: 70, Date: lastMonth},
		{Type: entities.TransactionSaida, Value: 40, Date: now},
	}, nil)

	summary, err := uc.Summary(context.Background(), testTenant, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.MonthlyRevenue != 100 {
		t.Fatalf("expected monthly revenue 100, got %v", summary.MonthlyRevenue)
	}
	if summary.ServicesThisMonth != 2 {
		t.Fatalf("expected 2 services this month, got %d", summary.ServicesThisMonth)
	}
	// the same customer twice in the month counts once
	if summary.ActiveCustomers != 1 {
		t.Fatalf("expected 1 active customer, got %d", summary.ActiveCustomers)
	}
	// in-progress counts regardless of month
	if summary.VehiclesInProgress != 2 {
		t.Fatalf("expected 2 vehicles in progress, got %d", summary.VehiclesInProgress)
	}
}

func TestDashboardUseCase_TrailingSeries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	txs := mock_interfaces.NewMockITransactionRepository(ctrl)
	uc := NewDashboardUseCase(orders, txs)

	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	orders.EXPECT().ListByOficina(gomock.Any(), "of-1").Return([]entities.Order{
		{ID: "o-1", StartDate: now},
		{ID: "o-2", StartDate: now.AddDate(0, -2, 0)},
		{ID: "o-3", StartDate: now.AddDate(0, -7, 0)}, // outside the window
	}, nil)
	txs.EXPECT().ListByOficina(gomock.Any(), "of-1").Return([]entities.FinancialTransaction{
		{Type: entities.TransactionEntrada, Value: 100, Date: now},
		{Type: entities.TransactionSaida, Value: 30, Date: now.AddDate(0, -2, 0)},
		{Type: entities.TransactionEntrada, Value: 999, Date: now.AddDate(0, -7, 0)},
	}, nil)

	points, err := uc.TrailingSeries(context.Background(), testTenant, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 6 {
		t.Fatalf("expected 6 points, got %d", len(points))
	}
	if points[0].Month != "2026-03" || points[5].Month != "2026-08" {
		t.Fatalf("expected oldest-first window, got %s..%s", points[0].Month, points[5].Month)
	}
	if points[5].Orders != 1 || points[5].Entrada != 100 {
		t.Fatalf("unexpected current month point: %+v", points[5])
	}
	if points[3].Orders != 1 || points[3].Saida != 30 {
		t.Fatalf("unexpected 2026-06 point: %+v", points[3])
	}
	for _, p := range points {
		if p.Entrada == 999 {
			t.Fatalf("out-of-window transaction leaked into %s", p.Month)
		}
	}
}
