package usecase

import (
	"context"
	"time"

	"oficina_xyz/internal/domain/entities"
	"oficina_xyz/internal/domain/tenant"
	"oficina_xyz/internal/usecase/interfaces"
)

// trailingMonths is the chart window shown on the dashboard.
const trailingMonths = 6

type DashboardSummary struct {
	MonthlyRevenue     float64 `json:"monthly_revenue"`
	ActiveCustomers    int     `json:"active_customers"`
	ServicesThisMonth  int     `json:"services_this_month"`
	VehiclesInProgress int     `json:"vehicles_in_progress"`
}

// MonthPoint is one month of the trailing chart.
type MonthPoint struct {
	Month   string  `json:"month"` // YYYY-MM
	Orders  int     `json:"orders"`
	Entrada float64 `json:"entrada"`
	Saida   float64 `json:"saida"`
}

// IDashboardUseCase derives read-only rollups from orders and the ledger.
// Nothing here is persisted; every read recomputes from the stores.

type IDashboardUseCase interface {
	Summary(ctx context.Context, tn tenant.Tenant, now time.Time) (DashboardSummary, error)
	TrailingSeries(ctx context.Context, tn tenant.Tenant, now time.Time) ([]MonthPoint, error)
}

type DashboardUseCase struct {
	orders       interfaces.IOrderRepository
	transactions interfaces.ITransactionRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(orders interfaces.IOrderRepository, transactions interfaces.ITransactionRepository) *DashboardUseCase {
	return &DashboardUseCase{orders: orders, transactions: transactions}
}

func sameMonth(a, b time.Time) bool {
	a, b = a.UTC(), b.UTC()
	return a.Year() == b.Year() && a.Month() == b.Month()
}

func monthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}

func (u *DashboardUseCase) Summary(ctx context.Context, tn tenant.Tenant, now time.Time) (DashboardSummary, error) {
	if !tn.Valid() {
		return DashboardSummary{}, ErrInvalidTenant
	}

	orders, err := u.orders.ListByOficina(ctx, tn.OficinaID)
	if err != nil {
		return DashboardSummary{}, err
	}
	txs, err := u.transactions.ListByOficina(ctx, tn.OficinaID)
	if err != nil {
		return DashboardSummary{}, err
	}

	summary := DashboardSummary{}
	customers := map[string]struct{}{}

	for _, o := range orders {
		if o.Status == entities.OrderStatusEmAndamento {
			summary.VehiclesInProgress++
		}
		if sameMonth(o.StartDate, now) {
			summary.ServicesThisMonth++
			if o.Customer.Name != "" {
				customers[o.Customer.Name] = struct{}{}
			}
		}
	}
	summary.ActiveCustomers = len(customers)

	for _, t := range txs {
		if t.Type == entities.TransactionEntrada && sameMonth(t.Date, now) {
			summary.MonthlyRevenue += t.Value
		}
	}
	return summary, nil
}

// TrailingSeries returns the last six months, oldest first, including the
// current one.
func (u *DashboardUseCase) TrailingSeries(ctx context.Context, tn tenant.Tenant, now time.Time) ([]MonthPoint, error) {
	if !tn.Valid() {
		return nil, ErrInvalidTenant
	}

	orders, err := u.orders.ListByOficina(ctx, tn.OficinaID)
	if err != nil {
		return nil, err
	}
	txs, err := u.transactions.ListByOficina(ctx, tn.OficinaID)
	if err != nil {
		return nil, err
	}

	now = now.UTC()
	points := make([]MonthPoint, 0, trailingMonths)
	index := map[string]int{}
	for i := trailingMonths - 1; i >= 0; i-- {
		m := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		key := monthKey(m)
		index[key] = len(points)
		points = append(points, MonthPoint{Month: key})
	}

	for _, o := range orders {
		if i, ok := index[monthKey(o.StartDate)]; ok {
			points[i].Orders++
		}
	}
	for _, t := range txs {
		i, ok := index[monthKey(t.Date)]
		if !ok {
			continue
		}
		switch t.Type {
		case entities.TransactionEntrada:
			points[i].Entrada += t.Value
		case entities.TransactionSaida:
			points[i].Saida += t.Value
		}
	}
	return points, nil
}
