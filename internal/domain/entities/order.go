package entities

import "time"

// OrderStatus is the service-order lifecycle.
//
// Transitions are driven by the order use case:
//   - orders are created PENDENTE;
//   - entering CONCLUIDO triggers the one-time stock decrement;
//   - FINALIZADO means the order was paid and a ledger entry exists.

type OrderStatus string

const (
	OrderStatusPendente    OrderStatus = "PENDENTE"
	OrderStatusEmAndamento OrderStatus = "EM_ANDAMENTO"
	OrderStatusConcluido   OrderStatus = "CONCLUIDO"
	OrderStatusFinalizado  OrderStatus = "FINALIZADO"
)

// Completed reports whether the status already consumed stock.
func (s OrderStatus) Completed() bool {
	return s == OrderStatusConcluido || s == OrderStatusFinalizado
}

// Customer identifies who owns the vehicle. Plain value object, no collection
// of its own.
type Customer struct {
	Name     string `json:"name"`
	Document string `json:"document,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

type Vehicle struct {
	Make  string `json:"make"`
	Model string `json:"model"`
	Year  int    `json:"year"`
	Plate string `json:"plate"`
	Color string `json:"color,omitempty"`
}

// OrderService is one labor line on the order.
type OrderService struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// OrderPart is a price/name snapshot of a stock item at attach time. It keeps
// a weak reference back to the live item; the snapshot is what makes historical
// orders stable when the stock item is later edited or deleted.
type OrderPart struct {
	ItemID    string  `json:"item_id"`
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	SalePrice float64 `json:"sale_price"`
}

// Order is the service-order document tracking one repair engagement.
//
// Storage model (DynamoDB):
//   - PK: oficina_id
//   - SK: id
//
// Total may be manually overridden by the workshop (service add-ons priced off
// the books); SumLines is the derived value used when the caller sends zero.

type Order struct {
	ID              string         `json:"id"`
	OficinaID       string         `json:"oficina_id"`
	DisplayID       string         `json:"display_id"`
	Customer        Customer       `json:"customer"`
	Vehicle         Vehicle        `json:"vehicle"`
	MechanicID      string         `json:"mechanic_id,omitempty"`
	StartDate       time.Time      `json:"start_date"`
	Status          OrderStatus    `json:"status"`
	Symptoms        string         `json:"symptoms,omitempty"`
	Diagnosis       string         `json:"diagnosis,omitempty"`
	Services        []OrderService `json:"services"`
	Parts           []OrderPart    `json:"parts"`
	Total           float64        `json:"total"`
	DiscountPercent float64        `json:"discount_percent,omitempty"`
	Subtotal        float64        `json:"subtotal,omitempty"`
	PaymentMethod   string         `json:"payment_method,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// SumLines is the derived order value: services plus part snapshots.
func (o Order) SumLines() float64 {
	total := 0.0
	for _, s := range o.Services {
		qty := s.Quantity
		if qty <= 0 {
			qty = 1
		}
		total += s.UnitPrice * float64(qty)
	}
	for _, p := range o.Parts {
		total += p.SalePrice * float64(p.Quantity)
	}
	return total
}
