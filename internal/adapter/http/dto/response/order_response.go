package response

import (
	"time"

	"oficina_xyz/internal/domain/entities"
	"oficina_xyz/internal/usecase"
)

type OrderResponse struct {
	ID              string                  `json:"id"`
	DisplayID       string                  `json:"display_id"`
	Customer        entities.Customer       `json:"customer"`
	Vehicle         entities.Vehicle        `json:"vehicle"`
	MechanicID      string                  `json:"mechanic_id,omitempty"`
	StartDate       time.Time               `json:"start_date"`
	Status          string                  `json:"status"`
	Symptoms        string                  `json:"symptoms,omitempty"`
	Diagnosis       string                  `json:"diagnosis,omitempty"`
	Services        []entities.OrderService `json:"services"`
	Parts           []entities.OrderPart    `json:"parts"`
	Total           float64                 `json:"total"`
	DiscountPercent float64                 `json:"discount_percent,omitempty"`
	Subtotal        float64                 `json:"subtotal,omitempty"`
	PaymentMethod   string                  `json:"payment_method,omitempty"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:              o.ID,
		DisplayID:       o.DisplayID,
		Customer:        o.Customer,
		Vehicle:         o.Vehicle,
		MechanicID:      o.MechanicID,
		StartDate:       o.StartDate,
		Status:          string(o.Status),
		Symptoms:        o.Symptoms,
		Diagnosis:       o.Diagnosis,
		Services:        o.Services,
		Parts:           o.Parts,
		Total:           o.Total,
		DiscountPercent: o.DiscountPercent,
		Subtotal:        o.Subtotal,
		PaymentMethod:   o.PaymentMethod,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

// SaveOrderResponse carries the persisted order plus the stock outcome of a
// completion transition. Shortages is non-empty when the order was saved but
// stock could not cover its parts.
type SaveOrderResponse struct {
	Order        OrderResponse           `json:"order"`
	StockApplied bool                    `json:"stock_applied"`
	Shortages    []usecase.StockShortage `json:"shortages,omitempty"`
}

func FromSaveOrderResult(res usecase.SaveOrderResult) SaveOrderResponse {
	return SaveOrderResponse{
		Order:        FromOrder(res.Order),
		StockApplied: res.StockApplied,
		Shortages:    res.Shortages,
	}
}

type PaymentResponse struct {
	Order             OrderResponse       `json:"order"`
	Transaction       TransactionResponse `json:"transaction"`
	DiscountClamped   bool                `json:"discount_clamped"`
	ProviderPaymentID string              `json:"provider_payment_id,omitempty"`
}

func FromPaymentResult(res usecase.PaymentResult) PaymentResponse {
	return PaymentResponse{
		Order:             FromOrder(res.Order),
		Transaction:       FromTransaction(res.Transaction),
		DiscountClamped:   res.DiscountClamped,
		ProviderPaymentID: res.ProviderPaymentID,
	}
}
