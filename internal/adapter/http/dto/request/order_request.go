package request

import (
	"strings"
	"time"

	"oficina_xyz/internal/domain/entities"
)

type CustomerRequest struct {
	Name     string `json:"name" binding:"required"`
	Document string `json:"document"`
	Phone    string `json:"phone"`
}

type VehicleRequest struct {
	Make  string `json:"make"`
	Model string `json:"model"`
	Year  int    `json:"year"`
	Plate string `json:"plate"`
	Color string `json:"color"`
}

type OrderServiceRequest struct {
	Description string  `json:"description" binding:"required"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

type OrderPartRequest struct {
	ItemID    string  `json:"item_id" binding:"required"`
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity" binding:"required"`
	SalePrice float64 `json:"sale_price"`
}

// OrderRequest is the payload for creating or replacing a service order. The
// part lines carry only a weak item reference; code, name and price snapshots
// are filled server-side from current stock when left empty.
type OrderRequest struct {
	Customer   CustomerRequest       `json:"customer" binding:"required"`
	Vehicle    VehicleRequest        `json:"vehicle"`
	MechanicID string                `json:"mechanic_id"`
	StartDate  time.Time             `json:"start_date"`
	Status     string                `json:"status"`
	Symptoms   string                `json:"symptoms"`
	Diagnosis  string                `json:"diagnosis"`
	Services   []OrderServiceRequest `json:"services"`
	Parts      []OrderPartRequest    `json:"parts"`
	Total      float64               `json:"total"`
}

// ToEntity maps the payload onto a domain order. Status defaults to PENDENTE
// when absent.
func (r OrderRequest) ToEntity() entities.Order {
	status := entities.OrderStatus(strings.ToUpper(strings.TrimSpace(r.Status)))
	if status == "" {
		status = entities.OrderStatusPendente
	}

	services := make([]entities.OrderService, 0, len(r.Services))
	for _, s := range r.Services {
		services = append(services, entities.OrderService{
			Description: strings.TrimSpace(s.Description),
			Quantity:    s.Quantity,
			UnitPrice:   s.UnitPrice,
		})
	}
	parts := make([]entities.OrderPart, 0, len(r.Parts))
	for _, p := range r.Parts {
		parts = append(parts, entities.OrderPart{
			ItemID:    strings.TrimSpace(p.ItemID),
			Code:      strings.TrimSpace(p.Code),
			Name:      strings.TrimSpace(p.Name),
			Quantity:  p.Quantity,
			SalePrice: p.SalePrice,
		})
	}

	return entities.Order{
		Customer: entities.Customer{
			Name:     strings.TrimSpace(r.Customer.Name),
			Document: strings.TrimSpace(r.Customer.Document),
			Phone:    strings.TrimSpace(r.Customer.Phone),
		},
		Vehicle: entities.Vehicle{
			Make:  strings.TrimSpace(r.Vehicle.Make),
			Model: strings.TrimSpace(r.Vehicle.Model),
			Year:  r.Vehicle.Year,
			Plate: strings.ToUpper(strings.TrimSpace(r.Vehicle.Plate)),
			Color: strings.TrimSpace(r.Vehicle.Color),
		},
		MechanicID: strings.TrimSpace(r.MechanicID),
		StartDate:  r.StartDate,
		Status:     status,
		Symptoms:   strings.TrimSpace(r.Symptoms),
		Diagnosis:  strings.TrimSpace(r.Diagnosis),
		Services:   services,
		Parts:      parts,
		Total:      r.Total,
	}
}

// PaymentRequest closes an order: FINALIZADO plus a ledger entry.
type PaymentRequest struct {
	PaymentMethod   string  `json:"payment_method" binding:"required"`
	DiscountPercent float64 `json:"discount_percent"`
	CardToken       string  `json:"card_token"`
}

func (r PaymentRequest) ResolveMethod() string {
	return strings.ToLower(strings.TrimSpace(r.PaymentMethod))
}
