package request

import (
	"oficina_xyz/internal/domain/entities"
	"oficina_xyz/internal/usecase"
)

type DiagnoseRequest struct {
	Symptoms       string `json:"symptoms" binding:"required"`
	VehicleHistory string `json:"vehicle_history"`
}

type OrderSummaryRequest struct {
	Services     []OrderServiceRequest `json:"services"`
	Parts        []OrderPartRequest    `json:"parts"`
	TotalCost    float64               `json:"total_cost"`
	VehicleMake  string                `json:"vehicle_make"`
	VehicleModel string                `json:"vehicle_model"`
	VehicleYear  int                   `json:"vehicle_year"`
}

func (r OrderSummaryRequest) ToInput() usecase.OrderSummaryInput {
	services := make([]entities.OrderService, 0, len(r.Services))
	for _, s := range r.Services {
		services = append(services, entities.OrderService{
			Description: s.Description,
			Quantity:    s.Quantity,
			UnitPrice:   s.UnitPrice,
		})
	}
	parts := make([]entities.OrderPart, 0, len(r.Parts))
	for _, p := range r.Parts {
		parts = append(parts, entities.OrderPart{
			ItemID:    p.ItemID,
			Code:      p.Code,
			Name:      p.Name,
			Quantity:  p.Quantity,
			SalePrice: p.SalePrice,
		})
	}
	return usecase.OrderSummaryInput{
		Services:     services,
		Parts:        parts,
		TotalCost:    r.TotalCost,
		VehicleMake:  r.VehicleMake,
		VehicleModel: r.VehicleModel,
		VehicleYear:  r.VehicleYear,
	}
}

type VehicleHistoryRequest struct {
	History         string `json:"history" binding:"required"`
	CurrentSymptoms string `json:"current_symptoms"`
}
