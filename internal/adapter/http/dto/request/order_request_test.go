package request

import (
	"testing"

	"oficina_xyz/internal/domain/entities"
)

func TestOrderRequest_ToEntity(t *testing.T) {
	t.Run("defaults status to PENDENTE", func(t *testing.T) {
		order := OrderRequest{Customer: CustomerRequest{Name: "Joana"}}.ToEntity()
		if order.Status != entities.OrderStatusPendente {
			t.Fatalf("expected PENDENTE, got %s", order.Status)
		}
	})

	t.Run("uppercases status and plate", func(t *testing.T) {
		order := OrderRequest{
			Customer: CustomerRequest{Name: "Joana"},
			Vehicle:  VehicleRequest{Plate: " abc1d23 "},
			Status:   "em_andamento",
		}.ToEntity()
		if order.Status != entities.OrderStatusEmAndamento {
			t.Fatalf("expected EM_ANDAMENTO, got %s", order.Status)
		}
		if order.Vehicle.Plate != "ABC1D23" {
			t.Fatalf("expected normalized plate, got %q", order.Vehicle.Plate)
		}
	})

	t.Run("trims line fields", func(t *testing.T) {
		order := OrderRequest{
			Customer: CustomerRequest{Name: "  Joana  ", Phone: " 11 99999-0000 "},
			Services: []OrderServiceRequest{{Description: " Troca de oleo ", Quantity: 1, UnitPrice: 50}},
			Parts:    []OrderPartRequest{{ItemID: " item-1 ", Code: " FLT-01 ", Quantity: 2}},
		}.ToEntity()
		if order.Customer.Name != "Joana" {
			t.Fatalf("customer name not trimmed: %q", order.Customer.Name)
		}
		if order.Services[0].Description != "Troca de oleo" {
			t.Fatalf("service description not trimmed: %q", order.Services[0].Description)
		}
		if order.Parts[0].ItemID != "item-1" || order.Parts[0].Code != "FLT-01" {
			t.Fatalf("part refs not trimmed: %+v", order.Parts[0])
		}
	})
}

func TestPaymentRequest_ResolveMethod(t *testing.T) {
	if got := (PaymentRequest{PaymentMethod: " PIX "}).ResolveMethod(); got != "pix" {
		t.Fatalf("expected pix, got %q", got)
	}
}
