package usecase

import (
	"context"
	"errors"
	"testing"

	"oficina_xyz/internal/domain/entities"
	"oficina_xyz/internal/domain/tenant"
	"oficina_xyz/internal/usecase/interfaces"
	mock_interfaces "oficina_xyz/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var testTenant = tenant.Tenant{OficinaID: "of-1", UserID: "u-1", Role: "OFICINA"}

func TestOrderUseCase_CreateOrder(t *testing.T) {
	t.Run("invalid tenant", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil, nil, nil)
		_, err := uc.CreateOrder(context.Background(), tenant.Tenant{}, entities.Order{})
		if !errors.Is(err, ErrInvalidTenant) {
			t.Fatalf("expected ErrInvalidTenant, got %v", err)
		}
	})

	t.Run("missing customer name", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil, nil, nil)
		_, err := uc.CreateOrder(context.Background(), testTenant, entities.Order{})
		if !errors.Is(err, ErrInvalidOrderPayload) {
			t.Fatalf("expected ErrInvalidOrderPayload, got %v", err)
		}
	})

	t.Run("derives total from lines when zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(orders, nil, nil, nil, nil)

		var created entities.Order
		orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				created = o
				return o, nil
			})

		res, err := uc.CreateOrder(context.Background(), testTenant, entities.Order{
			Customer: entities.Customer{Name: "Joana"},
			Services: []entities.OrderService{{Description: "Troca de oleo", Quantity: 2, UnitPrice: 50}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Total != 100 {
			t.Fatalf("expected derived total 100, got %v", created.Total)
		}
		if created.Status != entities.OrderStatusPendente {
			t.Fatalf("expected PENDENTE, got %s", created.Status)
		}
		if created.OficinaID != testTenant.OficinaID {
			t.Fatalf("expected tenant oficina id, got %q", created.OficinaID)
		}
		if res.Order.ID == "" || created.DisplayID == "" {
			t.Fatalf("expected generated ids, got %q/%q", res.Order.ID, created.DisplayID)
		}
	})

	t.Run("keeps manual total override", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(orders, nil, nil, nil, nil)

		orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.Total != 350 {
					t.Fatalf("expected override 350, got %v", o.Total)
				}
				return o, nil
			})

		_, err := uc.CreateOrder(context.Background(), testTenant, entities.Order{
			Customer: entities.Customer{Name: "Joana"},
			Services: []entities.OrderService{{Description: "Revisao", Quantity: 1, UnitPrice: 100}},
			Total:    350,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown mechanic reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mechanics := mock_interfaces.NewMockIMechanicRepository(ctrl)
		uc := NewOrderUseCase(nil, nil, nil, mechanics, nil)

		mechanics.EXPECT().GetByID(gomock.Any(), "of-1", "m-missing").Return(entities.Mechanic{}, nil)

		_, err := uc.CreateOrder(context.Background(), testTenant, entities.Order{
			Customer:   entities.Customer{Name: "Joana"},
			MechanicID: "m-missing",
		})
		if !errors.Is(err, ErrInvalidMechanicRef) {
			t.Fatalf("expected ErrInvalidMechanicRef, got %v", err)
		}
	})
}

func TestOrderUseCase_SaveOrder_Completion(t *testing.T) {
	part := entities.OrderPart{ItemID: "item-1", Code: "FLT-01", Name: "Filtro de oleo", Quantity: 2, SalePrice: 30}

	t.Run("transition into concluido decrements stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		stock := mock_interfaces.NewMockIStockItemRepository(ctrl)
		uc := NewOrderUseCase(orders, stock, nil, nil, nil)

		orders.EXPECT().GetByID(gomock.Any(), "of-1", "o-1").
			Return(entities.Order{ID: "o-1", OficinaID: "of-1", DisplayID: "OS-AB12CD", Status: entities.OrderStatusPendente}, nil)
		stock.EXPECT().GetByID(gomock.Any(), "of-1", "item-1").
			Return(entities.StockItem{ID: "item-1", Code: "FLT-01", Name: "Filtro de oleo", Quantity: 5}, nil)
		stock.EXPECT().DecrementBatch(gomock.Any(), "of-1", []interfaces.StockDecrement{{ItemID: "item-1", Quantity: 2}}).
			Return(nil)
		orders.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil })

		res, err := uc.SaveOrder(context.Background(), testTenant, entities.Order{
			ID:       "o-1",
			Customer: entities.Customer{Name: "Joana"},
			Status:   entities.OrderStatusConcluido,
			Parts:    []entities.OrderPart{part},
			Total:    60,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.StockApplied {
			t.Fatalf("expected stock applied")
		}
		if len(res.Shortages) != 0 {
			t.Fatalf("expected no shortages, got %v", res.Shortages)
		}
	})

	t.Run("shortage saves order without touching stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		stock := mock_interfaces.NewMockIStockItemRepository(ctrl)
		uc := NewOrderUseCase(orders, stock, nil, nil, nil)

		orders.EXPECT().GetByID(gomock.Any(), "of-1", "o-1").
			Return(entities.Order{ID: "o-1", OficinaID: "of-1", DisplayID: "OS-AB12CD", Status: entities.OrderStatusPendente}, nil)
		stock.EXPECT().GetByID(gomock.Any(), "of-1", "item-1").
			Return(entities.StockItem{ID: "item-1", Code: "FLT-01", Name: "Filtro de oleo", Quantity: 1}, nil)
		// no DecrementBatch call: a shortage skips the decrement entirely
		orders.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.Status != entities.OrderStatusConcluido {
					t.Fatalf("expected order still saved as CONCLUIDO, got %s", o.Status)
				}
				return o, nil
			})

		res, err := uc.SaveOrder(context.Background(), testTenant, entities.Order{
			ID:       "o-1",
			Customer: entities.Customer{Name: "Joana"},
			Status:   entities.OrderStatusConcluido,
			Parts:    []entities.OrderPart{part},
			Total:    60,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.StockApplied {
			t.Fatalf("expected stock not applied")
		}
		if len(res.Shortages) != 1 {
			t.Fatalf("expected one shortage, got %v", res.Shortages)
		}
		s := res.Shortages[0]
		if s.ItemID != "item-1" || s.Requested != 2 || s.Available != 1 {
			t.Fatalf("unexpected shortage: %+v", s)
		}
	})

	t.Run("already completed order does not decrement again", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		stock := mock_interfaces.NewMockIStockItemRepository(ctrl)
		uc := NewOrderUseCase(orders, stock, nil, nil, nil)

		orders.EXPECT().GetByID(gomock.Any(), "of-1", "o-1").
			Return(entities.Order{ID: "o-1", OficinaID: "of-1", Status: entities.OrderStatusConcluido}, nil)
		orders.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil })

		res, err := uc.SaveOrder(context.Background(), testTenant, entities.Order{
			ID:       "o-1",
			Customer: entities.Customer{Name: "Joana"},
			Status:   entities.OrderStatusConcluido,
			Parts:    []entities.OrderPart{part},
			Total:    60,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.StockApplied {
			t.Fatalf("expected no decrement on repeated completion")
		}
	})

	t.Run("lost race surfaces as shortage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		stock := mock_interfaces.NewMockIStockItemRepository(ctrl)
		uc := NewOrderUseCase(orders, stock, nil, nil, nil)

		orders.EXPECT().GetByID(gomock.Any(), "of-1", "o-1").
			Return(entities.Order{ID: "o-1", OficinaID: "of-1", Status: entities.OrderStatusPendente}, nil)
		stock.EXPECT().GetByID(gomock.Any(), "of-1", "item-1").
			Return(entities.StockItem{ID: "item-1", Code: "FLT-01", Name: "Filtro de oleo", Quantity: 5}, nil)
		stock.EXPECT().DecrementBatch(gomock.Any(), "of-1", gomock.Any()).
			Return(&interfaces.InsufficientStockError{ItemID: "item-1"})
		stock.EXPECT().GetByID(gomock.Any(), "of-1", "item-1").
			Return(entities.StockItem{ID: "item-1", Code: "FLT-01", Name: "Filtro de oleo", Quantity: 0}, nil)
		orders.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil })

		res, err := uc.SaveOrder(context.Background(), testTenant, entities.Order{
			ID:       "o-1",
			Customer: entities.Customer{Name: "Joana"},
			Status:   entities.OrderStatusConcluido,
			Parts:    []entities.OrderPart{part},
			Total:    60,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.StockApplied {
			t.Fatalf("expected stock not applied after lost race")
		}
		if len(res.Shortages) != 1 || res.Shortages[0].Available != 0 {
			t.Fatalf("unexpected shortages: %+v", res.Shortages)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(orders, nil, nil, nil, nil)

		orders.EXPECT().GetByID(gomock.Any(), "of-1", "o-missing").Return(entities.Order{}, nil)

		_, err := uc.SaveOrder(context.Background(), testTenant, entities.Order{
			ID:       "o-missing",
			Customer: entities.Customer{Name: "Joana"},
			Total:    10,
		})
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestOrderUseCase_RecordPayment(t *testing.T) {
	baseOrder := entities.Order{
		ID: "o-1", OficinaID: "of-1", DisplayID: "OS-AB12CD",
		Status: entities.OrderStatusConcluido, Total: 200,
	}

	t.Run("missing method", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil, nil, nil)
		_, err := uc.RecordPayment(context.Background(), testTenant, "o-1", "  ", 0, "")
		if !errors.Is(err, ErrInvalidPaymentMethod) {
			t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
		}
	})

	t.Run("clamps discount above ceiling", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		txs := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewOrderUseCase(orders, nil, txs, nil, nil)

		orders.EXPECT().GetByID(gomock.Any(), "of-1", "o-1").Return(baseOrder, nil)
		txs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx entities.FinancialTransaction) (entities.FinancialTransaction, error) {
				if tx.Value != 180 {
					t.Fatalf("expected clamped value 180, got %v", tx.Value)
				}
				if tx.Type != entities.TransactionEntrada || tx.ReferenceType != "OS" || tx.ReferenceID != "o-1" {
					t.Fatalf("unexpected transaction: %+v", tx)
				}
				return tx, nil
			})
		orders.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.Status != entities.OrderStatusFinalizado {
					t.Fatalf("expected FINALIZADO, got %s", o.Status)
				}
				if o.Subtotal != 200 || o.Total != 180 || o.DiscountPercent != MaxDiscountPercent {
					t.Fatalf("unexpected totals: %+v", o)
				}
				return o, nil
			})

		res, err := uc.RecordPayment(context.Background(), testTenant, "o-1", "pix", 50, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.DiscountClamped {
			t.Fatalf("expected clamp flag")
		}
	})

	t.Run("second call writes a second ledger entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		txs := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewOrderUseCase(orders, nil, txs, nil, nil)

		orders.EXPECT().GetByID(gomock.Any(), "of-1", "o-1").Return(baseOrder, nil).Times(2)
		txs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx entities.FinancialTransaction) (entities.FinancialTransaction, error) {
				return tx, nil
			}).Times(2)
		orders.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil }).Times(2)

		if _, err := uc.RecordPayment(context.Background(), testTenant, "o-1", "pix", 0, ""); err != nil {
			t.Fatalf("first payment: %v", err)
		}
		if _, err := uc.RecordPayment(context.Background(), testTenant, "o-1", "pix", 0, ""); err != nil {
			t.Fatalf("second payment: %v", err)
		}
	})

	t.Run("card token without gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(orders, nil, nil, nil, nil)

		orders.EXPECT().GetByID(gomock.Any(), "of-1", "o-1").Return(baseOrder, nil)

		_, err := uc.RecordPayment(context.Background(), testTenant, "o-1", "credit_card", 0, "tok-1")
		if !errors.Is(err, ErrPaymentGatewayUnset) {
			t.Fatalf("expected ErrPaymentGatewayUnset, got %v", err)
		}
	})

	t.Run("gateway rejection aborts before ledger write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderUseCase(orders, nil, nil, nil, gateway)

		orders.EXPECT().GetByID(gomock.Any(), "of-1", "o-1").Return(baseOrder, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return(interfaces.GatewayPaymentResult{}, errors.New("card declined"))

		_, err := uc.RecordPayment(context.Background(), testTenant, "o-1", "credit_card", 0, "tok-1")
		if !errors.Is(err, ErrPaymentGatewayRejected) {
			t.Fatalf("expected ErrPaymentGatewayRejected, got %v", err)
		}
	})

	t.Run("captures through gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		txs := mock_interfaces.NewMockITransactionRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderUseCase(orders, nil, txs, nil, gateway)

		orders.EXPECT().GetByID(gomock.Any(), "of-1", "o-1").Return(baseOrder, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req interfaces.GatewayPaymentRequest) (interfaces.GatewayPaymentResult, error) {
				if req.Amount != 200 || req.ReferenceID != "o-1" {
					t.Fatalf("unexpected gateway request: %+v", req)
				}
				return interfaces.GatewayPaymentResult{ProviderPaymentID: "mp-123", ProviderStatus: "approved"}, nil
			})
		txs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx entities.FinancialTransaction) (entities.FinancialTransaction, error) {
				return tx, nil
			})
		orders.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil })

		res, err := uc.RecordPayment(context.Background(), testTenant, "o-1", "credit_card", 0, "tok-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ProviderPaymentID != "mp-123" {
			t.Fatalf("expected provider id, got %q", res.ProviderPaymentID)
		}
	})
}
