package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"oficina_xyz/internal/domain/entities"
	"oficina_xyz/internal/domain/tenant"
	"oficina_xyz/internal/usecase/interfaces"
	"oficina_xyz/pkg/logger"
)

var (
	ErrOrderNotFound          = errors.New("order not found")
	ErrInvalidOrderID         = errors.New("invalid order id")
	ErrInvalidOrderPayload    = errors.New("invalid order payload")
	ErrInvalidPaymentMethod   = errors.New("invalid payment method")
	ErrPaymentGatewayRejected = errors.New("payment gateway rejected the payment")
	ErrPaymentGatewayUnset    = errors.New("payment gateway not configured")
	ErrInvalidMechanicRef     = errors.New("referenced mechanic not found")
)

// MaxDiscountPercent is the ceiling applied by RecordPayment. Requests above
// it are clamped, not rejected.
const MaxDiscountPercent = 10.0

// StockShortage names one part the workshop cannot fulfil from stock.
type StockShortage struct {
	ItemID    string `json:"item_id"`
	Code      string `json:"code,omitempty"`
	Name      string `json:"name,omitempty"`
	Requested int    `json:"requested"`
	Available int    `json:"available"`
}

// SaveOrderResult reports the outcome of a save. The order is persisted even
// when Shortages is non-empty; StockApplied is true only when a completion
// transition decremented every referenced item.
type SaveOrderResult struct {
	Order        entities.Order
	StockApplied bool
	Shortages    []StockShortage
}

// PaymentResult reports the outcome of RecordPayment.
type PaymentResult struct {
	Order             entities.Order
	Transaction       entities.FinancialTransaction
	DiscountClamped   bool
	ProviderPaymentID string
}

// IOrderUseCase mediates the service-order lifecycle and its side effects.
//
// The completion decrement and the payment ledger entry both live here; the
// handlers never touch more than one use case per request.

type IOrderUseCase interface {
	CreateOrder(ctx context.Context, tn tenant.Tenant, o entities.Order) (SaveOrderResult, error)
	SaveOrder(ctx context.Context, tn tenant.Tenant, o entities.Order) (SaveOrderResult, error)
	GetOrder(ctx context.Context, tn tenant.Tenant, id string) (entities.Order, error)
	ListOrders(ctx context.Context, tn tenant.Tenant) ([]entities.Order, error)
	DeleteOrder(ctx context.Context, tn tenant.Tenant, id string) error
	RecordPayment(ctx context.Context, tn tenant.Tenant, orderID, paymentMethod string, discountPercent float64, cardToken string) (PaymentResult, error)
}

type OrderUseCase struct {
	orders       interfaces.IOrderRepository
	stock        interfaces.IStockItemRepository
	transactions interfaces.ITransactionRepository
	mechanics    interfaces.IMechanicRepository
	gateway      interfaces.IPaymentGateway
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(
	orders interfaces.IOrderRepository,
	stock interfaces.IStockItemRepository,
	transactions interfaces.ITransactionRepository,
	mechanics interfaces.IMechanicRepository,
	gateway interfaces.IPaymentGateway,
) *OrderUseCase {
	return &OrderUseCase{
		orders:       orders,
		stock:        stock,
		transactions: transactions,
		mechanics:    mechanics,
		gateway:      gateway,
	}
}

func (u *OrderUseCase) CreateOrder(ctx context.Context, tn tenant.Tenant, o entities.Order) (SaveOrderResult, error) {
	if !tn.Valid() {
		return SaveOrderResult{}, ErrInvalidTenant
	}
	if err := u.normalize(ctx, tn, &o); err != nil {
		return SaveOrderResult{}, err
	}

	now := time.Now().UTC()
	o.ID = newID()
	o.OficinaID = tn.OficinaID
	o.DisplayID = newDisplayID(o.ID)
	if o.Status == "" {
		o.Status = entities.OrderStatusPendente
	}
	if o.StartDate.IsZero() {
		o.StartDate = now
	}
	o.CreatedAt = now
	o.UpdatedAt = now

	// Orders created straight into a completed status still consume stock;
	// there is no previous version, so any completed status triggers it.
	result, err := u.applyCompletion(ctx, tn, &o, entities.Order{})
	if err != nil {
		return SaveOrderResult{}, err
	}

	created, err := u.orders.Create(ctx, o)
	if err != nil {
		return SaveOrderResult{}, err
	}
	result.Order = created
	return result, nil
}

// SaveOrder persists the order and applies the completion side effect when the
// status transitions into CONCLUIDO.
//
// The order is persisted regardless of the stock outcome. When any part lacks
// stock, the decrement is skipped entirely and every shortage is reported as a
// recoverable warning. The decrement itself is a single storage transaction
// guarded per item, so two concurrent completions can never overdraw stock.
func (u *OrderUseCase) SaveOrder(ctx context.Context, tn tenant.Tenant, o entities.Order) (SaveOrderResult, error) {
	if !tn.Valid() {
		return SaveOrderResult{}, ErrInvalidTenant
	}
	o.ID = strings.TrimSpace(o.ID)
	if o.ID == "" {
		return SaveOrderResult{}, ErrInvalidOrderID
	}
	if err := u.normalize(ctx, tn, &o); err != nil {
		return SaveOrderResult{}, err
	}

	previous, err := u.orders.GetByID(ctx, tn.OficinaID, o.ID)
	if err != nil {
		return SaveOrderResult{}, err
	}
	if previous.ID == "" {
		return SaveOrderResult{}, ErrOrderNotFound
	}

	o.OficinaID = tn.OficinaID
	o.DisplayID = previous.DisplayID
	o.CreatedAt = previous.CreatedAt
	if o.StartDate.IsZero() {
		o.StartDate = previous.StartDate
	}
	if o.Status == "" {
		o.Status = previous.Status
	}
	o.UpdatedAt = time.Now().UTC()

	result, err := u.applyCompletion(ctx, tn, &o, previous)
	if err != nil {
		return SaveOrderResult{}, err
	}

	saved, err := u.orders.Save(ctx, o)
	if err != nil {
		return SaveOrderResult{}, err
	}
	result.Order = saved
	return result, nil
}

// applyCompletion runs the one-time stock decrement for a transition into a
// completed status. It mutates nothing on shortage and fills the result's
// shortage list instead.
func (u *OrderUseCase) applyCompletion(ctx context.Context, tn tenant.Tenant, o *entities.Order, previous entities.Order) (SaveOrderResult, error) {
	result := SaveOrderResult{}
	if !o.Status.Completed() || previous.Status.Completed() {
		return result, nil
	}

	decrements := make([]interfaces.StockDecrement, 0, len(o.Parts))
	for _, part := range o.Parts {
		if part.ItemID == "" || part.Quantity <= 0 {
			continue
		}
		item, err := u.stock.GetByID(ctx, tn.OficinaID, part.ItemID)
		if err != nil {
			return SaveOrderResult{}, err
		}
		if item.ID == "" {
			result.Shortages = append(result.Shortages, StockShortage{
				ItemID: part.ItemID, Code: part.Code, Name: part.Name,
				Requested: part.Quantity, Available: 0,
			})
			continue
		}
		if item.Quantity < part.Quantity {
			result.Shortages = append(result.Shortages, StockShortage{
				ItemID: item.ID, Code: item.Code, Name: item.Name,
				Requested: part.Quantity, Available: item.Quantity,
			})
			continue
		}
		decrements = append(decrements, interfaces.StockDecrement{ItemID: part.ItemID, Quantity: part.Quantity})
	}

	if len(result.Shortages) > 0 || len(decrements) == 0 {
		return result, nil
	}

	if err := u.stock.DecrementBatch(ctx, tn.OficinaID, decrements); err != nil {
		var insufficient *interfaces.InsufficientStockError
		if errors.As(err, &insufficient) {
			// Lost the race to a concurrent completion; nothing was applied.
			shortage := StockShortage{ItemID: insufficient.ItemID}
			for _, d := range decrements {
				if d.ItemID == insufficient.ItemID {
					shortage.Requested = d.Quantity
				}
			}
			if item, gerr := u.stock.GetByID(ctx, tn.OficinaID, insufficient.ItemID); gerr == nil && item.ID != "" {
				shortage.Code = item.Code
				shortage.Name = item.Name
				shortage.Available = item.Quantity
			}
			result.Shortages = append(result.Shortages, shortage)
			return result, nil
		}
		return SaveOrderResult{}, err
	}

	result.StockApplied = true
	logger.Info().
		Str("oficina_id", tn.OficinaID).
		Str("order_id", o.ID).
		Int("parts", len(decrements)).
		Msg("order completion stock decrement applied")
	return result, nil
}

// RecordPayment registers the payment for an order: clamps the discount,
// optionally captures through the payment gateway, writes exactly one ENTRADA
// ledger entry and marks the order FINALIZADO.
//
// Deliberately not idempotent: a second call produces a second ledger entry.
func (u *OrderUseCase) RecordPayment(ctx context.Context, tn tenant.Tenant, orderID, paymentMethod string, discountPercent float64, cardToken string) (PaymentResult, error) {
	if !tn.Valid() {
		return PaymentResult{}, ErrInvalidTenant
	}
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return PaymentResult{}, ErrInvalidOrderID
	}
	paymentMethod = strings.TrimSpace(paymentMethod)
	if paymentMethod == "" {
		return PaymentResult{}, ErrInvalidPaymentMethod
	}

	order, err := u.orders.GetByID(ctx, tn.OficinaID, orderID)
	if err != nil {
		return PaymentResult{}, err
	}
	if order.ID == "" {
		return PaymentResult{}, ErrOrderNotFound
	}

	clamped := false
	if discountPercent < 0 {
		discountPercent = 0
		clamped = true
	}
	if discountPercent > MaxDiscountPercent {
		discountPercent = MaxDiscountPercent
		clamped = true
	}
	if clamped {
		logger.Warn().
			Str("oficina_id", tn.OficinaID).
			Str("order_id", orderID).
			Float64("discount_percent", discountPercent).
			Msg("discount percent clamped")
	}

	subtotal := order.Total
	discountValue := subtotal * discountPercent / 100
	finalTotal := subtotal - discountValue

	result := PaymentResult{DiscountClamped: clamped}

	if cardToken != "" {
		if u.gateway == nil {
			return PaymentResult{}, ErrPaymentGatewayUnset
		}
		captured, err := u.gateway.CreatePayment(ctx, interfaces.GatewayPaymentRequest{
			Amount:      finalTotal,
			Method:      paymentMethod,
			CardToken:   cardToken,
			Description: fmt.Sprintf("Ordem de servico %s", order.DisplayID),
			ReferenceID: order.ID,
		})
		if err != nil {
			logger.Error().
				Str("oficina_id", tn.OficinaID).
				Str("order_id", orderID).
				Err(err).
				Msg("payment gateway capture failed")
			return PaymentResult{}, fmt.Errorf("%w: %v", ErrPaymentGatewayRejected, err)
		}
		result.ProviderPaymentID = captured.ProviderPaymentID
	}

	now := time.Now().UTC()
	tx := entities.FinancialTransaction{
		ID:            newID(),
		OficinaID:     tn.OficinaID,
		Description:   fmt.Sprintf("Pagamento %s", order.DisplayID),
		Category:      "servicos",
		Type:          entities.TransactionEntrada,
		Value:         finalTotal,
		Date:          now,
		ReferenceID:   order.ID,
		ReferenceType: "OS",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	createdTx, err := u.transactions.Create(ctx, tx)
	if err != nil {
		return PaymentResult{}, err
	}

	order.Status = entities.OrderStatusFinalizado
	order.PaymentMethod = paymentMethod
	order.DiscountPercent = discountPercent
	order.Subtotal = subtotal
	order.Total = finalTotal
	order.UpdatedAt = now

	saved, err := u.orders.Save(ctx, order)
	if err != nil {
		return PaymentResult{}, err
	}

	result.Order = saved
	result.Transaction = createdTx
	return result, nil
}

func (u *OrderUseCase) GetOrder(ctx context.Context, tn tenant.Tenant, id string) (entities.Order, error) {
	if !tn.Valid() {
		return entities.Order{}, ErrInvalidTenant
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.orders.GetByID(ctx, tn.OficinaID, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) ListOrders(ctx context.Context, tn tenant.Tenant) ([]entities.Order, error) {
	if !tn.Valid() {
		return nil, ErrInvalidTenant
	}
	return u.orders.ListByOficina(ctx, tn.OficinaID)
}

func (u *OrderUseCase) DeleteOrder(ctx context.Context, tn tenant.Tenant, id string) error {
	if !tn.Valid() {
		return ErrInvalidTenant
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidOrderID
	}
	return u.orders.Delete(ctx, tn.OficinaID, id)
}

// normalize validates the payload, resolves the mechanic reference and fills
// part snapshots and the derived total.
func (u *OrderUseCase) normalize(ctx context.Context, tn tenant.Tenant, o *entities.Order) error {
	o.Customer.Name = strings.TrimSpace(o.Customer.Name)
	if o.Customer.Name == "" {
		return ErrInvalidOrderPayload
	}
	for _, p := range o.Parts {
		if p.Quantity < 0 || p.SalePrice < 0 {
			return ErrInvalidOrderPayload
		}
	}
	for _, s := range o.Services {
		if s.Quantity < 0 || s.UnitPrice < 0 {
			return ErrInvalidOrderPayload
		}
	}

	if o.MechanicID != "" && u.mechanics != nil {
		m, err := u.mechanics.GetByID(ctx, tn.OficinaID, o.MechanicID)
		if err != nil {
			return err
		}
		if m.ID == "" {
			return ErrInvalidMechanicRef
		}
	}

	// Part lines keep a snapshot of the stock item at attach time so later
	// price edits never rewrite order history.
	for i, p := range o.Parts {
		if p.ItemID == "" || (p.Name != "" && p.SalePrice > 0) {
			continue
		}
		item, err := u.stock.GetByID(ctx, tn.OficinaID, p.ItemID)
		if err != nil {
			return err
		}
		if item.ID == "" {
			continue
		}
		if p.Name == "" {
			o.Parts[i].Name = item.Name
		}
		if p.Code == "" {
			o.Parts[i].Code = item.Code
		}
		if p.SalePrice == 0 {
			o.Parts[i].SalePrice = item.SalePrice
		}
	}

	// Manual total override is allowed; only a zero total falls back to the
	// derived sum of lines.
	if o.Total == 0 {
		o.Total = o.SumLines()
	}
	return nil
}
