package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"oficina_xyz/internal/domain/entities"
	"oficina_xyz/internal/domain/tenant"
	"oficina_xyz/internal/usecase/interfaces"
	"oficina_xyz/pkg/logger"
)

var (
	ErrStockItemNotFound   = errors.New("stock item not found")
	ErrInvalidStockItemID  = errors.New("invalid stock item id")
	ErrInvalidStockItem    = errors.New("invalid stock item payload")
	ErrInvalidMoveQuantity = errors.New("invalid movement quantity")
	ErrInvalidMoveKind     = errors.New("invalid movement direction")
	ErrInsufficientStock   = errors.New("insufficient stock")
)

// IStockUseCase exposes inventory operations.
//
// Manual movements (MoveStock) and the order-completion decrement share one
// serialization point: the repository's conditional quantity updates.

type IStockUseCase interface {
	CreateItem(ctx context.Context, tn tenant.Tenant, item entities.StockItem) (entities.StockItem, error)
	GetItem(ctx context.Context, tn tenant.Tenant, id string) (entities.StockItem, error)
	ListItems(ctx context.Context, tn tenant.Tenant) ([]entities.StockItem, error)
	ListLowStock(ctx context.Context, tn tenant.Tenant) ([]entities.StockItem, error)
	UpdateItem(ctx context.Context, tn tenant.Tenant, item entities.StockItem) (entities.StockItem, error)
	DeleteItem(ctx context.Context, tn tenant.Tenant, id string) error
	MoveStock(ctx context.Context, tn tenant.Tenant, itemID string, direction entities.MovementDirection, quantity int, reason string) (entities.StockItem, error)
}

type StockUseCase struct {
	repo interfaces.IStockItemRepository
}

var _ IStockUseCase = (*StockUseCase)(nil)

func NewStockUseCase(repo interfaces.IStockItemRepository) *StockUseCase {
	return &StockUseCase{repo: repo}
}

func (u *StockUseCase) CreateItem(ctx context.Context, tn tenant.Tenant, item entities.StockItem) (entities.StockItem, error) {
	if !tn.Valid() {
		return entities.StockItem{}, ErrInvalidTenant
	}
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" || item.Quantity < 0 || item.MinQuantity < 0 || item.CostPrice < 0 || item.SalePrice < 0 {
		return entities.StockItem{}, ErrInvalidStockItem
	}

	now := time.Now().UTC()
	item.ID = newID()
	item.OficinaID = tn.OficinaID
	item.CreatedAt = now
	item.UpdatedAt = now
	return u.repo.Create(ctx, item)
}

func (u *StockUseCase) GetItem(ctx context.Context, tn tenant.Tenant, id string) (entities.StockItem, error) {
	if !tn.Valid() {
		return entities.StockItem{}, ErrInvalidTenant
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.StockItem{}, ErrInvalidStockItemID
	}

	item, err := u.repo.GetByID(ctx, tn.OficinaID, id)
	if err != nil {
		return entities.StockItem{}, err
	}
	if item.ID == "" {
		return entities.StockItem{}, ErrStockItemNotFound
	}
	return item, nil
}

func (u *StockUseCase) ListItems(ctx context.Context, tn tenant.Tenant) ([]entities.StockItem, error) {
	if !tn.Valid() {
		return nil, ErrInvalidTenant
	}
	return u.repo.ListByOficina(ctx, tn.OficinaID)
}

func (u *StockUseCase) ListLowStock(ctx context.Context, tn tenant.Tenant) ([]entities.StockItem, error) {
	items, err := u.ListItems(ctx, tn)
	if err != nil {
		return nil, err
	}
	low := make([]entities.StockItem, 0, len(items))
	for _, it := range items {
		if it.LowStock() {
			low = append(low, it)
		}
	}
	return low, nil
}

func (u *StockUseCase) UpdateItem(ctx context.Context, tn tenant.Tenant, item entities.StockItem) (entities.StockItem, error) {
	if !tn.Valid() {
		return entities.StockItem{}, ErrInvalidTenant
	}
	item.ID = strings.TrimSpace(item.ID)
	if item.ID == "" {
		return entities.StockItem{}, ErrInvalidStockItemID
	}
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" || item.Quantity < 0 || item.MinQuantity < 0 || item.CostPrice < 0 || item.SalePrice < 0 {
		return entities.StockItem{}, ErrInvalidStockItem
	}

	current, err := u.repo.GetByID(ctx, tn.OficinaID, item.ID)
	if err != nil {
		return entities.StockItem{}, err
	}
	if current.ID == "" {
		return entities.StockItem{}, ErrStockItemNotFound
	}

	item.OficinaID = tn.OficinaID
	item.CreatedAt = current.CreatedAt
	item.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, item)
}

func (u *StockUseCase) DeleteItem(ctx context.Context, tn tenant.Tenant, id string) error {
	if !tn.Valid() {
		return ErrInvalidTenant
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidStockItemID
	}
	return u.repo.Delete(ctx, tn.OficinaID, id)
}

// MoveStock applies a manual IN/OUT adjustment.
//
// OUT is guarded at the storage layer (quantity >= requested); a rejected
// guard leaves the item unchanged and surfaces ErrInsufficientStock. Manual
// movements never write to the ledger.
func (u *StockUseCase) MoveStock(ctx context.Context, tn tenant.Tenant, itemID string, direction entities.MovementDirection, quantity int, reason string) (entities.StockItem, error) {
	if !tn.Valid() {
		return entities.StockItem{}, ErrInvalidTenant
	}
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.StockItem{}, ErrInvalidStockItemID
	}
	if quantity <= 0 {
		return entities.StockItem{}, ErrInvalidMoveQuantity
	}

	delta := 0
	switch direction {
	case entities.MovementEntrada:
		delta = quantity
	case entities.MovementSaida:
		delta = -quantity
	default:
		return entities.StockItem{}, ErrInvalidMoveKind
	}

	current, err := u.repo.GetByID(ctx, tn.OficinaID, itemID)
	if err != nil {
		return entities.StockItem{}, err
	}
	if current.ID == "" {
		return entities.StockItem{}, ErrStockItemNotFound
	}
	if direction == entities.MovementSaida && current.Quantity < quantity {
		return entities.StockItem{}, ErrInsufficientStock
	}

	updated, err := u.repo.AdjustQuantity(ctx, tn.OficinaID, itemID, delta)
	if err != nil {
		// A concurrent OUT may consume the remaining quantity between the
		// read above and the conditional write.
		if errors.Is(err, interfaces.ErrConditionalCheckFailed) {
			return entities.StockItem{}, ErrInsufficientStock
		}
		return entities.StockItem{}, err
	}

	logger.Info().
		Str("oficina_id", tn.OficinaID).
		Str("item_id", itemID).
		Str("direction", string(direction)).
		Int("quantity", quantity).
		Str("reason", reason).
		Msg("stock movement applied")
	return updated, nil
}
