package response

import (
	"time"

	"oficina_xyz/internal/domain/entities"
)

type StockItemResponse struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Category    string    `json:"category,omitempty"`
	Quantity    int       `json:"quantity"`
	MinQuantity int       `json:"min_quantity"`
	CostPrice   float64   `json:"cost_price"`
	SalePrice   float64   `json:"sale_price"`
	LowStock    bool      `json:"low_stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromStockItem(s entities.StockItem) StockItemResponse {
	return StockItemResponse{
		ID:          s.ID,
		Code:        s.Code,
		Name:        s.Name,
		Category:    s.Category,
		Quantity:    s.Quantity,
		MinQuantity: s.MinQuantity,
		CostPrice:   s.CostPrice,
		SalePrice:   s.SalePrice,
		LowStock:    s.LowStock(),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func FromStockItems(items []entities.StockItem) []StockItemResponse {
	out := make([]StockItemResponse, 0, len(items))
	for _, s := range items {
		out = append(out, FromStockItem(s))
	}
	return out
}
