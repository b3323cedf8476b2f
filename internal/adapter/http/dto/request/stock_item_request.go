package request

import (
	"strings"

	"oficina_xyz/internal/domain/entities"
)

type StockItemRequest struct {
	Code        string  `json:"code" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category"`
	Quantity    int     `json:"quantity"`
	MinQuantity int     `json:"min_quantity"`
	CostPrice   float64 `json:"cost_price"`
	SalePrice   float64 `json:"sale_price"`
}

func (r StockItemRequest) ToEntity() entities.StockItem {
	return entities.StockItem{
		Code:        strings.TrimSpace(r.Code),
		Name:        strings.TrimSpace(r.Name),
		Category:    strings.TrimSpace(r.Category),
		Quantity:    r.Quantity,
		MinQuantity: r.MinQuantity,
		CostPrice:   r.CostPrice,
		SalePrice:   r.SalePrice,
	}
}

// StockMovementRequest is a manual quantity adjustment. Direction must be
// ENTRADA or SAIDA.
type StockMovementRequest struct {
	Direction string `json:"direction" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
	Reason    string `json:"reason"`
}

func (r StockMovementRequest) ResolveDirection() entities.MovementDirection {
	return entities.MovementDirection(strings.ToUpper(strings.TrimSpace(r.Direction)))
}
