package request

import (
	"strings"
	"time"

	"oficina_xyz/internal/domain/entities"
)

type TransactionRequest struct {
	Description string    `json:"description" binding:"required"`
	Category    string    `json:"category"`
	Type        string    `json:"type" binding:"required"`
	Value       float64   `json:"value" binding:"required"`
	Date        time.Time `json:"date"`
}

func (r TransactionRequest) ToEntity() entities.FinancialTransaction {
	return entities.FinancialTransaction{
		Description: strings.TrimSpace(r.Description),
		Category:    strings.TrimSpace(r.Category),
		Type:        entities.TransactionType(strings.ToUpper(strings.TrimSpace(r.Type))),
		Value:       r.Value,
		Date:        r.Date,
	}
}
