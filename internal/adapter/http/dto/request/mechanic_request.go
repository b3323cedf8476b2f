package request

import (
	"strings"

	"oficina_xyz/internal/domain/entities"
)

type MechanicRequest struct {
	Name      string `json:"name" binding:"required"`
	Specialty string `json:"specialty"`
}

func (r MechanicRequest) ToEntity() entities.Mechanic {
	return entities.Mechanic{
		Name:      strings.TrimSpace(r.Name),
		Specialty: strings.TrimSpace(r.Specialty),
	}
}
