package response

import (
	"time"

	"oficina_xyz/internal/domain/entities"
)

type MechanicResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Specialty string    `json:"specialty,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromMechanic(m entities.Mechanic) MechanicResponse {
	return MechanicResponse{
		ID:        m.ID,
		Name:      m.Name,
		Specialty: m.Specialty,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func FromMechanics(mechanics []entities.Mechanic) []MechanicResponse {
	out := make([]MechanicResponse, 0, len(mechanics))
	for _, m := range mechanics {
		out = append(out, FromMechanic(m))
	}
	return out
}
