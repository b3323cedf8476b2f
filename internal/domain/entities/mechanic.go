package entities

import "time"

// Mechanic is a roster entry. Orders reference it weakly by id; deleting a
// mechanic does not touch existing orders.

type Mechanic struct {
	ID        string    `json:"id"`
	OficinaID string    `json:"oficina_id"`
	Name      string    `json:"name"`
	Specialty string    `json:"specialty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
