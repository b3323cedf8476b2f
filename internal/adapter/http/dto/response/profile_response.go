package response

import (
	"time"

	"oficina_xyz/internal/usecase"
)

type ProfileResponse struct {
	ID         string    `json:"id"`
	OficinaID  string    `json:"oficina_id"`
	Name       string    `json:"name,omitempty"`
	Role       string    `json:"role"`
	ActivePlan string    `json:"active_plan"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromProfileView(v usecase.ProfileView) ProfileResponse {
	return ProfileResponse{
		ID:         v.Profile.ID,
		OficinaID:  v.Profile.OficinaID,
		Name:       v.Profile.Name,
		Role:       string(v.Profile.Role),
		ActivePlan: string(v.ActivePlan),
		CreatedAt:  v.Profile.CreatedAt,
	}
}
