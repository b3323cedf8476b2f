package entities

import "time"

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleOficina Role = "OFICINA"
)

type Plan string

const (
	PlanTrial    Plan = "TRIAL"
	PlanGratuito Plan = "GRATUITO"
)

// TrialWindow is the period after signup granting elevated plan features.
const TrialWindow = 30 * 24 * time.Hour

// UserProfile is the tenant profile document, keyed by oficina_id alone
// (one document per workshop).
//
// There is no persisted subscription state; ActivePlan derives the plan from
// the creation timestamp every time it is asked.

type UserProfile struct {
	ID        string    `json:"id"`
	OficinaID string    `json:"oficina_id"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ActivePlan derives the plan purely from the signup date: TRIAL within the
// trial window, GRATUITO after.
func (p UserProfile) ActivePlan(now time.Time) Plan {
	if p.CreatedAt.IsZero() {
		return PlanGratuito
	}
	if now.Before(p.CreatedAt.Add(TrialWindow)) {
		return PlanTrial
	}
	return PlanGratuito
}
