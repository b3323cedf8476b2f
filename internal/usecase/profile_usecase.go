package usecase

import (
	"context"
	"time"

	"oficina_xyz/internal/domain/entities"
	"oficina_xyz/internal/domain/tenant"
	"oficina_xyz/internal/usecase/interfaces"
)

// ProfileView is the profile plus its derived plan. The plan is computed on
// every read from the creation timestamp; it is never stored.
type ProfileView struct {
	Profile    entities.UserProfile `json:"profile"`
	ActivePlan entities.Plan        `json:"active_plan"`
}

type IProfileUseCase interface {
	GetProfile(ctx context.Context, tn tenant.Tenant, now time.Time) (ProfileView, error)
}

type ProfileUseCase struct {
	repo interfaces.IProfileRepository
}

var _ IProfileUseCase = (*ProfileUseCase)(nil)

func NewProfileUseCase(repo interfaces.IProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{repo: repo}
}

// GetProfile loads the tenant profile, bootstrapping it on first access so a
// fresh workshop starts its trial window at first login.
func (u *ProfileUseCase) GetProfile(ctx context.Context, tn tenant.Tenant, now time.Time) (ProfileView, error) {
	if !tn.Valid() {
		return ProfileView{}, ErrInvalidTenant
	}

	p, err := u.repo.GetByOficinaID(ctx, tn.OficinaID)
	if err != nil {
		return ProfileView{}, err
	}
	if p.ID == "" {
		p = entities.UserProfile{
			ID:        newID(),
			OficinaID: tn.OficinaID,
			Role:      entities.RoleOficina,
			CreatedAt: now.UTC(),
			UpdatedAt: now.UTC(),
		}
		if tn.Role == string(entities.RoleAdmin) {
			p.Role = entities.RoleAdmin
		}
		if p, err = u.repo.Put(ctx, p); err != nil {
			return ProfileView{}, err
		}
	}

	return ProfileView{Profile: p, ActivePlan: p.ActivePlan(now)}, nil
}
