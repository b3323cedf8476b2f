package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"oficina_xyz/internal/domain/entities"
	"oficina_xyz/internal/domain/tenant"
	"oficina_xyz/internal/usecase/interfaces"
)

var (
	ErrMechanicNotFound  = errors.New("mechanic not found")
	ErrInvalidMechanicID = errors.New("invalid mechanic id")
	ErrInvalidMechanic   = errors.New("invalid mechanic payload")
)

// IMechanicUseCase exposes roster operations. Mechanics are plain reference
// entities; deleting one never cascades into orders.

type IMechanicUseCase interface {
	Create(ctx context.Context, tn tenant.Tenant, m entities.Mechanic) (entities.Mechanic, error)
	Get(ctx context.Context, tn tenant.Tenant, id string) (entities.Mechanic, error)
	List(ctx context.Context, tn tenant.Tenant) ([]entities.Mechanic, error)
	Update(ctx context.Context, tn tenant.Tenant, m entities.Mechanic) (entities.Mechanic, error)
	Delete(ctx context.Context, tn tenant.Tenant, id string) error
}

type MechanicUseCase struct {
	repo interfaces.IMechanicRepository
}

var _ IMechanicUseCase = (*MechanicUseCase)(nil)

func NewMechanicUseCase(repo interfaces.IMechanicRepository) *MechanicUseCase {
	return &MechanicUseCase{repo: repo}
}

func (u *MechanicUseCase) Create(ctx context.Context, tn tenant.Tenant, m entities.Mechanic) (entities.Mechanic, error) {
	if !tn.Valid() {
		return entities.Mechanic{}, ErrInvalidTenant
	}
	m.Name = strings.TrimSpace(m.Name)
	if m.Name == "" {
		return entities.Mechanic{}, ErrInvalidMechanic
	}

	now := time.Now().UTC()
	m.ID = newID()
	m.OficinaID = tn.OficinaID
	m.CreatedAt = now
	m.UpdatedAt = now
	return u.repo.Create(ctx, m)
}

func (u *MechanicUseCase) Get(ctx context.Context, tn tenant.Tenant, id string) (entities.Mechanic, error) {
	if !tn.Valid() {
		return entities.Mechanic{}, ErrInvalidTenant
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Mechanic{}, ErrInvalidMechanicID
	}

	m, err := u.repo.GetByID(ctx, tn.OficinaID, id)
	if err != nil {
		return entities.Mechanic{}, err
	}
	if m.ID == "" {
		return entities.Mechanic{}, ErrMechanicNotFound
	}
	return m, nil
}

func (u *MechanicUseCase) List(ctx context.Context, tn tenant.Tenant) ([]entities.Mechanic, error) {
	if !tn.Valid() {
		return nil, ErrInvalidTenant
	}
	return u.repo.ListByOficina(ctx, tn.OficinaID)
}

func (u *MechanicUseCase) Update(ctx context.Context, tn tenant.Tenant, m entities.Mechanic) (entities.Mechanic, error) {
	if !tn.Valid() {
		return entities.Mechanic{}, ErrInvalidTenant
	}
	m.ID = strings.TrimSpace(m.ID)
	if m.ID == "" {
		return entities.Mechanic{}, ErrInvalidMechanicID
	}
	m.Name = strings.TrimSpace(m.Name)
	if m.Name == "" {
		return entities.Mechanic{}, ErrInvalidMechanic
	}

	current, err := u.repo.GetByID(ctx, tn.OficinaID, m.ID)
	if err != nil {
		return entities.Mechanic{}, err
	}
	if current.ID == "" {
		return entities.Mechanic{}, ErrMechanicNotFound
	}

	m.OficinaID = tn.OficinaID
	m.CreatedAt = current.CreatedAt
	m.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, m)
}

func (u *MechanicUseCase) Delete(ctx context.Context, tn tenant.Tenant, id string) error {
	if !tn.Valid() {
		return ErrInvalidTenant
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidMechanicID
	}
	return u.repo.Delete(ctx, tn.OficinaID, id)
}
