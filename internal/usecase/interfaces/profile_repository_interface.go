package interfaces

import (
	"context"

	"oficina_xyz/internal/domain/entities"
)

// IProfileRepository abstracts the per-tenant profile document.

type IProfileRepository interface {
	GetByOficinaID(ctx context.Context, oficinaID string) (entities.UserProfile, error)
	Put(ctx context.Context, p entities.UserProfile) (entities.UserProfile, error)
}
