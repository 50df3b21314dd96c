package interfaces

import (
	"context"
	"estimatepro/internal/domain/entities"
)

// ILeadRepository abstracts DynamoDB persistence for Lead.

type ILeadRepository interface {
	Create(ctx context.Context, l entities.Lead) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	ListByBuilderID(ctx context.Context, builderID string) ([]entities.Lead, error)
	ListAll(ctx context.Context) ([]entities.Lead, error)
	Update(ctx context.Context, l entities.Lead) (entities.Lead, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
