package interfaces

import (
	"context"
	"errors"

	"estimatepro/internal/domain/entities"
)

// Uniqueness conflicts reported by IBuilderRepository writes.
var (
	ErrEmailTaken      = errors.New("email already taken")
	ErrSurveySlugTaken = errors.New("survey slug already taken")
)

// IBuilderRepository abstracts DynamoDB persistence for Builder.
//
// Lookups return a zero-value Builder (empty ID) when nothing matches.
// Create and UpdateSurveySlug enforce unique emails and survey slugs.

type IBuilderRepository interface {
	Create(ctx context.Context, b entities.Builder) (entities.Builder, error)
	GetByID(ctx context.Context, id string) (entities.Builder, error)
	GetByEmail(ctx context.Context, email string) (entities.Builder, error)
	GetBySurveySlug(ctx context.Context, slug string) (entities.Builder, error)
	Update(ctx context.Context, b entities.Builder) (entities.Builder, error)
	UpdateSurveySlug(ctx context.Context, b entities.Builder, previousSlug string) (entities.Builder, error)
	List(ctx context.Context) ([]entities.Builder, error)
	ListBySubscriptionStatus(ctx context.Context, status entities.SubscriptionStatus) ([]entities.Builder, error)
}
