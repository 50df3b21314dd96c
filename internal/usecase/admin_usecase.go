package usecase

import (
	"context"
	"sort"
	"time"

	"estimatepro/internal/domain/entities"
	"estimatepro/internal/usecase/interfaces"

	"go.uber.org/zap"
)

type AdminSummary struct {
	BuilderCount   int
	ActiveBuilders int
	LeadCount      int
}

// IAdminUseCase is the platform operator's view across all builders.
type IAdminUseCase interface {
	Summary(ctx context.Context) (AdminSummary, error)
	ListBuilders(ctx context.Context) ([]entities.Builder, error)
	GetBuilder(ctx context.Context, builderID string) (entities.Builder, error)
	SetAccessDisabled(ctx context.Context, builderID string, disabled bool) (entities.Builder, error)
	ListAllLeads(ctx context.Context) ([]entities.Lead, error)
}

type AdminUseCase struct {
	builders interfaces.IBuilderRepository
	leads    interfaces.ILeadRepository
	now      func() time.Time
}

var _ IAdminUseCase = (*AdminUseCase)(nil)

func NewAdminUseCase(builders interfaces.IBuilderRepository, leads interfaces.ILeadRepository) *AdminUseCase {
	return &AdminUseCase{builders: builders, leads: leads, now: func() time.Time { return time.Now().UTC() }}
}

// Summary counts builders, builders that are trialing or active, and leads.
func (u *AdminUseCase) Summary(ctx context.Context) (AdminSummary, error) {
	builders, err := u.builders.List(ctx)
	if err != nil {
		return AdminSummary{}, err
	}
	leadCount, err := u.leads.Count(ctx)
	if err != nil {
		return AdminSummary{}, err
	}

	s := AdminSummary{BuilderCount: len(builders), LeadCount: leadCount}
	for _, b := range builders {
		switch b.SubscriptionStatus {
		case entities.SubscriptionStatusTrialing, entities.SubscriptionStatusActive:
			s.ActiveBuilders++
		}
	}
	return s, nil
}

func (u *AdminUseCase) ListBuilders(ctx context.Context) ([]entities.Builder, error) {
	builders, err := u.builders.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(builders, func(i, j int) bool {
		return builders[i].CreatedAt.After(builders[j].CreatedAt)
	})
	return builders, nil
}

func (u *AdminUseCase) GetBuilder(ctx context.Context, builderID string) (entities.Builder, error) {
	if builderID == "" {
		return entities.Builder{}, ErrInvalidBuilderID
	}
	b, err := u.builders.GetByID(ctx, builderID)
	if err != nil {
		return entities.Builder{}, err
	}
	if b.ID == "" {
		return entities.Builder{}, ErrBuilderNotFound
	}
	return b, nil
}

func (u *AdminUseCase) SetAccessDisabled(ctx context.Context, builderID string, disabled bool) (entities.Builder, error) {
	b, err := u.GetBuilder(ctx, builderID)
	if err != nil {
		return entities.Builder{}, err
	}
	b.IsAccessDisabled = disabled
	b.UpdatedAt = u.now()
	updated, err := u.builders.Update(ctx, b)
	if err != nil {
		return entities.Builder{}, err
	}
	if updated.ID == "" {
		return entities.Builder{}, ErrBuilderNotFound
	}
	zap.S().Infof("[admin][usecase] access toggled builder_id=%s disabled=%t", updated.ID, disabled)
	return updated, nil
}

func (u *AdminUseCase) ListAllLeads(ctx context.Context) ([]entities.Lead, error) {
	leads, err := u.leads.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sortLeadsNewestFirst(leads)
	return leads, nil
}
