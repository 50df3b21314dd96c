package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"estimatepro/internal/domain/entities"
	"estimatepro/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrLeadNotFound      = errors.New("lead not found")
	ErrInvalidLeadID     = errors.New("invalid lead id")
	ErrInvalidLeadStatus = errors.New("invalid lead status")
	ErrLeadNotesTooLong  = errors.New("notes exceed 5000 characters")
)

const MaxLeadNotesLength = 5000

// ILeadUseCase is the builder's view of their own leads.
// Leads owned by another builder are reported as not found.
type ILeadUseCase interface {
	List(ctx context.Context, builderID string, status entities.LeadStatus) ([]entities.Lead, error)
	Get(ctx context.Context, builderID, leadID string) (entities.Lead, error)
	UpdateStatus(ctx context.Context, builderID, leadID string, status entities.LeadStatus) (entities.Lead, error)
	UpdateNotes(ctx context.Context, builderID, leadID, notes string) (entities.Lead, error)
	Delete(ctx context.Context, builderID, leadID string) error
}

type LeadUseCase struct {
	repo interfaces.ILeadRepository
	now  func() time.Time
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

func NewLeadUseCase(repo interfaces.ILeadRepository) *LeadUseCase {
	return &LeadUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

// List returns the builder's leads newest first, optionally filtered by status.
func (u *LeadUseCase) List(ctx context.Context, builderID string, status entities.LeadStatus) ([]entities.Lead, error) {
	builderID = strings.TrimSpace(builderID)
	if builderID == "" {
		return nil, ErrInvalidBuilderID
	}
	if status != "" && !status.IsValid() {
		return nil, ErrInvalidLeadStatus
	}

	leads, err := u.repo.ListByBuilderID(ctx, builderID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Lead, 0, len(leads))
	for _, l := range leads {
		if status != "" && l.Status != status {
			continue
		}
		out = append(out, l)
	}
	sortLeadsNewestFirst(out)
	return out, nil
}

func (u *LeadUseCase) Get(ctx context.Context, builderID, leadID string) (entities.Lead, error) {
	leadID = strings.TrimSpace(leadID)
	if leadID == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}
	l, err := u.repo.GetByID(ctx, leadID)
	if err != nil {
		return entities.Lead{}, err
	}
	if l.ID == "" || l.BuilderID != builderID {
		return entities.Lead{}, ErrLeadNotFound
	}
	return l, nil
}

func (u *LeadUseCase) UpdateStatus(ctx context.Context, builderID, leadID string, status entities.LeadStatus) (entities.Lead, error) {
	if !status.IsValid() {
		return entities.Lead{}, ErrInvalidLeadStatus
	}
	l, err := u.Get(ctx, builderID, leadID)
	if err != nil {
		return entities.Lead{}, err
	}
	zap.S().Infof("[lead][usecase] status change lead_id=%s from=%q to=%q", l.ID, l.Status, status)
	l.Status = status
	return u.save(ctx, l)
}

func (u *LeadUseCase) UpdateNotes(ctx context.Context, builderID, leadID, notes string) (entities.Lead, error) {
	if utf8.RuneCountInString(notes) > MaxLeadNotesLength {
		return entities.Lead{}, ErrLeadNotesTooLong
	}
	l, err := u.Get(ctx, builderID, leadID)
	if err != nil {
		return entities.Lead{}, err
	}
	l.Notes = notes
	return u.save(ctx, l)
}

func (u *LeadUseCase) Delete(ctx context.Context, builderID, leadID string) error {
	l, err := u.Get(ctx, builderID, leadID)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, l.ID); err != nil {
		return err
	}
	zap.S().Infof("[lead][usecase] lead deleted lead_id=%s builder_id=%s", l.ID, builderID)
	return nil
}

func (u *LeadUseCase) save(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	l.UpdatedAt = u.now()
	updated, err := u.repo.Update(ctx, l)
	if err != nil {
		return entities.Lead{}, err
	}
	if updated.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	return updated, nil
}

func sortLeadsNewestFirst(leads []entities.Lead) {
	sort.SliceStable(leads, func(i, j int) bool {
		return leads[i].CreatedAt.After(leads[j].CreatedAt)
	})
}
