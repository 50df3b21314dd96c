package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"estimatepro/internal/domain/entities"
	"estimatepro/internal/domain/pricing"
	"estimatepro/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrBuilderNotFound       = errors.New("builder not found")
	ErrInvalidBuilderID      = errors.New("invalid builder id")
	ErrInvalidPricingMode    = errors.New("invalid pricing mode")
	ErrSpreadsheetNotEnabled = errors.New("pricing spreadsheet not configured")
	ErrInvalidSpreadsheet    = errors.New("invalid pricing spreadsheet")
)

// ProfileUpdate holds the editable profile fields. Nil fields are left unchanged.
type ProfileUpdate struct {
	BusinessName *string
	ContactName  *string
	Phone        *string
	ABN          *string
	LeadEmails   *bool
}

type PricingCatalog struct {
	Mode  entities.PricingMode
	Items []entities.PricingItem
}

type IBuilderUseCase interface {
	GetProfile(ctx context.Context, builderID string) (entities.Builder, error)
	UpdateProfile(ctx context.Context, builderID string, in ProfileUpdate) (entities.Builder, error)
	RegenerateSurveySlug(ctx context.Context, builderID string) (entities.Builder, error)
	GetPricing(ctx context.Context, builderID string) (PricingCatalog, error)
	UpdatePricing(ctx context.Context, builderID string, catalog PricingCatalog) (PricingCatalog, error)
	ExportPricing(ctx context.Context, builderID string) ([]byte, error)
	ImportPricing(ctx context.Context, builderID string, r io.Reader) (PricingCatalog, error)
	PreviewEstimate(ctx context.Context, builderID string, payload pricing.Payload) (pricing.Result, error)
}

type BuilderUseCase struct {
	repo        interfaces.IBuilderRepository
	spreadsheet interfaces.IPricingSpreadsheet
	now         func() time.Time
}

var _ IBuilderUseCase = (*BuilderUseCase)(nil)

func NewBuilderUseCase(repo interfaces.IBuilderRepository, spreadsheet interfaces.IPricingSpreadsheet) *BuilderUseCase {
	return &BuilderUseCase{
		repo:        repo,
		spreadsheet: spreadsheet,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (u *BuilderUseCase) GetProfile(ctx context.Context, builderID string) (entities.Builder, error) {
	return u.load(ctx, builderID)
}

func (u *BuilderUseCase) UpdateProfile(ctx context.Context, builderID string, in ProfileUpdate) (entities.Builder, error) {
	b, err := u.load(ctx, builderID)
	if err != nil {
		return entities.Builder{}, err
	}

	if in.BusinessName != nil {
		name := strings.TrimSpace(*in.BusinessName)
		if name == "" {
			return entities.Builder{}, ErrMissingBusinessName
		}
		b.BusinessName = name
	}
	if in.ContactName != nil {
		b.ContactName = strings.TrimSpace(*in.ContactName)
	}
	if in.Phone != nil {
		b.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.ABN != nil {
		b.ABN = strings.TrimSpace(*in.ABN)
	}
	if in.LeadEmails != nil {
		b.Notifications.LeadEmails = *in.LeadEmails
	}

	return u.save(ctx, b)
}

// RegenerateSurveySlug replaces the public survey link; the old slug stops resolving.
func (u *BuilderUseCase) RegenerateSurveySlug(ctx context.Context, builderID string) (entities.Builder, error) {
	b, err := u.load(ctx, builderID)
	if err != nil {
		return entities.Builder{}, err
	}
	previous := b.SurveySlug
	b.UpdatedAt = u.now()

	var updated entities.Builder
	err = claimSurveySlug(ctx, u.repo, b.BusinessName, func(slug string) error {
		b.SurveySlug = slug
		var err error
		updated, err = u.repo.UpdateSurveySlug(ctx, b, previous)
		return err
	})
	if err != nil {
		return entities.Builder{}, err
	}
	if updated.ID == "" {
		return entities.Builder{}, ErrBuilderNotFound
	}
	zap.S().Infof("[builder][usecase] survey slug regenerated builder_id=%s old=%s new=%s", b.ID, previous, updated.SurveySlug)
	return updated, nil
}

func (u *BuilderUseCase) GetPricing(ctx context.Context, builderID string) (PricingCatalog, error) {
	b, err := u.load(ctx, builderID)
	if err != nil {
		return PricingCatalog{}, err
	}
	return catalogOf(b), nil
}

// UpdatePricing replaces the whole catalog. An empty mode keeps the current one.
func (u *BuilderUseCase) UpdatePricing(ctx context.Context, builderID string, catalog PricingCatalog) (PricingCatalog, error) {
	if catalog.Mode != "" && catalog.Mode != entities.PricingModeFinal && catalog.Mode != entities.PricingModeBase {
		return PricingCatalog{}, ErrInvalidPricingMode
	}
	if err := pricing.Validate(catalog.Items); err != nil {
		return PricingCatalog{}, err
	}

	b, err := u.load(ctx, builderID)
	if err != nil {
		return PricingCatalog{}, err
	}
	if catalog.Mode != "" {
		b.PricingMode = catalog.Mode
	}
	b.PricingItems = pricing.Annotate(catalog.Items)

	saved, err := u.save(ctx, b)
	if err != nil {
		return PricingCatalog{}, err
	}
	zap.S().Infof("[builder][usecase] pricing saved builder_id=%s items=%d mode=%s", saved.ID, len(saved.PricingItems), saved.PricingMode)
	return catalogOf(saved), nil
}

func (u *BuilderUseCase) ExportPricing(ctx context.Context, builderID string) ([]byte, error) {
	if u.spreadsheet == nil {
		return nil, ErrSpreadsheetNotEnabled
	}
	b, err := u.load(ctx, builderID)
	if err != nil {
		return nil, err
	}
	return u.spreadsheet.Export(b.PricingItems)
}

// ImportPricing replaces the catalog with the rows of an uploaded workbook.
func (u *BuilderUseCase) ImportPricing(ctx context.Context, builderID string, r io.Reader) (PricingCatalog, error) {
	if u.spreadsheet == nil {
		return PricingCatalog{}, ErrSpreadsheetNotEnabled
	}
	items, err := u.spreadsheet.Import(r)
	if err != nil {
		return PricingCatalog{}, fmt.Errorf("%w: %v", ErrInvalidSpreadsheet, err)
	}
	return u.UpdatePricing(ctx, builderID, PricingCatalog{Items: items})
}

// PreviewEstimate runs the engine against the saved catalog without creating a lead.
func (u *BuilderUseCase) PreviewEstimate(ctx context.Context, builderID string, payload pricing.Payload) (pricing.Result, error) {
	b, err := u.load(ctx, builderID)
	if err != nil {
		return pricing.Result{}, err
	}
	return pricing.Calculate(b.PricingItems, payload), nil
}

func (u *BuilderUseCase) load(ctx context.Context, builderID string) (entities.Builder, error) {
	builderID = strings.TrimSpace(builderID)
	if builderID == "" {
		return entities.Builder{}, ErrInvalidBuilderID
	}
	b, err := u.repo.GetByID(ctx, builderID)
	if err != nil {
		return entities.Builder{}, err
	}
	if b.ID == "" {
		return entities.Builder{}, ErrBuilderNotFound
	}
	return b, nil
}

func (u *BuilderUseCase) save(ctx context.Context, b entities.Builder) (entities.Builder, error) {
	b.UpdatedAt = u.now()
	updated, err := u.repo.Update(ctx, b)
	if err != nil {
		return entities.Builder{}, err
	}
	if updated.ID == "" {
		return entities.Builder{}, ErrBuilderNotFound
	}
	return updated, nil
}

func catalogOf(b entities.Builder) PricingCatalog {
	items := b.PricingItems
	if items == nil {
		items = []entities.PricingItem{}
	}
	return PricingCatalog{Mode: b.PricingMode, Items: items}
}
