package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"estimatepro/internal/domain/entities"
	"estimatepro/internal/domain/pricing"
	"estimatepro/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrSurveyNotFound    = errors.New("survey not found")
	ErrMissingClientName = errors.New("client name is required")
	ErrTooManyPhotos     = errors.New("too many photos")
)

const MaxSurveyPhotos = 5

// SurveyMeta is the public information shown on a builder's survey page.
type SurveyMeta struct {
	BusinessName string
	SurveySlug   string
	PricingMode  entities.PricingMode
	TilingLevels []string
}

type SubmitSurveyInput struct {
	ClientName      string
	ClientPhone     string
	ClientEmail     string
	DesignStyle     string
	HomeAgeCategory string
	Payload         pricing.Payload
	Answers         map[string]any
	Photos          []interfaces.Photo
}

type SubmitSurveyResult struct {
	LeadID       string
	BaseEstimate float64
	HighEstimate float64
}

type ISurveyUseCase interface {
	GetSurvey(ctx context.Context, slug string) (SurveyMeta, error)
	Submit(ctx context.Context, slug string, in SubmitSurveyInput) (SubmitSurveyResult, error)
}

type SurveyUseCase struct {
	builders    interfaces.IBuilderRepository
	leads       interfaces.ILeadRepository
	photos      interfaces.IPhotoStorage
	mailer      interfaces.IMailer
	frontendURL string
	now         func() time.Time
}

var _ ISurveyUseCase = (*SurveyUseCase)(nil)

func NewSurveyUseCase(builders interfaces.IBuilderRepository, leads interfaces.ILeadRepository, photos interfaces.IPhotoStorage, mailer interfaces.IMailer, frontendURL string) *SurveyUseCase {
	return &SurveyUseCase{
		builders:    builders,
		leads:       leads,
		photos:      photos,
		mailer:      mailer,
		frontendURL: strings.TrimRight(frontendURL, "/"),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (u *SurveyUseCase) GetSurvey(ctx context.Context, slug string) (SurveyMeta, error) {
	b, err := u.builderBySlug(ctx, slug)
	if err != nil {
		return SurveyMeta{}, err
	}
	return SurveyMeta{
		BusinessName: b.BusinessName,
		SurveySlug:   b.SurveySlug,
		PricingMode:  b.PricingMode,
		TilingLevels: append([]string(nil), pricing.TilingLevels...),
	}, nil
}

// Submit prices a client survey against the builder's catalog and records it as a new lead.
func (u *SurveyUseCase) Submit(ctx context.Context, slug string, in SubmitSurveyInput) (SubmitSurveyResult, error) {
	clientName := strings.TrimSpace(in.ClientName)
	if clientName == "" {
		return SubmitSurveyResult{}, ErrMissingClientName
	}
	if len(in.Photos) > MaxSurveyPhotos {
		return SubmitSurveyResult{}, ErrTooManyPhotos
	}

	b, err := u.builderBySlug(ctx, slug)
	if err != nil {
		return SubmitSurveyResult{}, err
	}

	result := pricing.Calculate(b.PricingItems, in.Payload)
	leadID := uuid.NewString()

	photoPaths := make([]string, 0, len(in.Photos))
	if len(in.Photos) > 0 {
		if u.photos == nil {
			zap.S().Warnf("[survey][usecase] photo storage not configured; dropping %d photos lead_id=%s", len(in.Photos), leadID)
		} else {
			for _, p := range in.Photos {
				path, err := u.photos.Save(ctx, b.ID, leadID, p)
				if err != nil {
					return SubmitSurveyResult{}, fmt.Errorf("store photo %q: %w", p.Filename, err)
				}
				photoPaths = append(photoPaths, path)
			}
		}
	}

	now := u.now()
	lead := entities.Lead{
		ID:              leadID,
		BuilderID:       b.ID,
		SurveySlug:      b.SurveySlug,
		ClientName:      clientName,
		ClientPhone:     strings.TrimSpace(in.ClientPhone),
		ClientEmail:     strings.TrimSpace(in.ClientEmail),
		BathroomType:    in.Payload.BathroomType,
		TilingLevel:     in.Payload.TilingLevel,
		DesignStyle:     strings.TrimSpace(in.DesignStyle),
		HomeAgeCategory: strings.TrimSpace(in.HomeAgeCategory),
		Measurements:    in.Payload.Measurements,
		CalculatedAreas: result.CalculatedAreas(),
		Estimate:        result.LeadEstimate(),
		Answers:         in.Answers,
		PhotoPaths:      photoPaths,
		Status:          entities.LeadStatusNew,
		SubmittedAt:     now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := u.leads.Create(ctx, lead)
	if err != nil {
		return SubmitSurveyResult{}, err
	}
	zap.S().Infof("[survey][usecase] lead created lead_id=%s builder_id=%s base=%.2f high=%.2f", created.ID, b.ID, result.BaseEstimate, result.HighEstimate)

	u.notifyBuilder(ctx, b, created)

	return SubmitSurveyResult{
		LeadID:       created.ID,
		BaseEstimate: result.BaseEstimate,
		HighEstimate: result.HighEstimate,
	}, nil
}

// notifyBuilder never fails the submission; delivery problems are only logged.
func (u *SurveyUseCase) notifyBuilder(ctx context.Context, b entities.Builder, l entities.Lead) {
	if !b.Notifications.LeadEmails || u.mailer == nil {
		return
	}
	data := interfaces.NewLeadEmail{
		BuilderName:  b.BusinessName,
		ClientName:   l.ClientName,
		DashboardURL: fmt.Sprintf("%s/dashboard/leads/%s", u.frontendURL, l.ID),
	}
	if err := u.mailer.SendNewLead(ctx, b.Email, data); err != nil {
		zap.S().Warnf("[survey][usecase] lead email failed lead_id=%s err=%v", l.ID, err)
	}
}

func (u *SurveyUseCase) builderBySlug(ctx context.Context, slug string) (entities.Builder, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return entities.Builder{}, ErrSurveyNotFound
	}
	b, err := u.builders.GetBySurveySlug(ctx, slug)
	if err != nil {
		return entities.Builder{}, err
	}
	if b.ID == "" {
		return entities.Builder{}, ErrSurveyNotFound
	}
	return b, nil
}
