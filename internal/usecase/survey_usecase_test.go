package usecase

import (
	"context"
	"errors"
	"testing"

	"estimatepro/internal/domain/entities"
	"estimatepro/internal/domain/pricing"
	"estimatepro/internal/usecase/interfaces"
	mock_interfaces "estimatepro/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type surveyMocks struct {
	builders *mock_interfaces.MockIBuilderRepository
	leads    *mock_interfaces.MockILeadRepository
	photos   *mock_interfaces.MockIPhotoStorage
	mailer   *mock_interfaces.MockIMailer
}

func newSurveyUseCase(ctrl *gomock.Controller) (*SurveyUseCase, surveyMocks) {
	m := surveyMocks{
		builders: mock_interfaces.NewMockIBuilderRepository(ctrl),
		leads:    mock_interfaces.NewMockILeadRepository(ctrl),
		photos:   mock_interfaces.NewMockIPhotoStorage(ctrl),
		mailer:   mock_interfaces.NewMockIMailer(ctrl),
	}
	return NewSurveyUseCase(m.builders, m.leads, m.photos, m.mailer, "https://app.example.com/"), m
}

var surveyBuilder = entities.Builder{
	ID:           "b-1",
	BusinessName: "Acme",
	Email:        "owner@acme.test",
	SurveySlug:   "acme-1234",
	PricingMode:  entities.PricingModeFinal,
	PricingItems: []entities.PricingItem{
		{ItemName: "Demolition", Applicability: "all", PriceType: entities.PriceTypeFixed, FinalPrice: 1500, IsActive: true},
		{ItemName: "Waterproofing", Applicability: "all", PriceType: entities.PriceTypeSqm, FinalPrice: 100, IsActive: true},
	},
	Notifications: entities.NotificationSettings{LeadEmails: true},
}

func TestSurveyUseCase_GetSurvey(t *testing.T) {
	t.Run("unknown slug", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSurveyUseCase(ctrl)
		m.builders.EXPECT().GetBySurveySlug(gomock.Any(), "nope").Return(entities.Builder{}, nil)

		if _, err := uc.GetSurvey(context.Background(), "nope"); !errors.Is(err, ErrSurveyNotFound) {
			t.Fatalf("expected ErrSurveyNotFound, got %v", err)
		}
	})

	t.Run("meta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSurveyUseCase(ctrl)
		m.builders.EXPECT().GetBySurveySlug(gomock.Any(), "acme-1234").Return(surveyBuilder, nil)

		meta, err := uc.GetSurvey(context.Background(), "acme-1234")
		if err != nil || meta.BusinessName != "Acme" || meta.PricingMode != entities.PricingModeFinal || len(meta.TilingLevels) != 3 {
			t.Fatalf("unexpected result err=%v meta=%+v", err, meta)
		}
	})
}

func TestSurveyUseCase_Submit(t *testing.T) {
	payload := pricing.Payload{
		Measurements: entities.Measurements{TotalArea: 4},
		TilingLevel:  "Standard",
	}

	t.Run("client name required", func(t *testing.T) {
		uc := NewSurveyUseCase(nil, nil, nil, nil, "")
		if _, err := uc.Submit(context.Background(), "acme-1234", SubmitSurveyInput{ClientName: " "}); !errors.Is(err, ErrMissingClientName) {
			t.Fatalf("expected ErrMissingClientName, got %v", err)
		}
	})

	t.Run("too many photos", func(t *testing.T) {
		uc := NewSurveyUseCase(nil, nil, nil, nil, "")
		in := SubmitSurveyInput{ClientName: "Sam", Photos: make([]interfaces.Photo, MaxSurveyPhotos+1)}
		if _, err := uc.Submit(context.Background(), "acme-1234", in); !errors.Is(err, ErrTooManyPhotos) {
			t.Fatalf("expected ErrTooManyPhotos, got %v", err)
		}
	})

	t.Run("creates lead, stores photos and emails builder", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSurveyUseCase(ctrl)

		m.builders.EXPECT().GetBySurveySlug(gomock.Any(), "acme-1234").Return(surveyBuilder, nil)
		m.photos.EXPECT().Save(gomock.Any(), "b-1", gomock.Any(), gomock.Any()).Return("leads/b-1/x/0.jpg", nil)
		var created entities.Lead
		m.leads.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, l entities.Lead) (entities.Lead, error) {
			created = l
			return l, nil
		})
		m.mailer.EXPECT().SendNewLead(gomock.Any(), "owner@acme.test", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, data interfaces.NewLeadEmail) error {
			if data.ClientName != "Sam" || data.DashboardURL != "https://app.example.com/dashboard/leads/"+created.ID {
				t.Fatalf("unexpected email data: %+v", data)
			}
			return nil
		})

		res, err := uc.Submit(context.Background(), "acme-1234", SubmitSurveyInput{
			ClientName: " Sam ",
			Payload:    payload,
			Answers:    map[string]any{"designStyle": "Modern"},
			Photos:     []interfaces.Photo{{Filename: "a.jpg", ContentType: "image/jpeg", Data: []byte{1}}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 4 m2 * 100 + 1500
		if res.BaseEstimate != 1900 || res.HighEstimate != 2470 || res.LeadID != created.ID {
			t.Fatalf("unexpected result: %+v", res)
		}
		if created.Status != entities.LeadStatusNew || created.ClientName != "Sam" || len(created.PhotoPaths) != 1 {
			t.Fatalf("unexpected lead: %+v", created)
		}
		if created.CalculatedAreas.FloorArea != 4 || created.CalculatedAreas.StandardArea == 0 || len(created.Estimate.LineItems) != 2 {
			t.Fatalf("unexpected lead estimate: %+v", created)
		}
	})

	t.Run("email failure does not fail submission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSurveyUseCase(ctrl)

		m.builders.EXPECT().GetBySurveySlug(gomock.Any(), "acme-1234").Return(surveyBuilder, nil)
		m.leads.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, l entities.Lead) (entities.Lead, error) {
			return l, nil
		})
		m.mailer.EXPECT().SendNewLead(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		if _, err := uc.Submit(context.Background(), "acme-1234", SubmitSurveyInput{ClientName: "Sam", Payload: payload}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("lead emails off", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSurveyUseCase(ctrl)
		b := surveyBuilder
		b.Notifications.LeadEmails = false

		m.builders.EXPECT().GetBySurveySlug(gomock.Any(), "acme-1234").Return(b, nil)
		m.leads.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, l entities.Lead) (entities.Lead, error) {
			return l, nil
		})

		if _, err := uc.Submit(context.Background(), "acme-1234", SubmitSurveyInput{ClientName: "Sam", Payload: payload}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("photo storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSurveyUseCase(ctrl)

		m.builders.EXPECT().GetBySurveySlug(gomock.Any(), "acme-1234").Return(surveyBuilder, nil)
		m.photos.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("s3"))

		in := SubmitSurveyInput{ClientName: "Sam", Payload: payload, Photos: []interfaces.Photo{{Filename: "a.jpg"}}}
		if _, err := uc.Submit(context.Background(), "acme-1234", in); err == nil {
			t.Fatalf("expected error")
		}
	})
}
