package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"estimatepro/internal/domain/entities"
	"estimatepro/internal/usecase/interfaces"
	mock_interfaces "estimatepro/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestTrialUseCase_SendTrialReminders(t *testing.T) {
	now := time.Date(2026, 4, 10, 7, 0, 0, 0, time.UTC)
	trialing := []entities.Builder{
		{ID: "ended-yesterday", Email: "a@x.test", TrialEndsAt: now.Add(-24 * time.Hour)},
		{ID: "ends-this-morning", Email: "b@x.test", TrialEndsAt: time.Date(2026, 4, 10, 1, 0, 0, 0, time.UTC)},
		{ID: "ends-in-7-days-late", Email: "c@x.test", TrialEndsAt: time.Date(2026, 4, 17, 23, 59, 0, 0, time.UTC)},
		{ID: "ends-in-8-days", Email: "d@x.test", TrialEndsAt: time.Date(2026, 4, 18, 0, 0, 0, 0, time.UTC)},
		{ID: "no-trial-date", Email: "e@x.test"},
	}

	t.Run("window is start of today to end of day plus seven", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		builders := mock_interfaces.NewMockIBuilderRepository(ctrl)
		mailer := mock_interfaces.NewMockIMailer(ctrl)
		uc := NewTrialUseCase(builders, mailer, "https://app.example.com")

		builders.EXPECT().ListBySubscriptionStatus(gomock.Any(), entities.SubscriptionStatusTrialing).Return(trialing, nil)
		mailer.EXPECT().SendTrialReminder(gomock.Any(), "b@x.test", gomock.Any()).Return(nil)
		mailer.EXPECT().SendTrialReminder(gomock.Any(), "c@x.test", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, data interfaces.TrialReminderEmail) error {
			if data.FrontendURL != "https://app.example.com" || !data.TrialEndsAt.Equal(trialing[2].TrialEndsAt) {
				t.Fatalf("unexpected email data: %+v", data)
			}
			return nil
		})

		sent, err := uc.SendTrialReminders(context.Background(), now)
		if err != nil || sent != 2 {
			t.Fatalf("expected 2 reminders, got %d err=%v", sent, err)
		}
	})

	t.Run("delivery failure does not stop the run", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		builders := mock_interfaces.NewMockIBuilderRepository(ctrl)
		mailer := mock_interfaces.NewMockIMailer(ctrl)
		uc := NewTrialUseCase(builders, mailer, "")

		builders.EXPECT().ListBySubscriptionStatus(gomock.Any(), gomock.Any()).Return(trialing, nil)
		mailer.EXPECT().SendTrialReminder(gomock.Any(), "b@x.test", gomock.Any()).Return(errors.New("smtp"))
		mailer.EXPECT().SendTrialReminder(gomock.Any(), "c@x.test", gomock.Any()).Return(nil)

		sent, err := uc.SendTrialReminders(context.Background(), now)
		if err == nil || sent != 1 {
			t.Fatalf("expected 1 reminder and an error, got %d err=%v", sent, err)
		}
	})
}

func TestTrialUseCase_ExpireTrials(t *testing.T) {
	now := time.Date(2026, 4, 10, 7, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	builders := mock_interfaces.NewMockIBuilderRepository(ctrl)
	mailer := mock_interfaces.NewMockIMailer(ctrl)
	uc := NewTrialUseCase(builders, mailer, "https://app.example.com")

	builders.EXPECT().ListBySubscriptionStatus(gomock.Any(), entities.SubscriptionStatusTrialing).Return([]entities.Builder{
		{ID: "expired", Email: "a@x.test", BusinessName: "A", TrialEndsAt: now.Add(-time.Minute)},
		{ID: "running", Email: "b@x.test", TrialEndsAt: now.Add(time.Minute)},
	}, nil)
	builders.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b entities.Builder) (entities.Builder, error) {
		if b.ID != "expired" || b.SubscriptionStatus != entities.SubscriptionStatusInactive || b.IsAccessDisabled {
			t.Fatalf("unexpected update: %+v", b)
		}
		return b, nil
	})
	mailer.EXPECT().SendTrialExpired(gomock.Any(), "a@x.test", interfaces.TrialExpiredEmail{BusinessName: "A", FrontendURL: "https://app.example.com"}).Return(nil)

	n, err := uc.ExpireTrials(context.Background(), now)
	if err != nil || n != 1 {
		t.Fatalf("expected 1 expired, got %d err=%v", n, err)
	}
}
