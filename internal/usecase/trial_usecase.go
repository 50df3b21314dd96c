package usecase

import (
	"context"
	"errors"
	"time"

	"estimatepro/internal/domain/entities"
	"estimatepro/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// TrialReminderWindowDays is how far ahead of trial end reminders start.
const TrialReminderWindowDays = 7

// ITrialUseCase runs the daily trial lifecycle jobs.
type ITrialUseCase interface {
	SendTrialReminders(ctx context.Context, now time.Time) (int, error)
	ExpireTrials(ctx context.Context, now time.Time) (int, error)
}

type TrialUseCase struct {
	builders    interfaces.IBuilderRepository
	mailer      interfaces.IMailer
	frontendURL string
}

var _ ITrialUseCase = (*TrialUseCase)(nil)

func NewTrialUseCase(builders interfaces.IBuilderRepository, mailer interfaces.IMailer, frontendURL string) *TrialUseCase {
	return &TrialUseCase{builders: builders, mailer: mailer, frontendURL: frontendURL}
}

// SendTrialReminders emails trialing builders whose trial ends between the start
// of today and the end of the day seven days from now. It returns the number of
// emails sent; individual delivery failures are collected and do not stop the run.
func (u *TrialUseCase) SendTrialReminders(ctx context.Context, now time.Time) (int, error) {
	builders, err := u.builders.ListBySubscriptionStatus(ctx, entities.SubscriptionStatusTrialing)
	if err != nil {
		return 0, err
	}

	from := startOfDay(now)
	to := startOfDay(now).AddDate(0, 0, TrialReminderWindowDays+1)

	sent := 0
	var errs []error
	for _, b := range builders {
		if b.TrialEndsAt.IsZero() || b.TrialEndsAt.Before(from) || !b.TrialEndsAt.Before(to) {
			continue
		}
		data := interfaces.TrialReminderEmail{
			BusinessName: b.BusinessName,
			TrialEndsAt:  b.TrialEndsAt,
			FrontendURL:  u.frontendURL,
		}
		if err := u.mailer.SendTrialReminder(ctx, b.Email, data); err != nil {
			zap.S().Warnf("[trial][usecase] reminder failed builder_id=%s err=%v", b.ID, err)
			errs = append(errs, err)
			continue
		}
		sent++
	}
	zap.S().Infof("[trial][usecase] reminders sent=%d candidates=%d", sent, len(builders))
	return sent, errors.Join(errs...)
}

// ExpireTrials moves trialing builders whose trial has ended to inactive and
// notifies them. It returns the number of builders expired.
func (u *TrialUseCase) ExpireTrials(ctx context.Context, now time.Time) (int, error) {
	builders, err := u.builders.ListBySubscriptionStatus(ctx, entities.SubscriptionStatusTrialing)
	if err != nil {
		return 0, err
	}

	expired := 0
	var errs []error
	for _, b := range builders {
		if b.TrialEndsAt.IsZero() || !b.TrialEndsAt.Before(now) {
			continue
		}
		b.SubscriptionStatus = entities.SubscriptionStatusInactive
		b.UpdatedAt = now
		if _, err := u.builders.Update(ctx, b); err != nil {
			zap.S().Errorf("[trial][usecase] expire failed builder_id=%s err=%v", b.ID, err)
			errs = append(errs, err)
			continue
		}
		expired++

		data := interfaces.TrialExpiredEmail{BusinessName: b.BusinessName, FrontendURL: u.frontendURL}
		if err := u.mailer.SendTrialExpired(ctx, b.Email, data); err != nil {
			zap.S().Warnf("[trial][usecase] expiry email failed builder_id=%s err=%v", b.ID, err)
			errs = append(errs, err)
		}
	}
	zap.S().Infof("[trial][usecase] trials expired=%d", expired)
	return expired, errors.Join(errs...)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
