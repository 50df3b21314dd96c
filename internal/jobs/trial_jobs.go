package jobs

import (
	"context"
	"sync"
	"time"

	"estimatepro/internal/usecase"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const trialRunTimeout = 5 * time.Minute

// TrialJobs runs the daily trial reminder and expiry sweep.
type TrialJobs struct {
	usecase usecase.ITrialUseCase
	cron    *cron.Cron
	now     func() time.Time

	mu sync.Mutex
}

// NewTrialJobs schedules the sweep with a standard five-field cron expression, in UTC.
func NewTrialJobs(uc usecase.ITrialUseCase, schedule string) (*TrialJobs, error) {
	j := &TrialJobs{
		usecase: uc,
		cron:    cron.New(cron.WithLocation(time.UTC)),
		now:     func() time.Time { return time.Now().UTC() },
	}
	if _, err := j.cron.AddFunc(schedule, func() { j.Run(context.Background()) }); err != nil {
		return nil, err
	}
	return j, nil
}

func (j *TrialJobs) Start() {
	zap.S().Infof("[jobs][trial] scheduler started entries=%d", len(j.cron.Entries()))
	j.cron.Start()
}

// Stop waits for a running sweep or for ctx, whichever ends first.
func (j *TrialJobs) Stop(ctx context.Context) {
	done := j.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		zap.S().Warnf("[jobs][trial] stop timed out")
	}
}

// Run sends reminders, then expires overdue trials. Overlapping runs are skipped.
func (j *TrialJobs) Run(ctx context.Context) {
	if !j.mu.TryLock() {
		zap.S().Warnf("[jobs][trial] previous run still in progress, skipping")
		return
	}
	defer j.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, trialRunTimeout)
	defer cancel()

	now := j.now()
	reminded, err := j.usecase.SendTrialReminders(ctx, now)
	if err != nil {
		zap.S().Errorf("[jobs][trial] reminders failed err=%v", err)
	}
	expired, err := j.usecase.ExpireTrials(ctx, now)
	if err != nil {
		zap.S().Errorf("[jobs][trial] expiry failed err=%v", err)
	}
	zap.S().Infof("[jobs][trial] run finished reminded=%d expired=%d", reminded, expired)
}
