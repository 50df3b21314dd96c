package interfaces

import (
	"context"
	"time"
)

type NewLeadEmail struct {
	BuilderName  string
	ClientName   string
	DashboardURL string
}

type TrialReminderEmail struct {
	BusinessName string
	TrialEndsAt  time.Time
	FrontendURL  string
}

type TrialExpiredEmail struct {
	BusinessName string
	FrontendURL  string
}

type PasswordResetEmail struct {
	ResetURL string
	TTL      time.Duration
}

// IMailer renders and delivers transactional emails.
type IMailer interface {
	SendNewLead(ctx context.Context, to string, data NewLeadEmail) error
	SendTrialReminder(ctx context.Context, to string, data TrialReminderEmail) error
	SendTrialExpired(ctx context.Context, to string, data TrialExpiredEmail) error
	SendPasswordReset(ctx context.Context, to string, data PasswordResetEmail) error
}
