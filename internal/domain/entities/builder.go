package entities

import "time"

type Role string

const (
	RoleBuilder Role = "builder"
	RoleAdmin   Role = "admin"
)

// SubscriptionStatus drives dashboard access.
//
//   - trialing: access until TrialEndsAt
//   - active: paid subscription
//   - past_due / inactive: blocked until a payment is approved

type SubscriptionStatus string

const (
	SubscriptionStatusTrialing SubscriptionStatus = "trialing"
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusPastDue  SubscriptionStatus = "past_due"
	SubscriptionStatusInactive SubscriptionStatus = "inactive"
)

type NotificationSettings struct {
	LeadEmails bool `json:"lead_emails"`
}

// Builder is the tenant account. It owns a price catalog and a public survey link.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (email-index): email
//   - GSI (survey_slug-index): survey_slug
type Builder struct {
	ID           string `json:"id"`
	BusinessName string `json:"business_name"`
	ContactName  string `json:"contact_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	ABN          string `json:"abn"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
	SurveySlug   string `json:"survey_slug"`

	PricingMode  PricingMode   `json:"pricing_mode"`
	PricingItems []PricingItem `json:"pricing_items"`

	TrialEndsAt        time.Time          `json:"trial_ends_at"`
	SubscriptionStatus SubscriptionStatus `json:"subscription_status"`
	PaymentCustomerRef string             `json:"payment_customer_ref,omitempty"`
	HasPaymentMethod   bool               `json:"has_payment_method"`

	Notifications    NotificationSettings `json:"notifications"`
	IsAccessDisabled bool                 `json:"is_access_disabled"`
	LastLoginAt      time.Time            `json:"last_login_at"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

func (b Builder) IsAdmin() bool {
	return b.Role == RoleAdmin
}

// HasActiveAccess reports whether the builder may use subscription-guarded features at now.
func (b Builder) HasActiveAccess(now time.Time) bool {
	if b.IsAdmin() {
		return true
	}
	switch b.SubscriptionStatus {
	case SubscriptionStatusActive:
		return true
	case SubscriptionStatusTrialing:
		return !b.TrialEndsAt.IsZero() && now.Before(b.TrialEndsAt)
	}
	return false
}
