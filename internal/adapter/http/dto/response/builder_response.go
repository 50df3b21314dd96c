package response

import (
	"time"

	"estimatepro/internal/domain/entities"
	"estimatepro/internal/domain/pricing"
	"estimatepro/internal/usecase"
)

// BuilderResponse is the account view. The password hash never leaves the service.
type BuilderResponse struct {
	ID                 string                        `json:"id"`
	BusinessName       string                        `json:"business_name"`
	ContactName        string                        `json:"contact_name"`
	Email              string                        `json:"email"`
	Phone              string                        `json:"phone"`
	ABN                string                        `json:"abn"`
	Role               string                        `json:"role"`
	SurveySlug         string                        `json:"survey_slug"`
	PricingMode        string                        `json:"pricing_mode"`
	TrialEndsAt        time.Time                     `json:"trial_ends_at"`
	SubscriptionStatus string                        `json:"subscription_status"`
	HasPaymentMethod   bool                          `json:"has_payment_method"`
	Notifications      entities.NotificationSettings `json:"notifications"`
	IsAccessDisabled   bool                          `json:"is_access_disabled"`
	LastLoginAt        *time.Time                    `json:"last_login_at,omitempty"`
	CreatedAt          time.Time                     `json:"created_at"`
	UpdatedAt          time.Time                     `json:"updated_at"`
}

func FromBuilder(b entities.Builder) BuilderResponse {
	res := BuilderResponse{
		ID:                 b.ID,
		BusinessName:       b.BusinessName,
		ContactName:        b.ContactName,
		Email:              b.Email,
		Phone:              b.Phone,
		ABN:                b.ABN,
		Role:               string(b.Role),
		SurveySlug:         b.SurveySlug,
		PricingMode:        string(b.PricingMode),
		TrialEndsAt:        b.TrialEndsAt,
		SubscriptionStatus: string(b.SubscriptionStatus),
		HasPaymentMethod:   b.HasPaymentMethod,
		Notifications:      b.Notifications,
		IsAccessDisabled:   b.IsAccessDisabled,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
	if !b.LastLoginAt.IsZero() {
		t := b.LastLoginAt
		res.LastLoginAt = &t
	}
	return res
}

func FromBuilders(bs []entities.Builder) []BuilderResponse {
	out := make([]BuilderResponse, 0, len(bs))
	for _, b := range bs {
		out = append(out, FromBuilder(b))
	}
	return out
}

type PricingResponse struct {
	PricingMode  string                 `json:"pricing_mode"`
	PricingItems []entities.PricingItem `json:"pricing_items"`
}

func FromPricingCatalog(c usecase.PricingCatalog) PricingResponse {
	items := c.Items
	if items == nil {
		items = []entities.PricingItem{}
	}
	return PricingResponse{PricingMode: string(c.Mode), PricingItems: items}
}

type EstimateResponse struct {
	Areas        pricing.Areas       `json:"areas"`
	TiledAreas   pricing.TiledAreas  `json:"tiled_areas"`
	LineItems    []entities.LineItem `json:"line_items"`
	BaseEstimate float64             `json:"base_estimate"`
	HighEstimate float64             `json:"high_estimate"`
}

func FromEstimateResult(r pricing.Result) EstimateResponse {
	lines := r.LineItems
	if lines == nil {
		lines = []entities.LineItem{}
	}
	return EstimateResponse{
		Areas:        r.Areas,
		TiledAreas:   r.TiledAreas,
		LineItems:    lines,
		BaseEstimate: r.BaseEstimate,
		HighEstimate: r.HighEstimate,
	}
}
