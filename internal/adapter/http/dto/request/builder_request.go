package request

import (
	"strings"

	"estimatepro/internal/domain/entities"
	"estimatepro/internal/usecase"
)

type ProfileUpdateRequest struct {
	BusinessName  *string `json:"business_name"`
	ContactName   *string `json:"contact_name"`
	Phone         *string `json:"phone"`
	ABN           *string `json:"abn"`
	Notifications *struct {
		LeadEmails *bool `json:"lead_emails"`
	} `json:"notifications"`
}

func (r ProfileUpdateRequest) ToProfileUpdate() usecase.ProfileUpdate {
	out := usecase.ProfileUpdate{
		BusinessName: r.BusinessName,
		ContactName:  r.ContactName,
		Phone:        r.Phone,
		ABN:          r.ABN,
	}
	if r.Notifications != nil {
		out.LeadEmails = r.Notifications.LeadEmails
	}
	return out
}

// PricingItemRequest is one catalog row. IsActive defaults to true when omitted.
type PricingItemRequest struct {
	ItemName      string     `json:"item_name"`
	Applicability string     `json:"applicability"`
	PriceType     string     `json:"price_type"`
	FinalPrice    FlexNumber `json:"final_price"`
	BaseCost      FlexNumber `json:"base_cost"`
	MarkupPercent FlexNumber `json:"markup_percent"`
	IsActive      *bool      `json:"is_active"`
}

type PricingUpdateRequest struct {
	PricingMode  string               `json:"pricing_mode"`
	PricingItems []PricingItemRequest `json:"pricing_items" binding:"required"`
}

func (r PricingUpdateRequest) ToCatalog() usecase.PricingCatalog {
	items := make([]entities.PricingItem, 0, len(r.PricingItems))
	for _, it := range r.PricingItems {
		active := true
		if it.IsActive != nil {
			active = *it.IsActive
		}
		items = append(items, entities.PricingItem{
			ItemName:      strings.TrimSpace(it.ItemName),
			Applicability: strings.TrimSpace(it.Applicability),
			PriceType:     entities.PriceType(strings.ToLower(strings.TrimSpace(it.PriceType))),
			FinalPrice:    it.FinalPrice.Float64(),
			BaseCost:      it.BaseCost.Float64(),
			MarkupPercent: it.MarkupPercent.Float64(),
			IsActive:      active,
		})
	}
	return usecase.PricingCatalog{
		Mode:  entities.PricingMode(strings.ToLower(strings.TrimSpace(r.PricingMode))),
		Items: items,
	}
}
