package response

import "estimatepro/internal/usecase"

type AdminSummaryResponse struct {
	BuilderCount   int `json:"builder_count"`
	ActiveBuilders int `json:"active_builders"`
	LeadCount      int `json:"lead_count"`
}

func FromAdminSummary(s usecase.AdminSummary) AdminSummaryResponse {
	return AdminSummaryResponse{
		BuilderCount:   s.BuilderCount,
		ActiveBuilders: s.ActiveBuilders,
		LeadCount:      s.LeadCount,
	}
}
