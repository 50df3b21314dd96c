package response

import "estimatepro/internal/usecase"

type SurveyMetaResponse struct {
	Builder struct {
		BusinessName string `json:"business_name"`
		SurveySlug   string `json:"survey_slug"`
		PricingMode  string `json:"pricing_mode"`
	} `json:"builder"`
	TilingLevels []string `json:"tiling_levels"`
}

func FromSurveyMeta(m usecase.SurveyMeta) SurveyMetaResponse {
	var res SurveyMetaResponse
	res.Builder.BusinessName = m.BusinessName
	res.Builder.SurveySlug = m.SurveySlug
	res.Builder.PricingMode = string(m.PricingMode)
	res.TilingLevels = m.TilingLevels
	if res.TilingLevels == nil {
		res.TilingLevels = []string{}
	}
	return res
}

type EstimateTotals struct {
	BaseEstimate float64 `json:"base_estimate"`
	HighEstimate float64 `json:"high_estimate"`
}

type SurveySubmitResponse struct {
	Message  string         `json:"message"`
	LeadID   string         `json:"lead_id"`
	Estimate EstimateTotals `json:"estimate"`
}

func FromSubmitResult(r usecase.SubmitSurveyResult) SurveySubmitResponse {
	return SurveySubmitResponse{
		Message:  "Survey submitted",
		LeadID:   r.LeadID,
		Estimate: EstimateTotals{BaseEstimate: r.BaseEstimate, HighEstimate: r.HighEstimate},
	}
}
