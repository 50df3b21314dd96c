package response

import (
	"time"

	"estimatepro/internal/domain/entities"
)

type LeadResponse struct {
	ID              string                   `json:"id"`
	BuilderID       string                   `json:"builder_id"`
	SurveySlug      string                   `json:"survey_slug"`
	ClientName      string                   `json:"client_name"`
	ClientPhone     string                   `json:"client_phone"`
	ClientEmail     string                   `json:"client_email"`
	BathroomType    string                   `json:"bathroom_type"`
	TilingLevel     string                   `json:"tiling_level"`
	DesignStyle     string                   `json:"design_style"`
	HomeAgeCategory string                   `json:"home_age_category"`
	Measurements    entities.Measurements    `json:"measurements"`
	CalculatedAreas entities.CalculatedAreas `json:"calculated_areas"`
	Estimate        entities.LeadEstimate    `json:"estimate"`
	Answers         map[string]any           `json:"answers,omitempty"`
	PhotoPaths      []string                 `json:"photo_paths"`
	Status          string                   `json:"status"`
	Notes           string                   `json:"notes"`
	SubmittedAt     time.Time                `json:"submitted_at"`
	CreatedAt       time.Time                `json:"created_at"`
	UpdatedAt       time.Time                `json:"updated_at"`
}

func FromLead(l entities.Lead) LeadResponse {
	photos := l.PhotoPaths
	if photos == nil {
		photos = []string{}
	}
	est := l.Estimate
	if est.LineItems == nil {
		est.LineItems = []entities.LineItem{}
	}
	return LeadResponse{
		ID:              l.ID,
		BuilderID:       l.BuilderID,
		SurveySlug:      l.SurveySlug,
		ClientName:      l.ClientName,
		ClientPhone:     l.ClientPhone,
		ClientEmail:     l.ClientEmail,
		BathroomType:    l.BathroomType,
		TilingLevel:     l.TilingLevel,
		DesignStyle:     l.DesignStyle,
		HomeAgeCategory: l.HomeAgeCategory,
		Measurements:    l.Measurements,
		CalculatedAreas: l.CalculatedAreas,
		Estimate:        est,
		Answers:         l.Answers,
		PhotoPaths:      photos,
		Status:          string(l.Status),
		Notes:           l.Notes,
		SubmittedAt:     l.SubmittedAt,
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}
}

func FromLeads(ls []entities.Lead) []LeadResponse {
	out := make([]LeadResponse, 0, len(ls))
	for _, l := range ls {
		out = append(out, FromLead(l))
	}
	return out
}
