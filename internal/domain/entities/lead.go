package entities

import "time"

// LeadStatus is the builder's follow-up stage for a client submission.

type LeadStatus string

const (
	LeadStatusNew           LeadStatus = "New"
	LeadStatusContacted     LeadStatus = "Contacted"
	LeadStatusSiteVisitDone LeadStatus = "Site Visit Done"
	LeadStatusQuoteSent     LeadStatus = "Quote Sent"
	LeadStatusQuoteAccepted LeadStatus = "Quote Accepted"
	LeadStatusLost          LeadStatus = "Lost"
)

var LeadStatuses = []LeadStatus{
	LeadStatusNew,
	LeadStatusContacted,
	LeadStatusSiteVisitDone,
	LeadStatusQuoteSent,
	LeadStatusQuoteAccepted,
	LeadStatusLost,
}

func (s LeadStatus) IsValid() bool {
	for _, v := range LeadStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Measurements are the client supplied dimensions in metres (areas in square metres).
type Measurements struct {
	TotalArea   float64 `json:"total_area"`
	FloorLength float64 `json:"floor_length"`
	FloorWidth  float64 `json:"floor_width"`
	WallHeight  float64 `json:"wall_height"`
}

// CalculatedAreas merges the base and tiered areas computed for a lead.
type CalculatedAreas struct {
	FloorArea    float64 `json:"floor_area"`
	WallArea     float64 `json:"wall_area"`
	TotalArea    float64 `json:"total_area"`
	BudgetArea   float64 `json:"budget_area"`
	StandardArea float64 `json:"standard_area"`
	PremiumArea  float64 `json:"premium_area"`
}

type LeadEstimate struct {
	BaseEstimate float64    `json:"base_estimate"`
	HighEstimate float64    `json:"high_estimate"`
	LineItems    []LineItem `json:"line_items"`
}

// Lead is a client survey submission plus the estimate computed when it was received.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (builder_id-index): builder_id
type Lead struct {
	ID         string `json:"id"`
	BuilderID  string `json:"builder_id"`
	SurveySlug string `json:"survey_slug"`

	ClientName      string `json:"client_name"`
	ClientPhone     string `json:"client_phone"`
	ClientEmail     string `json:"client_email"`
	BathroomType    string `json:"bathroom_type"`
	TilingLevel     string `json:"tiling_level"`
	DesignStyle     string `json:"design_style"`
	HomeAgeCategory string `json:"home_age_category"`

	Measurements    Measurements    `json:"measurements"`
	CalculatedAreas CalculatedAreas `json:"calculated_areas"`
	Estimate        LeadEstimate    `json:"estimate"`
	Answers         map[string]any  `json:"answers,omitempty"`
	PhotoPaths      []string        `json:"photo_paths"`

	Status      LeadStatus `json:"status"`
	Notes       string     `json:"notes"`
	SubmittedAt time.Time  `json:"submitted_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
