package request

import (
	"net/url"
	"strings"

	"estimatepro/internal/domain/entities"
	"estimatepro/internal/domain/pricing"
)

// SurveyPayloadRequest holds the survey answers the engine reads.
// Measurements may be sent flat or nested under "measurements"; flat values win.
type SurveyPayloadRequest struct {
	TilingLevel  string   `json:"tiling_level"`
	BathroomType string   `json:"bathroom_type"`
	ToiletMove   FlexBool `json:"toilet_move"`
	WallChange   FlexBool `json:"wall_change"`
	IncludeTiles FlexBool `json:"include_tiles"`

	TotalArea   FlexNumber `json:"total_area"`
	FloorLength FlexNumber `json:"floor_length"`
	FloorWidth  FlexNumber `json:"floor_width"`
	WallHeight  FlexNumber `json:"wall_height"`

	Measurements *MeasurementsRequest `json:"measurements,omitempty"`
}

type MeasurementsRequest struct {
	TotalArea   FlexNumber `json:"total_area"`
	FloorLength FlexNumber `json:"floor_length"`
	FloorWidth  FlexNumber `json:"floor_width"`
	WallHeight  FlexNumber `json:"wall_height"`
}

// SurveySubmitRequest is the public survey submission (JSON or multipart form).
type SurveySubmitRequest struct {
	SurveyPayloadRequest
	ClientName      string `json:"client_name"`
	ClientPhone     string `json:"client_phone"`
	ClientEmail     string `json:"client_email"`
	DesignStyle     string `json:"design_style"`
	HomeAgeCategory string `json:"home_age_category"`
}

func (r SurveyPayloadRequest) ToPayload() pricing.Payload {
	m := entities.Measurements{
		TotalArea:   r.TotalArea.Float64(),
		FloorLength: r.FloorLength.Float64(),
		FloorWidth:  r.FloorWidth.Float64(),
		WallHeight:  r.WallHeight.Float64(),
	}
	if r.Measurements != nil {
		m.TotalArea = firstNonZero(m.TotalArea, r.Measurements.TotalArea.Float64())
		m.FloorLength = firstNonZero(m.FloorLength, r.Measurements.FloorLength.Float64())
		m.FloorWidth = firstNonZero(m.FloorWidth, r.Measurements.FloorWidth.Float64())
		m.WallHeight = firstNonZero(m.WallHeight, r.Measurements.WallHeight.Float64())
	}
	return pricing.Payload{
		Measurements: m,
		TilingLevel:  strings.TrimSpace(r.TilingLevel),
		BathroomType: strings.TrimSpace(r.BathroomType),
		ToiletMove:   bool(r.ToiletMove),
		WallChange:   bool(r.WallChange),
		IncludeTiles: bool(r.IncludeTiles),
	}
}

// SurveySubmitFromForm reads a multipart or urlencoded submission.
func SurveySubmitFromForm(v url.Values) SurveySubmitRequest {
	return SurveySubmitRequest{
		SurveyPayloadRequest: SurveyPayloadRequest{
			TilingLevel:  v.Get("tiling_level"),
			BathroomType: v.Get("bathroom_type"),
			ToiletMove:   FlexBool(ParseFlexBool(v.Get("toilet_move"))),
			WallChange:   FlexBool(ParseFlexBool(v.Get("wall_change"))),
			IncludeTiles: FlexBool(ParseFlexBool(v.Get("include_tiles"))),
			TotalArea:    FlexNumber(ParseFlexNumber(v.Get("total_area"))),
			FloorLength:  FlexNumber(ParseFlexNumber(v.Get("floor_length"))),
			FloorWidth:   FlexNumber(ParseFlexNumber(v.Get("floor_width"))),
			WallHeight:   FlexNumber(ParseFlexNumber(v.Get("wall_height"))),
		},
		ClientName:      v.Get("client_name"),
		ClientPhone:     v.Get("client_phone"),
		ClientEmail:     v.Get("client_email"),
		DesignStyle:     v.Get("design_style"),
		HomeAgeCategory: v.Get("home_age_category"),
	}
}

// FormAnswers flattens form values into the answers map stored on a lead.
func FormAnswers(v url.Values) map[string]any {
	out := make(map[string]any, len(v))
	for k, vals := range v {
		switch len(vals) {
		case 0:
		case 1:
			out[k] = vals[0]
		default:
			list := make([]any, 0, len(vals))
			for _, s := range vals {
				list = append(list, s)
			}
			out[k] = list
		}
	}
	return out
}

func firstNonZero(a, b float64) float64 {
	if a != 0 {
		return a
	}
	return b
}
