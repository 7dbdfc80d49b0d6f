package request

import "github.com/CVO-TreeAi/treeshop-production-sub002/internal/domain/entities"

type LocationRequest struct {
	Address string   `json:"address"`
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
	PlaceID string   `json:"place_id"`
}

type EnvironmentRequest struct {
	NearStructures bool     `json:"near_structures"`
	UtilityLines   bool     `json:"utility_lines"`
	Wetlands       bool     `json:"wetlands"`
	Restrictions   []string `json:"restrictions"`
}

// QuoteOptionsRequest toggles the optional response sections. Every optional
// input is enumerated here with its default (false) and nowhere else.
type QuoteOptionsRequest struct {
	DetailedBreakdown   bool `json:"detailed_breakdown"`
	Alternatives        bool `json:"alternatives"`
	SeasonalPricing     bool `json:"seasonal_pricing"`
	Financing           bool `json:"financing"`
	SeasonalConstraints bool `json:"seasonal_constraints"`
}

// QuoteRequest is the public payload of POST /v1/quotes. Range and enum
// validation happens in the pricing engine so failures come back with
// field-level detail.
type QuoteRequest struct {
	Location      LocationRequest     `json:"location"`
	Service       string              `json:"service" binding:"required"`
	Acreage       float64             `json:"acreage" binding:"required"`
	Density       string              `json:"density" binding:"required"`
	Terrain       string              `json:"terrain" binding:"required"`
	Accessibility int                 `json:"accessibility" binding:"required"`
	Property      string              `json:"property" binding:"required"`
	Environment   EnvironmentRequest  `json:"environment"`
	Urgency       string              `json:"urgency" binding:"required"`
	Options       QuoteOptionsRequest `json:"options"`
}

func (r QuoteRequest) ToDomain() entities.QuoteRequest {
	return entities.QuoteRequest{
		Location: entities.LocationReference{
			Address: r.Location.Address,
			Lat:     r.Location.Lat,
			Lng:     r.Location.Lng,
			PlaceID: r.Location.PlaceID,
		},
		Service:       entities.ServiceType(r.Service),
		Acreage:       r.Acreage,
		Density:       entities.VegetationDensity(r.Density),
		Terrain:       entities.TerrainType(r.Terrain),
		Accessibility: r.Accessibility,
		Property:      entities.PropertyType(r.Property),
		Environment: entities.EnvironmentalFlags{
			NearStructures: r.Environment.NearStructures,
			UtilityLines:   r.Environment.UtilityLines,
			Wetlands:       r.Environment.Wetlands,
			Restrictions:   r.Environment.Restrictions,
		},
		Urgency: entities.UrgencyLevel(r.Urgency),
		Options: entities.QuoteOptions{
			DetailedBreakdown:   r.Options.DetailedBreakdown,
			Alternatives:        r.Options.Alternatives,
			SeasonalPricing:     r.Options.SeasonalPricing,
			Financing:           r.Options.Financing,
			SeasonalConstraints: r.Options.SeasonalConstraints,
		},
	}
}
