package entities

import "time"

// ServiceType identifies the land-clearing service being quoted.
type ServiceType string

const (
	ServiceMulching      ServiceType = "mulching"
	ServiceClearing      ServiceType = "clearing"
	ServiceStumpGrinding ServiceType = "stump-grinding"
	ServiceBrushClearing ServiceType = "brush-clearing"
)

// VegetationDensity drives the per-service density multiplier.
type VegetationDensity string

const (
	DensityLight    VegetationDensity = "light"
	DensityModerate VegetationDensity = "moderate"
	DensityHeavy    VegetationDensity = "heavy"
	DensityExtreme  VegetationDensity = "extreme"
)

// TerrainType drives the terrain cost multiplier (flat < rolling < mixed < steep).
type TerrainType string

const (
	TerrainFlat    TerrainType = "flat"
	TerrainRolling TerrainType = "rolling"
	TerrainSteep   TerrainType = "steep"
	TerrainMixed   TerrainType = "mixed"
)

// PropertyType drives the property-type multiplier applied to the base price.
type PropertyType string

const (
	PropertyResidential  PropertyType = "residential"
	PropertyCommercial   PropertyType = "commercial"
	PropertyAgricultural PropertyType = "agricultural"
	PropertyIndustrial   PropertyType = "industrial"
)

// UrgencyLevel selects the urgency multiplier applied to the adjusted subtotal.
type UrgencyLevel string

const (
	UrgencyStandard  UrgencyLevel = "standard"
	UrgencyPriority  UrgencyLevel = "priority"
	UrgencyEmergency UrgencyLevel = "emergency"
)

// LocationReference is the raw location input of a quote request. Exactly one
// resolution path (address, coordinates, or place id) must be provided.
type LocationReference struct {
	Address string   `json:"address,omitempty"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
	PlaceID string   `json:"place_id,omitempty"`
}

// HasExactlyOnePath reports whether the reference carries exactly one
// resolution path. Coordinates count as one path and require both values.
func (l LocationReference) HasExactlyOnePath() bool {
	paths := 0
	if l.Address != "" {
		paths++
	}
	if l.Lat != nil || l.Lng != nil {
		if l.Lat == nil || l.Lng == nil {
			return false
		}
		paths++
	}
	if l.PlaceID != "" {
		paths++
	}
	return paths == 1
}

// EnvironmentalFlags are independent, additive surcharge triggers.
type EnvironmentalFlags struct {
	NearStructures bool     `json:"near_structures"`
	UtilityLines   bool     `json:"utility_lines"`
	Wetlands       bool     `json:"wetlands"`
	Restrictions   []string `json:"restrictions,omitempty"`
}

// QuoteOptions toggles the optional sections of a priced quote.
type QuoteOptions struct {
	DetailedBreakdown   bool `json:"detailed_breakdown"`
	Alternatives        bool `json:"alternatives"`
	SeasonalPricing     bool `json:"seasonal_pricing"`
	Financing           bool `json:"financing"`
	SeasonalConstraints bool `json:"seasonal_constraints"`
}

// QuoteRequest is the ephemeral, validated input of the pricing engine.
type QuoteRequest struct {
	Location      LocationReference  `json:"location"`
	Service       ServiceType        `json:"service"`
	Acreage       float64            `json:"acreage"`
	Density       VegetationDensity  `json:"density"`
	Terrain       TerrainType        `json:"terrain"`
	Accessibility int                `json:"accessibility"`
	Property      PropertyType       `json:"property"`
	Environment   EnvironmentalFlags `json:"environment"`
	Urgency       UrgencyLevel       `json:"urgency"`
	Options       QuoteOptions       `json:"options"`
}

// RiskProfile is the optional risk/market section of a location verification.
type RiskProfile struct {
	HighAccessRisk       bool    `json:"high_access_risk"`
	WeatherVulnerability float64 `json:"weather_vulnerability"`
}

// VerifiedLocation is the location-verification collaborator's answer.
// Confidence is 0 when the verifier did not report one.
type VerifiedLocation struct {
	Lat                   float64      `json:"lat"`
	Lng                   float64      `json:"lng"`
	OneWayDurationSeconds int          `json:"one_way_duration_seconds"`
	Risk                  *RiskProfile `json:"risk,omitempty"`
	Confidence            float64      `json:"confidence,omitempty"`
}

// QuoteAdjustments breaks the delta layer of a priced quote into its four
// categories. Total is always the sum of the other fields.
type QuoteAdjustments struct {
	Terrain       float64 `json:"terrain"`
	Accessibility float64 `json:"accessibility"`
	Environmental float64 `json:"environmental"`
	Risk          float64 `json:"risk"`
	Total         float64 `json:"total"`
}

// QuoteAlternative is an optional comparison row for a different service.
type QuoteAlternative struct {
	Service        ServiceType `json:"service"`
	EstimatedPrice float64     `json:"estimated_price"`
}

// FinancingTerms is the optional financing section of a priced quote.
type FinancingTerms struct {
	Months         int     `json:"months"`
	MonthlyPayment float64 `json:"monthly_payment"`
	DepositDue     float64 `json:"deposit_due"`
}

// SeasonalPricing is the informational seasonal panel. The seasonal rate is
// never folded into FinalPrice.
type SeasonalPricing struct {
	Rate            float64 `json:"rate"`
	DiscountedPrice float64 `json:"discounted_price"`
}

// PricedQuote is the pricing engine output. It is derived entirely from the
// request plus one location lookup and is never mutated or persisted.
type PricedQuote struct {
	ID      string      `json:"id"`
	Service ServiceType `json:"service"`
	Acreage float64     `json:"acreage"`

	BasePrice             float64          `json:"base_price"`
	PropertyAdjustedPrice float64          `json:"property_adjusted_price"`
	Adjustments           QuoteAdjustments `json:"adjustments"`
	Subtotal              float64          `json:"subtotal"`
	UrgencyMultiplier     float64          `json:"urgency_multiplier"`
	UrgencyDelta          float64          `json:"urgency_delta"`
	TransportationCharge  float64          `json:"transportation_charge"`
	FinalPrice            float64          `json:"final_price"`

	Confidence float64   `json:"confidence"`
	IssuedAt   time.Time `json:"issued_at"`
	ExpiresAt  time.Time `json:"expires_at"`

	PricePerAcre     float64            `json:"price_per_acre"`
	EstimatedDays    int                `json:"estimated_days"`
	Alternatives     []QuoteAlternative `json:"alternatives,omitempty"`
	Financing        *FinancingTerms    `json:"financing,omitempty"`
	Seasonal         *SeasonalPricing   `json:"seasonal,omitempty"`
	RecommendedSteps []string           `json:"recommended_steps,omitempty"`
}
