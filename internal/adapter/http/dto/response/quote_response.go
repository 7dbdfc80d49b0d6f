package response

import (
	"time"

	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/domain/entities"
)

type QuoteAdjustmentsResponse struct {
	Terrain       float64 `json:"terrain"`
	Accessibility float64 `json:"accessibility"`
	Environmental float64 `json:"environmental"`
	Risk          float64 `json:"risk"`
	Total         float64 `json:"total"`
}

type QuoteResponse struct {
	QuoteID string  `json:"quote_id"`
	Service string  `json:"service"`
	Acreage float64 `json:"acreage"`

	BasePrice             float64                  `json:"base_price"`
	PropertyAdjustedPrice float64                  `json:"property_adjusted_price"`
	Adjustments           QuoteAdjustmentsResponse `json:"adjustments"`
	Subtotal              float64                  `json:"subtotal"`
	UrgencyMultiplier     float64                  `json:"urgency_multiplier"`
	UrgencyDelta          float64                  `json:"urgency_delta"`
	TransportationCharge  float64                  `json:"transportation_charge"`
	FinalPrice            float64                  `json:"final_price"`
	PricePerAcre          float64                  `json:"price_per_acre"`

	Confidence    float64   `json:"confidence"`
	IssuedAt      time.Time `json:"issued_at"`
	ValidUntil    time.Time `json:"valid_until"`
	EstimatedDays int       `json:"estimated_days"`

	Alternatives     []entities.QuoteAlternative `json:"alternatives,omitempty"`
	Financing        *entities.FinancingTerms    `json:"financing,omitempty"`
	Seasonal         *entities.SeasonalPricing   `json:"seasonal,omitempty"`
	RecommendedSteps []string                    `json:"recommended_steps"`
}

func FromPricedQuote(q entities.PricedQuote) QuoteResponse {
	return QuoteResponse{
		QuoteID: q.ID,
		Service: string(q.Service),
		Acreage: q.Acreage,

		BasePrice:             q.BasePrice,
		PropertyAdjustedPrice: q.PropertyAdjustedPrice,
		Adjustments: QuoteAdjustmentsResponse{
			Terrain:       q.Adjustments.Terrain,
			Accessibility: q.Adjustments.Accessibility,
			Environmental: q.Adjustments.Environmental,
			Risk:          q.Adjustments.Risk,
			Total:         q.Adjustments.Total,
		},
		Subtotal:             q.Subtotal,
		UrgencyMultiplier:    q.UrgencyMultiplier,
		UrgencyDelta:         q.UrgencyDelta,
		TransportationCharge: q.TransportationCharge,
		FinalPrice:           q.FinalPrice,
		PricePerAcre:         q.PricePerAcre,

		Confidence:    q.Confidence,
		IssuedAt:      q.IssuedAt,
		ValidUntil:    q.ExpiresAt,
		EstimatedDays: q.EstimatedDays,

		Alternatives:     q.Alternatives,
		Financing:        q.Financing,
		Seasonal:         q.Seasonal,
		RecommendedSteps: q.RecommendedSteps,
	}
}
