package pricing

import (
	"fmt"
	"time"

	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/domain/entities"
)

// Assembler turns a validated quote request plus one location verification
// result into a priced quote. It holds no mutable state and is safe for
// concurrent use.
type Assembler struct {
	cfg Config
	now func() time.Time
}

func NewAssembler(cfg Config) *Assembler {
	return &Assembler{cfg: cfg, now: time.Now}
}

// NewAssemblerAt pins the assembler's clock. Test seam.
func NewAssemblerAt(cfg Config, now func() time.Time) *Assembler {
	return &Assembler{cfg: cfg, now: now}
}

// Assemble is a pure function of its inputs: no retries, no side effects.
// Validation failures surface as *ValidationError, pricing-table gaps as
// ErrUnknownEnum.
func (a *Assembler) Assemble(req entities.QuoteRequest, loc entities.VerifiedLocation) (entities.PricedQuote, error) {
	if err := a.cfg.ValidateRequest(req); err != nil {
		return entities.PricedQuote{}, err
	}

	basePrice, err := a.cfg.BasePrice(req.Service, req.Acreage, req.Density)
	if err != nil {
		return entities.PricedQuote{}, err
	}
	propertyAdjusted, err := a.cfg.PropertyAdjustedPrice(basePrice, req.Property)
	if err != nil {
		return entities.PricedQuote{}, err
	}
	adjustments, err := a.cfg.Adjustments(propertyAdjusted, req.Terrain, req.Accessibility, req.Environment, loc.Risk)
	if err != nil {
		return entities.PricedQuote{}, err
	}

	subtotal := entities.RoundMoney(propertyAdjusted + adjustments.Total)

	urgencyDelta, urgencyMultiplier, err := a.cfg.UrgencyDelta(subtotal, req.Urgency)
	if err != nil {
		return entities.PricedQuote{}, err
	}
	urgencyDelta = entities.RoundMoney(urgencyDelta)

	oneWayMinutes := float64(loc.OneWayDurationSeconds) / 60
	transportCharge, err := a.cfg.TransportationCharge(oneWayMinutes)
	if err != nil {
		return entities.PricedQuote{}, err
	}

	finalPrice := entities.RoundMoney(subtotal + urgencyDelta + transportCharge)

	confidence := loc.Confidence
	if confidence == 0 {
		confidence = a.cfg.DefaultConfidence
	}

	issuedAt := a.now().UTC()
	quote := entities.PricedQuote{
		Service:               req.Service,
		Acreage:               req.Acreage,
		BasePrice:             entities.RoundMoney(basePrice),
		PropertyAdjustedPrice: entities.RoundMoney(propertyAdjusted),
		Adjustments:           adjustments,
		Subtotal:              subtotal,
		UrgencyMultiplier:     urgencyMultiplier,
		UrgencyDelta:          urgencyDelta,
		TransportationCharge:  transportCharge,
		FinalPrice:            finalPrice,
		Confidence:            confidence,
		IssuedAt:              issuedAt,
		ExpiresAt:             issuedAt.AddDate(0, 0, a.cfg.ValidityDays),
		PricePerAcre:          entities.RoundMoney(finalPrice / req.Acreage),
		EstimatedDays:         a.cfg.EstimatedTimelineDays(req.Service, req.Acreage, req.Urgency),
		RecommendedSteps:      recommendedSteps(req),
	}

	a.attachOptionalSections(&quote, req)
	return quote, nil
}

func (a *Assembler) attachOptionalSections(quote *entities.PricedQuote, req entities.QuoteRequest) {
	if req.Options.SeasonalPricing {
		rate := a.cfg.SeasonalPricingRate(req.Options.SeasonalConstraints)
		quote.Seasonal = &entities.SeasonalPricing{
			Rate:            rate,
			DiscountedPrice: entities.RoundMoney(quote.FinalPrice * rate),
		}
	}

	if req.Options.Financing {
		const months = 12
		deposit := entities.RoundMoney(quote.FinalPrice * a.cfg.DepositRate)
		quote.Financing = &entities.FinancingTerms{
			Months:         months,
			MonthlyPayment: entities.RoundMoney((quote.FinalPrice - deposit) / months),
			DepositDue:     deposit,
		}
	}

	if req.Options.Alternatives {
		for service, rate := range a.cfg.BaseRates {
			if service == req.Service {
				continue
			}
			// Rough comparison only: same density profile, no adjustment layer.
			dm, err := a.cfg.densityMultiplier(service, req.Density)
			if err != nil {
				continue
			}
			quote.Alternatives = append(quote.Alternatives, entities.QuoteAlternative{
				Service:        service,
				EstimatedPrice: entities.RoundMoney(rate * req.Acreage * dm),
			})
		}
	}

	if !req.Options.DetailedBreakdown {
		quote.Adjustments = entities.QuoteAdjustments{Total: quote.Adjustments.Total}
	}
}

func recommendedSteps(req entities.QuoteRequest) []string {
	steps := []string{
		"Review the itemized estimate and validity window",
		"Schedule an on-site walkthrough to confirm acreage and access",
	}
	if req.Environment.UtilityLines {
		steps = append(steps, "Request a utility locate before crew dispatch")
	}
	if req.Environment.Wetlands {
		steps = append(steps, "Confirm wetlands permitting requirements with the county")
	}
	if req.Urgency != entities.UrgencyStandard {
		steps = append(steps, fmt.Sprintf("Confirm %s scheduling availability", req.Urgency))
	}
	return steps
}
