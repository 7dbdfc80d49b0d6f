package pricing

import (
	"math"

	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/domain/entities"
)

// UrgencyDelta prices urgency once, against the adjusted subtotal. It is not
// compounded with the seasonal rate.
func (c Config) UrgencyDelta(subtotal float64, urgency entities.UrgencyLevel) (delta, multiplier float64, err error) {
	m, err := c.urgencyMultiplier(urgency)
	if err != nil {
		return 0, 0, err
	}
	return subtotal * (m - 1), m, nil
}

// SeasonalPricingRate returns the informational seasonal rate. The discount is
// cosmetic: it surfaces in the seasonal panel, never in the final price.
func (c Config) SeasonalPricingRate(seasonalConstraints bool) float64 {
	if seasonalConstraints {
		return c.SeasonalRate
	}
	return 1.0
}

// EstimatedTimelineDays is a coarse crew-day estimate used in the quote's
// recommended next steps, not in pricing.
func (c Config) EstimatedTimelineDays(service entities.ServiceType, acreage float64, urgency entities.UrgencyLevel) int {
	acresPerDay := 2.0
	switch service {
	case entities.ServiceClearing:
		acresPerDay = 1.0
	case entities.ServiceStumpGrinding, entities.ServiceBrushClearing:
		acresPerDay = 3.0
	}
	days := int(math.Ceil(acreage / acresPerDay))
	if days < 1 {
		days = 1
	}
	if urgency == entities.UrgencyEmergency && days > 1 {
		days--
	}
	return days
}
