package pricing

import "github.com/CVO-TreeAi/treeshop-production-sub002/internal/domain/entities"

// Accessibility adjustment is a step function, not a curve. Ratings 5-8 are
// neutral; the thresholds are exact.
const (
	accessibilityHardRating = 5
	accessibilityEasyRating = 8
	accessibilitySurcharge  = 0.15
	accessibilityDiscount   = -0.05
)

// Environmental surcharges are independent flat rates and stack additively.
const (
	surchargeNearStructures = 0.10
	surchargeUtilityLines   = 0.15
	surchargeWetlands       = 0.20
)

// Risk surcharges from the location verifier's risk profile.
const (
	surchargeHighAccessRisk    = 0.10
	surchargeWeatherVulnerable = 0.05
	weatherVulnerableThreshold = 7.0
)

// BasePrice computes baseRate(service) x acreage x densityMultiplier.
func (c Config) BasePrice(service entities.ServiceType, acreage float64, density entities.VegetationDensity) (float64, error) {
	rate, err := c.baseRate(service)
	if err != nil {
		return 0, err
	}
	dm, err := c.densityMultiplier(service, density)
	if err != nil {
		return 0, err
	}
	return rate * acreage * dm, nil
}

// PropertyAdjustedPrice applies the property-type multiplier to the base price.
func (c Config) PropertyAdjustedPrice(basePrice float64, property entities.PropertyType) (float64, error) {
	pm, err := c.propertyMultiplier(property)
	if err != nil {
		return 0, err
	}
	return basePrice * pm, nil
}

// Adjustments computes the four delta categories on top of the
// property-adjusted price. All deltas are additive against that price.
func (c Config) Adjustments(
	propertyAdjustedPrice float64,
	terrain entities.TerrainType,
	accessibility int,
	env entities.EnvironmentalFlags,
	risk *entities.RiskProfile,
) (entities.QuoteAdjustments, error) {
	tm, err := c.terrainMultiplier(terrain)
	if err != nil {
		return entities.QuoteAdjustments{}, err
	}

	var adj entities.QuoteAdjustments
	adj.Terrain = propertyAdjustedPrice * (tm - 1)

	switch {
	case accessibility < accessibilityHardRating:
		adj.Accessibility = propertyAdjustedPrice * accessibilitySurcharge
	case accessibility > accessibilityEasyRating:
		adj.Accessibility = propertyAdjustedPrice * accessibilityDiscount
	}

	envRate := 0.0
	if env.NearStructures {
		envRate += surchargeNearStructures
	}
	if env.UtilityLines {
		envRate += surchargeUtilityLines
	}
	if env.Wetlands {
		envRate += surchargeWetlands
	}
	adj.Environmental = propertyAdjustedPrice * envRate

	if risk != nil {
		riskRate := 0.0
		if risk.HighAccessRisk {
			riskRate += surchargeHighAccessRisk
		}
		if risk.WeatherVulnerability > weatherVulnerableThreshold {
			riskRate += surchargeWeatherVulnerable
		}
		adj.Risk = propertyAdjustedPrice * riskRate
	}

	adj.Total = adj.Terrain + adj.Accessibility + adj.Environmental + adj.Risk
	return adj, nil
}
