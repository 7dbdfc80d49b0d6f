package pricing

import (
	"errors"
	"fmt"

	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/domain/entities"
)

// ErrUnknownEnum signals a lookup with a value outside the configured set.
// Pricing fails closed on it; no lookup ever silently defaults.
var ErrUnknownEnum = errors.New("unknown pricing enum value")

// Config is the injected pricing table. It replaces any module-level pricing
// state so tables can be versioned and tested with fixtures.
type Config struct {
	BaseRates           map[entities.ServiceType]float64
	DensityMultipliers  map[entities.ServiceType]map[entities.VegetationDensity]float64
	TerrainMultipliers  map[entities.TerrainType]float64
	PropertyMultipliers map[entities.PropertyType]float64
	UrgencyMultipliers  map[entities.UrgencyLevel]float64

	TransportHourlyRate float64
	TaxRate             float64
	DepositRate         float64
	SeasonalRate        float64
	DefaultConfidence   float64
	ValidityDays        int

	MinAcreage float64
	MaxAcreage float64
}

// DefaultConfig returns the reference pricing table.
func DefaultConfig() Config {
	density := map[entities.VegetationDensity]float64{
		entities.DensityLight:    0.8,
		entities.DensityModerate: 1.0,
		entities.DensityHeavy:    1.3,
		entities.DensityExtreme:  1.6,
	}
	return Config{
		BaseRates: map[entities.ServiceType]float64{
			entities.ServiceMulching:      2500,
			entities.ServiceClearing:      4000,
			entities.ServiceStumpGrinding: 1500,
			entities.ServiceBrushClearing: 1200,
		},
		DensityMultipliers: map[entities.ServiceType]map[entities.VegetationDensity]float64{
			entities.ServiceMulching:      density,
			entities.ServiceClearing:      density,
			entities.ServiceStumpGrinding: density,
			entities.ServiceBrushClearing: density,
		},
		TerrainMultipliers: map[entities.TerrainType]float64{
			entities.TerrainFlat:    1.0,
			entities.TerrainRolling: 1.1,
			entities.TerrainMixed:   1.2,
			entities.TerrainSteep:   1.35,
		},
		PropertyMultipliers: map[entities.PropertyType]float64{
			entities.PropertyResidential:  1.0,
			entities.PropertyAgricultural: 0.95,
			entities.PropertyCommercial:   1.15,
			entities.PropertyIndustrial:   1.25,
		},
		UrgencyMultipliers: map[entities.UrgencyLevel]float64{
			entities.UrgencyStandard:  1.0,
			entities.UrgencyPriority:  1.25,
			entities.UrgencyEmergency: 1.5,
		},
		TransportHourlyRate: 350,
		TaxRate:             0.07,
		DepositRate:         0.20,
		SeasonalRate:        0.95,
		DefaultConfidence:   0.85,
		ValidityDays:        30,
		MinAcreage:          0.1,
		MaxAcreage:          1000,
	}
}

func (c Config) baseRate(s entities.ServiceType) (float64, error) {
	rate, ok := c.BaseRates[s]
	if !ok {
		return 0, fmt.Errorf("%w: service %q", ErrUnknownEnum, s)
	}
	return rate, nil
}

func (c Config) densityMultiplier(s entities.ServiceType, d entities.VegetationDensity) (float64, error) {
	byDensity, ok := c.DensityMultipliers[s]
	if !ok {
		return 0, fmt.Errorf("%w: service %q", ErrUnknownEnum, s)
	}
	m, ok := byDensity[d]
	if !ok {
		return 0, fmt.Errorf("%w: density %q", ErrUnknownEnum, d)
	}
	return m, nil
}

func (c Config) terrainMultiplier(t entities.TerrainType) (float64, error) {
	m, ok := c.TerrainMultipliers[t]
	if !ok {
		return 0, fmt.Errorf("%w: terrain %q", ErrUnknownEnum, t)
	}
	return m, nil
}

func (c Config) propertyMultiplier(p entities.PropertyType) (float64, error) {
	m, ok := c.PropertyMultipliers[p]
	if !ok {
		return 0, fmt.Errorf("%w: property %q", ErrUnknownEnum, p)
	}
	return m, nil
}

func (c Config) urgencyMultiplier(u entities.UrgencyLevel) (float64, error) {
	m, ok := c.UrgencyMultipliers[u]
	if !ok {
		return 0, fmt.Errorf("%w: urgency %q", ErrUnknownEnum, u)
	}
	return m, nil
}
