package request

import (
	"testing"

	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/domain/entities"
)

func TestQuoteRequest_ToDomain(t *testing.T) {
	lat, lng := 28.55, -82.39
	r := QuoteRequest{
		Location:      LocationRequest{Lat: &lat, Lng: &lng},
		Service:       "clearing",
		Acreage:       3,
		Density:       "heavy",
		Terrain:       "steep",
		Accessibility: 4,
		Property:      "commercial",
		Environment:   EnvironmentRequest{UtilityLines: true},
		Urgency:       "priority",
		Options:       QuoteOptionsRequest{Financing: true},
	}

	d := r.ToDomain()
	if d.Service != entities.ServiceClearing || d.Density != entities.DensityHeavy {
		t.Fatalf("unexpected enums: %+v", d)
	}
	if d.Location.Lat == nil || *d.Location.Lat != lat || d.Location.Lng == nil || *d.Location.Lng != lng {
		t.Fatalf("unexpected location: %+v", d.Location)
	}
	if !d.Environment.UtilityLines || d.Environment.Wetlands {
		t.Fatalf("unexpected environment: %+v", d.Environment)
	}
	if !d.Options.Financing || d.Options.Alternatives {
		t.Fatalf("unexpected options: %+v", d.Options)
	}
}
