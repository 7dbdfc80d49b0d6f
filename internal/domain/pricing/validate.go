package pricing

import (
	"fmt"

	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/domain/entities"
)

// FieldViolation is one field-level validation failure.
type FieldViolation struct {
	Field   string
	Message string
}

// ValidationError carries every violation found in a quote request so the
// caller can correct all of them at once.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("quote request validation failed (%d violations)", len(e.Violations))
}

// ValidateRequest range-checks a quote request before any computation.
// Enum membership against the configured tables is checked separately during
// pricing and fails closed with ErrUnknownEnum.
func (c Config) ValidateRequest(req entities.QuoteRequest) error {
	var violations []FieldViolation

	if !req.Location.HasExactlyOnePath() {
		violations = append(violations, FieldViolation{
			Field:   "location",
			Message: "exactly one of address, coordinates, or place_id is required",
		})
	}
	if req.Acreage < c.MinAcreage || req.Acreage > c.MaxAcreage {
		violations = append(violations, FieldViolation{
			Field:   "acreage",
			Message: fmt.Sprintf("must be between %g and %g", c.MinAcreage, c.MaxAcreage),
		})
	}
	if req.Accessibility < 1 || req.Accessibility > 10 {
		violations = append(violations, FieldViolation{
			Field:   "accessibility",
			Message: "must be an integer between 1 and 10",
		})
	}
	if req.Service == "" {
		violations = append(violations, FieldViolation{Field: "service", Message: "is required"})
	}
	if req.Density == "" {
		violations = append(violations, FieldViolation{Field: "density", Message: "is required"})
	}
	if req.Terrain == "" {
		violations = append(violations, FieldViolation{Field: "terrain", Message: "is required"})
	}
	if req.Property == "" {
		violations = append(violations, FieldViolation{Field: "property", Message: "is required"})
	}
	if req.Urgency == "" {
		violations = append(violations, FieldViolation{Field: "urgency", Message: "is required"})
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}
