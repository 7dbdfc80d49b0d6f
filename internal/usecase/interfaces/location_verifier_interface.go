package interfaces

import (
	"context"
	"errors"

	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/domain/entities"
)

// ErrLocationUnresolved signals that the address/coordinates could not be
// verified. It is never defaulted into a zero-distance quote.
var ErrLocationUnresolved = errors.New("location could not be resolved")

// ILocationVerifier abstracts the location-verification collaborator that
// resolves coordinates, one-way travel duration, and an optional risk/market
// profile for a quote request.
type ILocationVerifier interface {
	Verify(ctx context.Context, ref entities.LocationReference) (entities.VerifiedLocation, error)
}
