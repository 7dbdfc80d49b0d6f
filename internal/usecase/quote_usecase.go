package usecase

import (
	"context"

	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/domain/entities"
	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/domain/pricing"
	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// IQuoteUseCase exposes the pricing engine.
//
// A priced quote is ephemeral: it gets an id and a validity window but is not
// persisted. Turning a quote into a unit of work happens via proposal creation.

type IQuoteUseCase interface {
	ComputeQuote(ctx context.Context, req entities.QuoteRequest) (entities.PricedQuote, error)
}

type QuoteUseCase struct {
	cfg       pricing.Config
	assembler *pricing.Assembler
	locations interfaces.ILocationVerifier
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(cfg pricing.Config, locations interfaces.ILocationVerifier) *QuoteUseCase {
	return &QuoteUseCase{cfg: cfg, assembler: pricing.NewAssembler(cfg), locations: locations}
}

// ComputeQuote validates the request, resolves the location, and assembles
// the priced quote. Validation runs before the location lookup so malformed
// input never costs an external call. Retries, if any, belong to the
// location collaborator; none happen here.
func (u *QuoteUseCase) ComputeQuote(ctx context.Context, req entities.QuoteRequest) (entities.PricedQuote, error) {
	if err := u.cfg.ValidateRequest(req); err != nil {
		return entities.PricedQuote{}, err
	}

	loc, err := u.locations.Verify(ctx, req.Location)
	if err != nil {
		log.Printf("[quote][usecase] location verification failed err=%v", err)
		return entities.PricedQuote{}, err
	}

	quote, err := u.assembler.Assemble(req, loc)
	if err != nil {
		return entities.PricedQuote{}, err
	}

	quote.ID = uuid.NewString()
	log.Printf("[quote][usecase] quote assembled quote_id=%s service=%s acreage=%.2f final_price=%.2f confidence=%.2f",
		quote.ID, quote.Service, quote.Acreage, quote.FinalPrice, quote.Confidence)
	return quote, nil
}
