package handlers

import (
	"errors"
	"net/http"

	request "github.com/CVO-TreeAi/treeshop-production-sub002/internal/adapter/http/dto/request"
	response "github.com/CVO-TreeAi/treeshop-production-sub002/internal/adapter/http/dto/response"
	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/domain/pricing"
	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/usecase"
	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/usecase/interfaces"
	"github.com/CVO-TreeAi/treeshop-production-sub002/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler handles HTTP requests for the pricing engine.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// ComputeQuote prices a quote request and returns the full breakdown with a
// generated quote id and validity window.
func (h *QuoteHandler) ComputeQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.ComputeQuote(c.Request.Context(), payload.ToDomain())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPricedQuote(quote))
}

func mapQuoteError(err error) *pkg.AppError {
	var vErr *pricing.ValidationError
	switch {
	case errors.As(err, &vErr):
		fields := make([]pkg.FieldViolation, 0, len(vErr.Violations))
		for _, v := range vErr.Violations {
			fields = append(fields, pkg.FieldViolation{Field: v.Field, Message: v.Message})
		}
		return pkg.NewValidationError("VALIDATION_FAILED", "Quote request failed validation", http.StatusBadRequest, fields)
	case errors.Is(err, pricing.ErrUnknownEnum):
		return pkg.NewDomainError("UNKNOWN_PRICING_ENUM", "Pricing table has no entry for a requested value", err, http.StatusUnprocessableEntity)
	case errors.Is(err, pricing.ErrNegativeTravelDuration):
		return pkg.NewDomainErrorSimple("INVALID_TRAVEL_DURATION", "Travel duration must not be negative", http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrLocationUnresolved):
		return pkg.NewDomainError("LOCATION_UNRESOLVED", "The project location could not be verified", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
