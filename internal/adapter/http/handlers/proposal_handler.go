package handlers

import (
	"errors"
	"net/http"

	request "github.com/CVO-TreeAi/treeshop-production-sub002/internal/adapter/http/dto/request"
	response "github.com/CVO-TreeAi/treeshop-production-sub002/internal/adapter/http/dto/response"
	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/usecase"
	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/usecase/interfaces"
	"github.com/CVO-TreeAi/treeshop-production-sub002/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidProposalPayload = pkg.NewDomainErrorSimple("INVALID_PROPOSAL_INPUT", "Invalid proposal payload", http.StatusBadRequest)

// ProposalHandler handles the operator-facing proposal endpoints.

type ProposalHandler struct {
	usecase usecase.IProposalUseCase
}

func NewProposalHandler(uc usecase.IProposalUseCase) *ProposalHandler {
	return &ProposalHandler{usecase: uc}
}

// CreateProposal persists a draft proposal with its totals computed once.
func (h *ProposalHandler) CreateProposal(c *gin.Context) {
	var payload request.ProposalCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.Create(c.Request.Context(), payload.ToCustomer(), payload.ToInputs(), payload.ToItems())
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProposal(p))
}

func (h *ProposalHandler) GetProposal(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("proposal_id"))
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(p))
}

// SendProposal commits draft -> sent. The minted approval token rides in the
// response exactly once, for out-of-band delivery.
func (h *ProposalHandler) SendProposal(c *gin.Context) {
	p, token, err := h.usecase.Send(c.Request.Context(), c.Param("proposal_id"))
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SendResponse{
		Proposal:      response.FromProposal(p),
		ApprovalToken: token,
	})
}

func (h *ProposalHandler) CancelProposal(c *gin.Context) {
	p, err := h.usecase.Cancel(c.Request.Context(), c.Param("proposal_id"))
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(p))
}

// mapProposalError maps workflow errors onto distinct client-facing codes.
// Token and state errors stay separate on purpose: "link expired" and
// "already approved" mean different things to a customer.
func mapProposalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProposalID),
		errors.Is(err, usecase.ErrInvalidCustomer),
		errors.Is(err, usecase.ErrEmptyBreakdown),
		errors.Is(err, usecase.ErrAcceptNameRequired),
		errors.Is(err, usecase.ErrConsentRequired),
		errors.Is(err, usecase.ErrInvalidPaymentEvent):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProposalExpired):
		return pkg.NewDomainErrorSimple("PROPOSAL_EXPIRED", "This proposal has expired; request a new quote", http.StatusGone)
	case errors.Is(err, usecase.ErrProposalState):
		return pkg.NewDomainErrorSimple("PROPOSAL_STATE_CONFLICT", "The proposal status does not allow this action", http.StatusConflict)
	case errors.Is(err, usecase.ErrTokenProposalMismatch):
		return pkg.NewDomainErrorSimple("TOKEN_PROPOSAL_MISMATCH", "This approval link belongs to a different proposal", http.StatusUnauthorized)
	case errors.Is(err, interfaces.ErrTokenExpired):
		return pkg.NewDomainErrorSimple("TOKEN_EXPIRED", "This approval link has expired; request a new one", http.StatusGone)
	case errors.Is(err, interfaces.ErrTokenAlreadyUsed):
		return pkg.NewDomainErrorSimple("TOKEN_ALREADY_USED", "This proposal has already been approved", http.StatusConflict)
	case errors.Is(err, interfaces.ErrTokenInvalid):
		return pkg.NewDomainErrorSimple("TOKEN_INVALID", "Invalid approval link", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
