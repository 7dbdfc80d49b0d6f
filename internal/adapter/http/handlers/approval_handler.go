package handlers

import (
	"crypto/subtle"
	"net/http"

	request "github.com/CVO-TreeAi/treeshop-production-sub002/internal/adapter/http/dto/request"
	response "github.com/CVO-TreeAi/treeshop-production-sub002/internal/adapter/http/dto/response"
	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/usecase"
	"github.com/CVO-TreeAi/treeshop-production-sub002/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// WebhookSecretHeader authenticates the payment provider's confirmation calls.
const WebhookSecretHeader = "X-Webhook-Secret"

var (
	errMissingToken        = pkg.NewDomainErrorSimple("TOKEN_REQUIRED", "An approval token is required", http.StatusBadRequest)
	errInvalidAcceptInput  = pkg.NewDomainErrorSimple("INVALID_ACCEPT_INPUT", "Invalid approval payload", http.StatusBadRequest)
	errInvalidWebhookInput = pkg.NewDomainErrorSimple("INVALID_WEBHOOK_INPUT", "Invalid payment confirmation payload", http.StatusBadRequest)
	errWebhookUnauthorized = pkg.NewDomainErrorSimple("WEBHOOK_UNAUTHORIZED", "Webhook signature check failed", http.StatusUnauthorized)
)

// ApprovalHandler handles the customer-facing approval endpoint and the
// payment confirmation webhook.

type ApprovalHandler struct {
	usecase       usecase.IProposalUseCase
	webhookSecret string
}

func NewApprovalHandler(uc usecase.IProposalUseCase, webhookSecret string) *ApprovalHandler {
	return &ApprovalHandler{usecase: uc, webhookSecret: webhookSecret}
}

// ViewProposal is the customer opening the approval page. The token is
// verified but never consumed here.
func (h *ApprovalHandler) ViewProposal(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
		return
	}

	p, err := h.usecase.View(c.Request.Context(), c.Param("proposal_id"), token)
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(p))
}

// AcceptProposal consumes the token and commits the accept transition. When a
// deposit is owed and initiation succeeded, the response carries the payment
// redirect handle.
func (h *ApprovalHandler) AcceptProposal(c *gin.Context) {
	var payload request.ProposalAcceptRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAcceptInput.HTTPStatus, errInvalidAcceptInput.ToHTTPError())
		return
	}

	res, err := h.usecase.Accept(c.Request.Context(), c.Param("proposal_id"), payload.Token, payload.FullName, payload.Consent)
	if err != nil {
		log.Printf("[approval][handler] accept failed proposal_id=%s err=%v", c.Param("proposal_id"), err)
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAcceptResult(res))
}

// ConfirmPayment is the provider's out-of-band confirmation event, the only
// trigger for accepted -> paid.
func (h *ApprovalHandler) ConfirmPayment(c *gin.Context) {
	secret := c.GetHeader(WebhookSecretHeader)
	if h.webhookSecret == "" || subtle.ConstantTimeCompare([]byte(secret), []byte(h.webhookSecret)) != 1 {
		log.Printf("[approval][handler] webhook rejected: bad secret")
		c.JSON(errWebhookUnauthorized.HTTPStatus, errWebhookUnauthorized.ToHTTPError())
		return
	}

	var payload request.PaymentWebhookRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWebhookInput.HTTPStatus, errInvalidWebhookInput.ToHTTPError())
		return
	}

	p, err := h.usecase.ConfirmPayment(c.Request.Context(), payload.ProposalID, payload.Amount, payload.PaymentReference)
	if err != nil {
		log.Printf("[approval][handler] payment confirmation failed proposal_id=%s ref=%s err=%v", payload.ProposalID, payload.PaymentReference, err)
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(p))
}
