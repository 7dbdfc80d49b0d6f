package routes

import (
	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes    = "/quotes"
	PathProposals = "/proposals"
	PathWebhooks  = "/webhooks"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.ComputeQuote)
	}
}

func addProposalRoutes(rg *gin.RouterGroup, proposalHandler *handlers.ProposalHandler, approvalHandler *handlers.ApprovalHandler) {
	proposals := rg.Group(PathProposals)
	{
		// Operator surface.
		proposals.POST("", proposalHandler.CreateProposal)
		proposals.GET("/:proposal_id", proposalHandler.GetProposal)
		proposals.POST("/:proposal_id/send", proposalHandler.SendProposal)
		proposals.POST("/:proposal_id/cancel", proposalHandler.CancelProposal)

		// Customer approval surface; the token rides in the request itself.
		proposals.GET("/:proposal_id/approval", approvalHandler.ViewProposal)
		proposals.POST("/:proposal_id/approval", approvalHandler.AcceptProposal)
	}

	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/payments", approvalHandler.ConfirmPayment)
	}
}
