package response

import (
	"testing"
	"time"

	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/domain/entities"
	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/usecase"
)

func TestFromProposal(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	p := entities.Proposal{
		ID:     "prop-1",
		Totals: entities.ProposalTotals{Subtotal: 6250, Tax: 437.5, Total: 6687.5, DepositAmount: 1337.5, Balance: 5350},
		Status: entities.ProposalStatusSent,
		SentAt: &now,
	}

	res := FromProposal(p)
	if res.ProposalID != "prop-1" || res.ID != "prop-1" {
		t.Fatalf("expected both id keys populated, got %+v", res)
	}
	if res.Status != "sent" {
		t.Fatalf("expected sent, got %s", res.Status)
	}
	if res.DepositAmount != 1337.5 || res.Balance != 5350 {
		t.Fatalf("unexpected money fields: %+v", res)
	}
	if res.SentAt == nil || !res.SentAt.Equal(now) {
		t.Fatalf("expected sentAt carried over")
	}
}

func TestFromAcceptResult(t *testing.T) {
	res := FromAcceptResult(usecase.AcceptResult{
		Proposal:         entities.Proposal{ID: "prop-1", Status: entities.ProposalStatusAccepted},
		PaymentInitiated: true,
		PaymentReference: "mp-123",
		PaymentRedirect:  "https://pay.example.com/mp-123",
	})

	if res.Proposal.ProposalID != "prop-1" || !res.PaymentInitiated {
		t.Fatalf("unexpected response: %+v", res)
	}
	if res.PaymentReference != "mp-123" || res.PaymentRedirect != "https://pay.example.com/mp-123" {
		t.Fatalf("unexpected payment fields: %+v", res)
	}
}
