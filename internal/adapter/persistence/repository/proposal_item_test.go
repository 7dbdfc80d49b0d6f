package repository

import (
	"reflect"
	"testing"
	"time"

	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/domain/entities"
)

func TestProposalItemRoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	sentAt := now.Add(time.Hour)
	viewedAt := now.Add(2 * time.Hour)

	p := entities.Proposal{
		ID: "prop-1",
		Customer: entities.Customer{
			Name:  "Jordan Pratt",
			Email: "jordan@example.com",
			Phone: "352-555-0114",
		},
		Inputs: entities.ProposalInputs{
			Acreage:   2.5,
			Service:   entities.ServiceMulching,
			Package:   "standard",
			Address:   "123 Pine Rd, Brooksville FL",
			Obstacles: []string{"fence line", "pond"},
		},
		Items: []entities.LineItem{
			{Name: "Forestry mulching", Description: "2.5 acres moderate", Quantity: 2.5, Rate: 2500, Total: 6250},
			{Name: "Transport", Quantity: 2, Rate: 350, Total: 700},
		},
		Totals:   entities.ComputeProposalTotals([]entities.LineItem{{Total: 6250}, {Total: 700}}, 0.07, 0.20),
		Status:   entities.ProposalStatusViewed,
		SentAt:   &sentAt,
		ViewedAt: &viewedAt,

		PublicURL: "https://proposals.example.com/proposals/prop-1/approval",

		CreatedAt: now,
		UpdatedAt: viewedAt,
		ExpiresAt: now.AddDate(0, 0, 30),
	}

	it, err := toProposalItem(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	back, err := fromProposalItem(it)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(p, back) {
		t.Fatalf("round trip mismatch:\n in: %+v\nout: %+v", p, back)
	}
}

func TestProposalItemRoundTrip_PaymentFields(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	paidAt := now.Add(48 * time.Hour)

	p := entities.Proposal{
		ID:               "prop-2",
		Customer:         entities.Customer{Name: "A", Email: "a@b.c", Phone: "1"},
		Items:            []entities.LineItem{{Name: "Clearing", Quantity: 1, Rate: 4000, Total: 4000}},
		Totals:           entities.ComputeProposalTotals([]entities.LineItem{{Total: 4000}}, 0.07, 0.20),
		Status:           entities.ProposalStatusPaid,
		PaidAt:           &paidAt,
		PaymentAmount:    856,
		PaymentReference: "mp-123",
		AcceptedByName:   "A Customer",
		CreatedAt:        now,
		UpdatedAt:        paidAt,
		ExpiresAt:        now.AddDate(0, 0, 30),
	}

	it, err := toProposalItem(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it.PaymentAmount == "" {
		t.Fatalf("expected payment amount stored as a string")
	}
	back, err := fromProposalItem(it)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(p, back) {
		t.Fatalf("round trip mismatch:\n in: %+v\nout: %+v", p, back)
	}
}

func TestTokenKey(t *testing.T) {
	if got := tokenKey("prop-1", "jti-1"); got != "prop-1#jti-1" {
		t.Fatalf("unexpected token key %q", got)
	}
}
