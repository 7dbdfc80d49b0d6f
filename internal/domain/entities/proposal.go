package entities

import (
	"math"
	"time"
)

// ProposalStatus represents the lifecycle of a proposal.
//
// Domain notes:
//   - Transitions are forward-only; there is no un-sending.
//   - expired and cancelled are terminal branches reachable from any
//     pre-paid state; paid is terminal.
//   - The proposal workflow owns every status mutation.

type ProposalStatus string

const (
	ProposalStatusDraft     ProposalStatus = "draft"
	ProposalStatusSent      ProposalStatus = "sent"
	ProposalStatusViewed    ProposalStatus = "viewed"
	ProposalStatusAccepted  ProposalStatus = "accepted"
	ProposalStatusPaid      ProposalStatus = "paid"
	ProposalStatusExpired   ProposalStatus = "expired"
	ProposalStatusCancelled ProposalStatus = "cancelled"
)

var proposalTransitions = map[ProposalStatus][]ProposalStatus{
	ProposalStatusDraft:    {ProposalStatusSent, ProposalStatusExpired, ProposalStatusCancelled},
	ProposalStatusSent:     {ProposalStatusViewed, ProposalStatusAccepted, ProposalStatusExpired, ProposalStatusCancelled},
	ProposalStatusViewed:   {ProposalStatusAccepted, ProposalStatusExpired, ProposalStatusCancelled},
	ProposalStatusAccepted: {ProposalStatusPaid, ProposalStatusCancelled},
}

// CanTransitionTo reports whether moving from s to next is a legal step.
func (s ProposalStatus) CanTransitionTo(next ProposalStatus) bool {
	for _, allowed := range proposalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transition leaves s.
func (s ProposalStatus) IsTerminal() bool {
	return len(proposalTransitions[s]) == 0
}

// Customer identifies the recipient of a proposal. All three fields are
// required for delivery and token binding.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ProposalInputs freezes the request parameters that produced the proposal.
// Later pricing-table changes never alter an existing proposal.
type ProposalInputs struct {
	Acreage   float64     `json:"acreage"`
	Service   ServiceType `json:"service"`
	Package   string      `json:"package,omitempty"`
	Address   string      `json:"address"`
	Obstacles []string    `json:"obstacles,omitempty"`
}

// LineItem is one row of the proposal breakdown.
type LineItem struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Total       float64 `json:"total"`
}

// ProposalTotals holds the five computed money fields. They are computed once
// at creation and stored; a re-quote produces a new proposal.
type ProposalTotals struct {
	Subtotal      float64 `json:"subtotal"`
	Tax           float64 `json:"tax"`
	Total         float64 `json:"total"`
	DepositAmount float64 `json:"deposit_amount"`
	Balance       float64 `json:"balance"`
}

// Proposal is the persisted, customer-approvable unit of work.
//
// Storage model (DynamoDB):
//   - PK: id
type Proposal struct {
	ID       string         `json:"id"`
	Customer Customer       `json:"customer"`
	Inputs   ProposalInputs `json:"inputs"`
	Items    []LineItem     `json:"items"`
	Totals   ProposalTotals `json:"totals"`
	Status   ProposalStatus `json:"status"`

	SentAt           *time.Time `json:"sent_at,omitempty"`
	ViewedAt         *time.Time `json:"viewed_at,omitempty"`
	AcceptedAt       *time.Time `json:"accepted_at,omitempty"`
	AcceptedByName   string     `json:"accepted_by_name,omitempty"`
	PaidAt           *time.Time `json:"paid_at,omitempty"`
	PaymentAmount    float64    `json:"payment_amount,omitempty"`
	PaymentReference string     `json:"payment_reference,omitempty"`

	DocumentRef string `json:"document_ref,omitempty"`
	PublicURL   string `json:"public_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expirable reports whether the validity window may still lapse the proposal.
func (p Proposal) Expirable(now time.Time) bool {
	switch p.Status {
	case ProposalStatusDraft, ProposalStatusSent, ProposalStatusViewed:
		return now.After(p.ExpiresAt)
	}
	return false
}

// RoundMoney rounds to one minor currency unit (cents).
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeProposalTotals derives the stored money fields from the breakdown.
//
// Each field is rounded independently and the composite fields are built from
// the already-rounded parts, so subtotal+tax == total and
// deposit+balance == total hold exactly for every proposal.
func ComputeProposalTotals(items []LineItem, taxRate, depositRate float64) ProposalTotals {
	var subtotal float64
	for _, it := range items {
		subtotal += it.Total
	}
	subtotal = RoundMoney(subtotal)
	tax := RoundMoney(subtotal * taxRate)
	total := RoundMoney(subtotal + tax)
	deposit := RoundMoney(total * depositRate)
	balance := RoundMoney(total - deposit)
	return ProposalTotals{
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         total,
		DepositAmount: deposit,
		Balance:       balance,
	}
}
