package response

import (
	"time"

	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/domain/entities"
	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/usecase"
)

type ProposalResponse struct {
	ProposalID string `json:"proposal_id"`
	ID         string `json:"id"`

	Customer entities.Customer       `json:"customer"`
	Inputs   entities.ProposalInputs `json:"inputs"`
	Items    []entities.LineItem     `json:"items"`

	Subtotal      float64 `json:"subtotal"`
	Tax           float64 `json:"tax"`
	Total         float64 `json:"total"`
	DepositAmount float64 `json:"deposit_amount"`
	Balance       float64 `json:"balance"`

	Status string `json:"status"`

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

func FromProposal(p entities.Proposal) ProposalResponse {
	return ProposalResponse{
		ProposalID: p.ID,
		ID:         p.ID,

		Customer: p.Customer,
		Inputs:   p.Inputs,
		Items:    p.Items,

		Subtotal:      p.Totals.Subtotal,
		Tax:           p.Totals.Tax,
		Total:         p.Totals.Total,
		DepositAmount: p.Totals.DepositAmount,
		Balance:       p.Totals.Balance,

		Status: string(p.Status),

		SentAt:           p.SentAt,
		ViewedAt:         p.ViewedAt,
		AcceptedAt:       p.AcceptedAt,
		AcceptedByName:   p.AcceptedByName,
		PaidAt:           p.PaidAt,
		PaymentAmount:    p.PaymentAmount,
		PaymentReference: p.PaymentReference,

		DocumentRef: p.DocumentRef,
		PublicURL:   p.PublicURL,

		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		ExpiresAt: p.ExpiresAt,
	}
}

// SendResponse carries the freshly minted approval token exactly once, for
// out-of-band delivery to the customer. It is never retrievable again.
type SendResponse struct {
	Proposal      ProposalResponse `json:"proposal"`
	ApprovalToken string           `json:"approval_token"`
}

// AcceptResponse reports the accept outcome plus the payment redirect handle
// when a deposit is owed and initiation succeeded.
type AcceptResponse struct {
	Proposal         ProposalResponse `json:"proposal"`
	PaymentInitiated bool             `json:"payment_initiated"`
	PaymentReference string           `json:"payment_reference,omitempty"`
	PaymentRedirect  string           `json:"payment_redirect,omitempty"`
}

func FromAcceptResult(res usecase.AcceptResult) AcceptResponse {
	return AcceptResponse{
		Proposal:         FromProposal(res.Proposal),
		PaymentInitiated: res.PaymentInitiated,
		PaymentReference: res.PaymentReference,
		PaymentRedirect:  res.PaymentRedirect,
	}
}
