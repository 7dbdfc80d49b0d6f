package interfaces

import (
	"context"
	"errors"
	"time"

	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/domain/entities"
)

// Sentinel errors shared by the repository ports. Conditional-write failures
// map onto these so the use case can tell "lost the token race" apart from
// "illegal transition".
var (
	ErrStateConflict    = errors.New("proposal status does not allow this transition")
	ErrTokenAlreadyUsed = errors.New("approval token already used")
)

// IProposalRepository abstracts DynamoDB persistence for Proposal.
//
// Every transition method is a conditional write keyed on the current status;
// a failed condition returns ErrStateConflict. Not-found is signalled as a
// zero-value Proposal with a nil error on GetByID.
type IProposalRepository interface {
	Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)

	// MarkSent commits draft -> sent and stamps sentAt.
	MarkSent(ctx context.Context, id string, at time.Time) (entities.Proposal, error)
	// MarkViewed commits sent -> viewed and stamps viewedAt.
	MarkViewed(ctx context.Context, id string, at time.Time) (entities.Proposal, error)
	// AcceptWithToken commits sent|viewed -> accepted and inserts the
	// (proposalID, jti) used-token record in one transaction. The used-token
	// insert is the authoritative lock: if it fails the call returns
	// ErrTokenAlreadyUsed, if the status condition fails it returns
	// ErrStateConflict.
	AcceptWithToken(ctx context.Context, id, jti, acceptedBy string, at time.Time) (entities.Proposal, error)
	// AttachPaymentSession records the payment-session reference issued on
	// accept without advancing the status.
	AttachPaymentSession(ctx context.Context, id, sessionRef string, at time.Time) (entities.Proposal, error)
	// MarkPaid commits accepted -> paid from an external confirmation event.
	MarkPaid(ctx context.Context, id string, at time.Time, amount float64, paymentRef string) (entities.Proposal, error)
	// MarkExpired commits draft|sent|viewed -> expired.
	MarkExpired(ctx context.Context, id string, at time.Time) (entities.Proposal, error)
	// Cancel commits any pre-paid status -> cancelled.
	Cancel(ctx context.Context, id string, at time.Time) (entities.Proposal, error)
}

// IApprovalTokenStore tracks token consumption as a separate fact, so replay
// is detectable independent of token re-verification.
type IApprovalTokenStore interface {
	IsUsed(ctx context.Context, proposalID, jti string) (bool, error)
	// MarkUsed inserts the used-token record; an existing record returns
	// ErrTokenAlreadyUsed.
	MarkUsed(ctx context.Context, proposalID, jti string, at time.Time) error
}
