package interfaces

import (
	"errors"
	"time"
)

// Token verification failure modes. Expired and invalid are distinct because
// they carry different customer-facing meaning.
var (
	ErrTokenInvalid = errors.New("approval token invalid")
	ErrTokenExpired = errors.New("approval token expired")
)

// ApprovalClaims are the verified contents of an approval token.
type ApprovalClaims struct {
	ProposalID string
	JTI        string
	ExpiresAt  time.Time
}

// IApprovalTokenManager abstracts the signing primitive behind a capability
// interface so HMAC can be swapped for an asymmetric scheme without touching
// the proposal workflow.
type IApprovalTokenManager interface {
	// Issue mints a signed, expiring, single-use token bound to one proposal.
	Issue(proposalID string) (token string, claims ApprovalClaims, err error)
	// Verify checks signature and expiry and returns the embedded claims.
	// It does not consult the used-token ledger.
	Verify(token string) (ApprovalClaims, error)
}
