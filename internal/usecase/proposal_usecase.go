package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/domain/entities"
	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrProposalNotFound      = errors.New("proposal not found")
	ErrInvalidProposalID     = errors.New("invalid proposal id")
	ErrInvalidCustomer       = errors.New("customer name, email and phone are required")
	ErrEmptyBreakdown        = errors.New("proposal requires at least one line item")
	ErrProposalState         = errors.New("transition not allowed from current proposal status")
	ErrProposalExpired       = errors.New("proposal validity window has elapsed")
	ErrTokenProposalMismatch = errors.New("approval token bound to a different proposal")
	ErrAcceptNameRequired    = errors.New("full name is required to accept")
	ErrConsentRequired       = errors.New("explicit consent is required to accept")
	ErrInvalidPaymentEvent   = errors.New("invalid payment confirmation event")
)

// ProposalConfig holds the workflow tunables frozen into each new proposal.
type ProposalConfig struct {
	TaxRate       float64
	DepositRate   float64
	ValidityDays  int
	Currency      string
	PublicBaseURL string
}

// AcceptResult is the outcome of a successful accept transition. Payment
// initiation is asynchronous: PaymentInitiated false with a nil error means
// acceptance committed but deposit collection must be re-initiated later.
type AcceptResult struct {
	Proposal         entities.Proposal
	PaymentInitiated bool
	PaymentReference string
	PaymentRedirect  string
}

// IProposalUseCase governs the proposal lifecycle. It is the only component
// that mutates proposals.
type IProposalUseCase interface {
	Create(ctx context.Context, customer entities.Customer, inputs entities.ProposalInputs, items []entities.LineItem) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	Send(ctx context.Context, id string) (entities.Proposal, string, error)
	View(ctx context.Context, id, token string) (entities.Proposal, error)
	Accept(ctx context.Context, id, token, fullName string, consent bool) (AcceptResult, error)
	ConfirmPayment(ctx context.Context, id string, amount float64, paymentRef string) (entities.Proposal, error)
	Cancel(ctx context.Context, id string) (entities.Proposal, error)
}

type ProposalUseCase struct {
	repo    interfaces.IProposalRepository
	tokens  interfaces.IApprovalTokenStore
	manager interfaces.IApprovalTokenManager
	gateway interfaces.IPaymentGateway
	cfg     ProposalConfig
	now     func() time.Time
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

func NewProposalUseCase(
	repo interfaces.IProposalRepository,
	tokens interfaces.IApprovalTokenStore,
	manager interfaces.IApprovalTokenManager,
	gateway interfaces.IPaymentGateway,
	cfg ProposalConfig,
) *ProposalUseCase {
	return &ProposalUseCase{repo: repo, tokens: tokens, manager: manager, gateway: gateway, cfg: cfg, now: time.Now}
}

// Create persists a new draft proposal with its totals computed exactly once.
func (u *ProposalUseCase) Create(ctx context.Context, customer entities.Customer, inputs entities.ProposalInputs, items []entities.LineItem) (entities.Proposal, error) {
	customer.Name = strings.TrimSpace(customer.Name)
	customer.Email = strings.TrimSpace(customer.Email)
	customer.Phone = strings.TrimSpace(customer.Phone)
	if customer.Name == "" || customer.Email == "" || customer.Phone == "" {
		return entities.Proposal{}, ErrInvalidCustomer
	}
	if len(items) == 0 {
		return entities.Proposal{}, ErrEmptyBreakdown
	}

	now := u.now().UTC()
	p := entities.Proposal{
		ID:        uuid.NewString(),
		Customer:  customer,
		Inputs:    inputs,
		Items:     items,
		Totals:    entities.ComputeProposalTotals(items, u.cfg.TaxRate, u.cfg.DepositRate),
		Status:    entities.ProposalStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.AddDate(0, 0, u.cfg.ValidityDays),
	}
	if u.cfg.PublicBaseURL != "" {
		p.PublicURL = strings.TrimRight(u.cfg.PublicBaseURL, "/") + "/proposals/" + p.ID + "/approval"
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Proposal{}, err
	}
	log.Printf("[proposal][usecase] created proposal_id=%s total=%.2f deposit=%.2f", created.ID, created.Totals.Total, created.Totals.DepositAmount)
	return created, nil
}

func (u *ProposalUseCase) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	p, err := u.load(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	return u.expireIfElapsed(ctx, p)
}

// Send commits draft -> sent and mints the single-use approval token. The
// token is returned for out-of-band delivery and never persisted in
// plaintext alongside the proposal.
func (u *ProposalUseCase) Send(ctx context.Context, id string) (entities.Proposal, string, error) {
	p, err := u.load(ctx, id)
	if err != nil {
		return entities.Proposal{}, "", err
	}
	if p, err = u.expireIfElapsed(ctx, p); err != nil {
		return entities.Proposal{}, "", err
	}
	if p.Status == entities.ProposalStatusExpired {
		return entities.Proposal{}, "", ErrProposalExpired
	}
	if p.Status != entities.ProposalStatusDraft {
		return entities.Proposal{}, "", ErrProposalState
	}

	token, claims, err := u.manager.Issue(p.ID)
	if err != nil {
		return entities.Proposal{}, "", err
	}

	updated, err := u.repo.MarkSent(ctx, id, u.now().UTC())
	if err != nil {
		if errors.Is(err, interfaces.ErrStateConflict) {
			return entities.Proposal{}, "", ErrProposalState
		}
		return entities.Proposal{}, "", err
	}
	log.Printf("[proposal][usecase] sent proposal_id=%s jti=%s token_exp=%s", updated.ID, claims.JTI, claims.ExpiresAt.Format(time.RFC3339))
	return updated, token, nil
}

// View records the customer opening the approval page. The token is checked
// but not consumed; re-opening an already viewed proposal is a no-op success.
func (u *ProposalUseCase) View(ctx context.Context, id, token string) (entities.Proposal, error) {
	claims, err := u.verifyBoundToken(ctx, id, token)
	if err != nil {
		return entities.Proposal{}, err
	}

	p, err := u.load(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p, err = u.expireIfElapsed(ctx, p); err != nil {
		return entities.Proposal{}, err
	}

	switch p.Status {
	case entities.ProposalStatusSent:
		updated, err := u.repo.MarkViewed(ctx, id, u.now().UTC())
		if err != nil {
			if errors.Is(err, interfaces.ErrStateConflict) {
				// Lost a concurrent view race; the stamp is already there.
				return u.load(ctx, id)
			}
			return entities.Proposal{}, err
		}
		log.Printf("[proposal][usecase] viewed proposal_id=%s jti=%s", updated.ID, claims.JTI)
		return updated, nil
	case entities.ProposalStatusViewed, entities.ProposalStatusAccepted, entities.ProposalStatusPaid:
		return p, nil
	case entities.ProposalStatusExpired:
		return entities.Proposal{}, ErrProposalExpired
	default:
		return entities.Proposal{}, ErrProposalState
	}
}

// Accept performs the full consumption ordering: verify signature and expiry,
// confirm the token is bound to this proposal, check the used-token ledger,
// then commit the status transition and the used-token insert atomically.
// Only the request that wins the used-token insert mutates status.
func (u *ProposalUseCase) Accept(ctx context.Context, id, token, fullName string, consent bool) (AcceptResult, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return AcceptResult{}, ErrAcceptNameRequired
	}
	if !consent {
		return AcceptResult{}, ErrConsentRequired
	}

	claims, err := u.verifyBoundToken(ctx, id, token)
	if err != nil {
		return AcceptResult{}, err
	}

	p, err := u.load(ctx, id)
	if err != nil {
		return AcceptResult{}, err
	}
	if p, err = u.expireIfElapsed(ctx, p); err != nil {
		return AcceptResult{}, err
	}
	if p.Status == entities.ProposalStatusExpired {
		return AcceptResult{}, ErrProposalExpired
	}
	if p.Status != entities.ProposalStatusSent && p.Status != entities.ProposalStatusViewed {
		log.Printf("[proposal][usecase] accept rejected proposal_id=%s status=%s", p.ID, p.Status)
		return AcceptResult{}, ErrProposalState
	}

	accepted, err := u.repo.AcceptWithToken(ctx, id, claims.JTI, fullName, u.now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, interfaces.ErrTokenAlreadyUsed):
			log.Printf("[proposal][usecase] accept lost token race proposal_id=%s jti=%s", id, claims.JTI)
			return AcceptResult{}, interfaces.ErrTokenAlreadyUsed
		case errors.Is(err, interfaces.ErrStateConflict):
			return AcceptResult{}, ErrProposalState
		}
		return AcceptResult{}, err
	}
	log.Printf("[proposal][usecase] accepted proposal_id=%s by=%q jti=%s", accepted.ID, fullName, claims.JTI)

	result := AcceptResult{Proposal: accepted}
	if accepted.Totals.DepositAmount <= 0 || u.gateway == nil {
		return result, nil
	}

	// Deposit collection is asynchronous by policy: acceptance already
	// committed, so a gateway failure is logged and surfaced as a missing
	// redirect, never as a rolled-back accept.
	session, err := u.gateway.CreatePaymentSession(ctx, accepted.ID, accepted.Totals.DepositAmount, u.cfg.Currency)
	if err != nil {
		log.Printf("[proposal][usecase] payment initiation failed proposal_id=%s err=%v", accepted.ID, err)
		return result, nil
	}

	withSession, err := u.repo.AttachPaymentSession(ctx, accepted.ID, session.Reference, u.now().UTC())
	if err != nil {
		log.Printf("[proposal][usecase] payment session attach failed proposal_id=%s session=%s err=%v", accepted.ID, session.Reference, err)
		withSession = accepted
	}

	result.Proposal = withSession
	result.PaymentInitiated = true
	result.PaymentReference = session.Reference
	result.PaymentRedirect = session.RedirectURL
	log.Printf("[proposal][usecase] payment session created proposal_id=%s session=%s", accepted.ID, session.Reference)
	return result, nil
}

// ConfirmPayment advances accepted -> paid from the provider's confirmation
// event. It is never inferred client-side. A replayed or premature event is
// rejected with ErrProposalState, not silently re-processed.
func (u *ProposalUseCase) ConfirmPayment(ctx context.Context, id string, amount float64, paymentRef string) (entities.Proposal, error) {
	if amount <= 0 || strings.TrimSpace(paymentRef) == "" {
		return entities.Proposal{}, ErrInvalidPaymentEvent
	}
	p, err := u.load(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.Status != entities.ProposalStatusAccepted {
		log.Printf("[proposal][usecase] payment confirmation rejected proposal_id=%s status=%s ref=%s", p.ID, p.Status, paymentRef)
		return entities.Proposal{}, ErrProposalState
	}

	updated, err := u.repo.MarkPaid(ctx, id, u.now().UTC(), amount, paymentRef)
	if err != nil {
		if errors.Is(err, interfaces.ErrStateConflict) {
			return entities.Proposal{}, ErrProposalState
		}
		return entities.Proposal{}, err
	}
	log.Printf("[proposal][usecase] paid proposal_id=%s amount=%.2f ref=%s", updated.ID, amount, paymentRef)
	return updated, nil
}

// Cancel is the operator's terminal branch from any pre-paid state.
func (u *ProposalUseCase) Cancel(ctx context.Context, id string) (entities.Proposal, error) {
	p, err := u.load(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if !p.Status.CanTransitionTo(entities.ProposalStatusCancelled) {
		return entities.Proposal{}, ErrProposalState
	}

	updated, err := u.repo.Cancel(ctx, id, u.now().UTC())
	if err != nil {
		if errors.Is(err, interfaces.ErrStateConflict) {
			return entities.Proposal{}, ErrProposalState
		}
		return entities.Proposal{}, err
	}
	log.Printf("[proposal][usecase] cancelled proposal_id=%s", updated.ID)
	return updated, nil
}

func (u *ProposalUseCase) load(ctx context.Context, id string) (entities.Proposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return p, nil
}

// expireIfElapsed applies the 30-day validity window lazily; there is no
// in-process timer. Losing the conditional write to a concurrent request is
// fine, the proposal is expired either way.
func (u *ProposalUseCase) expireIfElapsed(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	if !p.Expirable(u.now().UTC()) {
		return p, nil
	}
	updated, err := u.repo.MarkExpired(ctx, p.ID, u.now().UTC())
	if err != nil && !errors.Is(err, interfaces.ErrStateConflict) {
		return entities.Proposal{}, err
	}
	if updated.ID != "" {
		p = updated
	} else {
		p.Status = entities.ProposalStatusExpired
	}
	log.Printf("[proposal][usecase] expired proposal_id=%s", p.ID)
	return p, nil
}

// verifyBoundToken runs steps 1-3 of the consumption ordering. Step 4
// (markUsed) only happens inside the accept transaction.
func (u *ProposalUseCase) verifyBoundToken(ctx context.Context, id, token string) (interfaces.ApprovalClaims, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return interfaces.ApprovalClaims{}, ErrInvalidProposalID
	}
	claims, err := u.manager.Verify(token)
	if err != nil {
		return interfaces.ApprovalClaims{}, err
	}
	if claims.ProposalID != id {
		log.Printf("[proposal][usecase] token bound to other proposal path_id=%s token_pid=%s", id, claims.ProposalID)
		return interfaces.ApprovalClaims{}, ErrTokenProposalMismatch
	}
	used, err := u.tokens.IsUsed(ctx, claims.ProposalID, claims.JTI)
	if err != nil {
		return interfaces.ApprovalClaims{}, err
	}
	if used {
		return interfaces.ApprovalClaims{}, interfaces.ErrTokenAlreadyUsed
	}
	return claims, nil
}
