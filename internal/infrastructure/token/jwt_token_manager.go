package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

// approvalClaims is the wire shape of an approval token: the bound proposal
// id plus the standard jti/exp/iat registered claims.
type approvalClaims struct {
	jwt.StandardClaims
	ProposalID string `json:"pid"`
}

// JWTManager signs approval tokens with HMAC-SHA256. It implements the
// IApprovalTokenManager capability so the primitive stays swappable.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

var _ interfaces.IApprovalTokenManager = (*JWTManager)(nil)

func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	return &JWTManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// NewJWTManagerAt pins the manager's clock. Test seam.
func NewJWTManagerAt(secret string, ttl time.Duration, now func() time.Time) *JWTManager {
	return &JWTManager{secret: []byte(secret), ttl: ttl, now: now}
}

func (m *JWTManager) Issue(proposalID string) (string, interfaces.ApprovalClaims, error) {
	if proposalID == "" {
		return "", interfaces.ApprovalClaims{}, errors.New("proposal id is required to issue a token")
	}

	now := m.now().UTC()
	claims := approvalClaims{
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.NewString(),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(m.ttl).Unix(),
		},
		ProposalID: proposalID,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", interfaces.ApprovalClaims{}, err
	}
	return signed, interfaces.ApprovalClaims{
		ProposalID: proposalID,
		JTI:        claims.Id,
		ExpiresAt:  time.Unix(claims.ExpiresAt, 0).UTC(),
	}, nil
}

func (m *JWTManager) Verify(tokenString string) (interfaces.ApprovalClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &approvalClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		var vErr *jwt.ValidationError
		if errors.As(err, &vErr) && vErr.Errors&jwt.ValidationErrorExpired != 0 {
			return interfaces.ApprovalClaims{}, interfaces.ErrTokenExpired
		}
		return interfaces.ApprovalClaims{}, interfaces.ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*approvalClaims)
	if !ok || !parsed.Valid || claims.ProposalID == "" || claims.Id == "" {
		return interfaces.ApprovalClaims{}, interfaces.ErrTokenInvalid
	}

	return interfaces.ApprovalClaims{
		ProposalID: claims.ProposalID,
		JTI:        claims.Id,
		ExpiresAt:  time.Unix(claims.ExpiresAt, 0).UTC(),
	}, nil
}
