package token

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/usecase/interfaces"
)

const testSecret = "unit-test-secret"

func TestJWTManager_IssueAndVerify(t *testing.T) {
	m := NewJWTManager(testSecret, time.Hour)

	signed, claims, err := m.Issue("prop-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.ProposalID != "prop-1" || claims.JTI == "" {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	verified, err := m.Verify(signed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if verified.ProposalID != "prop-1" || verified.JTI != claims.JTI {
		t.Fatalf("verified claims do not match issued claims: %+v vs %+v", verified, claims)
	}
	if !verified.ExpiresAt.Equal(claims.ExpiresAt) {
		t.Fatalf("expected expiry %v, got %v", claims.ExpiresAt, verified.ExpiresAt)
	}
}

func TestJWTManager_IssueRequiresProposalID(t *testing.T) {
	m := NewJWTManager(testSecret, time.Hour)
	if _, _, err := m.Issue(""); err == nil {
		t.Fatalf("expected error for empty proposal id")
	}
}

func TestJWTManager_TokensAreUnique(t *testing.T) {
	m := NewJWTManager(testSecret, time.Hour)

	_, first, err := m.Issue("prop-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, second, err := m.Issue("prop-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.JTI == second.JTI {
		t.Fatalf("expected distinct jti per issue")
	}
}

func TestJWTManager_VerifyFailures(t *testing.T) {
	m := NewJWTManager(testSecret, time.Hour)

	t.Run("garbage token", func(t *testing.T) {
		_, err := m.Verify("not-a-token")
		if !errors.Is(err, interfaces.ErrTokenInvalid) {
			t.Fatalf("expected ErrTokenInvalid, got %v", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTManager("other-secret", time.Hour)
		signed, _, err := other.Issue("prop-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := m.Verify(signed); !errors.Is(err, interfaces.ErrTokenInvalid) {
			t.Fatalf("expected ErrTokenInvalid, got %v", err)
		}
	})

	t.Run("tampered payload", func(t *testing.T) {
		signed, _, err := m.Issue("prop-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		parts := strings.Split(signed, ".")
		parts[1] = strings.Repeat("A", len(parts[1]))
		if _, err := m.Verify(strings.Join(parts, ".")); !errors.Is(err, interfaces.ErrTokenInvalid) {
			t.Fatalf("expected ErrTokenInvalid, got %v", err)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		past := time.Now().Add(-2 * time.Hour)
		stale := NewJWTManagerAt(testSecret, time.Hour, func() time.Time { return past })
		signed, _, err := stale.Issue("prop-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := m.Verify(signed); !errors.Is(err, interfaces.ErrTokenExpired) {
			t.Fatalf("expected ErrTokenExpired, got %v", err)
		}
	})
}
