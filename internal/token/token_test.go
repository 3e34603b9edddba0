package token_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"task-tracker-api/internal/domain"
	"task-tracker-api/internal/token"
)

const testSecret = "token-test-secret-at-least-32-chars!"

func TestIssueVerify_RoundTrip(t *testing.T) {
	iss := token.NewIssuer([]byte(testSecret), token.DefaultTTL)

	signed, err := iss.Issue("user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	got, err := iss.Verify(signed)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if got != "user-1" {
		t.Errorf("subject = %q, want %q", got, "user-1")
	}
}

func TestVerify_SubjectIsPreserved(t *testing.T) {
	iss := token.NewIssuer([]byte(testSecret), token.DefaultTTL)

	tokenA, err := iss.Issue("user-a")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	got, err := iss.Verify(tokenA)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if got == "user-b" {
		t.Error("token for user-a verified as user-b")
	}
}

func TestVerify_DifferentSecret_Rejected(t *testing.T) {
	iss := token.NewIssuer([]byte(testSecret), token.DefaultTTL)
	other := token.NewIssuer([]byte("a-completely-different-32-char-key!!"), token.DefaultTTL)

	signed, err := other.Issue("user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := iss.Verify(signed); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("want ErrTokenInvalid, got %v", err)
	}
}

func TestVerify_Malformed_Rejected(t *testing.T) {
	iss := token.NewIssuer([]byte(testSecret), token.DefaultTTL)

	for _, raw := range []string{"", "not.a.jwt", "garbage"} {
		if _, err := iss.Verify(raw); !errors.Is(err, domain.ErrTokenInvalid) {
			t.Errorf("Verify(%q): want ErrTokenInvalid, got %v", raw, err)
		}
	}
}

func TestVerify_NonHMACAlgorithm_Rejected(t *testing.T) {
	iss := token.NewIssuer([]byte(testSecret), token.DefaultTTL)

	// alg=none tokens must never pass.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := iss.Verify(raw); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("want ErrTokenInvalid, got %v", err)
	}
}

func TestVerify_MissingSubject_Rejected(t *testing.T) {
	iss := token.NewIssuer([]byte(testSecret), token.DefaultTTL)

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := iss.Verify(raw); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("want ErrTokenInvalid, got %v", err)
	}
}

// Expiry boundary: a token one second inside the 30-day window verifies,
// one second past it does not.
func TestVerify_ExpiryBoundary(t *testing.T) {
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	iss := token.NewIssuer([]byte(testSecret), token.DefaultTTL).
		WithClock(func() time.Time { return issuedAt })

	signed, err := iss.Issue("user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	justBefore := iss.WithClock(func() time.Time {
		return issuedAt.Add(token.DefaultTTL - time.Second)
	})
	if _, err := justBefore.Verify(signed); err != nil {
		t.Errorf("token inside window rejected: %v", err)
	}

	justAfter := iss.WithClock(func() time.Time {
		return issuedAt.Add(token.DefaultTTL + time.Second)
	})
	if _, err := justAfter.Verify(signed); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("token past window accepted, err = %v", err)
	}
}
