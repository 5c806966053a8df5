package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

const testSecret = "super-secret-signing-key"

// ---- Round trip ---------------------------------------------------------

func TestTokenCodec_RoundTrip(t *testing.T) {
	codec := NewTokenCodec(testSecret, 0)

	credential := codec.Issue(42)
	id, err := codec.Verify(credential)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if id != 42 {
		t.Errorf("expected user id 42, got %d", id)
	}
}

func TestTokenCodec_DistinctUsersDistinctCredentials(t *testing.T) {
	codec := NewTokenCodec(testSecret, 0)

	if codec.Issue(1) == codec.Issue(2) {
		t.Error("credentials for different users must differ")
	}
}

// ---- Tampering ----------------------------------------------------------

func TestTokenCodec_TamperedPayload(t *testing.T) {
	codec := NewTokenCodec(testSecret, 0)

	credential := codec.Issue(42)
	other := codec.Issue(7)
	// Splice another user's payload onto the original signature.
	forged := other[:strings.LastIndexByte(other, '.')] + credential[strings.LastIndexByte(credential, '.'):]

	if _, err := codec.Verify(forged); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for forged payload, got: %v", err)
	}
}

func TestTokenCodec_WrongSecret(t *testing.T) {
	issuer := NewTokenCodec(testSecret, 0)
	verifier := NewTokenCodec("some-other-secret", 0)

	if _, err := verifier.Verify(issuer.Issue(42)); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken across secrets, got: %v", err)
	}
}

func TestTokenCodec_Garbage(t *testing.T) {
	codec := NewTokenCodec(testSecret, 0)

	for _, credential := range []string{"", ".", "abc", "abc.", ".def", "not-base64!.deadbeef"} {
		if _, err := codec.Verify(credential); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Verify(%q): expected ErrInvalidToken, got: %v", credential, err)
		}
	}
}

// ---- Expiry -------------------------------------------------------------

func TestTokenCodec_Expired(t *testing.T) {
	codec := NewTokenCodec(testSecret, 10*time.Minute)

	issued := time.Now()
	codec.now = func() time.Time { return issued }
	credential := codec.Issue(42)

	codec.now = func() time.Time { return issued.Add(11 * time.Minute) }
	if _, err := codec.Verify(credential); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for expired credential, got: %v", err)
	}
}

func TestTokenCodec_WithinMaxAge(t *testing.T) {
	codec := NewTokenCodec(testSecret, 10*time.Minute)

	issued := time.Now()
	codec.now = func() time.Time { return issued }
	credential := codec.Issue(42)

	codec.now = func() time.Time { return issued.Add(9 * time.Minute) }
	if _, err := codec.Verify(credential); err != nil {
		t.Errorf("expected credential still valid, got: %v", err)
	}
}

func TestTokenCodec_ZeroMaxAge_SkipsExpiryCheck(t *testing.T) {
	codec := NewTokenCodec(testSecret, 0)

	issued := time.Now().Add(-48 * time.Hour)
	codec.now = func() time.Time { return issued }
	credential := codec.Issue(42)

	codec.now = time.Now
	if _, err := codec.Verify(credential); err != nil {
		t.Errorf("expected no expiry check with maxAge=0, got: %v", err)
	}
}
