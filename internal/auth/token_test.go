package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tiago154/fast-zero/internal/auth"
)

const testSecret = "token-test-secret-at-least-32-chars!!"

var testEpoch = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

// fixedClock returns a codec whose clock is pinned to testEpoch plus offset.
func fixedClock(offset time.Duration) auth.CodecOption {
	return auth.WithClock(func() time.Time { return testEpoch.Add(offset) })
}

func TestCodec_RoundTrip(t *testing.T) {
	codec := auth.NewCodec([]byte(testSecret), 30*time.Minute, fixedClock(0))

	raw, err := codec.Issue("alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := codec.Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if claims.Subject != "alice" {
		t.Errorf("subject = %q, want %q", claims.Subject, "alice")
	}
	if !claims.ExpiresAt.Equal(testEpoch.Add(30 * time.Minute)) {
		t.Errorf("expiry = %v, want issuance + ttl", claims.ExpiresAt)
	}
}

func TestCodec_ExpiredToken(t *testing.T) {
	issuer := auth.NewCodec([]byte(testSecret), 30*time.Minute, fixedClock(0))
	raw, err := issuer.Issue("alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Same secret, clock advanced 31 minutes.
	verifier := auth.NewCodec([]byte(testSecret), 30*time.Minute, fixedClock(31*time.Minute))
	if _, err := verifier.Decode(raw); !errors.Is(err, auth.ErrTokenExpired) {
		t.Errorf("decode at +31m: got %v, want ErrTokenExpired", err)
	}

	// Still valid one minute before expiry.
	verifier = auth.NewCodec([]byte(testSecret), 30*time.Minute, fixedClock(29*time.Minute))
	if _, err := verifier.Decode(raw); err != nil {
		t.Errorf("decode at +29m: unexpected error %v", err)
	}
}

func TestCodec_ForeignSecret(t *testing.T) {
	issuer := auth.NewCodec([]byte("a-different-secret-32-chars-long!!!"), 30*time.Minute, fixedClock(0))
	raw, err := issuer.Issue("alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	codec := auth.NewCodec([]byte(testSecret), 30*time.Minute, fixedClock(0))
	if _, err := codec.Decode(raw); !errors.Is(err, auth.ErrTokenSignature) {
		t.Errorf("got %v, want ErrTokenSignature", err)
	}
}

func TestCodec_AlgorithmIsPinned(t *testing.T) {
	// HS384 is a perfectly valid HMAC algorithm signed with the right
	// secret; decoding must still refuse it because HS256 is pinned.
	token := jwt.NewWithClaims(jwt.SigningMethodHS384, jwt.MapClaims{
		"sub": "alice",
		"exp": testEpoch.Add(time.Hour).Unix(),
	})
	raw, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	codec := auth.NewCodec([]byte(testSecret), 30*time.Minute, fixedClock(0))
	if _, err := codec.Decode(raw); !errors.Is(err, auth.ErrTokenSignature) {
		t.Errorf("got %v, want ErrTokenSignature", err)
	}
}

func TestCodec_MalformedInput(t *testing.T) {
	codec := auth.NewCodec([]byte(testSecret), 30*time.Minute, fixedClock(0))

	for _, raw := range []string{"", "garbage", "a.b", "a.b.c"} {
		if _, err := codec.Decode(raw); !errors.Is(err, auth.ErrTokenMalformed) {
			t.Errorf("Decode(%q): got %v, want ErrTokenMalformed", raw, err)
		}
	}
}

func TestCodec_MissingSubject(t *testing.T) {
	codec := auth.NewCodec([]byte(testSecret), 30*time.Minute, fixedClock(0))

	for _, claims := range []jwt.MapClaims{
		{"exp": testEpoch.Add(time.Hour).Unix()},
		{"sub": "", "exp": testEpoch.Add(time.Hour).Unix()},
	} {
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		if _, err := codec.Decode(raw); !errors.Is(err, auth.ErrTokenMalformed) {
			t.Errorf("claims %v: got %v, want ErrTokenMalformed", claims, err)
		}
	}
}

func TestCodec_TamperedPayload(t *testing.T) {
	codec := auth.NewCodec([]byte(testSecret), 30*time.Minute, fixedClock(0))

	raw, err := codec.Issue("alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Flip a character in the payload segment; the signature no longer matches.
	tampered := []byte(raw)
	mid := len(tampered) / 2
	if tampered[mid] == 'A' {
		tampered[mid] = 'B'
	} else {
		tampered[mid] = 'A'
	}

	if _, err := codec.Decode(string(tampered)); err == nil {
		t.Error("tampered token decoded successfully")
	}
}
