package utils

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
)

func signedRequest(t *testing.T, priv ed25519.PrivateKey, timestamp, body string) string {
	t.Helper()
	sig := ed25519.Sign(priv, []byte(timestamp+body))
	return hex.EncodeToString(sig)
}

func testKeyPair(t *testing.T) (ed25519.PublicKey, ed25519.PrivateKey) {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}
	return pub, priv
}

func TestAuthenticateSuccess(t *testing.T) {
	pub, priv := testKeyPair(t)
	body := `{"id":"1","type":1}`
	timestamp := "1700000000"

	interaction, err := Authenticate([]byte(body), timestamp, signedRequest(t, priv, timestamp, body), pub)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if interaction.Type != discordgo.InteractionPing {
		t.Errorf("expected ping interaction, got type %d", interaction.Type)
	}
}

func TestAuthenticateBadSignature(t *testing.T) {
	pub, priv := testKeyPair(t)
	body := `{"id":"1","type":1}`

	// Signed over a different timestamp than the one presented.
	sig := signedRequest(t, priv, "1700000000", body)
	_, err := Authenticate([]byte(body), "1700000001", sig, pub)
	if !errors.Is(err, ErrBadSignature) {
		t.Errorf("expected ErrBadSignature, got %v", err)
	}

	// Signed with a different key entirely.
	_, otherPriv := testKeyPair(t)
	sig = signedRequest(t, otherPriv, "1700000000", body)
	_, err = Authenticate([]byte(body), "1700000000", sig, pub)
	if !errors.Is(err, ErrBadSignature) {
		t.Errorf("expected ErrBadSignature, got %v", err)
	}
}

func TestAuthenticateMalformedHeaders(t *testing.T) {
	pub, priv := testKeyPair(t)
	body := `{"id":"1","type":1}`
	good := signedRequest(t, priv, "1700000000", body)

	cases := []struct {
		name      string
		timestamp string
		signature string
	}{
		{"missing timestamp", "", good},
		{"missing signature", "1700000000", ""},
		{"non-hex signature", "1700000000", "not hex at all"},
		{"truncated signature", "1700000000", good[:16]},
	}

	for _, tc := range cases {
		if _, err := Authenticate([]byte(body), tc.timestamp, tc.signature, pub); !errors.Is(err, ErrMalformedHeaders) {
			t.Errorf("%s: expected ErrMalformedHeaders, got %v", tc.name, err)
		}
	}
}

func TestAuthenticateBadPayload(t *testing.T) {
	pub, priv := testKeyPair(t)
	body := "not json formatted"
	timestamp := "1700000000"

	_, err := Authenticate([]byte(body), timestamp, signedRequest(t, priv, timestamp, body), pub)
	if !errors.Is(err, ErrBadPayload) {
		t.Errorf("expected ErrBadPayload, got %v", err)
	}
}

func TestAuthenticateRejectsBeforeParsing(t *testing.T) {
	pub, _ := testKeyPair(t)
	_, badPriv := testKeyPair(t)

	// A perfectly valid body must still be rejected on signature alone.
	body := `{"id":"1","type":2,"data":{"name":"shells"}}`
	sig := signedRequest(t, badPriv, "1700000000", body)

	_, err := Authenticate([]byte(body), "1700000000", sig, pub)
	if !errors.Is(err, ErrBadSignature) {
		t.Errorf("expected ErrBadSignature regardless of body content, got %v", err)
	}
}
