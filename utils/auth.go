package utils

import (
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Authentication failures, in the order they are checked. The HTTP layer
// maps these to status codes; none of them ever produce a chat response.
var (
	ErrMalformedHeaders = errors.New("malformed signature headers")
	ErrBadSignature     = errors.New("signature verification failed")
	ErrBadPayload       = errors.New("request body is not a valid interaction")
)

// Authenticate verifies that rawBody was signed by the holder of key over
// timestamp++rawBody, then parses the body into an interaction. It is a pure
// boundary check: no side effects, and it must run before any dispatch.
func Authenticate(rawBody []byte, timestamp, signature string, key ed25519.PublicKey) (*discordgo.Interaction, error) {
	if timestamp == "" || signature == "" {
		return nil, fmt.Errorf("%w: missing timestamp or signature", ErrMalformedHeaders)
	}

	sig, err := hex.DecodeString(signature)
	if err != nil {
		return nil, fmt.Errorf("%w: signature is not hex: %v", ErrMalformedHeaders, err)
	}
	if len(sig) != ed25519.SignatureSize {
		return nil, fmt.Errorf("%w: signature is %d bytes, want %d", ErrMalformedHeaders, len(sig), ed25519.SignatureSize)
	}

	msg := make([]byte, 0, len(timestamp)+len(rawBody))
	msg = append(msg, timestamp...)
	msg = append(msg, rawBody...)

	if !ed25519.Verify(key, msg, sig) {
		return nil, ErrBadSignature
	}

	var interaction discordgo.Interaction
	if err := json.Unmarshal(rawBody, &interaction); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}

	return &interaction, nil
}
