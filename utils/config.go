package utils

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all process-wide settings. It is loaded once at startup and
// only ever read after that; concurrent requests share it freely.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// Hex-encoded application public key used to verify interaction
	// signatures.
	PublicKeyHex string `env:"SHELLS_PUBLIC_KEY,required"`

	// Secret salt for Sselvish proofs. Never logged, never transmitted.
	Salt string `env:"SHELLS_GAMBLING_SALT,required"`

	// Free-gift tunables. These moved around a lot while balancing the
	// game, so they live in the environment rather than in code.
	GiftInspirationChance int    `env:"SHELLS_GIFT_INSPIRATION_CHANCE" envDefault:"25"`
	GiftShellsAmount      uint64 `env:"SHELLS_GIFT_SHELLS_AMOUNT" envDefault:"5"`
	GiftInspirationAmount uint64 `env:"SHELLS_GIFT_INSPIRATION_AMOUNT" envDefault:"1"`

	publicKey ed25519.PublicKey
}

// LoadConfig parses the environment into a Config and decodes the public key.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	key, err := hex.DecodeString(cfg.PublicKeyHex)
	if err != nil {
		return nil, fmt.Errorf("SHELLS_PUBLIC_KEY is not valid hex: %w", err)
	}
	if len(key) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("SHELLS_PUBLIC_KEY must be %d bytes, got %d", ed25519.PublicKeySize, len(key))
	}
	cfg.publicKey = ed25519.PublicKey(key)

	if cfg.GiftInspirationChance < 0 || cfg.GiftInspirationChance > 100 {
		return nil, fmt.Errorf("SHELLS_GIFT_INSPIRATION_CHANCE must be 0-100, got %d", cfg.GiftInspirationChance)
	}

	return cfg, nil
}

// PublicKey returns the decoded verification key.
func (c *Config) PublicKey() ed25519.PublicKey {
	return c.publicKey
}
