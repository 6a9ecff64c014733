package shells

import (
	"math/rand"
	"strconv"
)

// GiftConfig tunes the free-gift distribution. The numbers kept changing
// during balancing, so callers inject them instead of reading constants.
type GiftConfig struct {
	// InspirationChance is the percentage (0-100) of draws that award
	// inspiration instead of shells.
	InspirationChance int
	ShellsAmount      uint64
	InspirationAmount uint64
}

// DefaultGiftConfig matches the documented distribution: one draw in four
// finds a squid, the rest find a handful of shells.
var DefaultGiftConfig = GiftConfig{
	InspirationChance: 25,
	ShellsAmount:      5,
	InspirationAmount: 1,
}

// RollOutcome describes one dice roll. Rejected rolls leave the state
// untouched.
type RollOutcome struct {
	Rejected   bool
	Bet        uint64
	Multiplier uint64
	Winnings   uint64
}

// SetStatus classifies a set-bet attempt. Failures are ordinary values the
// message layer renders, not errors.
type SetStatus int

const (
	SetOK SetStatus = iota
	SetParseFailure
	SetOverBank
)

// SetOutcome describes a set-bet attempt.
type SetOutcome struct {
	Status SetStatus
	Bet    uint64
}

// GiftOutcome describes a free-gift draw. Exactly one field is nonzero.
type GiftOutcome struct {
	Shells      uint64
	Inspiration uint64
}

// BragOutcome describes a proof request. Granted implies one inspiration
// was consumed and Phrase carries the proof.
type BragOutcome struct {
	Granted bool
	Phrase  string
	Bank    uint64
}

// RecallOutcome describes a recall attempt. Accepted implies the bank was
// reset to Amount.
type RecallOutcome struct {
	Accepted bool
	Phrase   string
	Amount   uint64
}

// Roll settles the current bet against a uniform multiplier in {0,1,2,3}.
// Over-bank bets are rejected without mutation. After settlement the bet is
// clamped to the new bank so a shrunken bank never carries a stale bet.
func Roll(s GameState, rng *rand.Rand) (GameState, RollOutcome) {
	if s.Bet > s.Bank {
		return s, RollOutcome{Rejected: true, Bet: s.Bet}
	}

	bet := s.Bet
	multiplier := uint64(rng.Intn(4))
	winnings := multiplier * bet
	s.Bank = s.Bank - bet + winnings
	if s.Bet > s.Bank {
		s.Bet = s.Bank
	}

	return s, RollOutcome{
		Bet:        bet,
		Multiplier: multiplier,
		Winnings:   winnings,
	}
}

// SetBet replaces the bet with a user-submitted amount. The raw string must
// parse as a base-10 non-negative integer no larger than the bank.
func SetBet(s GameState, raw string) (GameState, SetOutcome) {
	amount, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return s, SetOutcome{Status: SetParseFailure}
	}
	if amount > s.Bank {
		return s, SetOutcome{Status: SetOverBank}
	}

	s.Bet = amount
	return s, SetOutcome{Status: SetOK, Bet: amount}
}

// Gift draws from the weighted two-outcome distribution and applies exactly
// one of the two additions.
func Gift(s GameState, cfg GiftConfig, rng *rand.Rand) (GameState, GiftOutcome) {
	if rng.Intn(100) < cfg.InspirationChance {
		s.Inspiration += cfg.InspirationAmount
		return s, GiftOutcome{Inspiration: cfg.InspirationAmount}
	}

	s.Bank += cfg.ShellsAmount
	return s, GiftOutcome{Shells: cfg.ShellsAmount}
}

// Brag consumes one inspiration to mint a proof of the current bank for the
// invoking user. With no inspiration the state is untouched and the refusal
// is reported as a value.
func Brag(s GameState, salt, userID string) (GameState, BragOutcome) {
	if s.Inspiration == 0 {
		return s, BragOutcome{}
	}

	s.Inspiration--
	phrase := Proof(salt, userID, strconv.FormatUint(s.Bank, 10))
	return s, BragOutcome{Granted: true, Phrase: phrase, Bank: s.Bank}
}

// Recall rolls the bank back to a previously proven amount. The claim is
// accepted only when the presented phrase matches the recomputed proof for
// this user and the claim parses as an integer; the commitment is the sole
// integrity check, there is no ledger behind it.
func Recall(s GameState, salt, userID, claim, phrase string) (GameState, RecallOutcome) {
	amount, parseErr := strconv.ParseUint(claim, 10, 64)
	if !VerifyProof(salt, userID, claim, phrase) || parseErr != nil {
		return s, RecallOutcome{Phrase: phrase}
	}

	s.Bank = amount
	return s, RecallOutcome{Accepted: true, Phrase: phrase, Amount: amount}
}
