// Package shells implements the shell game: a stateless in-chat economy
// where the rendered message text is the only storage medium.
package shells

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Stat labels and suffixes. Bank and inspiration share a label and are told
// apart by suffix alone, so decoding must always anchor on both ends.
const (
	bankLabel  = "You have:"
	bankSuffix = ":shell:s"
	betLabel   = "You are betting:"
	betSuffix  = ":shell:s"
	inspLabel  = "You have:"
	inspSuffix = ":squid:s"
)

var (
	bankPattern = statPattern(bankLabel, bankSuffix)
	betPattern  = statPattern(betLabel, betSuffix)
	inspPattern = statPattern(inspLabel, inspSuffix)
)

func statPattern(label, suffix string) *regexp.Regexp {
	return regexp.MustCompile(regexp.QuoteMeta(label) + ` ([0-9]+) ` + regexp.QuoteMeta(suffix))
}

// GameState is the full per-player state. It lives only for the duration of
// one request: decoded from the previous message, mutated by exactly one
// rules call, and immediately rendered back out.
type GameState struct {
	Bank        uint64
	Bet         uint64
	Inspiration uint64
}

// Encode renders the state as the stat block shown to the player. This text
// doubles as the persistence format.
func (s GameState) Encode() string {
	return fmt.Sprintf("%s\n%s\n%s\n",
		formatStat(bankLabel, s.Bank, bankSuffix),
		formatStat(betLabel, s.Bet, betSuffix),
		formatStat(inspLabel, s.Inspiration, inspSuffix),
	)
}

func formatStat(label string, n uint64, suffix string) string {
	return strings.Join([]string{label, strconv.FormatUint(n, 10), suffix}, " ")
}

// DecodeState recovers a GameState from arbitrary message text. Each field
// is matched independently; anything missing or unparseable falls back to
// zero, never to an error, so truncated or concatenated messages degrade
// instead of breaking the game.
func DecodeState(text string) GameState {
	return GameState{
		Bank:        recognizeStat(text, bankPattern),
		Bet:         recognizeStat(text, betPattern),
		Inspiration: recognizeStat(text, inspPattern),
	}
}

func recognizeStat(text string, pattern *regexp.Regexp) uint64 {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	n, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return 0
	}
	return n
}
