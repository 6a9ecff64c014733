// Package deedee serves the /deedee command. It implements only Invoke, so
// any stray component or modal traffic routed its way falls back to the
// same reply.
package deedee

import (
	"github.com/bwmarrin/discordgo"

	"shells-go/utils"
)

// Handler answers every deedee interaction the only way it knows how.
type Handler struct{}

// New creates the deedee handler.
func New() *Handler {
	return &Handler{}
}

// Invoke replies with the catchphrase.
func (h *Handler) Invoke(_ *discordgo.Interaction) *discordgo.InteractionResponse {
	return utils.PlainMessage("mega doo doo")
}
