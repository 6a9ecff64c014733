package utils

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Handler is the entry point every command implements: it answers the slash
// command invocation itself.
type Handler interface {
	Invoke(i *discordgo.Interaction) *discordgo.InteractionResponse
}

// Reactor is implemented by handlers that respond to button presses on
// their own messages. Handlers without it fall back to Invoke.
type Reactor interface {
	React(i *discordgo.Interaction) *discordgo.InteractionResponse
}

// Submitter is implemented by handlers that accept modal submissions.
// Handlers without it fall back to Invoke.
type Submitter interface {
	Submit(i *discordgo.Interaction) *discordgo.InteractionResponse
}

// Router maps command names to handlers. Component and modal interactions
// carry no command name of their own, so they are routed to the handler
// owning the message they were attached to.
type Router struct {
	handlers map[string]Handler
	fallback Handler
}

// NewRouter creates a router with the default "unrecognized" fallback.
func NewRouter() *Router {
	return &Router{
		handlers: make(map[string]Handler),
		fallback: unrecognizedHandler{},
	}
}

// Register binds a command name to a handler.
func (r *Router) Register(name string, h Handler) {
	r.handlers[name] = h
}

// Dispatch routes one interaction to its handler and returns the response.
// Every arm resolves to some handler; unknown names and malformed routing
// data land on the fallback rather than panicking.
func (r *Router) Dispatch(i *discordgo.Interaction) *discordgo.InteractionResponse {
	switch i.Type {
	case discordgo.InteractionPing:
		return Pong()

	case discordgo.InteractionApplicationCommand:
		return r.lookup(i.ApplicationCommandData().Name).Invoke(i)

	case discordgo.InteractionMessageComponent:
		h := r.lookup(messageOwner(i))
		if reactor, ok := h.(Reactor); ok {
			return reactor.React(i)
		}
		return h.Invoke(i)

	case discordgo.InteractionModalSubmit:
		h := r.lookup(messageOwner(i))
		if submitter, ok := h.(Submitter); ok {
			return submitter.Submit(i)
		}
		return h.Invoke(i)

	default:
		return r.fallback.Invoke(i)
	}
}

func (r *Router) lookup(name string) Handler {
	if h, ok := r.handlers[name]; ok {
		return h
	}
	return r.fallback
}

// messageOwner returns the name of the command that produced the message a
// component or modal interaction originated from.
func messageOwner(i *discordgo.Interaction) string {
	if i.Message == nil || i.Message.Interaction == nil {
		return ""
	}
	return i.Message.Interaction.Name
}

// unrecognizedHandler is the default arm of every dispatch: a visible but
// ephemeral note instead of a dropped interaction.
type unrecognizedHandler struct{}

func (unrecognizedHandler) Invoke(_ *discordgo.Interaction) *discordgo.InteractionResponse {
	return PlainMessage("Something erroneous happened...")
}

// CustomID extracts the custom identifier from a component or modal
// interaction, or "" for anything else.
func CustomID(i *discordgo.Interaction) string {
	switch i.Type {
	case discordgo.InteractionMessageComponent:
		return i.MessageComponentData().CustomID
	case discordgo.InteractionModalSubmit:
		return i.ModalSubmitData().CustomID
	}
	return ""
}

// UserID returns the invoking user's ID, from the guild member in servers
// or the bare user in DMs.
func UserID(i *discordgo.Interaction) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

// MessageContent returns the text of the message the interaction was
// attached to, or "" when there is none (fresh slash commands).
func MessageContent(i *discordgo.Interaction) string {
	if i.Message == nil {
		return ""
	}
	return i.Message.Content
}

// ModalValues flattens a modal submission into field custom ID -> entered
// value. Values are trimmed; platform clients pad freely.
func ModalValues(i *discordgo.Interaction) map[string]string {
	values := make(map[string]string)
	if i.Type != discordgo.InteractionModalSubmit {
		return values
	}
	for _, row := range i.ModalSubmitData().Components {
		collectTextInputs(row, values)
	}
	return values
}

func collectTextInputs(c discordgo.MessageComponent, values map[string]string) {
	switch v := c.(type) {
	case discordgo.ActionsRow:
		for _, inner := range v.Components {
			collectTextInputs(inner, values)
		}
	case *discordgo.ActionsRow:
		for _, inner := range v.Components {
			collectTextInputs(inner, values)
		}
	case discordgo.TextInput:
		values[v.CustomID] = strings.TrimSpace(v.Value)
	case *discordgo.TextInput:
		values[v.CustomID] = strings.TrimSpace(v.Value)
	}
}
