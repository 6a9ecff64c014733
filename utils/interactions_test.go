package utils

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

// stub implements only Invoke.
type stub struct {
	invoked int
}

func (s *stub) Invoke(_ *discordgo.Interaction) *discordgo.InteractionResponse {
	s.invoked++
	return PlainMessage("invoked")
}

// fullStub implements all three capabilities.
type fullStub struct {
	stub
	reacted   int
	submitted int
}

func (s *fullStub) React(_ *discordgo.Interaction) *discordgo.InteractionResponse {
	s.reacted++
	return QuietMessage("reacted")
}

func (s *fullStub) Submit(_ *discordgo.Interaction) *discordgo.InteractionResponse {
	s.submitted++
	return QuietMessage("submitted")
}

func command(name string) *discordgo.Interaction {
	return &discordgo.Interaction{
		Type: discordgo.InteractionApplicationCommand,
		Data: discordgo.ApplicationCommandInteractionData{Name: name},
	}
}

func componentOn(owner, customID string) *discordgo.Interaction {
	return &discordgo.Interaction{
		Type: discordgo.InteractionMessageComponent,
		Data: discordgo.MessageComponentInteractionData{CustomID: customID},
		Message: &discordgo.Message{
			Interaction: &discordgo.MessageInteraction{Name: owner},
		},
	}
}

func TestDispatchPing(t *testing.T) {
	resp := NewRouter().Dispatch(&discordgo.Interaction{Type: discordgo.InteractionPing})
	if resp.Type != discordgo.InteractionResponsePong {
		t.Errorf("expected pong, got type %d", resp.Type)
	}
}

func TestDispatchCommandByName(t *testing.T) {
	router := NewRouter()
	h := &stub{}
	router.Register("shells", h)

	router.Dispatch(command("shells"))
	if h.invoked != 1 {
		t.Errorf("expected 1 invoke, got %d", h.invoked)
	}
}

func TestDispatchUnknownCommandFallsBack(t *testing.T) {
	resp := NewRouter().Dispatch(command("nonsense"))

	if resp.Data == nil || resp.Data.Content != "Something erroneous happened..." {
		t.Errorf("expected the unrecognized response, got %+v", resp)
	}
	if resp.Data.Flags != discordgo.MessageFlagsEphemeral {
		t.Error("fallback response should be ephemeral")
	}
}

func TestDispatchComponentToOwner(t *testing.T) {
	router := NewRouter()
	h := &fullStub{}
	router.Register("shells", h)

	router.Dispatch(componentOn("shells", "roll"))
	if h.reacted != 1 {
		t.Errorf("expected 1 react, got %d", h.reacted)
	}
}

func TestDispatchComponentDelegatesToInvoke(t *testing.T) {
	router := NewRouter()
	h := &stub{}
	router.Register("deedee", h)

	router.Dispatch(componentOn("deedee", "whatever"))
	if h.invoked != 1 {
		t.Errorf("invoke-only handler should receive component via Invoke, got %d", h.invoked)
	}
}

func TestDispatchComponentWithoutMessageFallsBack(t *testing.T) {
	router := NewRouter()
	router.Register("shells", &fullStub{})

	resp := router.Dispatch(&discordgo.Interaction{
		Type: discordgo.InteractionMessageComponent,
		Data: discordgo.MessageComponentInteractionData{CustomID: "roll"},
	})
	if resp.Data == nil || resp.Data.Content != "Something erroneous happened..." {
		t.Error("component with no owning message should hit the fallback")
	}
}

func TestDispatchModalSubmit(t *testing.T) {
	router := NewRouter()
	h := &fullStub{}
	router.Register("shells", h)

	router.Dispatch(&discordgo.Interaction{
		Type: discordgo.InteractionModalSubmit,
		Data: discordgo.ModalSubmitInteractionData{CustomID: "submit_recall"},
		Message: &discordgo.Message{
			Interaction: &discordgo.MessageInteraction{Name: "shells"},
		},
	})
	if h.submitted != 1 {
		t.Errorf("expected 1 submit, got %d", h.submitted)
	}
}

func TestCustomID(t *testing.T) {
	if got := CustomID(componentOn("shells", "roll")); got != "roll" {
		t.Errorf("component custom id %q, want roll", got)
	}
	if got := CustomID(command("shells")); got != "" {
		t.Errorf("command custom id should be empty, got %q", got)
	}
}

func TestUserID(t *testing.T) {
	member := &discordgo.Interaction{
		Member: &discordgo.Member{User: &discordgo.User{ID: "guild user"}},
	}
	if got := UserID(member); got != "guild user" {
		t.Errorf("got %q", got)
	}

	dm := &discordgo.Interaction{User: &discordgo.User{ID: "dm user"}}
	if got := UserID(dm); got != "dm user" {
		t.Errorf("got %q", got)
	}

	if got := UserID(&discordgo.Interaction{}); got != "" {
		t.Errorf("expected empty user id, got %q", got)
	}
}

func TestModalValues(t *testing.T) {
	i := &discordgo.Interaction{
		Type: discordgo.InteractionModalSubmit,
		Data: discordgo.ModalSubmitInteractionData{
			CustomID: "submit_recall",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{CustomID: "claim", Value: " 3043 "},
				}},
				&discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					&discordgo.TextInput{CustomID: "proof", Value: "ba la ha"},
				}},
			},
		},
	}

	values := ModalValues(i)
	if values["claim"] != "3043" {
		t.Errorf("claim %q, want trimmed 3043", values["claim"])
	}
	if values["proof"] != "ba la ha" {
		t.Errorf("proof %q", values["proof"])
	}
}
