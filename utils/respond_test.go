package utils

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

func TestResponseModes(t *testing.T) {
	plain := PlainMessage("hi", ActionRow(Button("roll", "roll")))
	if plain.Type != discordgo.InteractionResponseChannelMessageWithSource {
		t.Errorf("plain message type %d", plain.Type)
	}
	if plain.Data.Flags != discordgo.MessageFlagsEphemeral {
		t.Error("plain message should be ephemeral")
	}
	if len(plain.Data.Components) != 1 {
		t.Errorf("expected 1 row, got %d", len(plain.Data.Components))
	}

	quiet := QuietMessage("hi")
	if quiet.Type != discordgo.InteractionResponseUpdateMessage {
		t.Errorf("quiet message type %d", quiet.Type)
	}
	if quiet.Data.Flags != discordgo.MessageFlagsEphemeral {
		t.Error("quiet message should be ephemeral")
	}

	loud := LoudMessage("hi")
	if loud.Type != discordgo.InteractionResponseChannelMessageWithSource {
		t.Errorf("loud message type %d", loud.Type)
	}
	if loud.Data.Flags != 0 {
		t.Error("loud message must not carry the ephemeral flag")
	}

	modal := Modal("submit_recall", "Circle of Recall", TextField("claim", "claim"))
	if modal.Type != discordgo.InteractionResponseModal {
		t.Errorf("modal type %d", modal.Type)
	}
	if modal.Data.CustomID != "submit_recall" || modal.Data.Title != "Circle of Recall" {
		t.Errorf("modal metadata %+v", modal.Data)
	}
}

func TestTextFieldShape(t *testing.T) {
	field := TextField("claim", "claim")
	row, ok := field.(discordgo.ActionsRow)
	if !ok {
		t.Fatalf("expected an actions row, got %T", field)
	}
	input, ok := row.Components[0].(discordgo.TextInput)
	if !ok {
		t.Fatalf("expected a text input, got %T", row.Components[0])
	}
	if input.CustomID != "claim" || !input.Required {
		t.Errorf("unexpected input %+v", input)
	}
}
