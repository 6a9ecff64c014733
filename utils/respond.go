package utils

import (
	"github.com/bwmarrin/discordgo"
)

// Pong acknowledges a ping interaction.
func Pong() *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponsePong,
	}
}

// PlainMessage posts a new ephemeral message with optional component rows.
func PlainMessage(content string, rows ...discordgo.MessageComponent) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Flags:      discordgo.MessageFlagsEphemeral,
			Components: rows,
		},
	}
}

// QuietMessage edits the message the interaction came from, keeping it
// ephemeral. Used for every game action that just refreshes the stats.
func QuietMessage(content string, rows ...discordgo.MessageComponent) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Flags:      discordgo.MessageFlagsEphemeral,
			Components: rows,
		},
	}
}

// LoudMessage posts a new publicly visible message with no components.
// The only caller today is brag, which is public by design.
func LoudMessage(content string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	}
}

// Modal opens a modal with the given custom ID, title and text fields.
func Modal(customID, title string, fields ...discordgo.MessageComponent) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID:   customID,
			Title:      title,
			Components: fields,
		},
	}
}

// ActionRow wraps buttons into a single row.
func ActionRow(buttons ...discordgo.MessageComponent) discordgo.MessageComponent {
	return discordgo.ActionsRow{Components: buttons}
}

// Button creates a primary-style button.
func Button(customID, label string) discordgo.MessageComponent {
	return discordgo.Button{
		CustomID: customID,
		Label:    label,
		Style:    discordgo.PrimaryButton,
	}
}

// TextField creates a single-row short text input for a modal.
func TextField(customID, label string) discordgo.MessageComponent {
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.TextInput{
				CustomID: customID,
				Label:    label,
				Style:    discordgo.TextInputShort,
				Required: true,
			},
		},
	}
}
