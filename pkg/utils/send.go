package utils

import (
	"github.com/bwmarrin/discordgo"
	"github.com/pajbot/bankbot-discord/pkg"
	"github.com/pkg/errors"
)

const (
	maxMessageSize = 2000
)

// Truncate cuts s so it fits in a single discord message
func Truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= maxMessageSize {
		return s
	}

	return string(runes[:maxMessageSize-1]) + "…"
}

// MessageSend builds a message replying to reference. Only the replied-to user is pinged
func MessageSend(reply *pkg.Reply, reference *discordgo.MessageReference) *discordgo.MessageSend {
	data := &discordgo.MessageSend{
		Content:   Truncate(reply.Content),
		Reference: reference,
		AllowedMentions: &discordgo.MessageAllowedMentions{
			Users:       nil,
			RepliedUser: true,
		},
		Files: reply.Files,
	}

	if reply.Embed != nil {
		data.Embeds = []*discordgo.MessageEmbed{reply.Embed}
	}

	return data
}

// InteractionResponse builds the response to a slash command
func InteractionResponse(reply *pkg.Reply) *discordgo.InteractionResponse {
	data := &discordgo.InteractionResponseData{
		Content: Truncate(reply.Content),
		AllowedMentions: &discordgo.MessageAllowedMentions{
			Users: nil,
		},
		Files: reply.Files,
	}

	if reply.Embed != nil {
		data.Embeds = []*discordgo.MessageEmbed{reply.Embed}
	}

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}
}

// SendReply replies to the given message
func SendReply(s *discordgo.Session, m *discordgo.MessageCreate, reply *pkg.Reply) error {
	_, err := s.ChannelMessageSendComplex(m.ChannelID, MessageSend(reply, m.Reference()))
	if err != nil {
		return errors.Wrapf(err, "failed to reply in channel %s", m.ChannelID)
	}

	return nil
}

// Respond answers the given interaction
func Respond(s *discordgo.Session, i *discordgo.InteractionCreate, reply *pkg.Reply) error {
	if err := s.InteractionRespond(i.Interaction, InteractionResponse(reply)); err != nil {
		return errors.Wrapf(err, "failed to respond to interaction %s", i.ID)
	}

	return nil
}
