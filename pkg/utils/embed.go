package utils

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
)

const embedFooter = "Discord Bank Bot"

// NewEmbed creates a rich embed with the bot's footer and the current timestamp
func NewEmbed(color int, title string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Type:      discordgo.EmbedTypeRich,
		Title:     title,
		Color:     color,
		Timestamp: time.Now().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: embedFooter,
		},
	}
}

func AddField(embed *discordgo.MessageEmbed, name, value string, inline bool) {
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   name,
		Value:  value,
		Inline: inline,
	})
}

// Gold formats an amount of currency in bold
func Gold(amount int64) string {
	return fmt.Sprintf("**%d** ذهب", amount)
}

// SignedGold formats a balance change with an explicit sign
func SignedGold(delta int64) string {
	return fmt.Sprintf("**%+d** ذهب", delta)
}

func MentionUserID(userID string) string {
	return "<@" + userID + ">"
}
