package textcommands

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/pajbot/bankbot-discord/internal/dispatch"
	"github.com/pajbot/bankbot-discord/pkg"
	"github.com/pajbot/bankbot-discord/pkg/utils"
	"github.com/sirupsen/logrus"
)

// TextCommands turns guild chat messages into command invocations
type TextCommands struct {
	dispatcher *dispatch.Dispatcher

	// channelID restricts commands to a single channel when set
	channelID string
}

func New(dispatcher *dispatch.Dispatcher, channelID string) *TextCommands {
	return &TextCommands{
		dispatcher: dispatcher,
		channelID:  channelID,
	}
}

// Invocation builds the invocation for a chat message, or returns nil if the message should be ignored
func (t *TextCommands) Invocation(selfID string, m *discordgo.Message) *pkg.Invocation {
	if m.Author == nil || m.Author.Bot || m.Author.ID == selfID {
		return nil
	}

	if m.GuildID == "" {
		return nil
	}

	if t.channelID != "" && m.ChannelID != t.channelID {
		return nil
	}

	cmd, args := t.dispatcher.Registry().Match(strings.TrimSpace(m.Content))
	if cmd == nil {
		return nil
	}

	return &pkg.Invocation{
		UserID:    m.Author.ID,
		UserName:  m.Author.Username,
		GuildID:   m.GuildID,
		ChannelID: m.ChannelID,
		Command:   cmd.Name(),
		Args:      args,
	}
}

func (t *TextCommands) onMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	var selfID string
	if s.State != nil && s.State.User != nil {
		selfID = s.State.User.ID
	}

	inv := t.Invocation(selfID, m.Message)
	if inv == nil {
		return
	}

	reply, result := t.dispatcher.Handle(context.Background(), inv)
	if reply == nil {
		return
	}

	if err := utils.SendReply(s, m, reply); err != nil {
		logrus.WithFields(logrus.Fields{
			"user":    inv.UserID,
			"command": inv.Command,
			"result":  result,
		}).WithError(err).Warn("failed to send reply")
	}
}

// Register adds the message handler to the session
func (t *TextCommands) Register(session *discordgo.Session) {
	session.AddHandler(t.onMessage)
}
