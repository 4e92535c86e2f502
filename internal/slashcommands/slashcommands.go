package slashcommands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
	"github.com/pajbot/bankbot-discord/internal/dispatch"
	"github.com/pajbot/bankbot-discord/pkg"
	"github.com/pajbot/bankbot-discord/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type SlashCommands struct {
	dispatcher *dispatch.Dispatcher
	guildIDs   []string

	registeredCommands []*discordgo.ApplicationCommand
}

// New creates a SlashCommands struct with the given options.
// With no guild IDs the commands are created globally
func New(dispatcher *dispatch.Dispatcher, guildIDs []string) *SlashCommands {
	return &SlashCommands{
		dispatcher: dispatcher,
		guildIDs:   guildIDs,
	}
}

// ApplicationCommands describes every registered command as a discord application command
func (s *SlashCommands) ApplicationCommands() []*discordgo.ApplicationCommand {
	var out []*discordgo.ApplicationCommand

	for _, cmd := range s.dispatcher.Registry().List() {
		out = append(out, &discordgo.ApplicationCommand{
			Name:        cmd.Name(),
			Description: cmd.Description(),
			Options:     cmd.Options(),
		})
	}

	return out
}

// Invocation builds the invocation for an application command interaction, or returns nil if it should be ignored
func Invocation(i *discordgo.InteractionCreate) *pkg.Invocation {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	var user *discordgo.User
	if i.Member != nil {
		user = i.Member.User
	} else {
		user = i.User
	}
	if user == nil {
		return nil
	}

	data := i.ApplicationCommandData()

	options := make(map[string]string, len(data.Options))
	for _, option := range data.Options {
		options[option.Name] = optionValue(option)
	}

	return &pkg.Invocation{
		UserID:     user.ID,
		UserName:   user.Username,
		GuildID:    i.GuildID,
		ChannelID:  i.ChannelID,
		Command:    data.Name,
		Structured: true,
		Options:    options,
	}
}

func optionValue(option *discordgo.ApplicationCommandInteractionDataOption) string {
	switch option.Type {
	case discordgo.ApplicationCommandOptionInteger:
		return strconv.FormatInt(option.IntValue(), 10)
	case discordgo.ApplicationCommandOptionString:
		return option.StringValue()
	}

	return fmt.Sprint(option.Value)
}

func (s *SlashCommands) onInteractionCreate(session *discordgo.Session, i *discordgo.InteractionCreate) {
	inv := Invocation(i)
	if inv == nil {
		return
	}

	reply, result := s.dispatcher.Handle(context.Background(), inv)
	if reply == nil {
		// interactions must be answered
		reply = pkg.TextReply("👌")
	}

	if err := utils.Respond(session, i, reply); err != nil {
		logrus.WithFields(logrus.Fields{
			"user":    inv.UserID,
			"command": inv.Command,
			"result":  result,
		}).WithError(err).Warn("failed to respond")
	}
}

// Create registers all available slash commands in the configured guilds, or globally
func (s *SlashCommands) Create(session *discordgo.Session) error {
	session.AddHandler(s.onInteractionCreate)

	guildIDs := s.guildIDs
	if len(guildIDs) == 0 {
		guildIDs = []string{""}
	}

	for _, guildID := range guildIDs {
		if guildID == "" {
			logrus.Info("Creating global slash commands")
		} else {
			logrus.Infof("Creating slash commands for guild %s", guildID)
		}

		for _, cmd := range s.ApplicationCommands() {
			registeredCommand, err := session.ApplicationCommandCreate(session.State.User.ID, guildID, cmd)
			if err != nil {
				return errors.Wrapf(err, "creating command '%s' failed", cmd.Name)
			}
			s.registeredCommands = append(s.registeredCommands, registeredCommand)
		}
	}

	return nil
}

// Delete deletes all slash commands that were created by Create
func (s *SlashCommands) Delete(session *discordgo.Session) error {
	for _, registeredCommand := range s.registeredCommands {
		err := session.ApplicationCommandDelete(session.State.User.ID, registeredCommand.GuildID, registeredCommand.ID)
		if err != nil {
			logrus.Warnf("Error deleting command %s: %s", registeredCommand.Name, err)
		}
	}
	s.registeredCommands = nil

	return nil
}
