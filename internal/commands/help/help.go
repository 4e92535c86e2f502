package help

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/pajbot/basecommand"
	"github.com/pajbot/bankbot-discord/pkg"
	"github.com/pajbot/bankbot-discord/pkg/utils"
)

var _ pkg.TextCommand = &Command{}
var _ pkg.SpamGuarded = &Command{}

const Name = "help"

type Command struct {
	basecommand.Command

	color int

	// list returns the commands to describe, it is resolved lazily since help is itself part of the list
	list func() []pkg.Command
}

func New(color int, list func() []pkg.Command) *Command {
	c := &Command{
		Command: basecommand.New(),
		color:   color,
		list:    list,
	}
	c.Command.Description = "عرض هذه القائمة"

	return c
}

func (c *Command) Name() string {
	return Name
}

func (c *Command) Description() string {
	return c.Command.Description
}

func (c *Command) Triggers() []string {
	return []string{"اوامر"}
}

func (c *Command) Options() []*discordgo.ApplicationCommandOption {
	return nil
}

func (c *Command) Cooldown() time.Duration {
	return 0
}

// Lines returns one help line per command, showing the text trigger when invoked as text and the slash name otherwise
func (c *Command) Lines(structured bool) []string {
	var lines []string

	for _, command := range c.list() {
		name := "/" + command.Name()
		if !structured {
			textCommand, ok := command.(pkg.TextCommand)
			if !ok || len(textCommand.Triggers()) == 0 {
				continue
			}
			name = textCommand.Triggers()[0]
		}

		lines = append(lines, fmt.Sprintf("`%s` - %s", name, command.Description()))
	}

	return lines
}

func (c *Command) Execute(ctx context.Context, inv *pkg.Invocation, account pkg.Account) (*pkg.Reply, error) {
	embed := utils.NewEmbed(c.color, "📋 قائمة الأوامر")
	embed.Description = "**الأوامر المتاحة:**\n\n" + strings.Join(c.Lines(inv.Structured), "\n")

	return pkg.EmbedReply(embed), nil
}
