package balance

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/pajbot/basecommand"
	"github.com/pajbot/bankbot-discord/pkg"
	"github.com/pajbot/bankbot-discord/pkg/utils"
)

var _ pkg.TextCommand = &Command{}
var _ pkg.SpamGuarded = &Command{}

const Name = "balance"

type Command struct {
	basecommand.Command

	color int
}

func New(color int) *Command {
	c := &Command{
		Command: basecommand.New(),
		color:   color,
	}
	c.Command.Description = "اعرض رصيدك"

	return c
}

func (c *Command) Name() string {
	return Name
}

func (c *Command) Description() string {
	return c.Command.Description
}

func (c *Command) Triggers() []string {
	return []string{"فلوسي"}
}

func (c *Command) Options() []*discordgo.ApplicationCommandOption {
	return nil
}

func (c *Command) Cooldown() time.Duration {
	return 0
}

func (c *Command) Execute(ctx context.Context, inv *pkg.Invocation, account pkg.Account) (*pkg.Reply, error) {
	embed := utils.NewEmbed(c.color, fmt.Sprintf("💳 رصيد %s", utils.EscapeMarkdown(inv.UserName)))
	embed.Description = fmt.Sprintf("رصيدك الحالي: %s", utils.Gold(account.Balance()))

	return pkg.EmbedReply(embed), nil
}
