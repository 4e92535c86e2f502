package companies

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/pajbot/basecommand"
	"github.com/pajbot/bankbot-discord/internal/economy"
	"github.com/pajbot/bankbot-discord/pkg"
	"github.com/pajbot/bankbot-discord/pkg/utils"
)

var _ pkg.TextCommand = &Command{}
var _ pkg.SpamGuarded = &Command{}

const Name = "companies"

type Command struct {
	basecommand.Command

	color int
	bank  *economy.Bank
}

func New(color int, bank *economy.Bank) *Command {
	c := &Command{
		Command: basecommand.New(),
		color:   color,
		bank:    bank,
	}
	c.Command.Description = "اعرض الشركات وأسعارها ومالكيها"

	return c
}

func (c *Command) Name() string {
	return Name
}

func (c *Command) Description() string {
	return c.Command.Description
}

func (c *Command) Triggers() []string {
	return []string{"شركات"}
}

func (c *Command) Options() []*discordgo.ApplicationCommandOption {
	return nil
}

func (c *Command) Cooldown() time.Duration {
	return 0
}

func (c *Command) Execute(ctx context.Context, inv *pkg.Invocation, account pkg.Account) (*pkg.Reply, error) {
	records, err := c.bank.Companies(ctx)
	if err != nil {
		return nil, err
	}

	embed := utils.NewEmbed(c.color, "🏢 الشركات")
	embed.Description = "اشترِ شركة باستخدام `شراء <المعرف>` أو `/buy`"

	for _, record := range records {
		owner := "لا أحد"
		if record.Owner != "" {
			owner = utils.MentionUserID(record.Owner)
		}

		utils.AddField(embed, record.Name, fmt.Sprintf("المعرف: `%s`\nالسعر: %s\nالمالك: %s", record.ID, utils.Gold(record.Price), owner), true)
	}

	return pkg.EmbedReply(embed), nil
}
