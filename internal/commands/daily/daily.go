package daily

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/pajbot/bankbot-discord/internal/economy"
	"github.com/pajbot/bankbot-discord/pkg"
	"github.com/pajbot/bankbot-discord/pkg/utils"
)

var _ pkg.TextCommand = &Command{}

const Name = "daily"

type Command struct {
	color    int
	cooldown time.Duration
	rng      economy.Rand
}

func New(color int, cooldown time.Duration, rng economy.Rand) *Command {
	return &Command{
		color:    color,
		cooldown: cooldown,
		rng:      rng,
	}
}

func (c *Command) Name() string {
	return Name
}

func (c *Command) Description() string {
	return "احصل على مكافأتك اليومية"
}

func (c *Command) Triggers() []string {
	return []string{"يومي"}
}

func (c *Command) Options() []*discordgo.ApplicationCommandOption {
	return nil
}

func (c *Command) Cooldown() time.Duration {
	return c.cooldown
}

func (c *Command) Execute(ctx context.Context, inv *pkg.Invocation, account pkg.Account) (*pkg.Reply, error) {
	reward := economy.DailyReward(c.rng)

	balance, err := account.Add(ctx, reward)
	if err != nil {
		return nil, err
	}

	embed := utils.NewEmbed(c.color, "🎁 المكافأة اليومية")
	embed.Description = fmt.Sprintf("🎉 حصلت على %s! عد غداً لمكافأة جديدة", utils.Gold(reward))
	utils.AddField(embed, "💳 رصيدك الحالي", utils.Gold(balance), false)

	return pkg.EmbedReply(embed), nil
}
