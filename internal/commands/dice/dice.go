package dice

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
var _ pkg.Validator = &Command{}

const (
	Name = "dice"

	optionWager = "wager"
)

var usage = fmt.Sprintf("❌ الاستخدام: رهان <المبلغ> (الحد الأدنى %d ذهب)", economy.MinDiceWager)

// Command rolls two dice for a wager. 7 or 11 pays double, 2, 3 or 12 loses the wager, anything else pays half
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
	return "راهن على مجموع نردين"
}

func (c *Command) Triggers() []string {
	return []string{"رهان"}
}

func (c *Command) Options() []*discordgo.ApplicationCommandOption {
	minWager := float64(economy.MinDiceWager)

	return []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        optionWager,
			Description: "مبلغ الرهان",
			Required:    true,
			MinValue:    &minWager,
		},
	}
}

func (c *Command) Cooldown() time.Duration {
	return c.cooldown
}

func (c *Command) Validate(ctx context.Context, inv *pkg.Invocation, balance int64) error {
	wager, err := inv.IntArg(optionWager, 0, usage)
	if err != nil {
		return err
	}

	return economy.ValidateStake(wager, economy.MinDiceWager, balance)
}

func (c *Command) Execute(ctx context.Context, inv *pkg.Invocation, account pkg.Account) (*pkg.Reply, error) {
	wager, err := inv.IntArg(optionWager, 0, usage)
	if err != nil {
		return nil, err
	}

	roll := economy.RollDice(c.rng, wager)

	balance, err := account.Add(ctx, roll.Payout)
	if err != nil {
		return nil, err
	}

	var result string
	switch {
	case roll.Payout > wager:
		result = "🎉 ربح مضاعف!"
	case roll.Payout > 0:
		result = "🙂 ربح نصف الرهان"
	default:
		result = "😢 خسرت الرهان"
	}

	embed := utils.NewEmbed(c.color, "🎲 رهان النرد")
	utils.AddField(embed, "🎯 النرد الأول", fmt.Sprintf("**%d**", roll.First), true)
	utils.AddField(embed, "🎯 النرد الثاني", fmt.Sprintf("**%d**", roll.Second), true)
	utils.AddField(embed, "➕ المجموع", fmt.Sprintf("**%d**", roll.Sum()), true)
	utils.AddField(embed, "🏆 النتيجة", fmt.Sprintf("%s (%s)", result, utils.SignedGold(roll.Payout)), false)
	utils.AddField(embed, "💳 رصيدك الحالي", utils.Gold(balance), false)

	return pkg.EmbedReply(embed), nil
}
