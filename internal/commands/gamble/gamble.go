package gamble

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
	Name = "gamble"

	optionAmount = "amount"
)

var usage = fmt.Sprintf("❌ الاستخدام: قمار <المبلغ> (الحد الأدنى %d ذهب)", economy.MinGambleAmount)

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
	return "قامر بجزء من رصيدك"
}

func (c *Command) Triggers() []string {
	return []string{"قمار"}
}

func (c *Command) Options() []*discordgo.ApplicationCommandOption {
	minAmount := float64(economy.MinGambleAmount)

	return []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        optionAmount,
			Description: "المبلغ",
			Required:    true,
			MinValue:    &minAmount,
		},
	}
}

func (c *Command) Cooldown() time.Duration {
	return c.cooldown
}

func (c *Command) Validate(ctx context.Context, inv *pkg.Invocation, balance int64) error {
	amount, err := inv.IntArg(optionAmount, 0, usage)
	if err != nil {
		return err
	}

	return economy.ValidateStake(amount, economy.MinGambleAmount, balance)
}

func (c *Command) Execute(ctx context.Context, inv *pkg.Invocation, account pkg.Account) (*pkg.Reply, error) {
	amount, err := inv.IntArg(optionAmount, 0, usage)
	if err != nil {
		return nil, err
	}

	result := economy.Gamble(c.rng, amount)

	balance, err := account.Add(ctx, result.Payout)
	if err != nil {
		return nil, err
	}

	var title string
	switch result.Outcome {
	case economy.GambleWin:
		title = fmt.Sprintf("🎰 فوز كبير! (x%.2f)", result.Multiplier)
	case economy.GambleHalf:
		title = "🎰 ربحت نصف المبلغ"
	default:
		title = "🎰 خسرت!"
	}

	embed := utils.NewEmbed(c.color, title)
	utils.AddField(embed, "💸 المبلغ", utils.Gold(amount), true)
	utils.AddField(embed, "📈 النتيجة", utils.SignedGold(result.Payout), true)
	utils.AddField(embed, "💳 رصيدك الحالي", utils.Gold(balance), false)

	return pkg.EmbedReply(embed), nil
}
