package buy

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/pajbot/bankbot-discord/internal/economy"
	"github.com/pajbot/bankbot-discord/pkg"
	"github.com/pajbot/bankbot-discord/pkg/utils"
)

var _ pkg.TextCommand = &Command{}
var _ pkg.Validator = &Command{}

const (
	Name = "buy"

	optionCompany = "company"

	usage = "❌ الاستخدام: شراء <معرف الشركة>"
)

type Command struct {
	color    int
	cooldown time.Duration
	bank     *economy.Bank
}

func New(color int, cooldown time.Duration, bank *economy.Bank) *Command {
	return &Command{
		color:    color,
		cooldown: cooldown,
		bank:     bank,
	}
}

func (c *Command) Name() string {
	return Name
}

func (c *Command) Description() string {
	return "اشترِ شركة"
}

func (c *Command) Triggers() []string {
	return []string{"شراء"}
}

func (c *Command) Options() []*discordgo.ApplicationCommandOption {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(economy.Catalog))
	for _, company := range economy.Catalog {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  company.Name,
			Value: company.ID,
		})
	}

	return []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        optionCompany,
			Description: "الشركة",
			Required:    true,
			Choices:     choices,
		},
	}
}

func (c *Command) Cooldown() time.Duration {
	return c.cooldown
}

func companyID(inv *pkg.Invocation) (string, error) {
	id, ok := inv.Arg(optionCompany, 0)
	if !ok || strings.TrimSpace(id) == "" {
		return "", pkg.NewValidationError(usage)
	}

	return strings.ToLower(strings.TrimSpace(id)), nil
}

func (c *Command) Validate(ctx context.Context, inv *pkg.Invocation, balance int64) error {
	id, err := companyID(inv)
	if err != nil {
		return err
	}

	record, err := c.bank.Company(ctx, id)
	if err != nil {
		return err
	}

	return economy.ValidatePurchase(record, inv.UserID, balance)
}

func (c *Command) Execute(ctx context.Context, inv *pkg.Invocation, account pkg.Account) (*pkg.Reply, error) {
	id, err := companyID(inv)
	if err != nil {
		return nil, err
	}

	before, err := c.bank.BuyCompany(ctx, account, id)
	if err != nil {
		return nil, err
	}

	embed := utils.NewEmbed(c.color, "🏢 تم شراء الشركة")
	embed.Description = fmt.Sprintf("🎉 أصبحت مالك %s مقابل %s", before.Name, utils.Gold(before.Price))
	if before.Owner != "" {
		utils.AddField(embed, "👤 المالك السابق", utils.MentionUserID(before.Owner), true)
	}
	utils.AddField(embed, "💳 رصيدك الحالي", utils.Gold(account.Balance()), true)

	return pkg.EmbedReply(embed), nil
}
