package roll

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/pajbot/bankbot-discord/internal/diceimage"
	"github.com/pajbot/bankbot-discord/internal/economy"
	"github.com/pajbot/bankbot-discord/pkg"
	"github.com/pajbot/bankbot-discord/pkg/utils"
	"github.com/sirupsen/logrus"
)

var _ pkg.TextCommand = &Command{}

const (
	Name = "roll"

	battleImageName = "dice_battle.png"
)

// Command is the single die game: the player's die against the bot's, a win pays a fixed amount
type Command struct {
	color    int
	cooldown time.Duration
	rng      economy.Rand

	portraits diceimage.Portraits
}

func New(color int, cooldown time.Duration, rng economy.Rand) *Command {
	return &Command{
		color:    color,
		cooldown: cooldown,
		rng:      rng,
	}
}

// WithBattleImage makes every result carry a rendered picture of both dice and both players
func (c *Command) WithBattleImage(portraits diceimage.Portraits) *Command {
	c.portraits = portraits
	return c
}

func (c *Command) Name() string {
	return Name
}

func (c *Command) Description() string {
	return fmt.Sprintf("العب النرد ضد البوت واربح %d ذهب", economy.DuelWinnings)
}

func (c *Command) Triggers() []string {
	return []string{"نرد"}
}

func (c *Command) Options() []*discordgo.ApplicationCommandOption {
	return nil
}

func (c *Command) Cooldown() time.Duration {
	return c.cooldown
}

func (c *Command) Execute(ctx context.Context, inv *pkg.Invocation, account pkg.Account) (*pkg.Reply, error) {
	duel := economy.RollDuel(c.rng)

	result := "😢 لقد خسرت!"
	switch {
	case duel.Won():
		if _, err := account.Add(ctx, duel.Payout); err != nil {
			return nil, err
		}
		result = fmt.Sprintf("🎉 لقد ربحت! (+%d ذهب)", duel.Payout)
	case duel.Tie():
		result = "🤝 تعادل!"
	}

	embed := utils.NewEmbed(c.color, "🎲 لعبة النرد")
	utils.AddField(embed, "🎯 نردك", fmt.Sprintf("**%d**", duel.Player), true)
	utils.AddField(embed, "🤖 نرد البوت", fmt.Sprintf("**%d**", duel.Bot), true)
	utils.AddField(embed, "🏆 النتيجة", result, false)

	reply := pkg.EmbedReply(embed)

	if c.portraits != nil {
		file, err := c.battleImage(ctx, inv, duel)
		if err != nil {
			logrus.WithContext(ctx).WithError(err).Warn("failed to render dice battle image")
		} else {
			embed.Image = &discordgo.MessageEmbedImage{URL: "attachment://" + file.Name}
			reply.Files = []*discordgo.File{file}
		}
	}

	return reply, nil
}

func (c *Command) avatar(ctx context.Context, userID string) image.Image {
	if userID == "" {
		return nil
	}

	avatar, err := c.portraits.Avatar(ctx, userID)
	if err != nil {
		logrus.WithContext(ctx).WithError(err).Debug("drawing placeholder avatar")
		return nil
	}

	return avatar
}

func (c *Command) battleImage(ctx context.Context, inv *pkg.Invocation, duel economy.DuelResult) (*discordgo.File, error) {
	botID, botName := c.portraits.Self()

	data, err := diceimage.EncodePNG(diceimage.Battle{
		Player: diceimage.Side{
			Name:   inv.UserName,
			Avatar: c.avatar(ctx, inv.UserID),
			Die:    duel.Player,
		},
		Bot: diceimage.Side{
			Name:   botName,
			Avatar: c.avatar(ctx, botID),
			Die:    duel.Bot,
		},
	})
	if err != nil {
		return nil, err
	}

	return &discordgo.File{
		Name:        battleImageName,
		ContentType: "image/png",
		Reader:      bytes.NewReader(data),
	}, nil
}
