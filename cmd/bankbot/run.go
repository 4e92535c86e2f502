package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/pajbot/bankbot-discord/internal/commands/balance"
	"github.com/pajbot/bankbot-discord/internal/commands/buy"
	"github.com/pajbot/bankbot-discord/internal/commands/companies"
	"github.com/pajbot/bankbot-discord/internal/commands/daily"
	"github.com/pajbot/bankbot-discord/internal/commands/dice"
	"github.com/pajbot/bankbot-discord/internal/commands/gamble"
	"github.com/pajbot/bankbot-discord/internal/commands/help"
	"github.com/pajbot/bankbot-discord/internal/commands/roll"
	"github.com/pajbot/bankbot-discord/internal/commands/salary"
	"github.com/pajbot/bankbot-discord/internal/config"
	"github.com/pajbot/bankbot-discord/internal/cooldown"
	"github.com/pajbot/bankbot-discord/internal/diceimage"
	"github.com/pajbot/bankbot-discord/internal/dispatch"
	"github.com/pajbot/bankbot-discord/internal/economy"
	"github.com/pajbot/bankbot-discord/internal/slashcommands"
	"github.com/pajbot/bankbot-discord/internal/store"
	"github.com/pajbot/bankbot-discord/internal/textcommands"
	"github.com/pajbot/bankbot-discord/pkg"
	"github.com/pajbot/bankbot-discord/pkg/commands"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type runCommand struct{}

func openStore(cfg *config.Config) (store.Store, error) {
	switch cfg.Store {
	case config.StorePostgres:
		pg, err := store.OpenPostgres(cfg.DSN)
		if err != nil {
			return nil, err
		}
		if err := pg.Migrate(opts.MigrationsDir); err != nil {
			pg.Close()
			return nil, err
		}
		return pg, nil

	case config.StoreRedis:
		return store.OpenRedis(cfg.RedisAddr, cfg.RedisPass)
	}

	logrus.Warn("Using the in-memory store, balances are lost on restart")
	return store.NewMemory(), nil
}

func newRegistry(cfg *config.Config, bank *economy.Bank, bot *discordgo.Session) (*commands.Registry, error) {
	color := cfg.Color()
	rng := economy.DefaultRand

	var registry *commands.Registry
	list := func() []pkg.Command {
		return registry.List()
	}

	registry, err := commands.NewRegistry(
		salary.New(color, cfg.Cooldown(salary.Name), rng),
		daily.New(color, cfg.Cooldown(daily.Name), rng),
		balance.New(color),
		dice.New(color, cfg.Cooldown(dice.Name), rng),
		gamble.New(color, cfg.Cooldown(gamble.Name), rng),
		roll.New(color, cfg.Cooldown(roll.Name), rng).WithBattleImage(diceimage.NewSessionPortraits(bot)),
		companies.New(color, bank),
		buy.New(color, cfg.Cooldown(buy.Name), bank),
		help.New(color, list),
	)
	if err != nil {
		return nil, err
	}

	return registry, nil
}

func (c *runCommand) Execute(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	bank := economy.NewBank(s)
	cooldowns := cooldown.New()

	bot, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return errors.Wrap(err, "error creating Discord session")
	}

	registry, err := newRegistry(cfg, bank, bot)
	if err != nil {
		return err
	}

	dispatcher := dispatch.New(registry, bank, cooldowns)

	bot.Identify.Intents = discordgo.IntentsGuilds
	if cfg.TextEnabled() {
		bot.Identify.Intents |= discordgo.IntentsGuildMessages | discordgo.IntentMessageContent
		textcommands.New(dispatcher, cfg.ChannelID).Register(bot)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Open a websocket connection to Discord and begin listening.
	if err := bot.Open(); err != nil {
		return errors.Wrap(err, "error opening connection")
	}
	defer bot.Close()

	if cfg.SlashEnabled() {
		slashCommands := slashcommands.New(dispatcher, cfg.SlashCommandGuildIDs)
		if err := slashCommands.Create(bot); err != nil {
			slashCommands.Delete(bot)
			return errors.Wrap(err, "error creating slash commands")
		}
		defer slashCommands.Delete(bot)
	}

	go startCooldownSweeper(ctx, cooldowns)

	logrus.WithFields(logrus.Fields{
		"mode":  cfg.Mode,
		"store": cfg.Store,
	}).Info("Bot is now running. Press CTRL-C to exit.")

	<-ctx.Done()

	logrus.Info("Shutting down")

	return nil
}
