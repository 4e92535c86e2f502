package config

import (
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pajbot/bankbot-discord/pkg/utils"
	"github.com/pkg/errors"
)

const (
	envPrefix = "BANKBOT"
)

const (
	ModeText  = "text"
	ModeSlash = "slash"
	ModeBoth  = "both"

	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

// DefaultCooldownName is the cooldown applied to commands without an entry of their own
const DefaultCooldownName = "default"

var defaultCooldowns = map[string]time.Duration{
	DefaultCooldownName: 30 * time.Second,
	"dice":              30 * time.Second,
	"gamble":            30 * time.Second,
	"salary":            time.Hour,
	"daily":             24 * time.Hour,
}

type Config struct {
	Token string `envconfig:"TOKEN"`

	// Which front-ends to serve: text, slash or both
	Mode string `envconfig:"MODE" default:"both"`

	Store string `envconfig:"STORE" default:"memory"`

	DSN string `envconfig:"SQL_DSN" default:"postgres:///bankbot_discord?sslmode=disable"`

	RedisAddr string `envconfig:"REDIS_ADDR"`
	RedisPass string `envconfig:"REDIS_PASS"`

	// Guild IDs in which to create slash commands. Empty means global commands
	SlashCommandGuildIDs []string `envconfig:"SLASH_COMMAND_GUILD_IDS"`

	// If set, the bot only reacts to commands in this channel
	ChannelID string `envconfig:"CHANNEL_ID"`

	EmbedColor string `envconfig:"EMBED_COLOR" default:"#0099ff"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Comma-separated name:duration overrides, e.g. "salary:2h,dice:45s"
	CooldownOverrides []string `envconfig:"COOLDOWNS"`

	cooldowns map[string]time.Duration
}

// Load reads the configuration from the environment and validates it
func Load() (*Config, error) {
	cfg := new(Config)
	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	cfg.SlashCommandGuildIDs = cleanList(cfg.SlashCommandGuildIDs)
	cfg.Mode = strings.ToLower(strings.TrimSpace(cfg.Mode))
	cfg.Store = strings.ToLower(strings.TrimSpace(cfg.Store))

	cooldowns, err := parseCooldowns(cleanList(cfg.CooldownOverrides))
	if err != nil {
		return nil, err
	}
	cfg.cooldowns = cooldowns

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate returns all configuration problems joined into a single error
func (c *Config) Validate() error {
	var problems []string

	if c.Token == "" {
		problems = append(problems, envPrefix+"_TOKEN cannot be empty")
	}

	switch c.Mode {
	case ModeText, ModeSlash, ModeBoth:
	default:
		problems = append(problems, "invalid mode "+c.Mode+", must be one of text, slash, both")
	}

	switch c.Store {
	case StoreMemory:
	case StorePostgres:
		if c.DSN == "" {
			problems = append(problems, envPrefix+"_SQL_DSN cannot be empty when using the postgres store")
		}
	case StoreRedis:
		if c.RedisAddr == "" {
			problems = append(problems, envPrefix+"_REDIS_ADDR cannot be empty when using the redis store")
		}
	default:
		problems = append(problems, "invalid store "+c.Store+", must be one of memory, postgres, redis")
	}

	if _, err := utils.ParseColor(c.EmbedColor); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) == 0 {
		return nil
	}

	return errors.New(strings.Join(problems, "; "))
}

// TextEnabled returns true if the free-text front-end should be served
func (c *Config) TextEnabled() bool {
	return c.Mode == ModeText || c.Mode == ModeBoth
}

// SlashEnabled returns true if slash commands should be registered
func (c *Config) SlashEnabled() bool {
	return c.Mode == ModeSlash || c.Mode == ModeBoth
}

// Cooldown returns the cooldown configured for the given command name, falling back to the default cooldown
func (c *Config) Cooldown(commandName string) time.Duration {
	if d, ok := c.cooldowns[commandName]; ok {
		return d
	}
	if d, ok := defaultCooldowns[commandName]; ok {
		return d
	}
	if d, ok := c.cooldowns[DefaultCooldownName]; ok {
		return d
	}
	return defaultCooldowns[DefaultCooldownName]
}

// Color returns the embed accent color as an integer
func (c *Config) Color() int {
	color, err := utils.ParseColor(c.EmbedColor)
	if err != nil {
		return 0
	}
	return color
}
