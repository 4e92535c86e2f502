package pkg

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
)

// Command is a single economy command, reachable both as a text trigger and as a slash command
type Command interface {
	Name() string
	Description() string

	// Options describes the slash command parameters
	Options() []*discordgo.ApplicationCommandOption

	// Cooldown is the minimum time between two successful invocations by the same user. 0 means no cooldown
	Cooldown() time.Duration

	Execute(ctx context.Context, inv *Invocation, account Account) (*Reply, error)
}

// Validator is implemented by commands that check their arguments before the cooldown is consulted.
// A non-nil error rejects the invocation without touching the balance or the cooldown
type Validator interface {
	Validate(ctx context.Context, inv *Invocation, balance int64) error
}

// TextCommand is implemented by commands that can be triggered by plain chat messages
type TextCommand interface {
	Command
	Triggers() []string
}

// SpamGuarded is implemented by commands without an economic cooldown that still want a short per-user throttle
type SpamGuarded interface {
	HasUserIDCooldown(string) bool
	AddUserIDCooldown(string)
}

// Account gives a handler access to the invoking user's balance for the duration of one invocation
type Account interface {
	UserID() string

	// Balance is the balance read at the start of the invocation, plus any change applied through Add
	Balance() int64

	// Add applies delta to the balance and returns the new balance. Only one call per invocation is allowed
	Add(ctx context.Context, delta int64) (int64, error)

	// Undo reverses the change applied by Add, after which Mutated reports false again
	Undo(ctx context.Context) error

	// Mutated returns true if Add has been called successfully and not undone
	Mutated() bool
}

// Reply is what a command wants sent back to the invoking user
type Reply struct {
	Content string
	Embed   *discordgo.MessageEmbed

	// Files are uploaded with the reply, embeds can refer to them as attachment://<name>
	Files []*discordgo.File
}

func TextReply(content string) *Reply {
	return &Reply{
		Content: content,
	}
}

func EmbedReply(embed *discordgo.MessageEmbed) *Reply {
	return &Reply{
		Embed: embed,
	}
}
