package pkg

import (
	"strconv"
	"strings"
)

// Invocation is one user-initiated request to run a named command
type Invocation struct {
	UserID    string
	UserName  string
	GuildID   string
	ChannelID string

	// Command is the canonical command name, e.g. "dice"
	Command string

	// Structured is true for slash command invocations, false for text triggers
	Structured bool

	// Args holds the whitespace separated words following a text trigger
	Args []string

	// Options holds slash command option values by name
	Options map[string]string
}

// Arg returns the option called name, or for text invocations the positional argument at index
func (i *Invocation) Arg(name string, index int) (string, bool) {
	if v, ok := i.Options[name]; ok {
		return v, true
	}

	if index >= 0 && index < len(i.Args) {
		return i.Args[index], true
	}

	return "", false
}

// IntArg is like Arg but parses the value as an integer.
// Missing or malformed values produce a ValidationError carrying usage
func (i *Invocation) IntArg(name string, index int, usage string) (int64, error) {
	raw, ok := i.Arg(name, index)
	if !ok {
		return 0, NewValidationError(usage)
	}

	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, NewValidationError(usage)
	}

	return v, nil
}

// SpamKey identifies the user within the channel for spam throttling
func (i *Invocation) SpamKey() string {
	return i.ChannelID + i.UserID
}
