package commands

import (
	"fmt"

	"github.com/pajbot/bankbot-discord/pkg"
	"github.com/pajbot/commandmatcher"
)

// Registry maps command names and text triggers to commands. It is not modified after construction
type Registry struct {
	commands []pkg.Command
	byName   map[string]pkg.Command

	match func(text string) (interface{}, []string)
}

func NewRegistry(commands ...pkg.Command) (*Registry, error) {
	c := commandmatcher.New()

	r := &Registry{
		byName: map[string]pkg.Command{},
		match:  c.Match,
	}

	seenTriggers := map[string]string{}

	for _, command := range commands {
		name := command.Name()
		if name == "" {
			return nil, fmt.Errorf("command must have a name")
		}
		if _, ok := r.byName[name]; ok {
			return nil, fmt.Errorf("command with the name '%s' has already been registered", name)
		}

		r.byName[name] = command
		r.commands = append(r.commands, command)

		if textCommand, ok := command.(pkg.TextCommand); ok {
			triggers := textCommand.Triggers()
			for _, trigger := range triggers {
				if other, ok := seenTriggers[trigger]; ok {
					return nil, fmt.Errorf("[%s] trigger '%s' is already used by %s", name, trigger, other)
				}
				seenTriggers[trigger] = name
			}

			if len(triggers) > 0 {
				c.Register(triggers, command)
			}
		}
	}

	return r, nil
}

// Get returns the command with the given name, or nil
func (r *Registry) Get(name string) pkg.Command {
	return r.byName[name]
}

// List returns all commands in registration order
func (r *Registry) List() []pkg.Command {
	return r.commands
}

// Match resolves a chat message to a text command. args are the words following the trigger
func (r *Registry) Match(text string) (command pkg.Command, args []string) {
	c, parts := r.match(text)
	if c == nil {
		return nil, nil
	}

	command, ok := c.(pkg.Command)
	if !ok {
		return nil, nil
	}

	if len(parts) > 1 {
		args = parts[1:]
	}

	return command, args
}
