package help

import (
	"context"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/pajbot/bankbot-discord/internal/commands/balance"
	"github.com/pajbot/bankbot-discord/pkg"
)

func TestLines(t *testing.T) {
	c := qt.New(t)

	var cmd *Command
	cmd = New(0, func() []pkg.Command {
		return []pkg.Command{balance.New(0), cmd}
	})

	c.Assert(cmd.Lines(false), qt.DeepEquals, []string{
		"`فلوسي` - اعرض رصيدك",
		"`اوامر` - عرض هذه القائمة",
	})
	c.Assert(cmd.Lines(true), qt.DeepEquals, []string{
		"`/balance` - اعرض رصيدك",
		"`/help` - عرض هذه القائمة",
	})

	reply, err := cmd.Execute(context.Background(), &pkg.Invocation{Structured: true}, nil)
	c.Assert(err, qt.IsNil)
	c.Assert(reply.Embed.Description, qt.Contains, "`/balance`")
}
