package pkg

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/pkg/errors"
)

func TestInvocationArg(t *testing.T) {
	c := qt.New(t)

	text := &Invocation{Args: []string{"100"}}
	v, ok := text.Arg("wager", 0)
	c.Assert(ok, qt.IsTrue)
	c.Assert(v, qt.Equals, "100")

	_, ok = text.Arg("wager", 1)
	c.Assert(ok, qt.IsFalse)

	slash := &Invocation{Structured: true, Options: map[string]string{"wager": "25"}}
	n, err := slash.IntArg("wager", 0, "usage")
	c.Assert(err, qt.IsNil)
	c.Assert(n, qt.Equals, int64(25))
}

func TestInvocationIntArgInvalid(t *testing.T) {
	c := qt.New(t)

	for _, inv := range []*Invocation{
		{},
		{Args: []string{"abc"}},
		{Options: map[string]string{"wager": ""}},
	} {
		_, err := inv.IntArg("wager", 0, "usage: dice <wager>")
		v, ok := AsValidationError(err)
		c.Assert(ok, qt.IsTrue)
		c.Assert(v.Message, qt.Equals, "usage: dice <wager>")
	}
}

func TestAsValidationErrorWrapped(t *testing.T) {
	c := qt.New(t)

	err := errors.Wrap(ValidationErrorf("need %d", 10), "dice")
	v, ok := AsValidationError(err)
	c.Assert(ok, qt.IsTrue)
	c.Assert(v.Message, qt.Equals, "need 10")

	_, ok = AsValidationError(errors.New("boom"))
	c.Assert(ok, qt.IsFalse)
}
