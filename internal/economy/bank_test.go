package economy

import (
	"context"
	"sync"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/pajbot/bankbot-discord/internal/store"
	"github.com/pajbot/bankbot-discord/pkg"
	"github.com/pajbot/testhelper"
)

func TestWithAccountLazyBalance(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	bank := NewBank(store.NewMemory())

	err := bank.WithAccount(ctx, "u1", func(a pkg.Account) error {
		c.Assert(a.UserID(), qt.Equals, "u1")
		c.Assert(a.Balance(), qt.Equals, int64(0))
		c.Assert(a.Mutated(), qt.IsFalse)

		balance, err := a.Add(ctx, 250)
		c.Assert(err, qt.IsNil)
		c.Assert(balance, qt.Equals, int64(250))
		c.Assert(a.Balance(), qt.Equals, int64(250))
		c.Assert(a.Mutated(), qt.IsTrue)

		_, err = a.Add(ctx, 1)
		c.Assert(err, qt.Equals, pkg.ErrAlreadyMutated)
		return nil
	})
	c.Assert(err, qt.IsNil)

	balance, err := bank.Balance(ctx, "u1")
	c.Assert(err, qt.IsNil)
	c.Assert(balance, qt.Equals, int64(250))
}

// Concurrent read-modify-write cycles for the same user must not lose updates
func TestWithAccountSerializesSameUser(t *testing.T) {
	ctx := context.Background()
	bank := NewBank(store.NewMemory())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bank.WithAccount(ctx, "u1", func(a pkg.Account) error {
				if a.Balance() < 0 {
					return nil
				}
				_, err := a.Add(ctx, 10)
				return err
			})
		}()
	}
	wg.Wait()

	balance, err := bank.Balance(ctx, "u1")
	qt.Assert(t, err, qt.IsNil)
	testhelper.AssertIntsEqual(t, 500, int(balance))
	testhelper.AssertIntsEqual(t, 0, len(bank.locks))
}

func TestCredit(t *testing.T) {
	ctx := context.Background()
	bank := NewBank(store.NewMemory())

	balance, err := bank.Credit(ctx, "u2", 75)
	qt.Assert(t, err, qt.IsNil)
	testhelper.AssertIntsEqual(t, 75, int(balance))
}

func TestAccountUndo(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	bank := NewBank(store.NewMemory())

	_, err := bank.Credit(ctx, "u1", 1000)
	c.Assert(err, qt.IsNil)

	err = bank.WithAccount(ctx, "u1", func(a pkg.Account) error {
		// nothing to undo yet
		c.Assert(a.Undo(ctx), qt.IsNil)
		c.Assert(a.Balance(), qt.Equals, int64(1000))

		_, err := a.Add(ctx, -400)
		c.Assert(err, qt.IsNil)
		c.Assert(a.Mutated(), qt.IsTrue)

		c.Assert(a.Undo(ctx), qt.IsNil)
		c.Assert(a.Mutated(), qt.IsFalse)
		c.Assert(a.Balance(), qt.Equals, int64(1000))

		// an undone account may be written again
		_, err = a.Add(ctx, 5)
		c.Assert(err, qt.IsNil)
		return nil
	})
	c.Assert(err, qt.IsNil)

	balance, err := bank.Balance(ctx, "u1")
	c.Assert(err, qt.IsNil)
	c.Assert(balance, qt.Equals, int64(1005))
}
