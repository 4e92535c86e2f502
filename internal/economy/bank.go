package economy

import (
	"context"
	"sync"

	"github.com/pajbot/bankbot-discord/internal/store"
	"github.com/pajbot/bankbot-discord/pkg"
	"github.com/pkg/errors"
)

// Bank serializes balance mutations per user on top of a Store
type Bank struct {
	store store.Store

	locksMutex sync.Mutex
	locks      map[string]*keyLock
}

type keyLock struct {
	sync.Mutex
	refs int
}

func NewBank(s store.Store) *Bank {
	return &Bank{
		store: s,
		locks: map[string]*keyLock{},
	}
}

func (b *Bank) Store() store.Store {
	return b.store
}

// Lock acquires the lock for key and returns the function releasing it.
// Lock entries are dropped as soon as nobody holds or waits for them
func (b *Bank) Lock(key string) (unlock func()) {
	b.locksMutex.Lock()
	l, ok := b.locks[key]
	if !ok {
		l = &keyLock{}
		b.locks[key] = l
	}
	l.refs++
	b.locksMutex.Unlock()

	l.Lock()

	return func() {
		l.Unlock()

		b.locksMutex.Lock()
		l.refs--
		if l.refs == 0 {
			delete(b.locks, key)
		}
		b.locksMutex.Unlock()
	}
}

func (b *Bank) Balance(ctx context.Context, userID string) (int64, error) {
	balance, err := store.GetInt(ctx, b.store, store.BalanceKey(userID))
	if err != nil {
		return 0, errors.Wrapf(err, "failed to read balance of %s", userID)
	}

	return balance, nil
}

// Credit atomically adds delta to a user's balance without taking the user's lock.
// Used to pay users other than the one currently invoking a command
func (b *Bank) Credit(ctx context.Context, userID string, delta int64) (int64, error) {
	balance, err := b.store.IncrBy(ctx, store.BalanceKey(userID), delta)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to credit %d to %s", delta, userID)
	}

	return balance, nil
}

// WithAccount runs fn while holding userID's lock, with the balance read once up front
func (b *Bank) WithAccount(ctx context.Context, userID string, fn func(pkg.Account) error) error {
	unlock := b.Lock(store.BalanceKey(userID))
	defer unlock()

	balance, err := b.Balance(ctx, userID)
	if err != nil {
		return err
	}

	return fn(&account{
		bank:    b,
		userID:  userID,
		balance: balance,
	})
}

var _ pkg.Account = &account{}

type account struct {
	bank    *Bank
	userID  string
	balance int64
	delta   int64
	mutated bool
}

func (a *account) UserID() string {
	return a.userID
}

func (a *account) Balance() int64 {
	return a.balance
}

func (a *account) Add(ctx context.Context, delta int64) (int64, error) {
	if a.mutated {
		return a.balance, pkg.ErrAlreadyMutated
	}

	balance, err := a.bank.Credit(ctx, a.userID, delta)
	if err != nil {
		return a.balance, err
	}

	a.balance = balance
	a.delta = delta
	a.mutated = true

	return balance, nil
}

func (a *account) Undo(ctx context.Context) error {
	if !a.mutated {
		return nil
	}

	balance, err := a.bank.Credit(ctx, a.userID, -a.delta)
	if err != nil {
		return err
	}

	a.balance = balance
	a.delta = 0
	a.mutated = false

	return nil
}

func (a *account) Mutated() bool {
	return a.mutated
}
