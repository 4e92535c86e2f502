package economy

import (
	"context"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/pajbot/bankbot-discord/internal/store"
	"github.com/pajbot/bankbot-discord/pkg"
	"github.com/pkg/errors"
)

// ownerlessStore refuses to record company owners
type ownerlessStore struct {
	store.Store
}

func (s ownerlessStore) Set(ctx context.Context, key, value string) error {
	if strings.HasSuffix(key, "_owner") {
		return errors.New("owner writes are disabled")
	}
	return s.Store.Set(ctx, key, value)
}

func buy(t *testing.T, bank *Bank, userID, companyID string) (CompanyRecord, error) {
	var record CompanyRecord
	var buyErr error
	err := bank.WithAccount(context.Background(), userID, func(a pkg.Account) error {
		record, buyErr = bank.BuyCompany(context.Background(), a, companyID)
		return nil
	})
	qt.Assert(t, err, qt.IsNil)
	return record, buyErr
}

func TestCompaniesDefaults(t *testing.T) {
	c := qt.New(t)
	bank := NewBank(store.NewMemory())

	records, err := bank.Companies(context.Background())
	c.Assert(err, qt.IsNil)
	c.Assert(records, qt.HasLen, len(Catalog))
	for i, record := range records {
		c.Assert(record.ID, qt.Equals, Catalog[i].ID)
		c.Assert(record.Owner, qt.Equals, "")
		c.Assert(record.Price, qt.Equals, Catalog[i].BasePrice)
	}
}

func TestBuyCompany(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	bank := NewBank(store.NewMemory())

	_, err := bank.Credit(ctx, "u1", 15000)
	c.Assert(err, qt.IsNil)

	before, err := buy(t, bank, "u1", "food")
	c.Assert(err, qt.IsNil)
	c.Assert(before.Owner, qt.Equals, "")
	c.Assert(before.Price, qt.Equals, int64(10000))

	balance, _ := bank.Balance(ctx, "u1")
	c.Assert(balance, qt.Equals, int64(5000))

	record, err := bank.Company(ctx, "food")
	c.Assert(err, qt.IsNil)
	c.Assert(record.Owner, qt.Equals, "u1")
	c.Assert(record.Price, qt.Equals, int64(12000))

	// Buying your own company is rejected
	_, err = buy(t, bank, "u1", "food")
	_, ok := pkg.AsValidationError(err)
	c.Assert(ok, qt.IsTrue)
}

func TestBuyCompanyBuyout(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	bank := NewBank(store.NewMemory())

	bank.Credit(ctx, "u1", 10000)
	bank.Credit(ctx, "u2", 20000)

	_, err := buy(t, bank, "u1", "food")
	c.Assert(err, qt.IsNil)

	before, err := buy(t, bank, "u2", "food")
	c.Assert(err, qt.IsNil)
	c.Assert(before.Owner, qt.Equals, "u1")
	c.Assert(before.Price, qt.Equals, int64(12000))

	u1, _ := bank.Balance(ctx, "u1")
	u2, _ := bank.Balance(ctx, "u2")
	c.Assert(u1, qt.Equals, int64(12000))
	c.Assert(u2, qt.Equals, int64(8000))

	record, _ := bank.Company(ctx, "food")
	c.Assert(record.Owner, qt.Equals, "u2")
	c.Assert(record.Price, qt.Equals, int64(14400))
}

func TestBuyCompanyRejections(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	bank := NewBank(store.NewMemory())
	bank.Credit(ctx, "u1", 100)

	_, err := buy(t, bank, "u1", "nope")
	_, ok := pkg.AsValidationError(err)
	c.Assert(ok, qt.IsTrue)

	_, err = buy(t, bank, "u1", "bank")
	_, ok = pkg.AsValidationError(err)
	c.Assert(ok, qt.IsTrue)

	balance, _ := bank.Balance(ctx, "u1")
	c.Assert(balance, qt.Equals, int64(100))

	record, _ := bank.Company(ctx, "bank")
	c.Assert(record.Owner, qt.Equals, "")
}

func TestBuyCompanyOwnerWriteFails(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	bank := NewBank(ownerlessStore{store.NewMemory()})
	bank.Credit(ctx, "u1", 20000)

	err := bank.WithAccount(ctx, "u1", func(a pkg.Account) error {
		_, buyErr := bank.BuyCompany(ctx, a, "food")
		c.Assert(buyErr, qt.ErrorMatches, "failed to set owner of company food: owner writes are disabled")
		c.Assert(a.Mutated(), qt.IsFalse)
		c.Assert(a.Balance(), qt.Equals, int64(20000))
		return nil
	})
	c.Assert(err, qt.IsNil)

	balance, _ := bank.Balance(ctx, "u1")
	c.Assert(balance, qt.Equals, int64(20000))

	record, _ := bank.Company(ctx, "food")
	c.Assert(record.Owner, qt.Equals, "")
	c.Assert(record.Price, qt.Equals, int64(10000))
}
