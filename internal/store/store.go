package store

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// Store is a string key-value store. All values are scalars; balances are stored as base 10 integers.
type Store interface {
	// Get returns the value stored under key. found is false if the key has never been set
	Get(ctx context.Context, key string) (value string, found bool, err error)

	Set(ctx context.Context, key, value string) error

	// IncrBy atomically adds delta to the integer stored under key, treating a missing key as 0, and returns the new value
	IncrBy(ctx context.Context, key string, delta int64) (int64, error)

	Close() error
}

var ErrNotInteger = errors.New("value is not an integer")

func BalanceKey(userID string) string {
	return "balance_" + userID
}

func CompanyOwnerKey(companyID string) string {
	return fmt.Sprintf("company_%s_owner", companyID)
}

func CompanyPriceKey(companyID string) string {
	return fmt.Sprintf("company_%s_price", companyID)
}

// GetInt reads an integer value, returning 0 if the key is absent
func GetInt(ctx context.Context, s Store, key string) (int64, error) {
	raw, found, err := s.Get(ctx, key)
	if err != nil {
		return 0, err
	}
	if !found || raw == "" {
		return 0, nil
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrNotInteger, "key %q holds %q", key, raw)
	}

	return v, nil
}
