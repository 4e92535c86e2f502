package store

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pajlada/stupidmigration"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	_ "github.com/lib/pq"
)

var _ Store = &Postgres{}

type Postgres struct {
	sqlClient *sql.DB
}

// OpenPostgres connects to the given DSN, retrying the initial ping with an exponential backoff
func OpenPostgres(dsn string) (*Postgres, error) {
	sqlClient, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open postgres connection")
	}

	operation := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := sqlClient.PingContext(ctx); err != nil {
			logrus.Errorf("failed to ping postgres: %v", err)
			return err
		}
		return nil
	}

	if err := backoff.Retry(operation, backoff.NewExponentialBackOff()); err != nil {
		sqlClient.Close()
		return nil, errors.Wrap(err, "unable to ping postgres")
	}

	logrus.Info("ping to postgres is successful")

	return &Postgres{sqlClient: sqlClient}, nil
}

// Migrate runs the SQL migrations found in migrationsDir
func (p *Postgres) Migrate(migrationsDir string) error {
	if err := stupidmigration.Migrate(migrationsDir, p.sqlClient); err != nil {
		return errors.Wrap(err, "unable to run SQL migrations")
	}
	return nil
}

func (p *Postgres) Get(ctx context.Context, key string) (string, bool, error) {
	const query = `SELECT value FROM bank_kv WHERE key=$1`

	var value string
	err := p.sqlClient.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, errors.Wrapf(err, "failed to get %q from postgres", key)
	}

	return value, true, nil
}

func (p *Postgres) Set(ctx context.Context, key, value string) error {
	const query = `INSERT INTO bank_kv (key, value) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET value=$2`

	if _, err := p.sqlClient.ExecContext(ctx, query, key, value); err != nil {
		return errors.Wrapf(err, "failed to set %q in postgres", key)
	}

	return nil
}

func (p *Postgres) IncrBy(ctx context.Context, key string, delta int64) (int64, error) {
	const query = `INSERT INTO bank_kv (key, value) VALUES ($1, $2)
ON CONFLICT (key) DO UPDATE SET value=(bank_kv.value::bigint + $3)::text
RETURNING value::bigint`

	var value int64
	err := p.sqlClient.QueryRowContext(ctx, query, key, strconv.FormatInt(delta, 10), delta).Scan(&value)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to increment %q in postgres", key)
	}

	return value, nil
}

func (p *Postgres) Close() error {
	return p.sqlClient.Close()
}
