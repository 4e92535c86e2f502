package store

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	base "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var _ Store = &Redis{}

type Redis struct {
	baseClient *base.Client
}

func OpenRedis(addr, pass string) (*Redis, error) {
	rdb := base.NewClient(&base.Options{
		Addr:     addr,
		Password: pass,
		DB:       0,
	})

	if err := checkRedis(rdb); err != nil {
		logrus.Errorf("failed to ping redis %q", addr)
		rdb.Close()
		return nil, err
	}

	logrus.Infof("ping to redis %q is successful", addr)
	return &Redis{baseClient: rdb}, nil
}

func checkRedis(cl *base.Client) error {
	operation := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := cl.Ping(ctx).Err(); err != nil {
			logrus.Errorf("failed to connect to redis: %v", err)
			return err
		}

		return nil
	}

	if err := backoff.Retry(operation, backoff.NewExponentialBackOff()); err != nil {
		return errors.Wrap(err, "failed to connect to redis")
	}

	return nil
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := r.baseClient.Get(ctx, key).Result()
	if err != nil {
		if err == base.Nil {
			return "", false, nil
		}
		return "", false, errors.Wrapf(err, "failed to get data from redis under key %q", key)
	}

	return val, true, nil
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	if err := r.baseClient.Set(ctx, key, value, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to write data to redis under key %q", key)
	}

	return nil
}

func (r *Redis) IncrBy(ctx context.Context, key string, delta int64) (int64, error) {
	v, err := r.baseClient.IncrBy(ctx, key, delta).Result()
	if err != nil {
		return 0, errors.Wrapf(err, "failed to increment redis key %q", key)
	}

	return v, nil
}

func (r *Redis) Close() error {
	return r.baseClient.Close()
}
