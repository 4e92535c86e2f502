package store

import (
	"context"
	"strconv"
	"sync"

	"github.com/pkg/errors"
)

var _ Store = &Memory{}

// Memory keeps everything in process memory. Data is lost on restart.
type Memory struct {
	mutex sync.Mutex
	data  map[string]string
}

func NewMemory() *Memory {
	return &Memory{
		data: map[string]string{},
	}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.data[key] = value
	return nil
}

func (m *Memory) IncrBy(_ context.Context, key string, delta int64) (int64, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	var current int64
	if raw, ok := m.data[key]; ok && raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return 0, errors.Wrapf(ErrNotInteger, "key %q holds %q", key, raw)
		}
		current = v
	}

	current += delta
	m.data[key] = strconv.FormatInt(current, 10)

	return current, nil
}

func (m *Memory) Close() error {
	return nil
}
