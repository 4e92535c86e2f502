// Package cooldown tracks when a user last invoked a command.
//
// Entries are never removed by timers. An entry whose window has elapsed is
// treated exactly like a missing entry, and Prune can be called periodically
// to reclaim the memory.
package cooldown

import (
	"math"
	"sync"
	"time"
)

type key struct {
	userID  string
	command string
}

type entry struct {
	stamped  time.Time
	duration time.Duration
}

func (e entry) expiry() time.Time {
	return e.stamped.Add(e.duration)
}

type Tracker struct {
	mutex   sync.Mutex
	entries map[key]entry

	now func() time.Time
}

type Option func(*Tracker)

// WithClock replaces the clock used by the tracker
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

func New(opts ...Option) *Tracker {
	t := &Tracker{
		entries: map[key]entry{},
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// CheckAndStamp reports whether userID may run command now.
// If allowed, the current time is recorded for (userID, command).
// If not, the remaining wait is returned and the existing entry is left untouched.
func (t *Tracker) CheckAndStamp(userID, command string, d time.Duration) (remaining time.Duration, allowed bool) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	now := t.now()
	k := key{userID, command}

	if e, ok := t.entries[k]; ok {
		if expiry := e.expiry(); now.Before(expiry) {
			return expiry.Sub(now), false
		}
	}

	if d <= 0 {
		delete(t.entries, k)
		return 0, true
	}

	t.entries[k] = entry{
		stamped:  now,
		duration: d,
	}

	return 0, true
}

// Remaining returns how long userID still has to wait before running command again
func (t *Tracker) Remaining(userID, command string) time.Duration {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	e, ok := t.entries[key{userID, command}]
	if !ok {
		return 0
	}

	if remaining := e.expiry().Sub(t.now()); remaining > 0 {
		return remaining
	}

	return 0
}

// Revert drops the stamp for (userID, command), used when the invocation it guarded failed without changing any state
func (t *Tracker) Revert(userID, command string) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	delete(t.entries, key{userID, command})
}

// Prune removes all entries whose window has elapsed and returns how many were removed
func (t *Tracker) Prune() (removed int) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	now := t.now()
	for k, e := range t.entries {
		if !now.Before(e.expiry()) {
			delete(t.entries, k)
			removed++
		}
	}

	return
}

// Len returns the number of tracked entries, expired or not
func (t *Tracker) Len() int {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return len(t.entries)
}

// Seconds rounds a remaining duration up to whole seconds
func Seconds(remaining time.Duration) int64 {
	if remaining <= 0 {
		return 0
	}
	return int64(math.Ceil(remaining.Seconds()))
}
