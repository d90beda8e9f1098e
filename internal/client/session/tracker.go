package session

import (
	"context"
	"strconv"
	"time"
)

const (
	keyToken     = "token"
	keyLoginTime = "loginTime"
)

// Tracker keeps a client-side view of the login session. The session
// duration here is independent of the server token lifetime: the client
// treats the session as stale after its own, usually shorter, window.
type Tracker struct {
	storage  Storage
	duration time.Duration
	now      func() time.Time
}

func NewTracker(storage Storage, duration time.Duration) *Tracker {
	return &Tracker{storage: storage, duration: duration, now: time.Now}
}

// WithClock replaces the time source, for tests.
func (t *Tracker) WithClock(now func() time.Time) *Tracker {
	t.now = now
	return t
}

// SetAuth records the token and the login instant in epoch milliseconds.
func (t *Tracker) SetAuth(token string) error {
	if err := t.storage.Set(keyToken, token); err != nil {
		return err
	}
	return t.storage.Set(keyLoginTime, strconv.FormatInt(t.now().UnixMilli(), 10))
}

func (t *Tracker) Token() (string, bool) {
	if !t.IsAuthenticated() {
		return "", false
	}
	return t.storage.Get(keyToken)
}

// IsAuthenticated reports whether a live session exists. An expired or
// malformed session is cleared as a side effect so later calls are cheap.
func (t *Tracker) IsAuthenticated() bool {
	token, ok := t.storage.Get(keyToken)
	if !ok || token == "" {
		return false
	}
	raw, ok := t.storage.Get(keyLoginTime)
	if !ok {
		t.clear()
		return false
	}
	loginMillis, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		t.clear()
		return false
	}
	elapsed := t.now().Sub(time.UnixMilli(loginMillis))
	if elapsed >= t.duration {
		t.clear()
		return false
	}
	return true
}

// RemainingTime returns whole minutes left in the session, floored, and
// false when no live session exists.
func (t *Tracker) RemainingTime() (int, bool) {
	raw, ok := t.storage.Get(keyLoginTime)
	if !ok {
		return 0, false
	}
	loginMillis, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	remaining := t.duration - t.now().Sub(time.UnixMilli(loginMillis))
	if remaining <= 0 {
		return 0, false
	}
	return int(remaining.Minutes()), true
}

func (t *Tracker) Logout() {
	t.clear()
}

func (t *Tracker) clear() {
	_ = t.storage.Delete(keyToken)
	_ = t.storage.Delete(keyLoginTime)
}

// Watch polls the session once a second and invokes onExpire exactly once
// when the session lapses. It returns when the context is done or the
// session has expired.
func (t *Tracker) Watch(ctx context.Context, onExpire func()) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !t.IsAuthenticated() {
				if onExpire != nil {
					onExpire()
				}
				return
			}
		}
	}
}
