package session

import (
	"strconv"
	"time"
)

const (
	keyFailedAttempts = "failedLoginAttempts"
	keyLockoutUntil   = "lockoutUntil"
)

// Lockout throttles local login attempts. After maxAttempts consecutive
// failures the client refuses to contact the server until the lockout
// window passes.
type Lockout struct {
	storage     Storage
	maxAttempts int
	duration    time.Duration
	now         func() time.Time
}

func NewLockout(storage Storage, maxAttempts int, duration time.Duration) *Lockout {
	return &Lockout{storage: storage, maxAttempts: maxAttempts, duration: duration, now: time.Now}
}

func (l *Lockout) WithClock(now func() time.Time) *Lockout {
	l.now = now
	return l
}

// RecordFailure bumps the failure counter and starts a lockout once the
// limit is hit. It returns the attempts used so far.
func (l *Lockout) RecordFailure() (int, error) {
	attempts := l.attempts() + 1
	if err := l.storage.Set(keyFailedAttempts, strconv.Itoa(attempts)); err != nil {
		return attempts, err
	}
	if attempts >= l.maxAttempts {
		until := l.now().Add(l.duration).UnixMilli()
		if err := l.storage.Set(keyLockoutUntil, strconv.FormatInt(until, 10)); err != nil {
			return attempts, err
		}
	}
	return attempts, nil
}

// Reset clears the counter and any active lockout, for use after a
// successful login.
func (l *Lockout) Reset() {
	_ = l.storage.Delete(keyFailedAttempts)
	_ = l.storage.Delete(keyLockoutUntil)
}

// IsLocked reports whether a lockout is in force. A lapsed lockout is
// cleared on the spot so the next attempt starts fresh.
func (l *Lockout) IsLocked() bool {
	_, remaining := l.remaining()
	return remaining > 0
}

// Remaining returns how long the current lockout lasts, zero when none.
func (l *Lockout) Remaining() time.Duration {
	_, remaining := l.remaining()
	return remaining
}

func (l *Lockout) attempts() int {
	raw, ok := l.storage.Get(keyFailedAttempts)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

func (l *Lockout) remaining() (int64, time.Duration) {
	raw, ok := l.storage.Get(keyLockoutUntil)
	if !ok {
		return 0, 0
	}
	until, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		l.Reset()
		return 0, 0
	}
	remaining := time.UnixMilli(until).Sub(l.now())
	if remaining <= 0 {
		l.Reset()
		return 0, 0
	}
	return until, remaining
}
