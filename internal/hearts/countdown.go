package hearts

import "time"

// Countdown is the client-local regeneration timer. It mirrors the
// store's calculation for display responsiveness and is never a source
// of truth: gating decisions always re-check the last fetched ledger,
// and Reconcile overwrites local state whenever fresh server data
// arrives.
type Countdown struct {
	remaining time.Duration
	active    bool
}

// Reconcile resets the countdown from an authoritative ledger read.
// No countdown runs at full hearts.
func (c *Countdown) Reconcile(l Ledger, now time.Time) {
	if l.Hearts >= Max {
		c.active = false
		c.remaining = 0
		return
	}
	c.active = true
	c.remaining = Remaining(l.UpdatedAt, now)
	if c.remaining == 0 {
		c.remaining = RegenWindow
	}
}

// Tick advances the countdown by one second. It reports true when the
// countdown reached zero, meaning the caller should issue a Regain and
// reconcile; the countdown restarts at the full window.
func (c *Countdown) Tick() bool {
	if !c.active {
		return false
	}
	c.remaining -= time.Second
	if c.remaining > 0 {
		return false
	}
	c.remaining = RegenWindow
	return true
}

// Active reports whether a countdown is running.
func (c *Countdown) Active() bool { return c.active }

// Remaining returns the displayed time left for the next heart.
func (c *Countdown) Remaining() time.Duration {
	if !c.active {
		return 0
	}
	return c.remaining
}
