package core

import "time"

// timer is the single retry timer of the engine. It is owned by the
// engine goroutine. Every Replace and Stop bumps the generation so an
// expiry already posted for an earlier arming is ignored.
type timer struct {
	t     *time.Timer
	gen   uint64
	armed bool
	fire  func(gen uint64)
}

// Replace cancels the running timer and starts a new one.
func (t *timer) Replace(d time.Duration) {
	t.Stop()
	t.armed = true
	gen := t.gen
	t.t = time.AfterFunc(d, func() { t.fire(gen) })
}

// Stop cancels the running timer.
func (t *timer) Stop() {
	if t.t != nil {
		t.t.Stop()
		t.t = nil
	}
	t.armed = false
	t.gen++
}

// expired consumes an expiry. It returns false for stale expiries.
func (t *timer) expired(gen uint64) bool {
	if !t.armed || gen != t.gen {
		return false
	}
	t.armed, t.t = false, nil
	return true
}
