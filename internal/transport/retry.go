package transport

import (
	"time"

	"github.com/sethvargo/go-retry"
)

// RetryKind selects the reconnect strategy of a session.
type RetryKind int

const (
	// RetryNone gives up after the first failed attempt.
	RetryNone RetryKind = iota
	// RetryExponentialJitter doubles the delay after every failure, caps it
	// at Max and randomizes it by JitterPercent.
	RetryExponentialJitter
)

// RetryPolicy describes how a session recovers from transient connection
// failures.
type RetryPolicy struct {
	Kind          RetryKind
	Base          time.Duration
	Max           time.Duration
	JitterPercent uint64
	// MaxElapsed bounds the total time spent retrying. Zero retries forever.
	MaxElapsed time.Duration
}

// DefaultRetryPolicy is exponential backoff with jitter and no deadline.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		Kind:          RetryExponentialJitter,
		Base:          500 * time.Millisecond,
		Max:           time.Minute,
		JitterPercent: 20,
	}
}

// backoff builds a fresh go-retry backoff for one reconnect cycle.
func (p RetryPolicy) backoff() retry.Backoff {
	if p.Kind != RetryExponentialJitter {
		return retry.WithMaxRetries(0, retry.NewConstant(time.Second))
	}

	base := p.Base
	if base <= 0 {
		base = DefaultRetryPolicy().Base
	}

	b := retry.NewExponential(base)
	if p.Max > 0 {
		b = retry.WithCappedDuration(p.Max, b)
	}
	if p.JitterPercent > 0 {
		b = retry.WithJitterPercent(p.JitterPercent, b)
	}
	if p.MaxElapsed > 0 {
		b = retry.WithMaxDuration(p.MaxElapsed, b)
	}
	return b
}
