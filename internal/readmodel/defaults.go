package readmodel

import "time"

const (
	chainInterval   = 3 * time.Second
	pendingInterval = 1 * time.Second
	balanceInterval = 3 * time.Second

	subscriberBuffer = 64
)

// Intervals is the refresh period per key class.
type Intervals struct {
	Chain   time.Duration
	Pending time.Duration
	Balance time.Duration
}

// DefaultIntervals returns the fixed dashboard periods: chain 3s, pending 1s, balance 3s.
func DefaultIntervals() Intervals {
	return Intervals{
		Chain:   chainInterval,
		Pending: pendingInterval,
		Balance: balanceInterval,
	}
}

func (i Intervals) withDefaults() Intervals {
	d := DefaultIntervals()
	if i.Chain <= 0 {
		i.Chain = d.Chain
	}
	if i.Pending <= 0 {
		i.Pending = d.Pending
	}
	if i.Balance <= 0 {
		i.Balance = d.Balance
	}
	return i
}
