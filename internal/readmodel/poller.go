package readmodel

import (
	"context"
	"sync"
	"time"

	"github.com/goodnatureofminers/paychain-dashboard/internal/clock"
	"go.uber.org/zap"
)

type result[T any] struct {
	data T
	err  error
}

// poller owns one cache key. Its run loop is the only writer of the entry,
// and at most one fetch is outstanding at a time.
type poller[T any] struct {
	key      Key
	interval time.Duration
	fetch    func(context.Context) (T, error)
	now      func() time.Time
	metrics  Metrics
	logger   *zap.Logger
	notify   func(Key)
	wg       *sync.WaitGroup

	invalidate chan struct{}
	results    chan result[T]

	mu    sync.RWMutex
	entry Entry[T]

	// owned by run
	inFlight     bool
	refreshAfter bool
}

func newPoller[T any](c *Cache, key Key, interval time.Duration, fetch func(context.Context) (T, error)) *poller[T] {
	return &poller[T]{
		key:        key,
		interval:   interval,
		fetch:      fetch,
		now:        c.now,
		metrics:    c.metrics,
		logger:     c.logger.With(zap.Stringer("key", key)),
		notify:     c.publish,
		wg:         &c.wg,
		invalidate: make(chan struct{}, 1),
		results:    make(chan result[T], 1),
		entry:      Entry[T]{Key: key},
	}
}

func (p *poller[T]) snapshot() Entry[T] {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.entry
}

// requestRefresh asks the run loop for an immediate fetch. Repeated requests
// before the loop picks one up collapse into a single refresh.
func (p *poller[T]) requestRefresh() {
	select {
	case p.invalidate <- struct{}{}:
	default:
	}
}

func (p *poller[T]) run(ctx context.Context) {
	defer p.wg.Done()

	// The initial fetch covers anything requested before the loop started.
	select {
	case <-p.invalidate:
	default:
	}

	timer := time.NewTimer(p.interval)
	defer timer.Stop()
	p.start(ctx)

	for {
		select {
		case <-ctx.Done():
			return

		case <-timer.C:
			timer.Reset(p.interval)
			if p.inFlight {
				p.metrics.ObserveSkip(p.key.Kind().String())
				p.logger.Debug("refresh still in flight; skipping tick")
				continue
			}
			p.start(ctx)

		case <-p.invalidate:
			p.metrics.ObserveInvalidate(p.key.Kind().String())
			clock.ResetTimer(timer, p.interval)
			if p.inFlight {
				p.refreshAfter = true
				continue
			}
			p.start(ctx)

		case res := <-p.results:
			p.apply(res)
			if p.refreshAfter {
				p.refreshAfter = false
				clock.ResetTimer(timer, p.interval)
				p.start(ctx)
			}
		}
	}
}

func (p *poller[T]) start(ctx context.Context) {
	p.inFlight = true
	p.mu.Lock()
	p.entry.InFlight = true
	p.mu.Unlock()
	p.notify(p.key)

	started := time.Now()
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		data, err := p.fetch(ctx)
		p.metrics.ObservePoll(p.key.Kind().String(), err, started)
		p.results <- result[T]{data: data, err: err}
	}()
}

func (p *poller[T]) apply(res result[T]) {
	p.inFlight = false

	p.mu.Lock()
	p.entry.InFlight = false
	if res.err != nil {
		p.entry.Err = res.err
	} else {
		p.entry.Data = res.data
		p.entry.HasData = true
		p.entry.LastFetchedAt = p.now()
		p.entry.Err = nil
	}
	p.mu.Unlock()

	if res.err != nil {
		p.logger.Warn("refresh failed; keeping last known value", zap.Error(res.err))
	} else {
		p.logger.Debug("refreshed")
	}
	p.notify(p.key)
}
