// Package readmodel keeps independently polled snapshots of the ledger's
// chain, pending queue and per-user balances.
//
// Every key is refreshed by its own timer task. A tick that arrives while the
// key's previous fetch is still running is skipped, a failed fetch keeps the
// last known value and records the error, and Invalidate fetches a key right
// away and restarts its timer. Readers never block on a fetch; they get a
// copy of the latest Entry and may subscribe to change notifications.
package readmodel

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/goodnatureofminers/paychain-dashboard/internal/ledger"
	"github.com/goodnatureofminers/paychain-dashboard/internal/model"
	"go.uber.org/zap"
)

// Cache is the read-model cache. Construct it with New, then Start it once
// and Stop it at shutdown.
type Cache struct {
	source    Source
	metrics   Metrics
	logger    *zap.Logger
	intervals Intervals
	now       func() time.Time

	chain   *poller[[]model.Block]
	pending *poller[[]model.Transaction]

	mu       sync.Mutex
	balances map[string]*poller[model.Balance]
	ctx      context.Context
	cancel   context.CancelFunc
	stopped  bool
	wg       sync.WaitGroup

	subsMu  sync.Mutex
	subs    map[int]chan Key
	nextSub int
}

// Option customizes a Cache.
type Option func(*Cache)

// WithIntervals overrides refresh periods. Zero fields keep their defaults.
func WithIntervals(i Intervals) Option {
	return func(c *Cache) {
		c.intervals = i.withDefaults()
	}
}

// WithNow replaces the clock used for LastFetchedAt.
func WithNow(now func() time.Time) Option {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

// New builds a Cache reading from source.
func New(source Source, metrics Metrics, logger *zap.Logger, opts ...Option) (*Cache, error) {
	if source == nil {
		return nil, errors.New("read model source is required")
	}
	if metrics == nil {
		return nil, errors.New("read model metrics is required")
	}

	c := &Cache{
		source:    source,
		metrics:   metrics,
		logger:    logger.Named("readmodel"),
		intervals: DefaultIntervals(),
		now:       time.Now,
		balances:  make(map[string]*poller[model.Balance]),
		subs:      make(map[int]chan Key),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.chain = newPoller(c, ChainKey(), c.intervals.Chain, source.FetchChain)
	c.pending = newPoller(c, PendingKey(), c.intervals.Pending, source.FetchPending)
	return c, nil
}

// Start launches the refresh tasks of every known key. Balance keys created
// later start on creation. Start is a no-op after the first call.
func (c *Cache) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ctx != nil || c.stopped {
		return
	}

	c.ctx, c.cancel = context.WithCancel(ctx)
	c.launch(c.chain.run)
	c.launch(c.pending.run)
	for _, p := range c.balances {
		c.launch(p.run)
	}
	c.logger.Info("read model started",
		zap.Duration("chain_interval", c.intervals.Chain),
		zap.Duration("pending_interval", c.intervals.Pending),
		zap.Duration("balance_interval", c.intervals.Balance),
		zap.Int("balance_keys", len(c.balances)),
	)
}

// Stop cancels every refresh task, waits for them and closes all subscriptions.
func (c *Cache) Stop() {
	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return
	}
	c.stopped = true
	if c.cancel != nil {
		c.cancel()
	}
	c.mu.Unlock()

	c.wg.Wait()

	c.subsMu.Lock()
	for id, ch := range c.subs {
		close(ch)
		delete(c.subs, id)
	}
	c.subsMu.Unlock()
	c.logger.Info("read model stopped")
}

// launch must be called with c.mu held and c.ctx set.
func (c *Cache) launch(run func(context.Context)) {
	c.wg.Add(1)
	go run(c.ctx)
}

// Chain returns the block list snapshot.
func (c *Cache) Chain() Entry[[]model.Block] {
	return c.chain.snapshot()
}

// Pending returns the pending queue snapshot.
func (c *Cache) Pending() Entry[[]model.Transaction] {
	return c.pending.snapshot()
}

// Balance returns user's balance snapshot. The first read for a user creates
// its key and starts polling it; later reads never trigger a fetch by themselves.
func (c *Cache) Balance(user string) Entry[model.Balance] {
	return c.balance(user).snapshot()
}

// BalanceUsers lists every user with a balance key, sorted.
func (c *Cache) BalanceUsers() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	users := make([]string, 0, len(c.balances))
	for user := range c.balances {
		users = append(users, user)
	}
	sort.Strings(users)
	return users
}

// Invalidate requests an immediate refresh of key and restarts its timer.
// If a fetch for key is in flight, one more fetch follows as soon as it completes.
func (c *Cache) Invalidate(key Key) {
	switch key.Kind() {
	case KindChain:
		c.chain.requestRefresh()
	case KindPending:
		c.pending.requestRefresh()
	case KindBalance:
		c.balance(key.User()).requestRefresh()
	default:
		c.logger.Warn("invalidate of unknown key ignored", zap.Stringer("key", key))
	}
}

// Subscribe returns a channel receiving the key of every entry change and a
// function that ends the subscription. Notifications are dropped for a
// subscriber whose buffer is full; the entry snapshot remains the source of truth.
func (c *Cache) Subscribe() (<-chan Key, func()) {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()

	ch := make(chan Key, subscriberBuffer)
	c.mu.Lock()
	stopped := c.stopped
	c.mu.Unlock()
	if stopped {
		close(ch)
		return ch, func() {}
	}

	id := c.nextSub
	c.nextSub++
	c.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.subsMu.Lock()
			defer c.subsMu.Unlock()
			if sub, ok := c.subs[id]; ok {
				close(sub)
				delete(c.subs, id)
			}
		})
	}
}

func (c *Cache) publish(key Key) {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	for _, ch := range c.subs {
		select {
		case ch <- key:
		default:
		}
	}
}

func (c *Cache) balance(user string) *poller[model.Balance] {
	c.mu.Lock()
	defer c.mu.Unlock()

	if p, ok := c.balances[user]; ok {
		return p
	}

	p := newPoller(c, BalanceKey(user), c.intervals.Balance, func(ctx context.Context) (model.Balance, error) {
		return c.fetchBalance(ctx, user)
	})
	c.balances[user] = p
	c.metrics.SetBalanceKeys(len(c.balances))
	if c.ctx != nil && !c.stopped {
		c.launch(p.run)
	}
	c.logger.Debug("balance key created", zap.String("user", user))
	return p
}

// fetchBalance treats an unknown account as an empty one.
func (c *Cache) fetchBalance(ctx context.Context, user string) (model.Balance, error) {
	balance, err := c.source.FetchBalance(ctx, user)
	if errors.Is(err, ledger.ErrNotFound) {
		return model.Balance{User: user}, nil
	}
	return balance, err
}
