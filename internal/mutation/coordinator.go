// Package mutation runs user-triggered writes against the ledger and
// invalidates the read-model keys each write affects.
package mutation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goodnatureofminers/paychain-dashboard/internal/ledger"
	"github.com/goodnatureofminers/paychain-dashboard/internal/readmodel"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrPending is returned when a mutation is triggered while another of the same kind is in flight.
var ErrPending = errors.New("mutation already pending")

const genericFailureMessage = "submission failed"

// Coordinator tracks one state machine per mutation kind. At most one
// mutation of a kind is Pending; a trigger while Pending is rejected.
type Coordinator struct {
	ledger   Ledger
	cache    Invalidator
	form     Form
	notifier Notifier
	metrics  Metrics
	logger   *zap.Logger
	now      func() time.Time
	newID    func() uuid.UUID

	mu     sync.Mutex
	states map[Kind]State
	last   map[Kind]Notification
}

// NewCoordinator builds a Coordinator. A nil notifier drops notifications;
// they are still available through Last.
func NewCoordinator(
	ledger Ledger,
	cache Invalidator,
	form Form,
	notifier Notifier,
	metrics Metrics,
	logger *zap.Logger,
) (*Coordinator, error) {
	if ledger == nil {
		return nil, errors.New("mutation ledger is required")
	}
	if cache == nil {
		return nil, errors.New("mutation invalidator is required")
	}
	if form == nil {
		return nil, errors.New("mutation form is required")
	}
	if metrics == nil {
		return nil, errors.New("mutation metrics is required")
	}
	if notifier == nil {
		notifier = NotifierFunc(func(Notification) {})
	}

	return &Coordinator{
		ledger:   ledger,
		cache:    cache,
		form:     form,
		notifier: notifier,
		metrics:  metrics,
		logger:   logger.Named("mutation"),
		now:      time.Now,
		newID:    uuid.New,
		states:   map[Kind]State{Transfer: Idle, Faucet: Idle},
		last:     make(map[Kind]Notification),
	}, nil
}

// State returns the current state of kind.
func (c *Coordinator) State(kind Kind) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.states[kind]; ok {
		return s
	}
	return Idle
}

// Last returns the most recent outcome of kind.
func (c *Coordinator) Last(kind Kind) (Notification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n, ok := c.last[kind]
	return n, ok
}

// Transfer submits the form's transfer. On success the pending queue is
// refreshed immediately. It blocks until the ledger answers.
func (c *Coordinator) Transfer(ctx context.Context) (Notification, error) {
	id, err := c.begin(Transfer)
	if err != nil {
		return Notification{}, err
	}
	req := c.form.TransferRequest()
	logger := c.logger.With(
		zap.Stringer("mutation_id", id),
		zap.String("kind", string(Transfer)),
		zap.String("from", req.From),
		zap.String("to", req.To),
		zap.Int64("amount", req.Amount),
	)

	started := time.Now()
	res, err := c.ledger.SubmitTransfer(ctx, req)
	c.metrics.ObserveMutation(string(Transfer), err, started)
	if err != nil {
		logger.Warn("transfer failed", zap.Error(err))
		return c.finish(c.failure(id, Transfer, err)), err
	}

	c.cache.Invalidate(readmodel.PendingKey())
	logger.Info("transfer queued", zap.String("status", res.Status))
	return c.finish(Notification{
		ID:      id,
		Kind:    Transfer,
		State:   Succeeded,
		Message: fmt.Sprintf("transfer of %d from %s to %s %s", req.Amount, req.From, req.To, statusText(res.Status)),
		At:      c.now(),
	}), nil
}

// Faucet requests test funds for the viewed user. On success that user's
// balance is refreshed immediately.
func (c *Coordinator) Faucet(ctx context.Context) (Notification, error) {
	id, err := c.begin(Faucet)
	if err != nil {
		return Notification{}, err
	}
	req := c.form.FaucetRequest()
	logger := c.logger.With(
		zap.Stringer("mutation_id", id),
		zap.String("kind", string(Faucet)),
		zap.String("to", req.To),
		zap.Int64("amount", req.Amount),
	)

	started := time.Now()
	balance, err := c.ledger.SubmitFaucet(ctx, req)
	c.metrics.ObserveMutation(string(Faucet), err, started)
	if err != nil {
		logger.Warn("faucet grant failed", zap.Error(err))
		return c.finish(c.failure(id, Faucet, err)), err
	}

	c.cache.Invalidate(readmodel.BalanceKey(req.To))
	logger.Info("faucet grant credited", zap.Int64("balance", balance.Balance))
	return c.finish(Notification{
		ID:      id,
		Kind:    Faucet,
		State:   Succeeded,
		Message: fmt.Sprintf("credited %d to %s, balance is now %d", req.Amount, balance.User, balance.Balance),
		Balance: &balance,
		At:      c.now(),
	}), nil
}

func (c *Coordinator) begin(kind Kind) (uuid.UUID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.states[kind] == Pending {
		c.metrics.ObserveRejected(string(kind))
		return uuid.Nil, fmt.Errorf("%s: %w", kind, ErrPending)
	}
	c.states[kind] = Pending
	return c.newID(), nil
}

func (c *Coordinator) finish(n Notification) Notification {
	c.mu.Lock()
	c.states[n.Kind] = n.State
	c.last[n.Kind] = n
	c.mu.Unlock()

	c.notifier.Notify(n)
	return n
}

func (c *Coordinator) failure(id uuid.UUID, kind Kind, err error) Notification {
	return Notification{
		ID:      id,
		Kind:    kind,
		State:   Failed,
		Message: failureMessage(err),
		Err:     err,
		At:      c.now(),
	}
}

func failureMessage(err error) string {
	var lerr *ledger.Error
	if errors.As(err, &lerr) {
		if msg := lerr.UserMessage(); msg != "" {
			return msg
		}
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return genericFailureMessage
}

func statusText(status string) string {
	if status == "" {
		return "accepted"
	}
	return status
}
