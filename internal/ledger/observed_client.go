package ledger

import (
	"context"
	"time"

	"github.com/goodnatureofminers/paychain-dashboard/internal/model"
)

// ObservedClient wraps an API with metrics instrumentation.
type ObservedClient struct {
	api        API
	rpcMetrics RPCMetrics
}

// NewObservedClient constructs an instrumented API.
func NewObservedClient(api API, rpcMetrics RPCMetrics) *ObservedClient {
	return &ObservedClient{
		api:        api,
		rpcMetrics: rpcMetrics,
	}
}

// FetchChain reads the chain.
func (c *ObservedClient) FetchChain(ctx context.Context) (blocks []model.Block, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe(OpFetchChain, err, started)
	}()
	return c.api.FetchChain(ctx)
}

// FetchPending reads the pending queue.
func (c *ObservedClient) FetchPending(ctx context.Context) (txs []model.Transaction, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe(OpFetchPending, err, started)
	}()
	return c.api.FetchPending(ctx)
}

// FetchBalance reads a user's balance.
func (c *ObservedClient) FetchBalance(ctx context.Context, user string) (balance model.Balance, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe(OpFetchBalance, err, started)
	}()
	return c.api.FetchBalance(ctx, user)
}

// SubmitTransfer enqueues a transfer.
func (c *ObservedClient) SubmitTransfer(ctx context.Context, req model.TransferRequest) (res model.TransferResult, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe(OpSubmitTransfer, err, started)
	}()
	return c.api.SubmitTransfer(ctx, req)
}

// SubmitFaucet credits test funds.
func (c *ObservedClient) SubmitFaucet(ctx context.Context, req model.FaucetRequest) (balance model.Balance, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe(OpSubmitFaucet, err, started)
	}()
	return c.api.SubmitFaucet(ctx, req)
}
