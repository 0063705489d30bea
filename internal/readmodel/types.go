package readmodel

import (
	"context"
	"time"

	"github.com/goodnatureofminers/paychain-dashboard/internal/model"
)

type (
	// Source is the read side of the ledger client.
	Source interface {
		FetchChain(ctx context.Context) ([]model.Block, error)
		FetchPending(ctx context.Context) ([]model.Transaction, error)
		FetchBalance(ctx context.Context, user string) (model.Balance, error)
	}
	// Metrics records read-model activity per key class.
	Metrics interface {
		ObservePoll(key string, err error, started time.Time)
		ObserveSkip(key string)
		ObserveInvalidate(key string)
		SetBalanceKeys(n int)
	}
)
