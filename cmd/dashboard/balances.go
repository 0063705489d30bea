package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/goodnatureofminers/paychain-dashboard/internal/ledger"
	"github.com/goodnatureofminers/paychain-dashboard/internal/model"
	"github.com/goodnatureofminers/paychain-dashboard/pkg/workerpool"
	"go.uber.org/zap"
)

// balanceFetcher reads one balance from the ledger.
type balanceFetcher interface {
	FetchBalance(ctx context.Context, user string) (model.Balance, error)
}

func runBalances(ctx context.Context, a *app, workers int, users []string, w io.Writer) error {
	balances, err := fetchBalances(ctx, a.ledger, workers, users)
	if err != nil {
		return err
	}
	a.logger.Debug("balances fetched", zap.Int("users", len(users)))
	return printBalances(w, balances)
}

// fetchBalances queries users concurrently, bypassing the read model. An
// unknown account reads as zero.
func fetchBalances(ctx context.Context, fetcher balanceFetcher, workers int, users []string) ([]model.Balance, error) {
	return workerpool.Map(ctx, workers, users, func(ctx context.Context, user string) (model.Balance, error) {
		balance, err := fetcher.FetchBalance(ctx, user)
		if errors.Is(err, ledger.ErrNotFound) {
			return model.Balance{User: user}, nil
		}
		if err != nil {
			return model.Balance{}, fmt.Errorf("balance of %s: %w", user, err)
		}
		return balance, nil
	})
}

func printBalances(w io.Writer, balances []model.Balance) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "USER\tBALANCE"); err != nil {
		return err
	}
	for _, b := range balances {
		if _, err := fmt.Fprintf(tw, "%s\t%d\n", b.User, b.Balance); err != nil {
			return err
		}
	}
	return tw.Flush()
}
