package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/goodnatureofminers/paychain-dashboard/internal/model"
	"github.com/goodnatureofminers/paychain-dashboard/internal/readmodel"
)

// runWatch polls the ledger like the dashboard does and prints a line for
// every finished refresh until ctx is done.
func runWatch(ctx context.Context, a *app, w io.Writer) error {
	cache, err := a.newCache()
	if err != nil {
		return err
	}
	user := a.form.User()
	cache.Balance(user)

	updates, unsubscribe := cache.Subscribe()
	defer unsubscribe()

	cache.Start(ctx)
	defer cache.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case key, ok := <-updates:
			if !ok {
				return nil
			}
			if line, ok := describe(cache, key); ok {
				if _, err := fmt.Fprintln(w, line); err != nil {
					return fmt.Errorf("write watch output: %w", err)
				}
			}
		}
	}
}

type snapshotReader interface {
	Chain() readmodel.Entry[[]model.Block]
	Pending() readmodel.Entry[[]model.Transaction]
	Balance(user string) readmodel.Entry[model.Balance]
}

// describe renders the entry behind key. Refresh starts are not reported.
func describe(r snapshotReader, key readmodel.Key) (string, bool) {
	switch key.Kind() {
	case readmodel.KindChain:
		e := r.Chain()
		return describeEntry(e, func(blocks []model.Block) string {
			if len(blocks) == 0 {
				return "chain: 0 blocks"
			}
			return fmt.Sprintf("chain: %d blocks, tip %s", len(blocks), blocks[len(blocks)-1].Hash)
		})
	case readmodel.KindPending:
		e := r.Pending()
		return describeEntry(e, func(txs []model.Transaction) string {
			return fmt.Sprintf("pending: %d transactions", len(txs))
		})
	case readmodel.KindBalance:
		e := r.Balance(key.User())
		return describeEntry(e, func(b model.Balance) string {
			return fmt.Sprintf("balance %s: %d", key.User(), b.Balance)
		})
	default:
		return "", false
	}
}

func describeEntry[T any](e readmodel.Entry[T], render func(T) string) (string, bool) {
	if e.InFlight {
		return "", false
	}
	line := e.Key.String() + ": no data yet"
	if e.HasData {
		line = render(e.Data) + " (as of " + e.LastFetchedAt.Format(time.TimeOnly) + ")"
	}
	if e.Err != nil {
		line += ", refresh failed: " + e.Err.Error()
	}
	return line, true
}
