package main

import (
	"context"
	"fmt"
	"io"

	"github.com/goodnatureofminers/paychain-dashboard/internal/mutation"
	"github.com/goodnatureofminers/paychain-dashboard/internal/readmodel"
)

// discardInvalidator is used by one-shot commands that keep no read model.
type discardInvalidator struct{}

func (discardInvalidator) Invalidate(readmodel.Key) {}

func runMutation(ctx context.Context, a *app, kind mutation.Kind, w io.Writer) error {
	coordinator, err := a.newCoordinator(discardInvalidator{}, nil)
	if err != nil {
		return err
	}

	var n mutation.Notification
	switch kind {
	case mutation.Transfer:
		n, err = coordinator.Transfer(ctx)
	case mutation.Faucet:
		n, err = coordinator.Faucet(ctx)
	default:
		return fmt.Errorf("unknown mutation %q", kind)
	}
	if err != nil {
		return fmt.Errorf("%s: %s: %w", kind, n.Message, err)
	}

	_, err = fmt.Fprintf(w, "%s %s: %s\n", n.Kind, n.State, n.Message)
	return err
}
