package mutation

import (
	"context"
	"time"

	"github.com/goodnatureofminers/paychain-dashboard/internal/model"
	"github.com/goodnatureofminers/paychain-dashboard/internal/readmodel"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Ledger is the write side of the ledger client.
	Ledger interface {
		SubmitTransfer(ctx context.Context, req model.TransferRequest) (model.TransferResult, error)
		SubmitFaucet(ctx context.Context, req model.FaucetRequest) (model.Balance, error)
	}
	// Invalidator refreshes read-model keys affected by a write.
	Invalidator interface {
		Invalidate(key readmodel.Key)
	}
	// Form supplies request snapshots from the user-editable fields.
	Form interface {
		TransferRequest() model.TransferRequest
		FaucetRequest() model.FaucetRequest
	}
	// Notifier delivers one-shot outcome notifications to the presentation layer.
	Notifier interface {
		Notify(n Notification)
	}
	// Metrics records mutation outcomes.
	Metrics interface {
		ObserveMutation(kind string, err error, started time.Time)
		ObserveRejected(kind string)
	}
)

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(n Notification)

// Notify calls f(n).
func (f NotifierFunc) Notify(n Notification) {
	f(n)
}
