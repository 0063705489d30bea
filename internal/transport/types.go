package transport

import (
	"context"

	"github.com/goodnatureofminers/paychain-dashboard/internal/form"
	"github.com/goodnatureofminers/paychain-dashboard/internal/model"
	"github.com/goodnatureofminers/paychain-dashboard/internal/mutation"
	"github.com/goodnatureofminers/paychain-dashboard/internal/readmodel"
)

type (
	// ReadModel is the read side the handlers render.
	ReadModel interface {
		Chain() readmodel.Entry[[]model.Block]
		Pending() readmodel.Entry[[]model.Transaction]
		Balance(user string) readmodel.Entry[model.Balance]
		Invalidate(key readmodel.Key)
	}
	// FormStore holds the editable fields.
	FormStore interface {
		Snapshot() form.Fields
		SetFrom(v string)
		SetTo(v string)
		SetAmount(v int64)
		SetUser(v string)
	}
	// Mutations triggers writes and reports their state.
	Mutations interface {
		Transfer(ctx context.Context) (mutation.Notification, error)
		Faucet(ctx context.Context) (mutation.Notification, error)
		State(kind mutation.Kind) mutation.State
		Last(kind mutation.Kind) (mutation.Notification, bool)
	}
)
