package mutation

import (
	"time"

	"github.com/goodnatureofminers/paychain-dashboard/internal/model"
	"github.com/google/uuid"
)

// Kind names a mutation.
type Kind string

const (
	Transfer Kind = "transfer"
	Faucet   Kind = "faucet"
)

// State is the lifecycle position of a mutation kind.
type State string

const (
	Idle      State = "idle"
	Pending   State = "pending"
	Succeeded State = "succeeded"
	Failed    State = "failed"
)

// Notification is the outcome of one mutation attempt.
type Notification struct {
	ID      uuid.UUID
	Kind    Kind
	State   State
	Message string
	// Balance is the updated balance returned by a successful faucet grant.
	Balance *model.Balance
	Err     error
	At      time.Time
}
