package transport

import (
	"time"

	"github.com/goodnatureofminers/paychain-dashboard/internal/form"
	"github.com/goodnatureofminers/paychain-dashboard/internal/model"
	"github.com/goodnatureofminers/paychain-dashboard/internal/mutation"
	"github.com/goodnatureofminers/paychain-dashboard/internal/readmodel"
)

type errorView struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type entryView struct {
	Key           string     `json:"key"`
	Data          any        `json:"data"`
	LastFetchedAt *time.Time `json:"lastFetchedAt"`
	InFlight      bool       `json:"inFlight"`
	Error         *errorView `json:"error"`
}

func newEntryView[T any](e readmodel.Entry[T]) entryView {
	v := entryView{
		Key:      e.Key.String(),
		InFlight: e.InFlight,
	}
	if e.HasData {
		v.Data = e.Data
		fetched := e.LastFetchedAt
		v.LastFetchedAt = &fetched
	}
	if e.Err != nil {
		kind := "unknown"
		if k, ok := e.ErrorKind(); ok {
			kind = string(k)
		}
		v.Error = &errorView{Kind: kind, Message: e.Err.Error()}
	}
	return v
}

type blockView struct {
	Index        uint64            `json:"index"`
	Timestamp    time.Time         `json:"timestamp"`
	Transactions []transactionView `json:"transactions"`
	PrevHash     string            `json:"prevHash"`
	Hash         string            `json:"hash"`
	Nonce        int64             `json:"nonce"`
}

type transactionView struct {
	From   string    `json:"from"`
	To     string    `json:"to"`
	Amount int64     `json:"amount"`
	Time   time.Time `json:"time"`
}

type balanceView struct {
	User    string `json:"user"`
	Balance int64  `json:"balance"`
}

func newBlockViews(blocks []model.Block) []blockView {
	out := make([]blockView, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, blockView{
			Index:        b.Index,
			Timestamp:    b.Timestamp,
			Transactions: newTransactionViews(b.Transactions),
			PrevHash:     b.PrevHash,
			Hash:         b.Hash,
			Nonce:        b.Nonce,
		})
	}
	return out
}

func newTransactionViews(txs []model.Transaction) []transactionView {
	out := make([]transactionView, 0, len(txs))
	for _, tx := range txs {
		out = append(out, transactionView{From: tx.From, To: tx.To, Amount: tx.Amount, Time: tx.Time})
	}
	return out
}

// mapEntry converts the payload of an entry while keeping its metadata.
func mapEntry[T, V any](e readmodel.Entry[T], convert func(T) V) readmodel.Entry[V] {
	out := readmodel.Entry[V]{
		Key:           e.Key,
		HasData:       e.HasData,
		LastFetchedAt: e.LastFetchedAt,
		InFlight:      e.InFlight,
		Err:           e.Err,
	}
	if e.HasData {
		out.Data = convert(e.Data)
	}
	return out
}

type formView struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount int64  `json:"amount"`
	User   string `json:"user"`
}

func newFormView(f form.Fields) formView {
	return formView{From: f.From, To: f.To, Amount: f.Amount, User: f.User}
}

// formPatch carries a partial form update; absent fields are left unchanged.
type formPatch struct {
	From   *string `json:"from"`
	To     *string `json:"to"`
	Amount *int64  `json:"amount"`
	User   *string `json:"user"`
}

type notificationView struct {
	ID      string       `json:"id"`
	Kind    string       `json:"kind"`
	State   string       `json:"state"`
	Message string       `json:"message"`
	Balance *balanceView `json:"balance,omitempty"`
	At      time.Time    `json:"at"`
}

func newNotificationView(n mutation.Notification) notificationView {
	v := notificationView{
		ID:      n.ID.String(),
		Kind:    string(n.Kind),
		State:   string(n.State),
		Message: n.Message,
		At:      n.At,
	}
	if n.Balance != nil {
		v.Balance = &balanceView{User: n.Balance.User, Balance: n.Balance.Balance}
	}
	return v
}

type mutationView struct {
	State string            `json:"state"`
	Last  *notificationView `json:"last"`
}

type stateView struct {
	Chain     entryView               `json:"chain"`
	Pending   entryView               `json:"pending"`
	Balance   entryView               `json:"balance"`
	Form      formView                `json:"form"`
	Mutations map[string]mutationView `json:"mutations"`
}

type errorResponse struct {
	Error string `json:"error"`
}
