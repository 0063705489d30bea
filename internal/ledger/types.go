package ledger

import (
	"context"
	"time"

	"github.com/goodnatureofminers/paychain-dashboard/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// API is the typed binding to the remote ledger service.
	API interface {
		FetchChain(ctx context.Context) ([]model.Block, error)
		FetchPending(ctx context.Context) ([]model.Transaction, error)
		FetchBalance(ctx context.Context, user string) (model.Balance, error)
		SubmitTransfer(ctx context.Context, req model.TransferRequest) (model.TransferResult, error)
		SubmitFaucet(ctx context.Context, req model.FaucetRequest) (model.Balance, error)
	}
	// RPCMetrics records metrics for ledger calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Operation names used in errors, logs and metrics.
const (
	OpFetchChain     = "fetch_chain"
	OpFetchPending   = "fetch_pending"
	OpFetchBalance   = "fetch_balance"
	OpSubmitTransfer = "submit_transfer"
	OpSubmitFaucet   = "submit_faucet"
)

type blockDTO struct {
	Index        int64            `json:"Index"`
	Timestamp    int64            `json:"Timestamp"`
	Transactions []transactionDTO `json:"Transactions"`
	PrevHash     string           `json:"PrevHash"`
	Hash         string           `json:"Hash"`
	Nonce        int64            `json:"Nonce"`
}

type transactionDTO struct {
	From   string `json:"From"`
	To     string `json:"To"`
	Amount int64  `json:"Amount"`
	Time   int64  `json:"Time"`
}

type balanceDTO struct {
	User    string `json:"user"`
	Balance int64  `json:"balance"`
}

type transferRequestDTO struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount int64  `json:"amount"`
}

type transferResponseDTO struct {
	Status string `json:"status"`
}

type faucetRequestDTO struct {
	To     string `json:"to"`
	Amount int64  `json:"amount"`
}

type errorResponse struct {
	Error string `json:"error"`
}
