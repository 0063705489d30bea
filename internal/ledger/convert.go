package ledger

import (
	"fmt"
	"time"

	"github.com/goodnatureofminers/paychain-dashboard/internal/model"
	"github.com/goodnatureofminers/paychain-dashboard/pkg/safe"
)

// buildBlocks maps the chain read into model blocks, preserving the server's order.
func buildBlocks(src []blockDTO) ([]model.Block, error) {
	blocks := make([]model.Block, 0, len(src))
	for i, b := range src {
		block, err := buildBlock(b)
		if err != nil {
			return nil, fmt.Errorf("block at position %d: %w", i, err)
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}

func buildBlock(src blockDTO) (model.Block, error) {
	index, err := safe.Uint64(src.Index)
	if err != nil {
		return model.Block{}, fmt.Errorf("block index: %w", err)
	}
	txs, err := buildTransactions(src.Transactions)
	if err != nil {
		return model.Block{}, err
	}
	return model.Block{
		Index:        index,
		Timestamp:    unixTime(src.Timestamp),
		Transactions: txs,
		PrevHash:     src.PrevHash,
		Hash:         src.Hash,
		Nonce:        src.Nonce,
	}, nil
}

func buildTransactions(src []transactionDTO) ([]model.Transaction, error) {
	txs := make([]model.Transaction, 0, len(src))
	for i, tx := range src {
		t, err := buildTransaction(tx)
		if err != nil {
			return nil, fmt.Errorf("transaction at position %d: %w", i, err)
		}
		txs = append(txs, t)
	}
	return txs, nil
}

// buildTransaction rejects non-positive amounts; the ledger never records them.
func buildTransaction(src transactionDTO) (model.Transaction, error) {
	if src.Amount <= 0 {
		return model.Transaction{}, fmt.Errorf("amount %d is not positive", src.Amount)
	}
	return model.Transaction{
		From:   src.From,
		To:     src.To,
		Amount: src.Amount,
		Time:   unixTime(src.Time),
	}, nil
}

func buildBalance(src balanceDTO, requested string) model.Balance {
	user := src.User
	if user == "" {
		user = requested
	}
	return model.Balance{User: user, Balance: src.Balance}
}

func unixTime(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}
