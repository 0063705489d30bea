// Package model defines the ledger read and write models observed by the dashboard.
package model

import "time"

// Block is a committed ledger block as reported by the remote chain read.
type Block struct {
	Index        uint64
	Timestamp    time.Time
	Transactions []Transaction
	PrevHash     string
	Hash         string
	Nonce        int64
}
