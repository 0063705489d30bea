package model

import "time"

// Transaction is a value transfer, either committed inside a Block or waiting in the pending queue.
type Transaction struct {
	From   string
	To     string
	Amount int64
	Time   time.Time
}
