package model

// Balance is the spendable amount of a single account.
type Balance struct {
	User    string
	Balance int64
}
