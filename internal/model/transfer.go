package model

// TransferRequest is a snapshot of the transfer form taken when the user submits it.
type TransferRequest struct {
	From   string
	To     string
	Amount int64
}

// TransferResult is the remote acknowledgement of an enqueued transfer.
type TransferResult struct {
	Status string
}

// FaucetRequest asks the remote to credit test funds to an account.
type FaucetRequest struct {
	To     string
	Amount int64
}
