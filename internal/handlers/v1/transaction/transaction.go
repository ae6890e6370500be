package transaction

import "time"

// Transaction is the API model for one history entry.
type Transaction struct {
	Reference    string    `json:"reference" doc:"Unique reference for the ledger entry"`
	Type         string    `json:"type" doc:"DEPOSIT, WITHDRAW, TRANSFER_IN or TRANSFER_OUT"`
	Amount       int64     `json:"amount" doc:"Amount in the smallest currency unit"`
	Counterparty string    `json:"counterparty,omitempty" doc:"Other account for transfers"`
	Description  string    `json:"description" doc:"Human-readable description"`
	CreatedAt    time.Time `json:"createdAt" doc:"When the entry was recorded"`
}
