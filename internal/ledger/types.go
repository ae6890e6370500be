package ledger

// RecordType classifies an entry in the transaction log.
type RecordType string

const (
	RecordDeposit     RecordType = "DEPOSIT"
	RecordWithdraw    RecordType = "WITHDRAW"
	RecordTransferIn  RecordType = "TRANSFER_IN"
	RecordTransferOut RecordType = "TRANSFER_OUT"
)

// Direction selects the source sub-balance of an intra-account movement.
type Direction string

const (
	// ToInvestment moves funds from the main balance into the investment
	// sub-balance.
	ToInvestment Direction = "invest"
	// ToMain moves funds from the investment sub-balance back to the main
	// balance.
	ToMain Direction = "redeem"
)

// Valid reports whether d is a known direction.
func (d Direction) Valid() bool {
	return d == ToInvestment || d == ToMain
}
