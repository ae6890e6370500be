package account

// Account is the API response model for an account in the listing.
type Account struct {
	ID      string `json:"id" doc:"Account id"`
	Name    string `json:"name" doc:"Display name"`
	Balance int64  `json:"balance" doc:"Main balance, smallest currency unit"`
}
