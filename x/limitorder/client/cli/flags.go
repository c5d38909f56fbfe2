package cli

// Flag constants for limit order CLI commands
const (
	// Submit flags
	FlagFunds = "funds"

	// Order listing flags
	FlagBidder     = "bidder"
	FlagStartAfter = "start-after"
	FlagLimit      = "limit"
	FlagOrderBy    = "order-by"
)
