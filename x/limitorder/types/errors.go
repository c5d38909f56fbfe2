package types

import (
	"cosmossdk.io/errors"
)

// Limit order module sentinel errors
var (
	ErrInvalidFee         = errors.Register(ModuleName, 1, "fee amount below configured minimum")
	ErrNoMarket           = errors.Register(ModuleName, 2, "no market for the asset pair provided")
	ErrPaymentMismatch    = errors.Register(ModuleName, 3, "attached payment does not match declared amount")
	ErrOrderNotFound      = errors.Register(ModuleName, 4, "order not found")
	ErrUnauthorized       = errors.Register(ModuleName, 5, "unauthorized")
	ErrInsufficientReturn = errors.Register(ModuleName, 6, "insufficient return amount")
	ErrVenueUnavailable   = errors.Register(ModuleName, 7, "exchange venue unavailable")
	ErrInvalidAddress     = errors.Register(ModuleName, 8, "invalid address")
	ErrInvalidAsset       = errors.Register(ModuleName, 9, "invalid asset")
	ErrInvalidOrder       = errors.Register(ModuleName, 10, "invalid order")
)
