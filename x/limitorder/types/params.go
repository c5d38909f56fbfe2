package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Params holds the module configuration: the token all order fees are paid
// in, the minimum acceptable fee, and the address of the exchange registry
// used to resolve pairs at submission time. Written once at initialization
// and only read afterwards.
type Params struct {
	FeeToken         string   `json:"fee_token"`
	MinFeeAmount     math.Int `json:"min_fee_amount"`
	ExchangeRegistry string   `json:"exchange_registry"`
}

// NewParams creates a new Params instance
func NewParams(feeToken string, minFeeAmount math.Int, exchangeRegistry string) Params {
	return Params{
		FeeToken:         feeToken,
		MinFeeAmount:     minFeeAmount,
		ExchangeRegistry: exchangeRegistry,
	}
}

// DefaultParams returns default parameters for the limit order module
func DefaultParams() Params {
	return Params{
		MinFeeAmount: math.ZeroInt(),
	}
}

// Validate checks that the configured identities resolve and the minimum fee
// is a valid amount
func (p Params) Validate() error {
	if _, err := sdk.AccAddressFromBech32(p.FeeToken); err != nil {
		return ErrInvalidAddress.Wrapf("invalid fee token address: %v", err)
	}
	if _, err := sdk.AccAddressFromBech32(p.ExchangeRegistry); err != nil {
		return ErrInvalidAddress.Wrapf("invalid exchange registry address: %v", err)
	}
	if p.MinFeeAmount.IsNil() || p.MinFeeAmount.IsNegative() {
		return ErrInvalidFee.Wrap("minimum fee amount must be non-negative")
	}
	return nil
}
