package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Order is an open limit order. The offer asset and the fee are escrowed by
// the module for as long as the record exists; an order is open if and only
// if it is present in storage, so there is no status field to drift.
type Order struct {
	// OrderID is the unique identifier of the order, assigned at submission.
	// Ids are strictly increasing and never reused, even after removal.
	OrderID uint64 `json:"order_id"`
	// Bidder is the address that submitted the order and owns the escrow
	Bidder string `json:"bidder_addr"`
	// PairAddr is the exchange pair resolved for the asset pair at submission
	PairAddr string `json:"pair_addr"`
	// OfferAsset is the escrowed asset to be swapped on execution
	OfferAsset Asset `json:"offer_asset"`
	// AskAsset carries the asset the bidder wants and the minimum acceptable
	// amount of it
	AskAsset Asset `json:"ask_asset"`
	// FeeAmount is the escrowed executor incentive, denominated in the
	// configured fee token
	FeeAmount math.Int `json:"fee_amount"`
}

// Validate checks an order record for internal consistency
func (o Order) Validate() error {
	if o.OrderID == 0 {
		return ErrInvalidOrder.Wrap("order id must be positive")
	}
	if _, err := sdk.AccAddressFromBech32(o.Bidder); err != nil {
		return ErrInvalidAddress.Wrapf("invalid bidder address: %v", err)
	}
	if _, err := sdk.AccAddressFromBech32(o.PairAddr); err != nil {
		return ErrInvalidAddress.Wrapf("invalid pair address: %v", err)
	}
	if err := o.OfferAsset.Validate(); err != nil {
		return err
	}
	if err := o.AskAsset.Validate(); err != nil {
		return err
	}
	if o.FeeAmount.IsNil() || o.FeeAmount.IsNegative() {
		return ErrInvalidFee.Wrap("fee amount must be non-negative")
	}
	return nil
}

// BidderAddr returns the bidder as an account address. The order must have
// been validated first.
func (o Order) BidderAddr() sdk.AccAddress {
	return sdk.MustAccAddressFromBech32(o.Bidder)
}
