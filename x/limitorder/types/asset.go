package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// AssetInfo identifies a fungible asset: either a native coin denomination or
// the address of a contract token. Exactly one of the two fields is set.
type AssetInfo struct {
	Denom string `json:"denom,omitempty"`
	Token string `json:"token,omitempty"`
}

// NativeInfo returns the info of a native coin asset
func NativeInfo(denom string) AssetInfo {
	return AssetInfo{Denom: denom}
}

// TokenInfo returns the info of a contract token asset
func TokenInfo(token string) AssetInfo {
	return AssetInfo{Token: token}
}

// IsNative reports whether the asset is a native coin
func (info AssetInfo) IsNative() bool {
	return info.Denom != ""
}

// Equal compares two asset infos structurally
func (info AssetInfo) Equal(other AssetInfo) bool {
	return info == other
}

// Validate checks that exactly one identity is set and that it resolves
func (info AssetInfo) Validate() error {
	switch {
	case info.Denom != "" && info.Token != "":
		return ErrInvalidAsset.Wrap("asset cannot be both native and token")
	case info.Denom != "":
		if err := sdk.ValidateDenom(info.Denom); err != nil {
			return ErrInvalidAsset.Wrapf("invalid denom: %v", err)
		}
	case info.Token != "":
		if _, err := sdk.AccAddressFromBech32(info.Token); err != nil {
			return ErrInvalidAddress.Wrapf("invalid token address: %v", err)
		}
	default:
		return ErrInvalidAsset.Wrap("empty asset info")
	}
	return nil
}

func (info AssetInfo) String() string {
	if info.IsNative() {
		return info.Denom
	}
	return info.Token
}

// Asset is an amount of a native coin or contract token. It is an immutable
// value type; amounts are unsigned (math.Int is checked non-negative by
// Validate and never mutated in place).
type Asset struct {
	Info   AssetInfo `json:"info"`
	Amount math.Int  `json:"amount"`
}

// NewAsset returns an asset of the given info and amount
func NewAsset(info AssetInfo, amount math.Int) Asset {
	return Asset{Info: info, Amount: amount}
}

// Validate checks the asset identity and that the amount is a valid
// non-negative integer
func (a Asset) Validate() error {
	if err := a.Info.Validate(); err != nil {
		return err
	}
	if a.Amount.IsNil() {
		return ErrInvalidAsset.Wrap("nil amount")
	}
	if a.Amount.IsNegative() {
		return ErrInvalidAsset.Wrapf("negative amount: %s", a.Amount)
	}
	return nil
}

func (a Asset) String() string {
	return fmt.Sprintf("%s%s", a.Amount, a.Info)
}

// AssertAttached verifies that a native asset was fully paid by the coins
// attached to the call. The attached amount must match the declared amount
// exactly. Token assets are pulled through an allowance instead, so for them
// this is a no-op.
func (a Asset) AssertAttached(funds sdk.Coins) error {
	if !a.Info.IsNative() {
		return nil
	}
	attached := funds.AmountOf(a.Info.Denom)
	if !attached.Equal(a.Amount) {
		return ErrPaymentMismatch.Wrapf(
			"declared %s%s but %s%s attached",
			a.Amount, a.Info.Denom, attached, a.Info.Denom,
		)
	}
	return nil
}

// Instruction is a single outbound asset movement produced by the order
// engine. Instructions are pure values; the keeper dispatches them in order
// and the surrounding transaction aborts wholesale on the first failure.
type Instruction interface {
	isInstruction()
}

// TransferInstruction moves an asset from the module's escrow to a recipient.
type TransferInstruction struct {
	Asset     Asset
	Recipient sdk.AccAddress
}

// PullInstruction moves an asset from its owner into the module's escrow:
// attached coins for native assets, a transfer-from against a prior
// allowance for token assets.
type PullInstruction struct {
	Asset Asset
	Owner sdk.AccAddress
}

// SwapInstruction swaps the escrowed offer asset at an exchange pair. The
// proceeds return to the module account before redistribution.
type SwapInstruction struct {
	PairAddr string
	Offer    Asset
}

func (TransferInstruction) isInstruction() {}
func (PullInstruction) isInstruction()     {}
func (SwapInstruction) isInstruction()     {}

// Transfer builds an instruction paying the asset out to recipient
func (a Asset) Transfer(recipient sdk.AccAddress) TransferInstruction {
	return TransferInstruction{Asset: a, Recipient: recipient}
}

// Pull builds an instruction escrowing the asset from owner
func (a Asset) Pull(owner sdk.AccAddress) PullInstruction {
	return PullInstruction{Asset: a, Owner: owner}
}
