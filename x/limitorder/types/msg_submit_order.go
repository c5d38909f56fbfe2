package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgSubmitOrder{}

// MsgSubmitOrder submits a new limit order. The offer asset and the fee are
// escrowed by the module: native offers must be attached via Funds, token
// offers and the fee are pulled through allowances the sender granted
// beforehand.
type MsgSubmitOrder struct {
	Sender     string    `json:"sender"`
	OfferAsset Asset     `json:"offer_asset"`
	AskAsset   Asset     `json:"ask_asset"`
	FeeAmount  math.Int  `json:"fee_amount"`
	Funds      sdk.Coins `json:"funds"`
}

// NewMsgSubmitOrder creates a new MsgSubmitOrder instance
func NewMsgSubmitOrder(sender string, offerAsset, askAsset Asset, feeAmount math.Int, funds sdk.Coins) *MsgSubmitOrder {
	return &MsgSubmitOrder{
		Sender:     sender,
		OfferAsset: offerAsset,
		AskAsset:   askAsset,
		FeeAmount:  feeAmount,
		Funds:      funds,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgSubmitOrder) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgSubmitOrder) Type() string {
	return "submit_order"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgSubmitOrder) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSubmitOrder) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSubmitOrder) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrInvalidAddress.Wrapf("invalid sender address: %v", err)
	}

	if err := msg.OfferAsset.Validate(); err != nil {
		return err
	}
	if !msg.OfferAsset.Amount.IsPositive() {
		return ErrInvalidAsset.Wrap("offer amount must be positive")
	}

	if err := msg.AskAsset.Validate(); err != nil {
		return err
	}
	if !msg.AskAsset.Amount.IsPositive() {
		return ErrInvalidAsset.Wrap("ask amount must be positive")
	}

	if msg.OfferAsset.Info.Equal(msg.AskAsset.Info) {
		return ErrInvalidAsset.Wrap("offer and ask assets must be different")
	}

	if msg.FeeAmount.IsNil() || msg.FeeAmount.IsNegative() {
		return ErrInvalidFee.Wrap("fee amount must be non-negative")
	}

	if err := msg.Funds.Validate(); err != nil {
		return ErrInvalidAsset.Wrapf("invalid attached funds: %v", err)
	}

	return nil
}

// Reset implements the proto.Message interface
func (msg *MsgSubmitOrder) Reset() { *msg = MsgSubmitOrder{} }

// String implements the proto.Message interface
func (msg *MsgSubmitOrder) String() string { return fmt.Sprintf("%+v", *msg) }

// ProtoMessage implements the proto.Message interface
func (msg *MsgSubmitOrder) ProtoMessage() {}

// XXX_MessageName supplies the message name used to derive the type URL
func (msg *MsgSubmitOrder) XXX_MessageName() string { return "paw.limitorder.v1.MsgSubmitOrder" }
