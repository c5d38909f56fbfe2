package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgCancelOrder{}

// MsgCancelOrder cancels an open order, refunding the escrowed offer asset
// and fee to the bidder. Only the bidder may cancel.
type MsgCancelOrder struct {
	Sender  string `json:"sender"`
	OrderID uint64 `json:"order_id"`
}

// NewMsgCancelOrder creates a new MsgCancelOrder instance
func NewMsgCancelOrder(sender string, orderID uint64) *MsgCancelOrder {
	return &MsgCancelOrder{
		Sender:  sender,
		OrderID: orderID,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgCancelOrder) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgCancelOrder) Type() string {
	return "cancel_order"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgCancelOrder) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgCancelOrder) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgCancelOrder) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrInvalidAddress.Wrapf("invalid sender address: %v", err)
	}
	if msg.OrderID == 0 {
		return ErrInvalidOrder.Wrap("order id must be positive")
	}
	return nil
}

// Reset implements the proto.Message interface
func (msg *MsgCancelOrder) Reset() { *msg = MsgCancelOrder{} }

// String implements the proto.Message interface
func (msg *MsgCancelOrder) String() string { return fmt.Sprintf("%+v", *msg) }

// ProtoMessage implements the proto.Message interface
func (msg *MsgCancelOrder) ProtoMessage() {}

// XXX_MessageName supplies the message name used to derive the type URL
func (msg *MsgCancelOrder) XXX_MessageName() string { return "paw.limitorder.v1.MsgCancelOrder" }
