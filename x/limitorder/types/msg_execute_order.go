package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgExecuteOrder{}

// MsgExecuteOrder settles an open order through its exchange pair. Any party
// may execute; the executor collects the order fee plus any excess over the
// minimum ask amount as incentive.
type MsgExecuteOrder struct {
	Sender  string `json:"sender"`
	OrderID uint64 `json:"order_id"`
}

// NewMsgExecuteOrder creates a new MsgExecuteOrder instance
func NewMsgExecuteOrder(sender string, orderID uint64) *MsgExecuteOrder {
	return &MsgExecuteOrder{
		Sender:  sender,
		OrderID: orderID,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgExecuteOrder) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgExecuteOrder) Type() string {
	return "execute_order"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgExecuteOrder) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgExecuteOrder) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgExecuteOrder) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrInvalidAddress.Wrapf("invalid sender address: %v", err)
	}
	if msg.OrderID == 0 {
		return ErrInvalidOrder.Wrap("order id must be positive")
	}
	return nil
}

// Reset implements the proto.Message interface
func (msg *MsgExecuteOrder) Reset() { *msg = MsgExecuteOrder{} }

// String implements the proto.Message interface
func (msg *MsgExecuteOrder) String() string { return fmt.Sprintf("%+v", *msg) }

// ProtoMessage implements the proto.Message interface
func (msg *MsgExecuteOrder) ProtoMessage() {}

// XXX_MessageName supplies the message name used to derive the type URL
func (msg *MsgExecuteOrder) XXX_MessageName() string { return "paw.limitorder.v1.MsgExecuteOrder" }
