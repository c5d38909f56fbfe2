package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer defines the message server interface
type MsgServer interface {
	SubmitOrder(context.Context, *MsgSubmitOrder) (*MsgSubmitOrderResponse, error)
	CancelOrder(context.Context, *MsgCancelOrder) (*MsgCancelOrderResponse, error)
	ExecuteOrder(context.Context, *MsgExecuteOrder) (*MsgExecuteOrderResponse, error)
}

// Response types

// MsgSubmitOrderResponse defines the response for SubmitOrder
type MsgSubmitOrderResponse struct {
	OrderID uint64 `json:"order_id"`
}

// MsgCancelOrderResponse defines the response for CancelOrder
type MsgCancelOrderResponse struct {
	RefundedAsset Asset `json:"refunded_asset"`
	RefundedFee   Asset `json:"refunded_fee"`
}

// MsgExecuteOrderResponse defines the response for ExecuteOrder
type MsgExecuteOrderResponse struct {
	ReturnAmount math.Int `json:"return_amount"`
	ExcessAmount math.Int `json:"excess_amount"`
	FeeAmount    math.Int `json:"fee_amount"`
}
