package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/limitorder/x/limitorder/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the limit order MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// runAtomic runs fn against a branched store and flushes the writes only if
// fn succeeds. A failing handler therefore leaves no trace: no state write,
// no asset movement.
func (ms msgServer) runAtomic(goCtx context.Context, fn func(ctx sdk.Context) error) error {
	sdkCtx := sdk.UnwrapSDKContext(goCtx)
	cacheCtx, write := sdkCtx.CacheContext()
	if err := fn(cacheCtx); err != nil {
		return err
	}
	write()
	return nil
}

// SubmitOrder handles order submission
func (ms msgServer) SubmitOrder(goCtx context.Context, msg *types.MsgSubmitOrder) (*types.MsgSubmitOrderResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SubmitOrder: validate: %w", err)
	}

	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, fmt.Errorf("SubmitOrder: invalid sender address: %w", err)
	}

	var order types.Order
	err = ms.runAtomic(goCtx, func(ctx sdk.Context) error {
		order, err = ms.Keeper.SubmitOrder(ctx, sender, msg.OfferAsset, msg.AskAsset, msg.FeeAmount, msg.Funds)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("SubmitOrder: %w", err)
	}

	return &types.MsgSubmitOrderResponse{
		OrderID: order.OrderID,
	}, nil
}

// CancelOrder handles order cancellation by the bidder
func (ms msgServer) CancelOrder(goCtx context.Context, msg *types.MsgCancelOrder) (*types.MsgCancelOrderResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("CancelOrder: validate: %w", err)
	}

	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, fmt.Errorf("CancelOrder: invalid sender address: %w", err)
	}

	var refundedAsset, refundedFee types.Asset
	err = ms.runAtomic(goCtx, func(ctx sdk.Context) error {
		refundedAsset, refundedFee, err = ms.Keeper.CancelOrder(ctx, sender, msg.OrderID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("CancelOrder: %w", err)
	}

	return &types.MsgCancelOrderResponse{
		RefundedAsset: refundedAsset,
		RefundedFee:   refundedFee,
	}, nil
}

// ExecuteOrder handles order settlement by an executor
func (ms msgServer) ExecuteOrder(goCtx context.Context, msg *types.MsgExecuteOrder) (*types.MsgExecuteOrderResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("ExecuteOrder: validate: %w", err)
	}

	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, fmt.Errorf("ExecuteOrder: invalid sender address: %w", err)
	}

	// the fee amount is read before removal so the response can report it
	order, err := ms.Keeper.GetOrder(goCtx, msg.OrderID)
	if err != nil {
		return nil, fmt.Errorf("ExecuteOrder: %w", err)
	}

	var returnAmount, excessAmount math.Int
	err = ms.runAtomic(goCtx, func(ctx sdk.Context) error {
		returnAmount, excessAmount, err = ms.Keeper.ExecuteOrder(ctx, sender, msg.OrderID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("ExecuteOrder: %w", err)
	}

	return &types.MsgExecuteOrderResponse{
		ReturnAmount: returnAmount,
		ExcessAmount: excessAmount,
		FeeAmount:    order.FeeAmount,
	}, nil
}
