package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/paw-chain/limitorder/x/limitorder/types"
)

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the limit order QueryServer interface
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

// Config returns the module configuration
func (qs queryServer) Config(goCtx context.Context, req *types.QueryConfigRequest) (*types.ConfigResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	params := qs.Keeper.GetParams(goCtx)

	return &types.ConfigResponse{
		FeeToken:         params.FeeToken,
		MinFeeAmount:     params.MinFeeAmount,
		ExchangeRegistry: params.ExchangeRegistry,
	}, nil
}

// Order returns a single open order by id
func (qs queryServer) Order(goCtx context.Context, req *types.QueryOrderRequest) (*types.OrderResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	order, err := qs.Keeper.GetOrder(goCtx, req.OrderID)
	if err != nil {
		return nil, fmt.Errorf("Order: get order %d: %w", req.OrderID, err)
	}

	res := order.AsResponse()
	return &res, nil
}

// Orders returns a page of open orders, optionally scoped to one bidder.
// Listings are ordered purely by order id; the default direction is
// descending.
func (qs queryServer) Orders(goCtx context.Context, req *types.QueryOrdersRequest) (*types.OrdersResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	ascending := req.OrderBy == types.OrderByAsc

	var (
		orders []types.Order
		err    error
	)
	if req.BidderAddr != "" {
		bidder, addrErr := sdk.AccAddressFromBech32(req.BidderAddr)
		if addrErr != nil {
			return nil, types.ErrInvalidAddress.Wrapf("invalid bidder address: %v", addrErr)
		}
		orders, err = qs.Keeper.OrdersByOwner(goCtx, bidder, req.StartAfter, req.Limit, ascending)
	} else {
		orders, err = qs.Keeper.Orders(goCtx, req.StartAfter, req.Limit, ascending)
	}
	if err != nil {
		return nil, fmt.Errorf("Orders: list: %w", err)
	}

	res := make([]types.OrderResponse, 0, len(orders))
	for _, order := range orders {
		res = append(res, order.AsResponse())
	}

	return &types.OrdersResponse{
		Orders: res,
	}, nil
}

// LastOrderID returns the most recently assigned order id
func (qs queryServer) LastOrderID(goCtx context.Context, req *types.QueryLastOrderIDRequest) (*types.LastOrderIDResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	return &types.LastOrderIDResponse{
		LastOrderID: qs.Keeper.GetLastOrderID(goCtx),
	}, nil
}
