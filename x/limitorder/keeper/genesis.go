package keeper

import (
	"context"
	"fmt"

	"github.com/paw-chain/limitorder/x/limitorder/types"
)

// InitGenesis initializes the limit order module's state from a genesis
// state. At chain launch this is the instantiation path: it commits the
// configuration (rejecting identities that do not resolve) and the id
// counter, and restores any exported orders together with their owner index
// entries.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid genesis state: %w", err)
	}

	if genState.Params.FeeToken != "" || genState.Params.ExchangeRegistry != "" {
		if err := genState.Params.Validate(); err != nil {
			return err
		}
	}
	if err := k.SetParams(ctx, genState.Params); err != nil {
		return fmt.Errorf("failed to set params: %w", err)
	}

	k.SetLastOrderID(ctx, genState.LastOrderID)

	for _, order := range genState.Orders {
		if err := k.SetOrder(ctx, order); err != nil {
			return fmt.Errorf("failed to set order %d: %w", order.OrderID, err)
		}
	}

	return nil
}

// ExportGenesis returns the module's state as a genesis state
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	orders, err := k.GetAllOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export orders: %w", err)
	}

	return &types.GenesisState{
		Params:      k.GetParams(ctx),
		LastOrderID: k.GetLastOrderID(ctx),
		Orders:      orders,
	}, nil
}
