package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/limitorder/x/limitorder/types"
)

// RegisterInvariants registers all limit order module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "escrow-backing", EscrowBackingInvariant(k))
	ir.RegisterRoute(types.ModuleName, "order-id-counter", OrderIDCounterInvariant(k))
}

// AllInvariants runs all invariants of the limit order module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := EscrowBackingInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return OrderIDCounterInvariant(k)(ctx)
	}
}

// EscrowBackingInvariant checks that for every asset the module account
// holds at least the sum of open orders' offer amounts plus fee amounts.
// The escrow is only ever released by cancel or execute, so a shortfall
// means assets left the module account outside the order lifecycle.
func EscrowBackingInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		required := map[types.AssetInfo]math.Int{}
		accumulate := func(info types.AssetInfo, amount math.Int) {
			if have, ok := required[info]; ok {
				required[info] = have.Add(amount)
			} else {
				required[info] = amount
			}
		}

		params := k.GetParams(ctx)
		feeInfo := types.TokenInfo(params.FeeToken)

		err := k.IterateOrders(ctx, func(order types.Order) bool {
			accumulate(order.OfferAsset.Info, order.OfferAsset.Amount)
			accumulate(feeInfo, order.FeeAmount)
			return false
		})
		if err != nil {
			return sdk.FormatInvariant(
				types.ModuleName, "escrow-backing",
				fmt.Sprintf("failed to iterate orders: %v", err),
			), true
		}

		var (
			msg   string
			count int
		)
		moduleAddr := k.ModuleAddress()
		for info, amount := range required {
			var held math.Int
			if info.IsNative() {
				held = k.bankKeeper.GetBalance(ctx, moduleAddr, info.Denom).Amount
			} else {
				held = k.tokenKeeper.GetBalance(ctx, info.Token, moduleAddr)
			}
			if held.LT(amount) {
				count++
				msg += fmt.Sprintf("escrowed %s of %s exceeds held balance %s\n", amount, info, held)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "escrow-backing",
			fmt.Sprintf("%d under-collateralized assets found\n%s", count, msg),
		), broken
	}
}

// OrderIDCounterInvariant checks that no stored order carries an id above
// the counter. Ids are assigned from the counter and the counter never
// moves backwards, so a violation means the counter was reset or an order
// was written outside StoreNewOrder.
func OrderIDCounterInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		lastID := k.GetLastOrderID(ctx)

		var (
			msg   string
			count int
		)
		err := k.IterateOrders(ctx, func(order types.Order) bool {
			if order.OrderID > lastID {
				count++
				msg += fmt.Sprintf("order %d exceeds last order id %d\n", order.OrderID, lastID)
			}
			return false
		})
		if err != nil {
			return sdk.FormatInvariant(
				types.ModuleName, "order-id-counter",
				fmt.Sprintf("failed to iterate orders: %v", err),
			), true
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "order-id-counter",
			fmt.Sprintf("%d orders above the id counter found\n%s", count, msg),
		), broken
	}
}
