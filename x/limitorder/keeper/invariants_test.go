package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/paw-chain/limitorder/testutil/keeper"
	"github.com/paw-chain/limitorder/x/limitorder/keeper"
	"github.com/paw-chain/limitorder/x/limitorder/types"
)

func TestEscrowBackingInvariant(t *testing.T) {
	k, ctx, fakes := keepertest.LimitOrderKeeper(t)
	bidder := keepertest.TestAddress("bidder")
	feeToken := keepertest.TestAddress("fee_token").String()

	require.NoError(t, k.SetParams(ctx, types.NewParams(
		feeToken, math.NewInt(10), keepertest.TestAddress("registry").String(),
	)))

	// no orders, nothing required
	msg, broken := keeper.EscrowBackingInvariant(*k)(ctx)
	require.False(t, broken, msg)

	order := newTestOrder(0, bidder)
	require.NoError(t, k.StoreNewOrder(ctx, &order))

	// escrow not yet funded: the invariant must fire
	_, broken = keeper.EscrowBackingInvariant(*k)(ctx)
	require.True(t, broken)

	// fund the module account with the offer and the fee
	moduleAddr := k.ModuleAddress()
	fakes.Bank.SetBalance(ctx, moduleAddr, sdk.NewInt64Coin("uusd", 500))
	fakes.Token.SetBalance(ctx, feeToken, moduleAddr, math.NewInt(100))

	msg, broken = keeper.EscrowBackingInvariant(*k)(ctx)
	require.False(t, broken, msg)

	// a second order doubles the requirement
	second := newTestOrder(0, bidder)
	require.NoError(t, k.StoreNewOrder(ctx, &second))

	_, broken = keeper.EscrowBackingInvariant(*k)(ctx)
	require.True(t, broken)

	fakes.Bank.SetBalance(ctx, moduleAddr, sdk.NewInt64Coin("uusd", 1000))
	fakes.Token.SetBalance(ctx, feeToken, moduleAddr, math.NewInt(200))

	msg, broken = keeper.EscrowBackingInvariant(*k)(ctx)
	require.False(t, broken, msg)
}

func TestOrderIDCounterInvariant(t *testing.T) {
	k, ctx, _ := keepertest.LimitOrderKeeper(t)
	bidder := keepertest.TestAddress("bidder")

	msg, broken := keeper.OrderIDCounterInvariant(*k)(ctx)
	require.False(t, broken, msg)

	order := newTestOrder(0, bidder)
	require.NoError(t, k.StoreNewOrder(ctx, &order))

	msg, broken = keeper.OrderIDCounterInvariant(*k)(ctx)
	require.False(t, broken, msg)

	// a record written above the counter is a violation
	rogue := newTestOrder(99, bidder)
	require.NoError(t, k.SetOrder(ctx, rogue))

	_, broken = keeper.OrderIDCounterInvariant(*k)(ctx)
	require.True(t, broken)
}

func TestAllInvariants(t *testing.T) {
	k, ctx, fakes := keepertest.LimitOrderKeeper(t)
	bidder := keepertest.TestAddress("bidder")
	feeToken := keepertest.TestAddress("fee_token").String()

	require.NoError(t, k.SetParams(ctx, types.NewParams(
		feeToken, math.NewInt(10), keepertest.TestAddress("registry").String(),
	)))

	order := newTestOrder(0, bidder)
	require.NoError(t, k.StoreNewOrder(ctx, &order))

	moduleAddr := k.ModuleAddress()
	fakes.Bank.SetBalance(ctx, moduleAddr, sdk.NewInt64Coin("uusd", 500))
	fakes.Token.SetBalance(ctx, feeToken, moduleAddr, math.NewInt(100))

	msg, broken := keeper.AllInvariants(*k)(ctx)
	require.False(t, broken, msg)
}
