package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	keepertest "github.com/paw-chain/limitorder/testutil/keeper"
	"github.com/paw-chain/limitorder/x/limitorder/keeper"
	"github.com/paw-chain/limitorder/x/limitorder/types"
)

// metricsFixture funds a bidder and registers a pair so orders can run the
// full lifecycle. Metrics are process-global, so assertions below compare
// against values captured before each operation.
func metricsFixture(t *testing.T) (*keeper.Keeper, sdk.Context, *keepertest.Fakes, sdk.AccAddress) {
	k, ctx, fakes := keepertest.LimitOrderKeeper(t)

	bidder := keepertest.TestAddress("bidder")
	feeToken := keepertest.TestAddress("fee_token").String()
	registry := keepertest.TestAddress("registry").String()
	pairAddr := keepertest.TestAddress("pair").String()

	require.NoError(t, k.SetParams(ctx, types.NewParams(feeToken, math.NewInt(10), registry)))

	fakes.Bank.SetBalance(ctx, bidder, sdk.NewInt64Coin("uusd", 1000))
	fakes.Token.SetBalance(ctx, feeToken, bidder, math.NewInt(1000))
	fakes.Token.SetAllowance(ctx, feeToken, bidder, math.NewInt(1000))

	offerInfo := types.NativeInfo("uusd")
	askInfo := types.NativeInfo("upaw")
	fakes.Exchange.SetPair(registry, offerInfo, askInfo, pairAddr)
	fakes.Exchange.SetReturn(pairAddr, askInfo, math.NewInt(490))

	return k, ctx, fakes, bidder
}

func submitForMetrics(t *testing.T, k *keeper.Keeper, ctx sdk.Context, bidder sdk.AccAddress) types.Order {
	offer := types.NewAsset(types.NativeInfo("uusd"), math.NewInt(500))
	ask := types.NewAsset(types.NativeInfo("upaw"), math.NewInt(480))
	order, err := k.SubmitOrder(
		ctx, bidder, offer, ask, math.NewInt(100),
		sdk.NewCoins(sdk.NewInt64Coin("uusd", 500)),
	)
	require.NoError(t, err)
	return order
}

func TestSubmitOrderRecordsMetrics(t *testing.T) {
	k, ctx, _, bidder := metricsFixture(t)
	m := keeper.GetOrderMetrics()

	submitted := testutil.ToFloat64(m.OrdersSubmitted.WithLabelValues("uusd"))
	open := testutil.ToFloat64(m.OpenOrders)
	escrowed := testutil.ToFloat64(m.EscrowedOffers.WithLabelValues("uusd"))

	submitForMetrics(t, k, ctx, bidder)

	require.Equal(t, submitted+1, testutil.ToFloat64(m.OrdersSubmitted.WithLabelValues("uusd")))
	require.Equal(t, open+1, testutil.ToFloat64(m.OpenOrders))
	require.Equal(t, escrowed+500, testutil.ToFloat64(m.EscrowedOffers.WithLabelValues("uusd")))
}

func TestCancelOrderRecordsMetrics(t *testing.T) {
	k, ctx, _, bidder := metricsFixture(t)
	m := keeper.GetOrderMetrics()

	order := submitForMetrics(t, k, ctx, bidder)

	cancelled := testutil.ToFloat64(m.OrdersCancelled)
	open := testutil.ToFloat64(m.OpenOrders)
	escrowed := testutil.ToFloat64(m.EscrowedOffers.WithLabelValues("uusd"))

	_, _, err := k.CancelOrder(ctx, bidder, order.OrderID)
	require.NoError(t, err)

	require.Equal(t, cancelled+1, testutil.ToFloat64(m.OrdersCancelled))
	require.Equal(t, open-1, testutil.ToFloat64(m.OpenOrders))
	require.Equal(t, escrowed-500, testutil.ToFloat64(m.EscrowedOffers.WithLabelValues("uusd")))
}

func TestExecuteOrderRecordsMetrics(t *testing.T) {
	k, ctx, _, bidder := metricsFixture(t)
	m := keeper.GetOrderMetrics()

	order := submitForMetrics(t, k, ctx, bidder)

	executed := testutil.ToFloat64(m.OrdersExecuted.WithLabelValues("success"))
	open := testutil.ToFloat64(m.OpenOrders)
	escrowed := testutil.ToFloat64(m.EscrowedOffers.WithLabelValues("uusd"))
	excess := testutil.ToFloat64(m.ExcessPaid.WithLabelValues("upaw"))

	executor := keepertest.TestAddress("executor")
	_, excessAmount, err := k.ExecuteOrder(ctx, executor, order.OrderID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(10), excessAmount)

	require.Equal(t, executed+1, testutil.ToFloat64(m.OrdersExecuted.WithLabelValues("success")))
	require.Equal(t, open-1, testutil.ToFloat64(m.OpenOrders))
	require.Equal(t, escrowed-500, testutil.ToFloat64(m.EscrowedOffers.WithLabelValues("uusd")))
	require.Equal(t, excess+10, testutil.ToFloat64(m.ExcessPaid.WithLabelValues("upaw")))
}

func TestFailedExecutionRecordsFailureMetric(t *testing.T) {
	k, ctx, fakes, bidder := metricsFixture(t)
	m := keeper.GetOrderMetrics()

	order := submitForMetrics(t, k, ctx, bidder)
	fakes.Exchange.SetReturn(keepertest.TestAddress("pair").String(), types.NativeInfo("upaw"), math.NewInt(100))

	failed := testutil.ToFloat64(m.OrdersExecuted.WithLabelValues("failed"))
	open := testutil.ToFloat64(m.OpenOrders)

	_, _, err := k.ExecuteOrder(ctx, keepertest.TestAddress("executor"), order.OrderID)
	require.ErrorIs(t, err, types.ErrInsufficientReturn)

	require.Equal(t, failed+1, testutil.ToFloat64(m.OrdersExecuted.WithLabelValues("failed")))
	require.Equal(t, open, testutil.ToFloat64(m.OpenOrders))
}
