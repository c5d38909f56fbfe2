package keeper

import (
	"fmt"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/limitorder/x/limitorder/types"
)

// SubmitOrder creates a new order, escrowing the offer asset and the fee.
//
// The fee must meet the configured minimum and a pair trading the two assets
// must exist in the exchange registry; the pair is resolved once here and
// pinned on the order. A native offer must arrive attached to the call in
// funds, a token offer is pulled through the allowance the sender granted
// beforehand. The fee is always pulled in the configured fee token.
func (k Keeper) SubmitOrder(
	ctx sdk.Context,
	sender sdk.AccAddress,
	offerAsset, askAsset types.Asset,
	feeAmount math.Int,
	funds sdk.Coins,
) (types.Order, error) {
	params := k.GetParams(ctx)

	if feeAmount.LT(params.MinFeeAmount) {
		return types.Order{}, types.ErrInvalidFee.Wrapf(
			"fee should be greater than %s", params.MinFeeAmount,
		)
	}

	pairAddr, err := k.exchangeKeeper.ResolvePair(ctx, params.ExchangeRegistry, offerAsset.Info, askAsset.Info)
	if err != nil {
		return types.Order{}, types.ErrNoMarket.Wrapf(
			"no pair for %s and %s: %v", offerAsset.Info, askAsset.Info, err,
		)
	}

	if err := offerAsset.AssertAttached(funds); err != nil {
		return types.Order{}, err
	}

	feeAsset := types.NewAsset(types.TokenInfo(params.FeeToken), feeAmount)
	instrs := []types.Instruction{
		offerAsset.Pull(sender),
		feeAsset.Pull(sender),
	}

	order := types.Order{
		Bidder:     sender.String(),
		PairAddr:   pairAddr,
		OfferAsset: offerAsset,
		AskAsset:   askAsset,
		FeeAmount:  feeAmount,
	}
	if err := k.StoreNewOrder(ctx, &order); err != nil {
		return types.Order{}, err
	}

	if err := k.dispatch(ctx, instrs); err != nil {
		return types.Order{}, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSubmitOrder,
			sdk.NewAttribute(types.AttributeKeyOrderID, fmt.Sprintf("%d", order.OrderID)),
			sdk.NewAttribute(types.AttributeKeyBidder, order.Bidder),
			sdk.NewAttribute(types.AttributeKeyOfferAsset, offerAsset.String()),
			sdk.NewAttribute(types.AttributeKeyAskAsset, askAsset.String()),
		),
	)

	// Record metrics
	if k.metrics != nil {
		k.metrics.OrdersSubmitted.WithLabelValues(offerAsset.Info.String()).Inc()
		k.metrics.OpenOrders.Inc()
		k.metrics.EscrowedOffers.WithLabelValues(offerAsset.Info.String()).Add(float64(offerAsset.Amount.Int64()))
	}

	return order, nil
}

// CancelOrder removes an open order and refunds the escrowed offer asset and
// fee to the bidder. Only the bidder may cancel.
func (k Keeper) CancelOrder(ctx sdk.Context, sender sdk.AccAddress, orderID uint64) (refundedAsset, refundedFee types.Asset, err error) {
	params := k.GetParams(ctx)

	order, err := k.GetOrder(ctx, orderID)
	if err != nil {
		return types.Asset{}, types.Asset{}, err
	}

	if order.Bidder != sender.String() {
		return types.Asset{}, types.Asset{}, types.ErrUnauthorized.Wrap("only the bidder can cancel an order")
	}

	refundedAsset = order.OfferAsset
	refundedFee = types.NewAsset(types.TokenInfo(params.FeeToken), order.FeeAmount)

	instrs := []types.Instruction{
		refundedAsset.Transfer(order.BidderAddr()),
		refundedFee.Transfer(order.BidderAddr()),
	}

	k.DeleteOrder(ctx, order)

	if err := k.dispatch(ctx, instrs); err != nil {
		return types.Asset{}, types.Asset{}, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCancelOrder,
			sdk.NewAttribute(types.AttributeKeyOrderID, fmt.Sprintf("%d", orderID)),
			sdk.NewAttribute(types.AttributeKeyRefundedAsset, refundedAsset.String()),
			sdk.NewAttribute(types.AttributeKeyRefundedFee, refundedFee.String()),
		),
	)

	// Record metrics
	if k.metrics != nil {
		k.metrics.OrdersCancelled.Inc()
		k.metrics.OpenOrders.Dec()
		k.metrics.EscrowedOffers.WithLabelValues(refundedAsset.Info.String()).Sub(float64(refundedAsset.Amount.Int64()))
	}

	return refundedAsset, refundedFee, nil
}

// ExecuteOrder settles an open order through its exchange pair. Any caller
// may execute, not just the bidder: the caller is the executor and collects
// the fee plus any excess of the swap return over the minimum ask amount.
//
// The venue's simulated return is checked against the minimum ask before the
// swap; the swap itself is submitted without a venue-side bound, so this
// floor check is the sole slippage guard. The payout sequence is
// {swap, pay bidder, pay excess if any, pay fee} — the swap funds the
// payouts that follow it, and the first failing step aborts them all.
func (k Keeper) ExecuteOrder(ctx sdk.Context, sender sdk.AccAddress, orderID uint64) (returnAmount, excessAmount math.Int, err error) {
	// Track execution latency
	start := time.Now()
	defer func() {
		if k.metrics != nil {
			k.metrics.ExecuteLatency.Observe(time.Since(start).Seconds())
		}
	}()

	params := k.GetParams(ctx)

	order, err := k.GetOrder(ctx, orderID)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	returnAmount, err = k.exchangeKeeper.Simulate(ctx, order.PairAddr, order.OfferAsset)
	if err != nil {
		if k.metrics != nil {
			k.metrics.OrdersExecuted.WithLabelValues("failed").Inc()
		}
		return math.Int{}, math.Int{}, types.ErrVenueUnavailable.Wrapf(
			"simulation at %s failed: %v", order.PairAddr, err,
		)
	}
	if returnAmount.LT(order.AskAsset.Amount) {
		if k.metrics != nil {
			k.metrics.OrdersExecuted.WithLabelValues("failed").Inc()
		}
		return math.Int{}, math.Int{}, types.ErrInsufficientReturn.Wrapf(
			"simulated return %s below minimum ask %s", returnAmount, order.AskAsset.Amount,
		)
	}

	instrs := []types.Instruction{
		types.SwapInstruction{PairAddr: order.PairAddr, Offer: order.OfferAsset},
		types.NewAsset(order.AskAsset.Info, order.AskAsset.Amount).Transfer(order.BidderAddr()),
	}

	excessAmount = returnAmount.Sub(order.AskAsset.Amount)
	if excessAmount.IsPositive() {
		instrs = append(instrs, types.NewAsset(order.AskAsset.Info, excessAmount).Transfer(sender))
	}

	feeAsset := types.NewAsset(types.TokenInfo(params.FeeToken), order.FeeAmount)
	instrs = append(instrs, feeAsset.Transfer(sender))

	k.DeleteOrder(ctx, order)

	if err := k.dispatch(ctx, instrs); err != nil {
		return math.Int{}, math.Int{}, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeExecuteOrder,
			sdk.NewAttribute(types.AttributeKeyOrderID, fmt.Sprintf("%d", order.OrderID)),
			sdk.NewAttribute(types.AttributeKeyFeeAmount, order.FeeAmount.String()),
			sdk.NewAttribute(types.AttributeKeyExcessAmount, excessAmount.String()),
		),
	)

	// Record successful execution metrics
	if k.metrics != nil {
		k.metrics.OrdersExecuted.WithLabelValues("success").Inc()
		k.metrics.OpenOrders.Dec()
		k.metrics.EscrowedOffers.WithLabelValues(order.OfferAsset.Info.String()).Sub(float64(order.OfferAsset.Amount.Int64()))
		if excessAmount.IsPositive() {
			k.metrics.ExcessPaid.WithLabelValues(order.AskAsset.Info.String()).Add(float64(excessAmount.Int64()))
		}
	}

	return returnAmount, excessAmount, nil
}
