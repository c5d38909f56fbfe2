package types

// Event types emitted by the limit order module
const (
	EventTypeSubmitOrder  = "submit_order"
	EventTypeCancelOrder  = "cancel_order"
	EventTypeExecuteOrder = "execute_order"
)

// Event attribute keys
const (
	AttributeKeyOrderID       = "order_id"
	AttributeKeyBidder        = "bidder_addr"
	AttributeKeyOfferAsset    = "offer_asset"
	AttributeKeyAskAsset      = "ask_asset"
	AttributeKeyRefundedAsset = "refunded_asset"
	AttributeKeyRefundedFee   = "refunded_fee"
	AttributeKeyFeeAmount     = "fee_amount"
	AttributeKeyExcessAmount  = "excess_amount"
)
