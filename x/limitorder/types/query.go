package types

import (
	"context"

	"cosmossdk.io/math"
)

// OrderBy selects the listing direction for order queries
type OrderBy string

const (
	// OrderByAsc lists orders by ascending order id
	OrderByAsc OrderBy = "asc"

	// OrderByDesc lists orders by descending order id. This is the default
	// when no direction is requested.
	OrderByDesc OrderBy = "desc"
)

// QueryServer defines the query server interface
type QueryServer interface {
	Config(context.Context, *QueryConfigRequest) (*ConfigResponse, error)
	Order(context.Context, *QueryOrderRequest) (*OrderResponse, error)
	Orders(context.Context, *QueryOrdersRequest) (*OrdersResponse, error)
	LastOrderID(context.Context, *QueryLastOrderIDRequest) (*LastOrderIDResponse, error)
}

// QueryConfigRequest is the request type for the module configuration query
type QueryConfigRequest struct{}

// QueryOrderRequest is the request type for a single order query
type QueryOrderRequest struct {
	OrderID uint64 `json:"order_id"`
}

// QueryOrdersRequest is the request type for the paginated order listing.
// BidderAddr scopes the listing to one owner when set. StartAfter is an
// exclusive cursor; Limit defaults to 10 and is clamped to 30.
type QueryOrdersRequest struct {
	BidderAddr string  `json:"bidder_addr,omitempty"`
	StartAfter *uint64 `json:"start_after,omitempty"`
	Limit      *uint32 `json:"limit,omitempty"`
	OrderBy    OrderBy `json:"order_by,omitempty"`
}

// QueryLastOrderIDRequest is the request type for the last assigned order id
type QueryLastOrderIDRequest struct{}

// ConfigResponse is the response type for the module configuration query
type ConfigResponse struct {
	FeeToken         string   `json:"fee_token"`
	MinFeeAmount     math.Int `json:"min_fee_amount"`
	ExchangeRegistry string   `json:"exchange_registry"`
}

// OrderResponse is the response type for a single order
type OrderResponse struct {
	OrderID    uint64   `json:"order_id"`
	Bidder     string   `json:"bidder_addr"`
	PairAddr   string   `json:"pair_addr"`
	OfferAsset Asset    `json:"offer_asset"`
	AskAsset   Asset    `json:"ask_asset"`
	FeeAmount  math.Int `json:"fee_amount"`
}

// OrdersResponse is the response type for the order listing
type OrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
}

// LastOrderIDResponse is the response type for the last assigned order id
type LastOrderIDResponse struct {
	LastOrderID uint64 `json:"last_order_id"`
}

// AsResponse projects an order record into its query response form
func (o Order) AsResponse() OrderResponse {
	return OrderResponse{
		OrderID:    o.OrderID,
		Bidder:     o.Bidder,
		PairAddr:   o.PairAddr,
		OfferAsset: o.OfferAsset,
		AskAsset:   o.AskAsset,
		FeeAmount:  o.FeeAmount,
	}
}
