package types

import (
	"context"

	grpc1 "github.com/cosmos/gogoproto/grpc"
	grpc "google.golang.org/grpc"
)

// QueryClient is the client API for the limit order Query service.
type QueryClient interface {
	Config(ctx context.Context, in *QueryConfigRequest, opts ...grpc.CallOption) (*ConfigResponse, error)
	Order(ctx context.Context, in *QueryOrderRequest, opts ...grpc.CallOption) (*OrderResponse, error)
	Orders(ctx context.Context, in *QueryOrdersRequest, opts ...grpc.CallOption) (*OrdersResponse, error)
	LastOrderID(ctx context.Context, in *QueryLastOrderIDRequest, opts ...grpc.CallOption) (*LastOrderIDResponse, error)
}

type queryClient struct {
	cc grpc1.ClientConn
}

func NewQueryClient(cc grpc1.ClientConn) QueryClient {
	return &queryClient{cc}
}

func (c *queryClient) Config(ctx context.Context, in *QueryConfigRequest, opts ...grpc.CallOption) (*ConfigResponse, error) {
	out := new(ConfigResponse)
	err := c.cc.Invoke(ctx, "/paw.limitorder.v1.Query/Config", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Order(ctx context.Context, in *QueryOrderRequest, opts ...grpc.CallOption) (*OrderResponse, error) {
	out := new(OrderResponse)
	err := c.cc.Invoke(ctx, "/paw.limitorder.v1.Query/Order", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Orders(ctx context.Context, in *QueryOrdersRequest, opts ...grpc.CallOption) (*OrdersResponse, error) {
	out := new(OrdersResponse)
	err := c.cc.Invoke(ctx, "/paw.limitorder.v1.Query/Orders", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) LastOrderID(ctx context.Context, in *QueryLastOrderIDRequest, opts ...grpc.CallOption) (*LastOrderIDResponse, error) {
	out := new(LastOrderIDResponse)
	err := c.cc.Invoke(ctx, "/paw.limitorder.v1.Query/LastOrderID", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}
